package storage

import (
	"context"
	"fmt"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
)

// NewS3Client creates an AWS S3 client based on the configuration.
// With an empty AccessKey the AWS default credential chain is used, so the
// s3 driver also works with instance profiles and shared config. A custom
// Endpoint plus ForcePathStyle points the client at MinIO or other
// S3-compatible deployments.
func NewS3Client(ctx context.Context, cfg Config) (*s3.Client, error) {
	loadOpts := []func(*awsconfig.LoadOptions) error{}
	if cfg.Region != "" {
		loadOpts = append(loadOpts, awsconfig.WithRegion(cfg.Region))
	}
	if cfg.AccessKey != "" {
		loadOpts = append(loadOpts, awsconfig.WithCredentialsProvider(
			credentials.NewStaticCredentialsProvider(cfg.AccessKey, cfg.SecretKey, "")))
	}

	awsCfg, err := awsconfig.LoadDefaultConfig(ctx, loadOpts...)
	if err != nil {
		return nil, fmt.Errorf("failed to load aws config: %w", err)
	}

	client := s3.NewFromConfig(awsCfg, func(o *s3.Options) {
		if ep := s3Endpoint(cfg); ep != "" {
			o.BaseEndpoint = aws.String(ep)
		}
		o.UsePathStyle = cfg.ForcePathStyle
	})
	return client, nil
}

// s3Endpoint normalizes the configured endpoint into a base URL.
// Endpoints are shared with the minio driver, which stores them without a
// scheme, so one is added here based on UseSSL.
func s3Endpoint(cfg Config) string {
	ep := cfg.Endpoint
	if ep == "" {
		return ""
	}
	if strings.HasPrefix(ep, "http://") || strings.HasPrefix(ep, "https://") {
		return ep
	}
	if cfg.UseSSL {
		return "https://" + ep
	}
	return "http://" + ep
}
