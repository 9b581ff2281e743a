package cmd

import (
	"context"
	"fmt"
	"os"

	"bucket-manager/core/bucket"
	miniobucket "bucket-manager/core/bucket/minio"
	"bucket-manager/core/storage"

	"github.com/aws/aws-sdk-go-v2/service/s3"
	s3types "github.com/aws/aws-sdk-go-v2/service/s3/types"
	"github.com/minio/minio-go/v7"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// bucketCmd groups the bucket lifecycle commands.
var bucketCmd = &cobra.Command{
	Use:   "bucket",
	Short: "Manage the configured bucket",
	Long:  `Create, remove and inspect the bucket the service is bound to.`,
}

var bucketCreateCmd = &cobra.Command{
	Use:   "create",
	Short: "Create the configured bucket",
	Run: func(cmd *cobra.Command, args []string) {
		cfg, logg := loadRuntime()
		name := cfg.Storage.Bucket

		var err error
		switch cfg.Storage.Driver {
		case storage.DriverS3:
			err = createS3Bucket(cmd.Context(), cfg.Storage, name)
		default:
			err = createMinioBucket(cmd.Context(), cfg.Storage, name)
		}
		if err != nil {
			logg.Fatal("Failed to create bucket", zap.String("bucket", name), zap.Error(err))
		}

		fmt.Printf("Bucket %q created\n", name)
	},
}

var bucketRemoveCmd = &cobra.Command{
	Use:   "rm",
	Short: "Remove the configured bucket",
	Run: func(cmd *cobra.Command, args []string) {
		cfg, logg := loadRuntime()
		name := cfg.Storage.Bucket

		var err error
		switch cfg.Storage.Driver {
		case storage.DriverS3:
			var api *s3.Client
			if api, err = storage.NewS3Client(cmd.Context(), cfg.Storage); err == nil {
				err = bucket.Remove(cmd.Context(), api, name)
			}
		default:
			var client storage.Client
			if client, err = storage.NewClient(cfg.Storage); err == nil {
				err = miniobucket.Remove(cmd.Context(), client, name)
			}
		}
		if err != nil {
			logg.Fatal("Failed to remove bucket", zap.String("bucket", name), zap.Error(err))
		}

		fmt.Printf("Bucket %q removed\n", name)
	},
}

var bucketExistsCmd = &cobra.Command{
	Use:   "exists",
	Short: "Check whether the configured bucket exists",
	Long:  `Prints the result and exits non-zero when the bucket is absent or unreachable.`,
	Run: func(cmd *cobra.Command, args []string) {
		cfg, logg := loadRuntime()

		store, err := newStore(cmd.Context(), cfg)
		if err != nil {
			logg.Fatal("Failed to create object store", zap.Error(err))
		}

		if !store.HasBucket(cmd.Context()) {
			fmt.Printf("Bucket %q does not exist\n", cfg.Storage.Bucket)
			os.Exit(1)
		}
		fmt.Printf("Bucket %q exists\n", cfg.Storage.Bucket)
	},
}

var bucketLocationCmd = &cobra.Command{
	Use:   "location",
	Short: "Print the region of the configured bucket",
	Run: func(cmd *cobra.Command, args []string) {
		cfg, logg := loadRuntime()

		store, err := newStore(cmd.Context(), cfg)
		if err != nil {
			logg.Fatal("Failed to create object store", zap.Error(err))
		}

		loc, err := store.Location(cmd.Context())
		if err != nil {
			logg.Fatal("Failed to resolve bucket location",
				zap.String("bucket", cfg.Storage.Bucket), zap.Error(err))
		}
		fmt.Println(loc)
	},
}

func createS3Bucket(ctx context.Context, cfg storage.Config, name string) error {
	api, err := storage.NewS3Client(ctx, cfg)
	if err != nil {
		return err
	}

	opts := []func(*s3.CreateBucketInput){}
	// us-east-1 is the default region and rejects an explicit constraint.
	if cfg.Region != "" && cfg.Region != "us-east-1" {
		opts = append(opts, func(in *s3.CreateBucketInput) {
			in.CreateBucketConfiguration = &s3types.CreateBucketConfiguration{
				LocationConstraint: s3types.BucketLocationConstraint(cfg.Region),
			}
		})
	}

	_, err = bucket.Create(ctx, api, name, opts...)
	return err
}

func createMinioBucket(ctx context.Context, cfg storage.Config, name string) error {
	client, err := storage.NewClient(cfg)
	if err != nil {
		return err
	}
	_, err = miniobucket.Create(ctx, client, name, minio.MakeBucketOptions{Region: cfg.Region})
	return err
}

func init() {
	bucketCmd.AddCommand(bucketCreateCmd, bucketRemoveCmd, bucketExistsCmd, bucketLocationCmd)
	RootCmd.AddCommand(bucketCmd)
}
