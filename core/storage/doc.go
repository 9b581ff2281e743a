// Package storage provides client construction for object storage services.
//
// Two drivers are supported: the MinIO Go client (wrapped behind the Client
// interface) and the AWS S3 client from aws-sdk-go-v2. Both are built from the
// same Config, so a deployment can switch drivers without touching anything
// but configuration. Either client speaks to AWS S3 as well as self-hosted
// S3-compatible services.
//
// # Client Interface
//
// The Client interface abstracts the MinIO client, making it easier to mock
// storage interactions for unit testing (as seen in core/storage/mocks). The
// S3 client is consumed through the core/bucket.S3API interface instead.
//
// # Operations
//
//   - MakeBucket / BucketExists / RemoveBucket / GetBucketLocation: bucket lifecycle.
//   - GetObject / StatObject / PutObject / RemoveObject / CopyObject: object access.
//
// # Usage
//
//	client, err := storage.NewClient(config)
//	exists, err := client.BucketExists(ctx, "assets")
package storage
