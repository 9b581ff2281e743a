// Package minio provides the bucket facade over the MinIO client.
//
// It mirrors core/bucket with the same lifecycle functions and handle methods,
// implemented against the storage.Client interface so MinIO-native
// deployments don't need the AWS SDK in the request path. Options are MinIO's
// per-operation option structs; the bound bucket name is supplied positionally
// by the handle and can never come from options.
//
// One difference to the S3 facade: MinIO reports bucket absence as a boolean
// rather than an error, so Get returns ErrBucketNotExists when the probe
// comes back clean but negative.
package minio
