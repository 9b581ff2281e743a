// Package bucket provides a thin bucket-bound facade over the AWS S3 client.
//
// A Bucket binds an S3 client to a single bucket name so callers can work with
// object keys instead of repeating the bucket on every request. The lifecycle
// functions (Create, Get, Has, Remove) manage bucket existence and hand out
// bound handles; the handle methods cover the per-object operations.
//
// # Design
//
// Every method issues exactly one backend request and forwards the SDK's
// response and error untouched. There is no retry, caching or validation in
// this layer; timeouts and cancellation come from the context and the client
// configuration. Optional request fields are supplied as input modifiers, and
// the bound identifiers (bucket, key, copy source) are always written last so
// options can never redirect a handle to another bucket.
//
// # Usage
//
//	b, err := bucket.Create(ctx, client, "assets")
//	out, err := b.Put(ctx, "hello.txt", strings.NewReader("Hello World!"))
package bucket
