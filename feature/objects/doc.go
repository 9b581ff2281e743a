// Package objects exposes the bound bucket over HTTP.
//
// It serves the per-object operations of a bucket handle (get, head, put,
// delete, copy) plus a bucket info endpoint, against whichever storage driver
// the deployment configured.
//
// # Store Contract
//
// Handlers consume the narrow ObjectStore interface; the adapters in this
// package satisfy it for the S3 facade (core/bucket) and the MinIO facade
// (core/bucket/minio). Backend not-found responses are normalized to
// ErrNotFound so handlers can answer 404 without knowing the driver.
//
// # HTTP Endpoints
//
//   - GET    /bucket : bound bucket name, existence and location.
//   - GET    /objects/<key> : stream the object payload.
//   - HEAD   /objects/<key> : object metadata only.
//   - PUT    /objects/<key> : store the request body; with an X-Copy-From
//     header, copy from another key in the same bucket instead.
//   - DELETE /objects/<key> : remove the object.
package objects
