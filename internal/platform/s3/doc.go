// Package s3 publishes generated project archives to S3 or an
// S3-compatible object store.
//
// [Client] wraps the AWS SDK client with the bucket and object operations
// publishing needs. [Publisher] stores an environment archive under
// "<name>/<name>.zip", optionally creating the bucket first.
package s3
