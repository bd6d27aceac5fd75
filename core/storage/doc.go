// Package storage provides an abstraction layer for object storage services.
//
// It wraps the MinIO Go client behind the small Client interface the locale export
// uses, so both AWS S3 and self-hosted MinIO can receive exported bundles, and tests
// can use the mock in core/storage/mocks.
//
// # Operations
//
//   - BucketExists / MakeBucket: ensure the target bucket.
//   - PutObject: upload one exported locale or the manifest.
//   - ListObjects / RemoveObject: prune locales that no longer exist.
//
// # Usage
//
//	client, err := storage.NewClient(cfg.Storage)
//	exists, err := client.BucketExists(ctx, cfg.Storage.Bucket)
package storage
