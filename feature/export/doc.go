// Package export publishes loaded locales to external targets.
//
// A Bundle is a snapshot of an initialized loader stamped with a fresh export ID.
// Every Sink receives the same bundle:
//
//   - StorageSink writes <prefix>/<lang>.json objects plus <prefix>/manifest.json to
//     an S3/MinIO bucket, and can prune objects of languages that disappeared.
//   - DatabaseSink upserts one locale_strings row per language and key.
//
// The Service runs the sinks in order and keeps going when one fails; the returned
// error joins every failure.
//
// # Usage
//
//	svc := export.NewService(log,
//	    export.NewStorageSink(client, "locales", "app", true, log),
//	    export.NewDatabaseSink(db, 500, log),
//	)
//	bundle, err := svc.Export(ctx, l)
package export
