package export

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"path"
	"strings"

	"sl10n/core/document"
	"sl10n/core/storage"

	"github.com/minio/minio-go/v7"
	"go.uber.org/zap"
)

// ManifestName is the object name of the manifest under the prefix.
const ManifestName = "manifest.json"

// StorageSink writes bundles to an S3/MinIO bucket.
type StorageSink struct {
	client  storage.Client
	bucket  string
	prefix  string
	prune   bool
	backend *document.JSON
	logger  *zap.Logger
}

// NewStorageSink creates a sink writing under prefix in bucket.
func NewStorageSink(client storage.Client, bucket, prefix string, prune bool, logger *zap.Logger) *StorageSink {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &StorageSink{
		client:  client,
		bucket:  bucket,
		prefix:  strings.Trim(prefix, "/"),
		prune:   prune,
		backend: document.NewJSON(document.DefaultIndent),
		logger:  logger,
	}
}

func (s *StorageSink) Name() string { return "storage" }

// ObjectName returns the object name of lang.
func (s *StorageSink) ObjectName(lang string) string {
	return path.Join(s.prefix, lang+".json")
}

func (s *StorageSink) Write(ctx context.Context, b *Bundle) error {
	if err := s.ensureBucket(ctx); err != nil {
		return err
	}

	meta := map[string]string{"export-id": b.ID.String()}
	for _, lang := range b.Languages {
		var buf bytes.Buffer
		if err := s.backend.Dump(b.Records[lang].ToDocument(), &buf); err != nil {
			return fmt.Errorf("export: encode %s: %w", lang, err)
		}
		if err := s.put(ctx, s.ObjectName(lang), buf.Bytes(), meta); err != nil {
			return err
		}
		s.logger.Debug("Exported locale", zap.String("lang", lang), zap.String("object", s.ObjectName(lang)))
	}

	data, err := json.MarshalIndent(b.manifest(), "", "  ")
	if err != nil {
		return fmt.Errorf("export: encode manifest: %w", err)
	}
	if err := s.put(ctx, path.Join(s.prefix, ManifestName), data, meta); err != nil {
		return err
	}

	if s.prune {
		return s.pruneStale(ctx, b)
	}
	return nil
}

func (s *StorageSink) ensureBucket(ctx context.Context) error {
	exists, err := s.client.BucketExists(ctx, s.bucket)
	if err != nil {
		return fmt.Errorf("failed to check bucket existence: %w", err)
	}
	if exists {
		return nil
	}
	if err := s.client.MakeBucket(ctx, s.bucket, minio.MakeBucketOptions{}); err != nil {
		return fmt.Errorf("failed to create bucket %s: %w", s.bucket, err)
	}
	s.logger.Info("Created bucket", zap.String("bucket", s.bucket))
	return nil
}

func (s *StorageSink) put(ctx context.Context, name string, data []byte, meta map[string]string) error {
	_, err := s.client.PutObject(ctx, s.bucket, name, bytes.NewReader(data), int64(len(data)), minio.PutObjectOptions{
		ContentType:  "application/json",
		UserMetadata: meta,
	})
	if err != nil {
		return fmt.Errorf("failed to upload %s: %w", name, err)
	}
	return nil
}

// pruneStale removes exported locales whose language is not in b.
func (s *StorageSink) pruneStale(ctx context.Context, b *Bundle) error {
	keep := make(map[string]struct{}, len(b.Languages)+1)
	for _, lang := range b.Languages {
		keep[s.ObjectName(lang)] = struct{}{}
	}
	keep[path.Join(s.prefix, ManifestName)] = struct{}{}

	prefix := s.prefix
	if prefix != "" {
		prefix += "/"
	}
	var stale []string
	for obj := range s.client.ListObjects(ctx, s.bucket, minio.ListObjectsOptions{Prefix: prefix}) {
		if obj.Err != nil {
			return fmt.Errorf("failed to list %s: %w", prefix, obj.Err)
		}
		if _, ok := keep[obj.Key]; ok || path.Ext(obj.Key) != ".json" {
			continue
		}
		stale = append(stale, obj.Key)
	}

	for _, name := range stale {
		if err := s.client.RemoveObject(ctx, s.bucket, name, minio.RemoveObjectOptions{}); err != nil {
			return fmt.Errorf("failed to remove %s: %w", name, err)
		}
		s.logger.Info("Removed stale locale", zap.String("object", name))
	}
	return nil
}
