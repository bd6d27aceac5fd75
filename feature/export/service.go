package export

import (
	"context"
	"errors"
	"fmt"
	"time"

	"sl10n/core/loader"

	"go.uber.org/zap"
)

// Service exports loaded locales to every configured sink.
type Service struct {
	sinks  []Sink
	logger *zap.Logger
}

// NewService creates a new export service.
func NewService(logger *zap.Logger, sinks ...Sink) *Service {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Service{sinks: sinks, logger: logger}
}

// Export snapshots l and writes the bundle to every sink. A failing sink does
// not stop the others.
func (s *Service) Export(ctx context.Context, l *loader.Loader) (*Bundle, error) {
	b, err := NewBundle(l)
	if err != nil {
		return nil, err
	}

	var errs []error
	for _, sink := range s.sinks {
		start := time.Now()
		if err := sink.Write(ctx, b); err != nil {
			s.logger.Error("Export failed",
				zap.String("target", sink.Name()),
				zap.Error(err),
			)
			errs = append(errs, fmt.Errorf("%s: %w", sink.Name(), err))
			continue
		}
		s.logger.Info("Export completed",
			zap.String("target", sink.Name()),
			zap.String("export_id", b.ID.String()),
			zap.Int("languages", len(b.Languages)),
			zap.Duration("took", time.Since(start)),
		)
	}
	return b, errors.Join(errs...)
}
