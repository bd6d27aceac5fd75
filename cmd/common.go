package cmd

import (
	"fmt"

	"sl10n/core/config"
	"sl10n/core/diag"
	"sl10n/core/loader"
	"sl10n/core/logger"

	"go.uber.org/zap"
)

// env is what every command starts from.
type env struct {
	cfg       *config.Config
	log       *zap.Logger
	collector *diag.Collector
}

func setup() (*env, error) {
	cfg, err := config.LoadConfig(configDir)
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	logg, err := logger.New(&cfg.Log)
	if err != nil {
		return nil, fmt.Errorf("failed to create logger: %w", err)
	}

	return &env{cfg: cfg, log: logg, collector: &diag.Collector{}}, nil
}

// newLoader builds an uninitialized loader from the locale section. Diagnostics are
// logged and collected.
func (e *env) newLoader(extra ...loader.Option) (*loader.Loader, error) {
	schema, err := e.cfg.Locale.Schema()
	if err != nil {
		return nil, fmt.Errorf("invalid locale schema: %w", err)
	}

	opts, err := e.cfg.Locale.Options()
	if err != nil {
		return nil, err
	}
	opts = append(opts,
		loader.WithLogger(e.log),
		loader.WithReporter(diag.Multi(diag.NewLogReporter(e.log), e.collector)),
	)
	opts = append(opts, extra...)

	return loader.New(schema, opts...)
}

// initLoader builds and initializes a loader.
func (e *env) initLoader(extra ...loader.Option) (*loader.Loader, error) {
	l, err := e.newLoader(extra...)
	if err != nil {
		return nil, err
	}
	if err := l.Init(); err != nil {
		return nil, err
	}
	return l, nil
}
