package loader

import (
	"sl10n/core/diag"
	"sl10n/core/document"

	"go.uber.org/zap"
)

// Option configures a Loader.
type Option func(*Loader)

// WithPath sets the translation directory. Defaults to "lang".
func WithPath(path string) Option {
	return func(l *Loader) {
		if path != "" {
			l.path = path
		}
	}
}

// WithDefaultLang sets the fallback language. Defaults to "en".
func WithDefaultLang(lang string) Option {
	return func(l *Loader) {
		if lang != "" {
			l.defaultLang = lang
		}
	}
}

// WithIgnoreFilenames skips files whose name, with or without extension, is listed.
func WithIgnoreFilenames(names ...string) Option {
	return func(l *Loader) {
		for _, n := range names {
			l.ignore[n] = struct{}{}
		}
	}
}

// WithBackend sets the document format. Defaults to JSON with an indent of 2.
func WithBackend(b document.Backend) Option {
	return func(l *Loader) {
		if b != nil {
			l.backend = b
		}
	}
}

// WithLogger sets the logger.
func WithLogger(log *zap.Logger) Option {
	return func(l *Loader) {
		if log != nil {
			l.logger = log
		}
	}
}

// WithReporter sets where diagnostics go.
func WithReporter(r diag.Reporter) Option {
	return func(l *Loader) {
		if r != nil {
			l.reporter = r
		}
	}
}

// WithStrict turns diagnostics emitted by Init, CreateLangFile and Locale into a
// *diag.StrictError returned by that call.
func WithStrict(strict bool) Option {
	return func(l *Loader) {
		l.strict = strict
	}
}

// WithWarnUnfilled reports schema keys still holding a placeholder or empty value.
func WithWarnUnfilled(enabled bool) Option {
	return func(l *Loader) {
		l.warnUnfilled = enabled
	}
}
