package loader

import (
	"bytes"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"sl10n/core/diag"
	"sl10n/core/document"
	"sl10n/core/locale"
	"sl10n/core/reconcile"

	"go.uber.org/zap"
)

const (
	// DefaultPath is the translation directory used when none is configured.
	DefaultPath = "lang"
	// DefaultLang is the fallback language used when none is configured.
	DefaultLang = "en"
)

var (
	// ErrNotInitialized is returned by Locale before Init has completed.
	ErrNotInitialized = errors.New("loader: not initialized, call Init first")
	// ErrNilSchema is returned by New without a schema.
	ErrNilSchema = errors.New("loader: nil schema")
	// ErrDefaultLocaleMissing is returned by Locale when the default language was
	// not indexed (excluded or ignored) and a fallback is needed.
	ErrDefaultLocaleMissing = errors.New("loader: default locale is not loaded")
)

// Loader is the locale registry.
type Loader struct {
	schema       *locale.Schema
	path         string
	defaultLang  string
	ignore       map[string]struct{}
	backend      document.Backend
	logger       *zap.Logger
	reporter     diag.Reporter
	strict       bool
	warnUnfilled bool

	initialized bool
	locales     map[string]*locale.Record
	results     []*reconcile.Result
}

// New creates an uninitialized Loader for schema.
func New(schema *locale.Schema, opts ...Option) (*Loader, error) {
	if schema == nil {
		return nil, ErrNilSchema
	}
	l := &Loader{
		schema:      schema,
		path:        DefaultPath,
		defaultLang: DefaultLang,
		ignore:      make(map[string]struct{}),
		backend:     document.NewJSON(document.DefaultIndent),
		logger:      zap.NewNop(),
		reporter:    diag.Nop,
		locales:     make(map[string]*locale.Record),
	}
	for _, opt := range opts {
		opt(l)
	}
	return l, nil
}

// Initialized reports whether Init has completed.
func (l *Loader) Initialized() bool { return l.initialized }

// DefaultLang returns the fallback language.
func (l *Loader) DefaultLang() string { return l.defaultLang }

// Path returns the translation directory.
func (l *Loader) Path() string { return l.path }

// Schema returns the schema records are validated against.
func (l *Loader) Schema() *locale.Schema { return l.schema }

// Backend returns the document format of the translation files.
func (l *Loader) Backend() document.Backend { return l.backend }

// Languages returns the sorted index keys of the loaded records.
func (l *Loader) Languages() []string {
	langs := make([]string, 0, len(l.locales))
	for lang := range l.locales {
		langs = append(langs, lang)
	}
	sort.Strings(langs)
	return langs
}

// Results returns the reconciliation report of every scanned file, in scan order.
func (l *Loader) Results() []*reconcile.Result {
	out := make([]*reconcile.Result, len(l.results))
	copy(out, l.results)
	return out
}

// Init bootstraps the default-language file if needed, then scans and indexes
// the translation directory. Parse failures abort Init and leave the Loader
// uninitialized.
func (l *Loader) Init() error {
	return l.withReporter(func(r diag.Reporter) error {
		if l.initialized {
			r.Report(diag.Diagnostic{
				Category: diag.AlreadyInitialized,
				Message:  "loader is already initialized",
			})
			return nil
		}

		defaultFile := l.langFile(l.defaultLang)
		exists, err := fileExists(defaultFile)
		if err != nil {
			return err
		}
		if !exists {
			r.Report(diag.Diagnostic{
				Category: diag.DefaultLangFileNotFound,
				Message:  fmt.Sprintf("can't find %q in locales, generating a file", filepath.Base(defaultFile)),
				File:     defaultFile,
				Lang:     l.defaultLang,
			})
			if err := l.createLangFile(r, l.defaultLang, false); err != nil {
				return err
			}
		}

		if err := l.scan(r); err != nil {
			return err
		}
		l.initialized = true
		l.logger.Debug("Locales loaded",
			zap.String("path", l.path),
			zap.Strings("languages", l.Languages()),
		)
		return nil
	})
}

// Locale returns the record for lang, or for the default language when lang is
// empty. Unknown languages fall back to the default record with an
// UndefinedLocale diagnostic.
func (l *Loader) Locale(lang string) (*locale.Record, error) {
	if !l.initialized {
		return nil, ErrNotInitialized
	}
	if lang == "" {
		lang = l.defaultLang
	}
	if rec, ok := l.locales[lang]; ok {
		return rec, nil
	}

	var rec *locale.Record
	err := l.withReporter(func(r diag.Reporter) error {
		fallback, ok := l.locales[l.defaultLang]
		if !ok {
			return ErrDefaultLocaleMissing
		}
		r.Report(diag.Diagnostic{
			Category: diag.UndefinedLocale,
			Message:  fmt.Sprintf("got unexpected lang %q, returned %q", lang, l.defaultLang),
			Lang:     lang,
		})
		rec = fallback
		return nil
	})
	return rec, err
}

// CreateLangFile writes a new translation file for lang. The template is the
// reconciled default-language file when one exists, the schema sample otherwise.
// Existing files are kept unless override is set. Only legal before Init.
func (l *Loader) CreateLangFile(lang string, override bool) error {
	return l.withReporter(func(r diag.Reporter) error {
		return l.createLangFile(r, lang, override)
	})
}

func (l *Loader) createLangFile(r diag.Reporter, lang string, override bool) error {
	if l.initialized {
		r.Report(diag.Diagnostic{
			Category: diag.AlreadyInitialized,
			Message:  "lang files can be created only before initialization",
			Lang:     lang,
		})
		return nil
	}

	target := l.langFile(lang)
	exists, err := fileExists(target)
	if err != nil {
		return err
	}
	if exists && !override {
		r.Report(diag.Diagnostic{
			Category: diag.LangFileAlreadyExists,
			Message:  fmt.Sprintf("lang file %q already exists", target),
			File:     target,
			Lang:     lang,
		})
		return nil
	}

	template, err := l.template(r)
	if err != nil {
		return err
	}

	doc := document.New()
	for _, field := range l.schema.Fields() {
		v, _ := template.Field(field)
		if strings.Contains(v, "\n") {
			doc.Set(field, strings.Split(v, "\n"))
			continue
		}
		doc.Set(field, v)
	}

	var buf bytes.Buffer
	if err := l.backend.Dump(doc, &buf); err != nil {
		return fmt.Errorf("loader: encode %s: %w", target, err)
	}
	if err := os.MkdirAll(l.path, 0o755); err != nil {
		return fmt.Errorf("loader: create %s: %w", l.path, err)
	}
	if err := os.WriteFile(target, buf.Bytes(), 0o644); err != nil {
		return fmt.Errorf("loader: write %s: %w", target, err)
	}

	l.logger.Info("Created lang file", zap.String("file", target))
	return nil
}

// template returns the reconciled default-language record, or the schema sample
// when the default file is absent or excluded.
func (l *Loader) template(r diag.Reporter) (*locale.Record, error) {
	defaultFile := l.langFile(l.defaultLang)
	exists, err := fileExists(defaultFile)
	if err != nil || !exists {
		return l.schema.Sample(), err
	}

	rec, err := l.engine(r).Process(defaultFile)
	switch {
	case errors.Is(err, reconcile.ErrExcluded):
		return l.schema.Sample(), nil
	case err != nil:
		return nil, err
	}
	return rec, nil
}

func (l *Loader) scan(r diag.Reporter) error {
	entries, err := os.ReadDir(l.path)
	if err != nil {
		return fmt.Errorf("loader: scan %s: %w", l.path, err)
	}

	ext := "." + l.backend.Ext()
	engine := l.engine(r)
	locales := make(map[string]*locale.Record)
	var results []*reconcile.Result

	for _, entry := range entries {
		name := entry.Name()
		if entry.IsDir() || filepath.Ext(name) != ext {
			continue
		}
		stem := strings.TrimSuffix(name, ext)
		if l.ignored(name, stem) {
			l.logger.Debug("Ignoring file", zap.String("file", name))
			continue
		}

		res, err := engine.Reconcile(filepath.Join(l.path, name))
		if err != nil {
			return err
		}
		results = append(results, res)
		if res.Excluded {
			continue
		}
		locales[stem] = res.Record
	}

	l.locales = locales
	l.results = results
	return nil
}

func (l *Loader) engine(r diag.Reporter) *reconcile.Engine {
	return reconcile.NewEngine(l.schema, l.backend,
		reconcile.WithLogger(l.logger),
		reconcile.WithReporter(r),
		reconcile.WithWarnUnfilled(l.warnUnfilled),
	)
}

// withReporter runs op with the configured reporter. In strict mode the
// diagnostics op emits are also collected and returned as a *diag.StrictError.
func (l *Loader) withReporter(op func(r diag.Reporter) error) error {
	if !l.strict {
		return op(l.reporter)
	}

	c := &diag.Collector{}
	if err := op(diag.Multi(l.reporter, c)); err != nil {
		return err
	}
	if c.Len() > 0 {
		return &diag.StrictError{Diagnostics: c.Diagnostics()}
	}
	return nil
}

func (l *Loader) ignored(name, stem string) bool {
	if _, ok := l.ignore[name]; ok {
		return true
	}
	_, ok := l.ignore[stem]
	return ok
}

func (l *Loader) langFile(lang string) string {
	return filepath.Join(l.path, lang+"."+l.backend.Ext())
}

func fileExists(path string) (bool, error) {
	_, err := os.Stat(path)
	switch {
	case err == nil:
		return true, nil
	case errors.Is(err, fs.ErrNotExist):
		return false, nil
	default:
		return false, fmt.Errorf("loader: stat %s: %w", path, err)
	}
}
