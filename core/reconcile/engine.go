package reconcile

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"sl10n/core/diag"
	"sl10n/core/document"
	"sl10n/core/locale"
	"sl10n/core/modifier"
	"sl10n/core/utils"

	"go.uber.org/zap"
)

// Engine reconciles translation files against a schema.
type Engine struct {
	schema       *locale.Schema
	backend      document.Backend
	logger       *zap.Logger
	reporter     diag.Reporter
	warnUnfilled bool
}

// Option configures an Engine.
type Option func(*Engine)

// WithLogger sets the logger used for informational entries.
func WithLogger(l *zap.Logger) Option {
	return func(e *Engine) {
		if l != nil {
			e.logger = l
		}
	}
}

// WithReporter sets where diagnostics go. It is also handed to every built record.
func WithReporter(r diag.Reporter) Option {
	return func(e *Engine) {
		if r != nil {
			e.reporter = r
		}
	}
}

// WithWarnUnfilled enables UnfilledLocaleKey diagnostics for placeholder or empty values.
func WithWarnUnfilled(enabled bool) Option {
	return func(e *Engine) {
		e.warnUnfilled = enabled
	}
}

// NewEngine creates an engine for schema reading files through backend.
func NewEngine(schema *locale.Schema, backend document.Backend, opts ...Option) *Engine {
	e := &Engine{
		schema:   schema,
		backend:  backend,
		logger:   zap.NewNop(),
		reporter: diag.Nop,
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Process reconciles the file at path and returns its record.
// Excluded files yield ErrExcluded.
func (e *Engine) Process(path string) (*locale.Record, error) {
	res, err := e.Reconcile(path)
	if err != nil {
		return nil, err
	}
	if res.Excluded {
		return nil, ErrExcluded
	}
	return res.Record, nil
}

// Reconcile runs the full reconciliation of the file at path and reports what it did.
func (e *Engine) Reconcile(path string) (*Result, error) {
	fc, err := e.load(path)
	if err != nil {
		return nil, err
	}
	res := &Result{Path: path}

	fc.mods = modifier.Parse(fc.doc)
	if fc.mods.Excluded() {
		e.logger.Info("Excluding file", zap.String("file", filepath.Base(path)))
		res.Excluded = true
		return res, nil
	}

	e.findUnexpected(fc)
	e.healUndefined(fc)

	fc.dumpOrder = make([]string, 0, len(e.schema.Fields())+len(fc.mods.Present)+len(fc.unexpected))
	fc.dumpOrder = append(fc.dumpOrder, e.schema.Fields()...)
	fc.dumpOrder = append(fc.dumpOrder, fc.mods.Present...)
	fc.dumpOrder = append(fc.dumpOrder, fc.unexpected...)

	if e.warnUnfilled {
		e.checkUnfilled(fc)
	}

	if len(fc.undefined) > 0 || len(fc.unexpected) > 0 {
		if err := e.rewrite(fc); err != nil {
			return nil, err
		}
		res.Rewrites++
	}

	if fc.mods.ForceRedump() {
		e.logger.Info("Redumping file", zap.String("file", filepath.Base(path)))
		if err := e.rewrite(fc); err != nil {
			return nil, err
		}
		res.Rewrites++
	}

	langCode := fc.langCode
	if override, ok := fc.mods.LangCodeOverride(); ok {
		e.logger.Info("Overriding lang code",
			zap.String("file", filepath.Base(path)),
			zap.String("lang_code", override),
		)
		langCode = override
	}

	for _, key := range fc.mods.Present {
		fc.doc.Delete(key)
	}
	for _, key := range fc.unexpected {
		fc.doc.Delete(key)
	}

	values := make(map[string]string, fc.doc.Len())
	for _, key := range fc.doc.Keys() {
		v, _ := fc.doc.Get(key)
		if list, ok := utils.ToStrings(v); ok {
			values[key] = strings.Join(list, "\n")
			continue
		}
		values[key] = utils.ToString(v)
	}

	res.Record = e.schema.NewRecord(langCode, values, e.reporter)
	res.Undefined = fc.undefined
	res.Unexpected = fc.unexpected
	return res, nil
}

func (e *Engine) load(path string) (*fileContext, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("reconcile: %w", err)
	}
	defer f.Close()

	doc, err := e.backend.Load(f)
	if err != nil {
		return nil, &ParseError{Path: path, Err: err}
	}

	base := filepath.Base(path)
	return &fileContext{
		path:     path,
		langCode: strings.TrimSuffix(base, filepath.Ext(base)),
		doc:      doc,
	}, nil
}

// findUnexpected collects keys that are neither schema fields nor present directives.
func (e *Engine) findUnexpected(fc *fileContext) {
	present := make(map[string]struct{}, len(fc.mods.Present))
	for _, k := range fc.mods.Present {
		present[k] = struct{}{}
	}

	for _, key := range fc.doc.Keys() {
		if e.schema.Has(key) {
			continue
		}
		if _, ok := present[key]; ok {
			continue
		}
		fc.unexpected = append(fc.unexpected, key)

		d := diag.Diagnostic{
			Category: diag.UnexpectedLocaleKey,
			Message:  fmt.Sprintf("found unexpected key %q in %q", key, fc.path),
			File:     fc.path,
			Key:      key,
		}
		if modifier.IsDirective(key) {
			d.Category = diag.UnknownModifier
			d.Message = fmt.Sprintf("found unknown modifier %q in %q", key, fc.path)
		}
		e.reporter.Report(d)
	}
}

// healUndefined inserts every missing schema field with its own name as value.
func (e *Engine) healUndefined(fc *fileContext) {
	for _, key := range e.schema.Fields() {
		if fc.doc.Has(key) {
			continue
		}
		fc.undefined = append(fc.undefined, key)
		fc.doc.Set(key, key)
		e.reporter.Report(diag.Diagnostic{
			Category: diag.UndefinedLocaleKey,
			Message:  fmt.Sprintf("found undefined key %q in %q", key, fc.path),
			File:     fc.path,
			Key:      key,
		})
	}
}

func (e *Engine) checkUnfilled(fc *fileContext) {
	for _, key := range e.schema.Fields() {
		v, _ := fc.doc.Get(key)
		s := utils.ToString(v)
		if list, ok := utils.ToStrings(v); ok {
			s = strings.Join(list, "\n")
		}
		if s != "" && s != key {
			continue
		}
		e.reporter.Report(diag.Diagnostic{
			Category: diag.UnfilledLocaleKey,
			Message:  fmt.Sprintf("got unfilled key %q in %q", key, fc.path),
			File:     fc.path,
			Key:      key,
		})
	}
}

// rewrite puts the document in canonical order and writes it back to its file.
func (e *Engine) rewrite(fc *fileContext) error {
	fc.doc = fc.doc.Reordered(fc.dumpOrder)

	var buf bytes.Buffer
	if err := e.backend.Dump(fc.doc, &buf); err != nil {
		return fmt.Errorf("reconcile: encode %s: %w", fc.path, err)
	}

	mode := os.FileMode(0o644)
	if info, err := os.Stat(fc.path); err == nil {
		mode = info.Mode().Perm()
	}
	if err := os.WriteFile(fc.path, buf.Bytes(), mode); err != nil {
		return fmt.Errorf("reconcile: write %s: %w", fc.path, err)
	}
	return nil
}
