package diag

import (
	"fmt"
	"strings"
	"sync"

	"go.uber.org/zap"
)

// Category classifies a diagnostic.
type Category string

const (
	DefaultLangFileNotFound Category = "DefaultLangFileNotFound"
	LangFileAlreadyExists   Category = "LangFileAlreadyExists"
	AlreadyInitialized      Category = "AlreadyInitialized"
	UndefinedLocaleKey      Category = "UndefinedLocaleKey"
	UnexpectedLocaleKey     Category = "UnexpectedLocaleKey"
	UnknownModifier         Category = "UnknownModifier"
	UnfilledLocaleKey       Category = "UnfilledLocaleKey"
	UndefinedLocale         Category = "UndefinedLocale"
)

// Diagnostic is a single recoverable condition.
type Diagnostic struct {
	Category Category
	Message  string
	// File, Key and Lang identify the subject; unused ones are empty.
	File string
	Key  string
	Lang string
}

func (d Diagnostic) String() string {
	return string(d.Category) + ": " + d.Message
}

// Reporter receives diagnostics.
type Reporter interface {
	Report(d Diagnostic)
}

// ReporterFunc adapts a function to the Reporter interface.
type ReporterFunc func(d Diagnostic)

func (f ReporterFunc) Report(d Diagnostic) { f(d) }

// Nop discards every diagnostic.
var Nop Reporter = ReporterFunc(func(Diagnostic) {})

// LogReporter writes diagnostics to a zap logger at warn level.
type LogReporter struct {
	Logger *zap.Logger
}

// NewLogReporter returns a reporter logging to l. A nil logger discards output.
func NewLogReporter(l *zap.Logger) *LogReporter {
	if l == nil {
		l = zap.NewNop()
	}
	return &LogReporter{Logger: l}
}

func (r *LogReporter) Report(d Diagnostic) {
	fields := []zap.Field{zap.String("category", string(d.Category))}
	if d.File != "" {
		fields = append(fields, zap.String("file", d.File))
	}
	if d.Key != "" {
		fields = append(fields, zap.String("key", d.Key))
	}
	if d.Lang != "" {
		fields = append(fields, zap.String("lang", d.Lang))
	}
	r.Logger.Warn(d.Message, fields...)
}

// Collector records every diagnostic it receives. It is safe for concurrent use.
type Collector struct {
	mu    sync.Mutex
	diags []Diagnostic
}

func (c *Collector) Report(d Diagnostic) {
	c.mu.Lock()
	c.diags = append(c.diags, d)
	c.mu.Unlock()
}

// Diagnostics returns a copy of the recorded diagnostics in arrival order.
func (c *Collector) Diagnostics() []Diagnostic {
	c.mu.Lock()
	defer c.mu.Unlock()
	out := make([]Diagnostic, len(c.diags))
	copy(out, c.diags)
	return out
}

// Count returns how many diagnostics of the given category were recorded.
func (c *Collector) Count(category Category) int {
	c.mu.Lock()
	defer c.mu.Unlock()
	n := 0
	for _, d := range c.diags {
		if d.Category == category {
			n++
		}
	}
	return n
}

// Len returns the number of recorded diagnostics.
func (c *Collector) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.diags)
}

// Reset drops every recorded diagnostic.
func (c *Collector) Reset() {
	c.mu.Lock()
	c.diags = nil
	c.mu.Unlock()
}

type multi []Reporter

func (m multi) Report(d Diagnostic) {
	for _, r := range m {
		r.Report(d)
	}
}

// Multi fans a diagnostic out to every non-nil reporter.
func Multi(reporters ...Reporter) Reporter {
	var m multi
	for _, r := range reporters {
		if r != nil {
			m = append(m, r)
		}
	}
	return m
}

// StrictError is returned in strict mode when an operation emitted diagnostics.
type StrictError struct {
	Diagnostics []Diagnostic
}

func (e *StrictError) Error() string {
	var b strings.Builder
	fmt.Fprintf(&b, "caught %d diagnostics in strict mode:", len(e.Diagnostics))
	for _, d := range e.Diagnostics {
		b.WriteString("\n- ")
		b.WriteString(d.String())
	}
	return b.String()
}
