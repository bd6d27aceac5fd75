package reconcile

import (
	"errors"
	"fmt"

	"sl10n/core/document"
	"sl10n/core/locale"
	"sl10n/core/modifier"
)

// ErrExcluded is returned by Process for files carrying a true $exclude directive.
var ErrExcluded = errors.New("reconcile: file excluded")

// ParseError reports a document that the backend could not decode.
type ParseError struct {
	Path string
	Err  error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("reconcile: parse %s: %v", e.Path, e.Err)
}

func (e *ParseError) Unwrap() error { return e.Err }

// Result is the outcome of reconciling one file.
type Result struct {
	// Path is the reconciled file.
	Path string `json:"path"`

	// Excluded is true when the file carried $exclude; Record is nil then.
	Excluded bool `json:"excluded"`

	// Record is the validated locale record.
	Record *locale.Record `json:"-"`

	// Undefined lists schema keys that were missing and have been healed.
	Undefined []string `json:"undefined"`

	// Unexpected lists keys outside the schema, including unknown directives.
	Unexpected []string `json:"unexpected"`

	// Rewrites counts how many times the file was written back.
	Rewrites int `json:"rewrites"`
}

// fileContext is the working state of one Reconcile call.
type fileContext struct {
	path       string
	langCode   string
	doc        *document.Document
	mods       modifier.Set
	unexpected []string
	undefined  []string
	dumpOrder  []string
}
