package locale

import (
	"errors"
	"fmt"
	"strings"

	"sl10n/core/diag"
)

// LangCodeKey is the reserved field holding a record's language code.
const LangCodeKey = "lang_code"

// DirectivePrefix marks file directives; schema fields may not start with it.
const DirectivePrefix = "$"

var (
	ErrEmptyField    = errors.New("locale: field name cannot be empty")
	ErrReservedField = errors.New("locale: field name is reserved")
)

// Schema is the ordered, closed set of text fields of a locale.
type Schema struct {
	fields []string
	index  map[string]struct{}
}

// NewSchema builds a schema from field names in declaration order.
// Duplicate names are collapsed to their first occurrence.
func NewSchema(fields ...string) (*Schema, error) {
	s := &Schema{index: make(map[string]struct{}, len(fields))}
	for _, f := range fields {
		f = strings.TrimSpace(f)
		switch {
		case f == "":
			return nil, ErrEmptyField
		case f == LangCodeKey:
			return nil, fmt.Errorf("%w: %q", ErrReservedField, f)
		case strings.HasPrefix(f, DirectivePrefix):
			return nil, fmt.Errorf("%w: %q uses the directive prefix", ErrReservedField, f)
		}
		if _, ok := s.index[f]; ok {
			continue
		}
		s.index[f] = struct{}{}
		s.fields = append(s.fields, f)
	}
	return s, nil
}

// MustSchema is like NewSchema but panics on error.
func MustSchema(fields ...string) *Schema {
	s, err := NewSchema(fields...)
	if err != nil {
		panic(err)
	}
	return s
}

// Fields returns the declared field names, excluding lang_code.
func (s *Schema) Fields() []string {
	out := make([]string, len(s.fields))
	copy(out, s.fields)
	return out
}

// Has reports whether name is a declared field. lang_code is not one.
func (s *Schema) Has(name string) bool {
	_, ok := s.index[name]
	return ok
}

// Sample returns a record where every field holds its own name and lang_code is unset.
// It is used to seed brand-new translation files.
func (s *Schema) Sample() *Record {
	values := make(map[string]string, len(s.fields))
	for _, f := range s.fields {
		values[f] = f
	}
	return &Record{schema: s, values: values, reporter: diag.Nop}
}

// NewRecord builds a record with the given language code. Fields missing from values
// are set to the empty string; values outside the schema are ignored.
func (s *Schema) NewRecord(langCode string, values map[string]string, reporter diag.Reporter) *Record {
	if reporter == nil {
		reporter = diag.Nop
	}
	own := make(map[string]string, len(s.fields))
	for _, f := range s.fields {
		own[f] = values[f]
	}
	return &Record{
		schema:      s,
		langCode:    langCode,
		hasLangCode: true,
		values:      own,
		reporter:    reporter,
	}
}
