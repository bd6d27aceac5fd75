package locale

import (
	"fmt"

	"sl10n/core/diag"
	"sl10n/core/document"

	"github.com/go-viper/mapstructure/v2"
)

// Record is an immutable, schema-shaped set of translated strings.
// It is safe for concurrent reads.
type Record struct {
	schema      *Schema
	langCode    string
	hasLangCode bool
	values      map[string]string
	reporter    diag.Reporter
}

// Schema returns the schema the record was built from.
func (r *Record) Schema() *Schema { return r.schema }

// LangCode returns the record's language code, or "" for a sample.
func (r *Record) LangCode() string { return r.langCode }

// HasLangCode reports whether a language code was assigned.
func (r *Record) HasLangCode() bool { return r.hasLangCode }

// Field returns the value of a schema field (or lang_code).
func (r *Record) Field(name string) (string, bool) {
	if name == LangCodeKey {
		return r.langCode, r.hasLangCode
	}
	v, ok := r.values[name]
	return v, ok
}

// Get returns the string stored under key. Keys outside the schema are reported
// as UnexpectedLocaleKey and the key itself is returned.
func (r *Record) Get(key string) string {
	if key == LangCodeKey {
		return r.langCode
	}
	if v, ok := r.values[key]; ok {
		return v
	}
	r.reporter.Report(diag.Diagnostic{
		Category: diag.UnexpectedLocaleKey,
		Message:  fmt.Sprintf("got unexpected key %q, returned the key", key),
		Key:      key,
		Lang:     r.langCode,
	})
	return key
}

// ToDocument returns every field, lang_code first, then the schema declaration order.
// An unset lang_code is stored as nil.
func (r *Record) ToDocument() *document.Document {
	doc := document.New()
	if r.hasLangCode {
		doc.Set(LangCodeKey, r.langCode)
	} else {
		doc.Set(LangCodeKey, nil)
	}
	for _, f := range r.schema.fields {
		doc.Set(f, r.values[f])
	}
	return doc
}

// ToMap returns the fields (and lang_code when set) as a plain map.
func (r *Record) ToMap() map[string]string {
	out := make(map[string]string, len(r.values)+1)
	for k, v := range r.values {
		out[k] = v
	}
	if r.hasLangCode {
		out[LangCodeKey] = r.langCode
	}
	return out
}

// Decode copies the record into out, a pointer to a struct. Struct fields are
// matched by their `l10n` tag, then case-insensitively by name.
func (r *Record) Decode(out any) error {
	dec, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		TagName: "l10n",
		Result:  out,
	})
	if err != nil {
		return fmt.Errorf("locale: %w", err)
	}
	if err := dec.Decode(r.ToMap()); err != nil {
		return fmt.Errorf("locale: decode %q: %w", r.langCode, err)
	}
	return nil
}
