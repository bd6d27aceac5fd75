package document

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strings"
)

// JSON is the default backend. Keys keep their file order on load and dump.
type JSON struct {
	indent string
}

// NewJSON returns a JSON backend writing with the given indentation width.
func NewJSON(indent int) *JSON {
	return &JSON{indent: strings.Repeat(" ", indentOrDefault(indent))}
}

func (b *JSON) Ext() string { return "json" }

func (b *JSON) Load(r io.Reader) (*Document, error) {
	dec := json.NewDecoder(r)

	t, err := dec.Token()
	if err != nil {
		return nil, fmt.Errorf("json: %w", err)
	}
	if delim, ok := t.(json.Delim); !ok || delim != '{' {
		return nil, ErrNotObject
	}

	doc := New()
	for dec.More() {
		kt, err := dec.Token()
		if err != nil {
			return nil, fmt.Errorf("json: %w", err)
		}
		key, ok := kt.(string)
		if !ok {
			return nil, fmt.Errorf("json: expected string key, got %T", kt)
		}

		var v any
		if err := dec.Decode(&v); err != nil {
			return nil, fmt.Errorf("json: value of %q: %w", key, err)
		}
		doc.Set(key, normalize(v))
	}

	// closing brace
	if _, err := dec.Token(); err != nil {
		return nil, fmt.Errorf("json: %w", err)
	}
	if _, err := dec.Token(); !errors.Is(err, io.EOF) {
		return nil, errors.New("json: unexpected data after top-level object")
	}

	return doc, nil
}

func (b *JSON) Dump(doc *Document, w io.Writer) error {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, k := range doc.Keys() {
		if i > 0 {
			buf.WriteByte(',')
		}
		buf.WriteByte('\n')
		buf.WriteString(b.indent)

		key, err := b.encode(k)
		if err != nil {
			return err
		}
		buf.Write(key)
		buf.WriteString(": ")

		v, _ := doc.Get(k)
		val, err := b.encode(v)
		if err != nil {
			return fmt.Errorf("json: value of %q: %w", k, err)
		}
		buf.Write(val)
	}
	if doc.Len() > 0 {
		buf.WriteByte('\n')
	}
	buf.WriteString("}\n")

	_, err := w.Write(buf.Bytes())
	return err
}

// encode marshals v one nesting level deep, without HTML escaping.
func (b *JSON) encode(v any) ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent(b.indent, b.indent)
	if err := enc.Encode(v); err != nil {
		return nil, err
	}
	return bytes.TrimRight(buf.Bytes(), "\n"), nil
}
