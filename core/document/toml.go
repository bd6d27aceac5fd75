package document

import (
	"bytes"
	"fmt"
	"io"
	"sort"

	"github.com/pelletier/go-toml/v2"
	"github.com/pelletier/go-toml/v2/unstable"
)

// TOML reads and writes flat TOML documents.
//
// TOML has no null, so nil values are skipped on dump. Table values can only follow
// plain keys in TOML, so they are written after every other key.
type TOML struct{}

// NewTOML returns a TOML backend.
func NewTOML() *TOML {
	return &TOML{}
}

func (b *TOML) Ext() string { return "toml" }

func (b *TOML) Load(r io.Reader) (*Document, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}

	values := map[string]any{}
	if err := toml.Unmarshal(data, &values); err != nil {
		return nil, fmt.Errorf("toml: %w", err)
	}

	order, err := tomlKeyOrder(data)
	if err != nil {
		return nil, fmt.Errorf("toml: %w", err)
	}

	doc := New()
	for _, k := range order {
		if v, ok := values[k]; ok {
			doc.Set(k, normalize(v))
		}
	}
	// keys the order scan could not attribute, if any
	var rest []string
	for k := range values {
		if !doc.Has(k) {
			rest = append(rest, k)
		}
	}
	sort.Strings(rest)
	for _, k := range rest {
		doc.Set(k, normalize(values[k]))
	}
	return doc, nil
}

// tomlKeyOrder returns the top-level keys of data in order of first appearance.
func tomlKeyOrder(data []byte) ([]string, error) {
	var (
		order []string
		seen  = map[string]struct{}{}
		p     unstable.Parser
	)
	p.Reset(data)
	for p.NextExpression() {
		expr := p.Expression()
		switch expr.Kind {
		case unstable.KeyValue, unstable.Table, unstable.ArrayTable:
		default:
			continue
		}
		it := expr.Key()
		if !it.Next() {
			continue
		}
		k := string(it.Node().Data)
		if _, ok := seen[k]; ok {
			continue
		}
		seen[k] = struct{}{}
		order = append(order, k)
	}
	return order, p.Error()
}

func (b *TOML) Dump(doc *Document, w io.Writer) error {
	var plain, tables bytes.Buffer
	for _, k := range doc.Keys() {
		v, _ := doc.Get(k)
		if v == nil {
			continue
		}
		out, err := toml.Marshal(map[string]any{k: v})
		if err != nil {
			return fmt.Errorf("toml: value of %q: %w", k, err)
		}
		if isTable(v) {
			tables.WriteByte('\n')
			tables.Write(out)
			continue
		}
		plain.Write(out)
	}
	plain.Write(tables.Bytes())
	_, err := w.Write(plain.Bytes())
	return err
}

func isTable(v any) bool {
	switch t := v.(type) {
	case map[string]any:
		return true
	case []map[string]any:
		return true
	case []any:
		if len(t) == 0 {
			return false
		}
		for _, item := range t {
			if _, ok := item.(map[string]any); !ok {
				return false
			}
		}
		return true
	}
	return false
}
