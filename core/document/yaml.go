package document

import (
	"errors"
	"fmt"
	"io"

	"gopkg.in/yaml.v3"
)

// YAML reads and writes block-style YAML mappings.
type YAML struct {
	indent int
}

// NewYAML returns a YAML backend writing with the given indentation width.
func NewYAML(indent int) *YAML {
	return &YAML{indent: indentOrDefault(indent)}
}

func (b *YAML) Ext() string { return "yaml" }

func (b *YAML) Load(r io.Reader) (*Document, error) {
	var root yaml.Node
	if err := yaml.NewDecoder(r).Decode(&root); err != nil {
		if errors.Is(err, io.EOF) {
			return New(), nil
		}
		return nil, fmt.Errorf("yaml: %w", err)
	}

	node := &root
	if node.Kind == yaml.DocumentNode {
		if len(node.Content) == 0 {
			return New(), nil
		}
		node = node.Content[0]
	}
	if node.Kind == yaml.ScalarNode && node.Tag == "!!null" {
		return New(), nil
	}
	if node.Kind != yaml.MappingNode {
		return nil, ErrNotObject
	}

	doc := New()
	for i := 0; i+1 < len(node.Content); i += 2 {
		k, v := node.Content[i], node.Content[i+1]
		var val any
		if err := v.Decode(&val); err != nil {
			return nil, fmt.Errorf("yaml: value of %q: %w", k.Value, err)
		}
		doc.Set(k.Value, normalize(val))
	}
	return doc, nil
}

func (b *YAML) Dump(doc *Document, w io.Writer) error {
	mapping := &yaml.Node{Kind: yaml.MappingNode}
	for _, k := range doc.Keys() {
		v, _ := doc.Get(k)

		var val yaml.Node
		if err := val.Encode(v); err != nil {
			return fmt.Errorf("yaml: value of %q: %w", k, err)
		}
		mapping.Content = append(mapping.Content,
			&yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: k},
			&val,
		)
	}

	enc := yaml.NewEncoder(w)
	enc.SetIndent(b.indent)
	if err := enc.Encode(mapping); err != nil {
		return fmt.Errorf("yaml: %w", err)
	}
	return enc.Close()
}
