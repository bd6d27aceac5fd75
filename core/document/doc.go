// Package document holds the raw, ordered key/value content of one translation file
// and the pluggable backends that load and dump it.
//
// A Document keeps keys in the order they were read so that rewrites produce stable
// diffs. Values are whatever the backend decoded: strings, lists of strings (the
// multi-line text convention), and directive scalars such as booleans.
//
// # Backends
//
// A Backend is a capability interface with three members: the file extension it
// handles, Load and Dump. Any implementation can be plugged into the loader.
//
//   - JSON (default): order-preserving token stream decoding, indented output.
//   - YAML: gopkg.in/yaml.v3 node API, which keeps mapping order.
//   - TOML: github.com/pelletier/go-toml/v2 for values, its unstable parser for key order.
//
// # Usage
//
//	b, err := document.ForFormat("yaml", 2)
//	doc, err := b.Load(f)
//	doc.Set("greeting", "Hello")
//	err = b.Dump(doc, w)
package document
