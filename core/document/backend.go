package document

import (
	"errors"
	"fmt"
	"io"
	"strings"
)

var (
	// ErrNotObject is returned when the top level of a file is not a key/value object.
	ErrNotObject = errors.New("document: top level is not a key/value object")
	// ErrUnknownFormat is returned by ForFormat for unsupported formats.
	ErrUnknownFormat = errors.New("document: unknown format")
)

// DefaultIndent is the indentation used when none is configured.
const DefaultIndent = 2

// Backend loads and dumps documents of one file format.
type Backend interface {
	// Ext returns the file extension handled, without the leading dot (e.g. "json").
	Ext() string
	// Load decodes a whole document from r.
	Load(r io.Reader) (*Document, error)
	// Dump encodes doc to w, keeping its key order.
	Dump(doc *Document, w io.Writer) error
}

// ForFormat returns the backend registered for format ("json", "yaml"/"yml", "toml").
func ForFormat(format string, indent int) (Backend, error) {
	switch strings.ToLower(strings.TrimSpace(format)) {
	case "", "json":
		return NewJSON(indent), nil
	case "yaml", "yml":
		return NewYAML(indent), nil
	case "toml":
		return NewTOML(), nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownFormat, format)
	}
}

func indentOrDefault(indent int) int {
	if indent < 1 {
		return DefaultIndent
	}
	return indent
}
