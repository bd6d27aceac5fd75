package export

import (
	"context"
	"fmt"
	"time"

	"sl10n/core/loader"
	"sl10n/core/locale"

	"github.com/google/uuid"
)

// Bundle is an immutable snapshot of the loaded locales.
type Bundle struct {
	ID          uuid.UUID
	CreatedAt   time.Time
	DefaultLang string
	// Languages are the loader index keys, sorted.
	Languages []string
	Records   map[string]*locale.Record
}

// Sink receives exported bundles.
type Sink interface {
	Name() string
	Write(ctx context.Context, b *Bundle) error
}

// NewBundle snapshots an initialized loader.
func NewBundle(l *loader.Loader) (*Bundle, error) {
	if !l.Initialized() {
		return nil, loader.ErrNotInitialized
	}

	b := &Bundle{
		ID:          uuid.New(),
		CreatedAt:   time.Now().UTC(),
		DefaultLang: l.DefaultLang(),
		Languages:   l.Languages(),
		Records:     make(map[string]*locale.Record),
	}
	for _, lang := range b.Languages {
		rec, err := l.Locale(lang)
		if err != nil {
			return nil, fmt.Errorf("export: %s: %w", lang, err)
		}
		b.Records[lang] = rec
	}
	return b, nil
}

// manifest is the JSON object stored next to the exported locales.
type manifest struct {
	ExportID    string    `json:"export_id"`
	CreatedAt   time.Time `json:"created_at"`
	DefaultLang string    `json:"default_lang"`
	Languages   []string  `json:"languages"`
	Fields      []string  `json:"fields"`
}

func (b *Bundle) manifest() manifest {
	m := manifest{
		ExportID:    b.ID.String(),
		CreatedAt:   b.CreatedAt,
		DefaultLang: b.DefaultLang,
		Languages:   b.Languages,
	}
	for _, rec := range b.Records {
		m.Fields = rec.Schema().Fields()
		break
	}
	return m
}
