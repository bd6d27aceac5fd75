package locale_test

import (
	"errors"
	"testing"

	"sl10n/core/diag"
	"sl10n/core/locale"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func topicSchema() *locale.Schema {
	return locale.MustSchema("topic_title", "topic_text", "topic_conclusion")
}

func TestNewSchema(t *testing.T) {
	s, err := locale.NewSchema("b", "a", "b", " c ")
	require.NoError(t, err)
	assert.Equal(t, []string{"b", "a", "c"}, s.Fields())
	assert.True(t, s.Has("a"))
	assert.False(t, s.Has(locale.LangCodeKey))
}

func TestNewSchema_Rejects(t *testing.T) {
	tests := []struct {
		name   string
		fields []string
		err    error
	}{
		{"Empty", []string{"a", ""}, locale.ErrEmptyField},
		{"LangCode", []string{"lang_code"}, locale.ErrReservedField},
		{"DirectivePrefix", []string{"$exclude"}, locale.ErrReservedField},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := locale.NewSchema(tt.fields...)
			assert.True(t, errors.Is(err, tt.err))
		})
	}

	assert.Panics(t, func() { locale.MustSchema("lang_code") })
}

func TestSchema_FieldsIsCopy(t *testing.T) {
	s := topicSchema()
	f := s.Fields()
	f[0] = "changed"
	assert.Equal(t, "topic_title", s.Fields()[0])
}

func TestSample(t *testing.T) {
	r := topicSchema().Sample()

	assert.False(t, r.HasLangCode())
	assert.Equal(t, "", r.LangCode())
	for _, f := range topicSchema().Fields() {
		v, ok := r.Field(f)
		assert.True(t, ok)
		assert.Equal(t, f, v)
	}

	doc := r.ToDocument()
	assert.Equal(t, []string{"lang_code", "topic_title", "topic_text", "topic_conclusion"}, doc.Keys())
	v, _ := doc.Get("lang_code")
	assert.Nil(t, v)
}

func TestRecord_ToDocument(t *testing.T) {
	r := topicSchema().NewRecord("fr", map[string]string{
		"topic_conclusion": "fin",
		"topic_title":      "titre",
		"unknown":          "ignored",
	}, nil)

	doc := r.ToDocument()
	assert.Equal(t, []string{"lang_code", "topic_title", "topic_text", "topic_conclusion"}, doc.Keys())
	v, _ := doc.Get("lang_code")
	assert.Equal(t, "fr", v)
	v, _ = doc.Get("topic_text")
	assert.Equal(t, "", v)

	m := r.ToMap()
	assert.Equal(t, "titre", m["topic_title"])
	assert.Equal(t, "fr", m["lang_code"])
	assert.NotContains(t, m, "unknown")
}

func TestRecord_Get(t *testing.T) {
	c := &diag.Collector{}
	r := topicSchema().NewRecord("en", map[string]string{"topic_title": "Title"}, c)

	assert.Equal(t, "Title", r.Get("topic_title"))
	assert.Equal(t, "en", r.Get("lang_code"))
	assert.Equal(t, 0, c.Len())

	assert.Equal(t, "unknown_key", r.Get("unknown_key"))
	require.Equal(t, 1, c.Count(diag.UnexpectedLocaleKey))
	d := c.Diagnostics()[0]
	assert.Equal(t, "unknown_key", d.Key)
	assert.Equal(t, "en", d.Lang)
}

func TestRecord_Decode(t *testing.T) {
	r := topicSchema().NewRecord("de", map[string]string{
		"topic_title":      "Titel",
		"topic_text":       "a\nb",
		"topic_conclusion": "Ende",
	}, nil)

	var view struct {
		LangCode   string `l10n:"lang_code"`
		Title      string `l10n:"topic_title"`
		Text       string `l10n:"topic_text"`
		Conclusion string `l10n:"topic_conclusion"`
	}
	require.NoError(t, r.Decode(&view))

	assert.Equal(t, "de", view.LangCode)
	assert.Equal(t, "Titel", view.Title)
	assert.Equal(t, "a\nb", view.Text)
	assert.Equal(t, "Ende", view.Conclusion)
}

func TestRecord_DecodeNotPointer(t *testing.T) {
	r := topicSchema().Sample()
	var view struct{}
	assert.Error(t, r.Decode(view))
}
