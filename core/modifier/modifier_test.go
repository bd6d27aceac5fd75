package modifier_test

import (
	"testing"

	"sl10n/core/document"
	"sl10n/core/modifier"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func docOf(pairs ...any) *document.Document {
	d := document.New()
	for i := 0; i+1 < len(pairs); i += 2 {
		d.Set(pairs[i].(string), pairs[i+1])
	}
	return d
}

func TestParse_Empty(t *testing.T) {
	s := modifier.Parse(docOf("title", "Hello"))

	assert.Nil(t, s.Pre.Exclude)
	assert.Nil(t, s.Post.Redump)
	assert.Nil(t, s.Post.LangCode)
	assert.Empty(t, s.Present)
	assert.False(t, s.Excluded())
	assert.False(t, s.ForceRedump())
	_, ok := s.LangCodeOverride()
	assert.False(t, ok)
}

func TestParse_AllDirectives(t *testing.T) {
	s := modifier.Parse(docOf(
		"$lang_code", "de-AT",
		"title", "Hallo",
		"$redump", true,
		"$exclude", false,
	))

	assert.Equal(t, []string{"$lang_code", "$redump", "$exclude"}, s.Present)
	require.NotNil(t, s.Pre.Exclude)
	assert.False(t, s.Excluded())
	assert.True(t, s.ForceRedump())
	lc, ok := s.LangCodeOverride()
	assert.True(t, ok)
	assert.Equal(t, "de-AT", lc)
}

func TestParse_UnknownDirectiveLeftUnclassified(t *testing.T) {
	s := modifier.Parse(docOf("$frobnicate", true, "$exclude", true))

	assert.Equal(t, []string{"$exclude"}, s.Present)
	assert.True(t, s.Excluded())
}

func TestParse_UninterpretableValues(t *testing.T) {
	s := modifier.Parse(docOf(
		"$exclude", "sometimes",
		"$redump", nil,
		"$lang_code", 42.0,
	))

	assert.Equal(t, []string{"$exclude", "$redump", "$lang_code"}, s.Present)
	assert.Nil(t, s.Pre.Exclude)
	assert.Nil(t, s.Post.Redump)
	assert.Nil(t, s.Post.LangCode)
}

func TestParse_StringBooleans(t *testing.T) {
	s := modifier.Parse(docOf("$exclude", "true"))
	assert.True(t, s.Excluded())
}

func TestParse_EmptyLangCodeIsNoOverride(t *testing.T) {
	s := modifier.Parse(docOf("$lang_code", ""))
	_, ok := s.LangCodeOverride()
	assert.False(t, ok)
}

func TestKnownAndAvailable(t *testing.T) {
	assert.True(t, modifier.Known("exclude"))
	assert.True(t, modifier.Known("lang_code"))
	assert.False(t, modifier.Known("$exclude"))
	assert.False(t, modifier.Known("nope"))
	assert.True(t, modifier.IsDirective("$anything"))
	assert.False(t, modifier.IsDirective("title"))

	pre, post := modifier.Available()
	assert.Equal(t, []string{"$exclude"}, pre)
	assert.Equal(t, []string{"$redump", "$lang_code"}, post)
}
