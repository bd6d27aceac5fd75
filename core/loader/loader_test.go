package loader_test

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"sl10n/core/diag"
	"sl10n/core/document"
	"sl10n/core/loader"
	"sl10n/core/locale"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var schema = locale.MustSchema("title", "body")

func setup(t *testing.T, files map[string]string, opts ...loader.Option) (*loader.Loader, *diag.Collector, string) {
	t.Helper()
	dir := t.TempDir()
	for name, content := range files {
		require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(content), 0o644))
	}
	c := &diag.Collector{}
	opts = append([]loader.Option{loader.WithPath(dir), loader.WithReporter(c)}, opts...)
	l, err := loader.New(schema, opts...)
	require.NoError(t, err)
	return l, c, dir
}

func read(t *testing.T, path string) string {
	t.Helper()
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	return string(data)
}

const enJSON = `{
  "title": "Hello",
  "body": "World"
}
`

func TestNew_NilSchema(t *testing.T) {
	l, err := loader.New(nil)
	assert.Nil(t, l)
	assert.ErrorIs(t, err, loader.ErrNilSchema)
}

func TestNew_Defaults(t *testing.T) {
	l, err := loader.New(schema)
	require.NoError(t, err)
	assert.Equal(t, "lang", l.Path())
	assert.Equal(t, "en", l.DefaultLang())
	assert.Equal(t, "json", l.Backend().Ext())
	assert.False(t, l.Initialized())
}

func TestLocale_BeforeInit(t *testing.T) {
	l, _, _ := setup(t, nil)

	rec, err := l.Locale("en")
	assert.Nil(t, rec)
	assert.ErrorIs(t, err, loader.ErrNotInitialized)
}

func TestInit_GeneratesMissingDefault(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "nested", "lang")
	c := &diag.Collector{}
	l, err := loader.New(schema, loader.WithPath(dir), loader.WithReporter(c))
	require.NoError(t, err)

	require.NoError(t, l.Init())

	assert.True(t, l.Initialized())
	assert.Equal(t, 1, c.Count(diag.DefaultLangFileNotFound))
	assert.Equal(t, "{\n  \"title\": \"title\",\n  \"body\": \"body\"\n}\n", read(t, filepath.Join(dir, "en.json")))

	rec, err := l.Locale("")
	require.NoError(t, err)
	assert.Equal(t, "en", rec.LangCode())
	assert.Equal(t, "title", rec.Get("title"))
}

func TestInit_IndexesFiles(t *testing.T) {
	l, c, _ := setup(t, map[string]string{
		"en.json":    enJSON,
		"fr.json":    `{"title": "Bonjour", "body": "Monde"}`,
		"notes.txt":  "ignored",
		"broken.yml": "ignored: true",
	})
	require.NoError(t, os.Mkdir(filepath.Join(l.Path(), "sub.json"), 0o755))

	require.NoError(t, l.Init())

	assert.Equal(t, []string{"en", "fr"}, l.Languages())
	assert.Zero(t, c.Len())

	rec, err := l.Locale("fr")
	require.NoError(t, err)
	assert.Equal(t, "Bonjour", rec.Get("title"))

	results := l.Results()
	require.Len(t, results, 2)
	assert.Equal(t, "en.json", filepath.Base(results[0].Path))
	assert.Equal(t, "fr.json", filepath.Base(results[1].Path))
}

func TestInit_Twice(t *testing.T) {
	l, c, dir := setup(t, map[string]string{"en.json": enJSON})
	require.NoError(t, l.Init())

	require.NoError(t, os.WriteFile(filepath.Join(dir, "de.json"), []byte(enJSON), 0o644))
	require.NoError(t, l.Init())

	assert.Equal(t, 1, c.Count(diag.AlreadyInitialized))
	assert.Equal(t, []string{"en"}, l.Languages())
}

func TestLocale_FallsBackToDefault(t *testing.T) {
	l, c, _ := setup(t, map[string]string{"en.json": enJSON})
	require.NoError(t, l.Init())

	rec, err := l.Locale("xx")
	require.NoError(t, err)

	assert.Equal(t, "en", rec.LangCode())
	assert.Equal(t, 1, c.Count(diag.UndefinedLocale))
	assert.Equal(t, 1, c.Len())
}

func TestLocale_OverrideKeepsIndexKey(t *testing.T) {
	l, _, _ := setup(t, map[string]string{
		"en.json": enJSON,
		"de.json": `{"title": "Hallo", "body": "Welt", "$lang_code": "de-AT"}`,
	})
	require.NoError(t, l.Init())

	assert.Equal(t, []string{"de", "en"}, l.Languages())

	rec, err := l.Locale("de")
	require.NoError(t, err)
	assert.Equal(t, "de-AT", rec.LangCode())
	assert.Equal(t, "Hallo", rec.Get("title"))
}

func TestInit_SkipsExcludedAndIgnored(t *testing.T) {
	l, _, _ := setup(t, map[string]string{
		"en.json":    enJSON,
		"wip.json":   `{"$exclude": true}`,
		"draft.json": enJSON,
		"old.json":   enJSON,
	}, loader.WithIgnoreFilenames("draft", "old.json"))
	require.NoError(t, l.Init())

	assert.Equal(t, []string{"en"}, l.Languages())
	assert.Equal(t, `{"$exclude": true}`, read(t, filepath.Join(l.Path(), "wip.json")))

	results := l.Results()
	require.Len(t, results, 2)
	assert.True(t, results[1].Excluded)
}

func TestLocale_DefaultExcluded(t *testing.T) {
	l, _, _ := setup(t, map[string]string{
		"en.json": `{"$exclude": true}`,
		"fr.json": enJSON,
	})
	require.NoError(t, l.Init())

	_, err := l.Locale("de")
	assert.ErrorIs(t, err, loader.ErrDefaultLocaleMissing)

	rec, err := l.Locale("fr")
	require.NoError(t, err)
	assert.Equal(t, "fr", rec.LangCode())
}

func TestInit_ParseErrorPropagates(t *testing.T) {
	l, _, _ := setup(t, map[string]string{
		"en.json": enJSON,
		"fr.json": `{"title": `,
	})

	err := l.Init()
	require.Error(t, err)
	assert.False(t, l.Initialized())
}

func TestInit_HealsFiles(t *testing.T) {
	l, c, dir := setup(t, map[string]string{
		"en.json": `{"body": "World", "stale": "x"}`,
	})
	require.NoError(t, l.Init())

	assert.Equal(t, 1, c.Count(diag.UndefinedLocaleKey))
	assert.Equal(t, 1, c.Count(diag.UnexpectedLocaleKey))
	assert.Equal(t, `{
  "title": "title",
  "body": "World",
  "stale": "x"
}
`, read(t, filepath.Join(dir, "en.json")))
}

func TestCreateLangFile_CopiesDefault(t *testing.T) {
	l, c, dir := setup(t, map[string]string{
		"en.json": `{"title": "Hello", "body": ["line one", "line two"], "$redump": false, "extra": 1}`,
	})

	require.NoError(t, l.CreateLangFile("fr", false))

	assert.Equal(t, `{
  "title": "Hello",
  "body": [
    "line one",
    "line two"
  ]
}
`, read(t, filepath.Join(dir, "fr.json")))
	assert.Equal(t, 1, c.Count(diag.UnexpectedLocaleKey))

	require.NoError(t, l.Init())
	rec, err := l.Locale("fr")
	require.NoError(t, err)
	assert.Equal(t, "line one\nline two", rec.Get("body"))
}

func TestCreateLangFile_ExcludedDefaultUsesSample(t *testing.T) {
	l, _, dir := setup(t, map[string]string{"en.json": `{"$exclude": true, "title": "x"}`})

	require.NoError(t, l.CreateLangFile("fr", false))
	assert.Equal(t, "{\n  \"title\": \"title\",\n  \"body\": \"body\"\n}\n", read(t, filepath.Join(dir, "fr.json")))
}

func TestCreateLangFile_Exists(t *testing.T) {
	l, c, dir := setup(t, map[string]string{
		"en.json": enJSON,
		"fr.json": `{"title": "old"}`,
	})

	require.NoError(t, l.CreateLangFile("fr", false))
	assert.Equal(t, 1, c.Count(diag.LangFileAlreadyExists))
	assert.Equal(t, `{"title": "old"}`, read(t, filepath.Join(dir, "fr.json")))

	require.NoError(t, l.CreateLangFile("fr", true))
	assert.Equal(t, enJSON, read(t, filepath.Join(dir, "fr.json")))
}

func TestCreateLangFile_AfterInit(t *testing.T) {
	l, c, dir := setup(t, map[string]string{"en.json": enJSON})
	require.NoError(t, l.Init())

	require.NoError(t, l.CreateLangFile("it", false))

	assert.Equal(t, 1, c.Count(diag.AlreadyInitialized))
	assert.NoFileExists(t, filepath.Join(dir, "it.json"))
}

func TestStrict(t *testing.T) {
	l, c, _ := setup(t, map[string]string{
		"en.json": `{"title": "Hello"}`,
	}, loader.WithStrict(true))

	err := l.Init()
	var serr *diag.StrictError
	require.True(t, errors.As(err, &serr))
	require.Len(t, serr.Diagnostics, 1)
	assert.Equal(t, diag.UndefinedLocaleKey, serr.Diagnostics[0].Category)
	assert.Equal(t, 1, c.Len())

	// effects are kept
	assert.True(t, l.Initialized())

	_, err = l.Locale("en")
	assert.NoError(t, err)

	rec, err := l.Locale("xx")
	require.True(t, errors.As(err, &serr))
	assert.Equal(t, diag.UndefinedLocale, serr.Diagnostics[0].Category)
	assert.Equal(t, "en", rec.LangCode())
}

func TestInit_YAMLBackend(t *testing.T) {
	l, _, _ := setup(t, map[string]string{
		"en.yaml": "title: Hello\nbody: |-\n  one\n  two\n",
		"en.json": enJSON,
	}, loader.WithBackend(document.NewYAML(2)))
	require.NoError(t, l.Init())

	assert.Equal(t, []string{"en"}, l.Languages())
	rec, err := l.Locale("en")
	require.NoError(t, err)
	assert.Equal(t, "one\ntwo", rec.Get("body"))
}

func TestInit_IgnoredDefault(t *testing.T) {
	l, _, _ := setup(t, nil, loader.WithIgnoreFilenames("en"))
	require.NoError(t, l.Init())

	assert.Empty(t, l.Languages())
	_, err := l.Locale("en")
	assert.True(t, errors.Is(err, loader.ErrDefaultLocaleMissing))
}
