package export

import (
	"os"
	"path/filepath"
	"testing"

	"sl10n/core/loader"
	"sl10n/core/locale"

	"github.com/stretchr/testify/require"
)

// newLoader initializes a loader over en and de translation files.
func newLoader(t *testing.T) *loader.Loader {
	t.Helper()
	dir := t.TempDir()
	files := map[string]string{
		"en.json": "{\n  \"title\": \"Hello\",\n  \"body\": \"World\"\n}\n",
		"de.json": "{\n  \"title\": \"Hallo\",\n  \"body\": \"Welt\",\n  \"$lang_code\": \"de-AT\"\n}\n",
	}
	for name, content := range files {
		require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(content), 0o644))
	}

	l, err := loader.New(locale.MustSchema("title", "body"), loader.WithPath(dir))
	require.NoError(t, err)
	require.NoError(t, l.Init())
	return l
}

func newBundle(t *testing.T) *Bundle {
	t.Helper()
	b, err := NewBundle(newLoader(t))
	require.NoError(t, err)
	return b
}
