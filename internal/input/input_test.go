package input

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFileExists(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	path := filepath.Join(dir, "checks.json")
	require.NoError(t, os.WriteFile(path, []byte("[]"), 0o644))

	require.NoError(t, FileExists(path))
}

func TestFileExists_Missing(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "index.html")

	err := FileExists(path)
	require.ErrorIs(t, err, ErrMissingInput)
	assert.Contains(t, err.Error(), path+" does not exist")
}

func TestFileExists_DirectoryAndEmpty(t *testing.T) {
	t.Parallel()

	require.ErrorIs(t, FileExists(t.TempDir()), ErrMissingInput)
	require.ErrorIs(t, FileExists(""), ErrMissingInput)
}

func TestValidURL(t *testing.T) {
	t.Parallel()

	for _, raw := range []string{
		"http://example.com",
		"https://example.com/index.html?x=1",
		"https://localhost:8080/",
	} {
		require.NoError(t, ValidURL(raw), raw)
	}
}

func TestValidURL_Rejects(t *testing.T) {
	t.Parallel()

	for _, raw := range []string{
		"",
		"example.com",
		"ftp://example.com/file",
		"file:///etc/passwd",
		"https://",
		"httpx://example.com",
	} {
		err := ValidURL(raw)
		require.ErrorIs(t, err, ErrMissingInput, raw)
		assert.Contains(t, err.Error(), "does not look like a valid url")
	}
}
