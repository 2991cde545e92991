package testutil

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// WriteFile creates a test file with content, creating parent directories
func WriteFile(t *testing.T, fs afero.Fs, path, content string) {
	t.Helper()
	require.NoError(t, fs.MkdirAll(filepath.Dir(path), 0755), "failed to create directory")
	require.NoError(t, afero.WriteFile(fs, path, []byte(content), 0644), "failed to write file")
}

// ReadFile returns the content of a test file
func ReadFile(t *testing.T, fs afero.Fs, path string) []byte {
	t.Helper()
	data, err := afero.ReadFile(fs, path)
	require.NoError(t, err, "failed to read file %s", path)
	return data
}

// AssertFileExists checks if a file exists
func AssertFileExists(t *testing.T, fs afero.Fs, path string) {
	t.Helper()
	_, err := fs.Stat(path)
	assert.NoError(t, err, "file does not exist: %s", path)
}

// AssertFileNotExists checks if a file does not exist
func AssertFileNotExists(t *testing.T, fs afero.Fs, path string) {
	t.Helper()
	_, err := fs.Stat(path)
	assert.True(t, os.IsNotExist(err), "file should not exist: %s", path)
}

// AssertFileContent checks file content matches expected
func AssertFileContent(t *testing.T, fs afero.Fs, path, expected string) {
	t.Helper()
	assert.Equal(t, expected, string(ReadFile(t, fs, path)), "file content mismatch for %s", path)
}
