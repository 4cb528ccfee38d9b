package helpers_test

import (
	"os"
	"testing"

	"github.com/stretchr/testify/require"
)

// CreateTempFile creates a temporary file in the test's temporary directory,
// and automatically removes it when the test is done. fileName may contain a
// `*`, see os.CreateTemp.
func CreateTempFile(t *testing.T, fileName string) *os.File {
	t.Helper()

	tmpFile, err := os.CreateTemp(t.TempDir(), fileName)
	require.NoError(t, err)

	t.Cleanup(func() {
		tmpFile.Close()
		os.Remove(tmpFile.Name())
	})

	return tmpFile
}

// CreateTempFileWithContents creates a temporary file in the test's temporary
// directory, writes the given content to it, and automatically removes it when
// the test is done.
func CreateTempFileWithContents(t *testing.T, content string) string {
	t.Helper()

	return CreateTempFileWithExtension(t, "", content)
}

// CreateTempFileWithExtension is CreateTempFileWithContents for code that
// cares about the file extension, like config.LoadConfig. ext includes the
// dot, e.g. ".toml".
func CreateTempFileWithExtension(t *testing.T, ext string, content string) string {
	t.Helper()

	tmpFile := CreateTempFile(t, "markers-test-*"+ext)

	_, err := tmpFile.Write([]byte(content))
	require.NoError(t, err)

	err = tmpFile.Close()
	require.NoError(t, err)

	return tmpFile.Name()
}

// ReadFile returns the contents of the file at path, failing the test if it
// can't be read.
func ReadFile(t *testing.T, path string) string {
	t.Helper()

	content, err := os.ReadFile(path)
	require.NoError(t, err)

	return string(content)
}
