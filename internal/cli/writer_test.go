package cli

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOutputWriterWritesContent(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.swift")

	require.NoError(t, NewOutputWriter().Write(path, "hello\n"))

	content, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "hello\n", string(content))
}

func TestOutputWriterCreatesParentDirectories(t *testing.T) {
	path := filepath.Join(t.TempDir(), "a", "b", "out.swift")

	require.NoError(t, NewOutputWriter().Write(path, "x"))

	_, err := os.Stat(path)
	assert.NoError(t, err)
}

func TestOutputWriterReplacesExistingFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.swift")
	require.NoError(t, os.WriteFile(path, []byte("old"), 0644))

	require.NoError(t, NewOutputWriter().Write(path, "new"))

	content, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "new", string(content))
}

func TestOutputWriterLeavesNoTempFiles(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, NewOutputWriter().Write(filepath.Join(dir, "out.swift"), "x"))

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Len(t, entries, 1)
}
