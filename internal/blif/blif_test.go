package blif

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReadFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "a.blif")
	require.NoError(t, os.WriteFile(path, []byte(".model m\n.inputs a\n.end\n"), 0644))

	d, err := ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "m", d.Top().Name())
}

func TestReadFileMissing(t *testing.T) {
	_, err := ReadFile(filepath.Join(t.TempDir(), "missing.blif"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "missing.blif")
}

func TestReadFileReportsPath(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "bad.blif")
	require.NoError(t, os.WriteFile(path, []byte("garbage\n"), 0644))

	_, err := ReadFile(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), path+":1: expected directive")
}
