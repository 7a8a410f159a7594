package encoding

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type sample struct {
	Name  string   `json:"name" yaml:"name"`
	Count int      `json:"count" yaml:"count"`
	Tags  []string `json:"tags" yaml:"tags"`
}

func TestParseJSON(t *testing.T) {
	got, err := ParseJSON[sample]([]byte(`{"name":"a","count":2,"tags":["x"]}`))
	require.NoError(t, err)
	assert.Equal(t, &sample{Name: "a", Count: 2, Tags: []string{"x"}}, got)

	_, err = ParseJSON[sample]([]byte(`{not json`))
	require.Error(t, err)
}

func TestYAMLRoundTrip(t *testing.T) {
	in := sample{Name: "repo", Count: 3, Tags: []string{"go", "cli"}}

	data, err := ToYAML(in)
	require.NoError(t, err)
	assert.Contains(t, string(data), "name: repo")

	out, err := ParseYAML[sample](data)
	require.NoError(t, err)
	assert.Equal(t, in, *out)
}

func TestReadFile_Missing(t *testing.T) {
	data, err := ReadFile(filepath.Join(t.TempDir(), "missing"))
	require.NoError(t, err)
	assert.Nil(t, data)
}

func TestWriteFileAtomic(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "value.json")

	require.NoError(t, WriteFileAtomic(path, []byte("first")))
	require.NoError(t, WriteFileAtomic(path, []byte("second")))

	data, err := ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "second", string(data))

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0600), info.Mode().Perm())

	entries, err := os.ReadDir(filepath.Dir(path))
	require.NoError(t, err)
	assert.Len(t, entries, 1, "temp files must not be left behind")
}

func TestRemoveFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "gone")

	require.NoError(t, RemoveFile(path))
	require.NoError(t, os.WriteFile(path, []byte("x"), 0600))
	require.NoError(t, RemoveFile(path))
	assert.False(t, FileExists(path))
}
