package source

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/klauspost/compress/zstd"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReadFile_Plain(t *testing.T) {
	path := filepath.Join(t.TempDir(), "session.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"level": 1}`), 0644))

	data, err := ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, `{"level": 1}`, string(data))
}

func TestReadFile_Zstd(t *testing.T) {
	path := filepath.Join(t.TempDir(), "session.json.zst")

	f, err := os.Create(path)
	require.NoError(t, err)
	enc, err := zstd.NewWriter(f)
	require.NoError(t, err)
	_, err = enc.Write([]byte(`{"level": 2}`))
	require.NoError(t, err)
	require.NoError(t, enc.Close())
	require.NoError(t, f.Close())

	data, err := ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, `{"level": 2}`, string(data))
}

func TestReadFile_ZstdCorrupt(t *testing.T) {
	path := filepath.Join(t.TempDir(), "broken.zst")
	require.NoError(t, os.WriteFile(path, []byte("not zstd at all"), 0644))

	_, err := ReadFile(path)
	assert.Error(t, err)
}

func TestReadFile_Missing(t *testing.T) {
	_, err := ReadFile(filepath.Join(t.TempDir(), "nope"))
	assert.True(t, os.IsNotExist(err))
}
