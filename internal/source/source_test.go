package source

import (
	"context"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegistryKnownSources(t *testing.T) {
	for _, name := range []string{"file", "stdin"} {
		ctor, err := Get(name)
		require.NoError(t, err, name)
		assert.NotNil(t, ctor())
	}
	assert.ElementsMatch(t, []string{"file", "stdin"}, Names())
}

func TestRegistryUnknownSource(t *testing.T) {
	_, err := Get("carrier-pigeon")
	assert.ErrorContains(t, err, "unknown dataset source")
}

func writeTemp(t *testing.T, content []byte) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "dataset.csv")
	require.NoError(t, os.WriteFile(path, content, 0o644))
	return path
}

func TestFileSourceRaw(t *testing.T) {
	path := writeTemp(t, []byte("4,a,b,c,hello\n"))

	rc, err := (&File{}).Open(context.Background(), Config{Path: path})
	require.NoError(t, err)
	defer rc.Close()

	got, err := io.ReadAll(rc)
	require.NoError(t, err)
	assert.Equal(t, "4,a,b,c,hello\n", string(got))
}

func TestFileSourceLatin1(t *testing.T) {
	// 0xE9 is 'é' in Latin-1; the decoder should emit the two-byte
	// UTF-8 sequence.
	path := writeTemp(t, []byte{'0', ',', 'a', ',', 'b', ',', 'c', ',', 0xE9, '\n'})

	rc, err := (&File{}).Open(context.Background(), Config{Path: path, Encoding: "latin1"})
	require.NoError(t, err)
	defer rc.Close()

	got, err := io.ReadAll(rc)
	require.NoError(t, err)
	assert.Equal(t, "0,a,b,c,é\n", string(got))
}

func TestFileSourceMissingPath(t *testing.T) {
	_, err := (&File{}).Open(context.Background(), Config{})
	assert.ErrorContains(t, err, "no dataset path")
}

func TestFileSourceUnreadable(t *testing.T) {
	_, err := (&File{}).Open(context.Background(), Config{Path: filepath.Join(t.TempDir(), "missing.csv")})
	assert.Error(t, err)
}

func TestFileSourceUnsupportedEncoding(t *testing.T) {
	path := writeTemp(t, []byte("0,a,b,c,x\n"))
	_, err := (&File{}).Open(context.Background(), Config{Path: path, Encoding: "ebcdic"})
	assert.ErrorContains(t, err, "unsupported encoding")
}
