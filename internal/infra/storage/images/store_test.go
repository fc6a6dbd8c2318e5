package images

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// pngHeader сигнатура PNG, достаточная для определения типа
var pngHeader = []byte("\x89PNG\r\n\x1a\n\x00\x00\x00\rIHDR")

func TestSave(t *testing.T) {
	dir := t.TempDir()
	store, err := NewStore(dir, "/images/rooms", 1024)
	require.NoError(t, err)

	url, err := store.Save(context.Background(), bytes.NewReader(append(pngHeader, make([]byte, 100)...)))
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(url, "/images/rooms/"))
	assert.True(t, strings.HasSuffix(url, ".png"))

	data, err := os.ReadFile(filepath.Join(dir, strings.TrimPrefix(url, "/images/rooms/")))
	require.NoError(t, err)
	assert.Len(t, data, len(pngHeader)+100)
}

func TestSave_UnsupportedType(t *testing.T) {
	store, err := NewStore(t.TempDir(), "/images/rooms/", 1024)
	require.NoError(t, err)

	_, err = store.Save(context.Background(), strings.NewReader("just some text"))
	assert.ErrorIs(t, err, ErrUnsupportedType)
}

func TestSave_TooLarge(t *testing.T) {
	dir := t.TempDir()
	store, err := NewStore(dir, "/images/rooms/", 64)
	require.NoError(t, err)

	_, err = store.Save(context.Background(), bytes.NewReader(append(pngHeader, make([]byte, 100)...)))
	assert.ErrorIs(t, err, ErrTooLarge)

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Empty(t, entries)
}

func TestRemove(t *testing.T) {
	dir := t.TempDir()
	store, err := NewStore(dir, "/images/rooms/", 1024)
	require.NoError(t, err)

	url, err := store.Save(context.Background(), bytes.NewReader(pngHeader))
	require.NoError(t, err)

	require.NoError(t, store.Remove(context.Background(), url))
	require.NoError(t, store.Remove(context.Background(), url))
	require.NoError(t, store.Remove(context.Background(), "https://cdn.example.com/x.png"))

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Empty(t, entries)
}
