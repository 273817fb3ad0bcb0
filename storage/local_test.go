package storage_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"portfolio-api/storage"
)

func writeFile(t *testing.T, root, name string, data []byte) {
	t.Helper()
	path := filepath.Join(root, filepath.FromSlash(name))
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, data, 0o644))
}

func TestLocalStoreGet(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "images/cover.png", []byte("png-bytes"))

	store, err := storage.NewLocalStore(dir)
	require.NoError(t, err)

	obj, err := store.Get(context.Background(), "images/cover.png")
	require.NoError(t, err)
	assert.Equal(t, []byte("png-bytes"), obj.Data)
	assert.Equal(t, "image/png", obj.ContentType)

	_, err = store.Get(context.Background(), "images/nope.png")
	assert.ErrorIs(t, err, storage.ErrObjectNotFound)
}

func TestLocalStoreList(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "images/a.png", []byte("a"))
	writeFile(t, dir, "images/b.jpg", []byte("bb"))
	writeFile(t, dir, "portfolio.xlsx", []byte("workbook"))

	store, err := storage.NewLocalStore(dir)
	require.NoError(t, err)

	infos, err := store.List(context.Background(), "images/")
	require.NoError(t, err)
	require.Len(t, infos, 2)
	assert.Equal(t, "images/a.png", infos[0].Key)
	assert.Equal(t, int64(1), infos[0].Size)
	assert.Equal(t, "images/b.jpg", infos[1].Key)
}

func TestLocalStorePing(t *testing.T) {
	dir := t.TempDir()
	store, err := storage.NewLocalStore(dir)
	require.NoError(t, err)
	assert.NoError(t, store.Ping(context.Background()))
}

func TestNewLocalStoreMissingDir(t *testing.T) {
	_, err := storage.NewLocalStore(filepath.Join(t.TempDir(), "missing"))
	assert.Error(t, err)
}
