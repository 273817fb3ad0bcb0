package services_test

import (
	"context"
	"encoding/base64"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"portfolio-api/cmd/api/services"
	"portfolio-api/cmd/api/trace"
	"portfolio-api/storage"
)

// 최소한의 매직 바이트만 있으면 스니핑이 동작한다.
var (
	pngBytes = []byte{0x89, 'P', 'N', 'G', 0x0D, 0x0A, 0x1A, 0x0A, 0, 0, 0, 0}
	gifBytes = []byte("GIF89a......")
)

func writeImage(t *testing.T, dir, name string, data []byte) {
	t.Helper()
	path := filepath.Join(dir, filepath.FromSlash(name))
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, data, 0o644))
}

func TestGalleryServiceList(t *testing.T) {
	dir := t.TempDir()
	writeImage(t, dir, "images/cover.png", pngBytes)
	writeImage(t, dir, "images/anim.gif", gifBytes)
	writeImage(t, dir, "images/readme.txt", []byte("not an image"))
	writeImage(t, dir, "portfolio.xlsx", []byte("outside the folder"))

	store, err := storage.NewLocalStore(dir)
	require.NoError(t, err)

	images, err := services.NewGalleryService(store, "images/").List(context.Background())
	require.NoError(t, err)

	// txt 는 조용히 건너뛰고, 폴더 밖 오브젝트는 목록에 없다.
	require.Len(t, images, 2)
	assert.Equal(t, "images/anim.gif", images[0].Name)
	assert.Equal(t, "image/gif", images[0].MimeType)
	assert.Equal(t, "images/cover.png", images[1].Name)
	assert.Equal(t, "image/png", images[1].MimeType)

	decoded, err := base64.StdEncoding.DecodeString(images[1].Data)
	require.NoError(t, err)
	assert.Equal(t, pngBytes, decoded)
}

func TestGalleryServiceSniffsMissingContentType(t *testing.T) {
	dir := t.TempDir()
	// 확장자가 없어 스토어가 content type 을 주지 못하는 경우.
	writeImage(t, dir, "images/cover", pngBytes)

	store, err := storage.NewLocalStore(dir)
	require.NoError(t, err)

	images, err := services.NewGalleryService(store, "images/").List(context.Background())
	require.NoError(t, err)
	require.Len(t, images, 1)
	assert.Equal(t, "image/png", images[0].MimeType)
}

func TestGalleryServiceSpanSequence(t *testing.T) {
	dir := t.TempDir()
	writeImage(t, dir, "images/cover.png", pngBytes)
	writeImage(t, dir, "images/anim.gif", gifBytes)

	store, err := storage.NewLocalStore(dir)
	require.NoError(t, err)

	ctx := trace.WithRequestAndSpan(context.Background(), trace.GenerateID(), 0)
	_, err = services.NewGalleryService(store, "images/").List(ctx)
	require.NoError(t, err)

	// list 1번에 이미지 GET 2번, span 은 3 까지 증가한다.
	assert.Equal(t, "3", trace.CurrentSpanID(ctx))
}

func TestGalleryServiceFolderNotResolved(t *testing.T) {
	store, err := storage.NewLocalStore(t.TempDir())
	require.NoError(t, err)

	_, err = services.NewGalleryService(store, "").List(context.Background())
	assert.ErrorIs(t, err, storage.ErrFolderNotResolved)
}

func TestGalleryServiceEmptyFolder(t *testing.T) {
	store, err := storage.NewLocalStore(t.TempDir())
	require.NoError(t, err)

	images, err := services.NewGalleryService(store, "images/").List(context.Background())
	require.NoError(t, err)
	assert.NotNil(t, images)
	assert.Len(t, images, 0)
}
