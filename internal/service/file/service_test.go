package file

import (
	"bytes"
	"context"
	"io"
	"strings"
	"testing"

	"github.com/fastep-work/fastep-backend-go/internal/pkg/storage"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var pngHeader = []byte("\x89PNG\r\n\x1a\n\x00\x00\x00\rIHDR")

func newTestService(t *testing.T, maxBytes int64) (FileService, *storage.LocalStorage) {
	t.Helper()
	s, err := storage.NewLocalStorage(t.TempDir(), "http://localhost:8080/uploads")
	require.NoError(t, err)
	return NewFileService(s, maxBytes), s
}

func TestUploadPhoto_StoresUnderKindFolder(t *testing.T) {
	svc, _ := newTestService(t, 1024)

	photo, err := svc.UploadPhoto(context.Background(), PhotoKindPost, "w1", bytes.NewReader(pngHeader))
	require.NoError(t, err)

	assert.Equal(t, "image/png", photo.ContentType)
	assert.True(t, strings.HasPrefix(photo.Path, "posts/w1/"), photo.Path)
	assert.True(t, strings.HasSuffix(photo.Path, ".png"), photo.Path)
	assert.Equal(t, "http://localhost:8080/uploads/"+photo.Path, photo.URL)

	require.NoError(t, svc.DeleteFile(context.Background(), photo.Path))
}

func TestUploadPhoto_ProfileFolder(t *testing.T) {
	svc, _ := newTestService(t, 1024)

	jpeg := append([]byte("\xff\xd8\xff\xe0"), make([]byte, 20)...)
	photo, err := svc.UploadPhoto(context.Background(), PhotoKindProfile, "w2", bytes.NewReader(jpeg))
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(photo.Path, "workers/w2/"), photo.Path)
	assert.True(t, strings.HasSuffix(photo.Path, ".jpg"), photo.Path)
}

func TestUploadPhoto_Rejections(t *testing.T) {
	ctx := context.Background()
	svc, _ := newTestService(t, 32)

	_, err := svc.UploadPhoto(ctx, PhotoKindPost, "w1", strings.NewReader("just some text"))
	assert.ErrorIs(t, err, ErrUnsupportedPhotoType)

	_, err = svc.UploadPhoto(ctx, PhotoKindPost, "w1", strings.NewReader(""))
	assert.ErrorIs(t, err, ErrUnsupportedPhotoType)

	_, err = svc.UploadPhoto(ctx, PhotoKind("avatar"), "w1", bytes.NewReader(pngHeader))
	assert.ErrorIs(t, err, ErrUnknownPhotoKind)

	big := io.MultiReader(bytes.NewReader(pngHeader), bytes.NewReader(make([]byte, 64)))
	_, err = svc.UploadPhoto(ctx, PhotoKindPost, "w1", big)
	assert.ErrorIs(t, err, ErrPhotoTooLarge)
}
