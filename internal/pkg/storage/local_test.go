package storage

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLocalStorage_UploadAndDelete(t *testing.T) {
	ctx := context.Background()
	s, err := NewLocalStorage(t.TempDir(), "http://localhost:8080/uploads/")
	require.NoError(t, err)

	rel, err := s.Upload(ctx, strings.NewReader("img"), "posts/w1/a.jpg", "image/jpeg")
	require.NoError(t, err)
	assert.Equal(t, "posts/w1/a.jpg", rel)
	assert.Equal(t, "http://localhost:8080/uploads/posts/w1/a.jpg", s.URL(rel))

	content, err := os.ReadFile(filepath.Join(s.BasePath(), "posts", "w1", "a.jpg"))
	require.NoError(t, err)
	assert.Equal(t, "img", string(content))

	require.NoError(t, s.Delete(ctx, rel))
	assert.NoError(t, s.Delete(ctx, rel), "deleting twice is fine")
}

func TestLocalStorage_RejectsEscapingPaths(t *testing.T) {
	ctx := context.Background()
	s, err := NewLocalStorage(t.TempDir(), "http://localhost/uploads")
	require.NoError(t, err)

	for _, p := range []string{"../secret.txt", "posts/../../x", "/etc/passwd", "."} {
		_, err := s.Upload(ctx, strings.NewReader("x"), p, "text/plain")
		assert.ErrorIs(t, err, ErrInvalidPath, p)
	}
}
