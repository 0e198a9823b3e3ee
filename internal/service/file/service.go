package file

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"path"

	"github.com/fastep-work/fastep-backend-go/internal/pkg/storage"
	"github.com/google/uuid"
)

var (
	ErrUnsupportedPhotoType = errors.New("only jpeg, png and webp photos are allowed")
	ErrPhotoTooLarge        = errors.New("photo is too large")
	ErrUnknownPhotoKind     = errors.New("photo kind must be post or profile")
)

// PhotoKind selects the folder an upload is filed under.
type PhotoKind string

const (
	PhotoKindPost    PhotoKind = "post"
	PhotoKindProfile PhotoKind = "profile"
)

var photoFolders = map[PhotoKind]string{
	PhotoKindPost:    "posts",
	PhotoKindProfile: "workers",
}

var photoExtensions = map[string]string{
	"image/jpeg": ".jpg",
	"image/png":  ".png",
	"image/webp": ".webp",
}

// UploadedPhoto is returned to the client, which then sets URL as a post image_url or worker photo_url.
type UploadedPhoto struct {
	Path        string `json:"path"`
	URL         string `json:"url"`
	ContentType string `json:"content_type"`
}

type FileService interface {
	UploadPhoto(ctx context.Context, kind PhotoKind, workerID string, file io.Reader) (*UploadedPhoto, error)
	DeleteFile(ctx context.Context, path string) error
}

type fileServiceImpl struct {
	storage       storage.FileStorage
	maxPhotoBytes int64
}

func NewFileService(storage storage.FileStorage, maxPhotoBytes int64) FileService {
	return &fileServiceImpl{
		storage:       storage,
		maxPhotoBytes: maxPhotoBytes,
	}
}

// UploadPhoto sniffs the content type instead of trusting the client's filename.
func (s *fileServiceImpl) UploadPhoto(ctx context.Context, kind PhotoKind, workerID string, file io.Reader) (*UploadedPhoto, error) {
	folder, ok := photoFolders[kind]
	if !ok {
		return nil, ErrUnknownPhotoKind
	}

	br := bufio.NewReaderSize(file, 512)
	head, err := br.Peek(512)
	if err != nil && !errors.Is(err, io.EOF) && !errors.Is(err, bufio.ErrBufferFull) {
		return nil, fmt.Errorf("failed to read photo: %w", err)
	}
	if len(head) == 0 {
		return nil, ErrUnsupportedPhotoType
	}

	contentType := http.DetectContentType(head)
	ext, ok := photoExtensions[contentType]
	if !ok {
		return nil, ErrUnsupportedPhotoType
	}

	id, err := uuid.NewV7()
	if err != nil {
		return nil, fmt.Errorf("failed to generate file name: %w", err)
	}
	target := path.Join(folder, workerID, id.String()+ext)

	limited := &limitedReader{r: br, remaining: s.maxPhotoBytes}
	storedPath, err := s.storage.Upload(ctx, limited, target, contentType)
	if err != nil {
		if errors.Is(err, ErrPhotoTooLarge) {
			return nil, ErrPhotoTooLarge
		}
		return nil, fmt.Errorf("failed to upload photo: %w", err)
	}

	return &UploadedPhoto{
		Path:        storedPath,
		URL:         s.storage.URL(storedPath),
		ContentType: contentType,
	}, nil
}

func (s *fileServiceImpl) DeleteFile(ctx context.Context, path string) error {
	return s.storage.Delete(ctx, path)
}

// limitedReader fails with ErrPhotoTooLarge once more than remaining bytes are read.
type limitedReader struct {
	r         io.Reader
	remaining int64
}

func (l *limitedReader) Read(p []byte) (int, error) {
	n, err := l.r.Read(p)
	l.remaining -= int64(n)
	if l.remaining < 0 {
		return n, ErrPhotoTooLarge
	}
	return n, err
}
