package http

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/fastep-work/fastep-backend-go/internal/handler/http/response"
	"github.com/fastep-work/fastep-backend-go/internal/service/file"
)

// multipartOverhead leaves room for the form boundary and headers around the photo.
const multipartOverhead = 64 << 10

type UploadHandler interface {
	UploadPhoto(w http.ResponseWriter, r *http.Request)
}

type UploadHandlerImpl struct {
	fileService   file.FileService
	maxPhotoBytes int64
}

func NewUploadHandler(fileService file.FileService, maxPhotoBytes int64) UploadHandler {
	return &UploadHandlerImpl{fileService: fileService, maxPhotoBytes: maxPhotoBytes}
}

// UploadPhoto implements UploadHandler.
func (h *UploadHandlerImpl) UploadPhoto(w http.ResponseWriter, r *http.Request) {
	workerID, ok := currentWorkerID(w, r)
	if !ok {
		return
	}

	kind := file.PhotoKind(r.URL.Query().Get("kind"))
	if kind == "" {
		kind = file.PhotoKindPost
	}

	r.Body = http.MaxBytesReader(w, r.Body, h.maxPhotoBytes+multipartOverhead)
	src, _, err := r.FormFile("photo")
	if err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			response.HandleError(w, file.ErrPhotoTooLarge)
			return
		}
		slog.Debug("UploadPhoto form error", "error", err)
		response.BadRequest(w, "Multipart field 'photo' is required", nil)
		return
	}
	defer src.Close()

	photo, err := h.fileService.UploadPhoto(r.Context(), kind, workerID, src)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Created(w, "Photo uploaded", photo)
}
