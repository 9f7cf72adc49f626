package handlers

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"path/filepath"
	"strings"

	"github.com/google/uuid"

	"brokerage-backend/internal/infra/http/middleware"
)

const maxUploadBytes = 10 << 20 // 10 MB

type Uploader interface {
	Upload(ctx context.Context, bucket, objectPath, contentType string, body io.Reader) (string, error)
}

type UploadHandler struct {
	Storage Uploader
	Bucket  string
}

func NewUploadHandler(storage Uploader, bucket string) *UploadHandler {
	return &UploadHandler{Storage: storage, Bucket: bucket}
}

// Handle accepts a multipart "file" field and pushes it to the storage
// bucket under a fresh UUID name.
func (h *UploadHandler) Handle(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, maxUploadBytes)

	file, header, err := r.FormFile("file")
	if err != nil {
		writeErrorResponse(w, http.StatusBadRequest, "INVALID_UPLOAD", "a 'file' form field is required")
		return
	}
	defer file.Close()

	ext := strings.ToLower(filepath.Ext(header.Filename))
	switch ext {
	case ".jpg", ".jpeg", ".png", ".webp":
	default:
		writeErrorResponse(w, http.StatusBadRequest, "INVALID_FILE_TYPE", "only jpg, png and webp images are accepted")
		return
	}

	contentType := header.Header.Get("Content-Type")
	if contentType == "" {
		contentType = "application/octet-stream"
	}

	objectPath := fmt.Sprintf("%s%s", uuid.New().String(), ext)

	url, err := h.Storage.Upload(r.Context(), h.Bucket, objectPath, contentType, file)
	if err != nil {
		middleware.RecordIntegrationError("storage")
		writeErrorResponse(w, http.StatusInternalServerError, "STORAGE_ERROR", "failed to store file")
		return
	}

	writeJSON(w, http.StatusCreated, map[string]string{"url": url})
}
