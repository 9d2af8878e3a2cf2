package rest

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"

	"github.com/google/uuid"

	"github.com/questlinehq/questline-backend/internal/domain"
	"github.com/questlinehq/questline-backend/pkg/ctxutil"
)

// proofUploader defines the minimal interface needed by UploadHandler.
type proofUploader interface {
	Upload(ctx context.Context, key, contentType string, body io.Reader) (string, error)
}

// proofExtensions maps accepted attachment types (by sniffed content type)
// to the extension used in the object key.
var proofExtensions = map[string]string{
	"image/jpeg": ".jpg",
	"image/png":  ".png",
	"image/webp": ".webp",
	"image/gif":  ".gif",
}

// UploadHandler stores proof attachments and hands back public URLs. The
// returned URL is what a participant later submits as the proof payload;
// the lifecycle service treats it as an opaque string.
type UploadHandler struct {
	store    proofUploader
	maxBytes int64
	log      *slog.Logger
}

// NewUploadHandler creates an UploadHandler.
func NewUploadHandler(store proofUploader, maxBytes int64, logger *slog.Logger) *UploadHandler {
	return &UploadHandler{store: store, maxBytes: maxBytes, log: logger.With("handler", "upload")}
}

type uploadResponse struct {
	URL string `json:"url"`
}

// Proof handles POST /api/v1/uploads/proof.
func (h *UploadHandler) Proof(w http.ResponseWriter, r *http.Request) {
	userID, ok := ctxutil.UserIDFromCtx(r.Context())
	if !ok {
		respondError(w, r, h.log, domain.ErrUnauthorized)
		return
	}

	r.Body = http.MaxBytesReader(w, r.Body, h.maxBytes)

	file, _, err := r.FormFile("file")
	if err != nil {
		var maxErr *http.MaxBytesError
		if errors.As(err, &maxErr) {
			writeError(w, http.StatusRequestEntityTooLarge, errorDetail{
				Code:    "TOO_LARGE",
				Message: fmt.Sprintf("attachment exceeds %d bytes", h.maxBytes),
			})
			return
		}
		writeError(w, http.StatusBadRequest, errorDetail{
			Code:    "VALIDATION",
			Message: `multipart field "file" required`,
		})
		return
	}
	defer file.Close()

	// Sniff the real content type; the client-declared one is not trusted.
	head := make([]byte, 512)
	n, err := io.ReadFull(file, head)
	if err != nil && !errors.Is(err, io.EOF) && !errors.Is(err, io.ErrUnexpectedEOF) {
		writeError(w, http.StatusBadRequest, errorDetail{
			Code:    "VALIDATION",
			Message: "could not read attachment",
		})
		return
	}
	head = head[:n]

	contentType := http.DetectContentType(head)
	ext, ok := proofExtensions[contentType]
	if !ok {
		writeError(w, http.StatusUnsupportedMediaType, errorDetail{
			Code:    "UNSUPPORTED_MEDIA_TYPE",
			Message: "attachment must be a JPEG, PNG, WebP or GIF image",
		})
		return
	}

	key := "proofs/" + userID.String() + "/" + uuid.New().String() + ext
	url, err := h.store.Upload(r.Context(), key, contentType, io.MultiReader(bytes.NewReader(head), file))
	if err != nil {
		respondError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusCreated, uploadResponse{URL: url})
}
