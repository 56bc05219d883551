package http

import (
	"io"
	"net/http"

	"spartans-cricket-backend/internal/logger"
	"spartans-cricket-backend/internal/storage"

	"github.com/gorilla/mux"
)

// ImageHandler serves stored image bytes by key.
type ImageHandler struct {
	store storage.ImageStore
}

func NewImageHandler(store storage.ImageStore) *ImageHandler {
	return &ImageHandler{store: store}
}

// HandleDownload handles GET /uploads/{key}
func (h *ImageHandler) HandleDownload(w http.ResponseWriter, r *http.Request) {
	key := mux.Vars(r)["key"]

	file, err := h.store.Open(r.Context(), key)
	if err != nil {
		writeError(w, r, err)
		return
	}
	defer file.Close()

	streamImage(w, r, file, storage.ContentTypeForKey(key))
}

func streamImage(w http.ResponseWriter, r *http.Request, body io.Reader, contentType string) {
	w.Header().Set("Content-Type", contentType)
	w.Header().Set("Cache-Control", "public, max-age=3600")
	w.Header().Set("X-Content-Type-Options", "nosniff")
	if _, err := io.Copy(w, body); err != nil {
		logger.WarnContext(r.Context(), "Image stream interrupted", "path", r.URL.Path, "error", err)
	}
}

func registerImageRoutes(router *mux.Router, store storage.ImageStore) {
	h := NewImageHandler(store)
	router.HandleFunc("/uploads/{key}", h.HandleDownload).Methods(http.MethodGet)
}
