package http

import (
	"net/http"
	"strings"

	"spartans-cricket-backend/internal/domain"
	"spartans-cricket-backend/internal/service"

	"github.com/gorilla/mux"
)

type GalleryHandler struct {
	gallery       service.GalleryService
	maxImageBytes int64
}

func NewGalleryHandler(gallery service.GalleryService, maxImageBytes int64) *GalleryHandler {
	return &GalleryHandler{gallery: gallery, maxImageBytes: maxImageBytes}
}

// List handles GET /api/gallery[?category=]
func (h *GalleryHandler) List(w http.ResponseWriter, r *http.Request) {
	items, err := h.gallery.ListGallery(r.Context(), strings.TrimSpace(r.URL.Query().Get("category")))
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, items)
}

// Add handles POST /api/gallery (multipart: category, subCategory, caption, image)
func (h *GalleryHandler) Add(w http.ResponseWriter, r *http.Request) {
	if err := parseMultipart(w, r, h.maxImageBytes); err != nil {
		writeError(w, r, err)
		return
	}
	item := &domain.GalleryItem{
		Category:    r.FormValue("category"),
		SubCategory: r.FormValue("subCategory"),
		Caption:     r.FormValue("caption"),
	}
	img, cleanup, err := formImage(r)
	if err != nil {
		writeError(w, r, err)
		return
	}
	defer cleanup()

	created, err := h.gallery.AddGalleryItem(r.Context(), item, img)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, created)
}

func (h *GalleryHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		writeError(w, r, err)
		return
	}
	if err := h.gallery.DeleteGalleryItem(r.Context(), id); err != nil {
		writeError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// Image handles GET /api/gallery/{id}/image
func (h *GalleryHandler) Image(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		writeError(w, r, err)
		return
	}
	body, contentType, err := h.gallery.OpenGalleryImage(r.Context(), id)
	if err != nil {
		writeError(w, r, err)
		return
	}
	defer body.Close()
	streamImage(w, r, body, contentType)
}

func registerGalleryRoutes(router *mux.Router, h *GalleryHandler) {
	router.HandleFunc("/api/gallery", h.List).Methods(http.MethodGet)
	router.HandleFunc("/api/gallery", h.Add).Methods(http.MethodPost)
	router.HandleFunc("/api/gallery/{id}", h.Delete).Methods(http.MethodDelete)
	router.HandleFunc("/api/gallery/{id}/image", h.Image).Methods(http.MethodGet)
}
