package http

import (
	"net/http"

	"spartans-cricket-backend/internal/domain"
	"spartans-cricket-backend/internal/service"

	"github.com/gorilla/mux"
)

// ContentHandler serves fixtures, achievements and the club stats singleton.
type ContentHandler struct {
	content service.ContentService
}

func NewContentHandler(content service.ContentService) *ContentHandler {
	return &ContentHandler{content: content}
}

func (h *ContentHandler) ListFixtures(w http.ResponseWriter, r *http.Request) {
	list, err := h.content.ListFixtures(r.Context())
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, list)
}

func (h *ContentHandler) CreateFixture(w http.ResponseWriter, r *http.Request) {
	var req fixturePayload
	if err := decodeJSON(w, r, &req); err != nil {
		writeError(w, r, err)
		return
	}
	m, err := req.toDomain()
	if err != nil {
		writeError(w, r, err)
		return
	}
	created, err := h.content.CreateFixture(r.Context(), m)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, created)
}

func (h *ContentHandler) UpdateFixture(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		writeError(w, r, err)
		return
	}
	var req fixturePayload
	if err := decodeJSON(w, r, &req); err != nil {
		writeError(w, r, err)
		return
	}
	m, err := req.toDomain()
	if err != nil {
		writeError(w, r, err)
		return
	}
	m.ID = id
	updated, err := h.content.UpdateFixture(r.Context(), m)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, updated)
}

func (h *ContentHandler) DeleteFixture(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		writeError(w, r, err)
		return
	}
	if err := h.content.DeleteFixture(r.Context(), id); err != nil {
		writeError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *ContentHandler) ListAchievements(w http.ResponseWriter, r *http.Request) {
	list, err := h.content.ListAchievements(r.Context())
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, list)
}

func (h *ContentHandler) CreateAchievement(w http.ResponseWriter, r *http.Request) {
	var req domain.Achievement
	if err := decodeJSON(w, r, &req); err != nil {
		writeError(w, r, err)
		return
	}
	req.ID = 0
	created, err := h.content.CreateAchievement(r.Context(), &req)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, created)
}

func (h *ContentHandler) UpdateAchievement(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		writeError(w, r, err)
		return
	}
	var req domain.Achievement
	if err := decodeJSON(w, r, &req); err != nil {
		writeError(w, r, err)
		return
	}
	req.ID = id
	updated, err := h.content.UpdateAchievement(r.Context(), &req)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, updated)
}

func (h *ContentHandler) DeleteAchievement(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		writeError(w, r, err)
		return
	}
	if err := h.content.DeleteAchievement(r.Context(), id); err != nil {
		writeError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *ContentHandler) GetStats(w http.ResponseWriter, r *http.Request) {
	stats, err := h.content.GetStats(r.Context())
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, stats)
}

// SaveStats handles POST /api/stats; the singleton is created or replaced.
func (h *ContentHandler) SaveStats(w http.ResponseWriter, r *http.Request) {
	var req domain.ClubStats
	if err := decodeJSON(w, r, &req); err != nil {
		writeError(w, r, err)
		return
	}
	saved, err := h.content.SaveStats(r.Context(), &req)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, saved)
}

func registerContentRoutes(router *mux.Router, h *ContentHandler) {
	router.HandleFunc("/api/matches", h.ListFixtures).Methods(http.MethodGet)
	router.HandleFunc("/api/matches", h.CreateFixture).Methods(http.MethodPost)
	router.HandleFunc("/api/matches/{id}", h.UpdateFixture).Methods(http.MethodPut)
	router.HandleFunc("/api/matches/{id}", h.DeleteFixture).Methods(http.MethodDelete)

	router.HandleFunc("/api/achievements", h.ListAchievements).Methods(http.MethodGet)
	router.HandleFunc("/api/achievements", h.CreateAchievement).Methods(http.MethodPost)
	router.HandleFunc("/api/achievements/{id}", h.UpdateAchievement).Methods(http.MethodPut)
	router.HandleFunc("/api/achievements/{id}", h.DeleteAchievement).Methods(http.MethodDelete)

	router.HandleFunc("/api/stats", h.GetStats).Methods(http.MethodGet)
	router.HandleFunc("/api/stats", h.SaveStats).Methods(http.MethodPost)
}
