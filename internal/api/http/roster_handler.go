package http

import (
	"fmt"
	"net/http"
	"strconv"

	"spartans-cricket-backend/internal/domain"
	"spartans-cricket-backend/internal/service"

	"github.com/gorilla/mux"
)

type RosterHandler struct {
	roster        service.RosterService
	maxImageBytes int64
}

func NewRosterHandler(roster service.RosterService, maxImageBytes int64) *RosterHandler {
	return &RosterHandler{roster: roster, maxImageBytes: maxImageBytes}
}

// ListPlayers handles GET /api/players[?all=true]
func (h *RosterHandler) ListPlayers(w http.ResponseWriter, r *http.Request) {
	all := false
	if v := r.URL.Query().Get("all"); v != "" {
		var err error
		if all, err = strconv.ParseBool(v); err != nil {
			writeError(w, r, fmt.Errorf("%w: all must be true or false", domain.ErrInvalidInput))
			return
		}
	}
	players, err := h.roster.ListPlayers(r.Context(), all)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, players)
}

// UpdatePlayer handles PUT /api/players/{id} (multipart)
func (h *RosterHandler) UpdatePlayer(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		writeError(w, r, err)
		return
	}
	if err := parseMultipart(w, r, h.maxImageBytes); err != nil {
		writeError(w, r, err)
		return
	}
	p, err := playerFromForm(r)
	if err != nil {
		writeError(w, r, err)
		return
	}
	p.ID = id

	img, cleanup, err := formImage(r)
	if err != nil {
		writeError(w, r, err)
		return
	}
	defer cleanup()

	updated, err := h.roster.UpdatePlayer(r.Context(), p, img)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, updated)
}

// DeletePlayer handles DELETE /api/players/{id}
func (h *RosterHandler) DeletePlayer(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		writeError(w, r, err)
		return
	}
	if err := h.roster.DeletePlayer(r.Context(), id); err != nil {
		writeError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func registerRosterRoutes(router *mux.Router, h *RosterHandler) {
	router.HandleFunc("/api/players", h.ListPlayers).Methods(http.MethodGet)
	router.HandleFunc("/api/players/{id}", h.UpdatePlayer).Methods(http.MethodPut)
	router.HandleFunc("/api/players/{id}", h.DeletePlayer).Methods(http.MethodDelete)
}
