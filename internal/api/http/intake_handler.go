package http

import (
	"fmt"
	"net/http"
	"strconv"

	"spartans-cricket-backend/internal/domain"
	"spartans-cricket-backend/internal/service"

	"github.com/gorilla/mux"
)

// IntakeHandler serves the public submission forms and their moderation queue.
type IntakeHandler struct {
	intake        service.IntakeService
	moderation    service.ModerationService
	maxImageBytes int64
}

func NewIntakeHandler(intake service.IntakeService, moderation service.ModerationService, maxImageBytes int64) *IntakeHandler {
	return &IntakeHandler{intake: intake, moderation: moderation, maxImageBytes: maxImageBytes}
}

func pathID(r *http.Request) (int64, error) {
	id, err := strconv.ParseInt(mux.Vars(r)["id"], 10, 64)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("%w: invalid id %q", domain.ErrInvalidInput, mux.Vars(r)["id"])
	}
	return id, nil
}

func statusFilter(r *http.Request) (*domain.ApplicantStatus, error) {
	raw := r.URL.Query().Get("status")
	if raw == "" {
		return nil, nil
	}
	st, err := domain.ParseApplicantStatus(raw)
	if err != nil {
		return nil, err
	}
	return &st, nil
}

// SubmitJoinRequest handles POST /api/join
func (h *IntakeHandler) SubmitJoinRequest(w http.ResponseWriter, r *http.Request) {
	var req joinRequestPayload
	if err := decodeJSON(w, r, &req); err != nil {
		writeError(w, r, err)
		return
	}
	stored, err := h.intake.SubmitJoinRequest(r.Context(), req.toDomain(), req.Website)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, toJoinRequestResponse(stored))
}

// ListJoinRequests handles GET /api/join
func (h *IntakeHandler) ListJoinRequests(w http.ResponseWriter, r *http.Request) {
	status, err := statusFilter(r)
	if err != nil {
		writeError(w, r, err)
		return
	}
	list, err := h.intake.ListApplicants(r.Context(), domain.ApplicantKindJoinRequest, status)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, toApplicantResponses(list, toJoinRequestResponse))
}

// ProcessJoinRequest handles PUT /api/join/{id}/process
func (h *IntakeHandler) ProcessJoinRequest(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		writeError(w, r, err)
		return
	}
	a, err := h.moderation.ProcessApplicant(r.Context(), domain.ApplicantKindJoinRequest, id)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, toJoinRequestResponse(a))
}

// SubmitRegistration handles POST /api/register?force=bool
func (h *IntakeHandler) SubmitRegistration(w http.ResponseWriter, r *http.Request) {
	force := false
	if v := r.URL.Query().Get("force"); v != "" {
		var err error
		if force, err = strconv.ParseBool(v); err != nil {
			writeError(w, r, fmt.Errorf("%w: force must be true or false", domain.ErrInvalidInput))
			return
		}
	}

	var req registrationPayload
	if err := decodeJSON(w, r, &req); err != nil {
		writeError(w, r, err)
		return
	}
	stored, err := h.intake.SubmitRegistration(r.Context(), req.toDomain(), req.Website, force)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, toRegistrationResponse(stored))
}

// ListRegistrations handles GET /api/register
func (h *IntakeHandler) ListRegistrations(w http.ResponseWriter, r *http.Request) {
	status, err := statusFilter(r)
	if err != nil {
		writeError(w, r, err)
		return
	}
	list, err := h.intake.ListApplicants(r.Context(), domain.ApplicantKindRegistration, status)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, toApplicantResponses(list, toRegistrationResponse))
}

// ProcessRegistration handles PUT /api/register/{id}/process
func (h *IntakeHandler) ProcessRegistration(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		writeError(w, r, err)
		return
	}
	a, err := h.moderation.ProcessApplicant(r.Context(), domain.ApplicantKindRegistration, id)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, toRegistrationResponse(a))
}

// SubmitPlayer handles POST /api/players (multipart)
func (h *IntakeHandler) SubmitPlayer(w http.ResponseWriter, r *http.Request) {
	if err := parseMultipart(w, r, h.maxImageBytes); err != nil {
		writeError(w, r, err)
		return
	}
	p, err := playerFromForm(r)
	if err != nil {
		writeError(w, r, err)
		return
	}
	img, cleanup, err := formImage(r)
	if err != nil {
		writeError(w, r, err)
		return
	}
	defer cleanup()

	stored, err := h.intake.SubmitPlayerApplication(r.Context(), p, img)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, stored)
}

// ApprovePlayer handles PUT /api/players/{id}/approve
func (h *IntakeHandler) ApprovePlayer(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		writeError(w, r, err)
		return
	}
	p, err := h.moderation.ApprovePlayer(r.Context(), id)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, p)
}

func registerIntakeRoutes(router *mux.Router, h *IntakeHandler) {
	router.HandleFunc("/api/join", h.SubmitJoinRequest).Methods(http.MethodPost)
	router.HandleFunc("/api/join", h.ListJoinRequests).Methods(http.MethodGet)
	router.HandleFunc("/api/join/{id}/process", h.ProcessJoinRequest).Methods(http.MethodPut)
	router.HandleFunc("/api/register", h.SubmitRegistration).Methods(http.MethodPost)
	router.HandleFunc("/api/register", h.ListRegistrations).Methods(http.MethodGet)
	router.HandleFunc("/api/register/{id}/process", h.ProcessRegistration).Methods(http.MethodPut)
	router.HandleFunc("/api/players", h.SubmitPlayer).Methods(http.MethodPost)
	router.HandleFunc("/api/players/{id}/approve", h.ApprovePlayer).Methods(http.MethodPut)
}
