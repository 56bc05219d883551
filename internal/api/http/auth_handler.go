package http

import (
	"net/http"

	"spartans-cricket-backend/internal/service"

	"github.com/gorilla/mux"
)

type AuthHandler struct {
	auth service.AuthService
}

func NewAuthHandler(auth service.AuthService) *AuthHandler {
	return &AuthHandler{auth: auth}
}

type loginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type loginResponse struct {
	Status string `json:"status"`
	Token  string `json:"token"`
}

type welcomeResponse struct {
	Message string `json:"message"`
	Club    string `json:"club"`
}

// Login handles POST /api/auth/login
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if err := decodeJSON(w, r, &req); err != nil {
		writeError(w, r, err)
		return
	}
	token, err := h.auth.Login(r.Context(), req.Username, req.Password)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, loginResponse{Status: "success", Token: token})
}

func health(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte("OK"))
}

func welcome(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, welcomeResponse{
		Message: "Welcome to Spartans Cricket Club API",
		Club:    "Spartans Cricket Club",
	})
}

func registerAuthRoutes(router *mux.Router, h *AuthHandler) {
	router.HandleFunc("/api/auth/login", h.Login).Methods(http.MethodPost)
	router.HandleFunc("/api/health", health).Methods(http.MethodGet)
	router.HandleFunc("/api/welcome", welcome).Methods(http.MethodGet)
}
