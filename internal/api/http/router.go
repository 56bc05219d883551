package http

import (
	"net/http"

	"spartans-cricket-backend/internal/security"
	"spartans-cricket-backend/internal/service"
	"spartans-cricket-backend/internal/storage"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Services bundles everything the handlers call.
type Services struct {
	Intake     service.IntakeService
	Moderation service.ModerationService
	Roster     service.RosterService
	Content    service.ContentService
	Gallery    service.GalleryService
	Auth       service.AuthService
	Images     storage.ImageStore
	Tokens     security.TokenManager
}

type RouterConfig struct {
	AllowedOrigins    []string
	RequestsPerSecond float64
	Burst             int
	MaxImageBytes     int64
}

// NewRouter builds the API handler. CORS and request logging wrap the mux
// router so they also see preflight and unmatched requests.
func NewRouter(svc Services, cfg RouterConfig) http.Handler {
	router := mux.NewRouter()

	router.Use(Metrics)
	router.Use(NewRateLimiter(cfg.RequestsPerSecond, cfg.Burst).Middleware)
	router.Use(Auth(svc.Tokens))

	registerAuthRoutes(router, NewAuthHandler(svc.Auth))
	registerIntakeRoutes(router, NewIntakeHandler(svc.Intake, svc.Moderation, cfg.MaxImageBytes))
	registerRosterRoutes(router, NewRosterHandler(svc.Roster, cfg.MaxImageBytes))
	registerContentRoutes(router, NewContentHandler(svc.Content))
	registerGalleryRoutes(router, NewGalleryHandler(svc.Gallery, cfg.MaxImageBytes))
	registerImageRoutes(router, svc.Images)
	router.Handle("/metrics", promhttp.Handler()).Methods(http.MethodGet)

	return RequestLogging(NewCORS(cfg.AllowedOrigins).Handler(router))
}
