// config/security_config.go
package config

type SecurityLevel int

const (
	SecurityPublic SecurityLevel = iota // No authentication
	SecurityAdmin                       // Admin bearer token required
)

// EndpointSecurityConfig maps "METHOD /route/template" to the required security level.
// Routes missing from the table require an admin token.
var EndpointSecurityConfig = map[string]SecurityLevel{
	// Club site - Public
	"GET /api/health":             SecurityPublic,
	"GET /api/welcome":            SecurityPublic,
	"POST /api/auth/login":        SecurityPublic,
	"GET /api/players":            SecurityPublic,
	"GET /api/matches":            SecurityPublic,
	"GET /api/achievements":       SecurityPublic,
	"GET /api/stats":              SecurityPublic,
	"GET /api/gallery":            SecurityPublic,
	"GET /api/gallery/{id}/image": SecurityPublic,
	"GET /uploads/{key}":          SecurityPublic,
	"GET /metrics":                SecurityPublic,

	// Intake - Public
	"POST /api/join":     SecurityPublic,
	"POST /api/register": SecurityPublic,
	"POST /api/players":  SecurityPublic,

	// Moderation - Admin
	"GET /api/join":                  SecurityAdmin,
	"PUT /api/join/{id}/process":     SecurityAdmin,
	"GET /api/register":              SecurityAdmin,
	"PUT /api/register/{id}/process": SecurityAdmin,
	"PUT /api/players/{id}/approve":  SecurityAdmin,

	// Content management - Admin
	"PUT /api/players/{id}":         SecurityAdmin,
	"DELETE /api/players/{id}":      SecurityAdmin,
	"POST /api/matches":             SecurityAdmin,
	"PUT /api/matches/{id}":         SecurityAdmin,
	"DELETE /api/matches/{id}":      SecurityAdmin,
	"POST /api/achievements":        SecurityAdmin,
	"PUT /api/achievements/{id}":    SecurityAdmin,
	"DELETE /api/achievements/{id}": SecurityAdmin,
	"POST /api/gallery":             SecurityAdmin,
	"DELETE /api/gallery/{id}":      SecurityAdmin,
	"POST /api/stats":               SecurityAdmin,
}

// GetSecurityLevel returns the security level for a route
func GetSecurityLevel(method, pathTemplate string) SecurityLevel {
	if level, ok := EndpointSecurityConfig[method+" "+pathTemplate]; ok {
		return level
	}
	return SecurityAdmin
}

// IsRateLimited reports whether a route accepts anonymous submissions and is throttled
func IsRateLimited(method, pathTemplate string) bool {
	switch method + " " + pathTemplate {
	case "POST /api/join", "POST /api/register", "POST /api/players", "POST /api/auth/login":
		return true
	}
	return false
}
