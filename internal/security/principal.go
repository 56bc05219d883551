package security

import (
	"context"
	"slices"

	"spartans-cricket-backend/internal/domain"
)

const RoleAdmin = "admin"

// Principal is the authenticated caller attached to a request context.
type Principal struct {
	Username string
	Roles    []string
}

func (p *Principal) IsAdmin() bool {
	return p != nil && slices.Contains(p.Roles, RoleAdmin)
}

type principalKey struct{}

func WithPrincipal(ctx context.Context, p *Principal) context.Context {
	return context.WithValue(ctx, principalKey{}, p)
}

func PrincipalFromContext(ctx context.Context) (*Principal, bool) {
	p, ok := ctx.Value(principalKey{}).(*Principal)
	return p, ok && p != nil
}

// RequireAdmin is the capability check for moderation and content management.
func RequireAdmin(ctx context.Context) error {
	p, _ := PrincipalFromContext(ctx)
	if !p.IsAdmin() {
		return domain.ErrForbidden
	}
	return nil
}
