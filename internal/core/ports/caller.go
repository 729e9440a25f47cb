package ports

import "github.com/mikens/recetas-api/internal/core/domain"

// Caller identifies the authenticated actor behind a protected request, as
// established by the auth middleware from verified token claims. A zero
// Caller means no valid session (role guest).
type Caller struct {
	ID     string
	Email  string
	Nombre string
	Role   domain.Role
}

// IsAdmin reports whether the caller holds the administrator role.
func (c Caller) IsAdmin() bool {
	return c.Role == domain.RoleAdmin
}
