package domain

import "errors"

// Role is a derived value, never persisted: it is recomputed from the
// identity's email on every authentication event and on session rehydration.
type Role string

const (
	RoleGuest  Role = "guest"
	RoleMember Role = "member"
	RoleAdmin  Role = "admin"
)

var ErrForbidden = errors.New("access forbidden")

// ResolveRole maps an email to exactly one role. The empty string stands for
// "no authenticated identity". Comparison with the administrator email is
// exact and case-sensitive, matching how emails are stored.
func ResolveRole(email, adminEmail string) Role {
	switch {
	case email == "":
		return RoleGuest
	case email == adminEmail:
		return RoleAdmin
	default:
		return RoleMember
	}
}
