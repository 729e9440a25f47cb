package domain

import (
	"errors"
	"time"
)

var ErrUserNotFound = errors.New("user not found")
var ErrUserExists = errors.New("email already registered")
var ErrInvalidCredentials = errors.New("invalid credentials")
var ErrInvalidToken = errors.New("invalid or expired token")
var ErrMissingFields = errors.New("missing required fields")
var ErrPasswordTooShort = errors.New("password too short")
var ErrTooManyAttempts = errors.New("too many failed login attempts")
var ErrAdminProtected = errors.New("administrator account cannot be deleted")

// MinPasswordLength is enforced at registration only; existing accounts are
// never re-validated against it.
const MinPasswordLength = 6

// User models a registered account. Email and PasswordHash are immutable
// through profile updates; only Nombre, Descripcion and Foto may change.
type User struct {
	ID           string    `json:"id"`
	Nombre       string    `json:"nombre"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"`
	Descripcion  string    `json:"descripcion,omitempty"`
	Foto         string    `json:"foto,omitempty"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// PublicUser is the subset of User that crosses the API boundary on login.
type PublicUser struct {
	ID     string `json:"id"`
	Nombre string `json:"nombre"`
	Email  string `json:"email"`
}

// Public strips everything a client has no business seeing, in particular
// the password hash.
func (u *User) Public() PublicUser {
	return PublicUser{ID: u.ID, Nombre: u.Nombre, Email: u.Email}
}
