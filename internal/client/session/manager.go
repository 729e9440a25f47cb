// Package session owns the client-side authentication state: one explicit
// session handle instead of ambient global state. It persists the active
// identity and token across restarts, rehydrates them at startup, and
// derives the role from the identity on every transition.
package session

import (
	"context"
	"errors"
	"sync"

	"github.com/mikens/recetas-api/internal/client/api"
	"github.com/mikens/recetas-api/internal/core/domain"
)

// State is the session manager's state machine position.
type State string

const (
	StateGuest          State = "guest"
	StateAuthenticating State = "authenticating"
	StateAuthenticated  State = "authenticated"
)

// ErrNotAuthenticated is returned from protected operations in guest state.
var ErrNotAuthenticated = errors.New("not authenticated")

// Manager drives login/register/logout transitions and keeps the persisted
// record consistent: the mutex serializes transitions so concurrent logins
// cannot interleave partial writes; the last completed one wins.
type Manager struct {
	client     *api.Client
	store      Store
	adminEmail string

	mu    sync.Mutex
	state State
	user  api.User
	token string
}

func NewManager(client *api.Client, store Store, adminEmail string) *Manager {
	return &Manager{
		client:     client,
		store:      store,
		adminEmail: adminEmail,
		state:      StateGuest,
	}
}

// Rehydrate restores the session from durable storage. Run once at startup.
// A missing record leaves the manager in guest state; an unparsable one is
// discarded silently. The token is not re-validated against the server;
// validity is checked lazily on the first protected call.
func (m *Manager) Rehydrate() {
	m.mu.Lock()
	defer m.mu.Unlock()

	rec, err := m.store.LoadSession()
	if err != nil {
		if !errors.Is(err, ErrNoRecord) {
			// Corrupt record: treat as absence, not as a fatal error.
			_ = m.store.ClearSession()
		}
		m.toGuestLocked()
		return
	}

	m.state = StateAuthenticated
	m.user = rec.User
	m.token = rec.Token
}

// Login performs the guest → authenticating → authenticated transition.
// On failure the state returns to guest with no persistence side effect.
// When remember is true the email is saved in the independent remember
// record; when false any previously remembered email is dropped.
func (m *Manager) Login(ctx context.Context, email, password string, remember bool) error {
	m.mu.Lock()
	m.state = StateAuthenticating
	m.mu.Unlock()

	result, err := m.client.Login(ctx, email, password)

	m.mu.Lock()
	defer m.mu.Unlock()

	if err != nil {
		m.toGuestLocked()
		return err
	}

	if err := m.store.SaveSession(&Record{User: result.User, Token: result.Token}); err != nil {
		m.toGuestLocked()
		return err
	}
	if remember {
		_ = m.store.SaveRemember(Touch(email))
	} else {
		_ = m.store.ClearRemember()
	}

	m.state = StateAuthenticated
	m.user = result.User
	m.token = result.Token
	return nil
}

// Register creates an account. It never authenticates: on success the state
// stays guest and the caller is expected to proceed to login.
func (m *Manager) Register(ctx context.Context, nombre, email, password string) (string, error) {
	return m.client.Register(ctx, nombre, email, password)
}

// Logout clears the persisted session and returns to guest. The remember
// record is left alone; use ForgetEmail to drop it.
func (m *Manager) Logout() error {
	m.mu.Lock()
	defer m.mu.Unlock()

	err := m.store.ClearSession()
	m.toGuestLocked()
	return err
}

// ForgetEmail drops the remembered login email.
func (m *Manager) ForgetEmail() error {
	return m.store.ClearRemember()
}

// RememberedEmail returns the saved login email, or "" when none is stored.
func (m *Manager) RememberedEmail() string {
	rec, err := m.store.LoadRemember()
	if err != nil {
		return ""
	}
	return rec.Email
}

// State returns the current state machine position.
func (m *Manager) State() State {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.state
}

// Role derives the caller's role from the current identity. It is computed
// fresh on every call, never cached or persisted.
func (m *Manager) Role() domain.Role {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.state != StateAuthenticated {
		return domain.RoleGuest
	}
	return domain.ResolveRole(m.user.Email, m.adminEmail)
}

// CurrentUser returns the identity snapshot and whether a session is active.
func (m *Manager) CurrentUser() (api.User, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.user, m.state == StateAuthenticated
}

// UpdateProfile updates the caller's own profile and refreshes the persisted
// identity snapshot with the server's response.
func (m *Manager) UpdateProfile(ctx context.Context, nombre, descripcion, foto string) error {
	token, user, err := m.session()
	if err != nil {
		return err
	}

	updated, err := m.client.UpdateProfile(ctx, token, user.ID, nombre, descripcion, foto)
	if err != nil {
		return m.checkExpiry(err)
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	if m.state == StateAuthenticated && m.user.ID == updated.ID {
		m.user = *updated
		_ = m.store.SaveSession(&Record{User: m.user, Token: m.token})
	}
	return nil
}

// CreateRecipe uploads a recipe attributed to the active session.
func (m *Manager) CreateRecipe(ctx context.Context, titulo, descripcion string) error {
	return m.protected(ctx, func(token string) error {
		return m.client.CreateRecipe(ctx, token, titulo, descripcion)
	})
}

// ToggleRecipeVisibility flips a recipe's comunidad flag.
func (m *Manager) ToggleRecipeVisibility(ctx context.Context, id string, comunidad bool) error {
	return m.protected(ctx, func(token string) error {
		return m.client.ToggleRecipeVisibility(ctx, token, id, comunidad)
	})
}

// DeleteRecipe removes a recipe (admin only, enforced server-side).
func (m *Manager) DeleteRecipe(ctx context.Context, id string) error {
	return m.protected(ctx, func(token string) error {
		return m.client.DeleteRecipe(ctx, token, id)
	})
}

// DeleteUser removes a user account (admin only, enforced server-side).
func (m *Manager) DeleteUser(ctx context.Context, id string) error {
	return m.protected(ctx, func(token string) error {
		return m.client.DeleteUser(ctx, token, id)
	})
}

// CreateComment posts a comment on a recipe.
func (m *Manager) CreateComment(ctx context.Context, recipeID, body string) error {
	return m.protected(ctx, func(token string) error {
		return m.client.CreateComment(ctx, token, recipeID, body)
	})
}

// DeleteComment removes a comment (author-or-admin, enforced server-side).
func (m *Manager) DeleteComment(ctx context.Context, id string) error {
	return m.protected(ctx, func(token string) error {
		return m.client.DeleteComment(ctx, token, id)
	})
}

// protected runs fn with the active token and applies the implicit-logout
// rule: a 401 means the session is stale, so the persisted record is cleared
// and the manager falls back to guest.
func (m *Manager) protected(_ context.Context, fn func(token string) error) error {
	token, _, err := m.session()
	if err != nil {
		return err
	}
	return m.checkExpiry(fn(token))
}

func (m *Manager) session() (string, api.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.state != StateAuthenticated {
		return "", api.User{}, ErrNotAuthenticated
	}
	return m.token, m.user, nil
}

// checkExpiry translates a 401 from any protected call into an implicit
// logout: clear the persisted session and drop to guest.
func (m *Manager) checkExpiry(err error) error {
	if err == nil || !errors.Is(err, api.ErrUnauthorized) {
		return err
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	_ = m.store.ClearSession()
	m.toGuestLocked()
	return err
}

func (m *Manager) toGuestLocked() {
	m.state = StateGuest
	m.user = api.User{}
	m.token = ""
}
