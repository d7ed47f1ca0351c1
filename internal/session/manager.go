// Package session holds the process-wide authentication state: the
// current user or none, restored once at startup and persisted on every
// transition.
package session

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"sync"

	"github.com/Misgexx/Fairtrack/internal/common"
	"github.com/Misgexx/Fairtrack/internal/storage"
	"github.com/google/uuid"
)

// Provider identifies how a user signed in.
type Provider string

// Sign-in providers.
const (
	ProviderEmail  Provider = "email"
	ProviderGoogle Provider = "google"
)

// User is the signed-in identity. Email is empty for Google sign-in,
// which is a local placeholder until a real identity provider is wired.
type User struct {
	ID       string   `json:"id"`
	Email    string   `json:"email,omitempty"`
	Provider Provider `json:"provider"`
}

// Manager owns the session state machine: Loading until Load completes,
// then SignedOut or SignedIn. It is constructed explicitly and passed to
// whatever needs it; there is no package-level instance. Every
// transition persists (or erases) the snapshot before returning, so
// storage never disagrees with the state the caller observed.
type Manager struct {
	store   storage.Store
	mu      sync.RWMutex
	user    *User
	loading bool
}

// NewManager creates a manager in the Loading state. Call Load before
// reading the session.
func NewManager(store storage.Store) *Manager {
	return &Manager{store: store, loading: true}
}

// Load restores the persisted session, if any, and leaves the Loading
// state. It runs once at process start; calling it again is harmless.
func (m *Manager) Load(ctx context.Context) error {
	value, ok, err := m.store.Get(ctx, storage.SessionKey)

	m.mu.Lock()
	defer m.mu.Unlock()
	m.loading = false

	if err != nil {
		// No persisted session is trusted; start signed out.
		m.user = nil
		return common.NewPersistenceError("get", storage.SessionKey, err)
	}
	if !ok {
		m.user = nil
		return nil
	}

	var u User
	if err := json.Unmarshal([]byte(value), &u); err != nil {
		m.user = nil
		return fmt.Errorf("failed to parse session snapshot: %w", err)
	}
	m.user = &u
	return nil
}

// Loading reports whether the session restore has not finished yet.
// Callers must not trust CurrentUser while this is true.
func (m *Manager) Loading() bool {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.loading
}

// CurrentUser returns the signed-in user, if any.
func (m *Manager) CurrentUser() (User, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if m.user == nil {
		return User{}, false
	}
	return *m.user, true
}

// SignInEmail signs in with an email address. The only rule at this
// boundary is the sign-in screen's own: the email must contain '@'.
func (m *Manager) SignInEmail(ctx context.Context, email, password string) (User, error) {
	return m.mintEmailSession(ctx, email, password)
}

// SignUpEmail creates an account with an email address. Locally this is
// the same minting as sign-in; a real backend would differ.
func (m *Manager) SignUpEmail(ctx context.Context, email, password string) (User, error) {
	return m.mintEmailSession(ctx, email, password)
}

func (m *Manager) mintEmailSession(ctx context.Context, email, _ string) (User, error) {
	if err := m.ensureLoaded(); err != nil {
		return User{}, err
	}

	email = strings.TrimSpace(email)
	if !strings.Contains(email, "@") {
		return User{}, &common.ValidationError{Field: "email", Reason: "please enter a valid email"}
	}

	u := User{
		ID:       "local-" + uuid.NewString(),
		Email:    email,
		Provider: ProviderEmail,
	}
	if err := m.persist(ctx, &u); err != nil {
		return User{}, err
	}
	return u, nil
}

// SignInGoogle signs in with the Google placeholder: it always succeeds
// and carries no email. Real OAuth is deliberately out of scope.
func (m *Manager) SignInGoogle(ctx context.Context) (User, error) {
	if err := m.ensureLoaded(); err != nil {
		return User{}, err
	}

	u := User{
		ID:       "google-" + uuid.NewString(),
		Provider: ProviderGoogle,
	}
	if err := m.persist(ctx, &u); err != nil {
		return User{}, err
	}
	return u, nil
}

// SignOut clears the session and erases the persisted snapshot.
func (m *Manager) SignOut(ctx context.Context) error {
	if err := m.ensureLoaded(); err != nil {
		return err
	}
	return m.persist(ctx, nil)
}

// ensureLoaded rejects transitions attempted before the restore ran,
// so a sign-in can never race the startup snapshot.
func (m *Manager) ensureLoaded() error {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if m.loading {
		return common.ErrSessionLoading
	}
	return nil
}

// persist writes (or erases) the snapshot first and only then replaces
// the in-memory user, wholesale. A crash right after a successful call
// can therefore never leave storage behind the state the caller saw.
func (m *Manager) persist(ctx context.Context, u *User) error {
	if u != nil {
		data, err := json.Marshal(u)
		if err != nil {
			return fmt.Errorf("failed to marshal session snapshot: %w", err)
		}
		if err := m.store.Set(ctx, storage.SessionKey, string(data)); err != nil {
			return common.NewPersistenceError("set", storage.SessionKey, err)
		}
	} else {
		if err := m.store.Remove(ctx, storage.SessionKey); err != nil {
			return common.NewPersistenceError("remove", storage.SessionKey, err)
		}
	}

	m.mu.Lock()
	m.user = u
	m.loading = false
	m.mu.Unlock()
	return nil
}
