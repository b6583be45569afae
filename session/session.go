// Package session owns the authenticated user's identity: login,
// registration, logout, and persistence of the current session to the
// local store under its own key.
package session

import (
	"context"
	"encoding/json"
	"errors"
	"log"
	"sync"
	"time"

	"github.com/AndresWalter/petzone--template/localstore"
	"github.com/AndresWalter/petzone--template/models"
)

// StorageKey is the local store key the session lives under.
const StorageKey = "petzone-user"

// ErrInvalidCredentials never says which of the two credentials was
// wrong.
var ErrInvalidCredentials = errors.New("invalid username or password")

// UserStore is the remote user collection (remote.Client in
// production, a fake in tests).
type UserStore interface {
	ListUsers(ctx context.Context) ([]models.User, error)
	CreateUser(ctx context.Context, user models.User) (models.User, error)
}

// fallbackUsers covers login when the remote user collection is empty
// or unreachable. Same demo accounts the web client shipped with.
func fallbackUsers() []models.User {
	return []models.User{
		{Username: "admin", Password: "admin123", Name: "Administrador", Role: models.RoleAdmin},
		{Username: "user", Password: "user123", Name: "Usuario Demo", Role: models.RoleUser},
		{Username: "demo", Password: "demo", Name: "Demo User", Role: models.RoleUser},
	}
}

type Manager struct {
	users UserStore
	store localstore.Store

	mu      sync.RWMutex
	current *models.UserSession
}

// New restores the session from the local store. A missing or corrupt
// payload leaves the manager logged out.
func New(users UserStore, store localstore.Store) *Manager {
	m := &Manager{users: users, store: store}
	m.restore()
	return m
}

func (m *Manager) restore() {
	raw, ok, err := m.store.Get(StorageKey)
	if err != nil {
		log.Printf("❌ Failed to read saved session: %v", err)
		return
	}
	if !ok {
		return
	}
	var sess models.UserSession
	if err := json.Unmarshal([]byte(raw), &sess); err != nil {
		log.Printf("⚠️ Discarding corrupt session payload: %v", err)
		return
	}
	m.current = &sess
}

func (m *Manager) setSession(sess models.UserSession) {
	m.mu.Lock()
	m.current = &sess
	m.mu.Unlock()

	raw, err := json.Marshal(sess)
	if err != nil {
		log.Printf("❌ Failed to serialize session: %v", err)
		return
	}
	if err := m.store.Set(StorageKey, string(raw)); err != nil {
		log.Printf("❌ Failed to save session: %v", err)
	}
}

// Login matches identifier (username or email) and password against
// the remote user collection plus the fallback accounts. A transport
// failure quietly degrades to the fallback-only check; the caller only
// ever sees success or ErrInvalidCredentials. The comparison is plain
// string equality against the mock API's clear-text passwords.
func (m *Manager) Login(ctx context.Context, identifier, password string) (models.UserSession, error) {
	candidates, err := m.users.ListUsers(ctx)
	if err != nil {
		log.Printf("⚠️ User fetch failed, checking fallback accounts only: %v", err)
		candidates = nil
	}
	candidates = append(candidates, fallbackUsers()...)

	for _, u := range candidates {
		if u.Username != identifier && (u.Email == "" || u.Email != identifier) {
			continue
		}
		if u.Password != password {
			continue
		}
		sess := models.UserSession{
			Username:  u.Username,
			Name:      u.Name,
			Role:      u.Role,
			LoginTime: time.Now(),
		}
		if sess.Role == "" {
			sess.Role = models.RoleUser
		}
		m.setSession(sess)
		return sess, nil
	}
	return models.UserSession{}, ErrInvalidCredentials
}

// Register creates a remote user record with the canonical shape and
// treats it as the new session. On failure the existing session is
// left untouched. Duplicate usernames are not rejected here; the mock
// API does not enforce uniqueness either.
func (m *Manager) Register(ctx context.Context, input models.RegisterInput) (models.UserSession, error) {
	created, err := m.users.CreateUser(ctx, models.User{
		Name:      input.Name,
		Email:     input.Email,
		Username:  input.Username,
		Password:  input.Password,
		Role:      models.RoleUser,
		CreatedAt: time.Now(),
	})
	if err != nil {
		return models.UserSession{}, err
	}

	sess := models.UserSession{
		Username:  created.Username,
		Name:      created.Name,
		Role:      created.Role,
		LoginTime: time.Now(),
	}
	if sess.Role == "" {
		sess.Role = models.RoleUser
	}
	m.setSession(sess)
	return sess, nil
}

// Logout clears the session and its stored copy.
func (m *Manager) Logout() {
	m.mu.Lock()
	m.current = nil
	m.mu.Unlock()

	if err := m.store.Remove(StorageKey); err != nil {
		log.Printf("❌ Failed to clear saved session: %v", err)
	}
}

// Session returns the current session, if any.
func (m *Manager) Session() (models.UserSession, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if m.current == nil {
		return models.UserSession{}, false
	}
	return *m.current, true
}

func (m *Manager) IsAuthenticated() bool {
	_, ok := m.Session()
	return ok
}

func (m *Manager) IsAdmin() bool {
	sess, ok := m.Session()
	return ok && sess.Role == models.RoleAdmin
}
