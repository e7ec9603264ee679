package session

import (
	"fmt"
	"sync"
)

// Manager is the single source of truth for the current bearer token.
// The in-memory value and the backing store move together: SetToken
// writes both, ClearToken erases both. There is no expiry or refresh
// logic here; a server-rejected token surfaces through the request
// error path and it is the caller's job to clear and re-authenticate.
type Manager struct {
	mu    sync.RWMutex
	token string
	store Store
}

// NewManager restores the token from the store. An absent key means
// the unauthenticated state, not an error.
func NewManager(store Store) (*Manager, error) {
	token, found, err := store.Get(TokenKey)
	if err != nil {
		return nil, fmt.Errorf("failed to restore session token: %w", err)
	}
	m := &Manager{store: store}
	if found {
		m.token = token
	}
	return m, nil
}

// Token returns the current token and whether one is held.
func (m *Manager) Token() (string, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.token, m.token != ""
}

// SetToken stores a new token durably and in memory. The token is
// opaque; no shape validation happens at this layer.
func (m *Manager) SetToken(token string) error {
	if token == "" {
		return m.ClearToken()
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	if err := m.store.Set(TokenKey, token); err != nil {
		return err
	}
	m.token = token
	return nil
}

// ClearToken erases the storage entry and the in-memory value.
// In-flight requests keep whatever Authorization header they already
// built; last write wins.
func (m *Manager) ClearToken() error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if err := m.store.Delete(TokenKey); err != nil {
		return err
	}
	m.token = ""
	return nil
}
