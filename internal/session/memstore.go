package session

import "sync"

// MemStore is an in-memory Store. It is safe for concurrent use and
// suited to tests and short-lived processes; nothing survives a restart.
type MemStore struct {
	values sync.Map
}

func NewMemStore() *MemStore {
	return &MemStore{}
}

func (m *MemStore) Get(key string) (string, bool, error) {
	v, ok := m.values.Load(key)
	if !ok {
		return "", false, nil
	}
	return v.(string), true, nil
}

func (m *MemStore) Set(key, value string) error {
	m.values.Store(key, value)
	return nil
}

func (m *MemStore) Delete(key string) error {
	m.values.Delete(key)
	return nil
}
