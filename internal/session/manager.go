package session

import (
	"sync"

	"github.com/onboardhq/onboard-ui-api/internal/ports"
)

// Manager hands out one Store per client, creating stores lazily and
// reusing them so every observer of a given client shares the same change
// stream.
type Manager struct {
	records ports.RecordStore

	mu     sync.Mutex
	stores map[string]*Store
}

// NewManager creates a Manager backed by the given record store.
func NewManager(records ports.RecordStore) *Manager {
	return &Manager{
		records: records,
		stores:  make(map[string]*Store),
	}
}

// Store returns the session store for the given client, creating it on
// first access.
func (m *Manager) Store(clientID string) *Store {
	m.mu.Lock()
	defer m.mu.Unlock()
	if s, ok := m.stores[clientID]; ok {
		return s
	}
	s := NewStore(clientID, m.records)
	m.stores[clientID] = s
	return s
}

// Evict closes and forgets the store for a client. Safe to call for clients
// that were never seen.
func (m *Manager) Evict(clientID string) {
	m.mu.Lock()
	s, ok := m.stores[clientID]
	delete(m.stores, clientID)
	m.mu.Unlock()
	if ok {
		s.Close()
	}
}

// Prune closes and forgets every idle store: no identity, no subscribers.
// Without it, anonymous clients presenting fresh cookie values would grow
// the map for the process lifetime. Durable state is untouched; a pruned
// client gets a new store, reloaded from the record store, on next access.
// Returns the number of stores dropped.
func (m *Manager) Prune() int {
	m.mu.Lock()
	idle := make([]*Store, 0)
	for id, s := range m.stores {
		if s.Idle() {
			idle = append(idle, s)
			delete(m.stores, id)
		}
	}
	m.mu.Unlock()
	for _, s := range idle {
		s.Close()
	}
	return len(idle)
}

// Close closes every store, ending all open change streams. Used at
// shutdown so streaming handlers unblock before the server drains.
func (m *Manager) Close() {
	m.mu.Lock()
	stores := make([]*Store, 0, len(m.stores))
	for _, s := range m.stores {
		stores = append(stores, s)
	}
	m.stores = make(map[string]*Store)
	m.mu.Unlock()
	for _, s := range stores {
		s.Close()
	}
}
