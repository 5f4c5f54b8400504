package viewer

import (
	"sync"

	"github.com/FelixBrandt/Foliogram/internal/pkg/loader"
)

// Manager hands out one viewer session per browser session id. Sessions are
// created lazily on first use and torn down on Drop.
type Manager struct {
	mu       sync.Mutex
	fetcher  loader.Fetcher
	sessions map[string]*Session
}

func NewManager(fetcher loader.Fetcher) *Manager {
	return &Manager{
		fetcher:  fetcher,
		sessions: make(map[string]*Session),
	}
}

// Session returns the viewer session bound to the given id, creating it if
// necessary.
func (m *Manager) Session(id string) *Session {
	m.mu.Lock()
	defer m.mu.Unlock()

	if s, ok := m.sessions[id]; ok {
		return s
	}
	s := NewSession(m.fetcher)
	m.sessions[id] = s
	return s
}

// Drop closes and removes the session bound to the given id.
func (m *Manager) Drop(id string) {
	m.mu.Lock()
	s := m.sessions[id]
	delete(m.sessions, id)
	m.mu.Unlock()

	if s != nil {
		s.Close()
	}
}
