package arena

import (
	"crypto/rand"
	"encoding/hex"
	"log"
	"sync"

	"github.com/skypop/backend/internal/config"
)

// SessionInfo is the listing view of a live session for the HUD/ops API.
type SessionInfo struct {
	ID    string `json:"id"`
	Name  string `json:"name,omitempty"`
	Phase string `json:"phase"`
	Score int    `json:"score"`
}

// Manager tracks all live sessions. One session per websocket connection;
// sessions are removed when their run loop exits.
type Manager struct {
	mu       sync.RWMutex
	cfg      *config.Config
	sessions map[string]*Session
}

func NewManager(cfg *config.Config) *Manager {
	return &Manager{
		cfg:      cfg,
		sessions: make(map[string]*Session),
	}
}

// Create registers a session for the given connection and starts its run
// loop.
func (m *Manager) Create(conn Conn) *Session {
	m.mu.Lock()
	defer m.mu.Unlock()

	var id string
	for {
		id = "s_" + generateToken(8)
		if _, exists := m.sessions[id]; !exists {
			break
		}
	}

	s := NewSession(id, conn, m.cfg)
	s.OnClose = m.remove
	m.sessions[id] = s
	go s.Run()

	log.Printf("[ARENA] Session %s created (%d live)", id, len(m.sessions))
	return s
}

// Get returns the session with the given ID, or nil.
func (m *Manager) Get(id string) *Session {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.sessions[id]
}

// List returns info for every live session.
func (m *Manager) List() []SessionInfo {
	m.mu.RLock()
	defer m.mu.RUnlock()
	out := make([]SessionInfo, 0, len(m.sessions))
	for _, s := range m.sessions {
		out = append(out, s.Info())
	}
	return out
}

// Len returns the number of live sessions.
func (m *Manager) Len() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.sessions)
}

func (m *Manager) remove(id string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.sessions[id]; ok {
		delete(m.sessions, id)
		log.Printf("[ARENA] Session %s removed (%d live)", id, len(m.sessions))
	}
}

// generateToken generates a secure random token.
func generateToken(length int) string {
	bytes := make([]byte, length)
	rand.Read(bytes)
	return hex.EncodeToString(bytes)
}
