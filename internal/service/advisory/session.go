package advisory

import (
	"sync"

	"github.com/mamadbah2/agroboard/internal/domain/models"
)

// historyCap bounds the stored turns per agent so prompts stay small.
const historyCap = 20

// SessionManager keeps one running conversation per agent role.
type SessionManager struct {
	mu       sync.RWMutex
	sessions map[models.AgentRole][]models.ChatMessage
}

// NewSessionManager creates an empty session manager.
func NewSessionManager() *SessionManager {
	return &SessionManager{
		sessions: make(map[models.AgentRole][]models.ChatMessage),
	}
}

// History returns a copy of the conversation with the given agent.
func (sm *SessionManager) History(role models.AgentRole) []models.ChatMessage {
	sm.mu.RLock()
	defer sm.mu.RUnlock()
	history := sm.sessions[role]
	out := make([]models.ChatMessage, len(history))
	copy(out, history)
	return out
}

// Append records a completed user/assistant exchange.
func (sm *SessionManager) Append(role models.AgentRole, prompt, reply string) {
	sm.mu.Lock()
	defer sm.mu.Unlock()
	history := append(sm.sessions[role],
		models.ChatMessage{Role: "user", Content: prompt},
		models.ChatMessage{Role: "assistant", Content: reply})
	if len(history) > historyCap {
		history = history[len(history)-historyCap:]
	}
	sm.sessions[role] = history
}

// Clear drops the conversation with the given agent.
func (sm *SessionManager) Clear(role models.AgentRole) {
	sm.mu.Lock()
	defer sm.mu.Unlock()
	delete(sm.sessions, role)
}
