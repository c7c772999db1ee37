package session

import "sync"

// Registry maps chat IDs to their active edit sessions. Chats without an
// entry are idle. Sessions are never shared between chats.
type Registry struct {
	mu       sync.Mutex
	sessions map[int64]*Session
}

// NewRegistry creates an empty session registry.
func NewRegistry() *Registry {
	return &Registry{sessions: make(map[int64]*Session)}
}

// Get returns the active session for a chat, if any.
func (r *Registry) Get(chatID int64) (*Session, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	s, ok := r.sessions[chatID]
	return s, ok
}

// Put stores a session, replacing any previous one for the chat.
func (r *Registry) Put(s *Session) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.sessions[s.ChatID] = s
}

// Delete removes the chat's session, returning it to idle.
func (r *Registry) Delete(chatID int64) {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.sessions, chatID)
}

// Len returns the number of active sessions.
func (r *Registry) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.sessions)
}
