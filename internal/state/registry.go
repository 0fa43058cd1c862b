package state

import "sync"

// Registry owns every live session, keyed by the credential subject. It is
// created once at the application root and injected wherever sessions are
// looked up.
type Registry struct {
	mu       sync.RWMutex
	sessions map[string]*Session
}

// NewRegistry returns an empty session registry.
func NewRegistry() *Registry {
	return &Registry{sessions: make(map[string]*Session)}
}

// Get returns the session for the subject, if one exists.
func (r *Registry) Get(subject string) (*Session, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	s, ok := r.sessions[subject]

	return s, ok
}

// GetOrCreate returns the session for the subject, creating an
// unauthenticated one when absent.
func (r *Registry) GetOrCreate(subject string) *Session {
	r.mu.Lock()
	defer r.mu.Unlock()

	if s, ok := r.sessions[subject]; ok {
		return s
	}
	s := NewSession()
	r.sessions[subject] = s

	return s
}

// Delete removes the session for the subject.
func (r *Registry) Delete(subject string) {
	r.mu.Lock()
	defer r.mu.Unlock()

	delete(r.sessions, subject)
}

// Len returns the number of live sessions.
func (r *Registry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return len(r.sessions)
}
