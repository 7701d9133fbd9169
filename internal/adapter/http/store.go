package http

import (
	"sync"
	"time"

	"github.com/google/uuid"

	"resume-builder/internal/domain"
	"resume-builder/internal/model"
)

// Store keeps the live editing sessions in memory. Each session holds one
// document snapshot; Update swaps it for the next snapshot under the lock,
// so readers always observe a complete document, never a half-applied edit.
// Sessions do not outlive the process.
type Store struct {
	mu       sync.RWMutex
	sessions map[uuid.UUID]*domain.Session
}

func NewStore() *Store {
	return &Store{sessions: map[uuid.UUID]*domain.Session{}}
}

// Create starts a new session with an empty document and the default
// template.
func (s *Store) Create() *domain.Session {
	now := time.Now()
	sess := &domain.Session{
		ID:        uuid.New(),
		Document:  model.New(),
		Template:  "modern",
		CreatedAt: now,
		UpdatedAt: now,
	}
	s.mu.Lock()
	s.sessions[sess.ID] = sess
	s.mu.Unlock()
	return sess
}

// Get returns a copy of the session so callers can read it without holding
// the lock.
func (s *Store) Get(id uuid.UUID) (domain.Session, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	sess, ok := s.sessions[id]
	if !ok {
		return domain.Session{}, false
	}
	return *sess, true
}

// Update applies fn to the current snapshot and installs the result as the
// new one. fn must be pure over its input.
func (s *Store) Update(id uuid.UUID, fn func(model.Document) model.Document) (domain.Session, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	sess, ok := s.sessions[id]
	if !ok {
		return domain.Session{}, false
	}
	sess.Document = fn(sess.Document)
	sess.UpdatedAt = time.Now()
	return *sess, true
}

// SetTemplate records the session's active template choice.
func (s *Store) SetTemplate(id uuid.UUID, template string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	sess, ok := s.sessions[id]
	if !ok {
		return false
	}
	sess.Template = template
	sess.UpdatedAt = time.Now()
	return true
}

// BeginGenerate sets the busy flag, refusing when a suggestion request is
// already in flight for the session.
func (s *Store) BeginGenerate(id uuid.UUID) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	sess, ok := s.sessions[id]
	if !ok || sess.Generating {
		return false
	}
	sess.Generating = true
	return true
}

// EndGenerate clears the busy flag.
func (s *Store) EndGenerate(id uuid.UUID) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if sess, ok := s.sessions[id]; ok {
		sess.Generating = false
	}
}
