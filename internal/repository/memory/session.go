// Package memory keeps browsing sessions in process memory. Sessions are
// discarded on restart.
package memory

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"

	"moto-rentals-backend/internal/domain"
	"moto-rentals-backend/internal/repository"
)

type sessionRepository struct {
	mu       sync.RWMutex
	sessions map[string]*domain.Session
	now      func() time.Time
}

func NewSessionRepository() repository.SessionRepository {
	return newSessionRepository(time.Now)
}

func newSessionRepository(now func() time.Time) *sessionRepository {
	return &sessionRepository{
		sessions: make(map[string]*domain.Session),
		now:      now,
	}
}

// Create assigns an id when the session has none and stamps it.
func (r *sessionRepository) Create(ctx context.Context, s *domain.Session) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if s.ID == "" {
		s.ID = uuid.NewString()
	}
	if _, exists := r.sessions[s.ID]; exists {
		return fmt.Errorf("session %s already exists", s.ID)
	}
	now := r.now()
	s.CreatedOn = now
	s.LastSeenOn = now

	stored := copySession(s)
	r.sessions[s.ID] = stored
	return nil
}

func (r *sessionRepository) Get(ctx context.Context, id string) (*domain.Session, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	s, ok := r.sessions[id]
	if !ok {
		return nil, domain.ErrSessionNotFound
	}
	s.LastSeenOn = r.now()
	return copySession(s), nil
}

func (r *sessionRepository) Update(ctx context.Context, id string, fn func(*domain.Session) error) (*domain.Session, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	s, ok := r.sessions[id]
	if !ok {
		return nil, domain.ErrSessionNotFound
	}
	working := copySession(s)
	if err := fn(working); err != nil {
		return nil, err
	}
	working.ID = id
	working.CreatedOn = s.CreatedOn
	working.LastSeenOn = r.now()
	r.sessions[id] = working
	return copySession(working), nil
}

func (r *sessionRepository) Delete(ctx context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.sessions[id]; !ok {
		return domain.ErrSessionNotFound
	}
	delete(r.sessions, id)
	return nil
}

func (r *sessionRepository) DeleteIdleSince(ctx context.Context, cutoff time.Time) (int, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	n := 0
	for id, s := range r.sessions {
		if s.LastSeenOn.Before(cutoff) {
			delete(r.sessions, id)
			n++
		}
	}
	return n, nil
}

func (r *sessionRepository) Count(ctx context.Context) (int, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.sessions), nil
}

func copySession(s *domain.Session) *domain.Session {
	c := *s
	c.Filters = s.Filters.Clone()
	c.Panel.OpenSections = append([]domain.SectionID(nil), s.Panel.OpenSections...)
	if s.SelectedVehicleID != nil {
		id := *s.SelectedVehicleID
		c.SelectedVehicleID = &id
	}
	return &c
}
