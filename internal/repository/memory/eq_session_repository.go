package memory

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"

	"brightside-be/internal/entity"
	"brightside-be/internal/repository/contract"
)

// EQSessionRepository keeps sessions in a process-local append-only slice.
// Appends are serialized behind a single writer lock since timestamp order
// matters for trend windowing; reads run against a copied snapshot.
type EQSessionRepository struct {
	mu       sync.RWMutex
	sessions []*entity.EQSession
}

func NewEQSessionRepository() contract.EQSessionRepository {
	return &EQSessionRepository{}
}

func (r *EQSessionRepository) Append(_ context.Context, session *entity.EQSession) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	copied := *session
	r.sessions = append(r.sessions, &copied)
	return nil
}

func (r *EQSessionRepository) FindByUser(_ context.Context, userId uuid.UUID) ([]*entity.EQSession, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	var out []*entity.EQSession
	for _, s := range r.sessions {
		if s.UserId == userId {
			copied := *s
			out = append(out, &copied)
		}
	}
	return out, nil
}

func (r *EQSessionRepository) FindByUserSince(_ context.Context, userId uuid.UUID, since time.Time) ([]*entity.EQSession, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	var out []*entity.EQSession
	for _, s := range r.sessions {
		if s.UserId == userId && !s.Timestamp.Before(since) {
			copied := *s
			out = append(out, &copied)
		}
	}
	return out, nil
}
