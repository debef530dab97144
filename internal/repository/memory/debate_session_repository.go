package memory

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"

	"brightside-be/internal/entity"
	"brightside-be/internal/repository/contract"
)

type DebateSessionRepository struct {
	mu       sync.RWMutex
	sessions []*entity.DebateSession
}

func NewDebateSessionRepository() contract.DebateSessionRepository {
	return &DebateSessionRepository{}
}

func (r *DebateSessionRepository) Append(_ context.Context, session *entity.DebateSession) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	copied := *session
	r.sessions = append(r.sessions, &copied)
	return nil
}

func (r *DebateSessionRepository) FindByUser(_ context.Context, userId uuid.UUID) ([]*entity.DebateSession, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	var out []*entity.DebateSession
	for _, s := range r.sessions {
		if s.UserId == userId {
			copied := *s
			out = append(out, &copied)
		}
	}
	return out, nil
}

func (r *DebateSessionRepository) FindByUserSince(_ context.Context, userId uuid.UUID, since time.Time) ([]*entity.DebateSession, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	var out []*entity.DebateSession
	for _, s := range r.sessions {
		if s.UserId == userId && !s.Timestamp.Before(since) {
			copied := *s
			out = append(out, &copied)
		}
	}
	return out, nil
}
