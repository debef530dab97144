package contract

import (
	"context"
	"time"

	"github.com/google/uuid"

	"brightside-be/internal/entity"
)

// DebateSessionRepository mirrors EQSessionRepository for debate sessions:
// append-only, insertion-ordered reads.
type DebateSessionRepository interface {
	Append(ctx context.Context, session *entity.DebateSession) error
	FindByUser(ctx context.Context, userId uuid.UUID) ([]*entity.DebateSession, error)
	FindByUserSince(ctx context.Context, userId uuid.UUID, since time.Time) ([]*entity.DebateSession, error)
}
