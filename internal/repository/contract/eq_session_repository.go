package contract

import (
	"context"
	"time"

	"github.com/google/uuid"

	"brightside-be/internal/entity"
)

// EQSessionRepository is the append-only store for EQ sessions. There is no
// update or delete: sessions are immutable once recorded. Results preserve
// insertion order; consumers that need time ordering sort explicitly.
type EQSessionRepository interface {
	Append(ctx context.Context, session *entity.EQSession) error
	FindByUser(ctx context.Context, userId uuid.UUID) ([]*entity.EQSession, error)
	FindByUserSince(ctx context.Context, userId uuid.UUID, since time.Time) ([]*entity.EQSession, error)
}
