package contract

import (
	"context"

	"github.com/google/uuid"

	"brightside-be/internal/entity"
)

// DebateTopicRepository serves the topic catalog: built-in topics plus the
// requesting user's own custom topics. Custom topics are registered per user,
// never appended to shared state.
type DebateTopicRepository interface {
	Create(ctx context.Context, topic *entity.DebateTopic) error
	FindById(ctx context.Context, id uuid.UUID) (*entity.DebateTopic, error)
	FindVisibleToUser(ctx context.Context, userId uuid.UUID) ([]*entity.DebateTopic, error)
}
