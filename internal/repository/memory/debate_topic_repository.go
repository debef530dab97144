package memory

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"brightside-be/internal/entity"
	"brightside-be/internal/repository/contract"
)

type DebateTopicRepository struct {
	mu     sync.RWMutex
	topics []*entity.DebateTopic
}

// NewDebateTopicRepository starts the catalog with the given built-in topics.
func NewDebateTopicRepository(builtin []*entity.DebateTopic) contract.DebateTopicRepository {
	r := &DebateTopicRepository{}
	for _, t := range builtin {
		copied := *t
		r.topics = append(r.topics, &copied)
	}
	return r
}

func (r *DebateTopicRepository) Create(_ context.Context, topic *entity.DebateTopic) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	copied := *topic
	r.topics = append(r.topics, &copied)
	return nil
}

func (r *DebateTopicRepository) FindById(_ context.Context, id uuid.UUID) (*entity.DebateTopic, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, t := range r.topics {
		if t.Id == id {
			copied := *t
			return &copied, nil
		}
	}
	return nil, nil
}

func (r *DebateTopicRepository) FindVisibleToUser(_ context.Context, userId uuid.UUID) ([]*entity.DebateTopic, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	var out []*entity.DebateTopic
	for _, t := range r.topics {
		if t.Builtin() || t.UserId == userId {
			copied := *t
			out = append(out, &copied)
		}
	}
	return out, nil
}
