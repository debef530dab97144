package memory

import (
	"time"

	"github.com/google/uuid"
	"github.com/patrickmn/go-cache"

	"brightside-be/pkg/emotion"
)

// ContextRepository keeps each chat session's rolling ConversationContext in
// an expiring cache. Idle conversations age out after an hour; a miss simply
// starts a fresh context.
type ContextRepository struct {
	cache *cache.Cache
}

func NewContextRepository() *ContextRepository {
	return &ContextRepository{
		cache: cache.New(1*time.Hour, 10*time.Minute),
	}
}

func (r *ContextRepository) Get(sessionId uuid.UUID) emotion.ConversationContext {
	if x, found := r.cache.Get(sessionId.String()); found {
		return x.(emotion.ConversationContext)
	}
	return emotion.NewConversationContext()
}

func (r *ContextRepository) Save(sessionId uuid.UUID, ctx emotion.ConversationContext) {
	r.cache.Set(sessionId.String(), ctx, cache.DefaultExpiration)
}

func (r *ContextRepository) Delete(sessionId uuid.UUID) {
	r.cache.Delete(sessionId.String())
}
