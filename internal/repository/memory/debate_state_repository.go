package memory

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/patrickmn/go-cache"

	"brightside-be/internal/entity"
)

// DebateExchange is one completed turn of an active debate: the user's
// argument, the bot's rebuttal, and the metrics judged for the argument.
type DebateExchange struct {
	UserMessage string
	BotReply    string
	Metrics     entity.PerformanceMetrics
}

// DebateState is the rolling state of one user's active debate on a topic.
type DebateState struct {
	Exchanges []DebateExchange
}

// DebateStateRepository keeps active debates in an expiring cache, keyed by
// user and topic. An abandoned debate ages out after two hours.
type DebateStateRepository struct {
	cache *cache.Cache
}

func NewDebateStateRepository() *DebateStateRepository {
	return &DebateStateRepository{
		cache: cache.New(2*time.Hour, 10*time.Minute),
	}
}

func stateKey(userId, topicId uuid.UUID) string {
	return fmt.Sprintf("%s:%s", userId, topicId)
}

func (r *DebateStateRepository) Get(userId, topicId uuid.UUID) DebateState {
	if x, found := r.cache.Get(stateKey(userId, topicId)); found {
		return x.(DebateState)
	}
	return DebateState{}
}

func (r *DebateStateRepository) Save(userId, topicId uuid.UUID, state DebateState) {
	r.cache.Set(stateKey(userId, topicId), state, cache.DefaultExpiration)
}

func (r *DebateStateRepository) Delete(userId, topicId uuid.UUID) {
	r.cache.Delete(stateKey(userId, topicId))
}
