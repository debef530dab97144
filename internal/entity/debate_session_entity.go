package entity

import (
	"time"

	"github.com/google/uuid"
)

// PerformanceMetrics holds the four judged dimensions of a debate exchange
// plus their weighted overall score, each 0-100.
type PerformanceMetrics struct {
	Coherence      int `json:"coherence"`
	Persuasiveness int `json:"persuasiveness"`
	KnowledgeDepth int `json:"knowledge_depth"`
	Articulation   int `json:"articulation"`
	OverallScore   int `json:"overall_score"`
}

// DebateSession is one persisted record of a concluded debate exchange.
// Immutable after creation, like EQSession.
type DebateSession struct {
	Id                 uuid.UUID
	UserId             uuid.UUID
	Timestamp          time.Time
	Topic              string
	Transcript         string
	PerformanceMetrics PerformanceMetrics
	Feedback           string
}
