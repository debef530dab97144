package entity

import (
	"time"

	"github.com/google/uuid"

	"brightside-be/pkg/emotion"
)

// EQSession is one persisted record of a classified emotional-support
// interaction. Sessions are immutable after creation: the store only appends
// and reads, never updates.
type EQSession struct {
	Id             uuid.UUID
	UserId         uuid.UUID
	Timestamp      time.Time
	MoodScore      int
	DistressLevel  int
	StabilityScore int
	Transcript     string
	Summary        string
	AlertSent      bool
}

// Scores returns the session's snapshot as a score triple.
func (s *EQSession) Scores() emotion.ScoreTriple {
	return emotion.ScoreTriple{
		MoodScore:      s.MoodScore,
		DistressLevel:  s.DistressLevel,
		StabilityScore: s.StabilityScore,
	}
}
