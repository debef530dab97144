package dto

import (
	"time"

	"github.com/google/uuid"

	"brightside-be/pkg/emotion"
)

type SendEQMessageRequest struct {
	ChatSessionId uuid.UUID `json:"chat_session_id" validate:"required"`
	Message       string    `json:"message" validate:"required"`
}

type SendEQMessageResponse struct {
	State     emotion.State       `json:"state"`
	Scores    emotion.ScoreTriple `json:"scores"`
	Reply     string              `json:"reply"`
	Session   *EQSessionResponse  `json:"session"`
	AlertSent bool                `json:"alert_sent"`
}

type EQSessionResponse struct {
	Id             uuid.UUID `json:"id"`
	UserId         uuid.UUID `json:"user_id"`
	Timestamp      time.Time `json:"timestamp"`
	MoodScore      int       `json:"mood_score"`
	DistressLevel  int       `json:"distress_level"`
	StabilityScore int       `json:"stability_score"`
	Transcript     string    `json:"transcript"`
	Summary        string    `json:"summary"`
	AlertSent      bool      `json:"alert_sent"`
}
