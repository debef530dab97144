package dto

import (
	"time"

	"github.com/google/uuid"
)

// DistressAlertMessage is the payload published on the alert topic when a
// recorded EQ session crosses the distress threshold. The consumer resolves
// the user's emergency contacts and sends the notification emails.
type DistressAlertMessage struct {
	UserId        uuid.UUID `json:"user_id"`
	SessionId     uuid.UUID `json:"session_id"`
	DistressLevel int       `json:"distress_level"`
	Summary       string    `json:"summary"`
	Timestamp     time.Time `json:"timestamp"`
}
