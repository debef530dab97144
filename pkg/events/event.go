package events

import "time"

// Event defines the contract for all exported system events.
type Event interface {
	// EventType returns the unique code for this event (e.g., "EQ_SESSION_RECORDED").
	EventType() string

	// Payload returns the data associated with the event.
	Payload() map[string]interface{}

	// Timestamp returns when the event occurred.
	Timestamp() time.Time
}

// BaseEvent is the generic implementation used for all session events.
type BaseEvent struct {
	Type       string
	Data       map[string]interface{}
	OccurredAt time.Time
}

func (e BaseEvent) EventType() string {
	return e.Type
}

func (e BaseEvent) Payload() map[string]interface{} {
	return e.Data
}

func (e BaseEvent) Timestamp() time.Time {
	return e.OccurredAt
}

// Event type codes published on the external bus.
const (
	TypeEQSessionRecorded     = "EQ_SESSION_RECORDED"
	TypeDebateSessionRecorded = "DEBATE_SESSION_RECORDED"
	TypeDistressAlertSent     = "DISTRESS_ALERT_SENT"
)
