package entity

import (
	"time"

	"github.com/google/uuid"
)

type User struct {
	Id           uuid.UUID
	Name         string
	Email        string
	PasswordHash string
	Contacts     []Contact
	CreatedAt    time.Time
}

// Contact is an emergency contact notified when a user's distress level
// crosses the alert threshold.
type Contact struct {
	Id           uuid.UUID
	UserId       uuid.UUID
	Name         string
	Email        string
	Relationship string // "counselor", "parent" or "friend"
}
