package entity

import "github.com/google/uuid"

// DebateTopic is a debatable subject with seed arguments for both sides.
// Built-in topics have a nil UserId; custom topics belong to the user who
// registered them and are never shared.
type DebateTopic struct {
	Id               uuid.UUID
	UserId           uuid.UUID
	Title            string
	Description      string
	ForArguments     []string
	AgainstArguments []string
}

// Builtin reports whether the topic ships with the catalog.
func (t *DebateTopic) Builtin() bool {
	return t.UserId == uuid.Nil
}
