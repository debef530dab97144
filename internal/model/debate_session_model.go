package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

type DebateSession struct {
	Id         uuid.UUID      `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	UserId     uuid.UUID      `gorm:"type:uuid;not null;index"`
	Timestamp  time.Time      `gorm:"not null;index"`
	Topic      string         `gorm:"type:varchar(200);not null;index"`
	Transcript string         `gorm:"type:text"`
	Metrics    datatypes.JSON `gorm:"type:jsonb;not null"`
	Feedback   string         `gorm:"type:text"`
	CreatedAt  time.Time      `gorm:"autoCreateTime"`
}

func (DebateSession) TableName() string {
	return "debate_sessions"
}
