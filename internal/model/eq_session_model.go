package model

import (
	"time"

	"github.com/google/uuid"
)

type EQSession struct {
	Id             uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	UserId         uuid.UUID `gorm:"type:uuid;not null;index"`
	Timestamp      time.Time `gorm:"not null;index"`
	MoodScore      int       `gorm:"not null"`
	DistressLevel  int       `gorm:"not null"`
	StabilityScore int       `gorm:"not null"`
	Transcript     string    `gorm:"type:text"`
	Summary        string    `gorm:"type:text"`
	AlertSent      bool      `gorm:"default:false"`
	CreatedAt      time.Time `gorm:"autoCreateTime"`
}

func (EQSession) TableName() string {
	return "eq_sessions"
}
