package dto

import (
	"time"

	"github.com/google/uuid"

	"brightside-be/internal/entity"
)

type SendDebateMessageRequest struct {
	TopicId uuid.UUID `json:"topic_id" validate:"required"`
	Message string    `json:"message" validate:"required"`
}

type SendDebateMessageResponse struct {
	Reply          string                 `json:"reply"`
	ArgumentScore  int                    `json:"argument_score"`
	Session        *DebateSessionResponse `json:"session,omitempty"`
	ExchangeNumber int                    `json:"exchange_number"`
}

type DebateSessionResponse struct {
	Id                 uuid.UUID                 `json:"id"`
	UserId             uuid.UUID                 `json:"user_id"`
	Timestamp          time.Time                 `json:"timestamp"`
	Topic              string                    `json:"topic"`
	Transcript         string                    `json:"transcript"`
	PerformanceMetrics entity.PerformanceMetrics `json:"performance_metrics"`
	Feedback           string                    `json:"feedback"`
}

type CreateTopicRequest struct {
	Title            string   `json:"title" validate:"required,max=200"`
	Description      string   `json:"description"`
	ForArguments     []string `json:"for_arguments"`
	AgainstArguments []string `json:"against_arguments"`
}

type TopicResponse struct {
	Id               uuid.UUID `json:"id"`
	Title            string    `json:"title"`
	Description      string    `json:"description"`
	ForArguments     []string  `json:"for_arguments"`
	AgainstArguments []string  `json:"against_arguments"`
	Custom           bool      `json:"custom"`
}
