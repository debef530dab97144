package mapper

import (
	"encoding/json"

	"brightside-be/internal/entity"
	"brightside-be/internal/model"
)

type SessionMapper struct{}

func NewSessionMapper() *SessionMapper {
	return &SessionMapper{}
}

func (m *SessionMapper) EQSessionToEntity(s *model.EQSession) *entity.EQSession {
	if s == nil {
		return nil
	}
	return &entity.EQSession{
		Id:             s.Id,
		UserId:         s.UserId,
		Timestamp:      s.Timestamp,
		MoodScore:      s.MoodScore,
		DistressLevel:  s.DistressLevel,
		StabilityScore: s.StabilityScore,
		Transcript:     s.Transcript,
		Summary:        s.Summary,
		AlertSent:      s.AlertSent,
	}
}

func (m *SessionMapper) EQSessionToModel(s *entity.EQSession) *model.EQSession {
	if s == nil {
		return nil
	}
	return &model.EQSession{
		Id:             s.Id,
		UserId:         s.UserId,
		Timestamp:      s.Timestamp,
		MoodScore:      s.MoodScore,
		DistressLevel:  s.DistressLevel,
		StabilityScore: s.StabilityScore,
		Transcript:     s.Transcript,
		Summary:        s.Summary,
		AlertSent:      s.AlertSent,
	}
}

func (m *SessionMapper) DebateSessionToEntity(s *model.DebateSession) *entity.DebateSession {
	if s == nil {
		return nil
	}
	var metrics entity.PerformanceMetrics
	// Metrics were written by us; a decode failure leaves zeroed metrics
	// rather than failing the read path.
	_ = json.Unmarshal(s.Metrics, &metrics)
	return &entity.DebateSession{
		Id:                 s.Id,
		UserId:             s.UserId,
		Timestamp:          s.Timestamp,
		Topic:              s.Topic,
		Transcript:         s.Transcript,
		PerformanceMetrics: metrics,
		Feedback:           s.Feedback,
	}
}

func (m *SessionMapper) DebateSessionToModel(s *entity.DebateSession) (*model.DebateSession, error) {
	if s == nil {
		return nil, nil
	}
	metrics, err := json.Marshal(s.PerformanceMetrics)
	if err != nil {
		return nil, err
	}
	return &model.DebateSession{
		Id:         s.Id,
		UserId:     s.UserId,
		Timestamp:  s.Timestamp,
		Topic:      s.Topic,
		Transcript: s.Transcript,
		Metrics:    metrics,
		Feedback:   s.Feedback,
	}, nil
}
