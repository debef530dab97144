package service

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
	"github.com/google/uuid"

	"brightside-be/internal/dto"
	"brightside-be/internal/entity"
	"brightside-be/internal/pkg/logger"
	"brightside-be/internal/repository/contract"
	"brightside-be/internal/repository/memory"
	"brightside-be/pkg/emotion"
	"brightside-be/pkg/events"
	"brightside-be/pkg/llm"
	pktNats "brightside-be/pkg/nats"
	"brightside-be/pkg/realtime"
)

const eqBotPrompt = `You are an empathetic and emotionally intelligent AI assistant. Your role is to:
1. Help users process and understand their emotions
2. Provide supportive and understanding responses
3. Offer constructive suggestions when appropriate
4. Maintain a compassionate and non-judgmental tone
5. Ask relevant follow-up questions to better understand the user's emotional state

Focus on emotional support while maintaining professional boundaries.
If users express severe distress or mention self-harm, kindly direct them to professional help
and mental health resources.

Please analyze the emotional context of each message and respond with appropriate empathy.
Try to identify underlying emotions and validate the user's feelings while offering constructive support.`

const eqFallbackReply = "I'm here with you. Tell me more about how you're feeling right now."

type IEQBotService interface {
	SendMessage(ctx context.Context, userId uuid.UUID, req *dto.SendEQMessageRequest) (*dto.SendEQMessageResponse, error)
	ListSessions(ctx context.Context, userId uuid.UUID) ([]*dto.EQSessionResponse, error)
}

type eqBotService struct {
	eqRepo            contract.EQSessionRepository
	contextRepo       *memory.ContextRepository
	broker            *realtime.Broker
	pubSub            *gochannel.GoChannel
	alertTopic        string
	llmProvider       llm.LLMProvider
	eventPublisher    *pktNats.Publisher
	logger            logger.ILogger
	distressThreshold int
}

func NewEQBotService(
	eqRepo contract.EQSessionRepository,
	contextRepo *memory.ContextRepository,
	broker *realtime.Broker,
	pubSub *gochannel.GoChannel,
	alertTopic string,
	llmProvider llm.LLMProvider,
	eventPublisher *pktNats.Publisher,
	log logger.ILogger,
	distressThreshold int,
) IEQBotService {
	if distressThreshold <= 0 {
		distressThreshold = emotion.DefaultDistressThreshold
	}
	return &eqBotService{
		eqRepo:            eqRepo,
		contextRepo:       contextRepo,
		broker:            broker,
		pubSub:            pubSub,
		alertTopic:        alertTopic,
		llmProvider:       llmProvider,
		eventPublisher:    eventPublisher,
		logger:            log,
		distressThreshold: distressThreshold,
	}
}

// SendMessage runs one turn of the emotional-support conversation: classify
// and score the message against the chat session's rolling context, persist
// the session, fan out to live subscribers, raise the distress alert when
// warranted, then generate the supportive reply.
func (s *eqBotService) SendMessage(ctx context.Context, userId uuid.UUID, req *dto.SendEQMessageRequest) (*dto.SendEQMessageResponse, error) {
	convCtx := s.contextRepo.Get(req.ChatSessionId)
	result := emotion.ClassifyAndScore(req.Message, convCtx)
	s.contextRepo.Save(req.ChatSessionId, result.Context)

	session := &entity.EQSession{
		Id:             uuid.New(),
		UserId:         userId,
		Timestamp:      time.Now(),
		MoodScore:      result.Scores.MoodScore,
		DistressLevel:  result.Scores.DistressLevel,
		StabilityScore: result.Scores.StabilityScore,
		Transcript:     req.Message,
		Summary:        fmt.Sprintf("User expressed %s sentiment.", result.State),
		AlertSent:      result.Scores.DistressLevel > s.distressThreshold,
	}

	if err := s.eqRepo.Append(ctx, session); err != nil {
		return nil, fmt.Errorf("record eq session: %w", err)
	}

	s.broker.Publish(realtime.ChannelEQ, session)
	s.exportSessionEvent(ctx, session)

	if session.AlertSent {
		s.publishDistressAlert(session)
	}

	reply := s.generateReply(ctx, result, req.Message)

	return &dto.SendEQMessageResponse{
		State:     result.State,
		Scores:    result.Scores,
		Reply:     reply,
		Session:   toEQSessionResponse(session),
		AlertSent: session.AlertSent,
	}, nil
}

func (s *eqBotService) generateReply(ctx context.Context, result emotion.Classification, userMessage string) string {
	history := []llm.Message{
		{Role: "system", Content: fmt.Sprintf("%s\n\nThe user's current emotional state reads as %s.",
			eqBotPrompt, emotion.FormatState(result.State, true))},
		{Role: "user", Content: userMessage},
	}

	reply, err := s.llmProvider.Chat(ctx, history, llm.WithTemperature(0.7))
	if err != nil {
		s.logger.Warn("eqbot", "reply generation failed, using fallback", map[string]interface{}{
			"error": err.Error(),
		})
		return eqFallbackReply
	}
	return reply
}

// publishDistressAlert hands the alert to the async pipeline. A publish
// failure is logged and swallowed: alert delivery must never fail the
// recording call.
func (s *eqBotService) publishDistressAlert(session *entity.EQSession) {
	alert := dto.DistressAlertMessage{
		UserId:        session.UserId,
		SessionId:     session.Id,
		DistressLevel: session.DistressLevel,
		Summary:       session.Transcript,
		Timestamp:     session.Timestamp,
	}

	payload, err := json.Marshal(alert)
	if err != nil {
		s.logger.Error("eqbot", "failed to marshal distress alert", map[string]interface{}{
			"session_id": session.Id.String(),
			"error":      err.Error(),
		})
		return
	}

	msg := message.NewMessage(watermill.NewUUID(), payload)
	if err := s.pubSub.Publish(s.alertTopic, msg); err != nil {
		s.logger.Error("eqbot", "failed to publish distress alert", map[string]interface{}{
			"session_id": session.Id.String(),
			"error":      err.Error(),
		})
	}
}

func (s *eqBotService) exportSessionEvent(ctx context.Context, session *entity.EQSession) {
	err := s.eventPublisher.Publish(ctx, events.BaseEvent{
		Type: events.TypeEQSessionRecorded,
		Data: map[string]interface{}{
			"session_id":     session.Id.String(),
			"user_id":        session.UserId.String(),
			"mood_score":     session.MoodScore,
			"distress_level": session.DistressLevel,
			"alert_sent":     session.AlertSent,
		},
		OccurredAt: session.Timestamp,
	})
	if err != nil {
		s.logger.Warn("eqbot", "failed to export session event", map[string]interface{}{
			"session_id": session.Id.String(),
			"error":      err.Error(),
		})
	}
}

func (s *eqBotService) ListSessions(ctx context.Context, userId uuid.UUID) ([]*dto.EQSessionResponse, error) {
	sessions, err := s.eqRepo.FindByUser(ctx, userId)
	if err != nil {
		return nil, err
	}

	responses := make([]*dto.EQSessionResponse, 0, len(sessions))
	for _, session := range sessions {
		responses = append(responses, toEQSessionResponse(session))
	}
	return responses, nil
}

func toEQSessionResponse(session *entity.EQSession) *dto.EQSessionResponse {
	return &dto.EQSessionResponse{
		Id:             session.Id,
		UserId:         session.UserId,
		Timestamp:      session.Timestamp,
		MoodScore:      session.MoodScore,
		DistressLevel:  session.DistressLevel,
		StabilityScore: session.StabilityScore,
		Transcript:     session.Transcript,
		Summary:        session.Summary,
		AlertSent:      session.AlertSent,
	}
}
