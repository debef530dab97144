package service

import (
	"context"
	"errors"
	"fmt"
	"math"
	"regexp"
	"strings"
	"time"

	"github.com/google/uuid"

	"brightside-be/internal/dto"
	"brightside-be/internal/entity"
	"brightside-be/internal/pkg/logger"
	"brightside-be/internal/repository/contract"
	"brightside-be/internal/repository/memory"
	"brightside-be/pkg/events"
	"brightside-be/pkg/llm"
	pktNats "brightside-be/pkg/nats"
	"brightside-be/pkg/realtime"
)

const debateBotPrompt = `You are a sophisticated debate partner focused on helping users develop critical thinking and communication skills. Your role is to:
1. Engage in thoughtful discussions on a wide range of topics (both predefined and custom)
2. Present well-reasoned arguments backed by evidence and examples
3. Challenge assumptions constructively while maintaining respect
4. Help develop the user's critical thinking and persuasion skills
5. Maintain a balanced, fair and professional tone
6. Provide accurate information while acknowledging uncertainties

In your responses, include:
- Relevant facts and statistics when available
- Compelling real-world examples
- Sound logical reasoning
- Thoughtful counterarguments
- Acknowledgment of nuance and complexity

Provide constructive feedback on the user's arguments while remaining engaging and encouraging. Your goal is to help them improve their critical thinking and debate skills, not to win the debate.`

const debateFallbackReply = "That's an interesting point. Could you elaborate on the reasoning behind it?"

// A debate is considered complete enough to record once the user has made
// this many arguments.
const minExchangesForSession = 4

var (
	ErrTopicNotFound  = errors.New("debate topic not found")
	ErrTopicForbidden = errors.New("debate topic belongs to another user")
)

type IDebateService interface {
	SendMessage(ctx context.Context, userId uuid.UUID, req *dto.SendDebateMessageRequest) (*dto.SendDebateMessageResponse, error)
	ListSessions(ctx context.Context, userId uuid.UUID) ([]*dto.DebateSessionResponse, error)
	CreateTopic(ctx context.Context, userId uuid.UUID, req *dto.CreateTopicRequest) (*dto.TopicResponse, error)
	ListTopics(ctx context.Context, userId uuid.UUID) ([]*dto.TopicResponse, error)
}

type debateService struct {
	debateRepo     contract.DebateSessionRepository
	topicRepo      contract.DebateTopicRepository
	stateRepo      *memory.DebateStateRepository
	broker         *realtime.Broker
	llmProvider    llm.LLMProvider
	eventPublisher *pktNats.Publisher
	logger         logger.ILogger
}

func NewDebateService(
	debateRepo contract.DebateSessionRepository,
	topicRepo contract.DebateTopicRepository,
	stateRepo *memory.DebateStateRepository,
	broker *realtime.Broker,
	llmProvider llm.LLMProvider,
	eventPublisher *pktNats.Publisher,
	log logger.ILogger,
) IDebateService {
	return &debateService{
		debateRepo:     debateRepo,
		topicRepo:      topicRepo,
		stateRepo:      stateRepo,
		broker:         broker,
		llmProvider:    llmProvider,
		eventPublisher: eventPublisher,
		logger:         log,
	}
}

// SendMessage runs one exchange of a debate: judge the user's argument,
// generate the bot's rebuttal, and once enough exchanges have accumulated,
// record the debate as a session.
func (s *debateService) SendMessage(ctx context.Context, userId uuid.UUID, req *dto.SendDebateMessageRequest) (*dto.SendDebateMessageResponse, error) {
	topic, err := s.topicRepo.FindById(ctx, req.TopicId)
	if err != nil {
		return nil, err
	}
	if topic == nil {
		return nil, ErrTopicNotFound
	}
	if !topic.Builtin() && topic.UserId != userId {
		return nil, ErrTopicForbidden
	}

	state := s.stateRepo.Get(userId, req.TopicId)

	metrics := scoreArgument(req.Message)
	reply := s.generateRebuttal(ctx, topic, state, req.Message)

	state.Exchanges = append(state.Exchanges, memory.DebateExchange{
		UserMessage: req.Message,
		BotReply:    reply,
		Metrics:     metrics,
	})
	s.stateRepo.Save(userId, req.TopicId, state)

	exchangeNumber := len(state.Exchanges)

	response := &dto.SendDebateMessageResponse{
		Reply:          reply,
		ArgumentScore:  metrics.OverallScore,
		ExchangeNumber: exchangeNumber,
	}

	if exchangeNumber >= minExchangesForSession {
		session, err := s.recordSession(ctx, userId, topic, state)
		if err != nil {
			return nil, err
		}
		response.Session = toDebateSessionResponse(session)
		// The debate is concluded; the next message on this topic starts fresh.
		s.stateRepo.Delete(userId, req.TopicId)
	}

	return response, nil
}

func (s *debateService) generateRebuttal(ctx context.Context, topic *entity.DebateTopic, state memory.DebateState, userMessage string) string {
	system := fmt.Sprintf("%s\n\nCurrent topic: %q\n%s\n\nEvaluate the user's arguments and provide constructive feedback.",
		debateBotPrompt, topic.Title, topic.Description)

	history := []llm.Message{{Role: "system", Content: system}}

	// Carry the last three exchanges so the rebuttal stays on thread.
	start := len(state.Exchanges) - 3
	if start < 0 {
		start = 0
	}
	for _, ex := range state.Exchanges[start:] {
		history = append(history,
			llm.Message{Role: "user", Content: ex.UserMessage},
			llm.Message{Role: "assistant", Content: ex.BotReply},
		)
	}
	history = append(history, llm.Message{Role: "user", Content: userMessage})

	reply, err := s.llmProvider.Chat(ctx, history, llm.WithTemperature(0.8))
	if err != nil {
		s.logger.Warn("debate", "rebuttal generation failed, using fallback", map[string]interface{}{
			"error": err.Error(),
		})
		return debateFallbackReply
	}
	return reply
}

func (s *debateService) recordSession(ctx context.Context, userId uuid.UUID, topic *entity.DebateTopic, state memory.DebateState) (*entity.DebateSession, error) {
	metrics := averageMetrics(state.Exchanges)
	metrics.OverallScore = overallScore(metrics)

	var transcript strings.Builder
	for i, ex := range state.Exchanges {
		if i > 0 {
			transcript.WriteString("\n\n")
		}
		fmt.Fprintf(&transcript, "User: %s\n\nBot: %s", ex.UserMessage, ex.BotReply)
	}

	session := &entity.DebateSession{
		Id:                 uuid.New(),
		UserId:             userId,
		Timestamp:          time.Now(),
		Topic:              topic.Title,
		Transcript:         transcript.String(),
		PerformanceMetrics: metrics,
		Feedback:           generateFeedback(metrics),
	}

	if err := s.debateRepo.Append(ctx, session); err != nil {
		return nil, fmt.Errorf("record debate session: %w", err)
	}

	s.broker.Publish(realtime.ChannelDebate, session)
	s.exportSessionEvent(ctx, session)

	return session, nil
}

func (s *debateService) exportSessionEvent(ctx context.Context, session *entity.DebateSession) {
	err := s.eventPublisher.Publish(ctx, events.BaseEvent{
		Type: events.TypeDebateSessionRecorded,
		Data: map[string]interface{}{
			"session_id":    session.Id.String(),
			"user_id":       session.UserId.String(),
			"topic":         session.Topic,
			"overall_score": session.PerformanceMetrics.OverallScore,
		},
		OccurredAt: session.Timestamp,
	})
	if err != nil {
		s.logger.Warn("debate", "failed to export session event", map[string]interface{}{
			"session_id": session.Id.String(),
			"error":      err.Error(),
		})
	}
}

var (
	connectivePattern = regexp.MustCompile(`(?i)\b(because|therefore|however|moreover|consequently|thus|furthermore|for example|for instance|in contrast|on the other hand)\b`)
	evidencePattern   = regexp.MustCompile(`(?i)(\d+(\.\d+)?%?|\b(study|studies|research|according to|data|statistics|evidence|report)\b)`)
	wordPattern       = regexp.MustCompile(`[A-Za-z']+`)
)

// scoreArgument judges one argument on the four debate dimensions. The
// scoring is heuristic and deterministic: structure markers drive coherence,
// length drives persuasiveness, evidence markers drive knowledge depth, and
// vocabulary variety drives articulation.
func scoreArgument(text string) entity.PerformanceMetrics {
	words := wordPattern.FindAllString(strings.ToLower(text), -1)

	coherence := 70 + 4*len(connectivePattern.FindAllString(text, -1))
	if coherence > 90 {
		coherence = 90
	}

	persuasiveness := 65 + len(text)/50
	if persuasiveness > 100 {
		persuasiveness = 100
	}

	knowledgeDepth := 70 + 5*len(evidencePattern.FindAllString(text, -1))
	if knowledgeDepth > 95 {
		knowledgeDepth = 95
	}

	articulation := 75
	if len(words) > 0 {
		unique := map[string]struct{}{}
		for _, w := range words {
			unique[w] = struct{}{}
		}
		articulation += int(math.Round(float64(len(unique)) / float64(len(words)) * 15))
	}
	if articulation > 90 {
		articulation = 90
	}

	m := entity.PerformanceMetrics{
		Coherence:      coherence,
		Persuasiveness: persuasiveness,
		KnowledgeDepth: knowledgeDepth,
		Articulation:   articulation,
	}
	m.OverallScore = int(math.Round(float64(coherence+persuasiveness+knowledgeDepth+articulation) / 4))
	return m
}

func averageMetrics(exchanges []memory.DebateExchange) entity.PerformanceMetrics {
	if len(exchanges) == 0 {
		return entity.PerformanceMetrics{}
	}
	var c, p, k, a int
	for _, ex := range exchanges {
		c += ex.Metrics.Coherence
		p += ex.Metrics.Persuasiveness
		k += ex.Metrics.KnowledgeDepth
		a += ex.Metrics.Articulation
	}
	n := float64(len(exchanges))
	return entity.PerformanceMetrics{
		Coherence:      int(math.Round(float64(c) / n)),
		Persuasiveness: int(math.Round(float64(p) / n)),
		KnowledgeDepth: int(math.Round(float64(k) / n)),
		Articulation:   int(math.Round(float64(a) / n)),
	}
}

// overallScore weights the four dimensions: coherence and persuasiveness
// carry the most, articulation the least.
func overallScore(m entity.PerformanceMetrics) int {
	return int(math.Round(
		float64(m.Coherence)*0.30 +
			float64(m.Persuasiveness)*0.30 +
			float64(m.KnowledgeDepth)*0.25 +
			float64(m.Articulation)*0.15))
}

func generateFeedback(m entity.PerformanceMetrics) string {
	areas := []struct {
		name  string
		value int
	}{
		{"coherence", m.Coherence},
		{"persuasiveness", m.Persuasiveness},
		{"knowledge depth", m.KnowledgeDepth},
		{"articulation", m.Articulation},
	}

	strongest, weakest := areas[0], areas[0]
	for _, a := range areas[1:] {
		if a.value > strongest.value {
			strongest = a
		}
		if a.value < weakest.value {
			weakest = a
		}
	}

	feedback := fmt.Sprintf("Your debate performance was strongest in %s (%d/100). ", strongest.name, strongest.value)

	if weakest.value >= 60 {
		return feedback + "You demonstrated good balance across all debate skills."
	}

	feedback += fmt.Sprintf("Consider improving your %s (%d/100) by ", weakest.name, weakest.value)
	switch weakest.name {
	case "coherence":
		feedback += "organizing your arguments more clearly and maintaining a logical flow."
	case "persuasiveness":
		feedback += "using more compelling evidence and addressing counterarguments directly."
	case "knowledge depth":
		feedback += "researching the topic more thoroughly before debates."
	case "articulation":
		feedback += "practicing clearer expression and using more precise terminology."
	}
	return feedback
}

func (s *debateService) ListSessions(ctx context.Context, userId uuid.UUID) ([]*dto.DebateSessionResponse, error) {
	sessions, err := s.debateRepo.FindByUser(ctx, userId)
	if err != nil {
		return nil, err
	}

	responses := make([]*dto.DebateSessionResponse, 0, len(sessions))
	for _, session := range sessions {
		responses = append(responses, toDebateSessionResponse(session))
	}
	return responses, nil
}

func (s *debateService) CreateTopic(ctx context.Context, userId uuid.UUID, req *dto.CreateTopicRequest) (*dto.TopicResponse, error) {
	topic := &entity.DebateTopic{
		Id:               uuid.New(),
		UserId:           userId,
		Title:            req.Title,
		Description:      req.Description,
		ForArguments:     req.ForArguments,
		AgainstArguments: req.AgainstArguments,
	}
	if err := s.topicRepo.Create(ctx, topic); err != nil {
		return nil, err
	}
	return toTopicResponse(topic), nil
}

func (s *debateService) ListTopics(ctx context.Context, userId uuid.UUID) ([]*dto.TopicResponse, error) {
	topics, err := s.topicRepo.FindVisibleToUser(ctx, userId)
	if err != nil {
		return nil, err
	}

	responses := make([]*dto.TopicResponse, 0, len(topics))
	for _, topic := range topics {
		responses = append(responses, toTopicResponse(topic))
	}
	return responses, nil
}

func toDebateSessionResponse(session *entity.DebateSession) *dto.DebateSessionResponse {
	return &dto.DebateSessionResponse{
		Id:                 session.Id,
		UserId:             session.UserId,
		Timestamp:          session.Timestamp,
		Topic:              session.Topic,
		Transcript:         session.Transcript,
		PerformanceMetrics: session.PerformanceMetrics,
		Feedback:           session.Feedback,
	}
}

func toTopicResponse(topic *entity.DebateTopic) *dto.TopicResponse {
	return &dto.TopicResponse{
		Id:               topic.Id,
		Title:            topic.Title,
		Description:      topic.Description,
		ForArguments:     topic.ForArguments,
		AgainstArguments: topic.AgainstArguments,
		Custom:           !topic.Builtin(),
	}
}
