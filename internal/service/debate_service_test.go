package service

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	"brightside-be/internal/dto"
	"brightside-be/internal/entity"
	"brightside-be/internal/repository/memory"
	"brightside-be/pkg/llm"
	"brightside-be/pkg/realtime"
)

type stubLLM struct {
	reply string
	err   error
}

func (s *stubLLM) Chat(_ context.Context, _ []llm.Message, _ ...llm.Option) (string, error) {
	return s.reply, s.err
}

func (s *stubLLM) Generate(_ context.Context, _ string, _ ...llm.Option) (string, error) {
	return s.reply, s.err
}

type nopLogger struct{}

func (nopLogger) Debug(string, string, map[string]interface{}) {}
func (nopLogger) Info(string, string, map[string]interface{})  {}
func (nopLogger) Warn(string, string, map[string]interface{})  {}
func (nopLogger) Error(string, string, map[string]interface{}) {}
func (nopLogger) Sync() error                                  { return nil }

func TestScoreArgument(t *testing.T) {
	t.Run("empty argument gets baseline scores", func(t *testing.T) {
		got := scoreArgument("")
		want := entity.PerformanceMetrics{
			Coherence:      70,
			Persuasiveness: 65,
			KnowledgeDepth: 70,
			Articulation:   75,
			OverallScore:   70,
		}
		assert.Equal(t, want, got)
	})

	t.Run("structure and evidence markers lift scores", func(t *testing.T) {
		got := scoreArgument("Because research shows data, therefore we act.")
		assert.Equal(t, 78, got.Coherence)
		assert.Equal(t, 65, got.Persuasiveness)
		assert.Equal(t, 80, got.KnowledgeDepth)
		assert.Equal(t, 90, got.Articulation)
		assert.Equal(t, 78, got.OverallScore)
	})

	t.Run("coherence caps at 90", func(t *testing.T) {
		text := strings.Repeat("because therefore however moreover thus furthermore ", 10)
		got := scoreArgument(text)
		assert.Equal(t, 90, got.Coherence)
	})

	t.Run("deterministic", func(t *testing.T) {
		text := "Moreover, studies from 2023 report a 12% increase."
		first := scoreArgument(text)
		for i := 0; i < 10; i++ {
			assert.Equal(t, first, scoreArgument(text))
		}
	})
}

func TestOverallScore(t *testing.T) {
	tests := []struct {
		name string
		m    entity.PerformanceMetrics
		want int
	}{
		{
			name: "uniform dimensions pass through",
			m:    entity.PerformanceMetrics{Coherence: 80, Persuasiveness: 80, KnowledgeDepth: 80, Articulation: 80},
			want: 80,
		},
		{
			name: "coherence carries 30 percent",
			m:    entity.PerformanceMetrics{Coherence: 100},
			want: 30,
		},
		{
			name: "articulation carries 15 percent",
			m:    entity.PerformanceMetrics{Articulation: 100},
			want: 15,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, overallScore(tt.m))
		})
	}
}

func TestAverageMetrics(t *testing.T) {
	got := averageMetrics([]memory.DebateExchange{
		{Metrics: entity.PerformanceMetrics{Coherence: 70, Persuasiveness: 60, KnowledgeDepth: 80, Articulation: 75}},
		{Metrics: entity.PerformanceMetrics{Coherence: 80, Persuasiveness: 70, KnowledgeDepth: 90, Articulation: 85}},
	})
	assert.Equal(t, 75, got.Coherence)
	assert.Equal(t, 65, got.Persuasiveness)
	assert.Equal(t, 85, got.KnowledgeDepth)
	assert.Equal(t, 80, got.Articulation)
}

func TestGenerateFeedback(t *testing.T) {
	t.Run("balanced performance", func(t *testing.T) {
		got := generateFeedback(entity.PerformanceMetrics{Coherence: 80, Persuasiveness: 80, KnowledgeDepth: 80, Articulation: 80})
		assert.Contains(t, got, "strongest in coherence (80/100)")
		assert.Contains(t, got, "good balance across all debate skills")
	})

	t.Run("weak area below 60 gets targeted advice", func(t *testing.T) {
		got := generateFeedback(entity.PerformanceMetrics{Coherence: 80, Persuasiveness: 70, KnowledgeDepth: 65, Articulation: 50})
		assert.Contains(t, got, "strongest in coherence (80/100)")
		assert.Contains(t, got, "improving your articulation (50/100)")
		assert.Contains(t, got, "practicing clearer expression")
	})
}

func newDebateTestService(topics []*entity.DebateTopic, provider llm.LLMProvider, broker *realtime.Broker) (IDebateService, *memory.DebateSessionRepository) {
	debateRepo := memory.NewDebateSessionRepository().(*memory.DebateSessionRepository)
	topicRepo := memory.NewDebateTopicRepository(topics)
	stateRepo := memory.NewDebateStateRepository()
	svc := NewDebateService(debateRepo, topicRepo, stateRepo, broker, provider, nil, nopLogger{})
	return svc, debateRepo
}

func TestDebateSendMessage(t *testing.T) {
	ctx := context.Background()
	userId := uuid.New()
	topic := &entity.DebateTopic{
		Id:          uuid.New(),
		Title:       "Remote Work",
		Description: "Should companies default to remote work?",
	}

	t.Run("unknown topic", func(t *testing.T) {
		svc, _ := newDebateTestService(nil, &stubLLM{reply: "ok"}, realtime.NewBroker())
		_, err := svc.SendMessage(ctx, userId, &dto.SendDebateMessageRequest{
			TopicId: uuid.New(),
			Message: "hello",
		})
		assert.ErrorIs(t, err, ErrTopicNotFound)
	})

	t.Run("another user's custom topic is forbidden", func(t *testing.T) {
		custom := &entity.DebateTopic{Id: uuid.New(), UserId: uuid.New(), Title: "Private"}
		svc, _ := newDebateTestService([]*entity.DebateTopic{custom}, &stubLLM{reply: "ok"}, realtime.NewBroker())
		_, err := svc.SendMessage(ctx, userId, &dto.SendDebateMessageRequest{
			TopicId: custom.Id,
			Message: "hello",
		})
		assert.ErrorIs(t, err, ErrTopicForbidden)
	})

	t.Run("fourth exchange records a session", func(t *testing.T) {
		broker := realtime.NewBroker()
		var published []*entity.DebateSession
		broker.Subscribe(realtime.ChannelDebate, func(payload interface{}) {
			if s, ok := payload.(*entity.DebateSession); ok {
				published = append(published, s)
			}
		})

		svc, repo := newDebateTestService([]*entity.DebateTopic{topic}, &stubLLM{reply: "A fair point, but consider the counterexample."}, broker)

		messages := []string{
			"Remote work boosts productivity because commutes disappear.",
			"Moreover, studies report higher retention for remote teams.",
			"However, offices still matter for mentoring new hires.",
			"Therefore a hybrid default balances both concerns.",
		}

		for i, msg := range messages[:3] {
			resp, err := svc.SendMessage(ctx, userId, &dto.SendDebateMessageRequest{TopicId: topic.Id, Message: msg})
			assert.NoError(t, err)
			assert.Equal(t, i+1, resp.ExchangeNumber)
			assert.Nil(t, resp.Session)
			assert.Equal(t, "A fair point, but consider the counterexample.", resp.Reply)
			assert.Greater(t, resp.ArgumentScore, 0)
		}

		resp, err := svc.SendMessage(ctx, userId, &dto.SendDebateMessageRequest{TopicId: topic.Id, Message: messages[3]})
		assert.NoError(t, err)
		assert.Equal(t, 4, resp.ExchangeNumber)
		if assert.NotNil(t, resp.Session) {
			assert.Equal(t, "Remote Work", resp.Session.Topic)
			assert.NotEmpty(t, resp.Session.Feedback)
			assert.Contains(t, resp.Session.Transcript, "User: "+messages[0])
			assert.Contains(t, resp.Session.Transcript, "Bot: A fair point")
			assert.Greater(t, resp.Session.PerformanceMetrics.OverallScore, 0)
		}

		stored, err := repo.FindByUser(ctx, userId)
		assert.NoError(t, err)
		assert.Len(t, stored, 1)
		assert.Len(t, published, 1)
		assert.Equal(t, resp.Session.Id, published[0].Id)

		// Recording concludes the debate: further messages start a fresh
		// exchange count instead of re-recording a growing session.
		resp, err = svc.SendMessage(ctx, userId, &dto.SendDebateMessageRequest{TopicId: topic.Id, Message: "Let us start over with a new angle."})
		assert.NoError(t, err)
		assert.Equal(t, 1, resp.ExchangeNumber)
		assert.Nil(t, resp.Session)

		resp, err = svc.SendMessage(ctx, userId, &dto.SendDebateMessageRequest{TopicId: topic.Id, Message: "Because hybrid schedules keep both camps happy."})
		assert.NoError(t, err)
		assert.Equal(t, 2, resp.ExchangeNumber)
		assert.Nil(t, resp.Session)

		stored, err = repo.FindByUser(ctx, userId)
		assert.NoError(t, err)
		assert.Len(t, stored, 1)
		assert.Len(t, published, 1)
	})

	t.Run("provider failure falls back", func(t *testing.T) {
		svc, _ := newDebateTestService([]*entity.DebateTopic{topic}, &stubLLM{err: errors.New("provider down")}, realtime.NewBroker())
		resp, err := svc.SendMessage(ctx, userId, &dto.SendDebateMessageRequest{TopicId: topic.Id, Message: "hello"})
		assert.NoError(t, err)
		assert.Equal(t, debateFallbackReply, resp.Reply)
	})
}

func TestDebateTopics(t *testing.T) {
	ctx := context.Background()
	userId := uuid.New()
	builtin := &entity.DebateTopic{Id: uuid.New(), Title: "Universal Basic Income"}
	foreign := &entity.DebateTopic{Id: uuid.New(), UserId: uuid.New(), Title: "Someone Else's Topic"}

	svc, _ := newDebateTestService([]*entity.DebateTopic{builtin, foreign}, &stubLLM{reply: "ok"}, realtime.NewBroker())

	created, err := svc.CreateTopic(ctx, userId, &dto.CreateTopicRequest{
		Title:        "Four Day Week",
		Description:  "Should the work week shrink to four days?",
		ForArguments: []string{"More rest improves output"},
	})
	assert.NoError(t, err)
	assert.True(t, created.Custom)

	topics, err := svc.ListTopics(ctx, userId)
	assert.NoError(t, err)
	assert.Len(t, topics, 2)

	titles := make([]string, 0, len(topics))
	for _, tp := range topics {
		titles = append(titles, tp.Title)
	}
	assert.Contains(t, titles, "Universal Basic Income")
	assert.Contains(t, titles, "Four Day Week")
	assert.NotContains(t, titles, "Someone Else's Topic")
}
