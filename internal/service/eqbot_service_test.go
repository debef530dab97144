package service

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	"brightside-be/internal/dto"
	"brightside-be/internal/entity"
	"brightside-be/internal/repository/memory"
	"brightside-be/pkg/emotion"
	"brightside-be/pkg/llm"
	"brightside-be/pkg/realtime"
)

const testAlertTopic = "DISTRESS_ALERT"

func newEQTestService(provider llm.LLMProvider, broker *realtime.Broker, pubSub *gochannel.GoChannel) IEQBotService {
	return NewEQBotService(
		memory.NewEQSessionRepository(),
		memory.NewContextRepository(),
		broker,
		pubSub,
		testAlertTopic,
		provider,
		nil,
		nopLogger{},
		0,
	)
}

func TestEQSendMessage(t *testing.T) {
	ctx := context.Background()
	userId := uuid.New()
	chatId := uuid.New()
	pubSub := gochannel.NewGoChannel(gochannel.Config{OutputChannelBuffer: 16}, watermill.NopLogger{})

	t.Run("happy message records a session without alerting", func(t *testing.T) {
		broker := realtime.NewBroker()
		var published []*entity.EQSession
		broker.Subscribe(realtime.ChannelEQ, func(payload interface{}) {
			if s, ok := payload.(*entity.EQSession); ok {
				published = append(published, s)
			}
		})

		svc := newEQTestService(&stubLLM{reply: "That's wonderful to hear!"}, broker, pubSub)

		resp, err := svc.SendMessage(ctx, userId, &dto.SendEQMessageRequest{
			ChatSessionId: chatId,
			Message:       "I am extremely happy today!",
		})
		assert.NoError(t, err)
		assert.Equal(t, emotion.StateHappy, resp.State)
		assert.False(t, resp.AlertSent)
		assert.Equal(t, "That's wonderful to hear!", resp.Reply)
		if assert.NotNil(t, resp.Session) {
			assert.Equal(t, "User expressed happy sentiment.", resp.Session.Summary)
			assert.Equal(t, "I am extremely happy today!", resp.Session.Transcript)
		}
		assert.Len(t, published, 1)
		assert.Equal(t, resp.Session.Id, published[0].Id)
	})

	t.Run("crisis message raises the distress alert", func(t *testing.T) {
		messages, err := pubSub.Subscribe(ctx, testAlertTopic)
		assert.NoError(t, err)

		svc := newEQTestService(&stubLLM{reply: "I'm concerned about you."}, realtime.NewBroker(), pubSub)

		resp, err := svc.SendMessage(ctx, userId, &dto.SendEQMessageRequest{
			ChatSessionId: uuid.New(),
			Message:       "I want to end it all",
		})
		assert.NoError(t, err)
		assert.Equal(t, emotion.StateDistressed, resp.State)
		assert.True(t, resp.AlertSent)
		assert.GreaterOrEqual(t, resp.Scores.DistressLevel, 70)

		select {
		case msg := <-messages:
			var alert dto.DistressAlertMessage
			assert.NoError(t, json.Unmarshal(msg.Payload, &alert))
			assert.Equal(t, userId, alert.UserId)
			assert.Equal(t, resp.Session.Id, alert.SessionId)
			assert.Equal(t, resp.Scores.DistressLevel, alert.DistressLevel)
			assert.Equal(t, "I want to end it all", alert.Summary)
			msg.Ack()
		case <-time.After(time.Second):
			t.Fatal("no distress alert published within a second")
		}
	})

	t.Run("provider failure falls back but still records", func(t *testing.T) {
		svc := newEQTestService(&stubLLM{err: errors.New("provider down")}, realtime.NewBroker(), pubSub)

		resp, err := svc.SendMessage(ctx, userId, &dto.SendEQMessageRequest{
			ChatSessionId: uuid.New(),
			Message:       "I feel calm and peaceful this evening",
		})
		assert.NoError(t, err)
		assert.Equal(t, eqFallbackReply, resp.Reply)
		assert.NotNil(t, resp.Session)
	})
}

func TestEQListSessions(t *testing.T) {
	ctx := context.Background()
	userId := uuid.New()
	chatId := uuid.New()
	pubSub := gochannel.NewGoChannel(gochannel.Config{}, watermill.NopLogger{})
	svc := newEQTestService(&stubLLM{reply: "ok"}, realtime.NewBroker(), pubSub)

	for _, msg := range []string{"I am happy", "I feel calm today"} {
		_, err := svc.SendMessage(ctx, userId, &dto.SendEQMessageRequest{ChatSessionId: chatId, Message: msg})
		assert.NoError(t, err)
	}

	sessions, err := svc.ListSessions(ctx, userId)
	assert.NoError(t, err)
	assert.Len(t, sessions, 2)

	other, err := svc.ListSessions(ctx, uuid.New())
	assert.NoError(t, err)
	assert.Empty(t, other)
}

func TestEQContextCarriesAcrossMessages(t *testing.T) {
	ctx := context.Background()
	userId := uuid.New()
	chatId := uuid.New()
	pubSub := gochannel.NewGoChannel(gochannel.Config{}, watermill.NopLogger{})
	svc := newEQTestService(&stubLLM{reply: "ok"}, realtime.NewBroker(), pubSub)

	var last *dto.SendEQMessageResponse
	for i := 0; i < 4; i++ {
		resp, err := svc.SendMessage(ctx, userId, &dto.SendEQMessageRequest{
			ChatSessionId: chatId,
			Message:       "I feel very sad and hopeless",
		})
		assert.NoError(t, err)
		assert.Equal(t, emotion.StateSad, resp.State)
		last = resp
	}

	// A sustained run of sadness should amplify distress beyond the single
	// message baseline.
	first, err := svc.SendMessage(ctx, userId, &dto.SendEQMessageRequest{
		ChatSessionId: uuid.New(),
		Message:       "I feel very sad and hopeless",
	})
	assert.NoError(t, err)
	assert.Greater(t, last.Scores.DistressLevel, first.Scores.DistressLevel)
}
