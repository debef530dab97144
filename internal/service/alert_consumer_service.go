package service

import (
	"context"
	"encoding/json"

	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"

	"brightside-be/internal/dto"
	"brightside-be/internal/pkg/logger"
	"brightside-be/internal/pkg/mailer"
	"brightside-be/internal/repository/contract"
)

type IAlertConsumerService interface {
	Consume(ctx context.Context) error
}

// alertConsumerService drains the distress-alert topic: for every alert it
// resolves the user's emergency contacts and emails each one. Delivery
// failures are logged, never retried into the chat path.
type alertConsumerService struct {
	pubSub       *gochannel.GoChannel
	topicName    string
	userRepo     contract.UserRepository
	emailService mailer.IEmailService
	logger       logger.ILogger
}

func NewAlertConsumerService(
	pubSub *gochannel.GoChannel,
	topicName string,
	userRepo contract.UserRepository,
	emailService mailer.IEmailService,
	log logger.ILogger,
) IAlertConsumerService {
	return &alertConsumerService{
		pubSub:       pubSub,
		topicName:    topicName,
		userRepo:     userRepo,
		emailService: emailService,
		logger:       log,
	}
}

func (s *alertConsumerService) Consume(ctx context.Context) error {
	messages, err := s.pubSub.Subscribe(ctx, s.topicName)
	if err != nil {
		return err
	}

	go func() {
		for msg := range messages {
			s.processMessage(ctx, msg)
		}
	}()

	return nil
}

func (s *alertConsumerService) processMessage(ctx context.Context, msg *message.Message) {
	var alert dto.DistressAlertMessage
	if err := json.Unmarshal(msg.Payload, &alert); err != nil {
		s.logger.Error("alert", "failed to unmarshal distress alert", map[string]interface{}{
			"error": err.Error(),
		})
		msg.Ack() // malformed messages are dropped, never retried
		return
	}

	user, err := s.userRepo.FindById(ctx, alert.UserId)
	if err != nil {
		s.logger.Error("alert", "failed to load user for distress alert", map[string]interface{}{
			"user_id": alert.UserId.String(),
			"error":   err.Error(),
		})
		msg.Nack()
		return
	}
	if user == nil {
		s.logger.Warn("alert", "distress alert for unknown user", map[string]interface{}{
			"user_id": alert.UserId.String(),
		})
		msg.Ack()
		return
	}

	if len(user.Contacts) == 0 {
		s.logger.Warn("alert", "user has no emergency contacts, alert dropped", map[string]interface{}{
			"user_id": user.Id.String(),
		})
		msg.Ack()
		return
	}

	sent := 0
	for _, contact := range user.Contacts {
		if err := s.emailService.SendDistressAlert(user, contact, alert.DistressLevel, alert.Summary); err != nil {
			s.logger.Error("alert", "failed to email emergency contact", map[string]interface{}{
				"user_id": user.Id.String(),
				"contact": contact.Email,
				"error":   err.Error(),
			})
			continue
		}
		sent++
	}

	s.logger.Info("alert", "distress alert processed", map[string]interface{}{
		"user_id":        user.Id.String(),
		"session_id":     alert.SessionId.String(),
		"distress_level": alert.DistressLevel,
		"contacts_sent":  sent,
	})
	msg.Ack()
}
