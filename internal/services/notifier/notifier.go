// Package notifier потребляет события о записях из RabbitMQ и
// доставляет их владельцам занятий по WebSocket.
package notifier

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"

	"github.com/streadway/amqp"

	"github.com/magabrotheeeer/sport-complex/internal/models"
	"github.com/magabrotheeeer/sport-complex/internal/rabbitmq"
)

// Sender доставляет сообщение всем соединениям администратора.
type Sender interface {
	SendToAdmin(adminID int, message any) error
}

// Service связывает очередь событий с WebSocket-рассылкой.
type Service struct {
	log    *slog.Logger
	ch     *amqp.Channel
	sender Sender
}

// New создает сервис уведомлений.
func New(log *slog.Logger, ch *amqp.Channel, sender Sender) *Service {
	return &Service{log: log, ch: ch, sender: sender}
}

// Run запускает потребление событий о записях. Возвращается сразу,
// обработка продолжается до отмены контекста.
func (s *Service) Run(ctx context.Context) error {
	const op = "services.notifier.Run"
	if err := rabbitmq.ConsumeMessages(ctx, s.ch, rabbitmq.QueueUserEnrolled, s.handle); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	s.log.Info("enrollment notifier started")
	return nil
}

func (s *Service) handle(body []byte) error {
	const op = "services.notifier.handle"
	var event models.UserEnrolledEvent
	if err := json.Unmarshal(body, &event); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	if event.AdminID == 0 {
		s.log.Warn("enrollment event without admin id", slog.String("event_id", event.EventID))
		return nil
	}
	notification := &models.EnrollmentNotification{
		Event:   rabbitmq.RoutingKeyUserEnrolled,
		Message: fmt.Sprintf("User %s enrolled in your class %q.", event.UserEmail, event.ClassDesc),
	}
	if err := s.sender.SendToAdmin(event.AdminID, notification); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	s.log.Debug("enrollment notification delivered",
		slog.String("event_id", event.EventID),
		slog.Int("admin_id", event.AdminID))
	return nil
}
