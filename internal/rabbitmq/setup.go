package rabbitmq

import (
	"fmt"

	"github.com/streadway/amqp"
)

// Топология обмена событиями о записях на занятия.
const (
	// ExchangeEnrollments — direct exchange для событий о записях.
	ExchangeEnrollments = "enrollments"
	// QueueUserEnrolled — очередь уведомлений владельцам занятий.
	QueueUserEnrolled = "enrollments.user_enrolled"
	// RoutingKeyUserEnrolled — ключ маршрутизации события записи.
	RoutingKeyUserEnrolled = "user.enrolled"
)

// SetupChannel открывает канал и объявляет exchange, очередь и binding
// для событий о записях на занятия.
func SetupChannel(conn *amqp.Connection) (*amqp.Channel, error) {
	const op = "rabbitmq.SetupChannel"
	ch, err := conn.Channel()
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	if err := ch.Qos(10, 0, false); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	err = ch.ExchangeDeclare(
		ExchangeEnrollments,
		"direct",
		true,
		false,
		false,
		false,
		nil,
	)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	_, err = ch.QueueDeclare(
		QueueUserEnrolled,
		true,
		false,
		false,
		false,
		nil,
	)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	err = ch.QueueBind(QueueUserEnrolled, RoutingKeyUserEnrolled, ExchangeEnrollments, false, nil)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return ch, nil
}
