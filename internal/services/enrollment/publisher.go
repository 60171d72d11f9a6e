package enrollment

import (
	"github.com/streadway/amqp"

	"github.com/magabrotheeeer/sport-complex/internal/models"
	"github.com/magabrotheeeer/sport-complex/internal/rabbitmq"
)

// RabbitPublisher публикует события о записях в RabbitMQ.
type RabbitPublisher struct {
	ch *amqp.Channel
}

// NewRabbitPublisher создает издателя поверх открытого канала.
func NewRabbitPublisher(ch *amqp.Channel) *RabbitPublisher {
	return &RabbitPublisher{ch: ch}
}

// PublishUserEnrolled отправляет событие записи в exchange enrollments.
func (p *RabbitPublisher) PublishUserEnrolled(event *models.UserEnrolledEvent) error {
	return rabbitmq.PublishMessage(p.ch, rabbitmq.ExchangeEnrollments, rabbitmq.RoutingKeyUserEnrolled, event)
}
