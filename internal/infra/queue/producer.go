package queue

import (
	"context"
	"encoding/json"
	"fmt"

	amqp "github.com/rabbitmq/amqp091-go"
)

const (
	EventLeadCaptured   = "LEAD_CAPTURED"
	EventLeadFollowUp   = "LEAD_FOLLOWUP"
	EventContactMessage = "CONTACT_MESSAGE"
)

// NotificationPayload carries everything the email worker needs, so it never
// has to hit the database.
type NotificationPayload struct {
	Event string `json:"event"`

	Name     string `json:"name,omitempty"`
	Email    string `json:"email,omitempty"`
	Phone    string `json:"phone,omitempty"`
	Interest string `json:"interest,omitempty"`

	Message   string `json:"message,omitempty"` // contact form body
	Summary   string `json:"summary,omitempty"` // chat transcript extract
	LeadScore int    `json:"lead_score,omitempty"`
	Origin    string `json:"origin,omitempty"` // CHATBOT, CONTACT_FORM, SWEEPER
}

type NotificationProducerInterface interface {
	PublishNotification(ctx context.Context, payload NotificationPayload) error
}

type RabbitMQProducer struct {
	Conn *amqp.Connection
	Ch   *amqp.Channel
}

func NewProducer(conn *amqp.Connection, ch *amqp.Channel) *RabbitMQProducer {
	return &RabbitMQProducer{Conn: conn, Ch: ch}
}

func (p *RabbitMQProducer) PublishNotification(ctx context.Context, payload NotificationPayload) error {
	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("marshal notification payload: %v", err)
	}

	err = p.Ch.PublishWithContext(ctx,
		ExchangeName,
		RoutingKey,
		false, // Mandatory
		false, // Immediate
		amqp.Publishing{
			ContentType:  "application/json",
			Body:         body,
			DeliveryMode: amqp.Persistent, // survives broker restart
		},
	)
	if err != nil {
		return fmt.Errorf("publish notification: %v", err)
	}

	return nil
}
