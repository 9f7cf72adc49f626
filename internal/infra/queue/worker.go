package queue

import (
	"encoding/json"
	"log"
)

// Mailer is the contract the notification worker needs from the SMTP layer.
type Mailer interface {
	SendLeadAlert(payload NotificationPayload) error
	SendContactAlert(payload NotificationPayload) error
	SendLeadFollowUp(payload NotificationPayload) error
}

type Worker struct {
	rabbit *RabbitMQ
	mailer Mailer
}

func NewWorker(rabbit *RabbitMQ, mailer Mailer) *Worker {
	return &Worker{rabbit: rabbit, mailer: mailer}
}

func (w *Worker) Start(queueName string) {
	msgs, err := w.rabbit.Ch.Consume(
		queueName,
		"",    // consumer
		false, // manual ack
		false, // exclusive
		false, // no-local
		false, // no-wait
		nil,
	)
	if err != nil {
		log.Fatalf("❌ [WORKER] consumer registration failed: %s", err)
	}

	forever := make(chan bool)

	go func() {
		for d := range msgs {
			var payload NotificationPayload
			if err := json.Unmarshal(d.Body, &payload); err != nil {
				log.Printf("❌ [WORKER] invalid JSON, dropping: %s", err)
				// Poison message. Reject without requeue so it dead-letters.
				d.Nack(false, false)
				continue
			}

			if err := w.ProcessPayload(payload); err != nil {
				log.Printf("❌ [WORKER] %s failed for %s: %s", payload.Event, payload.Email, err)
				d.Nack(false, false)
			} else {
				d.Ack(false)
			}
		}
	}()

	log.Printf(" [*] Notification worker waiting on queue '%s'", queueName)
	<-forever
}

// ProcessPayload routes one event to the right email template.
func (w *Worker) ProcessPayload(payload NotificationPayload) error {
	switch payload.Event {
	case EventLeadCaptured:
		return w.mailer.SendLeadAlert(payload)

	case EventContactMessage:
		return w.mailer.SendContactAlert(payload)

	case EventLeadFollowUp:
		return w.mailer.SendLeadFollowUp(payload)

	default:
		// Unknown events get acked so they don't clog the queue.
		log.Printf("⚠️ [WORKER] unknown event %q, skipping", payload.Event)
		return nil
	}
}
