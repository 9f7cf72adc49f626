package worker

import (
	"context"
	"database/sql"
	"log"
	"time"

	"brokerage-backend/internal/infra/queue"
)

// FollowUpWorker sweeps for chat leads that left an email a day ago and
// never got a follow-up, marks them, and hands them to the notification
// queue. Marking happens in the same UPDATE that selects the rows, so two
// instances won't double-send.
type FollowUpWorker struct {
	db           *sql.DB
	producer     queue.NotificationProducerInterface
	waitWindow   time.Duration
	tickInterval time.Duration
}

func NewFollowUpWorker(db *sql.DB, producer queue.NotificationProducerInterface) *FollowUpWorker {
	return &FollowUpWorker{
		db:           db,
		producer:     producer,
		waitWindow:   24 * time.Hour,
		tickInterval: 1 * time.Hour,
	}
}

func (w *FollowUpWorker) Start(ctx context.Context) {
	log.Println("🕒 Lead follow-up worker started (24h window)")

	ticker := time.NewTicker(w.tickInterval)
	defer ticker.Stop()

	w.sweep(ctx)

	for {
		select {
		case <-ctx.Done():
			log.Println("⚠️ Lead follow-up worker stopped")
			return
		case <-ticker.C:
			w.sweep(ctx)
		}
	}
}

func (w *FollowUpWorker) sweep(ctx context.Context) {
	query := `
		UPDATE leads
		SET follow_up_sent_at = NOW()
		WHERE follow_up_sent_at IS NULL
		  AND email IS NOT NULL
		  AND created_at < NOW() - INTERVAL '24 hours'
		RETURNING name, email, interest
	`

	rows, err := w.db.QueryContext(ctx, query)
	if err != nil {
		log.Printf("❌ Follow-up sweep query failed: %v", err)
		return
	}
	defer rows.Close()

	queued := 0
	for rows.Next() {
		var name, email, interest sql.NullString

		if err := rows.Scan(&name, &email, &interest); err != nil {
			log.Printf("⚠️ Follow-up row scan failed: %v", err)
			continue
		}

		payload := queue.NotificationPayload{
			Event:    queue.EventLeadFollowUp,
			Name:     name.String,
			Email:    email.String,
			Interest: interest.String,
			Origin:   "SWEEPER",
		}

		if err := w.producer.PublishNotification(ctx, payload); err != nil {
			// Row is already marked; losing the publish means this lead
			// misses their follow-up rather than getting two.
			log.Printf("⚠️ Follow-up publish failed for %s: %v", email.String, err)
			continue
		}
		queued++
	}

	if queued > 0 {
		log.Printf("✅ %d follow-up email(s) queued", queued)
	}
}
