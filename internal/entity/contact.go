package entity

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// ContactMessage is a submission from the site's contact form.
type ContactMessage struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Phone     string    `json:"phone,omitempty"`
	Message   string    `json:"message"`
	CreatedAt time.Time `json:"created_at"`
}

func NewContactMessage(name, email, phone, message string) *ContactMessage {
	return &ContactMessage{
		ID:        uuid.New().String(),
		Name:      name,
		Email:     email,
		Phone:     phone,
		Message:   message,
		CreatedAt: time.Now(),
	}
}

type ContactRepositoryInterface interface {
	Create(ctx context.Context, m *ContactMessage) error
	List(ctx context.Context, limit int) ([]ContactMessage, error)
}
