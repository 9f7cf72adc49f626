package usecase

import (
	"context"
	"log"

	"brokerage-backend/internal/entity"
	"brokerage-backend/internal/infra/queue"
)

type SubmitContactInput struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Phone   string `json:"phone"`
	Message string `json:"message"`
}

type SubmitContactOutput struct {
	ID  string `json:"id"`
	Msg string `json:"msg"`
}

type SubmitContactUseCase struct {
	Repo     entity.ContactRepositoryInterface
	Producer queue.NotificationProducerInterface
}

func NewSubmitContactUseCase(repo entity.ContactRepositoryInterface, producer queue.NotificationProducerInterface) *SubmitContactUseCase {
	return &SubmitContactUseCase{Repo: repo, Producer: producer}
}

func (uc *SubmitContactUseCase) Execute(ctx context.Context, input SubmitContactInput) (*SubmitContactOutput, error) {
	validationErrors := ValidateSubmitContactInput(input)
	if len(validationErrors) > 0 {
		errMsg := "validation failed: "
		for _, e := range validationErrors {
			errMsg += e.Field + " (" + e.Message + "), "
		}
		return nil, &DomainError{
			Code:    "VALIDATION_ERROR",
			Message: errMsg,
		}
	}

	message := entity.NewContactMessage(input.Name, input.Email, input.Phone, input.Message)

	if err := uc.Repo.Create(ctx, message); err != nil {
		return nil, &TechnicalError{
			Code:    "DATABASE_ERROR",
			Message: "failed to persist contact message: " + err.Error(),
		}
	}

	// Notification is best effort: the message is already saved.
	if uc.Producer != nil {
		payload := queue.NotificationPayload{
			Event:   queue.EventContactMessage,
			Name:    message.Name,
			Email:   message.Email,
			Phone:   message.Phone,
			Message: message.Message,
			Origin:  "CONTACT_FORM",
		}
		if err := uc.Producer.PublishNotification(ctx, payload); err != nil {
			log.Printf("⚠️ contact saved but notification publish failed: %v", err)
		}
	}

	return &SubmitContactOutput{
		ID:  message.ID,
		Msg: "Thanks for reaching out! We'll be in touch shortly.",
	}, nil
}
