package usecase

import (
	"context"
	"errors"
	"log"
	"time"

	"github.com/google/uuid"

	"brokerage-backend/internal/entity"
	"brokerage-backend/internal/infra/integration/gemini"
	"brokerage-backend/internal/infra/queue"
)

// ContactRedirectResponse replaces the model's answer whenever the visitor
// asks about requirements or an appointment. Always, no matter what the
// model said.
const ContactRedirectResponse = "I'd be happy to help you with that! For personalized assistance with your requirements or to schedule an appointment, please visit our contact page at /contact or call us directly at (555) 123-4567. One of our agents will get back to you right away."

type CompletionClient interface {
	Generate(ctx context.Context, contents []gemini.Content) (string, error)
}

type ChatRespondInput struct {
	Message             string                       `json:"message"`
	ConversationHistory []entity.ConversationMessage `json:"conversationHistory"`
	LeadInfo            entity.LeadInfo              `json:"leadInfo"`

	// Filled from the request by the handler, never by the client.
	IPAddress string `json:"-"`
	UserAgent string `json:"-"`
}

type ChatRespondOutput struct {
	Response          string          `json:"response"`
	ShouldCollectInfo bool            `json:"shouldCollectInfo"`
	LeadInfo          entity.LeadInfo `json:"leadInfo"`
}

type ChatRespondUseCase struct {
	Completion CompletionClient
	Classifier IntentClassifier
	LeadRepo   entity.LeadRepositoryInterface
	Producer   queue.NotificationProducerInterface

	// AtomicUpsert switches lead capture from lookup-then-insert to a single
	// ON CONFLICT upsert. Off by default: two simultaneous first messages
	// from the same new email can then both insert, which matches the
	// behavior the site always had.
	AtomicUpsert bool
}

func NewChatRespondUseCase(
	completion CompletionClient,
	classifier IntentClassifier,
	leadRepo entity.LeadRepositoryInterface,
	producer queue.NotificationProducerInterface,
	atomicUpsert bool,
) *ChatRespondUseCase {
	return &ChatRespondUseCase{
		Completion:   completion,
		Classifier:   classifier,
		LeadRepo:     leadRepo,
		Producer:     producer,
		AtomicUpsert: atomicUpsert,
	}
}

func (uc *ChatRespondUseCase) Execute(ctx context.Context, input ChatRespondInput) (*ChatRespondOutput, error) {
	// 1. Compose the prompt and ask the model. No retry, no fallback: if
	// this fails the whole request fails.
	contents := BuildChatContents(input.LeadInfo, input.ConversationHistory, input.Message)

	answer, err := uc.Completion.Generate(ctx, contents)
	if err != nil {
		return nil, &TechnicalError{
			Code:    "UPSTREAM_ERROR",
			Message: "completion API failed: " + err.Error(),
		}
	}

	// 2. The canned redirect wins unconditionally over the model's answer.
	if uc.Classifier.IsRequirementsOrAppointmentRequest(input.Message) {
		answer = ContactRedirectResponse
	}

	// 3. Nudge flag is computed against the final (possibly overridden) text.
	shouldCollect := uc.Classifier.ShouldRequestContactInfo(input.Message, answer, input.LeadInfo)

	// 4. Best effort persistence. A failure here is logged and swallowed:
	// the visitor still gets their answer.
	if input.LeadInfo.HasAny() {
		uc.captureLead(ctx, input)
	}

	return &ChatRespondOutput{
		Response:          answer,
		ShouldCollectInfo: shouldCollect,
		LeadInfo:          input.LeadInfo,
	}, nil
}

func (uc *ChatRespondUseCase) captureLead(ctx context.Context, input ChatRespondInput) {
	lead := &entity.Lead{
		ID:                  uuid.New().String(),
		Name:                input.LeadInfo.Name,
		Email:               input.LeadInfo.Email,
		Phone:               input.LeadInfo.Phone,
		Interest:            input.LeadInfo.Interest,
		ConversationSummary: summarizeConversation(input.ConversationHistory),
		LeadScore:           input.LeadInfo.Score(),
		IPAddress:           input.IPAddress,
		UserAgent:           input.UserAgent,
		CreatedAt:           time.Now(),
	}

	if uc.AtomicUpsert {
		if err := uc.LeadRepo.Upsert(ctx, lead); err != nil {
			log.Printf("⚠️ lead upsert failed for %s: %v", lead.Email, err)
			return
		}
	} else {
		// First touch only: an existing row for this email means we skip
		// silently. The lookup and the insert are not atomic.
		existing, err := uc.LeadRepo.FindByEmail(ctx, lead.Email)
		if err != nil && !errors.Is(err, entity.ErrLeadNotFound) {
			log.Printf("⚠️ lead lookup failed for %s: %v", lead.Email, err)
			return
		}
		if existing != nil {
			return
		}

		if err := uc.LeadRepo.Insert(ctx, lead); err != nil {
			log.Printf("⚠️ lead insert failed for %s: %v", lead.Email, err)
			return
		}
	}

	if uc.Producer != nil {
		payload := queue.NotificationPayload{
			Event:     queue.EventLeadCaptured,
			Name:      lead.Name,
			Email:     lead.Email,
			Phone:     lead.Phone,
			Interest:  lead.Interest,
			Summary:   lead.ConversationSummary,
			LeadScore: lead.LeadScore,
			Origin:    "CHATBOT",
		}
		if err := uc.Producer.PublishNotification(ctx, payload); err != nil {
			log.Printf("⚠️ lead captured but notification publish failed: %v", err)
		}
	}
}
