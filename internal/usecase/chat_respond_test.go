package usecase

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"brokerage-backend/internal/entity"
	"brokerage-backend/internal/infra/integration/gemini"
	"brokerage-backend/internal/infra/queue"
)

// MockCompletionClient
type MockCompletionClient struct {
	mock.Mock
}

func (m *MockCompletionClient) Generate(ctx context.Context, contents []gemini.Content) (string, error) {
	args := m.Called(ctx, contents)
	return args.String(0), args.Error(1)
}

// MockLeadRepository
type MockLeadRepository struct {
	mock.Mock
}

func (m *MockLeadRepository) FindByEmail(ctx context.Context, email string) (*entity.Lead, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Lead), args.Error(1)
}

func (m *MockLeadRepository) Insert(ctx context.Context, lead *entity.Lead) error {
	args := m.Called(ctx, lead)
	return args.Error(0)
}

func (m *MockLeadRepository) Upsert(ctx context.Context, lead *entity.Lead) error {
	args := m.Called(ctx, lead)
	return args.Error(0)
}

func (m *MockLeadRepository) List(ctx context.Context, limit int) ([]entity.Lead, error) {
	args := m.Called(ctx, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]entity.Lead), args.Error(1)
}

// MockNotificationProducer
type MockNotificationProducer struct {
	mock.Mock
}

func (m *MockNotificationProducer) PublishNotification(ctx context.Context, payload queue.NotificationPayload) error {
	args := m.Called(ctx, payload)
	return args.Error(0)
}

func TestChatRespondHappyPath(t *testing.T) {
	ctx := context.Background()

	mockCompletion := new(MockCompletionClient)
	mockCompletion.On("Generate", ctx, mock.Anything).Return("Maplewood has great options!", nil)

	uc := NewChatRespondUseCase(mockCompletion, NewKeywordClassifier(), nil, nil, false)

	output, err := uc.Execute(ctx, ChatRespondInput{
		Message: "Tell me about the Maplewood neighborhood",
	})

	assert.NoError(t, err)
	assert.Equal(t, "Maplewood has great options!", output.Response)
	assert.False(t, output.ShouldCollectInfo)
}

func TestChatRespondRedirectOverridesModelAnswer(t *testing.T) {
	ctx := context.Background()

	// Even a perfectly good model answer gets replaced.
	mockCompletion := new(MockCompletionClient)
	mockCompletion.On("Generate", ctx, mock.Anything).Return("Sure, Tuesday at 3pm works!", nil)

	uc := NewChatRespondUseCase(mockCompletion, NewKeywordClassifier(), nil, nil, false)

	output, err := uc.Execute(ctx, ChatRespondInput{
		Message: "Can I book an appointment?",
	})

	assert.NoError(t, err)
	assert.Equal(t, ContactRedirectResponse, output.Response)
	// The redirect text contains "contact", which suppresses the nudge.
	assert.False(t, output.ShouldCollectInfo)
	mockCompletion.AssertCalled(t, "Generate", ctx, mock.Anything)
}

func TestChatRespondNudgesInterestedAnonymousVisitor(t *testing.T) {
	ctx := context.Background()

	mockCompletion := new(MockCompletionClient)
	mockCompletion.On("Generate", ctx, mock.Anything).Return("There are several great listings right now.", nil)

	uc := NewChatRespondUseCase(mockCompletion, NewKeywordClassifier(), nil, nil, false)

	output, err := uc.Execute(ctx, ChatRespondInput{
		Message: "I'm looking to buy a house",
	})

	assert.NoError(t, err)
	assert.True(t, output.ShouldCollectInfo)
}

func TestChatRespondUpstreamFailure(t *testing.T) {
	ctx := context.Background()

	mockCompletion := new(MockCompletionClient)
	mockCompletion.On("Generate", ctx, mock.Anything).Return("", errors.New("503 from upstream"))

	mockLeadRepo := new(MockLeadRepository)

	uc := NewChatRespondUseCase(mockCompletion, NewKeywordClassifier(), mockLeadRepo, nil, false)

	output, err := uc.Execute(ctx, ChatRespondInput{
		Message:  "I'm looking to buy a house",
		LeadInfo: entity.LeadInfo{Email: "dana@example.com"},
	})

	assert.Error(t, err)
	assert.Nil(t, output)
	assert.True(t, IsTechnicalError(err))

	// Nothing is persisted when the model call fails.
	mockLeadRepo.AssertNotCalled(t, "FindByEmail")
	mockLeadRepo.AssertNotCalled(t, "Insert")
}

func TestChatRespondCapturesNewLead(t *testing.T) {
	ctx := context.Background()

	mockCompletion := new(MockCompletionClient)
	mockCompletion.On("Generate", ctx, mock.Anything).Return("Happy to help, Dana!", nil)

	mockLeadRepo := new(MockLeadRepository)
	mockLeadRepo.On("FindByEmail", ctx, "dana@example.com").Return(nil, entity.ErrLeadNotFound)
	mockLeadRepo.On("Insert", ctx, mock.Anything).Return(nil)

	mockProducer := new(MockNotificationProducer)
	mockProducer.On("PublishNotification", ctx, mock.Anything).Return(nil)

	uc := NewChatRespondUseCase(mockCompletion, NewKeywordClassifier(), mockLeadRepo, mockProducer, false)

	history := []entity.ConversationMessage{
		{Role: "user", Content: "hi"},
		{Role: "assistant", Content: "hello!"},
	}

	output, err := uc.Execute(ctx, ChatRespondInput{
		Message:             "My name is Dana, email dana@example.com",
		ConversationHistory: history,
		LeadInfo:            entity.LeadInfo{Name: "Dana", Email: "dana@example.com"},
	})

	assert.NoError(t, err)
	assert.Equal(t, "Happy to help, Dana!", output.Response)

	mockLeadRepo.AssertCalled(t, "FindByEmail", ctx, "dana@example.com")
	insertedLead := mockLeadRepo.Calls[1].Arguments.Get(1).(*entity.Lead)
	assert.Equal(t, 50, insertedLead.LeadScore) // name 20 + email 30
	assert.Contains(t, insertedLead.ConversationSummary, "user: hi")
	assert.Contains(t, insertedLead.ConversationSummary, "assistant: hello!")

	notified := mockProducer.Calls[0].Arguments.Get(1).(queue.NotificationPayload)
	assert.Equal(t, queue.EventLeadCaptured, notified.Event)
	assert.Equal(t, "CHATBOT", notified.Origin)
}

func TestChatRespondSkipsExistingLead(t *testing.T) {
	ctx := context.Background()

	mockCompletion := new(MockCompletionClient)
	mockCompletion.On("Generate", ctx, mock.Anything).Return("Welcome back!", nil)

	existing := &entity.Lead{ID: "lead-1", Email: "dana@example.com"}
	mockLeadRepo := new(MockLeadRepository)
	mockLeadRepo.On("FindByEmail", ctx, "dana@example.com").Return(existing, nil)

	mockProducer := new(MockNotificationProducer)

	uc := NewChatRespondUseCase(mockCompletion, NewKeywordClassifier(), mockLeadRepo, mockProducer, false)

	output, err := uc.Execute(ctx, ChatRespondInput{
		Message:  "hi again",
		LeadInfo: entity.LeadInfo{Email: "dana@example.com"},
	})

	assert.NoError(t, err)
	assert.Equal(t, "Welcome back!", output.Response)

	mockLeadRepo.AssertNotCalled(t, "Insert")
	mockProducer.AssertNotCalled(t, "PublishNotification")
}

func TestChatRespondSwallowsPersistenceFailure(t *testing.T) {
	ctx := context.Background()

	mockCompletion := new(MockCompletionClient)
	mockCompletion.On("Generate", ctx, mock.Anything).Return("Got it!", nil)

	mockLeadRepo := new(MockLeadRepository)
	mockLeadRepo.On("FindByEmail", ctx, mock.Anything).Return(nil, entity.ErrLeadNotFound)
	mockLeadRepo.On("Insert", ctx, mock.Anything).Return(errors.New("connection refused"))

	uc := NewChatRespondUseCase(mockCompletion, NewKeywordClassifier(), mockLeadRepo, nil, false)

	// The visitor still gets their answer.
	output, err := uc.Execute(ctx, ChatRespondInput{
		Message:  "hi",
		LeadInfo: entity.LeadInfo{Email: "dana@example.com"},
	})

	assert.NoError(t, err)
	assert.Equal(t, "Got it!", output.Response)
}

func TestChatRespondAtomicUpsertPath(t *testing.T) {
	ctx := context.Background()

	mockCompletion := new(MockCompletionClient)
	mockCompletion.On("Generate", ctx, mock.Anything).Return("ok", nil)

	mockLeadRepo := new(MockLeadRepository)
	mockLeadRepo.On("Upsert", ctx, mock.Anything).Return(nil)

	mockProducer := new(MockNotificationProducer)
	mockProducer.On("PublishNotification", ctx, mock.Anything).Return(nil)

	uc := NewChatRespondUseCase(mockCompletion, NewKeywordClassifier(), mockLeadRepo, mockProducer, true)

	_, err := uc.Execute(ctx, ChatRespondInput{
		Message:  "hi",
		LeadInfo: entity.LeadInfo{Email: "dana@example.com"},
	})

	assert.NoError(t, err)
	mockLeadRepo.AssertCalled(t, "Upsert", ctx, mock.Anything)
	mockLeadRepo.AssertNotCalled(t, "FindByEmail")
	mockLeadRepo.AssertNotCalled(t, "Insert")
}
