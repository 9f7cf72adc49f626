package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"brokerage-backend/internal/infra/integration/gemini"
	"brokerage-backend/internal/usecase"
)

// integrationErrorCount reads integration_errors_total for one service label
// off the default registry.
func integrationErrorCount(t *testing.T, service string) float64 {
	mfs, err := prometheus.DefaultGatherer.Gather()
	assert.NoError(t, err)

	for _, mf := range mfs {
		if mf.GetName() != "integration_errors_total" {
			continue
		}
		for _, m := range mf.GetMetric() {
			for _, l := range m.GetLabel() {
				if l.GetName() == "service" && l.GetValue() == service {
					return m.GetCounter().GetValue()
				}
			}
		}
	}
	return 0
}

// MockCompletionClient
type MockCompletionClient struct {
	mock.Mock
}

func (m *MockCompletionClient) Generate(ctx context.Context, contents []gemini.Content) (string, error) {
	args := m.Called(ctx, contents)
	return args.String(0), args.Error(1)
}

func newChatbotHandler(completion usecase.CompletionClient) *ChatbotHandler {
	uc := usecase.NewChatRespondUseCase(completion, usecase.NewKeywordClassifier(), nil, nil, false)
	return NewChatbotHandler(uc)
}

func TestChatbotHandlerSuccess(t *testing.T) {
	mockCompletion := new(MockCompletionClient)
	mockCompletion.On("Generate", mock.Anything, mock.Anything).Return("Maplewood is lovely this time of year.", nil)

	handler := newChatbotHandler(mockCompletion)

	body := `{"message": "Tell me about Maplewood", "conversationHistory": [], "leadInfo": {}}`
	req := httptest.NewRequest(http.MethodPost, "/api/chatbot", strings.NewReader(body))
	rec := httptest.NewRecorder()

	handler.Handle(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)

	var output usecase.ChatRespondOutput
	assert.NoError(t, json.NewDecoder(rec.Body).Decode(&output))
	assert.Equal(t, "Maplewood is lovely this time of year.", output.Response)
	assert.False(t, output.ShouldCollectInfo)
}

func TestChatbotHandlerUpstreamFailureReturnsApology(t *testing.T) {
	mockCompletion := new(MockCompletionClient)
	mockCompletion.On("Generate", mock.Anything, mock.Anything).Return("", errors.New("upstream 503"))

	handler := newChatbotHandler(mockCompletion)

	before := integrationErrorCount(t, "gemini")

	body := `{"message": "hi"}`
	req := httptest.NewRequest(http.MethodPost, "/api/chatbot", strings.NewReader(body))
	rec := httptest.NewRecorder()

	handler.Handle(rec, req)

	assert.Equal(t, http.StatusInternalServerError, rec.Code)

	var resp chatbotErrorResponse
	assert.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
	assert.Equal(t, ApologyResponse, resp.Response)
	assert.False(t, resp.ShouldCollectInfo)
	assert.Equal(t, "Internal server error", resp.Error)

	// The outage shows up on the integration error counter.
	assert.Equal(t, before+1, integrationErrorCount(t, "gemini"))
}

func TestChatbotHandlerBadJSONTakesFailurePath(t *testing.T) {
	// A malformed body is not a 400: it gets the same apology as an outage.
	mockCompletion := new(MockCompletionClient)
	handler := newChatbotHandler(mockCompletion)

	req := httptest.NewRequest(http.MethodPost, "/api/chatbot", bytes.NewReader([]byte("{not json")))
	rec := httptest.NewRecorder()

	handler.Handle(rec, req)

	assert.Equal(t, http.StatusInternalServerError, rec.Code)

	var resp chatbotErrorResponse
	assert.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
	assert.Equal(t, ApologyResponse, resp.Response)
	mockCompletion.AssertNotCalled(t, "Generate")
}

func TestChatbotHandlerRedirectPassesThrough(t *testing.T) {
	mockCompletion := new(MockCompletionClient)
	mockCompletion.On("Generate", mock.Anything, mock.Anything).Return("Tuesday works!", nil)

	handler := newChatbotHandler(mockCompletion)

	body := `{"message": "Can I book an appointment?"}`
	req := httptest.NewRequest(http.MethodPost, "/api/chatbot", strings.NewReader(body))
	rec := httptest.NewRecorder()

	handler.Handle(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)

	var output usecase.ChatRespondOutput
	assert.NoError(t, json.NewDecoder(rec.Body).Decode(&output))
	assert.Equal(t, usecase.ContactRedirectResponse, output.Response)
}
