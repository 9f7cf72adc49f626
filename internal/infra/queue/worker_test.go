package queue

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

// MockMailer
type MockMailer struct {
	mock.Mock
}

func (m *MockMailer) SendLeadAlert(payload NotificationPayload) error {
	args := m.Called(payload)
	return args.Error(0)
}

func (m *MockMailer) SendContactAlert(payload NotificationPayload) error {
	args := m.Called(payload)
	return args.Error(0)
}

func (m *MockMailer) SendLeadFollowUp(payload NotificationPayload) error {
	args := m.Called(payload)
	return args.Error(0)
}

func TestProcessPayloadRoutesByEvent(t *testing.T) {
	mockMailer := new(MockMailer)
	mockMailer.On("SendLeadAlert", mock.Anything).Return(nil)
	mockMailer.On("SendContactAlert", mock.Anything).Return(nil)
	mockMailer.On("SendLeadFollowUp", mock.Anything).Return(nil)

	w := NewWorker(nil, mockMailer)

	assert.NoError(t, w.ProcessPayload(NotificationPayload{Event: EventLeadCaptured, Email: "a@b.com"}))
	mockMailer.AssertCalled(t, "SendLeadAlert", mock.Anything)

	assert.NoError(t, w.ProcessPayload(NotificationPayload{Event: EventContactMessage, Email: "a@b.com"}))
	mockMailer.AssertCalled(t, "SendContactAlert", mock.Anything)

	assert.NoError(t, w.ProcessPayload(NotificationPayload{Event: EventLeadFollowUp, Email: "a@b.com"}))
	mockMailer.AssertCalled(t, "SendLeadFollowUp", mock.Anything)
}

func TestProcessPayloadUnknownEventIsSkipped(t *testing.T) {
	mockMailer := new(MockMailer)
	w := NewWorker(nil, mockMailer)

	// Unknown events return nil so the delivery gets acked, not dead-lettered.
	assert.NoError(t, w.ProcessPayload(NotificationPayload{Event: "SOMETHING_ELSE"}))

	mockMailer.AssertNotCalled(t, "SendLeadAlert")
	mockMailer.AssertNotCalled(t, "SendContactAlert")
	mockMailer.AssertNotCalled(t, "SendLeadFollowUp")
}

func TestProcessPayloadPropagatesMailerFailure(t *testing.T) {
	mockMailer := new(MockMailer)
	mockMailer.On("SendLeadAlert", mock.Anything).Return(errors.New("smtp refused"))

	w := NewWorker(nil, mockMailer)

	err := w.ProcessPayload(NotificationPayload{Event: EventLeadCaptured, Email: "a@b.com"})
	assert.Error(t, err)
}
