package usecase

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"

	"brokerage-backend/internal/entity"
)

func TestBuildChatContentsOrdering(t *testing.T) {
	history := []entity.ConversationMessage{
		{Role: "user", Content: "hi"},
		{Role: "assistant", Content: "hello, how can I help?"},
	}

	contents := BuildChatContents(entity.LeadInfo{}, history, "what's for sale in Maplewood?")

	// instruction, ack, two history turns, current message
	assert.Len(t, contents, 5)

	assert.Equal(t, "user", contents[0].Role)
	assert.Equal(t, fmt.Sprintf(systemInstruction, "none yet"), contents[0].Parts[0].Text)

	assert.Equal(t, "model", contents[1].Role)
	assert.Equal(t, assistantAck, contents[1].Parts[0].Text)

	assert.Equal(t, "user", contents[2].Role)
	assert.Equal(t, "hi", contents[2].Parts[0].Text)

	// "assistant" from the widget maps to "model" on the wire.
	assert.Equal(t, "model", contents[3].Role)
	assert.Equal(t, "hello, how can I help?", contents[3].Parts[0].Text)

	assert.Equal(t, "user", contents[4].Role)
	assert.Equal(t, "what's for sale in Maplewood?", contents[4].Parts[0].Text)
}

func TestBuildChatContentsSerializesKnownLeadDetails(t *testing.T) {
	lead := entity.LeadInfo{Name: "Dana", Email: "dana@example.com"}

	contents := BuildChatContents(lead, nil, "hi")

	assert.Contains(t, contents[0].Parts[0].Text, "name: Dana")
	assert.Contains(t, contents[0].Parts[0].Text, "email: dana@example.com")
	assert.NotContains(t, contents[0].Parts[0].Text, "none yet")
}

func TestSummarizeConversationKeepsLastFive(t *testing.T) {
	var history []entity.ConversationMessage
	for i := 1; i <= 7; i++ {
		history = append(history, entity.ConversationMessage{
			Role:    "user",
			Content: fmt.Sprintf("message %d", i),
		})
	}

	summary := summarizeConversation(history)

	assert.NotContains(t, summary, "message 1")
	assert.NotContains(t, summary, "message 2")
	assert.Contains(t, summary, "user: message 3")
	assert.Contains(t, summary, "user: message 7")
}

func TestSummarizeConversationEmptyHistory(t *testing.T) {
	assert.Equal(t, "", summarizeConversation(nil))
}
