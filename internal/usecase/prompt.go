package usecase

import (
	"fmt"
	"strings"

	"brokerage-backend/internal/entity"
	"brokerage-backend/internal/infra/integration/gemini"
)

const systemInstruction = `You are Aria, the virtual assistant for Summit Ridge Realty, a residential real-estate brokerage. Help visitors with questions about buying, selling, renting, our listings, neighborhoods, and the local market. Be warm, concise, and professional. Do not invent listings or prices. If a visitor wants to move forward, suggest speaking with one of our agents.

Known visitor details so far: %s`

const assistantAck = "Understood! I'm Aria, ready to help visitors of Summit Ridge Realty with their real-estate questions."

// BuildChatContents assembles the generateContent turns. Order is fixed:
// instruction, canned acknowledgement, full history as sent by the client,
// then the new message. History is never truncated here.
func BuildChatContents(lead entity.LeadInfo, history []entity.ConversationMessage, message string) []gemini.Content {
	contents := []gemini.Content{
		{Role: "user", Parts: []gemini.Part{{Text: fmt.Sprintf(systemInstruction, serializeLeadInfo(lead))}}},
		{Role: "model", Parts: []gemini.Part{{Text: assistantAck}}},
	}

	for _, m := range history {
		role := "user"
		if m.Role == "assistant" {
			role = "model"
		}
		contents = append(contents, gemini.Content{Role: role, Parts: []gemini.Part{{Text: m.Content}}})
	}

	contents = append(contents, gemini.Content{Role: "user", Parts: []gemini.Part{{Text: message}}})
	return contents
}

func serializeLeadInfo(lead entity.LeadInfo) string {
	if !lead.HasAny() {
		return "none yet"
	}

	var parts []string
	if lead.Name != "" {
		parts = append(parts, "name: "+lead.Name)
	}
	if lead.Email != "" {
		parts = append(parts, "email: "+lead.Email)
	}
	if lead.Phone != "" {
		parts = append(parts, "phone: "+lead.Phone)
	}
	if lead.Interest != "" {
		parts = append(parts, "interest: "+lead.Interest)
	}
	return strings.Join(parts, ", ")
}

// summarizeConversation renders at most the last 5 messages as
// "role: content" lines for the lead row.
func summarizeConversation(history []entity.ConversationMessage) string {
	start := 0
	if len(history) > 5 {
		start = len(history) - 5
	}

	var lines []string
	for _, m := range history[start:] {
		lines = append(lines, fmt.Sprintf("%s: %s", m.Role, m.Content))
	}
	return strings.Join(lines, "\n")
}
