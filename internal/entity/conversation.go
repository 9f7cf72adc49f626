package entity

// ConversationMessage is one turn of the client-held transcript. The server
// keeps no conversation state; the widget resends the full history each call.
type ConversationMessage struct {
	Role    string `json:"role"` // "user" or "assistant"
	Content string `json:"content"`
}
