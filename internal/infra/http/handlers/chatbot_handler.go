package handlers

import (
	"encoding/json"
	"log"
	"net/http"

	"brokerage-backend/internal/infra/http/middleware"
	"brokerage-backend/internal/usecase"
)

// ApologyResponse is the only thing a visitor ever sees when the responder
// fails, whatever actually went wrong.
const ApologyResponse = "I apologize, but I'm having trouble processing your request right now. Please try again in a moment or contact us directly for assistance."

type ChatbotHandler struct {
	ChatUC *usecase.ChatRespondUseCase
}

func NewChatbotHandler(uc *usecase.ChatRespondUseCase) *ChatbotHandler {
	return &ChatbotHandler{ChatUC: uc}
}

type chatbotErrorResponse struct {
	Response          string `json:"response"`
	ShouldCollectInfo bool   `json:"shouldCollectInfo"`
	Error             string `json:"error"`
}

func (h *ChatbotHandler) Handle(w http.ResponseWriter, r *http.Request) {
	var input usecase.ChatRespondInput

	// There is no 400 here: a body we can't read takes the same hard-failure
	// path as an upstream outage.
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		log.Printf("❌ Chatbot: bad request body: %v", err)
		h.fail(w)
		return
	}

	input.IPAddress = getClientIP(r)
	input.UserAgent = r.UserAgent()

	output, err := h.ChatUC.Execute(r.Context(), input)
	if err != nil {
		log.Printf("❌ Chatbot: %v", err)
		middleware.RecordIntegrationError("gemini")
		middleware.RecordChatResponse("error")
		h.fail(w)
		return
	}

	middleware.RecordChatResponse("ok")
	writeJSON(w, http.StatusOK, output)
}

func (h *ChatbotHandler) fail(w http.ResponseWriter) {
	writeJSON(w, http.StatusInternalServerError, chatbotErrorResponse{
		Response:          ApologyResponse,
		ShouldCollectInfo: false,
		Error:             "Internal server error",
	})
}
