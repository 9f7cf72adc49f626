package usecase

import (
	"strings"

	"brokerage-backend/internal/entity"
)

// IntentClassifier lets a smarter model replace the keyword lists later
// without touching the responder.
type IntentClassifier interface {
	IsRequirementsOrAppointmentRequest(message string) bool
	ShouldRequestContactInfo(message, finalAnswer string, lead entity.LeadInfo) bool
}

// KeywordClassifier does plain lower-cased substring containment. No
// stemming, no tokenization: "booking" in an unrelated sentence still
// matches, and synonyms off the list never do. That trade-off is on
// purpose; keep it dumb.
type KeywordClassifier struct{}

func NewKeywordClassifier() *KeywordClassifier {
	return &KeywordClassifier{}
}

var requirementsKeywords = []string{
	"requirement",
	"requirements",
	"specific needs",
	"my criteria",
	"must have",
	"wish list",
	"checklist",
}

var appointmentKeywords = []string{
	"appointment",
	"schedule",
	"book",
	"booking",
	"meeting",
	"meet with",
	"tour",
	"viewing",
	"showing",
	"visit the office",
	"call me",
	"speak with an agent",
	"talk to an agent",
	"consultation",
}

var interestKeywords = []string{
	"buy",
	"buying",
	"purchase",
	"sell",
	"selling",
	"rent",
	"renting",
	"house",
	"home",
	"property",
	"apartment",
	"condo",
	"townhouse",
	"listing",
	"invest",
	"investment",
	"mortgage",
	"pre-approved",
	"relocat",
	"moving",
}

func (c *KeywordClassifier) IsRequirementsOrAppointmentRequest(message string) bool {
	lower := strings.ToLower(message)

	for _, kw := range requirementsKeywords {
		if strings.Contains(lower, kw) {
			return true
		}
	}
	for _, kw := range appointmentKeywords {
		if strings.Contains(lower, kw) {
			return true
		}
	}
	return false
}

// ShouldRequestContactInfo is a UI nudge only: ask for contact details when
// the visitor sounds interested, we know nothing about them yet, and the
// answer isn't already asking.
func (c *KeywordClassifier) ShouldRequestContactInfo(message, finalAnswer string, lead entity.LeadInfo) bool {
	if lead.Name != "" || lead.Email != "" || lead.Phone != "" {
		return false
	}

	lowerAnswer := strings.ToLower(finalAnswer)
	if strings.Contains(lowerAnswer, "email") || strings.Contains(lowerAnswer, "contact") {
		return false
	}

	lowerMessage := strings.ToLower(message)
	for _, kw := range interestKeywords {
		if strings.Contains(lowerMessage, kw) {
			return true
		}
	}
	return false
}
