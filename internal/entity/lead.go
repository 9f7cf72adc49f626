package entity

import (
	"context"
	"errors"
	"time"
)

var ErrLeadNotFound = errors.New("lead not found")

// LeadInfo is the partial contact record the chat widget accumulates turn by
// turn. Every field is optional; an empty struct disables persistence.
type LeadInfo struct {
	Name     string `json:"name,omitempty"`
	Email    string `json:"email,omitempty"`
	Phone    string `json:"phone,omitempty"`
	Interest string `json:"interest,omitempty"`
}

func (l LeadInfo) HasAny() bool {
	return l.Name != "" || l.Email != "" || l.Phone != "" || l.Interest != ""
}

// Score is the completeness heuristic shown on the dashboard (0-100).
func (l LeadInfo) Score() int {
	score := 0
	if l.Name != "" {
		score += 20
	}
	if l.Email != "" {
		score += 30
	}
	if l.Phone != "" {
		score += 25
	}
	if l.Interest != "" {
		score += 25
	}
	return score
}

type Lead struct {
	ID                  string     `json:"id"`
	Name                string     `json:"name,omitempty"`
	Email               string     `json:"email,omitempty"`
	Phone               string     `json:"phone,omitempty"`
	Interest            string     `json:"interest,omitempty"`
	ConversationSummary string     `json:"conversation_summary,omitempty"`
	LeadScore           int        `json:"lead_score"`
	IPAddress           string     `json:"ip_address,omitempty"`
	UserAgent           string     `json:"user_agent,omitempty"`
	FollowUpSentAt      *time.Time `json:"follow_up_sent_at,omitempty"`
	CreatedAt           time.Time  `json:"created_at"`
}

type LeadRepositoryInterface interface {
	FindByEmail(ctx context.Context, email string) (*Lead, error)
	Insert(ctx context.Context, lead *Lead) error
	Upsert(ctx context.Context, lead *Lead) error
	List(ctx context.Context, limit int) ([]Lead, error)
}
