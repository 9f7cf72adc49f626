package usecase

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"brokerage-backend/internal/entity"
)

func TestRedirectTriggersOnRequirementsAndAppointments(t *testing.T) {
	c := NewKeywordClassifier()

	cases := []struct {
		message string
		want    bool
	}{
		{"What are your requirements for renting?", true},
		{"Here is my criteria for the new place", true},
		{"I have a wish list of must have features", true},
		{"Can I book an appointment?", true},
		{"I'd like to schedule a tour", true},
		{"Is there a viewing this weekend?", true},
		{"Please call me about the listing", true},
		{"I want to speak with an agent", true},

		// Substring containment cuts both ways.
		{"The hotel BOOKING fell through so we're staying longer", true},

		{"What's the average price in Maplewood?", false},
		{"Tell me about the neighborhood schools", false},
		{"hello", false},
		{"", false},
	}

	for _, tc := range cases {
		assert.Equal(t, tc.want, c.IsRequirementsOrAppointmentRequest(tc.message), "message: %q", tc.message)
	}
}

func TestNudgeRequiresInterestAndNoContactDetails(t *testing.T) {
	c := NewKeywordClassifier()
	neutralAnswer := "Great question! Maplewood has excellent schools and parks."

	// Interested visitor we know nothing about: nudge.
	assert.True(t, c.ShouldRequestContactInfo("I'm looking to buy a house", neutralAnswer, entity.LeadInfo{}))

	// No interest keyword: no nudge.
	assert.False(t, c.ShouldRequestContactInfo("Tell me about local schools", neutralAnswer, entity.LeadInfo{}))

	// Any identifying field suppresses it. Interest alone does not.
	assert.False(t, c.ShouldRequestContactInfo("I'm looking to buy a house", neutralAnswer, entity.LeadInfo{Name: "Dana"}))
	assert.False(t, c.ShouldRequestContactInfo("I'm looking to buy a house", neutralAnswer, entity.LeadInfo{Email: "dana@example.com"}))
	assert.False(t, c.ShouldRequestContactInfo("I'm looking to buy a house", neutralAnswer, entity.LeadInfo{Phone: "555-0100"}))
	assert.True(t, c.ShouldRequestContactInfo("I'm looking to buy a house", neutralAnswer, entity.LeadInfo{Interest: "buying"}))
}

func TestNudgeSuppressedWhenAnswerAlreadyAsks(t *testing.T) {
	c := NewKeywordClassifier()

	assert.False(t, c.ShouldRequestContactInfo(
		"I'm looking to buy a house",
		"Happy to help! Could you share your email so an agent can follow up?",
		entity.LeadInfo{},
	))
	assert.False(t, c.ShouldRequestContactInfo(
		"I'm looking to buy a house",
		"Sure, please contact our office for details.",
		entity.LeadInfo{},
	))
}

func TestLeadScoreWeights(t *testing.T) {
	assert.Equal(t, 0, entity.LeadInfo{}.Score())
	assert.Equal(t, 20, entity.LeadInfo{Name: "Dana"}.Score())
	assert.Equal(t, 30, entity.LeadInfo{Email: "d@example.com"}.Score())
	assert.Equal(t, 50, entity.LeadInfo{Name: "Dana", Email: "d@example.com"}.Score())
	assert.Equal(t, 100, entity.LeadInfo{
		Name:     "Dana",
		Email:    "d@example.com",
		Phone:    "555-0100",
		Interest: "buying",
	}.Score())
}
