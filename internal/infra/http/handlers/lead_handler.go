package handlers

import (
	"net/http"
	"strconv"

	"brokerage-backend/internal/entity"
)

const defaultLeadListLimit = 50

// LeadHandler serves the admin dashboard's lead table.
type LeadHandler struct {
	LeadRepo entity.LeadRepositoryInterface
}

func NewLeadHandler(repo entity.LeadRepositoryInterface) *LeadHandler {
	return &LeadHandler{LeadRepo: repo}
}

func (h *LeadHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	limit := defaultLeadListLimit
	if raw := r.URL.Query().Get("limit"); raw != "" {
		if parsed, err := strconv.Atoi(raw); err == nil && parsed > 0 && parsed <= 500 {
			limit = parsed
		}
	}

	leads, err := h.LeadRepo.List(r.Context(), limit)
	if err != nil {
		writeErrorResponse(w, http.StatusInternalServerError, "DATABASE_ERROR", "failed to list leads")
		return
	}
	if leads == nil {
		leads = []entity.Lead{}
	}

	writeJSON(w, http.StatusOK, leads)
}
