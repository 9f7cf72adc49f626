package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"brokerage-backend/internal/entity"
)

type PropertyHandler struct {
	Repo entity.PropertyRepositoryInterface
}

func NewPropertyHandler(repo entity.PropertyRepositoryInterface) *PropertyHandler {
	return &PropertyHandler{Repo: repo}
}

type propertyInput struct {
	Title       string   `json:"title"`
	Description string   `json:"description"`
	PriceCents  int64    `json:"price_cents"`
	Address     string   `json:"address"`
	City        string   `json:"city"`
	Bedrooms    int      `json:"bedrooms"`
	Bathrooms   int      `json:"bathrooms"`
	SquareFeet  int      `json:"square_feet"`
	Status      string   `json:"status"`
	ImageURLs   []string `json:"image_urls"`
}

func (h *PropertyHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	status := r.URL.Query().Get("status")

	limit := 100
	if raw := r.URL.Query().Get("limit"); raw != "" {
		if parsed, err := strconv.Atoi(raw); err == nil && parsed > 0 && parsed <= 500 {
			limit = parsed
		}
	}

	properties, err := h.Repo.List(r.Context(), status, limit)
	if err != nil {
		writeErrorResponse(w, http.StatusInternalServerError, "DATABASE_ERROR", "failed to list properties")
		return
	}
	if properties == nil {
		properties = []entity.Property{}
	}

	writeJSON(w, http.StatusOK, properties)
}

func (h *PropertyHandler) HandleGet(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if id == "" {
		writeErrorResponse(w, http.StatusBadRequest, "MISSING_ID", "property id is required")
		return
	}

	property, err := h.Repo.FindByID(r.Context(), id)
	if errors.Is(err, entity.ErrPropertyNotFound) {
		writeErrorResponse(w, http.StatusNotFound, "NOT_FOUND", "property not found")
		return
	}
	if err != nil {
		writeErrorResponse(w, http.StatusInternalServerError, "DATABASE_ERROR", "failed to load property")
		return
	}

	writeJSON(w, http.StatusOK, property)
}

func (h *PropertyHandler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	var input propertyInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		writeErrorResponse(w, http.StatusBadRequest, "INVALID_JSON", "invalid JSON body")
		return
	}

	property := entity.NewProperty(input.Title, input.Description, input.Address, input.City, input.PriceCents)
	property.Bedrooms = input.Bedrooms
	property.Bathrooms = input.Bathrooms
	property.SquareFeet = input.SquareFeet
	property.ImageURLs = input.ImageURLs
	if input.Status != "" {
		property.Status = input.Status
	}

	if err := property.Validate(); err != nil {
		writeErrorResponse(w, http.StatusBadRequest, "VALIDATION_ERROR", err.Error())
		return
	}

	if err := h.Repo.Create(r.Context(), property); err != nil {
		writeErrorResponse(w, http.StatusInternalServerError, "DATABASE_ERROR", "failed to create property")
		return
	}

	writeJSON(w, http.StatusCreated, property)
}

func (h *PropertyHandler) HandleUpdate(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if id == "" {
		writeErrorResponse(w, http.StatusBadRequest, "MISSING_ID", "property id is required")
		return
	}

	property, err := h.Repo.FindByID(r.Context(), id)
	if errors.Is(err, entity.ErrPropertyNotFound) {
		writeErrorResponse(w, http.StatusNotFound, "NOT_FOUND", "property not found")
		return
	}
	if err != nil {
		writeErrorResponse(w, http.StatusInternalServerError, "DATABASE_ERROR", "failed to load property")
		return
	}

	var input propertyInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		writeErrorResponse(w, http.StatusBadRequest, "INVALID_JSON", "invalid JSON body")
		return
	}

	property.Title = input.Title
	property.Description = input.Description
	property.PriceCents = input.PriceCents
	property.Address = input.Address
	property.City = input.City
	property.Bedrooms = input.Bedrooms
	property.Bathrooms = input.Bathrooms
	property.SquareFeet = input.SquareFeet
	property.ImageURLs = input.ImageURLs
	if input.Status != "" {
		property.Status = input.Status
	}

	if err := property.Validate(); err != nil {
		writeErrorResponse(w, http.StatusBadRequest, "VALIDATION_ERROR", err.Error())
		return
	}

	if err := h.Repo.Update(r.Context(), property); err != nil {
		writeErrorResponse(w, http.StatusInternalServerError, "DATABASE_ERROR", "failed to update property")
		return
	}

	writeJSON(w, http.StatusOK, property)
}

func (h *PropertyHandler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if id == "" {
		writeErrorResponse(w, http.StatusBadRequest, "MISSING_ID", "property id is required")
		return
	}

	err := h.Repo.Delete(r.Context(), id)
	if errors.Is(err, entity.ErrPropertyNotFound) {
		writeErrorResponse(w, http.StatusNotFound, "NOT_FOUND", "property not found")
		return
	}
	if err != nil {
		writeErrorResponse(w, http.StatusInternalServerError, "DATABASE_ERROR", "failed to delete property")
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
