package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"brokerage-backend/internal/entity"
)

type NeighborhoodHandler struct {
	Repo entity.NeighborhoodRepositoryInterface
}

func NewNeighborhoodHandler(repo entity.NeighborhoodRepositoryInterface) *NeighborhoodHandler {
	return &NeighborhoodHandler{Repo: repo}
}

type neighborhoodInput struct {
	Name        string `json:"name"`
	Slug        string `json:"slug"`
	Description string `json:"description"`
	ImageURL    string `json:"image_url"`
}

func (h *NeighborhoodHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	neighborhoods, err := h.Repo.List(r.Context())
	if err != nil {
		writeErrorResponse(w, http.StatusInternalServerError, "DATABASE_ERROR", "failed to list neighborhoods")
		return
	}
	if neighborhoods == nil {
		neighborhoods = []entity.Neighborhood{}
	}

	writeJSON(w, http.StatusOK, neighborhoods)
}

func (h *NeighborhoodHandler) HandleGet(w http.ResponseWriter, r *http.Request) {
	slug := chi.URLParam(r, "slug")
	if slug == "" {
		writeErrorResponse(w, http.StatusBadRequest, "MISSING_SLUG", "neighborhood slug is required")
		return
	}

	neighborhood, err := h.Repo.FindBySlug(r.Context(), slug)
	if errors.Is(err, entity.ErrNeighborhoodNotFound) {
		writeErrorResponse(w, http.StatusNotFound, "NOT_FOUND", "neighborhood not found")
		return
	}
	if err != nil {
		writeErrorResponse(w, http.StatusInternalServerError, "DATABASE_ERROR", "failed to load neighborhood")
		return
	}

	writeJSON(w, http.StatusOK, neighborhood)
}

func (h *NeighborhoodHandler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	var input neighborhoodInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		writeErrorResponse(w, http.StatusBadRequest, "INVALID_JSON", "invalid JSON body")
		return
	}

	if input.Name == "" || input.Slug == "" {
		writeErrorResponse(w, http.StatusBadRequest, "VALIDATION_ERROR", "name and slug are required")
		return
	}

	neighborhood := entity.NewNeighborhood(input.Name, input.Slug, input.Description)
	neighborhood.ImageURL = input.ImageURL

	if err := h.Repo.Create(r.Context(), neighborhood); err != nil {
		writeErrorResponse(w, http.StatusInternalServerError, "DATABASE_ERROR", "failed to create neighborhood")
		return
	}

	writeJSON(w, http.StatusCreated, neighborhood)
}

func (h *NeighborhoodHandler) HandleUpdate(w http.ResponseWriter, r *http.Request) {
	slug := chi.URLParam(r, "slug")
	if slug == "" {
		writeErrorResponse(w, http.StatusBadRequest, "MISSING_SLUG", "neighborhood slug is required")
		return
	}

	neighborhood, err := h.Repo.FindBySlug(r.Context(), slug)
	if errors.Is(err, entity.ErrNeighborhoodNotFound) {
		writeErrorResponse(w, http.StatusNotFound, "NOT_FOUND", "neighborhood not found")
		return
	}
	if err != nil {
		writeErrorResponse(w, http.StatusInternalServerError, "DATABASE_ERROR", "failed to load neighborhood")
		return
	}

	var input neighborhoodInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		writeErrorResponse(w, http.StatusBadRequest, "INVALID_JSON", "invalid JSON body")
		return
	}

	if input.Name != "" {
		neighborhood.Name = input.Name
	}
	if input.Slug != "" {
		neighborhood.Slug = input.Slug
	}
	if input.Description != "" {
		neighborhood.Description = input.Description
	}
	if input.ImageURL != "" {
		neighborhood.ImageURL = input.ImageURL
	}

	if err := h.Repo.Update(r.Context(), neighborhood); err != nil {
		writeErrorResponse(w, http.StatusInternalServerError, "DATABASE_ERROR", "failed to update neighborhood")
		return
	}

	writeJSON(w, http.StatusOK, neighborhood)
}

func (h *NeighborhoodHandler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if id == "" {
		writeErrorResponse(w, http.StatusBadRequest, "MISSING_ID", "neighborhood id is required")
		return
	}

	err := h.Repo.Delete(r.Context(), id)
	if errors.Is(err, entity.ErrNeighborhoodNotFound) {
		writeErrorResponse(w, http.StatusNotFound, "NOT_FOUND", "neighborhood not found")
		return
	}
	if err != nil {
		writeErrorResponse(w, http.StatusInternalServerError, "DATABASE_ERROR", "failed to delete neighborhood")
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
