package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"

	"brokerage-backend/internal/entity"
)

type PostHandler struct {
	Repo entity.PostRepositoryInterface
}

func NewPostHandler(repo entity.PostRepositoryInterface) *PostHandler {
	return &PostHandler{Repo: repo}
}

type postInput struct {
	Title     string `json:"title"`
	Slug      string `json:"slug"`
	Excerpt   string `json:"excerpt"`
	Content   string `json:"content"`
	CoverURL  string `json:"cover_url"`
	Published bool   `json:"published"`
}

// HandleList serves the public blog: published posts only. The admin list
// passes ?drafts=true to see everything.
func (h *PostHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	publishedOnly := r.URL.Query().Get("drafts") != "true"

	limit := 50
	if raw := r.URL.Query().Get("limit"); raw != "" {
		if parsed, err := strconv.Atoi(raw); err == nil && parsed > 0 && parsed <= 200 {
			limit = parsed
		}
	}

	posts, err := h.Repo.List(r.Context(), publishedOnly, limit)
	if err != nil {
		writeErrorResponse(w, http.StatusInternalServerError, "DATABASE_ERROR", "failed to list posts")
		return
	}
	if posts == nil {
		posts = []entity.Post{}
	}

	writeJSON(w, http.StatusOK, posts)
}

func (h *PostHandler) HandleGet(w http.ResponseWriter, r *http.Request) {
	slug := chi.URLParam(r, "slug")
	if slug == "" {
		writeErrorResponse(w, http.StatusBadRequest, "MISSING_SLUG", "post slug is required")
		return
	}

	post, err := h.Repo.FindBySlug(r.Context(), slug)
	if errors.Is(err, entity.ErrPostNotFound) {
		writeErrorResponse(w, http.StatusNotFound, "NOT_FOUND", "post not found")
		return
	}
	if err != nil {
		writeErrorResponse(w, http.StatusInternalServerError, "DATABASE_ERROR", "failed to load post")
		return
	}

	writeJSON(w, http.StatusOK, post)
}

func (h *PostHandler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	var input postInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		writeErrorResponse(w, http.StatusBadRequest, "INVALID_JSON", "invalid JSON body")
		return
	}

	post := entity.NewPost(input.Title, input.Slug, input.Content)
	post.Excerpt = input.Excerpt
	post.CoverURL = input.CoverURL
	if input.Published {
		now := time.Now()
		post.PublishedAt = &now
	}

	if err := post.Validate(); err != nil {
		writeErrorResponse(w, http.StatusBadRequest, "VALIDATION_ERROR", err.Error())
		return
	}

	if err := h.Repo.Create(r.Context(), post); err != nil {
		writeErrorResponse(w, http.StatusInternalServerError, "DATABASE_ERROR", "failed to create post")
		return
	}

	writeJSON(w, http.StatusCreated, post)
}

func (h *PostHandler) HandleUpdate(w http.ResponseWriter, r *http.Request) {
	slug := chi.URLParam(r, "slug")
	if slug == "" {
		writeErrorResponse(w, http.StatusBadRequest, "MISSING_SLUG", "post slug is required")
		return
	}

	post, err := h.Repo.FindBySlug(r.Context(), slug)
	if errors.Is(err, entity.ErrPostNotFound) {
		writeErrorResponse(w, http.StatusNotFound, "NOT_FOUND", "post not found")
		return
	}
	if err != nil {
		writeErrorResponse(w, http.StatusInternalServerError, "DATABASE_ERROR", "failed to load post")
		return
	}

	var input postInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		writeErrorResponse(w, http.StatusBadRequest, "INVALID_JSON", "invalid JSON body")
		return
	}

	post.Title = input.Title
	post.Slug = input.Slug
	post.Excerpt = input.Excerpt
	post.Content = input.Content
	post.CoverURL = input.CoverURL
	if input.Published && post.PublishedAt == nil {
		now := time.Now()
		post.PublishedAt = &now
	}
	if !input.Published {
		post.PublishedAt = nil
	}

	if err := post.Validate(); err != nil {
		writeErrorResponse(w, http.StatusBadRequest, "VALIDATION_ERROR", err.Error())
		return
	}

	if err := h.Repo.Update(r.Context(), post); err != nil {
		writeErrorResponse(w, http.StatusInternalServerError, "DATABASE_ERROR", "failed to update post")
		return
	}

	writeJSON(w, http.StatusOK, post)
}

func (h *PostHandler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if id == "" {
		writeErrorResponse(w, http.StatusBadRequest, "MISSING_ID", "post id is required")
		return
	}

	err := h.Repo.Delete(r.Context(), id)
	if errors.Is(err, entity.ErrPostNotFound) {
		writeErrorResponse(w, http.StatusNotFound, "NOT_FOUND", "post not found")
		return
	}
	if err != nil {
		writeErrorResponse(w, http.StatusInternalServerError, "DATABASE_ERROR", "failed to delete post")
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
