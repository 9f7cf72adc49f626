package entity

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
)

var ErrPostNotFound = errors.New("post not found")

// Post is a blog article shown on the marketing site.
type Post struct {
	ID          string     `json:"id"`
	Title       string     `json:"title"`
	Slug        string     `json:"slug"`
	Excerpt     string     `json:"excerpt,omitempty"`
	Content     string     `json:"content"`
	CoverURL    string     `json:"cover_url,omitempty"`
	PublishedAt *time.Time `json:"published_at,omitempty"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`
}

func NewPost(title, slug, content string) *Post {
	return &Post{
		ID:        uuid.New().String(),
		Title:     title,
		Slug:      slug,
		Content:   content,
		CreatedAt: time.Now(),
		UpdatedAt: time.Now(),
	}
}

func (p *Post) Validate() error {
	if p.Title == "" {
		return errors.New("title is required")
	}
	if p.Slug == "" {
		return errors.New("slug is required")
	}
	if p.Content == "" {
		return errors.New("content is required")
	}
	return nil
}

type PostRepositoryInterface interface {
	Create(ctx context.Context, p *Post) error
	FindBySlug(ctx context.Context, slug string) (*Post, error)
	List(ctx context.Context, publishedOnly bool, limit int) ([]Post, error)
	Update(ctx context.Context, p *Post) error
	Delete(ctx context.Context, id string) error
}
