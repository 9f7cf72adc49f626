package entity

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
)

var ErrNeighborhoodNotFound = errors.New("neighborhood not found")

type Neighborhood struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Slug        string    `json:"slug"`
	Description string    `json:"description"`
	ImageURL    string    `json:"image_url,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
}

func NewNeighborhood(name, slug, description string) *Neighborhood {
	return &Neighborhood{
		ID:          uuid.New().String(),
		Name:        name,
		Slug:        slug,
		Description: description,
		CreatedAt:   time.Now(),
	}
}

type NeighborhoodRepositoryInterface interface {
	Create(ctx context.Context, n *Neighborhood) error
	FindBySlug(ctx context.Context, slug string) (*Neighborhood, error)
	List(ctx context.Context) ([]Neighborhood, error)
	Update(ctx context.Context, n *Neighborhood) error
	Delete(ctx context.Context, id string) error
}
