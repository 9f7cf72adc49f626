package entity

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
)

var ErrPropertyNotFound = errors.New("property not found")

type Property struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	PriceCents  int64     `json:"price_cents"`
	Address     string    `json:"address"`
	City        string    `json:"city"`
	Bedrooms    int       `json:"bedrooms"`
	Bathrooms   int       `json:"bathrooms"`
	SquareFeet  int       `json:"square_feet"`
	Status      string    `json:"status"` // ACTIVE, PENDING, SOLD
	ImageURLs   []string  `json:"image_urls"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

func NewProperty(title, description, address, city string, priceCents int64) *Property {
	return &Property{
		ID:          uuid.New().String(),
		Title:       title,
		Description: description,
		Address:     address,
		City:        city,
		PriceCents:  priceCents,
		Status:      "ACTIVE",
		CreatedAt:   time.Now(),
		UpdatedAt:   time.Now(),
	}
}

func (p *Property) Validate() error {
	if p.Title == "" {
		return errors.New("title is required")
	}
	if p.Address == "" {
		return errors.New("address is required")
	}
	if p.PriceCents <= 0 {
		return errors.New("price must be positive")
	}
	return nil
}

type PropertyRepositoryInterface interface {
	Create(ctx context.Context, p *Property) error
	FindByID(ctx context.Context, id string) (*Property, error)
	List(ctx context.Context, status string, limit int) ([]Property, error)
	Update(ctx context.Context, p *Property) error
	Delete(ctx context.Context, id string) error
}
