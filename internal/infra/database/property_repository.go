package database

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/lib/pq"

	"brokerage-backend/internal/entity"
)

type PropertyRepository struct {
	DB *sql.DB
}

func NewPropertyRepository(db *sql.DB) *PropertyRepository {
	return &PropertyRepository{DB: db}
}

func (r *PropertyRepository) Create(ctx context.Context, p *entity.Property) error {
	query := `
		INSERT INTO properties (id, title, description, price_cents, address, city,
		                        bedrooms, bathrooms, square_feet, status, image_urls,
		                        created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)
	`

	_, err := r.DB.ExecContext(ctx, query,
		p.ID, p.Title, p.Description, p.PriceCents, p.Address, p.City,
		p.Bedrooms, p.Bathrooms, p.SquareFeet, p.Status, pq.Array(p.ImageURLs),
		p.CreatedAt, p.UpdatedAt,
	)
	return err
}

func (r *PropertyRepository) FindByID(ctx context.Context, id string) (*entity.Property, error) {
	query := `
		SELECT id, title, description, price_cents, address, city,
		       bedrooms, bathrooms, square_feet, status, image_urls,
		       created_at, updated_at
		FROM properties
		WHERE id = $1
	`

	var p entity.Property
	err := r.DB.QueryRowContext(ctx, query, id).Scan(
		&p.ID, &p.Title, &p.Description, &p.PriceCents, &p.Address, &p.City,
		&p.Bedrooms, &p.Bathrooms, &p.SquareFeet, &p.Status, pq.Array(&p.ImageURLs),
		&p.CreatedAt, &p.UpdatedAt,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, entity.ErrPropertyNotFound
	}
	if err != nil {
		return nil, err
	}

	return &p, nil
}

func (r *PropertyRepository) List(ctx context.Context, status string, limit int) ([]entity.Property, error) {
	query := `
		SELECT id, title, description, price_cents, address, city,
		       bedrooms, bathrooms, square_feet, status, image_urls,
		       created_at, updated_at
		FROM properties
		WHERE ($1 = '' OR status = $1)
		ORDER BY created_at DESC
		LIMIT $2
	`

	rows, err := r.DB.QueryContext(ctx, query, status, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var properties []entity.Property
	for rows.Next() {
		var p entity.Property
		if err := rows.Scan(
			&p.ID, &p.Title, &p.Description, &p.PriceCents, &p.Address, &p.City,
			&p.Bedrooms, &p.Bathrooms, &p.SquareFeet, &p.Status, pq.Array(&p.ImageURLs),
			&p.CreatedAt, &p.UpdatedAt,
		); err != nil {
			return nil, err
		}
		properties = append(properties, p)
	}

	return properties, rows.Err()
}

func (r *PropertyRepository) Update(ctx context.Context, p *entity.Property) error {
	query := `
		UPDATE properties
		SET title = $2, description = $3, price_cents = $4, address = $5,
		    city = $6, bedrooms = $7, bathrooms = $8, square_feet = $9,
		    status = $10, image_urls = $11, updated_at = $12
		WHERE id = $1
	`

	p.UpdatedAt = time.Now()

	result, err := r.DB.ExecContext(ctx, query,
		p.ID, p.Title, p.Description, p.PriceCents, p.Address, p.City,
		p.Bedrooms, p.Bathrooms, p.SquareFeet, p.Status, pq.Array(p.ImageURLs),
		p.UpdatedAt,
	)
	if err != nil {
		return err
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return entity.ErrPropertyNotFound
	}
	return nil
}

func (r *PropertyRepository) Delete(ctx context.Context, id string) error {
	result, err := r.DB.ExecContext(ctx, `DELETE FROM properties WHERE id = $1`, id)
	if err != nil {
		return err
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return entity.ErrPropertyNotFound
	}
	return nil
}
