package database

import (
	"context"
	"database/sql"
	"errors"

	"brokerage-backend/internal/entity"
)

type NeighborhoodRepository struct {
	DB *sql.DB
}

func NewNeighborhoodRepository(db *sql.DB) *NeighborhoodRepository {
	return &NeighborhoodRepository{DB: db}
}

func (r *NeighborhoodRepository) Create(ctx context.Context, n *entity.Neighborhood) error {
	query := `
		INSERT INTO neighborhoods (id, name, slug, description, image_url, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)
	`

	_, err := r.DB.ExecContext(ctx, query,
		n.ID, n.Name, n.Slug, n.Description, nullString(n.ImageURL), n.CreatedAt,
	)
	return err
}

func (r *NeighborhoodRepository) FindBySlug(ctx context.Context, slug string) (*entity.Neighborhood, error) {
	query := `
		SELECT id, name, slug, description, image_url, created_at
		FROM neighborhoods
		WHERE slug = $1
	`

	var n entity.Neighborhood
	var image sql.NullString

	err := r.DB.QueryRowContext(ctx, query, slug).Scan(
		&n.ID, &n.Name, &n.Slug, &n.Description, &image, &n.CreatedAt,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, entity.ErrNeighborhoodNotFound
	}
	if err != nil {
		return nil, err
	}

	n.ImageURL = image.String
	return &n, nil
}

func (r *NeighborhoodRepository) List(ctx context.Context) ([]entity.Neighborhood, error) {
	query := `
		SELECT id, name, slug, description, image_url, created_at
		FROM neighborhoods
		ORDER BY name
	`

	rows, err := r.DB.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var neighborhoods []entity.Neighborhood
	for rows.Next() {
		var n entity.Neighborhood
		var image sql.NullString

		if err := rows.Scan(&n.ID, &n.Name, &n.Slug, &n.Description, &image, &n.CreatedAt); err != nil {
			return nil, err
		}
		n.ImageURL = image.String
		neighborhoods = append(neighborhoods, n)
	}

	return neighborhoods, rows.Err()
}

func (r *NeighborhoodRepository) Update(ctx context.Context, n *entity.Neighborhood) error {
	query := `
		UPDATE neighborhoods
		SET name = $2, slug = $3, description = $4, image_url = $5
		WHERE id = $1
	`

	result, err := r.DB.ExecContext(ctx, query,
		n.ID, n.Name, n.Slug, n.Description, nullString(n.ImageURL),
	)
	if err != nil {
		return err
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return entity.ErrNeighborhoodNotFound
	}
	return nil
}

func (r *NeighborhoodRepository) Delete(ctx context.Context, id string) error {
	result, err := r.DB.ExecContext(ctx, `DELETE FROM neighborhoods WHERE id = $1`, id)
	if err != nil {
		return err
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return entity.ErrNeighborhoodNotFound
	}
	return nil
}
