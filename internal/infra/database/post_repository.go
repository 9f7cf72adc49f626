package database

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"brokerage-backend/internal/entity"
)

type PostRepository struct {
	DB *sql.DB
}

func NewPostRepository(db *sql.DB) *PostRepository {
	return &PostRepository{DB: db}
}

func (r *PostRepository) Create(ctx context.Context, p *entity.Post) error {
	query := `
		INSERT INTO posts (id, title, slug, excerpt, content, cover_url,
		                   published_at, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
	`

	_, err := r.DB.ExecContext(ctx, query,
		p.ID, p.Title, p.Slug, nullString(p.Excerpt), p.Content,
		nullString(p.CoverURL), p.PublishedAt, p.CreatedAt, p.UpdatedAt,
	)
	return err
}

func (r *PostRepository) FindBySlug(ctx context.Context, slug string) (*entity.Post, error) {
	query := `
		SELECT id, title, slug, excerpt, content, cover_url,
		       published_at, created_at, updated_at
		FROM posts
		WHERE slug = $1
	`

	var p entity.Post
	var excerpt, cover sql.NullString
	var publishedAt sql.NullTime

	err := r.DB.QueryRowContext(ctx, query, slug).Scan(
		&p.ID, &p.Title, &p.Slug, &excerpt, &p.Content, &cover,
		&publishedAt, &p.CreatedAt, &p.UpdatedAt,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, entity.ErrPostNotFound
	}
	if err != nil {
		return nil, err
	}

	p.Excerpt = excerpt.String
	p.CoverURL = cover.String
	if publishedAt.Valid {
		p.PublishedAt = &publishedAt.Time
	}

	return &p, nil
}

func (r *PostRepository) List(ctx context.Context, publishedOnly bool, limit int) ([]entity.Post, error) {
	query := `
		SELECT id, title, slug, excerpt, content, cover_url,
		       published_at, created_at, updated_at
		FROM posts
		WHERE ($1 = false OR published_at IS NOT NULL)
		ORDER BY COALESCE(published_at, created_at) DESC
		LIMIT $2
	`

	rows, err := r.DB.QueryContext(ctx, query, publishedOnly, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var posts []entity.Post
	for rows.Next() {
		var p entity.Post
		var excerpt, cover sql.NullString
		var publishedAt sql.NullTime

		if err := rows.Scan(
			&p.ID, &p.Title, &p.Slug, &excerpt, &p.Content, &cover,
			&publishedAt, &p.CreatedAt, &p.UpdatedAt,
		); err != nil {
			return nil, err
		}

		p.Excerpt = excerpt.String
		p.CoverURL = cover.String
		if publishedAt.Valid {
			p.PublishedAt = &publishedAt.Time
		}
		posts = append(posts, p)
	}

	return posts, rows.Err()
}

func (r *PostRepository) Update(ctx context.Context, p *entity.Post) error {
	query := `
		UPDATE posts
		SET title = $2, slug = $3, excerpt = $4, content = $5,
		    cover_url = $6, published_at = $7, updated_at = $8
		WHERE id = $1
	`

	p.UpdatedAt = time.Now()

	result, err := r.DB.ExecContext(ctx, query,
		p.ID, p.Title, p.Slug, nullString(p.Excerpt), p.Content,
		nullString(p.CoverURL), p.PublishedAt, p.UpdatedAt,
	)
	if err != nil {
		return err
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return entity.ErrPostNotFound
	}
	return nil
}

func (r *PostRepository) Delete(ctx context.Context, id string) error {
	result, err := r.DB.ExecContext(ctx, `DELETE FROM posts WHERE id = $1`, id)
	if err != nil {
		return err
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return entity.ErrPostNotFound
	}
	return nil
}
