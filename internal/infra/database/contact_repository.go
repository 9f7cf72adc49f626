package database

import (
	"context"
	"database/sql"

	"brokerage-backend/internal/entity"
)

type ContactRepository struct {
	DB *sql.DB
}

func NewContactRepository(db *sql.DB) *ContactRepository {
	return &ContactRepository{DB: db}
}

func (r *ContactRepository) Create(ctx context.Context, m *entity.ContactMessage) error {
	query := `
		INSERT INTO contact_messages (id, name, email, phone, message, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)
	`

	_, err := r.DB.ExecContext(ctx, query,
		m.ID, m.Name, m.Email, nullString(m.Phone), m.Message, m.CreatedAt,
	)
	return err
}

func (r *ContactRepository) List(ctx context.Context, limit int) ([]entity.ContactMessage, error) {
	query := `
		SELECT id, name, email, phone, message, created_at
		FROM contact_messages
		ORDER BY created_at DESC
		LIMIT $1
	`

	rows, err := r.DB.QueryContext(ctx, query, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var messages []entity.ContactMessage
	for rows.Next() {
		var m entity.ContactMessage
		var phone sql.NullString

		if err := rows.Scan(&m.ID, &m.Name, &m.Email, &phone, &m.Message, &m.CreatedAt); err != nil {
			return nil, err
		}
		m.Phone = phone.String
		messages = append(messages, m)
	}

	return messages, rows.Err()
}
