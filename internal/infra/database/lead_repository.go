package database

import (
	"context"
	"database/sql"
	"errors"

	"brokerage-backend/internal/entity"
)

type LeadRepository struct {
	DB *sql.DB
}

func NewLeadRepository(db *sql.DB) *LeadRepository {
	return &LeadRepository{DB: db}
}

func (r *LeadRepository) FindByEmail(ctx context.Context, email string) (*entity.Lead, error) {
	query := `
		SELECT id, name, email, phone, interest, conversation_summary,
		       lead_score, ip_address, user_agent, created_at
		FROM leads
		WHERE email = $1
	`

	var lead entity.Lead
	var name, phone, interest, summary, ip, ua sql.NullString

	err := r.DB.QueryRowContext(ctx, query, email).Scan(
		&lead.ID,
		&name,
		&lead.Email,
		&phone,
		&interest,
		&summary,
		&lead.LeadScore,
		&ip,
		&ua,
		&lead.CreatedAt,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, entity.ErrLeadNotFound
	}
	if err != nil {
		return nil, err
	}

	lead.Name = name.String
	lead.Phone = phone.String
	lead.Interest = interest.String
	lead.ConversationSummary = summary.String
	lead.IPAddress = ip.String
	lead.UserAgent = ua.String

	return &lead, nil
}

func (r *LeadRepository) Insert(ctx context.Context, lead *entity.Lead) error {
	query := `
		INSERT INTO leads (id, name, email, phone, interest, conversation_summary,
		                   lead_score, ip_address, user_agent, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
	`

	_, err := r.DB.ExecContext(ctx, query,
		lead.ID,
		nullString(lead.Name),
		nullString(lead.Email),
		nullString(lead.Phone),
		nullString(lead.Interest),
		nullString(lead.ConversationSummary),
		lead.LeadScore,
		nullString(lead.IPAddress),
		nullString(lead.UserAgent),
		lead.CreatedAt,
	)

	return err
}

// Upsert is the race-free variant, enabled by LEAD_ATOMIC_UPSERT. It keeps
// the first touch's data and only fills columns the existing row is missing.
func (r *LeadRepository) Upsert(ctx context.Context, lead *entity.Lead) error {
	query := `
		INSERT INTO leads (id, name, email, phone, interest, conversation_summary,
		                   lead_score, ip_address, user_agent, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		ON CONFLICT (email)
		DO UPDATE SET
			name = COALESCE(leads.name, EXCLUDED.name),
			phone = COALESCE(leads.phone, EXCLUDED.phone),
			interest = COALESCE(leads.interest, EXCLUDED.interest),
			lead_score = GREATEST(leads.lead_score, EXCLUDED.lead_score)
		RETURNING id, created_at
	`

	return r.DB.QueryRowContext(ctx, query,
		lead.ID,
		nullString(lead.Name),
		nullString(lead.Email),
		nullString(lead.Phone),
		nullString(lead.Interest),
		nullString(lead.ConversationSummary),
		lead.LeadScore,
		nullString(lead.IPAddress),
		nullString(lead.UserAgent),
		lead.CreatedAt,
	).Scan(&lead.ID, &lead.CreatedAt)
}

func (r *LeadRepository) List(ctx context.Context, limit int) ([]entity.Lead, error) {
	query := `
		SELECT id, name, email, phone, interest, conversation_summary,
		       lead_score, ip_address, user_agent, created_at
		FROM leads
		ORDER BY created_at DESC
		LIMIT $1
	`

	rows, err := r.DB.QueryContext(ctx, query, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var leads []entity.Lead
	for rows.Next() {
		var lead entity.Lead
		var name, email, phone, interest, summary, ip, ua sql.NullString

		if err := rows.Scan(
			&lead.ID, &name, &email, &phone, &interest, &summary,
			&lead.LeadScore, &ip, &ua, &lead.CreatedAt,
		); err != nil {
			return nil, err
		}

		lead.Name = name.String
		lead.Email = email.String
		lead.Phone = phone.String
		lead.Interest = interest.String
		lead.ConversationSummary = summary.String
		lead.IPAddress = ip.String
		lead.UserAgent = ua.String

		leads = append(leads, lead)
	}

	return leads, rows.Err()
}

func nullString(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
