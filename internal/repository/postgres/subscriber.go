package postgres

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/google/uuid"

	"github.com/glitchowt/backoffice/internal/domain"
	"github.com/glitchowt/backoffice/internal/service/subscriber"
)

// SubscriberRepo implements subscriber.Repository against PostgreSQL.
type SubscriberRepo struct{ db *sql.DB }

// NewSubscriberRepo creates a Postgres-backed subscriber repository.
func NewSubscriberRepo(db *sql.DB) *SubscriberRepo { return &SubscriberRepo{db: db} }

func (r *SubscriberRepo) Create(ctx context.Context, sub *domain.Subscriber) error {
	if sub.ID == "" {
		sub.ID = uuid.New().String()
	}
	err := r.db.QueryRowContext(ctx, `
		INSERT INTO subscribers (id, email, created_at)
		VALUES ($1, $2, NOW())
		RETURNING created_at
	`, sub.ID, sub.Email).Scan(&sub.CreatedAt)
	if isUniqueViolation(err) {
		return subscriber.ErrAlreadySubscribed
	}
	if err != nil {
		return fmt.Errorf("create subscriber: %w", err)
	}
	return nil
}

func (r *SubscriberRepo) List(ctx context.Context) ([]domain.Subscriber, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT id, email, created_at
		FROM subscribers
		ORDER BY created_at DESC
	`)
	if err != nil {
		return nil, fmt.Errorf("list subscribers: %w", err)
	}
	defer rows.Close()

	var out []domain.Subscriber
	for rows.Next() {
		var s domain.Subscriber
		if err := rows.Scan(&s.ID, &s.Email, &s.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan subscriber: %w", err)
		}
		out = append(out, s)
	}
	return out, rows.Err()
}

func (r *SubscriberRepo) ListEmails(ctx context.Context) ([]string, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT email FROM subscribers`)
	if err != nil {
		return nil, fmt.Errorf("list subscriber emails: %w", err)
	}
	defer rows.Close()

	var out []string
	for rows.Next() {
		var email string
		if err := rows.Scan(&email); err != nil {
			return nil, fmt.Errorf("scan subscriber email: %w", err)
		}
		out = append(out, email)
	}
	return out, rows.Err()
}

func (r *SubscriberRepo) Delete(ctx context.Context, id string) error {
	// Deleting an id with no row is fine: the end state is the same.
	if _, err := r.db.ExecContext(ctx, `DELETE FROM subscribers WHERE id = $1`, id); err != nil {
		return fmt.Errorf("delete subscriber: %w", err)
	}
	return nil
}
