package subscriber

import (
	"bytes"
	"context"
	"encoding/csv"
	"fmt"
	"log"

	"github.com/glitchowt/backoffice/internal/domain"
)

// Service implements subscriber business logic.
type Service struct {
	repo Repository
}

// NewService creates a subscriber service backed by the given repository.
func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

// Add validates the email and inserts a subscriber. A duplicate email is
// surfaced as ErrAlreadySubscribed so callers can show "already subscribed"
// instead of a generic failure.
func (s *Service) Add(ctx context.Context, email string) (*domain.Subscriber, error) {
	sub, err := domain.NewSubscriber(email)
	if err != nil {
		return nil, err
	}
	if err := s.repo.Create(ctx, sub); err != nil {
		if err != ErrAlreadySubscribed {
			log.Printf("ERROR: add subscriber: %v", err)
		}
		return nil, err
	}
	return sub, nil
}

// List returns all subscribers, newest first.
func (s *Service) List(ctx context.Context) ([]domain.Subscriber, error) {
	return s.repo.List(ctx)
}

// Remove deletes a subscriber by id. Removing an id with no row succeeds.
func (s *Service) Remove(ctx context.Context, id string) error {
	return s.repo.Delete(ctx, id)
}

// ExportCSV renders subscribers as two-column CSV with a header row. Pure
// transformation, no store interaction.
func ExportCSV(subs []domain.Subscriber) ([]byte, error) {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)
	if err := w.Write([]string{"Email", "Joined Date"}); err != nil {
		return nil, fmt.Errorf("write csv header: %w", err)
	}
	for _, sub := range subs {
		if err := w.Write([]string{sub.Email, sub.CreatedAt.Format("2006-01-02 15:04")}); err != nil {
			return nil, fmt.Errorf("write csv row: %w", err)
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
