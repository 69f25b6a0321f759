package subscriber

import (
	"context"

	"github.com/glitchowt/backoffice/internal/domain"
)

// Repository defines the data access contract for subscribers.
// Implementations must be safe for concurrent use.
type Repository interface {
	// Create inserts a new subscriber and fills in the stored row (id,
	// created_at). Returns ErrAlreadySubscribed when the email has a row.
	Create(ctx context.Context, sub *domain.Subscriber) error

	// List returns all subscribers ordered by created_at DESC.
	List(ctx context.Context) ([]domain.Subscriber, error)

	// ListEmails returns all subscriber email addresses, unordered.
	// Used by the dispatch function, which needs nothing else.
	ListEmails(ctx context.Context) ([]string, error)

	// Delete removes a subscriber by id. Deleting an absent row is not an
	// error; the operation is idempotent.
	Delete(ctx context.Context, id string) error
}
