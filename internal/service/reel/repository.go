package reel

import (
	"context"

	"github.com/glitchowt/backoffice/internal/domain"
)

// Repository defines the data access contract for Instagram reels.
// Implementations must be safe for concurrent use.
type Repository interface {
	// List returns all reels ordered by display_order ASC, created_at DESC.
	List(ctx context.Context) ([]domain.InstagramReel, error)

	// Create inserts a new reel and fills in the stored row.
	Create(ctx context.Context, r *domain.InstagramReel) error

	// Update applies a partial patch and returns the stored result.
	// Returns ErrNotFound for an absent id.
	Update(ctx context.Context, id string, patch domain.InstagramReelPatch) (*domain.InstagramReel, error)

	// Delete removes a reel. Returns ErrNotFound for an absent id.
	Delete(ctx context.Context, id string) error
}
