package roadmap

import (
	"context"

	"github.com/glitchowt/backoffice/internal/domain"
)

// Repository defines the data access contract for roadmap features.
// Implementations must be safe for concurrent use.
type Repository interface {
	// List returns all features ordered by created_at DESC.
	List(ctx context.Context) ([]domain.RoadmapFeature, error)

	// Create inserts a new feature and fills in the stored row.
	Create(ctx context.Context, f *domain.RoadmapFeature) error

	// Update applies a partial patch and returns the stored result.
	// Returns ErrNotFound for an absent id.
	Update(ctx context.Context, id string, patch domain.RoadmapFeaturePatch) (*domain.RoadmapFeature, error)

	// Delete removes a feature. Returns ErrNotFound for an absent id.
	Delete(ctx context.Context, id string) error
}
