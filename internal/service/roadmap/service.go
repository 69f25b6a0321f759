package roadmap

import (
	"context"
	"sync"

	"github.com/glitchowt/backoffice/internal/domain"
)

// Service implements roadmap business logic. It owns the in-memory snapshot
// of the board; mutations reconcile the snapshot against the stored result of
// the operation rather than refetching.
type Service struct {
	repo Repository

	mu       sync.RWMutex
	features []domain.RoadmapFeature // newest first, mirrors store order
	loaded   bool
}

// NewService creates a roadmap service backed by the given repository.
func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

// Refresh refetches the full feature list and replaces the snapshot.
func (s *Service) Refresh(ctx context.Context) ([]domain.RoadmapFeature, error) {
	features, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	s.mu.Lock()
	s.features = features
	s.loaded = true
	s.mu.Unlock()
	return s.snapshot(), nil
}

// List returns the current snapshot, loading it on first use.
func (s *Service) List(ctx context.Context) ([]domain.RoadmapFeature, error) {
	s.mu.RLock()
	loaded := s.loaded
	s.mu.RUnlock()
	if !loaded {
		return s.Refresh(ctx)
	}
	return s.snapshot(), nil
}

// Buckets partitions the current snapshot by status into the fixed display
// buckets. The union of buckets equals the snapshot and buckets are disjoint.
func (s *Service) Buckets(ctx context.Context) (map[domain.FeatureStatus][]domain.RoadmapFeature, error) {
	features, err := s.List(ctx)
	if err != nil {
		return nil, err
	}
	return domain.PartitionByStatus(features), nil
}

// Create validates and inserts a feature, then prepends it to the snapshot.
func (s *Service) Create(ctx context.Context, name, description string, status domain.FeatureStatus, icon string, priority domain.FeaturePriority) (*domain.RoadmapFeature, error) {
	f, err := domain.NewRoadmapFeature(name, description, status, icon, priority)
	if err != nil {
		return nil, err
	}
	if err := s.repo.Create(ctx, f); err != nil {
		return nil, err
	}
	s.mu.Lock()
	if s.loaded {
		s.features = append([]domain.RoadmapFeature{*f}, s.features...)
	}
	s.mu.Unlock()
	return f, nil
}

// Update applies a partial patch and reconciles the snapshot entry.
func (s *Service) Update(ctx context.Context, id string, patch domain.RoadmapFeaturePatch) (*domain.RoadmapFeature, error) {
	if patch.Status != nil && !patch.Status.Valid() {
		return nil, domain.ErrInvalidStatus
	}
	if patch.Priority != nil && !patch.Priority.Valid() {
		return nil, domain.ErrInvalidPriority
	}
	updated, err := s.repo.Update(ctx, id, patch)
	if err != nil {
		return nil, err
	}
	s.reconcile(*updated)
	return updated, nil
}

// UpdateStatus transitions only the status field. It exists as a distinct
// operation because reclassification is the primary board action; the patch
// must not touch other fields.
func (s *Service) UpdateStatus(ctx context.Context, id string, status domain.FeatureStatus) (*domain.RoadmapFeature, error) {
	if !status.Valid() {
		return nil, domain.ErrInvalidStatus
	}
	updated, err := s.repo.Update(ctx, id, domain.RoadmapFeaturePatch{Status: &status})
	if err != nil {
		return nil, err
	}
	s.reconcile(*updated)
	return updated, nil
}

// Delete removes a feature and drops it from the snapshot.
func (s *Service) Delete(ctx context.Context, id string) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}
	s.mu.Lock()
	for i, f := range s.features {
		if f.ID == id {
			s.features = append(s.features[:i], s.features[i+1:]...)
			break
		}
	}
	s.mu.Unlock()
	return nil
}

func (s *Service) reconcile(updated domain.RoadmapFeature) {
	s.mu.Lock()
	for i, f := range s.features {
		if f.ID == updated.ID {
			s.features[i] = updated
			break
		}
	}
	s.mu.Unlock()
}

func (s *Service) snapshot() []domain.RoadmapFeature {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]domain.RoadmapFeature, len(s.features))
	copy(out, s.features)
	return out
}
