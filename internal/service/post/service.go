package post

import (
	"context"
	"errors"
	"log"
	"time"

	"github.com/glitchowt/backoffice/internal/domain"
)

// ErrListFailed is what callers see when the store fails during a list.
// The underlying cause is logged, never returned to the client.
var ErrListFailed = errors.New("failed to load posts")

// DefaultPageSize matches the public blog list page.
const DefaultPageSize = 6

// Service implements blog post business logic.
type Service struct {
	repo Repository
}

// NewService creates a post service backed by the given repository.
func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

// List returns one page of posts plus the total matching count. Store errors
// collapse into ErrListFailed so internal detail never reaches the caller.
func (s *Service) List(ctx context.Context, f ListFilter, p Page) ([]domain.BlogPost, int, error) {
	if p.Size <= 0 {
		p.Size = DefaultPageSize
	}
	posts, total, err := s.repo.List(ctx, f, p)
	if err != nil {
		log.Printf("ERROR: list posts: %v", err)
		return nil, 0, ErrListFailed
	}
	return posts, total, nil
}

// Get returns a single post or ErrNotFound.
func (s *Service) Get(ctx context.Context, id string) (*domain.BlogPost, error) {
	return s.repo.Get(ctx, id)
}

// Create validates required fields and inserts a post.
func (s *Service) Create(ctx context.Context, title string, date time.Time, category, htmlContent string) (*domain.BlogPost, error) {
	p, err := domain.NewBlogPost(title, date, category, htmlContent)
	if err != nil {
		return nil, err
	}
	if err := s.repo.Create(ctx, p); err != nil {
		return nil, err
	}
	return p, nil
}

// Update applies a partial patch and returns the stored result.
func (s *Service) Update(ctx context.Context, id string, patch domain.BlogPostPatch) (*domain.BlogPost, error) {
	if patch.Empty() {
		return s.repo.Get(ctx, id)
	}
	return s.repo.Update(ctx, id, patch)
}

// Delete removes a post.
func (s *Service) Delete(ctx context.Context, id string) error {
	return s.repo.Delete(ctx, id)
}
