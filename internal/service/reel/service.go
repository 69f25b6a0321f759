package reel

import (
	"context"

	"github.com/microcosm-cc/bluemonday"

	"github.com/glitchowt/backoffice/internal/domain"
)

// Service implements reel business logic.
type Service struct {
	repo   Repository
	policy *bluemonday.Policy
}

// NewService creates a reel service backed by the given repository.
func NewService(repo Repository) *Service {
	return &Service{repo: repo, policy: embedPolicy()}
}

// embedPolicy allows only the element/attribute shapes Instagram's own embed
// snippets use: the instagram-media blockquote and the /embed iframe.
// Everything else, scripts and event handlers included, is stripped.
func embedPolicy() *bluemonday.Policy {
	p := bluemonday.NewPolicy()
	p.AllowElements("blockquote", "iframe", "a", "p", "div")
	p.AllowAttrs("class", "data-instgrm-permalink", "data-instgrm-version", "data-instgrm-captioned", "style").OnElements("blockquote")
	p.AllowAttrs("src", "width", "height", "frameborder", "scrolling", "allowtransparency").OnElements("iframe")
	p.AllowAttrs("href", "target", "rel").OnElements("a")
	p.AllowAttrs("style").OnElements("div", "p")
	p.AllowURLSchemes("https")
	return p
}

// List returns all reels in carousel order.
func (s *Service) List(ctx context.Context) ([]domain.InstagramReel, error) {
	return s.repo.List(ctx)
}

// Create validates and inserts a reel. When no embed markup is supplied and
// the URL is embeddable, the markup is derived; hand-supplied markup is
// sanitized before storage. A URL that is neither embeddable nor accompanied
// by manual markup is stored with an empty embed code (the carousel falls
// back to a link card).
func (s *Service) Create(ctx context.Context, title, instagramURL, embedCode string, isFeatured bool, displayOrder int) (*domain.InstagramReel, error) {
	r, err := domain.NewInstagramReel(title, instagramURL, embedCode, isFeatured, displayOrder)
	if err != nil {
		return nil, err
	}
	if r.EmbedCode == "" && IsEmbeddable(r.InstagramURL) {
		code, err := DeriveEmbedCode(r.InstagramURL)
		if err != nil {
			return nil, err
		}
		r.EmbedCode = code
	} else if r.EmbedCode != "" {
		r.EmbedCode = s.policy.Sanitize(r.EmbedCode)
	}
	if err := s.repo.Create(ctx, r); err != nil {
		return nil, err
	}
	return r, nil
}

// Update applies a partial patch, sanitizing any new embed markup.
func (s *Service) Update(ctx context.Context, id string, patch domain.InstagramReelPatch) (*domain.InstagramReel, error) {
	if patch.EmbedCode != nil && *patch.EmbedCode != "" {
		clean := s.policy.Sanitize(*patch.EmbedCode)
		patch.EmbedCode = &clean
	}
	return s.repo.Update(ctx, id, patch)
}

// Delete removes a reel.
func (s *Service) Delete(ctx context.Context, id string) error {
	return s.repo.Delete(ctx, id)
}
