package reel

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/glitchowt/backoffice/internal/domain"
)

type stubRepo struct {
	created *domain.InstagramReel
	patched *domain.InstagramReelPatch
}

func (r *stubRepo) List(ctx context.Context) ([]domain.InstagramReel, error) { return nil, nil }

func (r *stubRepo) Create(ctx context.Context, reel *domain.InstagramReel) error {
	r.created = reel
	reel.ID = "r-1"
	return nil
}

func (r *stubRepo) Update(ctx context.Context, id string, patch domain.InstagramReelPatch) (*domain.InstagramReel, error) {
	r.patched = &patch
	return &domain.InstagramReel{ID: id, EmbedCode: deref(patch.EmbedCode)}, nil
}

func (r *stubRepo) Delete(ctx context.Context, id string) error { return nil }

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

func TestCreateDerivesEmbedCode(t *testing.T) {
	repo := &stubRepo{}
	svc := NewService(repo)

	r, err := svc.Create(context.Background(), "Launch teaser", "https://www.instagram.com/reel/Cxyz123/", "", true, 1)
	require.NoError(t, err)
	assert.Contains(t, r.EmbedCode, "/reel/Cxyz123/embed")
}

func TestCreateSanitizesManualEmbed(t *testing.T) {
	repo := &stubRepo{}
	svc := NewService(repo)

	dirty := `<blockquote class="instagram-media" data-instgrm-permalink="https://www.instagram.com/reel/Cxyz123/"><script>alert(1)</script><a href="https://www.instagram.com/reel/Cxyz123/">watch</a></blockquote>`
	r, err := svc.Create(context.Background(), "Launch teaser", "https://www.instagram.com/reel/Cxyz123/", dirty, false, 0)
	require.NoError(t, err)
	assert.NotContains(t, r.EmbedCode, "<script")
	assert.NotContains(t, r.EmbedCode, "alert(1)")
	assert.Contains(t, r.EmbedCode, "instagram-media")
	assert.Contains(t, r.EmbedCode, `href="https://www.instagram.com/reel/Cxyz123/"`)
}

func TestCreateKeepsEmptyEmbedForPlainURL(t *testing.T) {
	repo := &stubRepo{}
	svc := NewService(repo)

	// A profile URL has no reel segment; the carousel shows a link card.
	r, err := svc.Create(context.Background(), "Behind the scenes", "https://www.instagram.com/glitchowt/", "", false, 2)
	require.NoError(t, err)
	assert.Empty(t, r.EmbedCode)
}

func TestCreateRequiresFields(t *testing.T) {
	svc := NewService(&stubRepo{})

	_, err := svc.Create(context.Background(), "", "https://www.instagram.com/reel/x/", "", false, 0)
	assert.ErrorIs(t, err, domain.ErrMissingTitle)

	_, err = svc.Create(context.Background(), "Title", "", "", false, 0)
	assert.ErrorIs(t, err, domain.ErrMissingURL)
}

func TestUpdateSanitizesEmbedPatch(t *testing.T) {
	repo := &stubRepo{}
	svc := NewService(repo)

	dirty := `<iframe src="https://www.instagram.com/reel/Cxyz123/embed" onload="alert(1)" width="320" height="560"></iframe>`
	_, err := svc.Update(context.Background(), "r-1", domain.InstagramReelPatch{EmbedCode: &dirty})
	require.NoError(t, err)
	require.NotNil(t, repo.patched.EmbedCode)
	assert.NotContains(t, *repo.patched.EmbedCode, "onload")
	assert.Contains(t, *repo.patched.EmbedCode, `src="https://www.instagram.com/reel/Cxyz123/embed"`)
}
