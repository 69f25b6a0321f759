package post

import (
	"context"
	"errors"
	"sort"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/glitchowt/backoffice/internal/domain"
)

type memRepo struct {
	posts   []domain.BlogPost
	listErr error
}

func (m *memRepo) List(ctx context.Context, f ListFilter, p Page) ([]domain.BlogPost, int, error) {
	if m.listErr != nil {
		return nil, 0, m.listErr
	}
	var matched []domain.BlogPost
	for _, post := range m.posts {
		if f.Category != "" && post.Category != f.Category {
			continue
		}
		if f.TitleSearch != "" && !strings.Contains(strings.ToLower(post.Title), strings.ToLower(f.TitleSearch)) {
			continue
		}
		matched = append(matched, post)
	}
	sort.Slice(matched, func(i, j int) bool { return matched[i].Date.After(matched[j].Date) })

	total := len(matched)
	off := p.Offset()
	if off >= total {
		return []domain.BlogPost{}, total, nil
	}
	end := off + p.Size
	if end > total {
		end = total
	}
	return matched[off:end], total, nil
}

func (m *memRepo) Get(ctx context.Context, id string) (*domain.BlogPost, error) {
	for i := range m.posts {
		if m.posts[i].ID == id {
			return &m.posts[i], nil
		}
	}
	return nil, ErrNotFound
}

func (m *memRepo) Create(ctx context.Context, post *domain.BlogPost) error {
	post.ID = "p-new"
	m.posts = append(m.posts, *post)
	return nil
}

func (m *memRepo) Update(ctx context.Context, id string, patch domain.BlogPostPatch) (*domain.BlogPost, error) {
	for i := range m.posts {
		if m.posts[i].ID != id {
			continue
		}
		if patch.Title != nil {
			m.posts[i].Title = *patch.Title
		}
		if patch.Date != nil {
			m.posts[i].Date = *patch.Date
		}
		if patch.Category != nil {
			m.posts[i].Category = *patch.Category
		}
		if patch.HTMLContent != nil {
			m.posts[i].HTMLContent = *patch.HTMLContent
		}
		return &m.posts[i], nil
	}
	return nil, ErrNotFound
}

func (m *memRepo) Delete(ctx context.Context, id string) error {
	for i := range m.posts {
		if m.posts[i].ID == id {
			m.posts = append(m.posts[:i], m.posts[i+1:]...)
			return nil
		}
	}
	return ErrNotFound
}

func seedPosts(n int) []domain.BlogPost {
	posts := make([]domain.BlogPost, 0, n)
	for i := 0; i < n; i++ {
		cat := "The Friday Five"
		if i%2 == 1 {
			cat = "Frameworks & Tools"
		}
		posts = append(posts, domain.BlogPost{
			ID:          string(rune('a' + i)),
			Title:       "Post " + string(rune('A'+i)),
			Date:        time.Date(2025, 1, 1+i, 0, 0, 0, 0, time.UTC),
			Category:    cat,
			HTMLContent: "<p>body</p>",
		})
	}
	return posts
}

func TestListPagination(t *testing.T) {
	repo := &memRepo{posts: seedPosts(8)}
	svc := NewService(repo)

	// First page of 6 from 8 posts, newest first.
	page1, total, err := svc.List(context.Background(), ListFilter{}, Page{Number: 1, Size: 6})
	require.NoError(t, err)
	assert.Equal(t, 8, total)
	require.Len(t, page1, 6)
	assert.True(t, page1[0].Date.After(page1[5].Date))

	// Remainder page.
	page2, total, err := svc.List(context.Background(), ListFilter{}, Page{Number: 2, Size: 6})
	require.NoError(t, err)
	assert.Equal(t, 8, total)
	assert.Len(t, page2, 2)

	// Past the end: empty, same total.
	page3, total, err := svc.List(context.Background(), ListFilter{}, Page{Number: 3, Size: 6})
	require.NoError(t, err)
	assert.Equal(t, 8, total)
	assert.Empty(t, page3)
}

func TestListDefaultsPageSize(t *testing.T) {
	repo := &memRepo{posts: seedPosts(8)}
	svc := NewService(repo)

	page, _, err := svc.List(context.Background(), ListFilter{}, Page{Number: 1})
	require.NoError(t, err)
	assert.Len(t, page, DefaultPageSize)
}

func TestListFilters(t *testing.T) {
	repo := &memRepo{posts: seedPosts(8)}
	svc := NewService(repo)

	byCat, total, err := svc.List(context.Background(), ListFilter{Category: "Frameworks & Tools"}, Page{Number: 1, Size: 10})
	require.NoError(t, err)
	assert.Equal(t, 4, total)
	for _, p := range byCat {
		assert.Equal(t, "Frameworks & Tools", p.Category)
	}

	// Search is case-insensitive and composes with the category filter.
	both, total, err := svc.List(context.Background(), ListFilter{Category: "Frameworks & Tools", TitleSearch: "post b"}, Page{Number: 1, Size: 10})
	require.NoError(t, err)
	assert.Equal(t, 1, total)
	require.Len(t, both, 1)
	assert.Equal(t, "Post B", both[0].Title)
}

func TestListCollapsesStoreErrors(t *testing.T) {
	repo := &memRepo{listErr: errors.New("pq: relation \"blog_posts\" does not exist")}
	svc := NewService(repo)

	_, _, err := svc.List(context.Background(), ListFilter{}, Page{Number: 1, Size: 6})
	assert.ErrorIs(t, err, ErrListFailed)
	assert.NotContains(t, err.Error(), "pq:", "store detail must not leak")
}

func TestUpdateEmptyPatchReturnsCurrent(t *testing.T) {
	repo := &memRepo{posts: seedPosts(1)}
	svc := NewService(repo)

	got, err := svc.Update(context.Background(), "a", domain.BlogPostPatch{})
	require.NoError(t, err)
	assert.Equal(t, "Post A", got.Title)
}
