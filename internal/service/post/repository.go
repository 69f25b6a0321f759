package post

import (
	"context"

	"github.com/glitchowt/backoffice/internal/domain"
)

// ListFilter controls filtering for post lists. Zero-value fields are not
// applied; both set means both predicates must hold.
type ListFilter struct {
	Category    string // exact match
	TitleSearch string // case-insensitive substring on title
}

// Page is an offset-based page request. Page numbers start at 1; page p with
// size s covers rows [(p-1)*s, p*s-1] of the filtered, date-descending list.
type Page struct {
	Number int
	Size   int
}

// Offset returns the row offset of the page's first element.
func (p Page) Offset() int {
	n := p.Number
	if n < 1 {
		n = 1
	}
	return (n - 1) * p.Size
}

// Repository defines the data access contract for blog posts.
// Implementations must be safe for concurrent use.
type Repository interface {
	// List returns one page of posts ordered by date DESC along with the
	// total count of rows matching the filter. A page past the end returns
	// an empty slice with the same total.
	List(ctx context.Context, f ListFilter, p Page) ([]domain.BlogPost, int, error)

	// Get returns a single post. Returns ErrNotFound if it doesn't exist.
	Get(ctx context.Context, id string) (*domain.BlogPost, error)

	// Create inserts a new post and fills in the stored row.
	Create(ctx context.Context, post *domain.BlogPost) error

	// Update applies a partial patch. Returns ErrNotFound for an absent id.
	Update(ctx context.Context, id string, patch domain.BlogPostPatch) (*domain.BlogPost, error)

	// Delete removes a post. Returns ErrNotFound for an absent id.
	Delete(ctx context.Context, id string) error
}
