package domain

import (
	"errors"
	"strings"
	"time"
)

// KnownCategories is the recognized set of blog post categories. The store
// does not enforce membership; the UI offers these as the picker options.
var KnownCategories = []string{
	"The Friday Five",
	"Frameworks & Tools",
	"Learning & Growth",
	"Mindset & Life Lessons",
}

// KnownCategory reports whether cat is one of the recognized categories.
func KnownCategory(cat string) bool {
	for _, c := range KnownCategories {
		if c == cat {
			return true
		}
	}
	return false
}

// BlogPost represents a newsletter/blog entry authored in the admin UI.
// HTMLContent is stored as final markup and sent to subscribers verbatim.
type BlogPost struct {
	ID          string    `json:"id" db:"id"`
	Title       string    `json:"title" db:"title"`
	Date        time.Time `json:"date" db:"date"`
	Category    string    `json:"category" db:"category"`
	HTMLContent string    `json:"html_content" db:"html_content"`
	CreatedAt   time.Time `json:"created_at" db:"created_at"`
	UpdatedAt   time.Time `json:"updated_at" db:"updated_at"`
}

// Post field validation errors.
var (
	ErrMissingTitle   = errors.New("title is required")
	ErrMissingDate    = errors.New("date is required")
	ErrMissingContent = errors.New("html content is required")
)

// NewBlogPost validates required fields and returns a post ready for insert.
func NewBlogPost(title string, date time.Time, category, htmlContent string) (*BlogPost, error) {
	title = strings.TrimSpace(title)
	if title == "" {
		return nil, ErrMissingTitle
	}
	if date.IsZero() {
		return nil, ErrMissingDate
	}
	if strings.TrimSpace(htmlContent) == "" {
		return nil, ErrMissingContent
	}
	return &BlogPost{
		Title:       title,
		Date:        date,
		Category:    category,
		HTMLContent: htmlContent,
	}, nil
}

// BlogPostPatch carries a partial update. Nil fields are left untouched.
type BlogPostPatch struct {
	Title       *string    `json:"title"`
	Date        *time.Time `json:"date"`
	Category    *string    `json:"category"`
	HTMLContent *string    `json:"html_content"`
}

// Empty reports whether the patch changes nothing.
func (p BlogPostPatch) Empty() bool {
	return p.Title == nil && p.Date == nil && p.Category == nil && p.HTMLContent == nil
}
