package domain

import (
	"errors"
	"strings"
	"time"
)

// ErrMissingURL is returned when a reel is created without an Instagram URL.
var ErrMissingURL = errors.New("instagram url is required")

// InstagramReel represents an embedded reel shown in the social wall carousel.
// EmbedCode may be supplied by hand or derived from InstagramURL; when empty
// the UI falls back to a plain link.
type InstagramReel struct {
	ID           string    `json:"id" db:"id"`
	Title        string    `json:"title" db:"title"`
	InstagramURL string    `json:"instagram_url" db:"instagram_url"`
	EmbedCode    string    `json:"embed_code,omitempty" db:"embed_code"`
	IsFeatured   bool      `json:"is_featured" db:"is_featured"`
	DisplayOrder int       `json:"display_order" db:"display_order"`
	CreatedAt    time.Time `json:"created_at" db:"created_at"`
	UpdatedAt    time.Time `json:"updated_at" db:"updated_at"`
}

// NewInstagramReel validates required fields and returns a reel ready for insert.
func NewInstagramReel(title, instagramURL, embedCode string, isFeatured bool, displayOrder int) (*InstagramReel, error) {
	title = strings.TrimSpace(title)
	if title == "" {
		return nil, ErrMissingTitle
	}
	instagramURL = strings.TrimSpace(instagramURL)
	if instagramURL == "" {
		return nil, ErrMissingURL
	}
	return &InstagramReel{
		Title:        title,
		InstagramURL: instagramURL,
		EmbedCode:    embedCode,
		IsFeatured:   isFeatured,
		DisplayOrder: displayOrder,
	}, nil
}

// InstagramReelPatch carries a partial update. Nil fields are left untouched.
type InstagramReelPatch struct {
	Title        *string `json:"title"`
	InstagramURL *string `json:"instagram_url"`
	EmbedCode    *string `json:"embed_code"`
	IsFeatured   *bool   `json:"is_featured"`
	DisplayOrder *int    `json:"display_order"`
}

// Empty reports whether the patch changes nothing.
func (p InstagramReelPatch) Empty() bool {
	return p.Title == nil && p.InstagramURL == nil && p.EmbedCode == nil &&
		p.IsFeatured == nil && p.DisplayOrder == nil
}
