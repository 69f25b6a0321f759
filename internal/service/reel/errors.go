package reel

import "errors"

// Sentinel errors for the reel service layer.
var (
	// ErrNotFound is returned when no reel exists with the requested id.
	ErrNotFound = errors.New("instagram reel not found")

	// ErrNotEmbeddable is returned when embed markup cannot be derived from
	// a URL because it lacks the /reel/<id> segment or is not an Instagram
	// URL at all. Derivation never silently degrades to a partial result.
	ErrNotEmbeddable = errors.New("url is not an embeddable instagram reel")
)
