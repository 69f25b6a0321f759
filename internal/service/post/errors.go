package post

import "errors"

// ErrNotFound is returned when no post exists with the requested id.
var ErrNotFound = errors.New("post not found")
