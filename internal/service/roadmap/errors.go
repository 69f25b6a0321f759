package roadmap

import "errors"

// ErrNotFound is returned when no feature exists with the requested id.
var ErrNotFound = errors.New("roadmap feature not found")
