package subscriber

import "errors"

// Sentinel errors for the subscriber service layer.
var (
	// ErrAlreadySubscribed is returned when the email already has a row.
	// It is the one store conflict recovered into a specific user-facing
	// message rather than a generic failure.
	ErrAlreadySubscribed = errors.New("email already subscribed")
)
