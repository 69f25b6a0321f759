package domain

import (
	"errors"
	"strings"
	"time"
)

// Subscriber represents a single newsletter recipient.
type Subscriber struct {
	ID        string    `json:"id" db:"id"`
	Email     string    `json:"email" db:"email"`
	CreatedAt time.Time `json:"created_at" db:"created_at"`
}

// ErrInvalidEmail is returned when an email fails syntax validation.
var ErrInvalidEmail = errors.New("invalid email address")

// NewSubscriber validates the email and returns a Subscriber ready for insert.
// The ID and CreatedAt fields are assigned by the store.
func NewSubscriber(email string) (*Subscriber, error) {
	email = strings.TrimSpace(email)
	if !ValidEmail(email) {
		return nil, ErrInvalidEmail
	}
	return &Subscriber{Email: email}, nil
}

// ValidEmail performs a basic syntactic check on an email address.
// It is intentionally loose: the store's unique index and the SMTP relay are
// the real arbiters, this only blocks obviously broken input before a round trip.
func ValidEmail(email string) bool {
	if len(email) < 3 || len(email) > 254 {
		return false
	}
	at := strings.Index(email, "@")
	if at < 1 || at != strings.LastIndex(email, "@") {
		return false
	}
	local, dom := email[:at], email[at+1:]
	if len(local) > 64 || dom == "" {
		return false
	}
	if strings.ContainsAny(email, " \t\r\n") {
		return false
	}
	dot := strings.LastIndex(dom, ".")
	return dot > 0 && dot < len(dom)-1
}
