// Package subscriber implements the newsletter subscriber lifecycle.
//
// Subscribers are captured by the public signup form, listed and removed from
// the admin waitlist screen, and exported as CSV. They are never updated in
// place. The service depends on the Repository interface defined in this
// package; the Postgres implementation lives in repository/postgres/.
package subscriber
