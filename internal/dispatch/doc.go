// Package dispatch implements the newsletter dispatch function: given a blog
// post id it emails the post to every subscriber over one SMTP session.
//
// The function is a single pass with no persisted intermediate state. There
// is no per-recipient delivery ledger: a failure partway through the loop
// aborts the rest and a retry re-sends to every subscriber, including those
// already reached. Successful sends are logged per recipient so an operator
// can reconstruct progress after a failure.
package dispatch
