package dispatch

import (
	"context"
	"errors"
	"fmt"
	"log"

	"github.com/glitchowt/backoffice/internal/domain"
	"github.com/glitchowt/backoffice/internal/mail"
	"github.com/glitchowt/backoffice/internal/service/post"
)

// PostSource fetches the post to send.
type PostSource interface {
	Get(ctx context.Context, id string) (*domain.BlogPost, error)
}

// SubscriberSource fetches recipient emails. Backed by the privileged
// database handle so the read is unrestricted.
type SubscriberSource interface {
	ListEmails(ctx context.Context) ([]string, error)
}

// Recorder receives dispatch metrics. Implemented by metrics.Collector.
type Recorder interface {
	RecordDispatchRun(outcome string)
	RecordDispatchedMail()
}

// Dispatch phase errors. The HTTP handler maps these onto the wire contract.
var (
	ErrPostNotFound  = errors.New("blog post not found")
	ErrNoSubscribers = errors.New("no subscribers found")
)

// Function is the dispatch function.
type Function struct {
	posts    PostSource
	subs     SubscriberSource
	dialer   mail.Dialer
	recorder Recorder
}

// NewFunction wires a dispatch function. recorder may be nil.
func NewFunction(posts PostSource, subs SubscriberSource, dialer mail.Dialer, recorder Recorder) *Function {
	return &Function{posts: posts, subs: subs, dialer: dialer, recorder: recorder}
}

// Run executes one dispatch pass: fetch post, fetch subscribers, open a mail
// session, send to each subscriber sequentially, close the session. Returns
// the number of emails handed to the relay. An unknown post fails before any
// subscriber fetch or SMTP dial; any failure after that aborts the remaining
// loop and is returned as-is.
func (f *Function) Run(ctx context.Context, postID string) (int, error) {
	p, err := f.posts.Get(ctx, postID)
	if err != nil {
		if errors.Is(err, post.ErrNotFound) {
			f.record("not_found")
			return 0, ErrPostNotFound
		}
		f.record("failed")
		return 0, fmt.Errorf("fetch post: %w", err)
	}

	emails, err := f.subs.ListEmails(ctx)
	if err != nil || len(emails) == 0 {
		// An empty list and a failed fetch land the same way: there is
		// nothing to send to.
		if err != nil {
			log.Printf("ERROR: dispatch %s: fetch subscribers: %v", postID, err)
		}
		f.record("not_found")
		return 0, ErrNoSubscribers
	}

	session, err := f.dialer.Dial(ctx)
	if err != nil {
		f.record("failed")
		return 0, err
	}
	defer session.Close()

	sent := 0
	for _, to := range emails {
		msg := mail.Message{
			To:      to,
			Subject: p.Title,
			// The stored markup is both the plain and the rich variant,
			// matching what subscribers have always received.
			PlainBody: p.HTMLContent,
			HTMLBody:  p.HTMLContent,
		}
		if err := session.Send(msg); err != nil {
			f.record("failed")
			return sent, err
		}
		sent++
		log.Printf("dispatch %s: sent %q to %s (%d/%d)", postID, p.Title, to, sent, len(emails))
		if f.recorder != nil {
			f.recorder.RecordDispatchedMail()
		}
	}

	f.record("sent")
	return sent, nil
}

func (f *Function) record(outcome string) {
	if f.recorder != nil {
		f.recorder.RecordDispatchRun(outcome)
	}
}
