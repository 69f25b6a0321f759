package reel

import (
	"fmt"
	"net/url"
	"strings"
)

const instagramHost = "instagram.com"

// IsEmbeddable reports whether rawURL points at an Instagram reel that embed
// markup can be derived from: the host must be instagram.com (optionally
// www-prefixed) and the path must contain a /reel/<id> segment. Used to gate
// auto-derivation before falling back to manually supplied markup.
func IsEmbeddable(rawURL string) bool {
	_, err := reelID(rawURL)
	return err == nil
}

// DeriveEmbedCode extracts the reel id from a well-formed reel URL and
// renders the embed iframe. Pure function: the same URL always yields the
// same markup. Any URL without the reel segment returns ErrNotEmbeddable.
func DeriveEmbedCode(rawURL string) (string, error) {
	id, err := reelID(rawURL)
	if err != nil {
		return "", err
	}
	return fmt.Sprintf(
		`<iframe src="https://www.instagram.com/reel/%s/embed" width="320" height="560" frameborder="0" scrolling="no" allowtransparency="true"></iframe>`,
		id,
	), nil
}

// reelID parses rawURL and returns the path segment following /reel/.
func reelID(rawURL string) (string, error) {
	u, err := url.Parse(strings.TrimSpace(rawURL))
	if err != nil {
		return "", ErrNotEmbeddable
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return "", ErrNotEmbeddable
	}
	host := strings.ToLower(u.Hostname())
	if host != instagramHost && host != "www."+instagramHost {
		return "", ErrNotEmbeddable
	}
	segs := strings.Split(strings.Trim(u.Path, "/"), "/")
	for i, seg := range segs {
		if seg == "reel" && i+1 < len(segs) && segs[i+1] != "" {
			return segs[i+1], nil
		}
	}
	return "", ErrNotEmbeddable
}
