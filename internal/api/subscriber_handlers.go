package api

import (
	"errors"
	"fmt"
	"net"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/glitchowt/backoffice/internal/domain"
	"github.com/glitchowt/backoffice/internal/service/subscriber"
)

// Subscribe handles the public signup form.
func (h *Handlers) Subscribe(w http.ResponseWriter, r *http.Request) {
	if h.limiter != nil && !h.limiter.Allow(r.Context(), clientIP(r)) {
		respondError(w, http.StatusTooManyRequests, "too many signup attempts, try again later")
		return
	}

	var body struct {
		Email string `json:"email"`
	}
	if !decodeBody(w, r, &body) {
		return
	}

	sub, err := h.subscribers.Add(r.Context(), body.Email)
	switch {
	case err == nil:
		if h.metrics != nil {
			h.metrics.RecordSubscribe()
		}
		respondMessage(w, http.StatusCreated, "Subscribed", map[string]interface{}{"subscriber": sub})
	case errors.Is(err, domain.ErrInvalidEmail):
		respondError(w, http.StatusBadRequest, "a valid email address is required")
	case errors.Is(err, subscriber.ErrAlreadySubscribed):
		if h.metrics != nil {
			h.metrics.RecordDuplicateSubscribe()
		}
		respondError(w, http.StatusConflict, "You're already subscribed!")
	default:
		respondSafeError(w, http.StatusInternalServerError, err, "failed to subscribe")
	}
}

// ListSubscribers returns the full waitlist, newest first.
func (h *Handlers) ListSubscribers(w http.ResponseWriter, r *http.Request) {
	subs, err := h.subscribers.List(r.Context())
	if err != nil {
		respondSafeError(w, http.StatusInternalServerError, err, "failed to load subscribers")
		return
	}
	if subs == nil {
		subs = []domain.Subscriber{}
	}
	respondJSON(w, http.StatusOK, map[string]interface{}{"data": subs, "total": len(subs)})
}

// DeleteSubscriber removes one waitlist entry.
func (h *Handlers) DeleteSubscriber(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if err := h.subscribers.Remove(r.Context(), id); err != nil {
		respondSafeError(w, http.StatusInternalServerError, err, "failed to delete subscriber")
		return
	}
	respondMessage(w, http.StatusOK, "Subscriber deleted", nil)
}

// ExportSubscribers streams the waitlist as a CSV download.
func (h *Handlers) ExportSubscribers(w http.ResponseWriter, r *http.Request) {
	subs, err := h.subscribers.List(r.Context())
	if err != nil {
		respondSafeError(w, http.StatusInternalServerError, err, "failed to load subscribers")
		return
	}
	data, err := subscriber.ExportCSV(subs)
	if err != nil {
		respondSafeError(w, http.StatusInternalServerError, err, "failed to export subscribers")
		return
	}
	filename := fmt.Sprintf("glitchowt-waitlist-%s.csv", time.Now().Format("2006-01-02"))
	w.Header().Set("Content-Type", "text/csv")
	w.Header().Set("Content-Disposition", `attachment; filename="`+filename+`"`)
	w.Write(data)
}

// clientIP extracts the client address for rate limiting. The RealIP
// middleware has already folded X-Forwarded-For into RemoteAddr.
func clientIP(r *http.Request) string {
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}
