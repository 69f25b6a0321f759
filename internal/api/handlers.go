package api

import (
	"encoding/json"
	"net/http"

	"github.com/glitchowt/backoffice/internal/metrics"
	"github.com/glitchowt/backoffice/internal/ratelimit"
	"github.com/glitchowt/backoffice/internal/service/post"
	"github.com/glitchowt/backoffice/internal/service/reel"
	"github.com/glitchowt/backoffice/internal/service/roadmap"
	"github.com/glitchowt/backoffice/internal/service/subscriber"
)

// Handlers contains all HTTP handlers.
type Handlers struct {
	subscribers *subscriber.Service
	posts       *post.Service
	roadmap     *roadmap.Service
	reels       *reel.Service
	limiter     ratelimit.Limiter
	metrics     *metrics.Collector
}

// NewHandlers creates a new Handlers instance.
func NewHandlers(
	subscribers *subscriber.Service,
	posts *post.Service,
	roadmapSvc *roadmap.Service,
	reels *reel.Service,
	limiter ratelimit.Limiter,
	collector *metrics.Collector,
) *Handlers {
	return &Handlers{
		subscribers: subscribers,
		posts:       posts,
		roadmap:     roadmapSvc,
		reels:       reels,
		limiter:     limiter,
		metrics:     collector,
	}
}

// respondJSON writes v as a JSON response with the given status code.
func respondJSON(w http.ResponseWriter, code int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	json.NewEncoder(w).Encode(v)
}

// respondError writes a JSON error body. Only use for 4xx where the message
// is safe to expose; 5xx paths go through respondSafeError.
func respondError(w http.ResponseWriter, code int, msg string) {
	respondJSON(w, code, map[string]string{"error": msg})
}

// respondMessage writes the success envelope mutations return. The admin UI
// maps it onto a confirmation toast.
func respondMessage(w http.ResponseWriter, code int, msg string, extra map[string]interface{}) {
	body := map[string]interface{}{"message": msg}
	for k, v := range extra {
		body[k] = v
	}
	respondJSON(w, code, body)
}

func decodeBody(w http.ResponseWriter, r *http.Request, v interface{}) bool {
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		respondError(w, http.StatusBadRequest, "invalid request body")
		return false
	}
	return true
}
