package dispatch

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
)

// Handler exposes the dispatch function over HTTP with the wire contract the
// admin UI was built against: plain-text bodies, permissive CORS, and the
// underlying error message forwarded verbatim on 500s. That forwarding is a
// diagnostic convenience acceptable only because deployment restricts this
// endpoint to the admin surface.
type Handler struct {
	fn *Function
}

// NewHandler wraps the dispatch function in its HTTP contract.
func NewHandler(fn *Function) *Handler { return &Handler{fn: fn} }

func setCORSHeaders(w http.ResponseWriter) {
	w.Header().Set("Access-Control-Allow-Origin", "*")
	w.Header().Set("Access-Control-Allow-Methods", "POST, OPTIONS")
	w.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization")
}

// ServeHTTP handles POST {"postId": ...} and the OPTIONS preflight.
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	setCORSHeaders(w)

	if r.Method == http.MethodOptions {
		w.WriteHeader(http.StatusNoContent)
		return
	}
	if r.Method != http.MethodPost {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}

	var body struct {
		PostID string `json:"postId"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil || body.PostID == "" {
		plainText(w, http.StatusBadRequest, "Missing postId")
		return
	}

	_, err := h.fn.Run(r.Context(), body.PostID)
	switch {
	case err == nil:
		plainText(w, http.StatusOK, "Newsletter sent to all subscribers!")
	case errors.Is(err, ErrPostNotFound):
		plainText(w, http.StatusNotFound, "Blog post not found")
	case errors.Is(err, ErrNoSubscribers):
		plainText(w, http.StatusNotFound, "No subscribers found")
	default:
		plainText(w, http.StatusInternalServerError, fmt.Sprintf("Error: %s", err.Error()))
	}
}

func plainText(w http.ResponseWriter, code int, msg string) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(code)
	w.Write([]byte(msg))
}
