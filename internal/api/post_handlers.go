package api

import (
	"errors"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/glitchowt/backoffice/internal/domain"
	"github.com/glitchowt/backoffice/internal/service/post"
)

const dateLayout = "2006-01-02"

// ListPosts returns one page of posts with the total matching count.
// Query params: category (exact), search (title substring), page, limit.
func (h *Handlers) ListPosts(w http.ResponseWriter, r *http.Request) {
	params := ParsePagination(r, post.DefaultPageSize, 50)
	filter := post.ListFilter{
		Category:    r.URL.Query().Get("category"),
		TitleSearch: r.URL.Query().Get("search"),
	}

	posts, total, err := h.posts.List(r.Context(), filter, post.Page{Number: params.Page, Size: params.Limit})
	if err != nil {
		// The service already logged the cause; ErrListFailed is the
		// caller-safe condition.
		respondError(w, http.StatusInternalServerError, err.Error())
		return
	}
	if posts == nil {
		posts = []domain.BlogPost{}
	}
	respondJSON(w, http.StatusOK, NewPaginatedResponse(posts, params, total))
}

// GetPost returns a single post or an explicit not-found state.
func (h *Handlers) GetPost(w http.ResponseWriter, r *http.Request) {
	p, err := h.posts.Get(r.Context(), chi.URLParam(r, "id"))
	switch {
	case err == nil:
		respondJSON(w, http.StatusOK, p)
	case errors.Is(err, post.ErrNotFound):
		respondError(w, http.StatusNotFound, "post not found")
	default:
		respondSafeError(w, http.StatusInternalServerError, err, "failed to load post")
	}
}

type postInput struct {
	Title       string `json:"title"`
	Date        string `json:"date"`
	Category    string `json:"category"`
	HTMLContent string `json:"html_content"`
}

// CreatePost uploads a new newsletter post.
func (h *Handlers) CreatePost(w http.ResponseWriter, r *http.Request) {
	var in postInput
	if !decodeBody(w, r, &in) {
		return
	}
	date, err := time.Parse(dateLayout, in.Date)
	if err != nil {
		respondError(w, http.StatusBadRequest, "date must be YYYY-MM-DD")
		return
	}

	p, err := h.posts.Create(r.Context(), in.Title, date, in.Category, in.HTMLContent)
	if err != nil {
		if isValidationError(err) {
			respondError(w, http.StatusBadRequest, err.Error())
			return
		}
		respondSafeError(w, http.StatusInternalServerError, err, "failed to save newsletter")
		return
	}
	respondMessage(w, http.StatusCreated, "Newsletter uploaded", map[string]interface{}{"post": p})
}

// UpdatePost applies a partial patch to an existing post.
func (h *Handlers) UpdatePost(w http.ResponseWriter, r *http.Request) {
	var in struct {
		Title       *string `json:"title"`
		Date        *string `json:"date"`
		Category    *string `json:"category"`
		HTMLContent *string `json:"html_content"`
	}
	if !decodeBody(w, r, &in) {
		return
	}

	patch := domain.BlogPostPatch{
		Title:       in.Title,
		Category:    in.Category,
		HTMLContent: in.HTMLContent,
	}
	if in.Date != nil {
		date, err := time.Parse(dateLayout, *in.Date)
		if err != nil {
			respondError(w, http.StatusBadRequest, "date must be YYYY-MM-DD")
			return
		}
		patch.Date = &date
	}

	p, err := h.posts.Update(r.Context(), chi.URLParam(r, "id"), patch)
	switch {
	case err == nil:
		respondMessage(w, http.StatusOK, "Newsletter updated", map[string]interface{}{"post": p})
	case errors.Is(err, post.ErrNotFound):
		respondError(w, http.StatusNotFound, "post not found")
	default:
		respondSafeError(w, http.StatusInternalServerError, err, "failed to save newsletter")
	}
}

// DeletePost removes a post.
func (h *Handlers) DeletePost(w http.ResponseWriter, r *http.Request) {
	err := h.posts.Delete(r.Context(), chi.URLParam(r, "id"))
	switch {
	case err == nil:
		respondMessage(w, http.StatusOK, "Newsletter deleted", nil)
	case errors.Is(err, post.ErrNotFound):
		respondError(w, http.StatusNotFound, "post not found")
	default:
		respondSafeError(w, http.StatusInternalServerError, err, "failed to delete newsletter")
	}
}

func isValidationError(err error) bool {
	return errors.Is(err, domain.ErrMissingTitle) ||
		errors.Is(err, domain.ErrMissingDate) ||
		errors.Is(err, domain.ErrMissingContent) ||
		errors.Is(err, domain.ErrMissingName) ||
		errors.Is(err, domain.ErrMissingURL) ||
		errors.Is(err, domain.ErrInvalidStatus) ||
		errors.Is(err, domain.ErrInvalidPriority)
}
