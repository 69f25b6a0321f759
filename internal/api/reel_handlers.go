package api

import (
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/glitchowt/backoffice/internal/domain"
	"github.com/glitchowt/backoffice/internal/service/reel"
)

// ListReels returns all reels in carousel order.
func (h *Handlers) ListReels(w http.ResponseWriter, r *http.Request) {
	reels, err := h.reels.List(r.Context())
	if err != nil {
		respondSafeError(w, http.StatusInternalServerError, err, "failed to fetch Instagram reels")
		return
	}
	if reels == nil {
		reels = []domain.InstagramReel{}
	}
	respondJSON(w, http.StatusOK, map[string]interface{}{"data": reels, "total": len(reels)})
}

type reelInput struct {
	Title        string `json:"title"`
	InstagramURL string `json:"instagram_url"`
	EmbedCode    string `json:"embed_code"`
	IsFeatured   bool   `json:"is_featured"`
	DisplayOrder int    `json:"display_order"`
}

// CreateReel adds a reel to the social wall.
func (h *Handlers) CreateReel(w http.ResponseWriter, r *http.Request) {
	var in reelInput
	if !decodeBody(w, r, &in) {
		return
	}
	ir, err := h.reels.Create(r.Context(), in.Title, in.InstagramURL, in.EmbedCode, in.IsFeatured, in.DisplayOrder)
	if err != nil {
		if isValidationError(err) || errors.Is(err, reel.ErrNotEmbeddable) {
			respondError(w, http.StatusBadRequest, err.Error())
			return
		}
		respondSafeError(w, http.StatusInternalServerError, err, "failed to add Instagram reel")
		return
	}
	respondMessage(w, http.StatusCreated, "Instagram reel added", map[string]interface{}{"reel": ir})
}

// UpdateReel applies a partial patch.
func (h *Handlers) UpdateReel(w http.ResponseWriter, r *http.Request) {
	var patch domain.InstagramReelPatch
	if !decodeBody(w, r, &patch) {
		return
	}
	ir, err := h.reels.Update(r.Context(), chi.URLParam(r, "id"), patch)
	switch {
	case err == nil:
		respondMessage(w, http.StatusOK, "Instagram reel updated", map[string]interface{}{"reel": ir})
	case errors.Is(err, reel.ErrNotFound):
		respondError(w, http.StatusNotFound, "reel not found")
	default:
		respondSafeError(w, http.StatusInternalServerError, err, "failed to update Instagram reel")
	}
}

// DeleteReel removes a reel.
func (h *Handlers) DeleteReel(w http.ResponseWriter, r *http.Request) {
	err := h.reels.Delete(r.Context(), chi.URLParam(r, "id"))
	switch {
	case err == nil:
		respondMessage(w, http.StatusOK, "Instagram reel deleted", nil)
	case errors.Is(err, reel.ErrNotFound):
		respondError(w, http.StatusNotFound, "reel not found")
	default:
		respondSafeError(w, http.StatusInternalServerError, err, "failed to delete Instagram reel")
	}
}
