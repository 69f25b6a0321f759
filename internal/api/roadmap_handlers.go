package api

import (
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/glitchowt/backoffice/internal/domain"
	"github.com/glitchowt/backoffice/internal/service/roadmap"
)

// ListRoadmap returns the current feature snapshot, newest first.
func (h *Handlers) ListRoadmap(w http.ResponseWriter, r *http.Request) {
	features, err := h.roadmap.List(r.Context())
	if err != nil {
		respondSafeError(w, http.StatusInternalServerError, err, "failed to load roadmap features")
		return
	}
	respondJSON(w, http.StatusOK, map[string]interface{}{"data": features, "total": len(features)})
}

// RoadmapBuckets returns features grouped into the kanban display buckets.
func (h *Handlers) RoadmapBuckets(w http.ResponseWriter, r *http.Request) {
	buckets, err := h.roadmap.Buckets(r.Context())
	if err != nil {
		respondSafeError(w, http.StatusInternalServerError, err, "failed to load roadmap features")
		return
	}
	respondJSON(w, http.StatusOK, map[string]interface{}{
		"statuses": domain.FeatureStatuses,
		"buckets":  buckets,
	})
}

type roadmapInput struct {
	Name        string                 `json:"name"`
	Description string                 `json:"description"`
	Status      domain.FeatureStatus   `json:"status"`
	Icon        string                 `json:"icon"`
	Priority    domain.FeaturePriority `json:"priority"`
}

// CreateRoadmapFeature adds a feature to the board.
func (h *Handlers) CreateRoadmapFeature(w http.ResponseWriter, r *http.Request) {
	var in roadmapInput
	if !decodeBody(w, r, &in) {
		return
	}
	f, err := h.roadmap.Create(r.Context(), in.Name, in.Description, in.Status, in.Icon, in.Priority)
	if err != nil {
		if isValidationError(err) {
			respondError(w, http.StatusBadRequest, err.Error())
			return
		}
		respondSafeError(w, http.StatusInternalServerError, err, "failed to add feature")
		return
	}
	respondMessage(w, http.StatusCreated, "Feature added", map[string]interface{}{"feature": f})
}

// UpdateRoadmapFeature applies a partial patch.
func (h *Handlers) UpdateRoadmapFeature(w http.ResponseWriter, r *http.Request) {
	var patch domain.RoadmapFeaturePatch
	if !decodeBody(w, r, &patch) {
		return
	}
	f, err := h.roadmap.Update(r.Context(), chi.URLParam(r, "id"), patch)
	switch {
	case err == nil:
		respondMessage(w, http.StatusOK, "Feature updated", map[string]interface{}{"feature": f})
	case errors.Is(err, roadmap.ErrNotFound):
		respondError(w, http.StatusNotFound, "feature not found")
	case isValidationError(err):
		respondError(w, http.StatusBadRequest, err.Error())
	default:
		respondSafeError(w, http.StatusInternalServerError, err, "failed to update feature")
	}
}

// UpdateRoadmapStatus transitions only the status field, the drag-and-drop
// reclassification action.
func (h *Handlers) UpdateRoadmapStatus(w http.ResponseWriter, r *http.Request) {
	var in struct {
		Status domain.FeatureStatus `json:"status"`
	}
	if !decodeBody(w, r, &in) {
		return
	}
	f, err := h.roadmap.UpdateStatus(r.Context(), chi.URLParam(r, "id"), in.Status)
	switch {
	case err == nil:
		respondMessage(w, http.StatusOK, "Feature status updated", map[string]interface{}{"feature": f})
	case errors.Is(err, roadmap.ErrNotFound):
		respondError(w, http.StatusNotFound, "feature not found")
	case errors.Is(err, domain.ErrInvalidStatus):
		respondError(w, http.StatusBadRequest, err.Error())
	default:
		respondSafeError(w, http.StatusInternalServerError, err, "failed to update feature status")
	}
}

// DeleteRoadmapFeature removes a feature from the board.
func (h *Handlers) DeleteRoadmapFeature(w http.ResponseWriter, r *http.Request) {
	err := h.roadmap.Delete(r.Context(), chi.URLParam(r, "id"))
	switch {
	case err == nil:
		respondMessage(w, http.StatusOK, "Feature deleted", nil)
	case errors.Is(err, roadmap.ErrNotFound):
		respondError(w, http.StatusNotFound, "feature not found")
	default:
		respondSafeError(w, http.StatusInternalServerError, err, "failed to delete feature")
	}
}
