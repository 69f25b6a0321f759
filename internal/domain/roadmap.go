package domain

import (
	"errors"
	"strings"
	"time"
)

// FeatureStatus enumerates the workflow states of a roadmap feature.
// A feature belongs to exactly one status at a time.
type FeatureStatus string

const (
	StatusPlanned    FeatureStatus = "planned"
	StatusInProgress FeatureStatus = "in-progress"
	StatusDone       FeatureStatus = "done"
)

// FeatureStatuses lists the statuses in display order. These are also the
// kanban bucket keys: every feature lands in exactly one.
var FeatureStatuses = []FeatureStatus{StatusPlanned, StatusInProgress, StatusDone}

// Valid reports whether s is a currently defined status.
func (s FeatureStatus) Valid() bool {
	switch s {
	case StatusPlanned, StatusInProgress, StatusDone:
		return true
	}
	return false
}

// FeaturePriority enumerates roadmap priorities.
type FeaturePriority string

const (
	PriorityHigh   FeaturePriority = "high"
	PriorityMedium FeaturePriority = "medium"
	PriorityLow    FeaturePriority = "low"
)

// Valid reports whether p is a defined priority.
func (p FeaturePriority) Valid() bool {
	switch p {
	case PriorityHigh, PriorityMedium, PriorityLow:
		return true
	}
	return false
}

// FeatureIcons are the symbolic icon keys the UI maps to glyphs. An unknown
// key falls back to "plus" on the rendering side, so membership is not enforced.
var FeatureIcons = []string{
	"mic", "shield", "brain", "car", "lightbulb", "zap",
	"users", "plus", "git-branch", "layout-template", "smartphone", "plug",
}

// RoadmapFeature represents one entry on the public roadmap board.
type RoadmapFeature struct {
	ID          string          `json:"id" db:"id"`
	Name        string          `json:"name" db:"name"`
	Description string          `json:"description" db:"description"`
	Status      FeatureStatus   `json:"status" db:"status"`
	Icon        string          `json:"icon" db:"icon"`
	Priority    FeaturePriority `json:"priority" db:"priority"`
	CreatedAt   time.Time       `json:"created_at" db:"created_at"`
	UpdatedAt   time.Time       `json:"updated_at" db:"updated_at"`
}

// Roadmap validation errors.
var (
	ErrMissingName     = errors.New("name is required")
	ErrInvalidStatus   = errors.New("invalid status")
	ErrInvalidPriority = errors.New("invalid priority")
)

// NewRoadmapFeature validates fields and returns a feature ready for insert.
// Zero-value status, icon, and priority take the UI defaults.
func NewRoadmapFeature(name, description string, status FeatureStatus, icon string, priority FeaturePriority) (*RoadmapFeature, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, ErrMissingName
	}
	if status == "" {
		status = StatusPlanned
	}
	if !status.Valid() {
		return nil, ErrInvalidStatus
	}
	if icon == "" {
		icon = "plus"
	}
	if priority == "" {
		priority = PriorityMedium
	}
	if !priority.Valid() {
		return nil, ErrInvalidPriority
	}
	return &RoadmapFeature{
		Name:        name,
		Description: description,
		Status:      status,
		Icon:        icon,
		Priority:    priority,
	}, nil
}

// RoadmapFeaturePatch carries a partial update. Nil fields are left untouched.
type RoadmapFeaturePatch struct {
	Name        *string          `json:"name"`
	Description *string          `json:"description"`
	Status      *FeatureStatus   `json:"status"`
	Icon        *string          `json:"icon"`
	Priority    *FeaturePriority `json:"priority"`
}

// Empty reports whether the patch changes nothing.
func (p RoadmapFeaturePatch) Empty() bool {
	return p.Name == nil && p.Description == nil && p.Status == nil &&
		p.Icon == nil && p.Priority == nil
}

// PartitionByStatus groups features into the fixed display buckets, keyed by
// status in FeatureStatuses order. Every feature appears in exactly one bucket;
// a feature with an unrecognized stored status is folded into the first bucket
// rather than dropped, matching the board's rendering fallback.
func PartitionByStatus(features []RoadmapFeature) map[FeatureStatus][]RoadmapFeature {
	buckets := make(map[FeatureStatus][]RoadmapFeature, len(FeatureStatuses))
	for _, s := range FeatureStatuses {
		buckets[s] = []RoadmapFeature{}
	}
	for _, f := range features {
		s := f.Status
		if !s.Valid() {
			s = FeatureStatuses[0]
		}
		buckets[s] = append(buckets[s], f)
	}
	return buckets
}
