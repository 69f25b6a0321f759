package postgres

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/google/uuid"

	"github.com/glitchowt/backoffice/internal/domain"
	"github.com/glitchowt/backoffice/internal/service/roadmap"
)

// RoadmapRepo implements roadmap.Repository against PostgreSQL.
type RoadmapRepo struct{ db *sql.DB }

// NewRoadmapRepo creates a Postgres-backed roadmap feature repository.
func NewRoadmapRepo(db *sql.DB) *RoadmapRepo { return &RoadmapRepo{db: db} }

func (r *RoadmapRepo) List(ctx context.Context) ([]domain.RoadmapFeature, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT id, name, COALESCE(description,''), status, icon, priority, created_at, updated_at
		FROM roadmap_features
		ORDER BY created_at DESC
	`)
	if err != nil {
		return nil, fmt.Errorf("list roadmap features: %w", err)
	}
	defer rows.Close()

	var out []domain.RoadmapFeature
	for rows.Next() {
		var f domain.RoadmapFeature
		if err := rows.Scan(&f.ID, &f.Name, &f.Description, &f.Status, &f.Icon, &f.Priority, &f.CreatedAt, &f.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan roadmap feature: %w", err)
		}
		out = append(out, f)
	}
	return out, rows.Err()
}

func (r *RoadmapRepo) Create(ctx context.Context, f *domain.RoadmapFeature) error {
	if f.ID == "" {
		f.ID = uuid.New().String()
	}
	err := r.db.QueryRowContext(ctx, `
		INSERT INTO roadmap_features (id, name, description, status, icon, priority, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, NOW(), NOW())
		RETURNING created_at, updated_at
	`, f.ID, f.Name, f.Description, f.Status, f.Icon, f.Priority).Scan(&f.CreatedAt, &f.UpdatedAt)
	if err != nil {
		return fmt.Errorf("create roadmap feature: %w", err)
	}
	return nil
}

func (r *RoadmapRepo) Update(ctx context.Context, id string, patch domain.RoadmapFeaturePatch) (*domain.RoadmapFeature, error) {
	sets := []string{"updated_at = NOW()"}
	args := []interface{}{}
	idx := 1

	add := func(col string, val interface{}) {
		sets = append(sets, fmt.Sprintf("%s = $%d", col, idx))
		args = append(args, val)
		idx++
	}
	if patch.Name != nil {
		add("name", *patch.Name)
	}
	if patch.Description != nil {
		add("description", *patch.Description)
	}
	if patch.Status != nil {
		add("status", *patch.Status)
	}
	if patch.Icon != nil {
		add("icon", *patch.Icon)
	}
	if patch.Priority != nil {
		add("priority", *patch.Priority)
	}

	q := fmt.Sprintf(`
		UPDATE roadmap_features SET %s
		WHERE id = $%d
		RETURNING id, name, COALESCE(description,''), status, icon, priority, created_at, updated_at
	`, joinSets(sets), idx)
	args = append(args, id)

	f := &domain.RoadmapFeature{}
	err := r.db.QueryRowContext(ctx, q, args...).Scan(
		&f.ID, &f.Name, &f.Description, &f.Status, &f.Icon, &f.Priority, &f.CreatedAt, &f.UpdatedAt,
	)
	if err == sql.ErrNoRows {
		return nil, roadmap.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("update roadmap feature: %w", err)
	}
	return f, nil
}

func (r *RoadmapRepo) Delete(ctx context.Context, id string) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM roadmap_features WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete roadmap feature: %w", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return roadmap.ErrNotFound
	}
	return nil
}
