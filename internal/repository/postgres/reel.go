package postgres

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/google/uuid"

	"github.com/glitchowt/backoffice/internal/domain"
	"github.com/glitchowt/backoffice/internal/service/reel"
)

// ReelRepo implements reel.Repository against PostgreSQL.
type ReelRepo struct{ db *sql.DB }

// NewReelRepo creates a Postgres-backed Instagram reel repository.
func NewReelRepo(db *sql.DB) *ReelRepo { return &ReelRepo{db: db} }

func (r *ReelRepo) List(ctx context.Context) ([]domain.InstagramReel, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT id, title, instagram_url, COALESCE(embed_code,''), is_featured, display_order, created_at, updated_at
		FROM instagram_reels
		ORDER BY display_order ASC, created_at DESC
	`)
	if err != nil {
		return nil, fmt.Errorf("list reels: %w", err)
	}
	defer rows.Close()

	var out []domain.InstagramReel
	for rows.Next() {
		var ir domain.InstagramReel
		if err := rows.Scan(&ir.ID, &ir.Title, &ir.InstagramURL, &ir.EmbedCode, &ir.IsFeatured, &ir.DisplayOrder, &ir.CreatedAt, &ir.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan reel: %w", err)
		}
		out = append(out, ir)
	}
	return out, rows.Err()
}

func (r *ReelRepo) Create(ctx context.Context, ir *domain.InstagramReel) error {
	if ir.ID == "" {
		ir.ID = uuid.New().String()
	}
	err := r.db.QueryRowContext(ctx, `
		INSERT INTO instagram_reels (id, title, instagram_url, embed_code, is_featured, display_order, created_at, updated_at)
		VALUES ($1, $2, $3, NULLIF($4,''), $5, $6, NOW(), NOW())
		RETURNING created_at, updated_at
	`, ir.ID, ir.Title, ir.InstagramURL, ir.EmbedCode, ir.IsFeatured, ir.DisplayOrder).Scan(&ir.CreatedAt, &ir.UpdatedAt)
	if err != nil {
		return fmt.Errorf("create reel: %w", err)
	}
	return nil
}

func (r *ReelRepo) Update(ctx context.Context, id string, patch domain.InstagramReelPatch) (*domain.InstagramReel, error) {
	sets := []string{"updated_at = NOW()"}
	args := []interface{}{}
	idx := 1

	add := func(col string, val interface{}) {
		sets = append(sets, fmt.Sprintf("%s = $%d", col, idx))
		args = append(args, val)
		idx++
	}
	if patch.Title != nil {
		add("title", *patch.Title)
	}
	if patch.InstagramURL != nil {
		add("instagram_url", *patch.InstagramURL)
	}
	if patch.EmbedCode != nil {
		sets = append(sets, fmt.Sprintf("embed_code = NULLIF($%d,'')", idx))
		args = append(args, *patch.EmbedCode)
		idx++
	}
	if patch.IsFeatured != nil {
		add("is_featured", *patch.IsFeatured)
	}
	if patch.DisplayOrder != nil {
		add("display_order", *patch.DisplayOrder)
	}

	q := fmt.Sprintf(`
		UPDATE instagram_reels SET %s
		WHERE id = $%d
		RETURNING id, title, instagram_url, COALESCE(embed_code,''), is_featured, display_order, created_at, updated_at
	`, joinSets(sets), idx)
	args = append(args, id)

	ir := &domain.InstagramReel{}
	err := r.db.QueryRowContext(ctx, q, args...).Scan(
		&ir.ID, &ir.Title, &ir.InstagramURL, &ir.EmbedCode, &ir.IsFeatured, &ir.DisplayOrder, &ir.CreatedAt, &ir.UpdatedAt,
	)
	if err == sql.ErrNoRows {
		return nil, reel.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("update reel: %w", err)
	}
	return ir, nil
}

func (r *ReelRepo) Delete(ctx context.Context, id string) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM instagram_reels WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete reel: %w", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return reel.ErrNotFound
	}
	return nil
}
