package postgres

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/google/uuid"

	"github.com/glitchowt/backoffice/internal/domain"
	"github.com/glitchowt/backoffice/internal/service/post"
)

// PostRepo implements post.Repository against PostgreSQL.
type PostRepo struct{ db *sql.DB }

// NewPostRepo creates a Postgres-backed blog post repository.
func NewPostRepo(db *sql.DB) *PostRepo { return &PostRepo{db: db} }

func (r *PostRepo) List(ctx context.Context, f post.ListFilter, p post.Page) ([]domain.BlogPost, int, error) {
	where := ""
	args := []interface{}{}
	idx := 1
	if f.Category != "" {
		where += fmt.Sprintf(" AND category = $%d", idx)
		args = append(args, f.Category)
		idx++
	}
	if f.TitleSearch != "" {
		where += fmt.Sprintf(" AND title ILIKE $%d", idx)
		args = append(args, "%"+f.TitleSearch+"%")
		idx++
	}

	var total int
	countQ := `SELECT COUNT(*) FROM blog_posts WHERE 1=1` + where
	if err := r.db.QueryRowContext(ctx, countQ, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("count posts: %w", err)
	}

	q := `
		SELECT id, title, date, category, html_content, created_at, updated_at
		FROM blog_posts
		WHERE 1=1` + where + fmt.Sprintf(`
		ORDER BY date DESC LIMIT $%d OFFSET $%d`, idx, idx+1)
	args = append(args, p.Size, p.Offset())

	rows, err := r.db.QueryContext(ctx, q, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("list posts: %w", err)
	}
	defer rows.Close()

	var out []domain.BlogPost
	for rows.Next() {
		var bp domain.BlogPost
		if err := rows.Scan(&bp.ID, &bp.Title, &bp.Date, &bp.Category, &bp.HTMLContent, &bp.CreatedAt, &bp.UpdatedAt); err != nil {
			return nil, 0, fmt.Errorf("scan post: %w", err)
		}
		out = append(out, bp)
	}
	return out, total, rows.Err()
}

func (r *PostRepo) Get(ctx context.Context, id string) (*domain.BlogPost, error) {
	bp := &domain.BlogPost{}
	err := r.db.QueryRowContext(ctx, `
		SELECT id, title, date, category, html_content, created_at, updated_at
		FROM blog_posts
		WHERE id = $1
	`, id).Scan(&bp.ID, &bp.Title, &bp.Date, &bp.Category, &bp.HTMLContent, &bp.CreatedAt, &bp.UpdatedAt)
	if err == sql.ErrNoRows {
		return nil, post.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("get post: %w", err)
	}
	return bp, nil
}

func (r *PostRepo) Create(ctx context.Context, bp *domain.BlogPost) error {
	if bp.ID == "" {
		bp.ID = uuid.New().String()
	}
	err := r.db.QueryRowContext(ctx, `
		INSERT INTO blog_posts (id, title, date, category, html_content, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, NOW(), NOW())
		RETURNING created_at, updated_at
	`, bp.ID, bp.Title, bp.Date, bp.Category, bp.HTMLContent).Scan(&bp.CreatedAt, &bp.UpdatedAt)
	if err != nil {
		return fmt.Errorf("create post: %w", err)
	}
	return nil
}

func (r *PostRepo) Update(ctx context.Context, id string, patch domain.BlogPostPatch) (*domain.BlogPost, error) {
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
	if patch.Date != nil {
		add("date", *patch.Date)
	}
	if patch.Category != nil {
		add("category", *patch.Category)
	}
	if patch.HTMLContent != nil {
		add("html_content", *patch.HTMLContent)
	}

	q := fmt.Sprintf(`
		UPDATE blog_posts SET %s
		WHERE id = $%d
		RETURNING id, title, date, category, html_content, created_at, updated_at
	`, joinSets(sets), idx)
	args = append(args, id)

	bp := &domain.BlogPost{}
	err := r.db.QueryRowContext(ctx, q, args...).Scan(
		&bp.ID, &bp.Title, &bp.Date, &bp.Category, &bp.HTMLContent, &bp.CreatedAt, &bp.UpdatedAt,
	)
	if err == sql.ErrNoRows {
		return nil, post.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("update post: %w", err)
	}
	return bp, nil
}

func (r *PostRepo) Delete(ctx context.Context, id string) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM blog_posts WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete post: %w", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return post.ErrNotFound
	}
	return nil
}
