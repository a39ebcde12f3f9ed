package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/lib/pq"

	"topbookstore-backend/internal/domains/category/model"
)

const uniqueViolation = "23505"

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == uniqueViolation
}

// CategoryRepository is the persistence boundary for categories.
type CategoryRepository interface {
	List(ctx context.Context) ([]*model.Category, error)
	GetByID(ctx context.Context, id int64) (*model.Category, error)
	Create(ctx context.Context, cat *model.Category) error
	Update(ctx context.Context, cat *model.Category) error
	Delete(ctx context.Context, id int64) error

	// FilterExisting returns the subset of ids that exist, preserving
	// the caller's order.
	FilterExisting(ctx context.Context, ids []int64) ([]int64, error)
}

type postgresRepository struct {
	pool *pgxpool.Pool
}

func NewPostgresRepository(pool *pgxpool.Pool) CategoryRepository {
	return &postgresRepository{pool: pool}
}

const categoryColumns = `id, name, slug, description, created_at, updated_at`

func (r *postgresRepository) List(ctx context.Context) ([]*model.Category, error) {
	query := fmt.Sprintf(`SELECT %s FROM categories ORDER BY name`, categoryColumns)

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list categories query failed: %w", err)
	}
	defer rows.Close()

	var categories []*model.Category
	for rows.Next() {
		var cat model.Category
		if err := rows.Scan(&cat.ID, &cat.Name, &cat.Slug, &cat.Description, &cat.CreatedAt, &cat.UpdatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan category row: %w", err)
		}
		categories = append(categories, &cat)
	}

	return categories, rows.Err()
}

func (r *postgresRepository) GetByID(ctx context.Context, id int64) (*model.Category, error) {
	query := fmt.Sprintf(`SELECT %s FROM categories WHERE id = $1`, categoryColumns)

	var cat model.Category
	err := r.pool.QueryRow(ctx, query, id).
		Scan(&cat.ID, &cat.Name, &cat.Slug, &cat.Description, &cat.CreatedAt, &cat.UpdatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, model.ErrCategoryNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get category %d: %w", id, err)
	}

	return &cat, nil
}

func (r *postgresRepository) Create(ctx context.Context, cat *model.Category) error {
	query := `
		INSERT INTO categories (name, slug, description)
		VALUES ($1, $2, $3)
		RETURNING id, created_at, updated_at
	`

	err := r.pool.QueryRow(ctx, query, cat.Name, cat.Slug, cat.Description).
		Scan(&cat.ID, &cat.CreatedAt, &cat.UpdatedAt)
	if err != nil {
		if isUniqueViolation(err) {
			return model.ErrCategoryExists
		}
		return fmt.Errorf("failed to create category: %w", err)
	}

	return nil
}

func (r *postgresRepository) Update(ctx context.Context, cat *model.Category) error {
	query := `
		UPDATE categories
		SET name = $1, slug = $2, description = $3, updated_at = NOW()
		WHERE id = $4
	`

	result, err := r.pool.Exec(ctx, query, cat.Name, cat.Slug, cat.Description, cat.ID)
	if err != nil {
		if isUniqueViolation(err) {
			return model.ErrCategoryExists
		}
		return fmt.Errorf("failed to update category %d: %w", cat.ID, err)
	}
	if result.RowsAffected() == 0 {
		return model.ErrCategoryNotFound
	}

	return nil
}

func (r *postgresRepository) Delete(ctx context.Context, id int64) error {
	result, err := r.pool.Exec(ctx, `DELETE FROM categories WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete category %d: %w", id, err)
	}
	if result.RowsAffected() == 0 {
		return model.ErrCategoryNotFound
	}

	return nil
}

func (r *postgresRepository) FilterExisting(ctx context.Context, ids []int64) ([]int64, error) {
	if len(ids) == 0 {
		return nil, nil
	}

	rows, err := r.pool.Query(ctx,
		`SELECT id FROM categories WHERE id = ANY($1)`, pq.Array(ids))
	if err != nil {
		return nil, fmt.Errorf("filter categories query failed: %w", err)
	}
	defer rows.Close()

	existing := make(map[int64]bool, len(ids))
	for rows.Next() {
		var id int64
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("failed to scan category id: %w", err)
		}
		existing[id] = true
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	return intersectPreservingOrder(ids, existing), nil
}

// intersectPreservingOrder keeps the ids found in existing, in the
// caller's order, dropping duplicates.
func intersectPreservingOrder(ids []int64, existing map[int64]bool) []int64 {
	var out []int64
	seen := make(map[int64]bool, len(ids))
	for _, id := range ids {
		if existing[id] && !seen[id] {
			out = append(out, id)
			seen[id] = true
		}
	}
	return out
}
