package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"topbookstore-backend/internal/domains/author/model"
)

// AuthorRepository is the persistence boundary for authors.
type AuthorRepository interface {
	List(ctx context.Context) ([]*model.Author, error)
	GetByID(ctx context.Context, id int64) (*model.Author, error)
	Create(ctx context.Context, a *model.Author) error
	Update(ctx context.Context, a *model.Author) error
	Delete(ctx context.Context, id int64) error
}

type postgresRepository struct {
	pool *pgxpool.Pool
}

func NewPostgresRepository(pool *pgxpool.Pool) AuthorRepository {
	return &postgresRepository{pool: pool}
}

const authorColumns = `id, name, slug, bio, created_at, updated_at`

func (r *postgresRepository) List(ctx context.Context) ([]*model.Author, error) {
	query := fmt.Sprintf(`SELECT %s FROM authors ORDER BY name`, authorColumns)

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list authors query failed: %w", err)
	}
	defer rows.Close()

	var authors []*model.Author
	for rows.Next() {
		var a model.Author
		if err := rows.Scan(&a.ID, &a.Name, &a.Slug, &a.Bio, &a.CreatedAt, &a.UpdatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan author row: %w", err)
		}
		authors = append(authors, &a)
	}

	return authors, rows.Err()
}

func (r *postgresRepository) GetByID(ctx context.Context, id int64) (*model.Author, error) {
	query := fmt.Sprintf(`SELECT %s FROM authors WHERE id = $1`, authorColumns)

	var a model.Author
	err := r.pool.QueryRow(ctx, query, id).
		Scan(&a.ID, &a.Name, &a.Slug, &a.Bio, &a.CreatedAt, &a.UpdatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, model.ErrAuthorNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get author %d: %w", id, err)
	}

	return &a, nil
}

func (r *postgresRepository) Create(ctx context.Context, a *model.Author) error {
	query := `
		INSERT INTO authors (name, slug, bio)
		VALUES ($1, $2, $3)
		RETURNING id, created_at, updated_at
	`

	err := r.pool.QueryRow(ctx, query, a.Name, a.Slug, a.Bio).
		Scan(&a.ID, &a.CreatedAt, &a.UpdatedAt)
	if err != nil {
		return fmt.Errorf("failed to create author: %w", err)
	}

	return nil
}

func (r *postgresRepository) Update(ctx context.Context, a *model.Author) error {
	query := `
		UPDATE authors
		SET name = $1, slug = $2, bio = $3, updated_at = NOW()
		WHERE id = $4
	`

	result, err := r.pool.Exec(ctx, query, a.Name, a.Slug, a.Bio, a.ID)
	if err != nil {
		return fmt.Errorf("failed to update author %d: %w", a.ID, err)
	}
	if result.RowsAffected() == 0 {
		return model.ErrAuthorNotFound
	}

	return nil
}

func (r *postgresRepository) Delete(ctx context.Context, id int64) error {
	result, err := r.pool.Exec(ctx, `DELETE FROM authors WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete author %d: %w", id, err)
	}
	if result.RowsAffected() == 0 {
		return model.ErrAuthorNotFound
	}

	return nil
}
