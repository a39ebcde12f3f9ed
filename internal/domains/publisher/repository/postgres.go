package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"topbookstore-backend/internal/domains/publisher/model"
)

// PublisherRepository is the persistence boundary for publishers.
type PublisherRepository interface {
	List(ctx context.Context) ([]*model.Publisher, error)
	GetByID(ctx context.Context, id int64) (*model.Publisher, error)
	Create(ctx context.Context, p *model.Publisher) error
	Update(ctx context.Context, p *model.Publisher) error
	Delete(ctx context.Context, id int64) error
}

type postgresRepository struct {
	pool *pgxpool.Pool
}

func NewPostgresRepository(pool *pgxpool.Pool) PublisherRepository {
	return &postgresRepository{pool: pool}
}

const publisherColumns = `id, name, slug, website, created_at, updated_at`

func (r *postgresRepository) List(ctx context.Context) ([]*model.Publisher, error) {
	query := fmt.Sprintf(`SELECT %s FROM publishers ORDER BY name`, publisherColumns)

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list publishers query failed: %w", err)
	}
	defer rows.Close()

	var publishers []*model.Publisher
	for rows.Next() {
		var p model.Publisher
		if err := rows.Scan(&p.ID, &p.Name, &p.Slug, &p.Website, &p.CreatedAt, &p.UpdatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan publisher row: %w", err)
		}
		publishers = append(publishers, &p)
	}

	return publishers, rows.Err()
}

func (r *postgresRepository) GetByID(ctx context.Context, id int64) (*model.Publisher, error) {
	query := fmt.Sprintf(`SELECT %s FROM publishers WHERE id = $1`, publisherColumns)

	var p model.Publisher
	err := r.pool.QueryRow(ctx, query, id).
		Scan(&p.ID, &p.Name, &p.Slug, &p.Website, &p.CreatedAt, &p.UpdatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, model.ErrPublisherNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get publisher %d: %w", id, err)
	}

	return &p, nil
}

func (r *postgresRepository) Create(ctx context.Context, p *model.Publisher) error {
	query := `
		INSERT INTO publishers (name, slug, website)
		VALUES ($1, $2, $3)
		RETURNING id, created_at, updated_at
	`

	err := r.pool.QueryRow(ctx, query, p.Name, p.Slug, p.Website).
		Scan(&p.ID, &p.CreatedAt, &p.UpdatedAt)
	if err != nil {
		return fmt.Errorf("failed to create publisher: %w", err)
	}

	return nil
}

func (r *postgresRepository) Update(ctx context.Context, p *model.Publisher) error {
	query := `
		UPDATE publishers
		SET name = $1, slug = $2, website = $3, updated_at = NOW()
		WHERE id = $4
	`

	result, err := r.pool.Exec(ctx, query, p.Name, p.Slug, p.Website, p.ID)
	if err != nil {
		return fmt.Errorf("failed to update publisher %d: %w", p.ID, err)
	}
	if result.RowsAffected() == 0 {
		return model.ErrPublisherNotFound
	}

	return nil
}

func (r *postgresRepository) Delete(ctx context.Context, id int64) error {
	result, err := r.pool.Exec(ctx, `DELETE FROM publishers WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete publisher %d: %w", id, err)
	}
	if result.RowsAffected() == 0 {
		return model.ErrPublisherNotFound
	}

	return nil
}
