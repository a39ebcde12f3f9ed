package repository

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/lib/pq"

	"topbookstore-backend/internal/domains/book/model"
	"topbookstore-backend/pkg/database"
)

type postgresRepository struct {
	pool *pgxpool.Pool
}

// NewPostgresRepository builds the pgx-backed book repository.
func NewPostgresRepository(pool *pgxpool.Pool) BookRepository {
	return &postgresRepository{pool: pool}
}

const bookColumns = `b.id, b.title, b.description, b.isbn13, b.inventory, b.price,
		b.discount_percent, b.number_of_pages, b.publication_date, b.image_url,
		b.author_id, b.publisher_id, b.created_at, b.updated_at`

func (r *postgresRepository) ListBooks(ctx context.Context, filter model.Filter) ([]*model.Book, error) {
	whereClause, args := buildWhereClause(filter)

	query := fmt.Sprintf(`
		SELECT %s,
			COALESCE(a.name, '') AS author_name,
			COALESCE(p.name, '') AS publisher_name,
			COALESCE(cat.ids, '{}') AS category_ids
		FROM books b
		LEFT JOIN authors a ON b.author_id = a.id
		LEFT JOIN publishers p ON b.publisher_id = p.id
		LEFT JOIN LATERAL (
			SELECT array_agg(bc.category_id ORDER BY bc.category_id) AS ids
			FROM book_categories bc
			WHERE bc.book_id = b.id
		) cat ON true
		WHERE %s
		ORDER BY b.created_at DESC, b.id DESC
	`, bookColumns, whereClause)

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list books query failed: %w", err)
	}
	defer rows.Close()

	var books []*model.Book
	for rows.Next() {
		b, err := scanBook(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan book row: %w", err)
		}
		books = append(books, b)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("rows error: %w", err)
	}

	return books, nil
}

func (r *postgresRepository) GetBookByID(ctx context.Context, id int64, include Include) (*model.Book, error) {
	authorExpr := "''"
	authorJoin := ""
	if include.Author {
		authorExpr = "COALESCE(a.name, '')"
		authorJoin = "LEFT JOIN authors a ON b.author_id = a.id"
	}
	publisherExpr := "''"
	publisherJoin := ""
	if include.Publisher {
		publisherExpr = "COALESCE(p.name, '')"
		publisherJoin = "LEFT JOIN publishers p ON b.publisher_id = p.id"
	}
	categoryExpr := "'{}'::bigint[]"
	categoryJoin := ""
	if include.Categories {
		categoryExpr = "COALESCE(cat.ids, '{}')"
		categoryJoin = `LEFT JOIN LATERAL (
			SELECT array_agg(bc.category_id ORDER BY bc.category_id) AS ids
			FROM book_categories bc
			WHERE bc.book_id = b.id
		) cat ON true`
	}

	query := fmt.Sprintf(`
		SELECT %s,
			%s AS author_name,
			%s AS publisher_name,
			%s AS category_ids
		FROM books b
		%s
		%s
		%s
		WHERE b.id = $1
	`, bookColumns, authorExpr, publisherExpr, categoryExpr, authorJoin, publisherJoin, categoryJoin)

	b, err := scanBook(r.pool.QueryRow(ctx, query, id))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, model.ErrBookNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get book %d: %w", id, err)
	}

	return b, nil
}

func (r *postgresRepository) ListBooksByCategory(ctx context.Context, categoryID int64) ([]*model.Book, error) {
	return r.ListBooks(ctx, model.Filter{CategoryID: categoryID})
}

func (r *postgresRepository) DeleteBook(ctx context.Context, id int64) error {
	return database.WithTransaction(ctx, r.pool, func(tx pgx.Tx) error {
		if _, err := tx.Exec(ctx, `DELETE FROM book_categories WHERE book_id = $1`, id); err != nil {
			return fmt.Errorf("failed to delete category links: %w", err)
		}
		result, err := tx.Exec(ctx, `DELETE FROM books WHERE id = $1`, id)
		if err != nil {
			return fmt.Errorf("failed to delete book: %w", err)
		}
		if result.RowsAffected() == 0 {
			return model.ErrBookNotFound
		}
		return nil
	})
}

func (r *postgresRepository) SetImageURL(ctx context.Context, id int64, url string) error {
	result, err := r.pool.Exec(ctx,
		`UPDATE books SET image_url = $1, updated_at = $2 WHERE id = $3`,
		url, time.Now(), id,
	)
	if err != nil {
		return fmt.Errorf("failed to set image url: %w", err)
	}
	if result.RowsAffected() == 0 {
		return model.ErrBookNotFound
	}
	return nil
}

func (r *postgresRepository) WithinTx(ctx context.Context, fn func(tx BookTx) error) error {
	return database.WithTransaction(ctx, r.pool, func(tx pgx.Tx) error {
		return fn(&txRepository{tx: tx})
	})
}

// buildWhereClause renders the resolved filter as SQL conditions. Range
// operators come from Range.SQLClause so the database and the in-memory
// predicate agree on every bracket boundary.
func buildWhereClause(filter model.Filter) (string, []interface{}) {
	var conditions []string
	var args []interface{}
	argIndex := 1

	if filter.CategoryID > 0 {
		conditions = append(conditions, fmt.Sprintf(
			"EXISTS (SELECT 1 FROM book_categories bc WHERE bc.book_id = b.id AND bc.category_id = $%d)",
			argIndex,
		))
		args = append(args, filter.CategoryID)
		argIndex++
	}
	if r, ok := filter.PriceRange(); ok {
		clause, rangeArgs := r.SQLClause("b.price", argIndex)
		conditions = append(conditions, clause)
		args = append(args, rangeArgs...)
		argIndex += len(rangeArgs)
	}
	if r, ok := filter.PagesRange(); ok {
		clause, rangeArgs := r.SQLClause("b.number_of_pages", argIndex)
		conditions = append(conditions, clause)
		args = append(args, rangeArgs...)
		argIndex += len(rangeArgs)
	}
	if filter.AuthorID > 0 {
		conditions = append(conditions, fmt.Sprintf("b.author_id = $%d", argIndex))
		args = append(args, filter.AuthorID)
	}

	if len(conditions) == 0 {
		return "TRUE", nil
	}
	return strings.Join(conditions, " AND "), args
}

// scanBook maps one row onto the entity. Rows must carry the
// author_name, publisher_name and category_ids columns after the base
// columns; reads that skip a relation select a constant in its place.
func scanBook(row pgx.Row) (*model.Book, error) {
	var b model.Book
	err := row.Scan(
		&b.ID, &b.Title, &b.Description, &b.ISBN13, &b.Inventory, &b.Price,
		&b.DiscountPercent, &b.NumberOfPages, &b.PublicationDate, &b.ImageURL,
		&b.AuthorID, &b.PublisherID, &b.CreatedAt, &b.UpdatedAt,
		&b.AuthorName, &b.PublisherName, pq.Array(&b.CategoryIDs),
	)
	if err != nil {
		return nil, err
	}
	return &b, nil
}

// txRepository is the BookTx implementation bound to one transaction.
type txRepository struct {
	tx pgx.Tx
}

const foreignKeyViolation = "23503"

// mapWriteError translates foreign key violations into the sentinels
// the handler layer knows how to render.
func mapWriteError(err error) error {
	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) || pgErr.Code != foreignKeyViolation {
		return err
	}
	switch {
	case strings.Contains(pgErr.ConstraintName, "author"):
		return model.ErrAuthorNotFound
	case strings.Contains(pgErr.ConstraintName, "publisher"):
		return model.ErrPublisherNotFound
	}
	return err
}

func (r *txRepository) CreateBook(ctx context.Context, b *model.Book) error {
	query := `
		INSERT INTO books (
			title, description, isbn13, inventory, price, discount_percent,
			number_of_pages, publication_date, image_url, author_id, publisher_id,
			created_at, updated_at
		) VALUES (
			$1, $2, $3, $4, $5, $6,
			$7, $8, $9, $10, $11,
			$12, $13
		)
		RETURNING id, created_at, updated_at
	`

	now := time.Now()
	err := r.tx.QueryRow(ctx, query,
		b.Title, b.Description, b.ISBN13, b.Inventory, b.Price, b.DiscountPercent,
		b.NumberOfPages, b.PublicationDate, b.ImageURL, b.AuthorID, b.PublisherID,
		now, now,
	).Scan(&b.ID, &b.CreatedAt, &b.UpdatedAt)
	if err != nil {
		if mapped := mapWriteError(err); mapped != err {
			return mapped
		}
		return fmt.Errorf("failed to create book: %w", err)
	}

	return nil
}

func (r *txRepository) UpdateBook(ctx context.Context, b *model.Book) error {
	query := `
		UPDATE books
		SET title = $1, description = $2, isbn13 = $3, inventory = $4, price = $5,
		    discount_percent = $6, number_of_pages = $7, publication_date = $8,
		    image_url = $9, author_id = $10, publisher_id = $11, updated_at = $12
		WHERE id = $13
	`

	result, err := r.tx.Exec(ctx, query,
		b.Title, b.Description, b.ISBN13, b.Inventory, b.Price,
		b.DiscountPercent, b.NumberOfPages, b.PublicationDate,
		b.ImageURL, b.AuthorID, b.PublisherID, b.UpdatedAt,
		b.ID,
	)
	if err != nil {
		if mapped := mapWriteError(err); mapped != err {
			return mapped
		}
		return fmt.Errorf("failed to update book %d: %w", b.ID, err)
	}
	if result.RowsAffected() == 0 {
		return model.ErrBookNotFound
	}

	return nil
}

// AttachCategories links the book to each category, skipping links that
// already exist. Existing links are never removed here.
func (r *txRepository) AttachCategories(ctx context.Context, bookID int64, categoryIDs []int64) error {
	if len(categoryIDs) == 0 {
		return nil
	}

	query := `
		INSERT INTO book_categories (book_id, category_id)
		SELECT $1, unnest($2::bigint[])
		ON CONFLICT (book_id, category_id) DO NOTHING
	`
	if _, err := r.tx.Exec(ctx, query, bookID, pq.Array(categoryIDs)); err != nil {
		return fmt.Errorf("failed to attach categories to book %d: %w", bookID, err)
	}

	return nil
}
