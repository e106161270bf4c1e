package store

// Repository implementation (Postgres)

import (
	"context"
	"errors"

	"libraryapi/internal/entity"
	"libraryapi/internal/usecase"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

const bookColumns = `id, name, author, category, rating, quantity, description, image, static_content, created_at, updated_at`

type BookPG struct {
	db *pgxpool.Pool
}

func NewBookPG(db *pgxpool.Pool) *BookPG {
	return &BookPG{db: db}
}

func (r *BookPG) List(ctx context.Context, p usecase.ListParams) ([]entity.Book, error) {
	query := `SELECT ` + bookColumns + ` FROM books`
	switch p.Filter {
	case usecase.StockFilterAvailable:
		query += ` WHERE quantity > 0`
	case usecase.StockFilterStockOut:
		query += ` WHERE quantity <= 0`
	}
	query += ` ORDER BY created_at DESC`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanBooks(rows)
}

func (r *BookPG) GetByID(ctx context.Context, id string) (entity.Book, error) {
	const query = `SELECT ` + bookColumns + ` FROM books WHERE id = $1`
	var b entity.Book
	err := r.db.QueryRow(ctx, query, id).Scan(
		&b.ID, &b.Name, &b.Author, &b.Category, &b.Rating, &b.Quantity,
		&b.Description, &b.Image, &b.StaticContent, &b.CreatedAt, &b.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return entity.Book{}, usecase.ErrNotFound
		}
		return entity.Book{}, err
	}
	return b, nil
}

func (r *BookPG) ListByCategory(ctx context.Context, category string) ([]entity.Book, error) {
	const query = `SELECT ` + bookColumns + ` FROM books WHERE category = $1 ORDER BY created_at DESC`
	rows, err := r.db.Query(ctx, query, category)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanBooks(rows)
}

func (r *BookPG) Create(ctx context.Context, b *entity.Book) error {
	const query = `
	INSERT INTO books (id, name, author, category, rating, quantity, description, image, static_content)
	VALUES (gen_random_uuid(), $1, $2, $3, $4, $5, $6, $7, $8)
	RETURNING id, created_at, updated_at
	`
	return r.db.QueryRow(ctx, query,
		b.Name, b.Author, b.Category, b.Rating, b.Quantity,
		b.Description, b.Image, b.StaticContent,
	).Scan(&b.ID, &b.CreatedAt, &b.UpdatedAt)
}

// Upsert mirrors the PUT contract: unknown ids insert a fresh row,
// known ids get every mutable field replaced.
func (r *BookPG) Upsert(ctx context.Context, id string, b entity.Book) error {
	const query = `
	INSERT INTO books (id, name, author, category, rating, quantity, description, image, static_content)
	VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
	ON CONFLICT (id) DO UPDATE SET
		name = EXCLUDED.name,
		author = EXCLUDED.author,
		category = EXCLUDED.category,
		rating = EXCLUDED.rating,
		quantity = EXCLUDED.quantity,
		description = EXCLUDED.description,
		image = EXCLUDED.image,
		static_content = EXCLUDED.static_content,
		updated_at = now()
	`
	_, err := r.db.Exec(ctx, query,
		id, b.Name, b.Author, b.Category, b.Rating, b.Quantity,
		b.Description, b.Image, b.StaticContent,
	)
	return err
}

func (r *BookPG) Delete(ctx context.Context, id string) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM books WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return usecase.ErrNotFound
	}
	return nil
}

func scanBooks(rows pgx.Rows) ([]entity.Book, error) {
	var books []entity.Book
	for rows.Next() {
		var b entity.Book
		if err := rows.Scan(
			&b.ID, &b.Name, &b.Author, &b.Category, &b.Rating, &b.Quantity,
			&b.Description, &b.Image, &b.StaticContent, &b.CreatedAt, &b.UpdatedAt,
		); err != nil {
			return nil, err
		}
		books = append(books, b)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return books, nil
}
