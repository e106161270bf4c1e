package store

import (
	"context"
	"errors"

	"libraryapi/internal/entity"
	"libraryapi/internal/usecase"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type BorrowPG struct {
	db *pgxpool.Pool
}

func NewBorrowPG(db *pgxpool.Pool) *BorrowPG {
	return &BorrowPG{db: db}
}

// Borrow runs the whole lending step in one transaction. The duplicate
// check is the UNIQUE (borrower_email, book_id) constraint, and the
// counter update is a relative decrement, never read-modify-write.
// Invariant: stocked quantity = quantity column + live borrow rows.
func (r *BorrowPG) Borrow(ctx context.Context, rec *entity.BorrowRecord) error {
	tx, err := r.db.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return err
	}
	defer tx.Rollback(ctx)

	const insertSQL = `
	INSERT INTO borrows (id, borrower_email, borrower_name, book_id, book_name)
	VALUES (gen_random_uuid(), $1, $2, $3, $4)
	ON CONFLICT (borrower_email, book_id) DO NOTHING
	RETURNING id, created_at
	`
	err = tx.QueryRow(ctx, insertSQL,
		rec.BorrowerEmail, rec.BorrowerName, rec.BookID, rec.BookName,
	).Scan(&rec.ID, &rec.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return usecase.ErrDuplicateBorrow
		}
		return err
	}

	// The quantity > 0 guard keeps the counter from going negative when
	// borrows are over-issued.
	const decrementSQL = `
	UPDATE books SET quantity = quantity - 1, updated_at = now()
	WHERE id = $1 AND quantity > 0
	`
	tag, err := tx.Exec(ctx, decrementSQL, rec.BookID)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		var exists bool
		if err := tx.QueryRow(ctx, `SELECT EXISTS (SELECT 1 FROM books WHERE id = $1)`, rec.BookID).Scan(&exists); err != nil {
			return err
		}
		if !exists {
			return usecase.ErrNotFound
		}
		return usecase.ErrOutOfStock
	}

	return tx.Commit(ctx)
}

// Return deletes every live borrow row for the book and bumps the
// quantity by the number of rows that actually went away, so a return
// for a never-borrowed book is a no-op rather than free stock.
func (r *BorrowPG) Return(ctx context.Context, bookID string) (int64, error) {
	tx, err := r.db.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return 0, err
	}
	defer tx.Rollback(ctx)

	tag, err := tx.Exec(ctx, `DELETE FROM borrows WHERE book_id = $1`, bookID)
	if err != nil {
		return 0, err
	}
	removed := tag.RowsAffected()
	if removed > 0 {
		const incrementSQL = `
		UPDATE books SET quantity = quantity + $2, updated_at = now()
		WHERE id = $1
		`
		if _, err := tx.Exec(ctx, incrementSQL, bookID, removed); err != nil {
			return 0, err
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return 0, err
	}
	return removed, nil
}

func (r *BorrowPG) ListByBorrower(ctx context.Context, email string) ([]entity.BorrowRecord, error) {
	const query = `
	SELECT id, borrower_email, borrower_name, book_id, book_name, created_at
	FROM borrows
	WHERE borrower_email = $1
	ORDER BY created_at DESC
	`
	rows, err := r.db.Query(ctx, query, email)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var records []entity.BorrowRecord
	for rows.Next() {
		var rec entity.BorrowRecord
		if err := rows.Scan(
			&rec.ID, &rec.BorrowerEmail, &rec.BorrowerName,
			&rec.BookID, &rec.BookName, &rec.CreatedAt,
		); err != nil {
			return nil, err
		}
		records = append(records, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return records, nil
}
