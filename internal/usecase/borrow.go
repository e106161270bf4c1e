package usecase

import (
	"context"

	"libraryapi/internal/entity"
)

// BorrowRepository implements the lending protocol. Both mutations run
// inside a single database transaction so the quantity counter and the
// borrow records cannot drift apart under concurrent requests.
type BorrowRepository interface {
	// Borrow creates a borrow record and decrements the book's quantity.
	// Fails with ErrDuplicateBorrow if the (borrower_email, book_id) pair
	// already has a live record, with ErrOutOfStock if quantity is zero,
	// and with ErrNotFound if the book does not exist.
	Borrow(ctx context.Context, rec *entity.BorrowRecord) error
	// Return deletes the live borrow records for a book and restores the
	// quantity by the number of rows actually removed. A no-op delete
	// leaves the counter untouched. Returns the removed count.
	Return(ctx context.Context, bookID string) (int64, error)
	ListByBorrower(ctx context.Context, email string) ([]entity.BorrowRecord, error)
}
