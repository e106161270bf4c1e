package usecase

import (
	"context"

	"libraryapi/internal/entity"
)

// Stock filters applied at read time over the quantity column.
// An unknown filter value means no filter.
const (
	StockFilterAvailable = "available"
	StockFilterStockOut  = "stockOut"
)

type ListParams struct {
	Filter string
}

// Repository interface
// Defines the contract for reading and mutating book records.
type BookRepository interface {
	List(ctx context.Context, p ListParams) ([]entity.Book, error)
	GetByID(ctx context.Context, id string) (entity.Book, error)
	ListByCategory(ctx context.Context, category string) ([]entity.Book, error)
	Create(ctx context.Context, b *entity.Book) error
	// Upsert replaces the book's fields, inserting the row if id is unknown.
	Upsert(ctx context.Context, id string, b entity.Book) error
	Delete(ctx context.Context, id string) error
}
