package usecase

import (
	"context"

	"libraryapi/internal/entity"
)

type CategoryRepository interface {
	List(ctx context.Context) ([]entity.Category, error)
}
