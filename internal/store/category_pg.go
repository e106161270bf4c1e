package store

import (
	"context"

	"libraryapi/internal/entity"

	"github.com/jackc/pgx/v5/pgxpool"
)

type CategoryPG struct {
	db *pgxpool.Pool
}

func NewCategoryPG(db *pgxpool.Pool) *CategoryPG {
	return &CategoryPG{db: db}
}

func (r *CategoryPG) List(ctx context.Context) ([]entity.Category, error) {
	const query = `SELECT id, name, image FROM categories ORDER BY name`
	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var categories []entity.Category
	for rows.Next() {
		var c entity.Category
		if err := rows.Scan(&c.ID, &c.Name, &c.Image); err != nil {
			return nil, err
		}
		categories = append(categories, c)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return categories, nil
}
