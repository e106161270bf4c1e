package store

import (
	"context"
	"errors"

	"libraryapi/internal/usecase"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type AdminPG struct {
	db *pgxpool.Pool
}

func NewAdminPG(db *pgxpool.Pool) *AdminPG {
	return &AdminPG{db: db}
}

// AdminEmail returns the single stored admin identity.
func (r *AdminPG) AdminEmail(ctx context.Context) (string, error) {
	const query = `SELECT admin_email FROM admin_settings WHERE id = 1`
	var email string
	if err := r.db.QueryRow(ctx, query).Scan(&email); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return "", usecase.ErrNotFound
		}
		return "", err
	}
	return email, nil
}
