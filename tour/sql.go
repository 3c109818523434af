package tour

import (
	"context"
	"database/sql"
	"errors"

	"github.com/jmoiron/sqlx"
)

var ErrNotFound = errors.New("tour not found")

type Repository struct {
	db *sqlx.DB
}

func NewRepository(db *sqlx.DB) *Repository {
	return &Repository{db: db}
}

// GetTours fetches all tour packages, shortest first.
func (r *Repository) GetTours(ctx context.Context) ([]Tour, error) {
	var tours []Tour
	err := r.db.SelectContext(ctx, &tours, getTours)
	return tours, err
}

const getTours = `SELECT * FROM tours ORDER BY duration_days ASC`

func (r *Repository) GetTour(ctx context.Context, id int64) (Tour, error) {
	var t Tour

	err := r.db.GetContext(ctx, &t, getTour, id)
	if errors.Is(err, sql.ErrNoRows) {
		return t, ErrNotFound
	}

	return t, err
}

const getTour = `SELECT * FROM tours WHERE id = $1`
