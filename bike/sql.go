package bike

import (
	"context"
	"database/sql"
	"errors"

	"github.com/jmoiron/sqlx"
)

var ErrNotFound = errors.New("bike not found")

type Repository struct {
	db *sqlx.DB
}

func NewRepository(db *sqlx.DB) *Repository {
	return &Repository{db: db}
}

// GetBikes fetches the whole catalog, cheapest first. Unavailable bikes are
// included; the caller decides how to render them.
func (r *Repository) GetBikes(ctx context.Context) ([]Bike, error) {
	var bikes []Bike
	err := r.db.SelectContext(ctx, &bikes, getBikes)
	return bikes, err
}

const getBikes = `SELECT * FROM bikes ORDER BY price_per_day ASC`

func (r *Repository) GetBike(ctx context.Context, id int64) (Bike, error) {
	var bike Bike

	err := r.db.GetContext(ctx, &bike, getBike, id)
	if errors.Is(err, sql.ErrNoRows) {
		return bike, ErrNotFound
	}

	return bike, err
}

const getBike = `SELECT * FROM bikes WHERE id = $1`
