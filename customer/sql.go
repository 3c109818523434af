package customer

import (
	"context"

	"github.com/jmoiron/sqlx"
)

type Repository struct {
	db *sqlx.DB
}

func NewRepository(db *sqlx.DB) *Repository {
	return &Repository{
		db: db,
	}
}

func (r *Repository) FindOrCreate(ctx context.Context, name, email, phone, idNumber string) (Customer, error) {
	return FindOrCreate(ctx, r.db, name, email, phone, idNumber)
}

// FindOrCreate resolves the customer row for an email, inserting one if it
// does not exist yet. The upsert keys on the unique email index so concurrent
// submissions of the same new email resolve to a single row; the no-op
// conflict update exists only to make RETURNING yield the existing row.
// It takes a queryer so callers can run it inside their own transaction.
func FindOrCreate(ctx context.Context, q sqlx.QueryerContext, name, email, phone, idNumber string) (Customer, error) {
	var customer Customer
	err := sqlx.GetContext(ctx, q, &customer, findOrCreateQuery, name, email, phone, idNumber)
	return customer, err
}

const findOrCreateQuery = `
INSERT INTO customers (name, email, phone, id_number)
VALUES ($1, $2, $3, $4)
ON CONFLICT (email) DO UPDATE SET email = excluded.email
RETURNING *
`
