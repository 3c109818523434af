package booking

import (
	"context"
	"database/sql"
	"time"

	"github.com/jmoiron/sqlx"

	"github.com/semanticallynull/motorent-backend/customer"
)

type Repository struct {
	db *sqlx.DB
}

func NewRepository(db *sqlx.DB) *Repository {
	return &Repository{db: db}
}

// CreateParams carries everything needed to record a booking, including the
// renter's contact details used to resolve or create their customer row.
type CreateParams struct {
	CustomerName  string
	CustomerEmail string
	CustomerPhone string
	// CustomerIDNumber is the renter's personal identification string,
	// not a database key.
	CustomerIDNumber string

	Type       Type
	ItemID     int64
	StartDate  time.Time
	EndDate    time.Time
	TotalPrice float64
	Notes      string
}

// Create resolves the customer identity by email and inserts the booking,
// both inside one transaction. Status takes the store's default and empty
// notes are stored as NULL. The returned booking is the persisted row.
func (r *Repository) Create(ctx context.Context, p CreateParams) (Booking, error) {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return Booking{}, err
	}
	defer tx.Rollback()

	cust, err := customer.FindOrCreate(ctx, tx, p.CustomerName, p.CustomerEmail, p.CustomerPhone, p.CustomerIDNumber)
	if err != nil {
		return Booking{}, err
	}

	notes := sql.NullString{String: p.Notes, Valid: p.Notes != ""}

	var b Booking
	err = tx.GetContext(ctx, &b, createBookingQuery,
		cust.ID, p.Type, p.ItemID, p.StartDate, p.EndDate, p.TotalPrice, notes)
	if err != nil {
		return Booking{}, err
	}

	return b, tx.Commit()
}

const createBookingQuery = `
INSERT INTO bookings (customer_id, booking_type, item_id, start_date, end_date, total_price, notes)
VALUES ($1, $2, $3, $4, $5, $6, $7)
RETURNING *
`

// GetBookings fetches all bookings, newest first.
func (r *Repository) GetBookings(ctx context.Context) ([]Booking, error) {
	var bookings []Booking
	err := r.db.SelectContext(ctx, &bookings, getBookingsQuery)
	return bookings, err
}

const getBookingsQuery = `SELECT * FROM bookings ORDER BY created_at DESC`
