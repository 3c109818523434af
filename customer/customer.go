package customer

import (
	"time"
)

// Customer is a renter identity, created lazily on first booking.
// Email is the identity key: at most one row exists per email value.
type Customer struct {
	ID    int64  `db:"id"`
	Name  string `db:"name"`
	Email string `db:"email"`
	Phone string `db:"phone"`
	// IDNumber is the renter's personal identification number, distinct
	// from the database-assigned id.
	IDNumber  string    `db:"id_number"`
	CreatedAt time.Time `db:"created_at"`
}
