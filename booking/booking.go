package booking

import (
	"database/sql"
	"database/sql/driver"
	"fmt"
	"time"

	"github.com/goccy/go-json"
)

// Type says which catalog a booking's item id points into.
type Type int

const (
	TypeBike Type = iota
	TypeTour
)

func (t Type) String() string {
	return [...]string{"bike", "tour"}[t]
}

func (t Type) MarshalJSON() ([]byte, error) {
	return json.Marshal(t.String())
}

func (t Type) Value() (driver.Value, error) {
	return t.String(), nil
}

func (t *Type) Scan(i any) error {
	var s string
	switch v := i.(type) {
	case string:
		s = v
	case []byte:
		s = string(v)
	default:
		return fmt.Errorf("cannot scan %T into booking type", i)
	}

	parsed, err := ParseType(s)
	if err != nil {
		return err
	}
	*t = parsed
	return nil
}

func ParseType(s string) (Type, error) {
	switch s {
	case "bike":
		return TypeBike, nil
	case "tour":
		return TypeTour, nil
	}
	return 0, fmt.Errorf("unknown booking type %q", s)
}

// Booking is a durable rental record. It references the resolved customer
// row and, depending on Type, a row in either the bikes or tours catalog.
// There is no cross-table integrity on ItemID. Rows are never mutated after
// insertion; status transitions happen through an administrative channel
// outside this system.
type Booking struct {
	ID         int64     `db:"id"`
	CustomerID int64     `db:"customer_id"`
	Type       Type      `db:"booking_type"`
	ItemID     int64     `db:"item_id"`
	StartDate  time.Time `db:"start_date"`
	EndDate    time.Time `db:"end_date"`
	// TotalPrice is computed by the caller (days times day-rate, or the
	// flat tour price) and stored verbatim.
	TotalPrice float64        `db:"total_price"`
	Status     string         `db:"status"`
	Notes      sql.NullString `db:"notes"`
	CreatedAt  time.Time      `db:"created_at"`
}
