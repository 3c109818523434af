// Package bike holds the motorcycle catalog.
package bike

import (
	"github.com/lib/pq"
)

// Bike represents a motorcycle which can be rented through a booking.
type Bike struct {
	ID   int64  `db:"id"`
	Name string `db:"name"`
	// Type is the catalog category (e.g. "adventure", "cruiser").
	Type        string  `db:"type"`
	Description string  `db:"description"`
	PricePerDay float64 `db:"price_per_day"`
	ImageURL    string  `db:"image_url"`
	// Features is an ordered list of selling points shown on the detail page.
	Features  pq.StringArray `db:"features"`
	Available bool           `db:"available"`
	Location  string         `db:"location"`
}
