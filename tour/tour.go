// Package tour holds the guided tour catalog.
package tour

import (
	"github.com/lib/pq"
)

// Tour represents a guided tour package which can be booked.
type Tour struct {
	ID           int64   `db:"id"`
	Name         string  `db:"name"`
	Destination  string  `db:"destination"`
	Description  string  `db:"description"`
	DurationDays int     `db:"duration_days"`
	Price        float64 `db:"price"`
	ImageURL     string  `db:"image_url"`
	// Highlights is an ordered list of itinerary highlights.
	Highlights      pq.StringArray `db:"highlights"`
	Difficulty      string         `db:"difficulty"`
	MaxParticipants int            `db:"max_participants"`
	Available       bool           `db:"available"`
}
