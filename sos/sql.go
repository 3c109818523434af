package sos

import (
	"context"
	"database/sql"

	"github.com/jmoiron/sqlx"
)

type Repository struct {
	db *sqlx.DB
}

func NewRepository(db *sqlx.DB) *Repository {
	return &Repository{db: db}
}

type CreateParams struct {
	Name          string
	Phone         string
	Location      string
	EmergencyType EmergencyType
	Description   string
	// Latitude and Longitude are nil when the caller sent no coordinates.
	// A pointer to 0 is a real fix and is stored as 0.
	Latitude  *float64
	Longitude *float64
}

func (r *Repository) Create(ctx context.Context, p CreateParams) (Request, error) {
	lat := nullFloat(p.Latitude)
	lng := nullFloat(p.Longitude)

	var req Request
	err := r.db.GetContext(ctx, &req, createRequestQuery,
		p.Name, p.Phone, p.Location, p.EmergencyType, p.Description, lat, lng)
	return req, err
}

const createRequestQuery = `
INSERT INTO sos_requests (name, phone, location, emergency_type, description, latitude, longitude)
VALUES ($1, $2, $3, $4, $5, $6, $7)
RETURNING *
`

// GetRequests fetches all SOS requests, newest first.
func (r *Repository) GetRequests(ctx context.Context) ([]Request, error) {
	var reqs []Request
	err := r.db.SelectContext(ctx, &reqs, getRequestsQuery)
	return reqs, err
}

const getRequestsQuery = `SELECT * FROM sos_requests ORDER BY created_at DESC`

func nullFloat(f *float64) sql.NullFloat64 {
	if f == nil {
		return sql.NullFloat64{}
	}
	return sql.NullFloat64{Float64: *f, Valid: true}
}
