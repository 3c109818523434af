package garage

import (
	"context"

	"github.com/jmoiron/sqlx"
)

type Repository struct {
	db *sqlx.DB
}

func NewRepository(db *sqlx.DB) *Repository {
	return &Repository{db: db}
}

type CreateParams struct {
	CustomerName     string
	CustomerPhone    string
	BikeModel        string
	IssueDescription string
	Location         string
	Urgency          Urgency
}

// Create inserts one request; status and created_at take the store's defaults.
func (r *Repository) Create(ctx context.Context, p CreateParams) (Request, error) {
	var req Request
	err := r.db.GetContext(ctx, &req, createRequestQuery,
		p.CustomerName, p.CustomerPhone, p.BikeModel, p.IssueDescription, p.Location, p.Urgency)
	return req, err
}

const createRequestQuery = `
INSERT INTO garage_requests (customer_name, customer_phone, bike_model, issue_description, location, urgency)
VALUES ($1, $2, $3, $4, $5, $6)
RETURNING *
`

// GetRequests fetches all service requests, newest first.
func (r *Repository) GetRequests(ctx context.Context) ([]Request, error) {
	var reqs []Request
	err := r.db.SelectContext(ctx, &reqs, getRequestsQuery)
	return reqs, err
}

const getRequestsQuery = `SELECT * FROM garage_requests ORDER BY created_at DESC`
