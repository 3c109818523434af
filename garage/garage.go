// Package garage holds workshop service requests.
package garage

import (
	"database/sql"
	"database/sql/driver"
	"fmt"
	"time"

	"github.com/goccy/go-json"
)

type Urgency int

const (
	UrgencyLow Urgency = iota
	UrgencyMedium
	UrgencyHigh
)

func (u Urgency) String() string {
	return [...]string{"low", "medium", "high"}[u]
}

func (u Urgency) MarshalJSON() ([]byte, error) {
	return json.Marshal(u.String())
}

func (u Urgency) Value() (driver.Value, error) {
	return u.String(), nil
}

func (u *Urgency) Scan(i any) error {
	var s string
	switch v := i.(type) {
	case string:
		s = v
	case []byte:
		s = string(v)
	default:
		return fmt.Errorf("cannot scan %T into urgency", i)
	}

	parsed, err := ParseUrgency(s)
	if err != nil {
		return err
	}
	*u = parsed
	return nil
}

func ParseUrgency(s string) (Urgency, error) {
	switch s {
	case "low":
		return UrgencyLow, nil
	case "medium":
		return UrgencyMedium, nil
	case "high":
		return UrgencyHigh, nil
	}
	return 0, fmt.Errorf("unknown urgency %q", s)
}

// Request is a garage service request. EstimatedCost and AssignedMechanic
// are back-filled by the workshop out of band; this system only ever writes
// them as NULL.
type Request struct {
	ID               int64           `db:"id"`
	CustomerName     string          `db:"customer_name"`
	CustomerPhone    string          `db:"customer_phone"`
	BikeModel        string          `db:"bike_model"`
	IssueDescription string          `db:"issue_description"`
	Location         string          `db:"location"`
	Urgency          Urgency         `db:"urgency"`
	Status           string          `db:"status"`
	EstimatedCost    sql.NullFloat64 `db:"estimated_cost"`
	AssignedMechanic sql.NullString  `db:"assigned_mechanic"`
	CreatedAt        time.Time       `db:"created_at"`
}
