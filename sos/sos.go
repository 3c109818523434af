// Package sos holds roadside emergency requests.
package sos

import (
	"database/sql"
	"database/sql/driver"
	"fmt"
	"time"

	"github.com/goccy/go-json"
)

type EmergencyType int

const (
	Breakdown EmergencyType = iota
	Accident
	Medical
	Security
	Other
)

func (e EmergencyType) String() string {
	return [...]string{"breakdown", "accident", "medical", "security", "other"}[e]
}

func (e EmergencyType) MarshalJSON() ([]byte, error) {
	return json.Marshal(e.String())
}

func (e EmergencyType) Value() (driver.Value, error) {
	return e.String(), nil
}

func (e *EmergencyType) Scan(i any) error {
	var s string
	switch v := i.(type) {
	case string:
		s = v
	case []byte:
		s = string(v)
	default:
		return fmt.Errorf("cannot scan %T into emergency type", i)
	}

	parsed, err := ParseEmergencyType(s)
	if err != nil {
		return err
	}
	*e = parsed
	return nil
}

func ParseEmergencyType(s string) (EmergencyType, error) {
	switch s {
	case "breakdown":
		return Breakdown, nil
	case "accident":
		return Accident, nil
	case "medical":
		return Medical, nil
	case "security":
		return Security, nil
	case "other":
		return Other, nil
	}
	return 0, fmt.Errorf("unknown emergency type %q", s)
}

// Request is an SOS emergency request. Latitude and Longitude are NULL when
// the caller's device supplied no fix; a reported 0,0 is stored as 0,0.
// ResponderName and ResponseTime are back-filled by dispatch out of band.
type Request struct {
	ID            int64           `db:"id"`
	Name          string          `db:"name"`
	Phone         string          `db:"phone"`
	Location      string          `db:"location"`
	EmergencyType EmergencyType   `db:"emergency_type"`
	Description   string          `db:"description"`
	Latitude      sql.NullFloat64 `db:"latitude"`
	Longitude     sql.NullFloat64 `db:"longitude"`
	Status        string          `db:"status"`
	ResponderName sql.NullString  `db:"responder_name"`
	ResponseTime  sql.NullTime    `db:"response_time"`
	CreatedAt     time.Time       `db:"created_at"`
}
