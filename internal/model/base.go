package model

import (
	"database/sql/driver"
	"fmt"
	"time"
)

// Date and DateTime layouts used by the careconnect schema
const (
	DateLayout     = "2006-01-02"
	DateTimeLayout = "2006-01-02 15:04:05"
)

// Address contains the address fields shared by clinics and patients
type Address struct {
	LotNumber    string `db:"lot_number" json:"lot_number"`
	StreetName   string `db:"street_name" json:"street_name"`
	Village      string `db:"village" json:"village"`
	City         string `db:"city" json:"city"`
	RegionNumber string `db:"region_number" json:"region_number"`
}

// DateTime is a timestamp rendered as "YYYY-MM-DD HH:MM:SS" in JSON
type DateTime struct {
	time.Time
}

func (d DateTime) MarshalJSON() ([]byte, error) {
	return []byte(`"` + d.Format(DateTimeLayout) + `"`), nil
}

func (d *DateTime) UnmarshalJSON(b []byte) error {
	if len(b) < 2 || b[0] != '"' || b[len(b)-1] != '"' {
		return fmt.Errorf("invalid datetime %s", string(b))
	}
	t, err := time.Parse(DateTimeLayout, string(b[1:len(b)-1]))
	if err != nil {
		return err
	}
	d.Time = t
	return nil
}

// Scan implements sql.Scanner for DATETIME and TIMESTAMP columns
func (d *DateTime) Scan(src interface{}) error {
	switch v := src.(type) {
	case time.Time:
		d.Time = v
	case []byte:
		return d.parse(string(v))
	case string:
		return d.parse(v)
	case nil:
		d.Time = time.Time{}
	default:
		return fmt.Errorf("cannot scan %T into DateTime", src)
	}
	return nil
}

func (d DateTime) Value() (driver.Value, error) {
	return d.Time, nil
}

func (d *DateTime) parse(s string) error {
	t, err := time.Parse(DateTimeLayout, s)
	if err != nil {
		return fmt.Errorf("failed to parse datetime %q: %w", s, err)
	}
	d.Time = t
	return nil
}
