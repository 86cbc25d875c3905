// Package types implements the value types accepted by the finance tracker API.
package types

import (
	"database/sql/driver"
	"fmt"
	"strings"
	"time"
)

const monthLayout = "2006-01"

// Month is a month in a specific year.
type Month time.Time

// NewMonth returns a new Month.
func NewMonth(year int, month time.Month) Month {
	return Month(time.Date(year, month, 1, 0, 0, 0, 0, time.UTC))
}

// CurrentMonth returns the month of the current time in UTC.
func CurrentMonth() Month {
	return MonthOf(time.Now().In(time.UTC))
}

// MonthOf returns the Month in which a time occurs.
func MonthOf(t time.Time) Month {
	year, month, _ := t.Date()
	return NewMonth(year, month)
}

// ParseMonth parses a "YYYY-MM" string and returns the Month value it represents.
//
// The month number must be between 01 and 12.
func ParseMonth(s string) (Month, error) {
	t, err := time.Parse(monthLayout, s)
	if err != nil {
		return Month{}, ErrInvalidMonth
	}

	return MonthOf(t), nil
}

// String returns the month formatted as YYYY-MM.
func (m Month) String() string {
	return fmt.Sprintf("%04d-%02d", time.Time(m).Year(), time.Time(m).Month())
}

// Range returns the first and the last second of the month.
func (m Month) Range() (time.Time, time.Time) {
	start := time.Time(m)
	end := time.Date(start.Year(), start.Month(), m.LastDay(), 23, 59, 59, 0, time.UTC)
	return start, end
}

// LastDay returns the number of the last day of the month.
func (m Month) LastDay() int {
	return time.Time(m.AddDate(0, 1)).AddDate(0, 0, -1).Day()
}

// MarshalJSON implements the json.Marshaler interface.
// The output is the month formatted as YYYY-MM.
func (m Month) MarshalJSON() ([]byte, error) {
	return []byte(`"` + m.String() + `"`), nil
}

// UnmarshalJSON implements the json.Unmarshaler interface.
// The month must be a string in YYYY-MM format.
func (m *Month) UnmarshalJSON(data []byte) error {
	value := string(data)
	if !strings.HasPrefix(value, `"`) || !strings.HasSuffix(value, `"`) {
		return ErrInvalidMonth
	}

	month, err := ParseMonth(strings.Trim(value, `"`))
	if err != nil {
		return err
	}

	*m = month
	return nil
}

// Scan reads the value from the database.
func (m *Month) Scan(value any) error {
	var s string
	switch v := value.(type) {
	case string:
		s = v
	case []byte:
		s = string(v)
	case time.Time:
		*m = MonthOf(v)
		return nil
	default:
		return fmt.Errorf("cannot scan %T into a month", value)
	}

	month, err := ParseMonth(s)
	if err != nil {
		return fmt.Errorf("cannot scan %q into a month: %w", s, err)
	}

	*m = month
	return nil
}

// Value returns the value for the SQL driver to write to the database.
func (m Month) Value() (driver.Value, error) {
	return m.String(), nil
}

// GormDataType defines the data type used by gorm for the type.
func (Month) GormDataType() string {
	return "text"
}

// AddDate adds a specified amount of years and months.
func (m Month) AddDate(years, months int) Month {
	return Month(time.Time(m).AddDate(years, months, 0))
}
