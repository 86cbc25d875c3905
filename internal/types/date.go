package types

import (
	"strings"
	"time"
)

const dateLayout = "2006-01-02"

// Date is a calendar day. It is accepted in YYYY-MM-DD format and
// represented as midnight UTC of that day.
type Date time.Time

// ParseDate parses a "YYYY-MM-DD" string.
func ParseDate(s string) (Date, error) {
	t, err := time.Parse(dateLayout, s)
	if err != nil {
		return Date{}, ErrInvalidDate
	}

	return Date(t), nil
}

// Time returns the date as time.Time.
func (d Date) Time() time.Time {
	return time.Time(d)
}

// String returns the date formatted as YYYY-MM-DD.
func (d Date) String() string {
	return time.Time(d).Format(dateLayout)
}

// MarshalJSON implements the json.Marshaler interface.
func (d Date) MarshalJSON() ([]byte, error) {
	return []byte(`"` + d.String() + `"`), nil
}

// UnmarshalJSON implements the json.Unmarshaler interface.
func (d *Date) UnmarshalJSON(data []byte) error {
	value := string(data)
	if !strings.HasPrefix(value, `"`) || !strings.HasSuffix(value, `"`) {
		return ErrInvalidDate
	}

	date, err := ParseDate(strings.Trim(value, `"`))
	if err != nil {
		return err
	}

	*d = date
	return nil
}
