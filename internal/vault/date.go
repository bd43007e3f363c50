package vault

import (
	"fmt"
	"time"

	"gopkg.in/yaml.v3"
)

// DateLayout is the calendar-day format used throughout the vault:
// in front matter fields, tutorial filenames, and section headings.
const DateLayout = "02-01-2006"

// Date is a calendar day with DD-MM-YYYY text representation.
// The zero Date marshals as null and reports IsZero.
type Date struct {
	time.Time
}

// Today returns the current calendar day in local time.
func Today() Date {
	return DateOf(time.Now())
}

// DateOf truncates t to its calendar day in local time.
func DateOf(t time.Time) Date {
	y, m, d := t.Date()
	return Date{time.Date(y, m, d, 0, 0, 0, 0, time.Local)}
}

// ParseDate parses a DD-MM-YYYY string.
func ParseDate(s string) (Date, error) {
	t, err := time.ParseInLocation(DateLayout, s, time.Local)
	if err != nil {
		return Date{}, fmt.Errorf("invalid date %q: expected DD-MM-YYYY", s)
	}
	return Date{t}, nil
}

// String renders the date as DD-MM-YYYY. The zero Date renders as "never".
func (d Date) String() string {
	if d.IsZero() {
		return "never"
	}
	return d.Format(DateLayout)
}

// AddDays returns the date n days later.
func (d Date) AddDays(n int) Date {
	return DateOf(d.AddDate(0, 0, n))
}

// DaysUntil returns the whole days from d to other (negative if other is earlier).
func (d Date) DaysUntil(other Date) int {
	return int(other.Sub(d.Time).Hours() / 24)
}

// MarshalYAML renders the date as a DD-MM-YYYY scalar.
func (d Date) MarshalYAML() (any, error) {
	return d.Format(DateLayout), nil
}

// UnmarshalYAML parses a DD-MM-YYYY scalar. A YAML null yields the zero Date.
func (d *Date) UnmarshalYAML(value *yaml.Node) error {
	if value.Tag == "!!null" {
		*d = Date{}
		return nil
	}
	parsed, err := ParseDate(value.Value)
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}
