package model

import (
	"fmt"
	"time"
)

// Date is a calendar day normalized to YYYY-MM-DD. The zero value means
// "no date set". No time of day or time zone is ever stored.
type Date string

const dateLayout = "2006-01-02"

// NewDate truncates a time to its calendar day.
func NewDate(t time.Time) Date {
	return Date(t.Format(dateLayout))
}

// ParseDate validates and normalizes a YYYY-MM-DD string.
func ParseDate(s string) (Date, error) {
	if s == "" {
		return "", nil
	}
	t, err := time.Parse(dateLayout, s)
	if err != nil {
		return "", fmt.Errorf("invalid date %q: %w", s, err)
	}
	return NewDate(t), nil
}

// IsZero reports whether no date is set.
func (d Date) IsZero() bool {
	return d == ""
}

// Time converts the date back to a time.Time at midnight local time.
// Returns the zero time for an unset date.
func (d Date) Time() time.Time {
	if d.IsZero() {
		return time.Time{}
	}
	t, err := time.ParseInLocation(dateLayout, string(d), time.Local)
	if err != nil {
		return time.Time{}
	}
	return t
}

func (d Date) String() string {
	return string(d)
}
