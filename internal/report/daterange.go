package report

import (
	"errors"
	"fmt"
	"time"
)

const DateLayout = "2006-01-02"

var ErrInvalidRange = errors.New("fromDate must not be after toDate")

// DateRange is an inclusive range of calendar days. A nil bound is open.
type DateRange struct {
	From *time.Time
	To   *time.Time
}

// ParseDate accepts YYYY-MM-DD or RFC3339 and returns midnight UTC of that day.
func ParseDate(s string) (time.Time, error) {
	t, err := time.Parse(DateLayout, s)
	if err != nil {
		ts, rfcErr := time.Parse(time.RFC3339, s)
		if rfcErr != nil {
			return time.Time{}, fmt.Errorf("invalid date %q, use YYYY-MM-DD", s)
		}
		t = ts
	}
	return day(t), nil
}

// ParseDateRange builds a range from optional query strings; "" leaves a side open.
func ParseDateRange(from, to string) (DateRange, error) {
	var r DateRange
	if from != "" {
		t, err := ParseDate(from)
		if err != nil {
			return r, err
		}
		r.From = &t
	}
	if to != "" {
		t, err := ParseDate(to)
		if err != nil {
			return r, err
		}
		r.To = &t
	}
	if r.From != nil && r.To != nil && r.From.After(*r.To) {
		return r, ErrInvalidRange
	}
	return r, nil
}

// IsZero reports an unbounded range.
func (r DateRange) IsZero() bool {
	return r.From == nil && r.To == nil
}

// Contains compares calendar days only, so both endpoints are included.
func (r DateRange) Contains(t time.Time) bool {
	d := day(t)
	if r.From != nil && d.Before(day(*r.From)) {
		return false
	}
	if r.To != nil && d.After(day(*r.To)) {
		return false
	}
	return true
}

// UpperExclusive is the first instant after the range, for half-open SQL filters.
func (r DateRange) UpperExclusive() *time.Time {
	if r.To == nil {
		return nil
	}
	next := day(*r.To).AddDate(0, 0, 1)
	return &next
}

func day(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
