package entity

import (
	"fmt"
	"strings"
	"time"

	errs "github.com/amirhossein-jamali/ledger-dashboard/internal/domain/error"
)

// DateLayout is the calendar-date format accepted by date range filters
const DateLayout = "2006-01-02"

// AmountSign restricts records by the sign of their amount
type AmountSign string

// Amount sign filters
const (
	SignAll      AmountSign = "all"
	SignPositive AmountSign = "positive" // amount >= 0
	SignNegative AmountSign = "negative" // amount < 0
)

// ParseAmountSign validates a sign filter; blank means SignAll
func ParseAmountSign(value string) (AmountSign, error) {
	switch sign := AmountSign(strings.ToLower(strings.TrimSpace(value))); sign {
	case "", SignAll:
		return SignAll, nil
	case SignPositive, SignNegative:
		return sign, nil
	default:
		return "", errs.ErrInvalidAmountSign
	}
}

// DateRange is an inclusive instant range. A zero bound is unbounded.
type DateRange struct {
	Start time.Time
	End   time.Time
}

// NewDateRange builds a range from calendar dates interpreted in loc.
// Start is normalized to the first instant of its day and End to the last
// instant of its day, so a same-day range covers the whole day.
// Either date may be blank.
func NewDateRange(start, end string, loc *time.Location) (DateRange, error) {
	if loc == nil {
		loc = time.UTC
	}

	var r DateRange
	if s := strings.TrimSpace(start); s != "" {
		day, err := time.ParseInLocation(DateLayout, s, loc)
		if err != nil {
			return DateRange{}, fmt.Errorf("%w: start %q", errs.ErrInvalidDate, start)
		}
		r.Start = day
	}
	if e := strings.TrimSpace(end); e != "" {
		day, err := time.ParseInLocation(DateLayout, e, loc)
		if err != nil {
			return DateRange{}, fmt.Errorf("%w: end %q", errs.ErrInvalidDate, end)
		}
		r.End = EndOfDay(day)
	}

	if !r.Start.IsZero() && !r.End.IsZero() && r.Start.After(r.End) {
		return DateRange{}, errs.ErrInvalidDateRange
	}
	return r, nil
}

// StartOfDay returns midnight of t's calendar day in t's location
func StartOfDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}

// EndOfDay returns the last representable instant of t's calendar day
func EndOfDay(t time.Time) time.Time {
	return StartOfDay(t).AddDate(0, 0, 1).Add(-time.Nanosecond)
}

// IsZero reports whether neither bound is set
func (r DateRange) IsZero() bool {
	return r.Start.IsZero() && r.End.IsZero()
}

// Contains reports whether t falls within the range, both ends inclusive
func (r DateRange) Contains(t time.Time) bool {
	if !r.Start.IsZero() && t.Before(r.Start) {
		return false
	}
	if !r.End.IsZero() && t.After(r.End) {
		return false
	}
	return true
}

// Criteria is the conjunctive filter state of a transaction view
type Criteria struct {
	Search     string
	Type       TransactionType // empty matches any type
	AmountSign AmountSign      // empty behaves as SignAll
	DateRange  DateRange
}

// HasSearch reports whether a non-blank search term is set
func (c Criteria) HasSearch() bool {
	return strings.TrimSpace(c.Search) != ""
}

// IsActive reports whether any criterion narrows the record set
func (c Criteria) IsActive() bool {
	return c.HasSearch() ||
		c.Type != "" ||
		(c.AmountSign != "" && c.AmountSign != SignAll) ||
		!c.DateRange.IsZero()
}
