package model

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// ErrInvalidMonth is returned when month text does not name a calendar month.
var ErrInvalidMonth = errors.New("invalid month")

// Month is a calendar month, 1 = January.
type Month int

const (
	January Month = iota + 1
	February
	March
	April
	May
	June
	July
	August
	September
	October
	November
	December
)

// Months lists the twelve months in calendar order.
var Months = []Month{
	January, February, March, April, May, June,
	July, August, September, October, November, December,
}

var abbrevs = [...]string{"Jan", "Feb", "Mar", "Apr", "May", "Jun", "Jul", "Aug", "Sep", "Oct", "Nov", "Dec"}

// String returns the canonical three-letter abbreviation, e.g. "Mar".
func (m Month) String() string {
	if !m.Valid() {
		return fmt.Sprintf("Month(%d)", int(m))
	}
	return abbrevs[m-1]
}

// Name returns the full English month name, e.g. "March".
func (m Month) Name() string {
	return time.Month(m).String()
}

// Valid reports whether m is one of January..December.
func (m Month) Valid() bool {
	return m >= January && m <= December
}

// ParseMonth normalizes a month name or abbreviation in any case.
// The input is capitalized and truncated to its first three letters:
// "march", "MARCH" and "Mar" all yield March.
func ParseMonth(s string) (Month, error) {
	// Casers carry state, so each call gets its own.
	norm := []rune(cases.Title(language.English).String(strings.TrimSpace(s)))
	if len(norm) > 3 {
		norm = norm[:3]
	}
	abbrev := string(norm)
	for i, a := range abbrevs {
		if a == abbrev {
			return Month(i + 1), nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrInvalidMonth, s)
}
