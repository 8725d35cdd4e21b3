package domain

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// updatedDateSentinel is what the carrier export writes when a shipment has
// no "last update" date yet.
const updatedDateSentinel = "-"

// CleanText normalizes a free-text field coming from a spreadsheet export:
// stray double quotes are removed, internal whitespace runs collapse to a
// single space and the result is trimmed. Empty input stays empty.
func CleanText(s string) string {
	s = strings.ReplaceAll(s, `"`, "")
	return strings.Join(strings.Fields(s), " ")
}

// NormalizeOrderRef cleans an order back-reference, additionally stripping
// the literal "=" prefix/suffix some spreadsheet exports wrap cell values in.
func NormalizeOrderRef(s string) string {
	return strings.Trim(CleanText(s), "=")
}

// ParseDate converts a day/month/year date with one- or two-digit components
// ("5/1/2025", "05/01/2025") to the canonical zero-padded YYYY-MM-DD form.
func ParseDate(s string) (string, error) {
	parts := strings.Split(strings.TrimSpace(s), "/")
	if len(parts) != 3 {
		return "", fmt.Errorf("invalid date %q: expected d/m/yyyy", s)
	}

	day, err := strconv.Atoi(parts[0])
	if err != nil {
		return "", fmt.Errorf("invalid day in date %q", s)
	}
	month, err := strconv.Atoi(parts[1])
	if err != nil {
		return "", fmt.Errorf("invalid month in date %q", s)
	}
	year, err := strconv.Atoi(parts[2])
	if err != nil {
		return "", fmt.Errorf("invalid year in date %q", s)
	}

	// time.Date normalizes out-of-range components (32/01 becomes 01/02),
	// so round-trip the values to reject impossible dates.
	d := time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.UTC)
	if d.Year() != year || d.Month() != time.Month(month) || d.Day() != day {
		return "", fmt.Errorf("invalid date %q: no such calendar day", s)
	}

	return d.Format("2006-01-02"), nil
}

// ParseOptionalDate handles the carrier's "updated date" field: the "-"
// sentinel and blank input map to nil rather than a parse attempt.
func ParseOptionalDate(s string) (*string, error) {
	trimmed := strings.TrimSpace(s)
	if trimmed == "" || trimmed == updatedDateSentinel {
		return nil, nil
	}

	iso, err := ParseDate(trimmed)
	if err != nil {
		return nil, err
	}
	return &iso, nil
}

// ParseOptionalInt coerces a numeric-looking field ("bultos") to an int,
// mapping the "-" sentinel and blank input to nil.
func ParseOptionalInt(s string) (*int, error) {
	trimmed := strings.TrimSpace(s)
	if trimmed == "" || trimmed == updatedDateSentinel {
		return nil, nil
	}

	n, err := strconv.Atoi(trimmed)
	if err != nil {
		return nil, fmt.Errorf("invalid integer %q", s)
	}
	return &n, nil
}

// ParseOptionalFloat coerces a numeric-looking field ("kgs") to a float,
// tolerating the Spanish comma decimal separator. The "-" sentinel and blank
// input map to nil.
func ParseOptionalFloat(s string) (*float64, error) {
	trimmed := strings.TrimSpace(s)
	if trimmed == "" || trimmed == updatedDateSentinel {
		return nil, nil
	}

	trimmed = strings.ReplaceAll(trimmed, ",", ".")
	f, err := strconv.ParseFloat(trimmed, 64)
	if err != nil {
		return nil, fmt.Errorf("invalid number %q", s)
	}
	return &f, nil
}
