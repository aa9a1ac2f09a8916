package domain

import (
	"fmt"
	"strconv"
	"strings"
)

// Cents is a currency amount in integer cents. All money in this application
// is fixed-point: arithmetic happens on the integer cent count, never on
// binary floating point, so nightly fees multiply without rounding drift.
//
// Over JSON a Cents value reads and writes as a decimal number with exactly
// two fractional digits (1599 ↔ 15.99), matching the seeded reference data.
type Cents int64

// Times returns the total cost of n nights at fee c per night.
func (c Cents) Times(n int) Cents {
	return c * Cents(n)
}

// String formats the amount as a plain decimal, e.g. "15.99".
func (c Cents) String() string {
	sign := ""
	v := int64(c)
	if v < 0 {
		sign = "-"
		v = -v
	}
	return fmt.Sprintf("%s%d.%02d", sign, v/100, v%100)
}

// MarshalJSON writes the amount as a JSON number with two fractional digits.
func (c Cents) MarshalJSON() ([]byte, error) {
	return []byte(c.String()), nil
}

// UnmarshalJSON parses a JSON number (or quoted decimal string) into cents
// without going through float64. Accepts at most two fractional digits.
func (c *Cents) UnmarshalJSON(data []byte) error {
	s := strings.Trim(string(data), `"`)
	parsed, err := ParseCents(s)
	if err != nil {
		return err
	}
	*c = parsed
	return nil
}

// ParseCents converts a decimal string like "15.99", "12", or "26.5" into
// cents. More than two fractional digits is an error — sub-cent amounts do
// not exist in this domain.
func ParseCents(s string) (Cents, error) {
	s = strings.TrimSpace(s)
	neg := strings.HasPrefix(s, "-")
	if neg {
		s = s[1:]
	}

	whole, frac := s, ""
	if i := strings.IndexByte(s, '.'); i >= 0 {
		whole, frac = s[:i], s[i+1:]
	}
	// "", ".", and "-" carry no digits at all; they are not zero.
	if whole == "" && frac == "" {
		return 0, fmt.Errorf("parse cents %q: no digits", s)
	}
	if whole == "" {
		whole = "0"
	}
	if len(frac) > 2 {
		return 0, fmt.Errorf("parse cents %q: more than two fractional digits", s)
	}
	// "26.5" means 26.50, not 26.05.
	for len(frac) < 2 {
		frac += "0"
	}

	w, err := strconv.ParseInt(whole, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("parse cents %q: %w", s, err)
	}
	f, err := strconv.ParseInt(frac, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("parse cents %q: %w", s, err)
	}

	total := w*100 + f
	if neg {
		total = -total
	}
	return Cents(total), nil
}
