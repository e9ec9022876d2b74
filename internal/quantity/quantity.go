// Package quantity provides a fixed-point amount type for ingredient
// quantities. Amounts are stored as integer thousandths of a measurement
// unit, so summing many fractional amounts stays exact.
package quantity

import (
	"fmt"
	"strings"
)

const milli = 1000

// Quantity is an ingredient amount in thousandths of a unit.
type Quantity int64

// FromInt converts a whole amount of units.
func FromInt(n int64) Quantity {
	return Quantity(n * milli)
}

// FromMilli wraps a raw thousandths value, as stored in the database.
func FromMilli(m int64) Quantity {
	return Quantity(m)
}

// Milli returns the raw thousandths value for storage.
func (q Quantity) Milli() int64 {
	return int64(q)
}

// Add returns the sum of two amounts.
func (q Quantity) Add(other Quantity) Quantity {
	return q + other
}

// IsZero reports whether the amount is zero.
func (q Quantity) IsZero() bool {
	return q == 0
}

// Parse reads a decimal amount such as "200", "0.5" or "1,5" (a comma
// decimal separator is accepted). Amounts must be positive and carry at
// most three fractional digits.
func Parse(s string) (Quantity, error) {
	s = strings.TrimSpace(s)
	s = strings.ReplaceAll(s, ",", ".")
	if s == "" {
		return 0, fmt.Errorf("empty amount")
	}
	if strings.HasPrefix(s, "-") {
		return 0, fmt.Errorf("amount must be positive: %q", s)
	}

	intPart, fracPart, hasFrac := strings.Cut(s, ".")
	if intPart == "" && fracPart == "" {
		return 0, fmt.Errorf("invalid amount: %q", s)
	}
	if hasFrac && len(fracPart) > 3 {
		return 0, fmt.Errorf("amount %q has more than three fractional digits", s)
	}

	var total int64
	for _, r := range intPart {
		if r < '0' || r > '9' {
			return 0, fmt.Errorf("invalid amount: %q", s)
		}
		total = total*10 + int64(r-'0')
	}
	total *= milli

	scale := int64(100)
	for _, r := range fracPart {
		if r < '0' || r > '9' {
			return 0, fmt.Errorf("invalid amount: %q", s)
		}
		total += int64(r-'0') * scale
		scale /= 10
	}
	return Quantity(total), nil
}

// String formats the amount as a decimal, trailing zeros trimmed. Whole
// amounts come out without a fractional part.
func (q Quantity) String() string {
	whole := int64(q) / milli
	frac := int64(q) % milli
	if frac == 0 {
		return fmt.Sprintf("%d", whole)
	}
	s := fmt.Sprintf("%d.%03d", whole, frac)
	return strings.TrimRight(s, "0")
}
