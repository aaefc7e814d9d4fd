package model

import (
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"strings"
)

var ErrInvalidPrice = errors.New("price must be a non-negative amount with at most two decimal places")

// Price is a fixed-point money amount stored as cents. Keeping the value
// integral avoids binary-float rounding drift when prices round-trip through
// the database and the JSON API.
type Price int64

// ParsePrice converts a decimal string like "1.50" into a Price.
func ParsePrice(s string) (Price, error) {
	s = strings.TrimSpace(s)
	if s == "" || strings.HasPrefix(s, "-") || strings.HasPrefix(s, "+") {
		return 0, ErrInvalidPrice
	}

	whole, frac := s, ""
	if i := strings.IndexByte(s, '.'); i >= 0 {
		whole, frac = s[:i], s[i+1:]
	}
	if whole == "" || len(frac) > 2 {
		return 0, ErrInvalidPrice
	}

	units, err := strconv.ParseInt(whole, 10, 64)
	if err != nil {
		return 0, ErrInvalidPrice
	}

	cents := int64(0)
	if frac != "" {
		for _, r := range frac {
			if r < '0' || r > '9' {
				return 0, ErrInvalidPrice
			}
		}
		cents, err = strconv.ParseInt(frac, 10, 64)
		if err != nil {
			return 0, ErrInvalidPrice
		}
		if len(frac) == 1 {
			cents *= 10
		}
	}

	if units > (1<<62)/100 {
		return 0, ErrInvalidPrice
	}
	return Price(units*100 + cents), nil
}

// Cents returns the raw fixed-point value for storage.
func (p Price) Cents() int64 { return int64(p) }

// String renders the amount with exactly two fraction digits.
func (p Price) String() string {
	return fmt.Sprintf("%d.%02d", int64(p)/100, int64(p)%100)
}

// MarshalJSON emits the price as a plain JSON number with two fraction
// digits, e.g. 1.50, matching what API clients expect to display.
func (p Price) MarshalJSON() ([]byte, error) {
	return []byte(p.String()), nil
}

// UnmarshalJSON accepts both JSON numbers (1.5) and strings ("1.50").
func (p *Price) UnmarshalJSON(data []byte) error {
	var raw string
	if len(data) > 0 && data[0] == '"' {
		if err := json.Unmarshal(data, &raw); err != nil {
			return ErrInvalidPrice
		}
	} else {
		raw = string(data)
	}
	parsed, err := ParsePrice(raw)
	if err != nil {
		return err
	}
	*p = parsed
	return nil
}
