package conversion

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// Kind selects the arithmetic a category uses
type Kind string

const (
	// KindLinear scales through a per-unit factor to the reference unit
	KindLinear Kind = "linear"
	// KindTemperature converts through Celsius with an affine transform
	KindTemperature Kind = "temperature"
)

// Category is one screen of the converter: an ordered unit list and the
// factor of every unit relative to the reference unit. Categories are built
// by the catalog and never change afterwards.
type Category struct {
	Name        string
	Group       string
	Kind        Kind
	Reference   string
	DefaultFrom string
	DefaultTo   string

	units   []string
	factors map[string]float64
}

// Units returns the unit names in display order
func (c *Category) Units() []string {
	out := make([]string, len(c.units))
	copy(out, c.units)
	return out
}

// Factor returns the multiplier taking one unit to the reference unit.
// Temperature units have no factor.
func (c *Category) Factor(unit string) (float64, bool) {
	f, ok := c.factors[unit]
	return f, ok
}

// HasUnit reports whether unit belongs to the category
func (c *Category) HasUnit(unit string) bool {
	for _, u := range c.units {
		if u == unit {
			return true
		}
	}
	return false
}

// Convert converts value from one unit of the category to another
func (c *Category) Convert(value float64, from, to string) (float64, error) {
	if c.Kind == KindTemperature {
		return ConvertTemperature(value, from, to)
	}

	fromFactor, ok := c.factors[from]
	if !ok {
		return 0, fmt.Errorf("%s: %w %q", c.Name, ErrUnknownUnit, from)
	}
	toFactor, ok := c.factors[to]
	if !ok {
		return 0, fmt.Errorf("%s: %w %q", c.Name, ErrUnknownUnit, to)
	}

	reference := value * fromFactor
	return reference / toFactor, nil
}

// ParseValue parses user input into a finite float
func ParseValue(text string) (float64, error) {
	trimmed := strings.TrimSpace(text)
	if trimmed == "" {
		return 0, fmt.Errorf("%w: empty input", ErrInvalidNumber)
	}

	value, err := strconv.ParseFloat(trimmed, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrInvalidNumber, trimmed)
	}
	if math.IsNaN(value) || math.IsInf(value, 0) {
		return 0, fmt.Errorf("%w: %q is not finite", ErrInvalidNumber, trimmed)
	}

	return value, nil
}

// FormatResult renders a converted value for display. Linear categories
// show four significant digits, temperature two decimals.
func FormatResult(c *Category, value float64, unit string) string {
	if c != nil && c.Kind == KindTemperature {
		return fmt.Sprintf("Result: %.2f %s", value, unit)
	}
	return fmt.Sprintf("Result: %.4g %s", value, unit)
}
