// Package units converts between the caller's display unit system and the
// centimeters/meters the core operates in, and formats values for display.
package units

import (
	"fmt"
	"strconv"
	"strings"
)

// System identifies the caller's display unit system.
type System string

const (
	Metric   System = "metric"
	Imperial System = "imperial"
)

// Conversion factors. The core works in centimeters; the validator and the
// room quality check work in meters.
const (
	cmPerFoot   = 30.48
	mPerFoot    = 0.3048
	m2PerSqFoot = 0.09290304
)

// ParseSystem normalizes a unit-system key, defaulting to metric.
func ParseSystem(key string) System {
	if strings.EqualFold(strings.TrimSpace(key), string(Imperial)) {
		return Imperial
	}
	return Metric
}

// LengthLabel is the short length unit shown next to item/room dimensions
// (centimeter-scale inputs).
func (s System) LengthLabel() string {
	if s == Imperial {
		return "ft"
	}
	return "cm"
}

// RoomLengthLabel is the unit shown for meter-scale room inputs.
func (s System) RoomLengthLabel() string {
	if s == Imperial {
		return "ft"
	}
	return "m"
}

// AreaLabel is the unit shown for room areas.
func (s System) AreaLabel() string {
	if s == Imperial {
		return "ft²"
	}
	return "m²"
}

// ToCm converts a display value to centimeters.
func ToCm(value float64, sys System) float64 {
	if sys == Imperial {
		return value * cmPerFoot
	}
	return value
}

// FromCm converts centimeters back to the display unit.
func FromCm(cm float64, sys System) float64 {
	if sys == Imperial {
		return cm / cmPerFoot
	}
	return cm
}

// ToM converts a display value to meters.
func ToM(value float64, sys System) float64 {
	if sys == Imperial {
		return value * mPerFoot
	}
	return value
}

// FromM converts meters back to the display unit.
func FromM(m float64, sys System) float64 {
	if sys == Imperial {
		return m / mPerFoot
	}
	return m
}

// ToM2 converts a display area to square meters.
func ToM2(value float64, sys System) float64 {
	if sys == Imperial {
		return value * m2PerSqFoot
	}
	return value
}

// FromM2 converts square meters back to the display unit.
func FromM2(m2 float64, sys System) float64 {
	if sys == Imperial {
		return m2 / m2PerSqFoot
	}
	return m2
}

// Format renders a value with two decimals and trailing zeros trimmed,
// so "2.40" displays as "2.4" and "3.00" as "3".
func Format(value float64) string {
	s := fmt.Sprintf("%.2f", value)
	s = strings.TrimRight(s, "0")
	return strings.TrimSuffix(s, ".")
}

// ParsePositive parses a user-entered dimension. It accepts a comma decimal
// separator and returns a described error for empty, non-numeric, or
// non-positive input. These are the recoverable input-shape errors of the
// pipeline; callers re-prompt the user.
func ParsePositive(raw, field string) (float64, error) {
	trimmed := strings.ReplaceAll(strings.TrimSpace(raw), ",", ".")
	if trimmed == "" {
		return 0, fmt.Errorf("please enter %s", field)
	}
	v, err := strconv.ParseFloat(trimmed, 64)
	if err != nil {
		return 0, fmt.Errorf("%s must be a number", field)
	}
	if v <= 0 {
		return 0, fmt.Errorf("%s must be greater than 0", field)
	}
	return v, nil
}
