package hashrate

import (
	"fmt"
	"strings"
)

var multipliers = map[string]float64{
	"h":  1,
	"kh": 1e3,
	"mh": 1e6,
	"gh": 1e9,
	"th": 1e12,
	"ph": 1e15,
	"eh": 1e18,
}

// canonicalUnit lowercases a unit and strips the "/s" suffix so that
// "TH/s", "th" and "Th/S" all resolve to the same key.
func canonicalUnit(unit string) string {
	unit = strings.ToLower(strings.TrimSpace(unit))
	unit = strings.TrimSuffix(unit, "/s")
	unit = strings.TrimSuffix(unit, "s")
	return strings.TrimSpace(unit)
}

// Multiplier returns the H/s multiplier for a unit, unknown units return 1.
func Multiplier(unit string) float64 {
	m, ok := multipliers[canonicalUnit(unit)]
	if !ok {
		return 1
	}
	return m
}

// Known reports whether the unit has a real multiplier.
func Known(unit string) bool {
	_, ok := multipliers[canonicalUnit(unit)]
	return ok
}

// Normalize converts a value in the given unit into H/s.
func Normalize(value float64, unit string) float64 {
	return value * Multiplier(unit)
}

// SameUnit reports whether two units resolve to the same magnitude.
func SameUnit(a, b string) bool {
	return canonicalUnit(a) == canonicalUnit(b)
}

// Format renders a H/s magnitude using the largest unit that keeps the value >= 1.
func Format(hps float64) string {
	switch {
	case hps >= 1e18:
		return fmt.Sprintf("%.2f EH/s", hps/1e18)
	case hps >= 1e15:
		return fmt.Sprintf("%.2f PH/s", hps/1e15)
	case hps >= 1e12:
		return fmt.Sprintf("%.2f TH/s", hps/1e12)
	case hps >= 1e9:
		return fmt.Sprintf("%.2f GH/s", hps/1e9)
	case hps >= 1e6:
		return fmt.Sprintf("%.2f MH/s", hps/1e6)
	case hps >= 1e3:
		return fmt.Sprintf("%.2f KH/s", hps/1e3)
	default:
		return fmt.Sprintf("%.0f H/s", hps)
	}
}
