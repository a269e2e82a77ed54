// Package rate normalizes heterogeneous automation-rate values into
// fractions in [0, 1]. Rates arrive from exported spreadsheets as
// "20%", "20", 20, or 0.2; all of those mean the same fraction here.
package rate

import (
	"regexp"
	"strconv"
	"strings"
)

// firstNumber matches the first signed or unsigned decimal anywhere in
// a cell, so "approx. 35" and "rate=45%" still yield a value.
var firstNumber = regexp.MustCompile(`[-+]?\d*\.?\d+`)

// Parse converts a raw text cell into a fraction in [0, 1].
//
// An empty or non-numeric cell parses to 0. A cell containing a percent
// sign is read on the 0-100 scale. Without a percent sign the value
// falls through to FromFloat. The result is clamped to [0, 1].
func Parse(s string) float64 {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0
	}
	m := firstNumber.FindString(s)
	if m == "" {
		return 0
	}
	v, err := strconv.ParseFloat(m, 64)
	if err != nil {
		return 0
	}
	if strings.Contains(s, "%") {
		return clamp01(v / 100)
	}
	return FromFloat(v)
}

// FromFloat normalizes an already-numeric rate. Values above 1 are read
// on the 0-100 scale; values at or below 1 are taken as fractions. The
// result is clamped to [0, 1].
func FromFloat(v float64) float64 {
	if v > 1 {
		v /= 100
	}
	return clamp01(v)
}

func clamp01(v float64) float64 {
	switch {
	case v < 0:
		return 0
	case v > 1:
		return 1
	}
	return v
}
