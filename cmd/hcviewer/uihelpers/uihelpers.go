package uihelpers

import (
	"math"
	"strconv"
	"strings"
)

// ComputeChartDimensions applies the width/height clamp rules used for the
// heating-curve chart. Input: desired raw width (e.g., canvas width).
// Returns clamped width & height.
func ComputeChartDimensions(rawW int) (int, int) {
	w := rawW
	if w < 700 {
		w = 700
	}
	// Maintain a 16:10 aspect ratio, with sane bounds
	h := int(float32(w) * 0.625)
	if h < 420 {
		h = 420
	}
	if h > 760 {
		h = 760
	}
	return w, h
}

// FormatValue renders a parameter value with the given number of decimals,
// dropping a trailing ".0" so slider labels read "20" rather than "20.0".
func FormatValue(v float64, decimals int) string {
	s := strconv.FormatFloat(v, 'f', decimals, 64)
	if decimals == 1 {
		s = strings.TrimSuffix(s, ".0")
	}
	return s
}

// ParseValue parses a user-typed parameter value. A decimal comma is
// accepted alongside a decimal point.
func ParseValue(s string) (float64, error) {
	s = strings.TrimSpace(strings.ReplaceAll(s, ",", "."))
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, err
	}
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, strconv.ErrSyntax
	}
	return v, nil
}
