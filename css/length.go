package css

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	parse "github.com/tdewolff/parse/v2"
)

// FormatPx renders a pixel value: integers as "{n}px", everything else
// rounded to 2 decimals.
func FormatPx(v float64) string {
	return FormatNumber(v) + "px"
}

// FormatNumber renders v the same way FormatPx does, without unit.
func FormatNumber(v float64) string {
	if v == 0 {
		// avoid "-0"
		return "0"
	}
	if v == math.Trunc(v) && !math.IsInf(v, 0) {
		return strconv.FormatFloat(v, 'f', -1, 64)
	}
	return strconv.FormatFloat(v, 'f', 2, 64)
}

// ParseLength splits a length such as "12.5mm" into number and lowercase
// unit. Leading and trailing spaces are ignored.
func ParseLength(s string) (float64, string, error) {
	b := []byte(strings.TrimSpace(s))
	if len(b) == 0 {
		return 0, "", fmt.Errorf("empty length")
	}
	num, unit := parse.Dimension(b)
	if num == 0 {
		return 0, "", fmt.Errorf("length %q does not start with a number", s)
	}
	if num+unit != len(b) {
		return 0, "", fmt.Errorf("length %q has trailing garbage", s)
	}
	v, err := strconv.ParseFloat(string(b[:num]), 64)
	if err != nil {
		return 0, "", fmt.Errorf("length %q: %w", s, err)
	}
	return v, strings.ToLower(string(b[num:])), nil
}

// ParsePx reads a pixel length produced by FormatPx. Bare numbers are
// accepted, anything else yields def.
func ParsePx(s string, def float64) float64 {
	v, unit, err := ParseLength(s)
	if err != nil || (unit != "px" && unit != "") {
		return def
	}
	return v
}
