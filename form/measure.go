package form

import (
	"fmt"
	"math"

	"formtree/css"
)

// Measure is a length in pixels which may be left unspecified.
type Measure struct {
	px  float64
	set bool
}

// Unset is the "unspecified" measure.
var Unset = Measure{}

// Px returns explicit measure.
func Px(v float64) Measure {
	return Measure{px: v, set: true}
}

// IsSet reports whether measure was specified.
func (m Measure) IsSet() bool {
	return m.set
}

// Value returns pixel value, 0 when measure is unset.
func (m Measure) Value() float64 {
	if !m.set {
		return 0
	}
	return m.px
}

// String implements fmt.Stringer, unset measures print as "unset" to be
// distinguishable in debug dumps.
func (m Measure) String() string {
	if !m.set {
		return "unset"
	}
	return css.FormatPx(m.px)
}

// MeasureToString renders m as pixel length, unset measure is "0px".
func MeasureToString(m Measure) string {
	return css.FormatPx(m.Value())
}

// Points per unit. Form documents are laid out in points and a point is
// rendered as one pixel.
var unitScale = map[string]float64{
	"":   1,
	"pt": 1,
	"px": 1,
	"in": 72,
	"cm": 72 / 2.54,
	"mm": 72 / 25.4,
}

// ParseMeasure parses form document measurement such as "10", "2.5mm" or
// "1in". Empty string yields Unset.
func ParseMeasure(s string) (Measure, error) {
	if s == "" {
		return Unset, nil
	}
	v, unit, err := css.ParseLength(s)
	if err != nil {
		return Unset, fmt.Errorf("unable to parse measurement: %w", err)
	}
	scale, ok := unitScale[unit]
	if !ok {
		return Unset, fmt.Errorf("unsupported measurement unit %q in %q", unit, s)
	}
	v *= scale
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return Unset, fmt.Errorf("measurement %q is out of range", s)
	}
	return Px(v), nil
}
