package form

import "math"

// Space is the width/height budget a container offers to a child without
// explicit size.
type Space struct {
	Width  float64
	Height float64
}

// LayoutContext is per container state used while its children are resolved
// in row and table layouts. It must be used by a single traversal at a time.
type LayoutContext struct {
	ColumnWidths  []float64
	CurrentColumn int
}

// NewLayoutContext returns context positioned at the first column.
func NewLayoutContext(widths []float64) *LayoutContext {
	return &LayoutContext{ColumnWidths: widths}
}

// span returns column range [start, end) covered by colSpan starting at the
// cursor. ok is false when the span cannot be resolved.
func (lc *LayoutContext) span(colSpan int) (start, end int, ok bool) {
	if lc == nil || len(lc.ColumnWidths) == 0 {
		return 0, 0, false
	}
	if colSpan == 0 || colSpan < -1 {
		return 0, 0, false
	}
	start = lc.CurrentColumn
	if start < 0 || start >= len(lc.ColumnWidths) {
		start = 0
	}
	end = len(lc.ColumnWidths)
	if colSpan != -1 && start+colSpan < end {
		end = start + colSpan
	}
	return start, end, true
}

// SpanWidth returns the width of colSpan columns starting at the current
// column without moving the cursor. The result is NaN when the width cannot
// be computed (no columns, invalid span).
func (lc *LayoutContext) SpanWidth(colSpan int) float64 {
	start, end, ok := lc.span(colSpan)
	if !ok {
		return math.NaN()
	}
	var w float64
	for _, cw := range lc.ColumnWidths[start:end] {
		w += cw
	}
	return w
}

// Consume returns the same width as SpanWidth and advances the cursor past
// the consumed columns. Span of -1 takes all remaining columns and resets the
// cursor to the first column. A malformed column width yields NaN but still
// moves the cursor, only an unresolvable span leaves it in place.
func (lc *LayoutContext) Consume(colSpan int) float64 {
	start, _, ok := lc.span(colSpan)
	if !ok {
		return math.NaN()
	}
	w := lc.SpanWidth(colSpan)
	if colSpan == -1 {
		lc.CurrentColumn = 0
	} else {
		lc.CurrentColumn = (start + colSpan) % len(lc.ColumnWidths)
	}
	return w
}
