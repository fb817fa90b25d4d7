package layout

import (
	"math"

	"formtree/css"
	"formtree/form"
	"formtree/visual"
)

// BBox is a resolved box in parent coordinates.
type BBox struct {
	X, Y, W, H float64
}

// ComputeBBox resolves box of n. Explicit sizes are used verbatim. Otherwise
// space is required: when it is nil the box cannot be resolved yet and false
// is returned so caller could defer. Resolved sizes are written into f style.
func ComputeBBox(n *form.Node, f *visual.Fragment, space *form.Space) (BBox, bool) {
	box := BBox{X: n.X.Value(), Y: n.Y.Value(), W: n.W.Value(), H: n.H.Value()}
	if n.W.IsSet() && n.H.IsSet() {
		return box, true
	}
	if space == nil {
		return BBox{}, false
	}

	parent := n.SubformParent()
	positional := parent != nil && parent.Layout.IsPositional()

	if !n.W.IsSet() {
		switch {
		case n.HasMaxW():
			box.W = math.Min(n.MaxW, space.Width)
		case positional && parent.W.IsSet():
			box.W = 0
		default:
			box.W = n.MinW
		}
		f.Style.Set("width", css.FormatPx(box.W))
	}
	if !n.H.IsSet() {
		switch {
		case n.HasMaxH():
			box.H = math.Min(n.MaxH, space.Height)
		case positional && parent.H.IsSet():
			box.H = 0
		default:
			box.H = n.MinH
		}
		f.Style.Set("height", css.FormatPx(box.H))
	}
	return box, true
}

// FixDimensions adjusts stored geometry of n for its structural parent before
// n is laid out. lc is the layout context of parent and is only read.
func FixDimensions(n *form.Node, lc *form.LayoutContext) {
	if parent := n.SubformParent(); parent != nil {
		if parent.Layout.UsesColumns() {
			if w := lc.SpanWidth(n.ColSpan); !math.IsNaN(w) {
				n.W = form.Px(w)
			}
		}

		if parent.W.IsSet() && n.W.IsSet() {
			n.W = form.Px(math.Min(n.W.Value(), parent.W.Value()))
		}
		if parent.H.IsSet() && n.H.IsSet() {
			n.H = form.Px(math.Min(n.H.Value(), parent.H.Value()))
		}

		if !parent.Layout.IsPositional() {
			n.X, n.Y = form.Px(0), form.Px(0)
		}

		if parent.Layout == form.LayoutTb && parent.W.IsSet() {
			if !n.W.IsSet() || n.W.Value() == 0 || n.W.Value() > parent.W.Value() {
				n.W = parent.W
			}
		}
	}

	switch n.Layout {
	case form.LayoutPosition:
		// bounds are ignored for positioned containers
		n.MinW, n.MinH = 0, 0
		n.MaxW, n.MaxH = math.Inf(1), math.Inf(1)
	case form.LayoutTable:
		if !n.W.IsSet() && len(n.ColumnWidths) > 0 {
			var w float64
			for _, cw := range n.ColumnWidths {
				w += cw
			}
			if !math.IsNaN(w) {
				n.W = form.Px(w)
			}
		}
	}
}
