package style

import (
	"math"

	"formtree/css"
	"formtree/form"
)

var anchorTransforms = map[form.AnchorType]string{
	form.AnchorTypeTopCenter:    "translate(-50%,0)",
	form.AnchorTypeTopRight:     "translate(-100%,0)",
	form.AnchorTypeMiddleLeft:   "translate(0,-50%)",
	form.AnchorTypeMiddleCenter: "translate(-50%,-50%)",
	form.AnchorTypeMiddleRight:  "translate(-100%,-50%)",
	form.AnchorTypeBottomLeft:   "translate(0,-100%)",
	form.AnchorTypeBottomCenter: "translate(-50%,-100%)",
	form.AnchorTypeBottomRight:  "translate(-100%,-100%)",
}

func anchorType(n *form.Node, s *css.StyleMap) {
	if !n.ParentLayout().IsPositional() {
		return
	}
	if t, ok := anchorTransforms[n.AnchorType]; ok {
		s.AppendTransform(t)
	}
}

func dimensions(n *form.Node, lc *form.LayoutContext, s *css.StyleMap) {
	parentLayout := n.ParentLayout()
	if parentLayout.UsesColumns() && lc != nil {
		if w := lc.Consume(n.ColSpan); !math.IsNaN(w) {
			n.W = form.Px(w)
		}
	}

	if n.W.IsSet() {
		s.Set("width", form.MeasureToString(n.W))
	} else {
		s.Set("width", "auto")
		if n.HasMaxW() {
			s.Set("maxWidth", css.FormatPx(n.MaxW))
		}
		if parentLayout.IsPositional() && n.MinW > 0 {
			s.Set("minWidth", css.FormatPx(n.MinW))
		}
	}

	if n.H.IsSet() {
		s.Set("height", form.MeasureToString(n.H))
	} else {
		s.Set("height", "auto")
		if n.HasMaxH() {
			s.Set("maxHeight", css.FormatPx(n.MaxH))
		}
		if parentLayout.IsPositional() && n.MinH > 0 {
			s.Set("minHeight", css.FormatPx(n.MinH))
		}
	}
}

// minMax emits size bounds of a positioned node.
func minMax(n *form.Node, s *css.StyleMap) {
	if !n.ParentLayout().IsPositional() {
		return
	}
	if n.MinW > 0 {
		s.Set("minWidth", css.FormatPx(n.MinW))
	}
	if n.HasMaxW() {
		s.Set("maxWidth", css.FormatPx(n.MaxW))
	}
	if n.MinH > 0 {
		s.Set("minHeight", css.FormatPx(n.MinH))
	}
	if n.HasMaxH() {
		s.Set("maxHeight", css.FormatPx(n.MaxH))
	}
}

func position(n *form.Node, s *css.StyleMap) {
	if !n.ParentLayout().IsPositional() {
		return
	}
	s.Set("position", "absolute")
	s.Set("left", form.MeasureToString(n.X))
	s.Set("top", form.MeasureToString(n.Y))
}

func rotate(n *form.Node, s *css.StyleMap) {
	if n.Rotate == 0 {
		return
	}
	s.AppendTransform("rotate(" + css.FormatNumber(-n.Rotate) + "deg)")
	s.Set("transformOrigin", "top left")
}

func presence(n *form.Node, s *css.StyleMap) {
	switch n.Presence {
	case form.PresenceInvisible:
		s.Set("visibility", "hidden")
	case form.PresenceHidden, form.PresenceInactive:
		s.Set("display", "none")
	}
}

func hAlign(n *form.Node, s *css.StyleMap) {
	if n.IsParagraph() {
		s.Set("textAlign", n.HAlign.TextAlign())
		return
	}
	if v, ok := n.HAlign.AlignSelf(); ok {
		s.Set("alignSelf", v)
	}
}

func margin(n *form.Node, env form.StyleEnv, s *css.StyleMap) {
	if n.Margin == nil {
		return
	}
	if v, ok := n.Margin.Style(env).Get("margin"); ok {
		s.Set("margin", v)
	}
}
