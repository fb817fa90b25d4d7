package style

import (
	"go.uber.org/zap"

	"formtree/css"
	"formtree/form"
)

// Converter turns node attributes into style declarations.
type Converter struct {
	log *zap.Logger
	env form.StyleEnv
}

// NewConverter creates converter, fonts may be nil.
func NewConverter(log *zap.Logger, fonts css.FontFinder) *Converter {
	if log == nil {
		log = zap.NewNop()
	}
	return &Converter{log: log.Named("style"), env: form.StyleEnv{Fonts: fonts}}
}

// ToStyle builds style map for requested attributes of n. Attributes whose
// value resolves its own style (paragraph, font, fill, border) are merged in
// first, the rest are handled by conversion rules. lc is the layout context of
// n's container and may be nil, the dimensions rule advances its cursor.
func (c *Converter) ToStyle(n *form.Node, lc *form.LayoutContext, attrs ...Attr) *css.StyleMap {
	s := css.NewStyleMap()
	for _, a := range attrs {
		if st := styler(n, a); st != nil {
			sub := st.Style(c.env)
			if sub.Len() == 0 {
				c.log.Warn("style not implemented", zap.Stringer("attr", a), zap.String("node", n.Name), zap.Stringer("kind", n.Kind))
			}
			s.Merge(sub)
			continue
		}
		c.apply(a, n, lc, s)
	}
	return s
}

// styler returns sub-object able to resolve its own style, nil when
// attribute is not set or is converted by a rule.
func styler(n *form.Node, a Attr) form.Styler {
	switch a {
	case AttrPara:
		if n.Para != nil {
			return n.Para
		}
	case AttrFont:
		if n.Font != nil {
			return n.Font
		}
	case AttrFill:
		if n.Fill != nil {
			return n.Fill
		}
	case AttrBorder:
		if n.Border != nil {
			return n.Border
		}
	}
	return nil
}

func (c *Converter) apply(a Attr, n *form.Node, lc *form.LayoutContext, s *css.StyleMap) {
	switch a {
	case AttrAnchorType:
		anchorType(n, s)
	case AttrDimensions:
		dimensions(n, lc, s)
	case AttrMinMax:
		minMax(n, s)
	case AttrPosition:
		position(n, s)
	case AttrRotate:
		rotate(n, s)
	case AttrPresence:
		presence(n, s)
	case AttrHAlign:
		hAlign(n, s)
	case AttrMargin:
		margin(n, c.env, s)
	case AttrPara, AttrFont, AttrFill, AttrBorder:
		// not set on this node
	default:
		c.log.Debug("unknown style attribute", zap.Stringer("attr", a))
	}
}
