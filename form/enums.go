package form

// Layout strategy of a container.
// ENUM(position, lr-tb, rl-row, rl-tb, row, table, tb)
type Layout string

// IsPositional reports whether children are placed absolutely. Unset layout
// is positional.
func (l Layout) IsPositional() bool {
	return l == "" || l == LayoutPosition
}

// UsesColumns reports whether children of this container take their widths
// from column widths.
func (l Layout) UsesColumns() bool {
	return l == LayoutRow || l == LayoutRlRow || l == LayoutTable
}

// IsRow reports whether this is a table row layout.
func (l Layout) IsRow() bool {
	return l == LayoutRow || l == LayoutRlRow
}

// Visibility of a node.
// ENUM(visible, invisible, hidden, inactive)
type Presence string

// Anchor point of a positioned node, the point x/y refer to.
// ENUM(topLeft, topCenter, topRight, middleLeft, middleCenter, middleRight, bottomLeft, bottomCenter, bottomRight)
type AnchorType string

// Horizontal alignment.
// ENUM(left, center, right, justify, justifyAll, radix)
type HAlign string

// TextAlign returns text-align value for paragraph nodes.
func (h HAlign) TextAlign() string {
	switch h {
	case HAlignJustifyAll:
		return "justify-all"
	case HAlignRadix:
		// TODO: radix alignment lines numbers up on the decimal point, until
		// there is a way to express it left alignment is used
		return "left"
	default:
		return string(h)
	}
}

// AlignSelf returns flex align-self value for non paragraph nodes.
func (h HAlign) AlignSelf() (string, bool) {
	switch h {
	case HAlignLeft:
		return "start", true
	case HAlignCenter:
		return "center", true
	case HAlignRight:
		return "end", true
	}
	return "", false
}

// Border thickness placement relative to the border path.
// ENUM(even, left, right)
type Hand string

// Kind of form element.
// ENUM(template, subform, subformSet, area, exclGroup, draw, field, para)
type Kind string

// IsContainer reports whether nodes of this kind lay out children.
func (k Kind) IsContainer() bool {
	switch k {
	case KindTemplate, KindSubform, KindSubformSet, KindArea, KindExclGroup:
		return true
	}
	return false
}
