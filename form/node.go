package form

import "math"

// Node is an element of form layout tree.
type Node struct {
	ID   string
	Name string
	Kind Kind

	W, H, X, Y Measure
	// 0 for minimums and +Inf for maximums mean "no constraint".
	MinW, MinH, MaxW, MaxH float64

	// ColSpan is number of columns taken in row layout, -1 means all
	// remaining columns.
	ColSpan      int
	Layout       Layout
	ColumnWidths []float64

	AnchorType AnchorType
	Rotate     float64
	Presence   Presence
	HAlign     HAlign

	Margin *Margin
	Border *Border
	Para   *Para
	Font   *Font
	Fill   *Fill

	Text string

	Parent *Node
	// StyleParent is used for style inheritance, when nil Parent is used.
	StyleParent *Node
	Children    []*Node
}

// NewNode returns node with default attribute values. Only containers get a
// layout.
func NewNode(kind Kind, name string) *Node {
	n := &Node{
		Kind:       kind,
		Name:       name,
		MaxW:       math.Inf(1),
		MaxH:       math.Inf(1),
		ColSpan:    1,
		AnchorType: AnchorTypeTopLeft,
		Presence:   PresenceVisible,
		HAlign:     HAlignLeft,
	}
	if kind.IsContainer() {
		n.Layout = LayoutPosition
	}
	return n
}

// Append attaches children to n.
func (n *Node) Append(children ...*Node) *Node {
	for _, c := range children {
		c.Parent = n
		n.Children = append(n.Children, c)
	}
	return n
}

// SubformParent returns the structural parent establishing layout for n,
// subform sets are transparent.
func (n *Node) SubformParent() *Node {
	p := n.Parent
	for p != nil && p.Kind == KindSubformSet {
		p = p.Parent
	}
	return p
}

// ParentLayout returns layout of the structural parent, position when there
// is none.
func (n *Node) ParentLayout() Layout {
	if p := n.SubformParent(); p != nil {
		return p.Layout
	}
	return LayoutPosition
}

func (n *Node) styleParent() *Node {
	if n.StyleParent != nil {
		return n.StyleParent
	}
	return n.Parent
}

// InheritedFont returns the closest font, own first, following style
// parents.
func (n *Node) InheritedFont() *Font {
	for p := n; p != nil; p = p.styleParent() {
		if p.Font != nil {
			return p.Font
		}
	}
	return nil
}

// InheritedPara returns the closest paragraph settings following style
// parents.
func (n *Node) InheritedPara() *Para {
	for p := n; p != nil; p = p.styleParent() {
		if p.Para != nil {
			return p.Para
		}
	}
	return nil
}

// IsParagraph reports whether alignment applies to text inside n rather
// than to n itself.
func (n *Node) IsParagraph() bool {
	return n.Kind == KindPara
}

// HasMaxW reports whether width has a real upper bound.
func (n *Node) HasMaxW() bool {
	return n.MaxW > 0 && !math.IsInf(n.MaxW, 1)
}

// HasMaxH reports whether height has a real upper bound.
func (n *Node) HasMaxH() bool {
	return n.MaxH > 0 && !math.IsInf(n.MaxH, 1)
}

// Walk calls fn for n and all its descendants depth first, stops descending
// into a subtree when fn returns false.
func (n *Node) Walk(fn func(*Node) bool) {
	if n == nil || !fn(n) {
		return
	}
	for _, c := range n.Children {
		c.Walk(fn)
	}
}
