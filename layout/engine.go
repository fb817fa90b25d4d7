package layout

import (
	"math"

	"go.uber.org/zap"

	"formtree/form"
	"formtree/style"
	"formtree/visual"
)

// Engine walks form tree and produces visual fragments.
type Engine struct {
	log      *zap.Logger
	conv     *style.Converter
	est      Estimator
	fontSize float64
}

// NewEngine creates layout engine. fontSize is used for text without font
// settings.
func NewEngine(log *zap.Logger, conv *style.Converter, est Estimator, fontSize float64) *Engine {
	if log == nil {
		log = zap.NewNop()
	}
	if conv == nil {
		conv = style.NewConverter(log, nil)
	}
	return &Engine{log: log.Named("layout"), conv: conv, est: est, fontSize: fontSize}
}

var nodeAttrs = append(append([]style.Attr{}, style.Box...), style.Decoration...)

// Layout resolves the whole tree under root into fragments. space is the
// budget offered to root.
func (e *Engine) Layout(root *form.Node, space form.Space) *visual.Fragment {
	return e.node(root, nil, &space)
}

// node resolves n. lc is the layout context of n's container shared by all
// its children, space is budget of n and may be nil when unknown.
func (e *Engine) node(n *form.Node, lc *form.LayoutContext, space *form.Space) *visual.Fragment {
	FixDimensions(n, lc)

	var (
		text *visual.Fragment
		rest string
	)
	if n.Text != "" {
		text, rest = e.text(n, space)
	}

	f := visual.NewFragment("div")
	f.ID = n.ID
	f.Style = e.conv.ToStyle(n, lc, nodeAttrs...)
	if n.Kind.IsContainer() {
		f.AddClass(visual.LayoutClass(n.Layout))
	}
	if text != nil {
		f.Append(text)
	}

	if len(n.Children) > 0 {
		childLC := childContext(n)
		childSpace := innerSpace(n, space)
		for _, c := range n.Children {
			f.Append(e.node(c, childLC, childSpace))
		}
	}

	if n.ParentLayout().IsPositional() {
		if _, ok := ComputeBBox(n, f, space); !ok {
			e.log.Debug("Box resolution deferred", zap.String("node", n.Name), zap.Stringer("kind", n.Kind))
		}
	}
	w := visual.CreateWrapper(n, f)
	if rest != "" {
		w.Append(e.continuation(n, rest, space)...)
	}
	return w
}

func (e *Engine) textSize(n *form.Node) float64 {
	if f := n.InheritedFont(); f != nil && f.Size > 0 {
		return f.Size
	}
	return e.fontSize
}

// text estimates text content of n filling in missing size. Text which does
// not fit is cut at the split position and the remainder is returned.
func (e *Engine) text(n *form.Node, space *form.Space) (*visual.Fragment, string) {
	avail := form.Space{Width: n.W.Value(), Height: n.H.Value()}
	if space != nil {
		if !n.W.IsSet() {
			avail.Width = space.Width
		}
		if !n.H.IsSet() {
			avail.Height = space.Height
		}
	}

	content, rest := n.Text, ""
	block := e.est.Layout(content, e.textSize(n), avail)
	if !block.Fits() {
		e.log.Warn("Text does not fit, splitting",
			zap.String("node", n.Name),
			zap.Int("split", block.SplitPos),
			zap.Int("length", len([]rune(content))))
		runes := []rune(content)
		content, rest = string(runes[:block.SplitPos]), string(runes[block.SplitPos:])
	} else {
		if !n.W.IsSet() {
			n.W = form.Px(block.Width)
		}
		if !n.H.IsSet() {
			n.H = form.Px(block.Height)
		}
	}

	f := visual.NewFragment("div", visual.ClassText)
	if rest != "" {
		f.AddClass(visual.ClassOverflow)
	}
	f.Text = content
	return f, rest
}

// continuation lays out text which did not fit into n. Each retry gets the
// space n was offered, without height limit when that is unknown. A chunk
// which cannot be split further takes the whole remainder.
func (e *Engine) continuation(n *form.Node, rest string, space *form.Space) []*visual.Fragment {
	avail := form.Space{Width: n.W.Value(), Height: math.Inf(1)}
	if space != nil {
		avail = *space
	}
	fontSize := e.textSize(n)

	var parts []*visual.Fragment
	for rest != "" {
		chunk := rest
		rest = ""
		if b := e.est.Layout(chunk, fontSize, avail); !b.Fits() && b.SplitPos > 0 {
			runes := []rune(chunk)
			chunk, rest = string(runes[:b.SplitPos]), string(runes[b.SplitPos:])
		}
		f := visual.NewFragment("div", visual.ClassText, visual.ClassContinued)
		f.Text = chunk
		parts = append(parts, f)
	}
	return parts
}

// childContext returns column context shared by children of rows.
func childContext(n *form.Node) *form.LayoutContext {
	if !n.Layout.IsRow() {
		return nil
	}
	widths := n.ColumnWidths
	if p := n.SubformParent(); len(widths) == 0 && p != nil && p.Layout == form.LayoutTable {
		widths = p.ColumnWidths
	}
	return form.NewLayoutContext(widths)
}

// innerSpace is the budget n offers to its children.
func innerSpace(n *form.Node, space *form.Space) *form.Space {
	if space == nil && !(n.W.IsSet() && n.H.IsSet()) {
		return nil
	}
	var s form.Space
	if space != nil {
		s = *space
	}
	if n.W.IsSet() {
		s.Width = n.W.Value()
	}
	if n.H.IsSet() {
		s.Height = n.H.Value()
	}
	if m := n.Margin; m != nil {
		s.Width = max(0, s.Width-m.Left-m.Right)
		s.Height = max(0, s.Height-m.Top-m.Bottom)
	}
	return &s
}
