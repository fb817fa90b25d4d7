package xfa

import (
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"

	"github.com/beevik/etree"
	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/net/html/charset"
	"golang.org/x/text/unicode/norm"

	"formtree/form"
)

// Reader builds form trees from XML form templates. Only the layout relevant
// subset of the template grammar is understood, everything else is skipped.
type Reader struct {
	log *zap.Logger
}

// NewReader creates template reader.
func NewReader(log *zap.Logger) *Reader {
	if log == nil {
		log = zap.NewNop()
	}
	return &Reader{log: log.Named("xfa")}
}

// Read parses XML document and returns root of the form tree.
func (r *Reader) Read(in io.Reader) (*form.Node, error) {
	doc := etree.NewDocument()
	doc.ReadSettings = etree.ReadSettings{
		CharsetReader: charset.NewReaderLabel,
		ValidateInput: false,
		Permissive:    true,
	}
	if _, err := doc.ReadFrom(in); err != nil {
		return nil, fmt.Errorf("unable to read template: %w", err)
	}
	return r.Parse(doc)
}

// Parse walks parsed document. Template element may be the root or be
// embedded in a data package.
func (r *Reader) Parse(doc *etree.Document) (*form.Node, error) {
	if doc == nil {
		return nil, fmt.Errorf("nil document")
	}
	root := doc.Root()
	if root == nil {
		return nil, fmt.Errorf("document has no root element")
	}
	tmpl := root
	if root.Tag != "template" {
		if tmpl = root.FindElement("//template"); tmpl == nil {
			return nil, fmt.Errorf("unexpected root element %q, no template found", root.Tag)
		}
	}

	node := form.NewNode(form.KindTemplate, tmpl.SelectAttrValue("name", ""))
	node.ID = r.id(tmpl)
	r.children(tmpl, node)
	r.uniqueIDs(node)
	return node, nil
}

// uniqueIDs replaces repeated node ids, the first node keeps its id.
func (r *Reader) uniqueIDs(root *form.Node) {
	seen := make(map[string]struct{})
	root.Walk(func(n *form.Node) bool {
		if _, ok := seen[n.ID]; ok {
			id := newID()
			r.log.Warn("Duplicate node id replaced", zap.String("id", n.ID), zap.String("new", id), zap.String("node", n.Name))
			n.ID = id
		}
		seen[n.ID] = struct{}{}
		return true
	})
}

var containerKinds = map[string]form.Kind{
	"subform":    form.KindSubform,
	"subformSet": form.KindSubformSet,
	"area":       form.KindArea,
	"exclGroup":  form.KindExclGroup,
	"draw":       form.KindDraw,
	"field":      form.KindField,
}

func (r *Reader) children(el *etree.Element, parent *form.Node) {
	for _, child := range el.ChildElements() {
		if kind, ok := containerKinds[child.Tag]; ok {
			parent.Append(r.node(child, kind))
			continue
		}
		r.property(child, parent)
	}
}

func (r *Reader) node(el *etree.Element, kind form.Kind) *form.Node {
	n := form.NewNode(kind, el.SelectAttrValue("name", ""))
	n.ID = r.id(el)

	n.X = r.measure(el, "x")
	n.Y = r.measure(el, "y")
	n.W = r.measure(el, "w")
	n.H = r.measure(el, "h")
	if m := r.measure(el, "minW"); m.IsSet() {
		n.MinW = m.Value()
	}
	if m := r.measure(el, "minH"); m.IsSet() {
		n.MinH = m.Value()
	}
	if m := r.measure(el, "maxW"); m.IsSet() && m.Value() > 0 {
		n.MaxW = m.Value()
	}
	if m := r.measure(el, "maxH"); m.IsSet() && m.Value() > 0 {
		n.MaxH = m.Value()
	}

	if v := el.SelectAttrValue("colSpan", ""); v != "" {
		span, err := strconv.Atoi(v)
		if err != nil || span == 0 || span < -1 {
			r.log.Warn("Invalid column span, ignoring", zap.String("node", n.Name), zap.String("colSpan", v))
		} else {
			n.ColSpan = span
		}
	}
	if v := el.SelectAttrValue("columnWidths", ""); v != "" {
		n.ColumnWidths = r.columnWidths(n, v)
	}
	if v := el.SelectAttrValue("rotate", ""); v != "" {
		deg, err := strconv.ParseFloat(v, 64)
		if err != nil || math.IsNaN(deg) {
			r.log.Warn("Invalid rotation, ignoring", zap.String("node", n.Name), zap.String("rotate", v))
		} else {
			n.Rotate = math.Mod(deg, 360)
		}
	}

	enumAttr(r, el, n, "layout", form.ParseLayout, &n.Layout)
	enumAttr(r, el, n, "anchorType", form.ParseAnchorType, &n.AnchorType)
	enumAttr(r, el, n, "presence", form.ParsePresence, &n.Presence)
	enumAttr(r, el, n, "hAlign", form.ParseHAlign, &n.HAlign)

	r.children(el, n)
	return n
}

// enumAttr sets dst from attribute value when it is valid.
func enumAttr[T ~string](r *Reader, el *etree.Element, n *form.Node, name string, parse func(string) (T, error), dst *T) {
	v := el.SelectAttrValue(name, "")
	if v == "" {
		return
	}
	parsed, err := parse(v)
	if err != nil {
		r.log.Warn("Invalid attribute value, using default",
			zap.String("node", n.Name), zap.String("attr", name), zap.String("value", v), zap.String("default", string(*dst)))
		return
	}
	*dst = parsed
}

// property handles non container children of a node.
func (r *Reader) property(el *etree.Element, n *form.Node) {
	switch el.Tag {
	case "para":
		n.Para = r.para(el)
	case "font":
		n.Font = r.font(el)
	case "margin":
		m := r.margin(el)
		n.Margin = &m
	case "border":
		n.Border = r.border(el)
	case "fill":
		n.Fill = r.fill(el)
	case "value":
		n.Text = r.text(el)
	case "caption", "ui", "bind", "assist", "traversal", "keep", "break", "breakBefore", "breakAfter",
		"occur", "overflow", "pageSet", "proto", "desc", "extras", "event", "script", "calculate", "validate",
		"items", "format", "variables", "connect", "setProperty", "bookend", "instanceManager":
		r.log.Debug("Skipping unsupported element", zap.String("node", n.Name), zap.String("tag", el.Tag))
	default:
		r.log.Debug("Unexpected element, ignoring", zap.String("node", n.Name), zap.String("tag", el.Tag))
	}
}

func (r *Reader) id(el *etree.Element) string {
	if id := el.SelectAttrValue("id", ""); id != "" {
		return id
	}
	return newID()
}

func newID() string {
	id, err := uuid.NewV7()
	if err != nil {
		return uuid.NewString()
	}
	return id.String()
}

// measure reads measurement attribute, malformed values are reported and
// treated as unset.
func (r *Reader) measure(el *etree.Element, name string) form.Measure {
	v := el.SelectAttrValue(name, "")
	m, err := form.ParseMeasure(v)
	if err != nil {
		r.log.Warn("Invalid measurement, ignoring", zap.String("tag", el.Tag), zap.String("attr", name), zap.Error(err))
		return form.Unset
	}
	return m
}

func (r *Reader) length(el *etree.Element, name string) float64 {
	return r.measure(el, name).Value()
}

func (r *Reader) columnWidths(n *form.Node, v string) []float64 {
	fields := strings.Fields(v)
	widths := make([]float64, 0, len(fields))
	for _, f := range fields {
		m, err := form.ParseMeasure(f)
		if err != nil {
			r.log.Warn("Invalid column width", zap.String("node", n.Name), zap.String("width", f), zap.Error(err))
			// keep column count, width is unknown
			widths = append(widths, math.NaN())
			continue
		}
		widths = append(widths, m.Value())
	}
	return widths
}

func (r *Reader) para(el *etree.Element) *form.Para {
	p := &form.Para{
		MarginLeft:  r.length(el, "marginLeft"),
		MarginRight: r.length(el, "marginRight"),
		SpaceAbove:  r.length(el, "spaceAbove"),
		SpaceBelow:  r.length(el, "spaceBelow"),
		TextIndent:  r.length(el, "textIndent"),
		LineHeight:  r.length(el, "lineHeight"),
	}
	if v := el.SelectAttrValue("hAlign", ""); v != "" {
		if h, err := form.ParseHAlign(v); err == nil {
			p.HAlign = h
		} else {
			r.log.Warn("Invalid paragraph alignment, ignoring", zap.String("hAlign", v))
		}
	}
	return p
}

func (r *Reader) font(el *etree.Element) *form.Font {
	f := &form.Font{
		Typeface:  el.SelectAttrValue("typeface", ""),
		Size:      r.length(el, "size"),
		Weight:    el.SelectAttrValue("weight", ""),
		Posture:   el.SelectAttrValue("posture", ""),
		Underline: el.SelectAttrValue("underline", "0") != "0",
		LineThru:  el.SelectAttrValue("lineThrough", "0") != "0",
	}
	if fill := el.SelectElement("fill"); fill != nil {
		f.Color = r.color(fill.SelectElement("color"))
	}
	return f
}

func (r *Reader) margin(el *etree.Element) form.Margin {
	return form.Margin{
		Top:    r.length(el, "topInset"),
		Right:  r.length(el, "rightInset"),
		Bottom: r.length(el, "bottomInset"),
		Left:   r.length(el, "leftInset"),
	}
}

func (r *Reader) fill(el *etree.Element) *form.Fill {
	return &form.Fill{Color: r.color(el.SelectElement("color"))}
}

func (r *Reader) color(el *etree.Element) *form.Color {
	if el == nil {
		return nil
	}
	v := el.SelectAttrValue("value", "")
	if v == "" {
		c := form.Black
		return &c
	}
	c, err := form.ParseColor(v)
	if err != nil {
		r.log.Warn("Invalid color, ignoring", zap.Error(err))
		return nil
	}
	return &c
}

// defaultEdgeThickness is the edge thickness when not specified, 0.5pt.
const defaultEdgeThickness = 0.5

// border reads edges and corners and precomputes border widths and insets.
func (r *Reader) border(el *etree.Element) *form.Border {
	b := &form.Border{
		Hand:     form.HandEven,
		Relevant: el.SelectAttrValue("relevant", ""),
	}
	if v := el.SelectAttrValue("hand", ""); v != "" {
		if h, err := form.ParseHand(v); err == nil {
			b.Hand = h
		} else {
			r.log.Warn("Invalid border hand, using even", zap.String("hand", v))
		}
	}
	presence := form.PresenceVisible
	if v := el.SelectAttrValue("presence", ""); v != "" {
		if p, err := form.ParsePresence(v); err == nil {
			presence = p
		}
	}

	var edges []form.Edge
	for _, e := range el.SelectElements("edge") {
		edge := form.Edge{
			Thickness: defaultEdgeThickness,
			Stroke:    e.SelectAttrValue("stroke", "solid"),
			Presence:  form.PresenceVisible,
		}
		if m := r.measure(e, "thickness"); m.IsSet() {
			edge.Thickness = m.Value()
		}
		if v := e.SelectAttrValue("presence", ""); v != "" {
			if p, err := form.ParsePresence(v); err == nil {
				edge.Presence = p
			}
		}
		if c := r.color(e.SelectElement("color")); c != nil {
			edge.Color = *c
		}
		edges = append(edges, edge)
	}
	if len(edges) == 0 {
		edges = append(edges, form.Edge{Thickness: defaultEdgeThickness, Stroke: "solid", Presence: form.PresenceVisible})
	}
	// missing edges repeat the last one specified
	for i := range b.Edges {
		b.Edges[i] = edges[min(i, len(edges)-1)]
		if presence == form.PresenceVisible && b.Edges[i].Presence == form.PresenceVisible {
			b.Widths[i] = b.Edges[i].Thickness
		}
	}

	if corner := el.SelectElement("corner"); corner != nil {
		b.Radius = r.length(corner, "radius")
	}
	if m := el.SelectElement("margin"); m != nil {
		ins := r.margin(m)
		b.Insets = [4]float64{ins.Top, ins.Right, ins.Bottom, ins.Left}
	}
	if f := el.SelectElement("fill"); f != nil {
		b.Fill = r.fill(f)
	}
	return b
}

// text extracts plain text of a value element, NFC normalized.
func (r *Reader) text(el *etree.Element) string {
	var sb strings.Builder
	for _, child := range el.ChildElements() {
		switch child.Tag {
		case "text":
			sb.WriteString(child.Text())
		case "exData":
			sb.WriteString(allText(child))
		default:
			r.log.Debug("Unsupported value type, ignoring", zap.String("tag", child.Tag))
		}
	}
	return norm.NFC.String(sb.String())
}

func allText(el *etree.Element) string {
	var sb strings.Builder
	for _, node := range el.Child {
		switch token := node.(type) {
		case *etree.CharData:
			sb.WriteString(token.Data)
		case *etree.Element:
			sb.WriteString(allText(token))
		}
	}
	return sb.String()
}
