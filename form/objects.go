package form

import (
	"fmt"
	"strings"

	"formtree/css"
)

// StyleEnv carries what sub-objects need to resolve their styles.
type StyleEnv struct {
	Fonts css.FontFinder
}

// Styler is implemented by node attributes which resolve to style
// declarations on their own.
type Styler interface {
	Style(env StyleEnv) *css.StyleMap
}

// Color is an RGB color.
type Color struct {
	R, G, B uint8
}

// Black is the default color.
var Black = Color{}

// String returns CSS notation.
func (c Color) String() string {
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}

// ParseColor reads "r,g,b" notation used by form documents, components are
// clamped to 0-255.
func ParseColor(s string) (Color, error) {
	parts := strings.Split(s, ",")
	if len(parts) != 3 {
		return Black, fmt.Errorf("color %q must have 3 components", s)
	}
	var rgb [3]uint8
	for i, p := range parts {
		var v int
		if _, err := fmt.Sscanf(strings.TrimSpace(p), "%d", &v); err != nil {
			return Black, fmt.Errorf("color %q: %w", s, err)
		}
		rgb[i] = uint8(max(0, min(255, v)))
	}
	return Color{R: rgb[0], G: rgb[1], B: rgb[2]}, nil
}

// Margin is an inset on all four sides.
type Margin struct {
	Top, Right, Bottom, Left float64
}

func (m *Margin) Style(StyleEnv) *css.StyleMap {
	s := css.NewStyleMap()
	if m == nil {
		return s
	}
	s.Set("margin", strings.Join([]string{
		css.FormatPx(m.Top), css.FormatPx(m.Right), css.FormatPx(m.Bottom), css.FormatPx(m.Left),
	}, " "))
	return s
}

// Para holds paragraph formatting.
type Para struct {
	HAlign      HAlign
	MarginLeft  float64
	MarginRight float64
	SpaceAbove  float64
	SpaceBelow  float64
	TextIndent  float64
	LineHeight  float64
}

func (p *Para) Style(StyleEnv) *css.StyleMap {
	s := css.NewStyleMap()
	if p == nil {
		return s
	}
	if p.HAlign != "" {
		s.Set("textAlign", p.HAlign.TextAlign())
	}
	if p.MarginLeft != 0 {
		s.Set("paddingLeft", css.FormatPx(p.MarginLeft))
	}
	if p.MarginRight != 0 {
		s.Set("paddingRight", css.FormatPx(p.MarginRight))
	}
	if p.SpaceAbove != 0 {
		s.Set("paddingTop", css.FormatPx(p.SpaceAbove))
	}
	if p.SpaceBelow != 0 {
		s.Set("paddingBottom", css.FormatPx(p.SpaceBelow))
	}
	if p.TextIndent != 0 {
		s.Set("textIndent", css.FormatPx(p.TextIndent))
		css.FixTextIndent(s)
	}
	if p.LineHeight > 0 {
		s.Set("lineHeight", css.FormatPx(p.LineHeight))
	}
	return s
}

// Font describes typeface and decoration of text.
type Font struct {
	Typeface  string
	Size      float64
	Weight    string
	Posture   string
	Underline bool
	LineThru  bool
	Color     *Color
}

func (f *Font) Style(env StyleEnv) *css.StyleMap {
	s := css.NewStyleMap()
	if f == nil {
		return s
	}
	if f.Posture == "italic" {
		s.Set("fontStyle", "italic")
	}
	if f.Size > 0 {
		s.Set("fontSize", css.FormatPx(f.Size))
	}
	if f.Typeface != "" {
		s.Set("fontFamily", css.FontFamily(f.Typeface, env.Fonts))
	}
	if f.Weight == "bold" {
		s.Set("fontWeight", "bold")
	}
	var deco []string
	if f.Underline {
		deco = append(deco, "underline")
	}
	if f.LineThru {
		deco = append(deco, "line-through")
	}
	if len(deco) > 0 {
		s.Set("textDecoration", strings.Join(deco, " "))
	}
	if f.Color != nil {
		s.Set("color", f.Color.String())
	}
	return s
}

// Fill is a solid background.
type Fill struct {
	Color *Color
}

func (f *Fill) Style(StyleEnv) *css.StyleMap {
	s := css.NewStyleMap()
	if f == nil || f.Color == nil {
		return s
	}
	s.Set("background", f.Color.String())
	return s
}

// Edge is one side of a border.
type Edge struct {
	Thickness float64
	Stroke    string
	Color     Color
	Presence  Presence
}

// Border describes box border. Widths and Insets are in top, right, bottom,
// left order and are computed when the border is read.
type Border struct {
	Hand     Hand
	Edges    [4]Edge
	Widths   [4]float64
	Insets   [4]float64
	Radius   float64
	Fill     *Fill
	Relevant string
}

// PrintOnly reports whether the border should appear only when printing.
func (b *Border) PrintOnly() bool {
	if b == nil {
		return false
	}
	return b.Relevant == "print" || strings.Contains(b.Relevant, "+print")
}

var strokeStyles = map[string]string{
	"":         "solid",
	"solid":    "solid",
	"dashed":   "dashed",
	"dotted":   "dotted",
	"dashDot":  "dashed",
	"embossed": "outset",
	"etched":   "groove",
	"lowered":  "inset",
	"raised":   "outset",
}

func (b *Border) Style(env StyleEnv) *css.StyleMap {
	s := css.NewStyleMap()
	if b == nil {
		return s
	}
	widths := make([]string, 4)
	colors := make([]string, 4)
	styles := make([]string, 4)
	for i, e := range b.Edges {
		widths[i] = css.FormatPx(b.Widths[i])
		colors[i] = e.Color.String()
		st, ok := strokeStyles[e.Stroke]
		if !ok {
			st = "solid"
		}
		if e.Presence == PresenceHidden || e.Presence == PresenceInvisible || b.Widths[i] == 0 {
			st = "none"
		}
		styles[i] = st
	}
	s.Set("borderWidth", strings.Join(widths, " "))
	s.Set("borderColor", strings.Join(colors, " "))
	s.Set("borderStyle", strings.Join(styles, " "))
	if b.Radius > 0 {
		s.Set("borderRadius", css.FormatPx(b.Radius))
	}
	if b.Fill != nil {
		s.Merge(b.Fill.Style(env))
	}
	return s
}
