package css

// FixTextIndent turns a negative text indent into a hanging indent: the
// padding on the aligned side grows by the indent magnitude so the first
// line starts at the block edge and following lines are indented.
func FixTextIndent(s *StyleMap) {
	if !s.Has("textIndent") {
		return
	}
	indent := ParsePx(s.Value("textIndent"), 0)
	if indent >= 0 {
		return
	}
	name := "paddingLeft"
	if s.Value("textAlign") == "right" {
		name = "paddingRight"
	}
	padding := ParsePx(s.Value(name), 0)
	s.Set(name, FormatPx(padding-indent))
}
