package visual

import (
	"formtree/css"
	"formtree/form"
)

// handShare is the part of border thickness drawn outside of the border
// path.
var handShare = map[form.Hand]float64{
	form.HandEven:  0.5,
	form.HandLeft:  1,
	form.HandRight: 0,
}

// CreateWrapper splits box model of f into an outer wrapper carrying
// geometry, an optional border layer and the original content. f is modified
// in place and becomes the last child of returned wrapper.
func CreateWrapper(n *form.Node, f *Fragment) *Fragment {
	wrapper := NewFragment("div", ClassWrapper)
	f.AddClass(ClassWrapped)

	if b := n.Border; b != nil {
		wrapper.Append(borderLayer(b, f))
	}

	f.Style.MoveTo(wrapper.Style, css.BoxProperties...)

	pos := "relative"
	if v, ok := f.Style.Take("position"); ok && v == "absolute" {
		pos = "absolute"
	}
	wrapper.Style.Set("position", pos)

	if v, ok := f.Style.Take("alignSelf"); ok {
		wrapper.Style.Set("alignSelf", v)
	}

	return wrapper.Append(f)
}

func borderLayer(b *form.Border, f *Fragment) *Fragment {
	layer := NewFragment("div", ClassBorder)
	if b.PrintOnly() {
		layer.AddClass(ClassPrintOnly)
	}

	share, ok := handShare[b.Hand]
	if !ok {
		share = handShare[form.HandEven]
	}
	layer.Style = css.StyleMapOf(
		"top", css.FormatPx(b.Insets[0]-share*b.Widths[0]),
		"left", css.FormatPx(b.Insets[3]-share*b.Widths[3]),
		"width", insetSize(b.Insets[1]+b.Insets[3]),
		"height", insetSize(b.Insets[0]+b.Insets[2]),
	)

	f.Style.MoveTo(layer.Style, css.BorderProperties...)
	return layer
}

func insetSize(insets float64) string {
	if insets == 0 {
		return "100%"
	}
	return "calc(100% - " + css.FormatPx(insets) + ")"
}
