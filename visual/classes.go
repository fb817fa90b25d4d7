package visual

import "formtree/form"

// Marker classes.
const (
	ClassWrapper   = "xfaWrapper"
	ClassWrapped   = "xfaWrapped"
	ClassBorder    = "xfaBorder"
	ClassPrintOnly = "xfaPrintOnly"
	ClassText      = "xfaRich"
	ClassPara      = "xfaPara"
	ClassOverflow  = "xfaOverflow"
	ClassContinued = "xfaContinued"
)

var layoutClasses = map[form.Layout]string{
	form.LayoutPosition: "xfaPosition",
	form.LayoutLrTb:     "xfaLrTb",
	form.LayoutRlRow:    "xfaRlRow",
	form.LayoutRlTb:     "xfaRlTb",
	form.LayoutRow:      "xfaRow",
	form.LayoutTable:    "xfaTable",
	form.LayoutTb:       "xfaTb",
}

// LayoutClass returns class name for a container layout, position layout
// class for anything unknown.
func LayoutClass(l form.Layout) string {
	if c, ok := layoutClasses[l]; ok {
		return c
	}
	return layoutClasses[form.LayoutPosition]
}
