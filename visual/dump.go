package visual

import (
	"strings"

	"formtree/utils/debug"
)

// Dump returns human readable fragment tree for debugging.
func (f *Fragment) Dump() string {
	tw := debug.NewTreeWriter()
	f.Walk(func(fr *Fragment, depth int) {
		head := fr.Tag
		if fr.ID != "" {
			head += " #" + fr.ID
		}
		if len(fr.Class) > 0 {
			head += " ." + strings.Join(fr.Class, ".")
		}
		tw.Line(depth, "%s", head)
		tw.Props(depth+1, "style", fr.Style.All())
		if fr.Text != "" {
			tw.TextBlock(depth+1, "text", fr.Text)
		}
	})
	return tw.String()
}

// String implements fmt.Stringer.
func (f *Fragment) String() string {
	return f.Dump()
}
