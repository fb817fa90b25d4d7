package visual

import (
	"slices"

	"formtree/css"
)

// Fragment is a resolved visual tree unit.
type Fragment struct {
	Tag   string
	ID    string
	Class []string
	Style *css.StyleMap
	// Text is emitted before children.
	Text     string
	Children []*Fragment
}

// NewFragment creates fragment with empty style.
func NewFragment(tag string, classes ...string) *Fragment {
	f := &Fragment{Tag: tag, Style: css.NewStyleMap()}
	f.AddClass(classes...)
	return f
}

// AddClass adds class names keeping them unique and in insertion order.
func (f *Fragment) AddClass(names ...string) {
	for _, name := range names {
		if name != "" && !f.HasClass(name) {
			f.Class = append(f.Class, name)
		}
	}
}

// HasClass reports whether fragment has class name.
func (f *Fragment) HasClass(name string) bool {
	return slices.Contains(f.Class, name)
}

// Append adds children.
func (f *Fragment) Append(children ...*Fragment) *Fragment {
	f.Children = append(f.Children, children...)
	return f
}

// Walk visits f and its descendants depth first.
func (f *Fragment) Walk(fn func(f *Fragment, depth int)) {
	f.walk(fn, 0)
}

func (f *Fragment) walk(fn func(*Fragment, int), depth int) {
	if f == nil {
		return
	}
	fn(f, depth)
	for _, c := range f.Children {
		c.walk(fn, depth+1)
	}
}
