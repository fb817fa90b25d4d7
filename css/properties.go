package css

import (
	"strings"
	"unicode"
)

// Property names moved between layers when a fragment is wrapped.
var (
	// BorderProperties belong to the border layer.
	BorderProperties = []string{"border", "borderWidth", "borderColor", "borderRadius", "borderStyle"}

	// BoxProperties belong to the outer wrapper: position, size, background
	// and transforms.
	BoxProperties = []string{
		"background", "backgroundClip",
		"top", "left", "width", "height",
		"minWidth", "minHeight", "maxWidth", "maxHeight",
		"transform", "transformOrigin",
	}
)

// PropertyName converts camelCase style key to CSS property name:
// "borderWidth" -> "border-width". Keys already in CSS form are returned
// unchanged.
func PropertyName(key string) string {
	if !strings.ContainsFunc(key, unicode.IsUpper) {
		return key
	}
	var b strings.Builder
	b.Grow(len(key) + 4)
	for _, r := range key {
		if unicode.IsUpper(r) {
			b.WriteByte('-')
			b.WriteRune(unicode.ToLower(r))
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}

// quoteString escapes s for use inside CSS double quotes.
func quoteString(s string) string {
	if !strings.ContainsAny(s, `"\`) {
		return `"` + s + `"`
	}
	var b strings.Builder
	b.Grow(len(s) + 4)
	b.WriteByte('"')
	for _, r := range s {
		switch r {
		case '\\':
			b.WriteString(`\\`)
		case '"':
			b.WriteString(`\"`)
		default:
			b.WriteRune(r)
		}
	}
	b.WriteByte('"')
	return b.String()
}
