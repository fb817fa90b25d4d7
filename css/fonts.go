package css

import "strings"

// FontFinder resolves a form typeface to an installed font family.
type FontFinder interface {
	// Find returns the family registered for typeface.
	Find(typeface string) (family string, ok bool)
	// Fallback returns generic family appended last (serif, sans-serif...),
	// may be empty.
	Fallback() string
}

// FontTable is a FontFinder backed by a static typeface to family table.
// Lookups are case-insensitive.
type FontTable struct {
	families map[string]string
	generic  string
}

// NewFontTable creates a table. Keys of families are typeface names.
func NewFontTable(families map[string]string, generic string) *FontTable {
	t := &FontTable{families: make(map[string]string, len(families)), generic: generic}
	for k, v := range families {
		t.families[strings.ToLower(stripQuotes(k))] = v
	}
	return t
}

func (t *FontTable) Find(typeface string) (string, bool) {
	if t == nil {
		return "", false
	}
	f, ok := t.families[strings.ToLower(stripQuotes(typeface))]
	return f, ok
}

func (t *FontTable) Fallback() string {
	if t == nil {
		return ""
	}
	return t.generic
}

// FontFamily builds the font-family fallback list for a typeface: quoted
// typeface first, then the family the finder knows it by (when it differs)
// and finally the generic family.
func FontFamily(typeface string, finder FontFinder) string {
	name := stripQuotes(strings.TrimSpace(typeface))
	list := make([]string, 0, 3)
	if name != "" {
		list = append(list, quoteString(name))
	}
	if finder == nil {
		return strings.Join(list, ",")
	}
	if family, ok := finder.Find(name); ok && family != "" && !strings.EqualFold(family, name) {
		list = append(list, quoteString(family))
	}
	if generic := finder.Fallback(); generic != "" {
		list = append(list, generic)
	}
	return strings.Join(list, ",")
}

func stripQuotes(s string) string {
	if len(s) >= 2 && (s[0] == '"' || s[0] == '\'') && s[len(s)-1] == s[0] {
		return s[1 : len(s)-1]
	}
	return s
}
