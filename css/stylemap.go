package css

import (
	"iter"
	"strings"

	"github.com/elliotchance/orderedmap/v3"
)

// StyleMap is an ordered set of style declarations keyed by camelCase
// property name (e.g. "borderWidth"). Keys are unique, setting an existing key
// replaces its value in place.
type StyleMap struct {
	m *orderedmap.OrderedMap[string, string]
}

// NewStyleMap returns an empty style map.
func NewStyleMap() *StyleMap {
	return &StyleMap{m: orderedmap.NewOrderedMap[string, string]()}
}

// StyleMapOf builds a map from alternating name, value pairs. Odd trailing
// name is ignored.
func StyleMapOf(pairs ...string) *StyleMap {
	s := NewStyleMap()
	for i := 0; i+1 < len(pairs); i += 2 {
		s.Set(pairs[i], pairs[i+1])
	}
	return s
}

func (s *StyleMap) lazy() {
	if s.m == nil {
		s.m = orderedmap.NewOrderedMap[string, string]()
	}
}

// Set stores value under name.
func (s *StyleMap) Set(name, value string) {
	s.lazy()
	s.m.Set(name, value)
}

// Get returns value stored under name.
func (s *StyleMap) Get(name string) (string, bool) {
	if s == nil || s.m == nil {
		return "", false
	}
	return s.m.Get(name)
}

// Value returns value stored under name or empty string.
func (s *StyleMap) Value(name string) string {
	v, _ := s.Get(name)
	return v
}

// Has reports whether name is present.
func (s *StyleMap) Has(name string) bool {
	_, ok := s.Get(name)
	return ok
}

// Delete removes name, reporting whether it was present.
func (s *StyleMap) Delete(name string) bool {
	if s == nil || s.m == nil {
		return false
	}
	return s.m.Delete(name)
}

// Take removes name and returns its former value.
func (s *StyleMap) Take(name string) (string, bool) {
	v, ok := s.Get(name)
	if ok {
		s.m.Delete(name)
	}
	return v, ok
}

// MoveTo moves listed properties present in s into dst.
func (s *StyleMap) MoveTo(dst *StyleMap, names ...string) {
	for _, name := range names {
		if v, ok := s.Take(name); ok {
			dst.Set(name, v)
		}
	}
}

// Len returns the number of declarations.
func (s *StyleMap) Len() int {
	if s == nil || s.m == nil {
		return 0
	}
	return s.m.Len()
}

// All iterates declarations in insertion order.
func (s *StyleMap) All() iter.Seq2[string, string] {
	return func(yield func(string, string) bool) {
		if s == nil || s.m == nil {
			return
		}
		for k, v := range s.m.AllFromFront() {
			if !yield(k, v) {
				return
			}
		}
	}
}

// Keys returns property names in insertion order.
func (s *StyleMap) Keys() []string {
	keys := make([]string, 0, s.Len())
	for k := range s.All() {
		keys = append(keys, k)
	}
	return keys
}

// Merge copies all declarations of other into s, later values win.
func (s *StyleMap) Merge(other *StyleMap) {
	for k, v := range other.All() {
		s.Set(k, v)
	}
}

// Equal reports whether both maps hold the same declarations in the same
// order.
func (s *StyleMap) Equal(other *StyleMap) bool {
	if s.Len() != other.Len() {
		return false
	}
	ka, kb := s.Keys(), other.Keys()
	for i := range ka {
		if ka[i] != kb[i] || s.Value(ka[i]) != other.Value(kb[i]) {
			return false
		}
	}
	return true
}

// AppendTransform adds a transform function to the existing transform list.
func (s *StyleMap) AppendTransform(fn string) {
	if cur, ok := s.Get("transform"); ok && cur != "" {
		s.Set("transform", cur+" "+fn)
		return
	}
	s.Set("transform", fn)
}

// Declarations renders the map as inline CSS text ("left: 1px; top: 2px").
func (s *StyleMap) Declarations() string {
	var b strings.Builder
	for k, v := range s.All() {
		if b.Len() > 0 {
			b.WriteString("; ")
		}
		b.WriteString(PropertyName(k))
		b.WriteString(": ")
		b.WriteString(v)
	}
	return b.String()
}

// String is used for debugging.
func (s *StyleMap) String() string {
	return "{" + s.Declarations() + "}"
}
