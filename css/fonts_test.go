package css

import "testing"

func TestFontFamily(t *testing.T) {
	table := NewFontTable(map[string]string{
		"Myriad Pro": "Myriad",
		"Arial":      "arial",
	}, "sans-serif")

	tests := []struct {
		name     string
		typeface string
		finder   FontFinder
		want     string
	}{
		{"no finder", "Courier", nil, `"Courier"`},
		{"known with different family", "Myriad Pro", table, `"Myriad Pro","Myriad",sans-serif`},
		{"known with same family", "Arial", table, `"Arial",sans-serif`},
		{"unknown", "Zapf", table, `"Zapf",sans-serif`},
		{"quoted typeface", `'Myriad Pro'`, table, `"Myriad Pro","Myriad",sans-serif`},
		{"case insensitive lookup", "myriad pro", table, `"myriad pro","Myriad",sans-serif`},
		{"embedded quote", `A"B`, nil, `"A\"B"`},
		{"empty typeface", "", table, `sans-serif`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := FontFamily(tt.typeface, tt.finder); got != tt.want {
				t.Errorf("FontFamily(%q) = %s, want %s", tt.typeface, got, tt.want)
			}
		})
	}
}

func TestFixTextIndent(t *testing.T) {
	tests := []struct {
		name   string
		in     *StyleMap
		key    string
		want   string
		absent bool
	}{
		{"positive indent untouched", StyleMapOf("textIndent", "10px"), "paddingLeft", "", true},
		{"hanging indent left", StyleMapOf("textIndent", "-10px"), "paddingLeft", "10px", false},
		{"hanging indent adds to padding", StyleMapOf("textIndent", "-10px", "paddingLeft", "5px"), "paddingLeft", "15px", false},
		{"hanging indent right aligned", StyleMapOf("textIndent", "-4.5px", "textAlign", "right"), "paddingRight", "4.50px", false},
		{"no indent", NewStyleMap(), "paddingLeft", "", true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			FixTextIndent(tt.in)
			got, ok := tt.in.Get(tt.key)
			if tt.absent {
				if ok {
					t.Errorf("%s = %q, expected absent", tt.key, got)
				}
				return
			}
			if got != tt.want {
				t.Errorf("%s = %q, want %q", tt.key, got, tt.want)
			}
		})
	}
}
