package debug

import (
	"iter"
	"strings"
	"testing"
)

func TestTreeWriter_String(t *testing.T) {
	tw := NewTreeWriter()
	if tw.String() != "" {
		t.Error("Expected empty string from new TreeWriter")
	}

	tw.w.WriteString("test content")
	if tw.String() != "test content" {
		t.Errorf("String() = %q, want %q", tw.String(), "test content")
	}
}

func TestTreeWriter_Line(t *testing.T) {
	tests := []struct {
		name   string
		depth  int
		format string
		args   []any
		want   string
	}{
		{"root", 0, "div #%s", []any{"page1"}, "div #page1\n"},
		{"child", 1, "div .%s", []any{"xfaWrapper"}, "  div .xfaWrapper\n"},
		{"grandchild", 2, "div .xfaWrapped", nil, "    div .xfaWrapped\n"},
		{"several args", 0, "%s=%dpx", []any{"width", 40}, "width=40px\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tw := NewTreeWriter()
			tw.Line(tt.depth, tt.format, tt.args...)
			if got := tw.String(); got != tt.want {
				t.Errorf("Line() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestTreeWriter_TextBlock(t *testing.T) {
	tests := []struct {
		name  string
		depth int
		value string
		want  string
	}{
		{"empty", 0, "", "text: \n"},
		{"plain", 1, "Name:", "  text: \"Name:\"\n"},
		{"quotes and newline", 2, "a \"b\"\nc", "    text: \"a \\\"b\\\"\\nc\"\n"},
		{"non latin", 0, "Фамилия", "text: \"Фамилия\"\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tw := NewTreeWriter()
			tw.TextBlock(tt.depth, "text", tt.value)
			if got := tw.String(); got != tt.want {
				t.Errorf("TextBlock() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestTreeWriter_Props(t *testing.T) {
	pairs := func(kv ...string) iter.Seq2[string, string] {
		return func(yield func(string, string) bool) {
			for i := 0; i+1 < len(kv); i += 2 {
				if !yield(kv[i], kv[i+1]) {
					return
				}
			}
		}
	}

	tw := NewTreeWriter()
	tw.Props(1, "style", pairs("width", "10px", "position", "absolute"))
	tw.Props(1, "empty", pairs())

	want := "  style: width=10px, position=absolute\n"
	if got := tw.String(); got != want {
		t.Errorf("Props() = %q, want %q", got, want)
	}
}

func TestTreeWriter_FragmentTree(t *testing.T) {
	tw := NewTreeWriter()
	tw.Line(0, "div class=%s", "xfaWrapper")
	tw.Line(1, "div class=%s", "xfaBorder")
	tw.Line(1, "div class=%s", "xfaWrapped")
	tw.TextBlock(2, "text", "Name:")

	var sb strings.Builder
	n, err := tw.WriteTo(&sb)
	if err != nil {
		t.Fatalf("WriteTo() error = %v", err)
	}
	want := "div class=xfaWrapper\n  div class=xfaBorder\n  div class=xfaWrapped\n    text: \"Name:\"\n"
	if sb.String() != want {
		t.Errorf("WriteTo() wrote:\n%s\nwant:\n%s", sb.String(), want)
	}
	if n != int64(len(want)) {
		t.Errorf("WriteTo() = %d, want %d", n, len(want))
	}
}
