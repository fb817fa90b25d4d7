package layout

import (
	"math"
	"strings"
	"testing"

	"formtree/form"
)

func TestLayoutText(t *testing.T) {
	// font size 10: line height 15, char width 4
	tests := []struct {
		name  string
		text  string
		space form.Space
		want  TextBlock
	}{
		{"empty", "", form.Space{Width: 100, Height: 100}, TextBlock{0, 0, -1}},
		{"single word fits", "Hello", form.Space{Width: 100, Height: 100}, TextBlock{20, 15, -1}},
		{"zero height", "Hello", form.Space{Width: 100, Height: 0}, TextBlock{0, 0, 0}},
		{"two lines", "aaaa bbbb", form.Space{Width: 20, Height: 100}, TextBlock{20, 30, -1}},
		{"word moves whole", "aa bbbb", form.Space{Width: 16, Height: 100}, TextBlock{16, 30, -1}},
		{"long word is split", "abcdefghij", form.Space{Width: 16, Height: 100}, TextBlock{16, 45, -1}},
		{"split after first line", "aaaa bbbb cccc", form.Space{Width: 20, Height: 20}, TextBlock{0, 0, 5}},
		{"split after two lines", "aaaa bbbb cccc", form.Space{Width: 20, Height: 30}, TextBlock{0, 0, 10}},
		{"narrow space places one char", "ab", form.Space{Width: 1, Height: 100}, TextBlock{4, 30, -1}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := LayoutText(tt.text, 10, tt.space)
			if got != tt.want {
				t.Errorf("LayoutText(%q) = %+v, want %+v", tt.text, got, tt.want)
			}
		})
	}
}

func TestLayoutText_Unicode(t *testing.T) {
	// combining marks stay in words, each code point counts as a character
	got := LayoutText("cafe\u0301 ok", 10, form.Space{Width: 100, Height: 100})
	if got.SplitPos != -1 || got.Width != 32 {
		t.Errorf("LayoutText() = %+v, want width 32", got)
	}
}

func TestLayoutText_NonPositiveFont(t *testing.T) {
	if got := LayoutText("abc", 0, form.Space{Width: 10, Height: 10}); got != (TextBlock{0, 0, -1}) {
		t.Errorf("LayoutText() = %+v", got)
	}
}

func TestLayoutText_Bounds(t *testing.T) {
	text := strings.Repeat("lorem ipsum dolor sit amet, ", 20)
	space := form.Space{Width: 120, Height: math.Inf(1)}
	got := LayoutText(text, 12, space)
	if !got.Fits() {
		t.Fatalf("LayoutText() did not fit into unbounded height: %+v", got)
	}
	if got.Width > space.Width {
		t.Errorf("width %v exceeds available %v", got.Width, space.Width)
	}
	lh := 12 * 1.5
	if rem := math.Mod(got.Height, lh); rem > 1e-9 && lh-rem > 1e-9 {
		t.Errorf("height %v is not a multiple of line height %v", got.Height, lh)
	}

	// the split point must leave all lines before it within height
	limited := LayoutText(text, 12, form.Space{Width: 120, Height: 100})
	if limited.Fits() {
		t.Fatal("long text fits into limited height")
	}
	if limited.SplitPos <= 0 || limited.SplitPos >= len([]rune(text)) {
		t.Errorf("SplitPos = %d", limited.SplitPos)
	}
	head := string([]rune(text)[:limited.SplitPos])
	if again := LayoutText(head, 12, form.Space{Width: 120, Height: 100}); !again.Fits() {
		t.Errorf("text before split does not fit: %+v", again)
	}
}

func TestEstimator_Factors(t *testing.T) {
	e := Estimator{LineHeightFactor: 2, CharWidthFactor: 0.5}
	got := e.Layout("abcd", 10, form.Space{Width: 100, Height: 100})
	if got != (TextBlock{20, 20, -1}) {
		t.Errorf("Layout() = %+v", got)
	}
}

func TestSplitRuns(t *testing.T) {
	runs := splitRuns("ab, 12x!")
	var got []string
	for _, r := range runs {
		got = append(got, string(r.chars))
	}
	want := []string{"ab", ", ", "12x", "!"}
	if strings.Join(got, "|") != strings.Join(want, "|") {
		t.Errorf("splitRuns() = %q, want %q", got, want)
	}
	if !runs[0].word || runs[1].word {
		t.Error("word classification is wrong")
	}
}
