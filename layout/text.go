package layout

import (
	"math"
	"unicode"

	"formtree/form"
)

// TextBlock is estimated geometry of wrapped text. SplitPos is -1 when text
// fits, otherwise it is the number of characters which fit and Width and
// Height are 0.
type TextBlock struct {
	Width    float64
	Height   float64
	SplitPos int
}

// Fits reports whether estimation placed all text.
func (b TextBlock) Fits() bool {
	return b.SplitPos < 0
}

// Estimator approximates text geometry without font metrics. Factors are
// relative to font size.
type Estimator struct {
	LineHeightFactor float64
	CharWidthFactor  float64
}

// DefaultEstimator overestimates average Latin text.
var DefaultEstimator = Estimator{LineHeightFactor: 1.5, CharWidthFactor: 0.4}

// LayoutText estimates text with DefaultEstimator.
func LayoutText(text string, fontSize float64, space form.Space) TextBlock {
	return DefaultEstimator.Layout(text, fontSize, space)
}

type textRun struct {
	chars []rune
	word  bool
}

func isWordChar(r rune) bool {
	return unicode.IsLetter(r) || unicode.IsNumber(r) || unicode.IsMark(r)
}

// splitRuns cuts text into alternating word and non-word runs.
func splitRuns(text string) []textRun {
	var (
		runs []textRun
		cur  textRun
	)
	for _, r := range text {
		w := isWordChar(r)
		if len(cur.chars) > 0 && w != cur.word {
			runs = append(runs, cur)
			cur = textRun{}
		}
		cur.word = w
		cur.chars = append(cur.chars, r)
	}
	if len(cur.chars) > 0 {
		runs = append(runs, cur)
	}
	return runs
}

// Layout greedily places text runs into lines of space.Width. Runs which do
// not fit are moved to the next line whole when they are short words and
// split otherwise. When a line does not fit into space.Height estimation
// stops and the split position is returned.
func (e Estimator) Layout(text string, fontSize float64, space form.Space) TextBlock {
	if fontSize <= 0 || text == "" {
		return TextBlock{SplitPos: -1}
	}

	lineHeight := fontSize * e.LineHeightFactor
	charWidth := fontSize * e.CharWidthFactor
	maxChars := math.Floor(space.Width / charWidth)

	var (
		width, height, lineWidth float64
		placed, lineStart        int
	)
	// breakLine closes current line, false when it does not fit.
	breakLine := func() bool {
		if height+lineHeight > space.Height {
			return false
		}
		width = math.Max(width, lineWidth)
		height += lineHeight
		lineWidth = 0
		lineStart = placed
		return true
	}
	split := func() TextBlock {
		return TextBlock{SplitPos: lineStart}
	}

	for _, run := range splitRuns(text) {
		chars := run.chars
		for len(chars) > 0 {
			runWidth := float64(len(chars)) * charWidth
			if lineWidth+runWidth <= space.Width {
				lineWidth += runWidth
				placed += len(chars)
				break
			}
			if run.word && float64(len(chars)) <= maxChars && lineWidth > 0 {
				// short word starts next line
				if !breakLine() {
					return split()
				}
				continue
			}
			fit := int(math.Floor((space.Width - lineWidth) / charWidth))
			if lineWidth == 0 && fit < 1 {
				fit = 1
			}
			fit = min(max(fit, 0), len(chars))
			lineWidth += float64(fit) * charWidth
			placed += fit
			chars = chars[fit:]
			if !breakLine() {
				return split()
			}
		}
	}
	if lineWidth > 0 && !breakLine() {
		return split()
	}
	return TextBlock{Width: width, Height: height, SplitPos: -1}
}
