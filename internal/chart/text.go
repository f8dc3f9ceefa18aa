package chart

import (
	"fmt"
	"io"
	"strings"
	"unicode/utf8"
)

// TextRenderer draws horizontal bars on a terminal.
type TextRenderer struct {
	w      io.Writer
	width  int
	prefix string
}

// NewTextRenderer draws bars at most width cells wide; values are printed
// after each bar with the given currency prefix.
func NewTextRenderer(w io.Writer, width int, prefix string) *TextRenderer {
	if width < 1 {
		width = 40
	}
	return &TextRenderer{w: w, width: width, prefix: prefix}
}

func (r *TextRenderer) Render(title string, bars []Bar) error {
	labelWidth := 0
	for _, b := range bars {
		if n := utf8.RuneCountInString(b.Label); n > labelWidth {
			labelWidth = n
		}
	}
	max := maxValue(bars)

	var sb strings.Builder
	fmt.Fprintf(&sb, "\n%s\n", title)
	for _, b := range bars {
		pad := strings.Repeat(" ", labelWidth-utf8.RuneCountInString(b.Label))
		bar := strings.Repeat("█", scale(b.Value, max, r.width))
		fmt.Fprintf(&sb, "%s%s | %s %s%s\n", b.Label, pad, bar, r.prefix, b.Value.StringFixed(2))
	}

	if _, err := io.WriteString(r.w, sb.String()); err != nil {
		return fmt.Errorf("write chart: %w", err)
	}
	return nil
}
