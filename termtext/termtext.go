// Package termtext prints styled text into terminal cells, one grapheme
// cluster at a time.
package termtext

import (
	"strings"

	"github.com/gdamore/tcell/v2"
	"github.com/rivo/uniseg"
)

type Alignment int

const (
	AlignmentLeft Alignment = iota
	AlignmentCenter
	AlignmentRight
)

// Segment is a styled piece of text.
type Segment struct {
	Text  string
	Style tcell.Style
}

// Line is a list of styled segments.
type Line []Segment

// Width returns the width of the line in cells.
func (l Line) Width() int {
	width := 0
	for _, s := range l {
		width += StringWidth(s.Text)
	}
	return width
}

// Text returns the line without styles.
func (l Line) Text() string {
	var b strings.Builder
	for _, s := range l {
		b.WriteString(s.Text)
	}
	return b.String()
}

// stepState represents the current state of the grapheme parser.
type stepState struct {
	unisegState int
	boundaries  int
	grossLength int
}

// Width returns the grapheme cluster's width in cells.
func (s *stepState) Width() int {
	return s.boundaries >> uniseg.ShiftWidth
}

// step iterates over grapheme clusters of a string.
func step(str string, state *stepState) (cluster, rest string, newState *stepState) {
	if state == nil {
		state = &stepState{
			unisegState: -1,
		}
	}
	if len(str) == 0 {
		newState = state
		return
	}

	cluster, rest, state.boundaries, state.unisegState = uniseg.StepString(str, state.unisegState)
	state.grossLength = len(cluster)
	newState = state
	return
}

// StringWidth returns the width of the given string in cells.
func StringWidth(text string) (width int) {
	var state *stepState
	for len(text) > 0 {
		_, text, state = step(text, state)
		width += state.Width()
	}
	return
}

// Print prints text into the box at (x, y, maxWidth, 1), not exceeding it.
// Text that does not fit is cut off on the right for left alignment, on the
// left for right alignment, and on both sides when centered. It returns the
// width actually printed.
func Print(screen tcell.Screen, text string, x, y, maxWidth int, alignment Alignment, style tcell.Style) int {
	totalWidth, totalHeight := screen.Size()
	if maxWidth <= 0 || len(text) == 0 || y < 0 || y >= totalHeight {
		return 0
	}

	textWidth := StringWidth(text)
	var state *stepState

	// Reduce all alignments to AlignmentLeft.
	switch alignment {
	case AlignmentRight:
		for len(text) > 0 && textWidth > maxWidth {
			_, text, state = step(text, state)
			textWidth -= state.Width()
		}
		x, maxWidth = x+maxWidth-textWidth, textWidth
	case AlignmentCenter:
		subtracted := (textWidth - maxWidth) / 2
		for len(text) > 0 && subtracted > 0 {
			_, text, state = step(text, state)
			subtracted -= state.Width()
			textWidth -= state.Width()
		}
		if textWidth < maxWidth {
			x, maxWidth = x+maxWidth/2-textWidth/2, textWidth
		}
	}

	printed := 0
	rightBorder := x + maxWidth
	for len(text) > 0 && x < rightBorder && x < totalWidth {
		var c string
		c, text, state = step(text, state)
		if c == "" {
			break
		}
		width := state.Width()
		if x+width > rightBorder {
			break
		}
		if width > 0 {
			runes := []rune(c)
			// To avoid undesired effects, we populate all cells.
			for offset := width - 1; offset > 0; offset-- {
				screen.SetContent(x+offset, y, ' ', nil, style)
			}
			screen.SetContent(x, y, runes[0], runes[1:], style)
		}
		x += width
		printed += width
	}
	return printed
}

// PrintLine prints the segments of line one after the other, left aligned,
// and returns the width printed.
func PrintLine(screen tcell.Screen, line Line, x, y, maxWidth int) int {
	printed := 0
	for _, s := range line {
		if s.Text == "" || printed >= maxWidth {
			continue
		}
		printed += Print(screen, s.Text, x+printed, y, maxWidth-printed, AlignmentLeft, s.Style)
	}
	return printed
}

// Fill sets every cell of the row segment (x, y, width) to a blank with style.
func Fill(screen tcell.Screen, x, y, width int, style tcell.Style) {
	for i := 0; i < width; i++ {
		screen.SetContent(x+i, y, ' ', nil, style)
	}
}
