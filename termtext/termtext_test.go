package termtext

import (
	"testing"

	"github.com/gdamore/tcell/v2"
)

func newScreen(t *testing.T, width, height int) tcell.SimulationScreen {
	t.Helper()
	screen := tcell.NewSimulationScreen("UTF-8")
	if err := screen.Init(); err != nil {
		t.Fatalf("screen.Init() error = %v", err)
	}
	t.Cleanup(screen.Fini)
	screen.SetSize(width, height)
	return screen
}

func rowText(screen tcell.SimulationScreen, y, width int) string {
	runes := make([]rune, 0, width)
	for x := 0; x < width; x++ {
		r, _, _, _ := screen.GetContent(x, y)
		runes = append(runes, r)
	}
	return string(runes)
}

func TestStringWidth(t *testing.T) {
	tests := []struct {
		in   string
		want int
	}{
		{"", 0},
		{"abc", 3},
		{"•", 1},
		{"日本", 4},
	}
	for _, tt := range tests {
		if got := StringWidth(tt.in); got != tt.want {
			t.Errorf("StringWidth(%q) = %d, want %d", tt.in, got, tt.want)
		}
	}
}

func TestPrint(t *testing.T) {
	tests := []struct {
		name      string
		text      string
		alignment Alignment
		want      string
		printed   int
	}{
		{"left", "abc", AlignmentLeft, "abc   ", 3},
		{"right", "abc", AlignmentRight, "   abc", 3},
		{"center", "ab", AlignmentCenter, "  ab  ", 2},
		{"cut left aligned", "abcdefgh", AlignmentLeft, "abcdef", 6},
		{"cut right aligned", "abcdefgh", AlignmentRight, "cdefgh", 6},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			screen := newScreen(t, 6, 1)
			screen.Clear()
			Fill(screen, 0, 0, 6, tcell.StyleDefault)
			printed := Print(screen, tt.text, 0, 0, 6, tt.alignment, tcell.StyleDefault)
			if printed != tt.printed {
				t.Errorf("Print() = %d, want %d", printed, tt.printed)
			}
			if got := rowText(screen, 0, 6); got != tt.want {
				t.Errorf("row = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestPrintLine(t *testing.T) {
	screen := newScreen(t, 8, 1)
	Fill(screen, 0, 0, 8, tcell.StyleDefault)
	bold := tcell.StyleDefault.Bold(true)
	line := Line{{Text: "q", Style: bold}, {Text: " quit", Style: tcell.StyleDefault}}

	if got := PrintLine(screen, line, 0, 0, 8); got != 6 {
		t.Errorf("PrintLine() = %d, want 6", got)
	}
	if got := rowText(screen, 0, 8); got != "q quit  " {
		t.Errorf("row = %q, want %q", got, "q quit  ")
	}
	if _, _, style, _ := screen.GetContent(0, 0); style != bold {
		t.Errorf("first cell style = %v, want bold", style)
	}
	if line.Width() != 6 || line.Text() != "q quit" {
		t.Errorf("Line.Width() = %d, Line.Text() = %q", line.Width(), line.Text())
	}
}
