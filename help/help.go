// Package help renders the key bindings of a KeyMap into terminal rows,
// either on a single line or as aligned columns.
package help

import (
	"strings"

	"github.com/ayn2op/grapheditor/keybind"
	"github.com/ayn2op/grapheditor/termtext"
	"github.com/gdamore/tcell/v2"
)

const (
	shortSeparator = " • "
	fullSeparator  = "    "
	ellipsis       = "…"
)

type KeyMap interface {
	// ShortHelp returns keybinds for single-line help.
	ShortHelp() []keybind.Keybind
	// FullHelp returns keybind groups, where each top-level entry is a column.
	FullHelp() [][]keybind.Keybind
}

// Help shows the enabled keybinds of a KeyMap. Disabled keybinds are left
// out, so the rows follow the state of the application.
type Help struct {
	Styles Styles

	keyMap  KeyMap
	showAll bool
}

func New() *Help {
	return &Help{Styles: DefaultStyles()}
}

// SetKeyMap sets the key map rendered by Draw.
func (h *Help) SetKeyMap(keyMap KeyMap) *Help {
	h.keyMap = keyMap
	return h
}

// SetShowAll enables or disables full help mode.
func (h *Help) SetShowAll(showAll bool) *Help {
	h.showAll = showAll
	return h
}

// ShowAll returns whether full help mode is enabled.
func (h *Help) ShowAll() bool {
	return h.showAll
}

// Toggle switches between short and full help mode.
func (h *Help) Toggle() {
	h.showAll = !h.showAll
}

// Lines returns the styled rows for the current mode at the given width.
func (h *Help) Lines(width int) []termtext.Line {
	if h.keyMap == nil {
		return nil
	}
	if h.showAll {
		return h.fullLines(h.keyMap.FullHelp(), width)
	}
	if line := h.shortLine(h.keyMap.ShortHelp(), width); len(line) > 0 {
		return []termtext.Line{line}
	}
	return nil
}

// Height returns the number of rows Draw uses at the given width.
func (h *Help) Height(width int) int {
	return len(h.Lines(width))
}

// Draw clears the area and prints the help rows into it.
func (h *Help) Draw(screen tcell.Screen, x, y, width, height int) {
	if width <= 0 || height <= 0 {
		return
	}
	lines := h.Lines(width)
	for row := range height {
		termtext.Fill(screen, x, y+row, width, h.Styles.BackgroundStyle)
		if row < len(lines) {
			termtext.PrintLine(screen, lines[row], x, y+row, width)
		}
	}
}

// FullHelpLines renders grouped help into full mode lines as plain text.
func (h *Help) FullHelpLines(groups [][]keybind.Keybind, maxWidth int) []string {
	var lines []string
	for _, line := range h.fullLines(groups, maxWidth) {
		lines = append(lines, line.Text())
	}
	return lines
}

// entries returns the help of the enabled keybinds that have any.
func entries(bindings []keybind.Keybind) []keybind.Help {
	var out []keybind.Help
	for _, kb := range bindings {
		if hp := kb.Help(); kb.Enabled() && (hp.Key != "" || hp.Desc != "") {
			out = append(out, hp)
		}
	}
	return out
}

// item formats one entry as "key desc", padding the key to keyWidth.
func (h *Help) item(e keybind.Help, keyWidth int, keyStyle, descStyle tcell.Style) termtext.Line {
	var line termtext.Line
	if e.Key != "" {
		line = append(line, termtext.Segment{Text: e.Key, Style: keyStyle})
	}
	if pad := keyWidth - termtext.StringWidth(e.Key); pad > 0 {
		line = append(line, termtext.Segment{Text: strings.Repeat(" ", pad), Style: keyStyle})
	}
	if e.Key != "" && e.Desc != "" {
		line = append(line, termtext.Segment{Text: " ", Style: descStyle})
	}
	if e.Desc != "" {
		line = append(line, termtext.Segment{Text: e.Desc, Style: descStyle})
	}
	return line
}

// withEllipsis appends the ellipsis to line if it fits in maxWidth.
func (h *Help) withEllipsis(line termtext.Line, maxWidth int) termtext.Line {
	if line.Width()+1+termtext.StringWidth(ellipsis) > maxWidth {
		return line
	}
	return append(line,
		termtext.Segment{Text: " ", Style: h.Styles.EllipsisStyle},
		termtext.Segment{Text: ellipsis, Style: h.Styles.EllipsisStyle},
	)
}

// shortLine joins the entries with separators until the next one would not
// fit, then ends the line with an ellipsis.
func (h *Help) shortLine(bindings []keybind.Keybind, maxWidth int) termtext.Line {
	var line termtext.Line
	for _, e := range entries(bindings) {
		next := h.item(e, 0, h.Styles.ShortKeyStyle, h.Styles.ShortDescStyle)
		width := line.Width() + next.Width()
		if len(line) > 0 {
			width += termtext.StringWidth(shortSeparator)
		}
		if maxWidth > 0 && width > maxWidth {
			if len(line) == 0 {
				return nil
			}
			return h.withEllipsis(line, maxWidth)
		}
		if len(line) > 0 {
			line = append(line, termtext.Segment{Text: shortSeparator, Style: h.Styles.ShortSeparatorStyle})
		}
		line = append(line, next...)
	}
	return line
}

// column is one group of full help, with its keys padded to a common width.
type column struct {
	entries  []keybind.Help
	keyWidth int
	width    int
}

func newColumn(group []keybind.Keybind) column {
	c := column{entries: entries(group)}
	for _, e := range c.entries {
		c.keyWidth = max(c.keyWidth, termtext.StringWidth(e.Key))
	}
	for _, e := range c.entries {
		w := c.keyWidth + termtext.StringWidth(e.Desc)
		if e.Key != "" && e.Desc != "" {
			w++
		}
		c.width = max(c.width, w)
	}
	return c
}

// fullLines lays the groups out as columns, dropping the columns that do not
// fit and marking the first row with an ellipsis when any was dropped.
func (h *Help) fullLines(groups [][]keybind.Keybind, maxWidth int) []termtext.Line {
	var columns []column
	total := 0
	truncated := false
	for _, group := range groups {
		c := newColumn(group)
		if len(c.entries) == 0 {
			continue
		}
		width := c.width
		if len(columns) > 0 {
			width += termtext.StringWidth(fullSeparator)
		}
		if maxWidth > 0 && total+width > maxWidth {
			truncated = true
			break
		}
		columns = append(columns, c)
		total += width
	}
	if len(columns) == 0 {
		if truncated {
			return []termtext.Line{{{Text: ellipsis, Style: h.Styles.EllipsisStyle}}}
		}
		return nil
	}

	rows := 0
	for _, c := range columns {
		rows = max(rows, len(c.entries))
	}
	lines := make([]termtext.Line, rows)
	for row := range lines {
		for i, c := range columns {
			if i > 0 {
				lines[row] = append(lines[row], termtext.Segment{Text: fullSeparator, Style: h.Styles.FullSeparatorStyle})
			}
			var cell termtext.Line
			if row < len(c.entries) {
				cell = h.item(c.entries[row], c.keyWidth, h.Styles.FullKeyStyle, h.Styles.FullDescStyle)
			}
			// The last column is not padded unless it is empty on this row.
			if i < len(columns)-1 || len(cell) == 0 {
				if pad := c.width - cell.Width(); pad > 0 {
					cell = append(cell, termtext.Segment{Text: strings.Repeat(" ", pad), Style: h.Styles.FullDescStyle})
				}
			}
			lines[row] = append(lines[row], cell...)
		}
	}
	if truncated {
		lines[0] = h.withEllipsis(lines[0], maxWidth)
	}
	return lines
}
