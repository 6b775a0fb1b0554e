package ggsurface

import (
	"strings"

	"github.com/ayn2op/grapheditor"
	"github.com/gogpu/gg"
	"golang.org/x/image/colornames"
)

// ParseColor converts a CSS color string to a gg color. It accepts hex
// colors ("#rgb", "#rgba", "#rrggbb", "#rrggbbaa"), the CSS named colors and
// "transparent". For anything else it returns opaque black and false.
func ParseColor(s string) (gg.RGBA, bool) {
	s = strings.TrimSpace(strings.ToLower(s))
	if strings.HasPrefix(s, "#") {
		return gg.Hex(s), true
	}
	// Keep the first word so that "black solid" still resolves.
	if name, _, found := strings.Cut(s, " "); found {
		s = name
	}
	if s == "transparent" {
		return gg.RGBA{}, true
	}
	if c, ok := colornames.Map[s]; ok {
		return gg.FromColor(c), true
	}
	return gg.RGBA{A: 1}, false
}

// resolveColor resolves s, logging unknown colors.
func resolveColor(s string) gg.RGBA {
	c, ok := ParseColor(s)
	if !ok {
		grapheditor.Logger().Debug("unknown color", "color", s)
	}
	return c
}
