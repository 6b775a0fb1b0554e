package termhost

import (
	"image"
	"image/color"

	"github.com/gdamore/tcell/v2"
)

// upperHalfBlock paints the top half of a cell in the foreground color and
// the bottom half in the background color, giving two square pixels per
// cell.
const upperHalfBlock = '▀'

// cellColor converts a pixel to a terminal color. Fully transparent pixels
// show the terminal background.
func cellColor(c color.Color) tcell.Color {
	r, g, b, a := c.RGBA()
	if a == 0 {
		return tcell.ColorDefault
	}
	if a != 0xffff {
		r, g, b = r*0xffff/a, g*0xffff/a, b*0xffff/a
	}
	return tcell.NewRGBColor(int32(r>>8), int32(g>>8), int32(b>>8))
}

// blit copies img into the cells (x, y, width, height), two pixel rows per
// cell row. Pixels outside img are transparent.
func blit(screen tcell.Screen, img image.Image, x, y, width, height int) {
	bounds := img.Bounds()
	at := func(px, py int) color.Color {
		if !(image.Point{X: px, Y: py}).In(bounds) {
			return color.Transparent
		}
		if rgba, ok := img.(*image.RGBA); ok {
			return rgba.RGBAAt(px, py)
		}
		return img.At(px, py)
	}

	for row := 0; row < height; row++ {
		for col := 0; col < width; col++ {
			top := cellColor(at(bounds.Min.X+col, bounds.Min.Y+2*row))
			bottom := cellColor(at(bounds.Min.X+col, bounds.Min.Y+2*row+1))
			style := tcell.StyleDefault.Foreground(top).Background(bottom)
			screen.SetContent(x+col, y+row, upperHalfBlock, nil, style)
		}
	}
}
