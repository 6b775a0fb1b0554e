package grapheditor

import "fmt"

// Surface is the drawing capability the editor paints onto. It follows the
// HTML canvas 2D model: paint properties are part of the state saved by Save
// and restored by Restore, paths are built between BeginPath and
// Fill/Stroke/Clip.
type Surface interface {
	// Save pushes the current transform, clip and paint properties.
	Save()
	// Restore pops the state saved by the matching Save.
	Restore()
	// Scale multiplies the current transform by a scale.
	Scale(sx, sy float64)
	// Clear resets the whole surface to transparent.
	Clear()

	FillRect(x, y, width, height float64)
	StrokeRect(x, y, width, height float64)

	BeginPath()
	MoveTo(x, y float64)
	LineTo(x, y float64)
	Rect(x, y, width, height float64)
	// Arc adds a circular arc centered at (x, y), angles in radians.
	Arc(x, y, radius, startAngle, endAngle float64)
	Fill()
	Stroke()
	// Clip intersects the clip region with the current path.
	Clip()

	SetFillStyle(paint Paint)
	SetStrokeStyle(paint Paint)
	SetLineWidth(width float64)
	SetLineCap(lineCap LineCap)
	SetLineJoin(lineJoin LineJoin)
	SetMiterLimit(limit float64)
	SetLineDash(segments ...float64)
	SetLineDashOffset(offset float64)
	SetShadow(shadow Shadow)

	SetFont(font Font)
	// MeasureText returns the advance width of text in the current font.
	MeasureText(text string) float64
	// FillText draws one line of text vertically centered on y, aligned
	// horizontally on x.
	FillText(text string, x, y float64, align TextAlign)
}

// Paint is either a solid color or a gradient. A Paint with a nil Gradient is
// a solid color.
type Paint struct {
	Color    string
	Gradient *Gradient
}

// Color returns a solid paint.
func Color(color string) Paint {
	return Paint{Color: color}
}

// GradientKind selects the geometry of a gradient.
type GradientKind int

const (
	GradientLinear GradientKind = iota
	GradientRadial
)

// ColorStop is one stop of a gradient, offset in [0, 1].
type ColorStop struct {
	Offset float64
	Color  string
}

// Gradient describes a linear gradient from (X0, Y0) to (X1, Y1), or a radial
// gradient between the circles (X0, Y0, R0) and (X1, Y1, R1).
type Gradient struct {
	Kind       GradientKind
	X0, Y0, R0 float64
	X1, Y1, R1 float64
	Stops      []ColorStop
}

// LinearGradient returns a linear gradient paint.
func LinearGradient(x0, y0, x1, y1 float64, stops ...ColorStop) Paint {
	return Paint{Gradient: &Gradient{Kind: GradientLinear, X0: x0, Y0: y0, X1: x1, Y1: y1, Stops: stops}}
}

// RadialGradient returns a radial gradient paint.
func RadialGradient(x0, y0, r0, x1, y1, r1 float64, stops ...ColorStop) Paint {
	return Paint{Gradient: &Gradient{Kind: GradientRadial, X0: x0, Y0: y0, R0: r0, X1: x1, Y1: y1, R1: r1, Stops: stops}}
}

type LineCap int

const (
	LineCapButt LineCap = iota
	LineCapRound
	LineCapSquare
)

type LineJoin int

const (
	LineJoinRound LineJoin = iota
	LineJoinBevel
	LineJoinMiter
)

// Shadow describes a drop shadow applied to subsequent fills. A zero Shadow
// disables it.
type Shadow struct {
	Blur             float64
	Color            string
	OffsetX, OffsetY float64
}

// Enabled returns true if the shadow would be visible.
func (s Shadow) Enabled() bool {
	return s.Color != "" && (s.OffsetX != 0 || s.OffsetY != 0 || s.Blur > 0)
}

type TextAlign int

const (
	TextAlignLeft TextAlign = iota
	TextAlignCenter
	TextAlignRight
)

type FontStyle string

const (
	FontStyleNormal  FontStyle = "normal"
	FontStyleItalic  FontStyle = "italic"
	FontStyleOblique FontStyle = "oblique"
)

type FontWeight string

const (
	FontWeightNormal FontWeight = "normal"
	FontWeightBold   FontWeight = "bold"
)

type FontFamily string

const (
	FontFamilyCourier   FontFamily = "courier"
	FontFamilySerif     FontFamily = "serif"
	FontFamilySansSerif FontFamily = "sans-serif"
	FontFamilyMonospace FontFamily = "monospace"
	FontFamilySystemUI  FontFamily = "system-ui"
)

// Font describes the font used by SetFont. Size is in content units,
// LineHeight a multiple of Size.
type Font struct {
	Style      FontStyle
	SmallCaps  bool
	Weight     FontWeight
	Size       float64
	LineHeight float64
	Family     FontFamily
}

// String returns the CSS shorthand of the font.
func (f Font) String() string {
	variant := "normal"
	if f.SmallCaps {
		variant = "small-caps"
	}
	return fmt.Sprintf("%s %s %s %gpx /%g %s", f.Style, variant, f.Weight, f.Size, f.LineHeight, f.Family)
}
