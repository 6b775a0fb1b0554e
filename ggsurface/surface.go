// Package ggsurface implements the editor drawing surface on a gg software
// raster context.
package ggsurface

import (
	"fmt"
	"image"

	"github.com/ayn2op/grapheditor"
	"github.com/gogpu/gg"
)

// state holds the paint properties saved by Save. gg keeps only the
// transform and the clip on its own stack, and it shares one brush between
// fill and stroke, so the properties are applied right before each paint
// operation.
type state struct {
	fill, stroke grapheditor.Paint
	lineWidth    float64
	lineCap      grapheditor.LineCap
	lineJoin     grapheditor.LineJoin
	miterLimit   float64
	dash         []float64
	dashOffset   float64
	shadow       grapheditor.Shadow
	font         grapheditor.Font
	scale        float64
}

func defaultState() state {
	return state{
		fill:       grapheditor.Color("black"),
		stroke:     grapheditor.Color("black"),
		lineWidth:  1,
		lineCap:    grapheditor.LineCapButt,
		lineJoin:   grapheditor.LineJoinMiter,
		miterLimit: 10,
		font: grapheditor.Font{
			Style:      grapheditor.FontStyleNormal,
			Weight:     grapheditor.FontWeightNormal,
			Size:       10,
			LineHeight: 1,
			Family:     grapheditor.FontFamilySansSerif,
		},
		scale: 1,
	}
}

// Surface is a grapheditor.Surface backed by a *gg.Context.
type Surface struct {
	ctx   *gg.Context
	fonts *Fonts

	state state
	stack []state
}

var _ grapheditor.Surface = (*Surface)(nil)

// New returns a surface of the given size in pixels.
func New(width, height int) *Surface {
	return &Surface{
		ctx:   gg.NewContext(width, height),
		fonts: NewFonts(),
		state: defaultState(),
	}
}

// Context returns the underlying gg context.
func (s *Surface) Context() *gg.Context {
	return s.ctx
}

// Image returns the current raster.
func (s *Surface) Image() image.Image {
	return s.ctx.Image()
}

// Size returns the surface size in pixels.
func (s *Surface) Size() (int, int) {
	return s.ctx.Width(), s.ctx.Height()
}

// Resize changes the size of the raster. The content is lost.
func (s *Surface) Resize(width, height int) error {
	if err := s.ctx.Resize(width, height); err != nil {
		return fmt.Errorf("failed to resize surface: %w", err)
	}
	return nil
}

// Close releases the context and the parsed fonts.
func (s *Surface) Close() error {
	if err := s.fonts.Close(); err != nil {
		return err
	}
	return s.ctx.Close()
}

func (s *Surface) Save() {
	s.ctx.Push()
	saved := s.state
	saved.dash = append([]float64(nil), s.state.dash...)
	s.stack = append(s.stack, saved)
}

func (s *Surface) Restore() {
	if len(s.stack) == 0 {
		return
	}
	s.ctx.Pop()
	s.state = s.stack[len(s.stack)-1]
	s.stack = s.stack[:len(s.stack)-1]
}

func (s *Surface) Scale(sx, sy float64) {
	s.ctx.Scale(sx, sy)
	// Text and gradients use the horizontal factor; the editor scales
	// uniformly.
	s.state.scale *= sx
}

func (s *Surface) Clear() {
	s.ctx.Clear()
}

// brush converts a paint to a gg brush in device space.
func (s *Surface) brush(p grapheditor.Paint) gg.Brush {
	g := p.Gradient
	if g == nil {
		return gg.Solid(resolveColor(p.Color))
	}
	x0, y0 := s.ctx.TransformPoint(g.X0, g.Y0)
	x1, y1 := s.ctx.TransformPoint(g.X1, g.Y1)
	switch g.Kind {
	case grapheditor.GradientRadial:
		b := gg.NewRadialGradientBrush(x1, y1, g.R0*s.state.scale, g.R1*s.state.scale).SetFocus(x0, y0)
		for _, stop := range g.Stops {
			b.AddColorStop(stop.Offset, resolveColor(stop.Color))
		}
		return b
	default:
		b := gg.NewLinearGradientBrush(x0, y0, x1, y1)
		for _, stop := range g.Stops {
			b.AddColorStop(stop.Offset, resolveColor(stop.Color))
		}
		return b
	}
}

func (s *Surface) applyStroke() {
	st := s.state
	s.ctx.SetStrokeBrush(s.brush(st.stroke))
	s.ctx.SetLineWidth(st.lineWidth)
	s.ctx.SetMiterLimit(st.miterLimit)
	switch st.lineCap {
	case grapheditor.LineCapRound:
		s.ctx.SetLineCap(gg.LineCapRound)
	case grapheditor.LineCapSquare:
		s.ctx.SetLineCap(gg.LineCapSquare)
	default:
		s.ctx.SetLineCap(gg.LineCapButt)
	}
	switch st.lineJoin {
	case grapheditor.LineJoinRound:
		s.ctx.SetLineJoin(gg.LineJoinRound)
	case grapheditor.LineJoinBevel:
		s.ctx.SetLineJoin(gg.LineJoinBevel)
	default:
		s.ctx.SetLineJoin(gg.LineJoinMiter)
	}
	if len(st.dash) == 0 {
		s.ctx.ClearDash()
		return
	}
	s.ctx.SetDash(st.dash...)
	s.ctx.SetDashOffset(st.dashOffset)
}

func (s *Surface) report(op string, err error) {
	if err != nil {
		grapheditor.Logger().Warn("paint failed", "op", op, "error", err)
	}
}

// FillRect fills a rectangle. The current path is discarded. An enabled
// shadow is painted first as an offset copy of the rectangle; blur is not
// rendered.
func (s *Surface) FillRect(x, y, width, height float64) {
	s.ctx.ClearPath()
	if sh := s.state.shadow; sh.Enabled() {
		s.ctx.SetFillBrush(gg.Solid(resolveColor(sh.Color)))
		s.ctx.DrawRectangle(x+sh.OffsetX, y+sh.OffsetY, width, height)
		s.report("shadow", s.ctx.Fill())
	}
	s.ctx.SetFillBrush(s.brush(s.state.fill))
	s.ctx.DrawRectangle(x, y, width, height)
	s.report("fill rect", s.ctx.Fill())
}

// StrokeRect outlines a rectangle. The current path is discarded.
func (s *Surface) StrokeRect(x, y, width, height float64) {
	s.ctx.ClearPath()
	s.applyStroke()
	s.ctx.DrawRectangle(x, y, width, height)
	s.report("stroke rect", s.ctx.Stroke())
}

func (s *Surface) BeginPath() {
	s.ctx.ClearPath()
}

func (s *Surface) MoveTo(x, y float64) {
	s.ctx.MoveTo(x, y)
}

func (s *Surface) LineTo(x, y float64) {
	s.ctx.LineTo(x, y)
}

func (s *Surface) Rect(x, y, width, height float64) {
	s.ctx.DrawRectangle(x, y, width, height)
}

func (s *Surface) Arc(x, y, radius, startAngle, endAngle float64) {
	s.ctx.DrawArc(x, y, radius, startAngle, endAngle)
}

// Fill fills the current path and keeps it.
func (s *Surface) Fill() {
	s.ctx.SetFillBrush(s.brush(s.state.fill))
	s.report("fill", s.ctx.FillPreserve())
}

// Stroke strokes the current path and keeps it.
func (s *Surface) Stroke() {
	s.applyStroke()
	s.report("stroke", s.ctx.StrokePreserve())
}

// Clip intersects the clip region with the current path and keeps it.
func (s *Surface) Clip() {
	s.ctx.ClipPreserve()
}

func (s *Surface) SetFillStyle(paint grapheditor.Paint)   { s.state.fill = paint }
func (s *Surface) SetStrokeStyle(paint grapheditor.Paint) { s.state.stroke = paint }
func (s *Surface) SetLineWidth(width float64)             { s.state.lineWidth = width }
func (s *Surface) SetLineCap(lineCap grapheditor.LineCap) { s.state.lineCap = lineCap }
func (s *Surface) SetMiterLimit(limit float64)            { s.state.miterLimit = limit }
func (s *Surface) SetLineDashOffset(offset float64)       { s.state.dashOffset = offset }
func (s *Surface) SetShadow(shadow grapheditor.Shadow)    { s.state.shadow = shadow }
func (s *Surface) SetFont(font grapheditor.Font)          { s.state.font = font }

func (s *Surface) SetLineJoin(lineJoin grapheditor.LineJoin) {
	s.state.lineJoin = lineJoin
}

func (s *Surface) SetLineDash(segments ...float64) {
	s.state.dash = append([]float64(nil), segments...)
}

// applyFont sets the face for the current font and scale. It returns false
// if no face could be loaded.
func (s *Surface) applyFont() bool {
	face, err := s.fonts.Face(s.state.font, s.state.scale)
	if err != nil {
		grapheditor.Logger().Warn("font unavailable", "font", s.state.font.String(), "error", err)
		return false
	}
	s.ctx.SetFont(face)
	return true
}

// MeasureText returns the advance width of text in content units.
func (s *Surface) MeasureText(text string) float64 {
	if !s.applyFont() {
		return 0
	}
	width, _ := s.ctx.MeasureString(text)
	return width / s.state.scale
}

// FillText draws text with the fill paint, vertically centered on y.
func (s *Surface) FillText(text string, x, y float64, align grapheditor.TextAlign) {
	if !s.applyFont() {
		return
	}
	var ax float64
	switch align {
	case grapheditor.TextAlignCenter:
		ax = 0.5
	case grapheditor.TextAlignRight:
		ax = 1
	}
	// gg draws text in device space.
	dx, dy := s.ctx.TransformPoint(x, y)
	s.ctx.SetFillBrush(s.brush(s.state.fill))
	s.ctx.DrawStringAnchored(text, dx, dy, ax, 0.5)
}
