package grapheditor

import "math"

// GradientDirection selects how a shape gradient is laid over the shape's
// bounding box.
type GradientDirection int

const (
	GradientLeftToRight GradientDirection = iota
	GradientRightToLeft
	GradientTopToBottom
	GradientBottomToTop
	// GradientCenterOut is radial, from half the shorter side to the full
	// shorter side.
	GradientCenterOut
)

// ShapeGradient is a gradient fill relative to the shape's bounding box.
type ShapeGradient struct {
	Direction GradientDirection
	Stops     []ColorStop
}

// Paint returns the absolute paint for the given box.
func (g ShapeGradient) Paint(box BoundingBox) Paint {
	x, y, w, h := box.X, box.Y, box.Width, box.Height
	switch g.Direction {
	case GradientRightToLeft:
		return LinearGradient(x+w, y+h/2, x, y+h/2, g.Stops...)
	case GradientTopToBottom:
		return LinearGradient(x+w/2, y, x+w/2, y+h, g.Stops...)
	case GradientBottomToTop:
		return LinearGradient(x+w/2, y+h, x+w/2, y, g.Stops...)
	case GradientCenterOut:
		cx, cy := box.Center()
		r := math.Min(w, h)
		return RadialGradient(cx, cy, r/2, cx, cy, r, g.Stops...)
	default:
		return LinearGradient(x, y+h/2, x+w, y+h/2, g.Stops...)
	}
}

// BasicShape holds the paint properties shared by the basic shapes.
type BasicShape struct {
	fill           string
	gradient       *ShapeGradient
	stroke         string
	lineWidth      float64
	lineCap        LineCap
	lineJoin       LineJoin
	miterLimit     float64
	lineDash       []float64
	lineDashOffset float64
	shadow         Shadow
	limits         SizeLimits
}

// ShapeOption configures a basic shape on creation.
type ShapeOption func(*BasicShape)

// WithFill sets a solid fill color.
func WithFill(color string) ShapeOption {
	return func(s *BasicShape) {
		s.fill = color
		s.gradient = nil
	}
}

// WithGradient sets a gradient fill.
func WithGradient(direction GradientDirection, stops ...ColorStop) ShapeOption {
	return func(s *BasicShape) {
		s.gradient = &ShapeGradient{Direction: direction, Stops: stops}
	}
}

// WithStroke sets the outline color and width.
func WithStroke(color string, width float64) ShapeOption {
	return func(s *BasicShape) {
		s.stroke = color
		s.lineWidth = width
	}
}

// WithLineStyle sets the cap, join and miter limit of the outline.
func WithLineStyle(lineCap LineCap, lineJoin LineJoin, miterLimit float64) ShapeOption {
	return func(s *BasicShape) {
		s.lineCap = lineCap
		s.lineJoin = lineJoin
		s.miterLimit = miterLimit
	}
}

// WithLineDash sets the dash pattern of the outline.
func WithLineDash(offset float64, segments ...float64) ShapeOption {
	return func(s *BasicShape) {
		s.lineDash = segments
		s.lineDashOffset = offset
	}
}

// WithShadow sets the drop shadow of the fill.
func WithShadow(shadow Shadow) ShapeOption {
	return func(s *BasicShape) {
		s.shadow = shadow
	}
}

// WithSizeLimits sets the clamp applied while the shape is resized.
func WithSizeLimits(limits SizeLimits) ShapeOption {
	return func(s *BasicShape) {
		s.limits = limits
	}
}

func newBasicShape(opts []ShapeOption) BasicShape {
	s := BasicShape{
		fill:       Styles.ShapeFill,
		stroke:     Styles.ShapeStroke,
		lineWidth:  1,
		lineCap:    LineCapButt,
		lineJoin:   LineJoinRound,
		miterLimit: 10,
	}
	for _, opt := range opts {
		if opt != nil {
			opt(&s)
		}
	}
	return s
}

// FillPaint returns the fill for a shape occupying box.
func (s *BasicShape) FillPaint(box BoundingBox) Paint {
	if s.gradient != nil {
		return s.gradient.Paint(box)
	}
	return Color(s.fill)
}

// setup saves the surface state and applies the shape's paint properties.
// It must be paired with teardown.
func (s *BasicShape) setup(surface Surface, box BoundingBox) {
	surface.Save()
	surface.SetFillStyle(s.FillPaint(box))
	surface.SetStrokeStyle(Color(s.stroke))
	surface.SetLineWidth(s.lineWidth)
	surface.SetLineCap(s.lineCap)
	surface.SetLineJoin(s.lineJoin)
	surface.SetMiterLimit(s.miterLimit)
	surface.SetLineDash(s.lineDash...)
	surface.SetLineDashOffset(s.lineDashOffset)
	surface.SetShadow(s.shadow)
}

func (s *BasicShape) teardown(surface Surface) {
	surface.Restore()
}

// Rect is a filled and outlined rectangle. Its node box extends the visible
// rectangle by the control point radius on every side, so the resize handles
// sit on the outline.
type Rect struct {
	*Node
	BasicShape

	visible BoundingBox
}

// NewRect returns a rectangle whose visible area is (x, y, width, height).
func NewRect(parent *Stage, x, y, width, height float64, opts ...ShapeOption) *Rect {
	r := &Rect{
		BasicShape: newBasicShape(opts),
		visible:    BoundingBox{X: x, Y: y, Width: width, Height: height},
	}
	margin := Styles.ControlPointRadius
	r.Node = NewNode(parent, r.visible.Inset(-margin), r)
	r.SetSizeLimits(r.BasicShape.limits)
	return r
}

// Visible returns the painted rectangle.
func (r *Rect) Visible() BoundingBox {
	return r.visible
}

// BoundingBoxChanged keeps the visible rectangle inset in the node box. A node
// box smaller than the margins leaves an empty rectangle.
func (r *Rect) BoundingBoxChanged() {
	v := r.BoundingBox().Inset(Styles.ControlPointRadius)
	v.Width, v.Height = max(v.Width, 0), max(v.Height, 0)
	r.visible = v
}

// Draw paints the rectangle and, when selected, its control box.
func (r *Rect) Draw(surface Surface) {
	v := r.visible
	r.setup(surface, v)
	surface.FillRect(v.X, v.Y, v.Width, v.Height)
	surface.StrokeRect(v.X, v.Y, v.Width, v.Height)
	r.teardown(surface)
	r.Node.Draw(surface)
}

// LabelChanged implements LabelHost.
func (r *Rect) LabelChanged(*Label) {
	r.Invalidate()
}

// LabelHintLocation implements LabelHost. Labels point to the center of the
// rectangle.
func (r *Rect) LabelHintLocation(float64, float64) (float64, float64) {
	return r.visible.Center()
}
