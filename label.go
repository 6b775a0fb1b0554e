package grapheditor

import (
	"math"
	"strings"
)

// LabelHost is an element a label can be attached to.
type LabelHost interface {
	Element
	// LabelChanged is called when the text of an attached label changes.
	LabelChanged(label *Label)
	// LabelHintLocation returns the point the dashed ownership hint of a
	// selected label is drawn to, given the label's center.
	LabelHintLocation(x, y float64) (float64, float64)
}

// Label is a movable block of text. It is selectable, movable and actionable
// but has no control box.
type Label struct {
	BaseElement

	owner LabelHost

	box  BoundingBox
	temp BoundingBox
	text string

	color  string
	align  TextAlign
	font   Font
	resize bool
	limits SizeLimits

	moving                 bool
	moveStartX, moveStartY float64

	action func(label *Label, x, y float64)
}

// LabelOption configures a label on creation.
type LabelOption func(*Label)

// WithText sets the initial text. Lines are separated by '\n'.
func WithText(text string) LabelOption {
	return func(l *Label) {
		l.text = text
	}
}

// WithTextColor sets the text color.
func WithTextColor(color string) LabelOption {
	return func(l *Label) {
		l.color = color
	}
}

// WithTextAlign sets the horizontal alignment of every line.
func WithTextAlign(align TextAlign) LabelOption {
	return func(l *Label) {
		l.align = align
	}
}

// WithFont sets the font. Zero fields keep their defaults.
func WithFont(font Font) LabelOption {
	return func(l *Label) {
		if font.Style != "" {
			l.font.Style = font.Style
		}
		if font.Weight != "" {
			l.font.Weight = font.Weight
		}
		if font.Family != "" {
			l.font.Family = font.Family
		}
		if font.Size > 0 {
			l.font.Size = font.Size
		}
		if font.LineHeight > 0 {
			l.font.LineHeight = font.LineHeight
		}
		l.font.SmallCaps = font.SmallCaps
	}
}

// WithAutoResize makes the label fit its text on every draw, clamped to
// limits.
func WithAutoResize(limits SizeLimits) LabelOption {
	return func(l *Label) {
		l.resize = true
		l.limits = limits
	}
}

// NewLabel returns a free-standing label occupying box.
func NewLabel(parent *Stage, box BoundingBox, opts ...LabelOption) *Label {
	l := &Label{
		BaseElement: NewBaseElement(parent),
		box:         box,
		temp:        box,
		color:       Styles.LabelText,
		align:       TextAlignCenter,
		font: Font{
			Style:      FontStyleNormal,
			Weight:     FontWeightNormal,
			Size:       10,
			LineHeight: 1.1,
			Family:     FontFamilyCourier,
		},
	}
	for _, opt := range opts {
		if opt != nil {
			opt(l)
		}
	}
	return l
}

// NewAttachedLabel returns a label owned by host. It lives on the host's
// stage and points to the host while selected.
func NewAttachedLabel(host LabelHost, box BoundingBox, opts ...LabelOption) *Label {
	l := NewLabel(host.Parent(), box, opts...)
	l.owner = host
	return l
}

// Owner returns the host of an attached label, or nil.
func (l *Label) Owner() LabelHost {
	return l.owner
}

// Text returns the label text.
func (l *Label) Text() string {
	return l.text
}

// SetText sets the label text and notifies the owner.
func (l *Label) SetText(text string) *Label {
	l.text = text
	if l.owner != nil {
		l.owner.LabelChanged(l)
	}
	l.Invalidate()
	return l
}

// SetActionFunc sets a handler called when the label is double clicked.
func (l *Label) SetActionFunc(handler func(label *Label, x, y float64)) *Label {
	l.action = handler
	return l
}

// DoAction calls the action handler, if any.
func (l *Label) DoAction(x, y float64) {
	if l.action != nil {
		l.action(l, x, y)
	}
}

// BoundingBox returns the temporary box while moving and the committed box
// otherwise.
func (l *Label) BoundingBox() BoundingBox {
	if l.moving {
		return l.temp
	}
	return l.box
}

// ElementUnderPosition returns l if the point lies in its box.
func (l *Label) ElementUnderPosition(x, y float64) Element {
	if l.BoundingBox().Contains(x, y) {
		return l
	}
	return nil
}

// IsSelected returns whether the label is part of the selection.
func (l *Label) IsSelected() bool {
	return l.isSelected(l)
}

// IsFocused returns whether the label is the only selected element.
func (l *Label) IsFocused() bool {
	return l.isFocused(l)
}

// Cursor returns CursorMove while moving and CursorText otherwise.
func (l *Label) Cursor() Cursor {
	if l.moving {
		return CursorMove
	}
	return CursorText
}

func (l *Label) lines() []string {
	return strings.Split(l.text, "\n")
}

// fit resizes the committed box to the measured text.
func (l *Label) fit(surface Surface) {
	if !l.resize {
		return
	}
	lineHeight := l.font.Size * l.font.LineHeight
	var width, height float64
	for _, line := range l.lines() {
		width = math.Max(width, surface.MeasureText(line))
		height += lineHeight
	}
	l.box.Width, l.box.Height = l.limits.Clamp(width, height)
	if !l.moving {
		l.temp = l.box
	}
}

// Draw paints the text clipped to the label box. A selected label is
// outlined, and an attached one also draws a dashed line to its owner.
func (l *Label) Draw(surface Surface) {
	surface.Save()
	surface.SetFont(l.font)
	l.fit(surface)
	box := l.BoundingBox()

	surface.BeginPath()
	surface.Rect(box.X, box.Y, box.Width, box.Height)
	surface.Clip()

	surface.SetFillStyle(Color(l.color))
	var x float64
	switch l.align {
	case TextAlignLeft:
		x = box.X
	case TextAlignRight:
		x = box.X + box.Width
	default:
		x = box.X + box.Width/2
	}
	lineHeight := l.font.Size * l.font.LineHeight
	y := box.Y
	for _, line := range l.lines() {
		surface.FillText(line, x, y+lineHeight/2, l.align)
		y += lineHeight
	}

	if !l.IsSelected() {
		surface.Restore()
		return
	}
	surface.SetStrokeStyle(Color(Styles.SelectedColor))
	surface.StrokeRect(box.X, box.Y, box.Width, box.Height)
	surface.Restore()

	if l.owner == nil {
		return
	}
	cx, cy := box.Center()
	hx, hy := l.owner.LabelHintLocation(cx, cy)
	surface.Save()
	surface.SetStrokeStyle(Color(Styles.SelectedColor))
	surface.SetLineWidth(1)
	surface.SetLineDash(10, 10)
	surface.BeginPath()
	surface.MoveTo(hx, hy)
	surface.LineTo(cx, cy)
	surface.Stroke()
	surface.Restore()
}

// StartMove starts moving the label from the pointer position (x, y).
func (l *Label) StartMove(x, y float64) {
	l.temp = l.BoundingBox()
	l.moving = true
	l.moveStartX, l.moveStartY = x, y
	l.Invalidate()
}

func (l *Label) translate(x, y float64) {
	l.temp.X, l.temp.Y = l.ValidateMoveTo(l.box.X+x-l.moveStartX, l.box.Y+y-l.moveStartY)
}

// MoveTo moves the label by the delta between (x, y) and the start point.
func (l *Label) MoveTo(x, y float64) {
	l.translate(x, y)
	l.Invalidate()
}

// FinishMove commits the move at (x, y).
func (l *Label) FinishMove(x, y float64) {
	l.translate(x, y)
	l.box = l.temp
	l.moving = false
	l.Invalidate()
}

// CancelMove reverts to the committed box.
func (l *Label) CancelMove() {
	l.moving = false
	l.temp = l.box
	l.Invalidate()
}

// ValidateMoveTo returns the position unchanged.
func (l *Label) ValidateMoveTo(x, y float64) (float64, float64) {
	return x, y
}
