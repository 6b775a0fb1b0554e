package grapheditor

import "math"

// ControlPointRole identifies what a control point does when dragged and
// which cursor it shows.
type ControlPointRole int

// Available control point roles. The eight resize roles are laid out row by
// row around the Move role.
const (
	RoleTopLeft ControlPointRole = iota + 1
	RoleTop
	RoleTopRight
	RoleLeft
	RoleMove
	RoleRight
	RoleBottomLeft
	RoleBottom
	RoleBottomRight
)

// ControlPointHost is notified about every movement of its control points.
type ControlPointHost interface {
	Parent() *Stage
	ControlPointStartedMove(point *ControlPoint)
	ControlPointMovedTo(point *ControlPoint)
	ControlPointFinishedMove(point *ControlPoint)
	ControlPointCanceledMove(point *ControlPoint)
}

// ControlPoint is a single draggable handle. It keeps a committed position
// and, while a move is in progress, a separate moving position which is what
// X and Y report until the move is finished or canceled.
type ControlPoint struct {
	BaseElement

	host   ControlPointHost
	role   ControlPointRole
	radius float64

	x, y             float64
	moving           bool
	movingX, movingY float64
}

// ControlPointOption configures a control point on creation.
type ControlPointOption func(*ControlPoint)

// WithRadius sets the radius of the circular hit region.
func WithRadius(radius float64) ControlPointOption {
	return func(p *ControlPoint) {
		p.radius = radius
	}
}

// WithRole sets the role of the control point. The default is RoleMove.
func WithRole(role ControlPointRole) ControlPointOption {
	return func(p *ControlPoint) {
		p.role = role
	}
}

// NewControlPoint returns a control point at (x, y) reporting to host. It
// panics with ErrNoParent if the host has no parent stage.
func NewControlPoint(host ControlPointHost, x, y float64, opts ...ControlPointOption) *ControlPoint {
	p := &ControlPoint{
		BaseElement: NewBaseElement(host.Parent()),
		host:        host,
		role:        RoleMove,
		radius:      Styles.ControlPointRadius,
		x:           x,
		y:           y,
		movingX:     x,
		movingY:     y,
	}
	for _, opt := range opts {
		if opt != nil {
			opt(p)
		}
	}
	return p
}

// X returns the observed horizontal position.
func (p *ControlPoint) X() float64 {
	if p.moving {
		return p.movingX
	}
	return p.x
}

// Y returns the observed vertical position.
func (p *ControlPoint) Y() float64 {
	if p.moving {
		return p.movingY
	}
	return p.y
}

// IsMoving returns whether a move is in progress.
func (p *ControlPoint) IsMoving() bool {
	return p.moving
}

// Role returns the role of the control point.
func (p *ControlPoint) Role() ControlPointRole {
	return p.role
}

// Radius returns the radius of the hit region.
func (p *ControlPoint) Radius() float64 {
	return p.radius
}

// Cursor returns the resize cursor matching the role. It panics with
// ErrUnknownCursorRole for roles outside the enumerated set.
func (p *ControlPoint) Cursor() Cursor {
	switch p.role {
	case RoleTopLeft:
		return CursorNWResize
	case RoleTop:
		return CursorNResize
	case RoleTopRight:
		return CursorNEResize
	case RoleLeft:
		return CursorWResize
	case RoleMove:
		return CursorMove
	case RoleRight:
		return CursorEResize
	case RoleBottomLeft:
		return CursorSWResize
	case RoleBottom:
		return CursorSResize
	case RoleBottomRight:
		return CursorSEResize
	default:
		panic(ErrUnknownCursorRole)
	}
}

// StartMove begins a move at (x, y).
func (p *ControlPoint) StartMove(x, y float64) {
	p.moving = true
	p.movingX, p.movingY = x, y
	p.host.ControlPointStartedMove(p)
	p.Invalidate()
}

// MoveTo updates the moving position.
func (p *ControlPoint) MoveTo(x, y float64) {
	p.movingX, p.movingY = x, y
	p.host.ControlPointMovedTo(p)
	p.Invalidate()
}

// FinishMove ends the move and commits (x, y).
func (p *ControlPoint) FinishMove(x, y float64) {
	p.moving = false
	p.x, p.y = x, y
	p.host.ControlPointFinishedMove(p)
	p.Invalidate()
}

// CancelMove ends the move and reverts to the committed position.
func (p *ControlPoint) CancelMove() {
	p.moving = false
	p.host.ControlPointCanceledMove(p)
	p.Invalidate()
}

// ValidateMoveTo returns the position unchanged.
func (p *ControlPoint) ValidateMoveTo(x, y float64) (float64, float64) {
	return x, y
}

// Draw paints the control point as a filled circle.
func (p *ControlPoint) Draw(surface Surface) {
	surface.Save()
	surface.SetStrokeStyle(Color(Styles.SelectedColor))
	surface.SetFillStyle(Color(Styles.SelectedColor))
	surface.BeginPath()
	surface.Arc(p.X(), p.Y(), p.radius, 0, 2*math.Pi)
	surface.Fill()
	surface.Stroke()
	surface.Restore()
}

// BoundingBox returns the square enclosing the hit circle.
func (p *ControlPoint) BoundingBox() BoundingBox {
	return BoundingBox{
		X:      p.X() - p.radius,
		Y:      p.Y() - p.radius,
		Width:  2 * p.radius,
		Height: 2 * p.radius,
	}
}

// ElementUnderPosition returns p if the point lies within the hit circle.
func (p *ControlPoint) ElementUnderPosition(x, y float64) Element {
	dx, dy := p.X()-x, p.Y()-y
	if dx*dx+dy*dy <= p.radius*p.radius {
		return p
	}
	return nil
}
