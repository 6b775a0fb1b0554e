package grapheditor

import "math"

// ControlBoxHost owns a control box. It validates every tentative size and is
// notified once per box-level resize operation, after all handles have been
// repositioned.
type ControlBoxHost interface {
	Parent() *Stage

	// ControlBoxValidateSizing returns the size to use instead of the
	// tentative one, e.g. clamped to minimum dimensions. It must not have
	// side effects.
	ControlBoxValidateSizing(width, height float64) (float64, float64)

	ControlBoxStartedResize(box *ControlBox)
	ControlBoxResizedTo(box *ControlBox)
	ControlBoxFinishedResize(box *ControlBox)
	ControlBoxCanceledResize(box *ControlBox)
}

// boxOp is a set of box-level operations currently being processed.
type boxOp uint8

const (
	opStartMove boxOp = 1 << iota
	opMoveTo
	opFinishMove
	opCancelMove
)

// pointAction is one of the movement methods of a control point.
type pointAction func(p *ControlPoint, x, y float64)

// Handle indices into ControlBox.points.
const (
	handleTopLeft = iota
	handleTop
	handleTopRight
	handleLeft
	handleRight
	handleBottomLeft
	handleBottom
	handleBottomRight
	handleCount
)

var handleRoles = [handleCount]ControlPointRole{
	RoleTopLeft, RoleTop, RoleTopRight,
	RoleLeft, RoleRight,
	RoleBottomLeft, RoleBottom, RoleBottomRight,
}

// The three handles lying on each edge of the box.
var (
	leftEdge   = [3]int{handleTopLeft, handleLeft, handleBottomLeft}
	topEdge    = [3]int{handleTopLeft, handleTop, handleTopRight}
	rightEdge  = [3]int{handleTopRight, handleRight, handleBottomRight}
	bottomEdge = [3]int{handleBottomLeft, handleBottom, handleBottomRight}
)

// ControlBox is the resize frame around a host's bounding box. Dragging any
// of its eight handles resizes the frame around the opposite handle, and all
// eight handles are re-derived from the resulting rectangle after every step.
type ControlBox struct {
	BaseElement

	host   ControlBoxHost
	points [handleCount]*ControlPoint

	// Operations in flight. Repositioning a handle re-enters the box through
	// the ControlPointHost callbacks; those calls are ignored while the same
	// operation is already being processed.
	inFlight boxOp
}

// NewControlBox returns a control box spanning box. A radius of zero or less
// selects Styles.ControlPointRadius. It panics with ErrNoParent if the host
// has no parent stage.
func NewControlBox(host ControlBoxHost, box BoundingBox, radius float64) *ControlBox {
	b := &ControlBox{
		BaseElement: NewBaseElement(host.Parent()),
		host:        host,
	}
	if radius <= 0 {
		radius = Styles.ControlPointRadius
	}
	positions := handlePositions(box)
	for i, role := range handleRoles {
		b.points[i] = NewControlPoint(b, positions[i][0], positions[i][1], WithRadius(radius), WithRole(role))
	}
	return b
}

// handlePositions returns the positions of all handles of box, in handle
// index order.
func handlePositions(box BoundingBox) [handleCount][2]float64 {
	topX, topY := box.X, box.Y
	bottomX, bottomY := box.X+box.Width, box.Y+box.Height
	centerX, centerY := box.X+box.Width/2, box.Y+box.Height/2
	return [handleCount][2]float64{
		{topX, topY}, {centerX, topY}, {bottomX, topY},
		{topX, centerY}, {bottomX, centerY},
		{topX, bottomY}, {centerX, bottomY}, {bottomX, bottomY},
	}
}

// Point returns the handle with the given role, or nil for RoleMove.
func (b *ControlBox) Point(role ControlPointRole) *ControlPoint {
	for i, r := range handleRoles {
		if r == role {
			return b.points[i]
		}
	}
	return nil
}

// Points returns the eight handles.
func (b *ControlBox) Points() []*ControlPoint {
	return b.points[:]
}

func (b *ControlBox) enter(op boxOp) bool {
	if b.inFlight&op != 0 {
		return false
	}
	b.inFlight |= op
	return true
}

func (b *ControlBox) leave(op boxOp) {
	b.inFlight &^= op
}

// ControlPointStartedMove implements ControlPointHost.
func (b *ControlBox) ControlPointStartedMove(point *ControlPoint) {
	if !b.enter(opStartMove) {
		return
	}
	defer b.leave(opStartMove)
	b.resizeFrom(point, (*ControlPoint).StartMove)
	b.host.ControlBoxStartedResize(b)
}

// ControlPointMovedTo implements ControlPointHost.
func (b *ControlBox) ControlPointMovedTo(point *ControlPoint) {
	if !b.enter(opMoveTo) {
		return
	}
	defer b.leave(opMoveTo)
	b.resizeFrom(point, (*ControlPoint).MoveTo)
	b.host.ControlBoxResizedTo(b)
}

// ControlPointFinishedMove implements ControlPointHost.
func (b *ControlBox) ControlPointFinishedMove(point *ControlPoint) {
	if !b.enter(opFinishMove) {
		return
	}
	defer b.leave(opFinishMove)
	b.resizeFrom(point, (*ControlPoint).FinishMove)
	b.host.ControlBoxFinishedResize(b)
}

// ControlPointCanceledMove implements ControlPointHost.
func (b *ControlBox) ControlPointCanceledMove(point *ControlPoint) {
	if !b.enter(opCancelMove) {
		return
	}
	defer b.leave(opCancelMove)
	for _, p := range b.points {
		p.CancelMove()
	}
	b.host.ControlBoxCanceledResize(b)
}

// StartMove starts translating the whole box to box without resizing
// notifications.
func (b *ControlBox) StartMove(box BoundingBox) {
	b.placeAll(opStartMove, box, (*ControlPoint).StartMove)
}

// MoveTo continues a translation started with StartMove.
func (b *ControlBox) MoveTo(box BoundingBox) {
	b.placeAll(opMoveTo, box, (*ControlPoint).MoveTo)
}

// FinishMove commits the translation at box.
func (b *ControlBox) FinishMove(box BoundingBox) {
	b.placeAll(opFinishMove, box, (*ControlPoint).FinishMove)
}

// CancelMove reverts all handles to their committed positions.
func (b *ControlBox) CancelMove() {
	entered := b.enter(opCancelMove)
	for _, p := range b.points {
		p.CancelMove()
	}
	if entered {
		b.leave(opCancelMove)
	}
}

func (b *ControlBox) placeAll(op boxOp, box BoundingBox, action pointAction) {
	entered := b.enter(op)
	positions := handlePositions(box)
	for i, p := range b.points {
		action(p, positions[i][0], positions[i][1])
	}
	if entered {
		b.leave(op)
	}
}

// extreme folds the given coordinate over the handles of an edge, skipping
// the dragged handle.
func (b *ControlBox) extreme(edge [3]int, dragged *ControlPoint, coord func(*ControlPoint) float64, pick func(x, y float64) float64) float64 {
	value, found := 0.0, false
	for _, i := range edge {
		p := b.points[i]
		if p == dragged {
			continue
		}
		if !found {
			value, found = coord(p), true
			continue
		}
		value = pick(value, coord(p))
	}
	return value
}

// centered returns the span of the given size centered on [lo, hi]. The span
// is returned unchanged if it already has that size.
func centered(lo, hi, size float64) (float64, float64) {
	if hi-lo == size {
		return lo, hi
	}
	return (lo + hi - size) / 2, (lo + hi + size) / 2
}

// resizeFrom recomputes the frame after the dragged handle moved and applies
// action to every handle.
func (b *ControlBox) resizeFrom(dragged *ControlPoint, action pointAction) {
	topX := b.extreme(leftEdge, dragged, (*ControlPoint).X, math.Min)
	topY := b.extreme(topEdge, dragged, (*ControlPoint).Y, math.Min)
	bottomX := b.extreme(rightEdge, dragged, (*ControlPoint).X, math.Max)
	bottomY := b.extreme(bottomEdge, dragged, (*ControlPoint).Y, math.Max)

	role := dragged.Role()
	x, y := dragged.X(), dragged.Y()

	// The dragged edges may not cross the opposite edges.
	switch role {
	case RoleTopLeft:
		topX = math.Min(x, bottomX)
		topY = math.Min(y, bottomY)
	case RoleTop:
		topY = math.Min(y, bottomY)
	case RoleTopRight:
		bottomX = math.Max(x, topX)
		topY = math.Min(y, bottomY)
	case RoleLeft:
		topX = math.Min(x, bottomX)
	case RoleRight:
		bottomX = math.Max(x, topX)
	case RoleBottomLeft:
		topX = math.Min(x, bottomX)
		bottomY = math.Max(y, topY)
	case RoleBottom:
		bottomY = math.Max(y, topY)
	case RoleBottomRight:
		bottomX = math.Max(x, topX)
		bottomY = math.Max(y, topY)
	}

	width, height := b.host.ControlBoxValidateSizing(bottomX-topX, bottomY-topY)

	// Anchor at the handle opposite to the dragged one.
	switch role {
	case RoleTopLeft:
		topX = bottomX - width
		topY = bottomY - height
	case RoleTop:
		topX, bottomX = centered(topX, bottomX, width)
		topY = bottomY - height
	case RoleTopRight:
		bottomX = topX + width
		topY = bottomY - height
	case RoleLeft:
		topX = bottomX - width
		topY, bottomY = centered(topY, bottomY, height)
	case RoleRight:
		bottomX = topX + width
		topY, bottomY = centered(topY, bottomY, height)
	case RoleBottomLeft:
		topX = bottomX - width
		bottomY = topY + height
	case RoleBottom:
		topX, bottomX = centered(topX, bottomX, width)
		bottomY = topY + height
	case RoleBottomRight:
		bottomX = topX + width
		bottomY = topY + height
	}

	positions := handlePositions(boxFromExtremes(topX, topY, bottomX, bottomY))
	for i, p := range b.points {
		action(p, positions[i][0], positions[i][1])
	}

	b.Invalidate()
}

// Draw paints the frame outline and its handles.
func (b *ControlBox) Draw(surface Surface) {
	box := b.BoundingBox()
	surface.Save()
	surface.SetStrokeStyle(Color(Styles.SelectedColor))
	surface.StrokeRect(box.X, box.Y, box.Width, box.Height)
	surface.Restore()
	for _, p := range b.points {
		p.Draw(surface)
	}
}

// BoundingBox returns the rectangle spanned by the top-left and bottom-right
// handles.
func (b *ControlBox) BoundingBox() BoundingBox {
	topLeft, bottomRight := b.points[handleTopLeft], b.points[handleBottomRight]
	return boxFromExtremes(topLeft.X(), topLeft.Y(), bottomRight.X(), bottomRight.Y())
}

// ElementUnderPosition returns the first handle containing the point.
func (b *ControlBox) ElementUnderPosition(x, y float64) Element {
	for _, p := range b.points {
		if el := p.ElementUnderPosition(x, y); el != nil {
			return el
		}
	}
	return nil
}
