package grapheditor

import "math"

// SizeLimits clamps the size of a node while it is resized. A zero maximum is
// unbounded, so the zero value lets every size through.
type SizeLimits struct {
	MinWidth, MinHeight float64
	MaxWidth, MaxHeight float64
}

// Clamp returns the size limited to the configured range.
func (l SizeLimits) Clamp(width, height float64) (float64, float64) {
	width = math.Max(width, l.MinWidth)
	height = math.Max(height, l.MinHeight)
	if l.MaxWidth > 0 {
		width = math.Min(width, l.MaxWidth)
	}
	if l.MaxHeight > 0 {
		height = math.Min(height, l.MaxHeight)
	}
	return width, height
}

// NodeHooks are the methods a concrete shape may override. Node provides
// defaults for all of them, so a shape embedding *Node only declares the ones
// it changes.
type NodeHooks interface {
	// ValidateSizing returns the size to use for a tentative resize.
	ValidateSizing(width, height float64) (float64, float64)
	// ValidateMoveTo returns the position to use for a tentative move.
	ValidateMoveTo(x, y float64) (float64, float64)
	// BoundingBoxChanged is called after every change of the observed box.
	BoundingBoxChanged()
}

// NodeShape is the outer element a node is embedded in.
type NodeShape interface {
	Element
	NodeHooks
}

// Node is the base of resizable elements. It owns a control box and keeps a
// committed bounding box plus a temporary one that is authoritative while a
// resize or move is in progress.
//
// Concrete shapes embed *Node and pass themselves as the shape on creation:
//
//	r := &Rect{}
//	r.Node = NewNode(parent, box, r)
type Node struct {
	BaseElement

	shape      NodeShape
	controlBox *ControlBox
	limits     SizeLimits

	box      BoundingBox
	temp     BoundingBox
	resizing bool
	moving   bool

	moveStartX, moveStartY float64
}

// NewNode returns a node with the given committed box. If shape is nil the
// node acts as its own shape. It panics with ErrNoParent if parent is nil.
func NewNode(parent *Stage, box BoundingBox, shape NodeShape) *Node {
	n := &Node{
		BaseElement: NewBaseElement(parent),
		box:         box,
		temp:        box,
	}
	if shape == nil {
		shape = n
	}
	n.shape = shape
	n.controlBox = NewControlBox(n, box, 0)
	return n
}

// ControlBox returns the resize frame of the node.
func (n *Node) ControlBox() *ControlBox {
	return n.controlBox
}

// SetSizeLimits sets the clamp applied by the default ValidateSizing.
func (n *Node) SetSizeLimits(limits SizeLimits) *Node {
	n.limits = limits
	return n
}

// SizeLimits returns the clamp applied by the default ValidateSizing.
func (n *Node) SizeLimits() SizeLimits {
	return n.limits
}

// IsResizing returns whether a resize through the control box is in progress.
func (n *Node) IsResizing() bool {
	return n.resizing
}

// IsMoving returns whether a move is in progress.
func (n *Node) IsMoving() bool {
	return n.moving
}

// BoundingBox returns the temporary box during a drag and the committed box
// otherwise.
func (n *Node) BoundingBox() BoundingBox {
	if n.resizing || n.moving {
		return n.temp
	}
	return n.box
}

// ElementUnderPosition probes the control box first when selected, then the
// node's own box.
func (n *Node) ElementUnderPosition(x, y float64) Element {
	if n.IsSelected() {
		if el := n.controlBox.ElementUnderPosition(x, y); el != nil {
			return el
		}
	}
	if n.BoundingBox().Contains(x, y) {
		return n.shape
	}
	return nil
}

// Draw paints the control box if the node is selected. Shapes call it after
// painting themselves.
func (n *Node) Draw(surface Surface) {
	if n.IsSelected() {
		n.controlBox.Draw(surface)
	}
}

// IsSelected returns whether the shape is part of the selection.
func (n *Node) IsSelected() bool {
	return n.isSelected(n.shape)
}

// IsFocused returns whether the shape is the only selected element.
func (n *Node) IsFocused() bool {
	return n.isFocused(n.shape)
}

// Cursor returns CursorMove while selected or moving.
func (n *Node) Cursor() Cursor {
	if n.IsSelected() || n.moving {
		return CursorMove
	}
	return CursorDefault
}

// ValidateSizing clamps the size to the configured SizeLimits.
func (n *Node) ValidateSizing(width, height float64) (float64, float64) {
	return n.limits.Clamp(width, height)
}

// ValidateMoveTo returns the position unchanged.
func (n *Node) ValidateMoveTo(x, y float64) (float64, float64) {
	return x, y
}

// BoundingBoxChanged does nothing.
func (n *Node) BoundingBoxChanged() {}

func (n *Node) changed() {
	n.shape.BoundingBoxChanged()
	n.Invalidate()
}

// ControlBoxValidateSizing implements ControlBoxHost.
func (n *Node) ControlBoxValidateSizing(width, height float64) (float64, float64) {
	return n.shape.ValidateSizing(width, height)
}

// ControlBoxStartedResize implements ControlBoxHost.
func (n *Node) ControlBoxStartedResize(box *ControlBox) {
	n.resizing = true
	n.temp = box.BoundingBox()
	Logger().Debug("node resize started", "id", n.ID())
	n.changed()
}

// ControlBoxResizedTo implements ControlBoxHost.
func (n *Node) ControlBoxResizedTo(box *ControlBox) {
	n.temp = box.BoundingBox()
	n.changed()
}

// ControlBoxFinishedResize implements ControlBoxHost.
func (n *Node) ControlBoxFinishedResize(box *ControlBox) {
	n.resizing = false
	n.box = box.BoundingBox()
	n.temp = n.box
	Logger().Debug("node resize finished", "id", n.ID(), "box", n.box)
	n.changed()
}

// ControlBoxCanceledResize implements ControlBoxHost.
func (n *Node) ControlBoxCanceledResize(*ControlBox) {
	n.resizing = false
	Logger().Debug("node resize canceled", "id", n.ID())
	n.changed()
}

// translated returns the committed box moved by the delta from the move start
// point, validated by the shape.
func (n *Node) translated(x, y float64) BoundingBox {
	box := n.temp
	box.X, box.Y = n.shape.ValidateMoveTo(n.box.X+x-n.moveStartX, n.box.Y+y-n.moveStartY)
	return box
}

// StartMove starts moving the node from the pointer position (x, y).
func (n *Node) StartMove(x, y float64) {
	n.temp = n.BoundingBox()
	n.moving = true
	n.moveStartX, n.moveStartY = x, y
	n.controlBox.StartMove(n.temp)
	Logger().Debug("node move started", "id", n.ID())
	n.changed()
}

// MoveTo moves the node by the delta between (x, y) and the start point.
func (n *Node) MoveTo(x, y float64) {
	n.temp = n.translated(x, y)
	n.controlBox.MoveTo(n.temp)
	n.changed()
}

// FinishMove commits the move at (x, y).
func (n *Node) FinishMove(x, y float64) {
	n.temp = n.translated(x, y)
	n.moving = false
	n.box = n.temp
	n.controlBox.FinishMove(n.box)
	Logger().Debug("node move finished", "id", n.ID(), "box", n.box)
	n.changed()
}

// CancelMove reverts to the committed box.
func (n *Node) CancelMove() {
	n.moving = false
	n.temp = n.box
	n.controlBox.CancelMove()
	Logger().Debug("node move canceled", "id", n.ID())
	n.changed()
}
