package grapheditor

import "github.com/google/uuid"

// StageOwner is what a stage reports invalidations to: either the canvas of
// an editor (root stage) or another element (nested stage).
type StageOwner struct {
	canvas  *CanvasManager
	element Element
}

// RootOwner returns the owner of the root stage of canvas.
func RootOwner(canvas *CanvasManager) StageOwner {
	return StageOwner{canvas: canvas}
}

// NestedOwner returns the owner of a stage embedded in element.
func NestedOwner(element Element) StageOwner {
	return StageOwner{element: element}
}

// IsRoot returns true for the owner of a root stage.
func (o StageOwner) IsRoot() bool {
	return o.element == nil
}

// Stage is an ordered container of elements. Elements are painted in the
// order they were added and hit-tested in reverse, so the last added element
// is on top.
type Stage struct {
	BaseElement

	owner  StageOwner
	editor *Editor

	width, height float64
	elements      []Element
}

// NewStage returns an empty stage. A nested stage lives on the stage of its
// owner element; NewStage panics with ErrNoParent if that element has no
// parent.
func NewStage(owner StageOwner, width, height float64) *Stage {
	s := &Stage{
		owner:  owner,
		width:  width,
		height: height,
	}
	if owner.IsRoot() {
		s.BaseElement = BaseElement{id: uuid.NewString()}
		if owner.canvas != nil {
			s.editor = owner.canvas.editor
		}
	} else {
		parent := owner.element.Parent()
		s.BaseElement = NewBaseElement(parent)
		s.editor = parent.Editor()
	}
	return s
}

// Owner returns the owner of the stage.
func (s *Stage) Owner() StageOwner {
	return s.owner
}

// Editor returns the editor the stage belongs to.
func (s *Stage) Editor() *Editor {
	return s.editor
}

// Size returns the width and height of the stage.
func (s *Stage) Size() (float64, float64) {
	return s.width, s.height
}

// Resize changes the size of the stage.
func (s *Stage) Resize(width, height float64) {
	s.width, s.height = width, height
	s.Invalidate()
}

// AddElement appends el on top of all other elements.
func (s *Stage) AddElement(el Element) {
	s.elements = append(s.elements, el)
	Logger().Debug("element added", "stage", s.id, "id", el.ID(), "count", len(s.elements))
	s.Invalidate()
}

// Elements returns a copy of the children in paint order.
func (s *Stage) Elements() []Element {
	return append([]Element(nil), s.elements...)
}

// ElementByID returns the direct child with the given ID, or nil.
func (s *Stage) ElementByID(id string) Element {
	for _, el := range s.elements {
		if el.ID() == id {
			return el
		}
	}
	return nil
}

// BoundingBox returns the stage area.
func (s *Stage) BoundingBox() BoundingBox {
	return BoundingBox{Width: s.width, Height: s.height}
}

// Draw fills the background and paints all children back to front.
func (s *Stage) Draw(surface Surface) {
	surface.Save()
	surface.SetFillStyle(Color(Styles.StageBackground))
	surface.SetStrokeStyle(Color(Styles.StageBorder))
	surface.SetLineWidth(1)
	surface.FillRect(0, 0, s.width, s.height)
	surface.StrokeRect(0, 0, s.width, s.height)
	surface.Restore()

	for _, el := range s.elements {
		el.Draw(surface)
	}
}

// ElementUnderPosition returns the deepest hit of the topmost child
// containing the point.
func (s *Stage) ElementUnderPosition(x, y float64) Element {
	for index := len(s.elements) - 1; index >= 0; index-- {
		if el := s.elements[index].ElementUnderPosition(x, y); el != nil {
			return el
		}
	}
	return nil
}

// Invalidate notifies the owner of the stage.
func (s *Stage) Invalidate() {
	if s.owner.IsRoot() {
		if s.owner.canvas != nil {
			s.owner.canvas.Invalidate()
		}
		return
	}
	s.owner.element.Invalidate()
}
