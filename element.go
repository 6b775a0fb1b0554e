package grapheditor

import "github.com/google/uuid"

// Element is the top-most interface for everything that can be placed on a
// stage.
type Element interface {
	// Draw paints the element onto the surface. Implementers that change paint
	// properties must bracket their drawing with Save and Restore.
	Draw(surface Surface)

	// BoundingBox returns the current bounds, including any drag in progress.
	BoundingBox() BoundingBox

	// ElementUnderPosition returns the most specific element whose bounds
	// contain the point, or nil.
	ElementUnderPosition(x, y float64) Element

	// Invalidate requests a repaint on the next frame. It is safe to call
	// redundantly and never panics.
	Invalidate()

	// Parent returns the stage owning this element. It is nil only for the
	// root stage.
	Parent() *Stage

	// ID returns an opaque identifier, unique per element.
	ID() string
}

// BaseElement carries the parent link and identifier shared by all elements.
// Embed it in custom elements and initialize it with NewBaseElement.
type BaseElement struct {
	parent *Stage
	id     string
}

// NewBaseElement returns the base of a non-root element. It panics with
// ErrNoParent if parent is nil.
func NewBaseElement(parent *Stage) BaseElement {
	if parent == nil {
		panic(ErrNoParent)
	}
	return BaseElement{parent: parent, id: uuid.NewString()}
}

// Parent returns the owning stage.
func (b *BaseElement) Parent() *Stage {
	return b.parent
}

// ID returns the element identifier.
func (b *BaseElement) ID() string {
	return b.id
}

// Invalidate forwards the request to the parent stage.
func (b *BaseElement) Invalidate() {
	if b.parent != nil {
		b.parent.Invalidate()
	}
}

// Editor returns the editor the element belongs to.
func (b *BaseElement) Editor() *Editor {
	if b.parent == nil {
		return nil
	}
	return b.parent.Editor()
}

// isSelected reports whether el is part of the selection of the editor owning
// b. Elements outside an editor are never selected.
func (b *BaseElement) isSelected(el Element) bool {
	if e := b.Editor(); e != nil {
		return e.Selection().IsSelected(el)
	}
	return false
}

func (b *BaseElement) isFocused(el Element) bool {
	if e := b.Editor(); e != nil {
		return e.Selection().IsFocused(el)
	}
	return false
}
