package grapheditor

// SelectorAction is implemented by elements that show a cursor while hovered.
type SelectorAction interface {
	Cursor() Cursor
}

// Selectable elements can be added to the selection by the selector.
type Selectable interface {
	Element
	SelectorAction
	IsSelected() bool
	IsFocused() bool
}

// Movable elements can be dragged by the selector. A move runs StartMove,
// any number of MoveTo and then either FinishMove or CancelMove.
type Movable interface {
	Element
	SelectorAction
	StartMove(x, y float64)
	MoveTo(x, y float64)
	FinishMove(x, y float64)
	CancelMove()
	ValidateMoveTo(x, y float64) (float64, float64)
}

// Actionable elements react to double clicks.
type Actionable interface {
	Element
	SelectorAction
	DoAction(x, y float64)
}

// Selector is the tool selecting, moving and resizing elements.
//
// A left press on an element makes it pending. The first movement while
// pending starts dragging it (and, for selectable elements, every other
// selected movable element). Releasing a pending element without movement
// selects it.
type Selector struct {
	BaseTool

	editor *Editor

	pending            Element
	pendingX, pendingY float64
	moving             []Movable
}

// NewSelector returns a selector operating on editor.
func NewSelector(editor *Editor) *Selector {
	return &Selector{
		BaseTool: NewBaseTool("Select"),
		editor:   editor,
	}
}

// Pending returns the element pressed but not yet released or moved.
func (s *Selector) Pending() Element {
	return s.pending
}

// Moving returns the elements currently being dragged.
func (s *Selector) Moving() []Movable {
	return append([]Movable(nil), s.moving...)
}

func (s *Selector) elementAt(x, y float64) Element {
	return s.editor.Canvas().RootStage().ElementUnderPosition(x, y)
}

func (s *Selector) OnLeftDown(x, y float64, keys Keys) {
	el := s.elementAt(x, y)
	if el == nil {
		s.editor.Selection().UnselectAll()
		return
	}
	s.pending = el
	s.pendingX, s.pendingY = x, y
}

func (s *Selector) OnLeftUp(x, y float64, keys Keys) {
	if s.pending != nil {
		if target, ok := s.pending.(Selectable); ok {
			selection := s.editor.Selection()
			if !keys.Ctrl {
				selection.UnselectAll()
			}
			selection.Select(target)
			s.editor.setCursor(target.Cursor())
		}
		s.pending = nil
		return
	}

	for _, m := range s.moving {
		m.FinishMove(x, y)
	}
	s.moving = nil
}

func (s *Selector) OnMouseMove(x, y float64, keys Keys) {
	if action, ok := s.elementAt(x, y).(SelectorAction); ok {
		s.editor.setCursor(action.Cursor())
	} else {
		s.editor.setCursor(CursorDefault)
	}

	if s.pending == nil {
		for _, m := range s.moving {
			m.MoveTo(x, y)
		}
		return
	}

	target, movable := s.pending.(Movable)
	selectable, isSelectable := s.pending.(Selectable)
	switch {
	case movable && isSelectable:
		selection := s.editor.Selection()
		if !selectable.IsSelected() {
			selection.UnselectAll()
		}
		selection.Select(selectable)
		s.editor.setCursor(selectable.Cursor())

		s.moving = nil
		for _, el := range selection.Selected() {
			if m, ok := el.(Movable); ok {
				s.moving = append(s.moving, m)
			}
		}
	case movable:
		s.moving = []Movable{target}
	}
	for _, m := range s.moving {
		m.StartMove(s.pendingX, s.pendingY)
		m.MoveTo(x, y)
	}
	if len(s.moving) > 0 {
		Logger().Debug("drag started", "count", len(s.moving))
	}
	s.pending = nil
}

func (s *Selector) OnMouseLeave(x, y float64, keys Keys) {
	s.cancel()
}

func (s *Selector) OnDoubleClick(x, y float64, keys Keys) {
	if target, ok := s.elementAt(x, y).(Actionable); ok {
		target.DoAction(x, y)
	}
}

// OnToolDeactivated abandons the pending element and cancels every drag.
func (s *Selector) OnToolDeactivated() {
	s.pending = nil
	s.cancel()
}

func (s *Selector) cancel() {
	if len(s.moving) > 0 {
		Logger().Debug("drag canceled", "count", len(s.moving))
	}
	for _, m := range s.moving {
		m.CancelMove()
	}
	s.moving = nil
}
