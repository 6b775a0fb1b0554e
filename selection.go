package grapheditor

// SelectionManager keeps the set of selected elements in selection order.
// It does not own the elements.
type SelectionManager struct {
	canvas   *CanvasManager
	selected []Element
}

func newSelectionManager(canvas *CanvasManager) *SelectionManager {
	return &SelectionManager{canvas: canvas}
}

func (m *SelectionManager) invalidate() {
	if m.canvas != nil {
		m.canvas.Invalidate()
	}
}

func (m *SelectionManager) indexOf(el Element) int {
	for index, s := range m.selected {
		if s == el {
			return index
		}
	}
	return -1
}

// Select adds el to the selection. Selecting an element twice has no effect.
func (m *SelectionManager) Select(el Element) {
	if el == nil || m.indexOf(el) >= 0 {
		return
	}
	m.selected = append(m.selected, el)
	Logger().Debug("element selected", "id", el.ID(), "count", len(m.selected))
	m.invalidate()
}

// Unselect removes el from the selection, if present.
func (m *SelectionManager) Unselect(el Element) {
	index := m.indexOf(el)
	if index < 0 {
		return
	}
	m.selected = append(m.selected[:index], m.selected[index+1:]...)
	Logger().Debug("element unselected", "id", el.ID(), "count", len(m.selected))
	m.invalidate()
}

// UnselectAll clears the selection.
func (m *SelectionManager) UnselectAll() {
	m.selected = nil
	m.invalidate()
}

// IsSelected returns whether el is selected.
func (m *SelectionManager) IsSelected(el Element) bool {
	return m.indexOf(el) >= 0
}

// IsFocused returns whether el is the only selected element.
func (m *SelectionManager) IsFocused(el Element) bool {
	return len(m.selected) == 1 && m.selected[0] == el
}

// Selected returns a copy of the selection in selection order.
func (m *SelectionManager) Selected() []Element {
	return append([]Element(nil), m.selected...)
}

// Focused returns the only selected element, or nil.
func (m *SelectionManager) Focused() Element {
	if len(m.selected) != 1 {
		return nil
	}
	return m.selected[0]
}
