package termhost

import (
	"time"

	"github.com/ayn2op/grapheditor"
	"github.com/gdamore/tcell/v2"
)

// keysOf returns the modifier state of a terminal event.
func keysOf(mod tcell.ModMask) grapheditor.Keys {
	return grapheditor.Keys{
		Ctrl:  mod&(tcell.ModCtrl|tcell.ModMeta) != 0,
		Alt:   mod&tcell.ModAlt != 0,
		Shift: mod&tcell.ModShift != 0,
	}
}

// contains reports whether the cell (x, y) belongs to the canvas area.
func (a *Application) contains(x, y int) bool {
	return x >= 0 && y >= 0 && x < a.canvasWidth && y < a.canvasHeight
}

// clamp moves the cell (x, y) to the nearest cell of the canvas area.
func (a *Application) clamp(x, y int) (int, int) {
	return min(max(x, 0), max(a.canvasWidth-1, 0)), min(max(y, 0), max(a.canvasHeight-1, 0))
}

// contentPosition maps the center of a cell to content coordinates. A cell
// covers one pixel column and two pixel rows of the surface.
func (a *Application) contentPosition(x, y int) (float64, float64) {
	return a.editor.ContentPosition(float64(x)+0.5, float64(2*y)+1)
}

// handleMouse derives pointer events from a terminal mouse event and
// forwards them to the editor. Leaving the canvas area counts as the
// pointer leaving the canvas. Outside the canvas only button releases are
// forwarded, at the nearest canvas position.
func (a *Application) handleMouse(event *tcell.EventMouse) {
	x, y := event.Position()
	buttons := event.Buttons()
	keys := keysOf(event.Modifiers())
	cx, cy := a.contentPosition(a.clamp(x, y))
	inside := a.contains(x, y)
	editor := a.editor

	clickMoved := x != a.mouseDownX || y != a.mouseDownY
	buttonChanges := buttons ^ a.lastMouseButtons
	moved := x != a.lastMouseX || y != a.lastMouseY
	a.lastMouseX, a.lastMouseY = x, y
	a.lastMouseButtons = buttons

	switch {
	case inside && !a.inCanvas:
		a.inCanvas = true
		editor.OnMouseEnter(cx, cy, keys)
	case !inside && a.inCanvas:
		a.inCanvas = false
		editor.OnMouseLeave(cx, cy, keys)
	}
	if inside && moved {
		editor.OnMouseMove(cx, cy, keys)
	}

	for _, b := range []struct {
		button        tcell.ButtonMask
		down, up      func(x, y float64, keys grapheditor.Keys)
		click, dclick func(x, y float64, keys grapheditor.Keys)
	}{
		{tcell.ButtonPrimary, editor.OnLeftDown, editor.OnLeftUp, nil, editor.OnDoubleClick},
		{tcell.ButtonSecondary, editor.OnRightDown, editor.OnRightUp, editor.OnRightClick, nil},
	} {
		if buttonChanges&b.button == 0 {
			continue
		}
		if buttons&b.button != 0 {
			if inside {
				a.mouseDownX, a.mouseDownY = x, y
				b.down(cx, cy, keys)
			}
			continue
		}
		b.up(cx, cy, keys)
		if clickMoved || !inside {
			continue
		}
		if a.lastMouseClick.Add(DoubleClickInterval).Before(time.Now()) {
			if b.click != nil {
				b.click(cx, cy, keys)
			}
			a.lastMouseClick = time.Now()
		} else {
			if b.dclick != nil {
				b.dclick(cx, cy, keys)
			}
			a.lastMouseClick = time.Time{}
		}
	}

	if !inside {
		return
	}
	switch {
	case buttons&tcell.WheelUp != 0:
		editor.Zoom().ZoomIn()
	case buttons&tcell.WheelDown != 0:
		editor.Zoom().ZoomOut()
	}
}
