package grapheditor

// ZoomManager keeps the integer zoom level of an editor. Levels of one and
// above scale by the level, lower levels shrink: 0 is 1/2, -1 is 1/3 and so
// on.
type ZoomManager struct {
	canvas *CanvasManager
	level  int

	// An optional handler called after the level changed.
	changed func(scale float64)
}

func newZoomManager(canvas *CanvasManager, level int) *ZoomManager {
	return &ZoomManager{canvas: canvas, level: level}
}

// Level returns the zoom level.
func (z *ZoomManager) Level() int {
	return z.level
}

// Scale returns the scale factor applied before painting.
func (z *ZoomManager) Scale() float64 {
	if z.level >= 1 {
		return float64(z.level)
	}
	return -1 / float64(z.level-2)
}

// SetChangedFunc sets a handler called with the new scale after every change
// of the zoom level.
func (z *ZoomManager) SetChangedFunc(handler func(scale float64)) *ZoomManager {
	z.changed = handler
	return z
}

// SetLevel sets the zoom level.
func (z *ZoomManager) SetLevel(level int) {
	if level == z.level {
		return
	}
	z.level = level
	Logger().Debug("zoom changed", "level", level, "scale", z.Scale())
	if z.canvas != nil {
		z.canvas.Invalidate()
	}
	if z.changed != nil {
		z.changed(z.Scale())
	}
}

// ZoomIn increases the zoom level by one.
func (z *ZoomManager) ZoomIn() {
	z.SetLevel(z.level + 1)
}

// ZoomOut decreases the zoom level by one.
func (z *ZoomManager) ZoomOut() {
	z.SetLevel(z.level - 1)
}

// Zoom is the tool zooming in on left presses and out on right presses.
type Zoom struct {
	BaseTool

	editor *Editor
}

// NewZoom returns a zoom tool operating on editor.
func NewZoom(editor *Editor) *Zoom {
	return &Zoom{
		BaseTool: NewBaseTool("Zoom"),
		editor:   editor,
	}
}

func (z *Zoom) OnLeftDown(x, y float64, keys Keys) {
	z.editor.setCursor(CursorZoomIn)
	z.editor.Zoom().ZoomIn()
}

func (z *Zoom) OnRightDown(x, y float64, keys Keys) {
	z.editor.setCursor(CursorZoomOut)
	z.editor.Zoom().ZoomOut()
}

func (z *Zoom) OnMouseMove(x, y float64, keys Keys) {
	z.editor.setCursor(CursorZoomIn)
}
