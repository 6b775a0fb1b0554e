package grapheditor

// FrameID identifies a frame request of a FrameScheduler.
type FrameID uint64

// FrameScheduler calls back once per display frame. Hosts implement it on
// top of their frame clock. Callbacks must run on the goroutine that
// delivers pointer events.
type FrameScheduler interface {
	// RequestFrame arranges for fn to be called on the next frame.
	RequestFrame(fn func()) FrameID
	// CancelFrame drops a pending request. Unknown IDs are ignored.
	CancelFrame(id FrameID)
}

// CanvasManager owns the root stage and repaints it at most once per frame,
// and only after something was invalidated.
type CanvasManager struct {
	editor *Editor
	root   *Stage

	surface   Surface
	scheduler FrameScheduler

	width, height float64

	dirty   bool
	running bool
	frame   FrameID

	// An optional handler called after every painted frame.
	drawn func()
}

func newCanvasManager(editor *Editor, width, height float64) *CanvasManager {
	c := &CanvasManager{
		editor: editor,
		width:  width,
		height: height,
		dirty:  true,
	}
	c.root = NewStage(RootOwner(c), width, height)
	return c
}

// RootStage returns the root stage.
func (c *CanvasManager) RootStage() *Stage {
	return c.root
}

// Size returns the canvas size in content units at zoom 1.
func (c *CanvasManager) Size() (float64, float64) {
	return c.width, c.height
}

// Surface returns the surface the canvas paints onto.
func (c *CanvasManager) Surface() Surface {
	return c.surface
}

// SetSurface sets the surface to paint onto and invalidates.
func (c *CanvasManager) SetSurface(surface Surface) *CanvasManager {
	c.surface = surface
	c.Invalidate()
	return c
}

// SetScheduler sets the frame scheduler. It must be called before Start.
func (c *CanvasManager) SetScheduler(scheduler FrameScheduler) *CanvasManager {
	c.scheduler = scheduler
	return c
}

// SetDrawnFunc sets a handler called after every painted frame, typically to
// present the surface.
func (c *CanvasManager) SetDrawnFunc(handler func()) *CanvasManager {
	c.drawn = handler
	return c
}

// Resize changes the canvas size and the size of the root stage.
func (c *CanvasManager) Resize(width, height float64) {
	c.width, c.height = width, height
	c.root.Resize(width, height)
	c.Invalidate()
}

// Invalidate marks the canvas dirty. The repaint happens on the next frame.
func (c *CanvasManager) Invalidate() {
	c.dirty = true
}

// IsDirty returns whether a repaint is pending.
func (c *CanvasManager) IsDirty() bool {
	return c.dirty
}

// IsRunning returns whether frames are being scheduled.
func (c *CanvasManager) IsRunning() bool {
	return c.running
}

// Start begins requesting frames. It does nothing without a scheduler or if
// already started.
func (c *CanvasManager) Start() {
	if c.running || c.scheduler == nil {
		return
	}
	c.running = true
	c.frame = c.scheduler.RequestFrame(c.tick)
	Logger().Info("canvas started", "width", c.width, "height", c.height)
}

// Stop cancels the pending frame request.
func (c *CanvasManager) Stop() {
	if !c.running {
		return
	}
	c.running = false
	c.scheduler.CancelFrame(c.frame)
	Logger().Info("canvas stopped")
}

func (c *CanvasManager) tick() {
	if !c.running {
		return
	}
	c.draw()
	c.frame = c.scheduler.RequestFrame(c.tick)
}

// draw paints the root stage if dirty and returns whether it did.
func (c *CanvasManager) draw() bool {
	if !c.dirty || c.surface == nil {
		return false
	}
	zoom := 1.0
	if c.editor != nil {
		zoom = c.editor.Zoom().Scale()
	}

	c.surface.Clear()
	c.surface.Save()
	c.surface.Scale(zoom, zoom)
	c.root.Draw(c.surface)
	c.surface.Restore()
	c.dirty = false

	Logger().Debug("frame painted", "zoom", zoom, "elements", len(c.root.elements))
	if c.drawn != nil {
		c.drawn()
	}
	return true
}
