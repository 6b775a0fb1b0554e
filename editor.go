package grapheditor

// Host is the environment an editor runs in.
type Host interface {
	// SetCanvasCursor changes the pointer cursor shown over the canvas.
	SetCanvasCursor(cursor Cursor)
}

type options struct {
	width, height float64
	zoom          int
	scheduler     FrameScheduler
	surface       Surface
	host          Host
}

// Option configures an editor on creation.
type Option func(*options)

// WithSize sets the size of the canvas and its root stage. The default is
// 800x600.
func WithSize(width, height float64) Option {
	return func(o *options) {
		o.width, o.height = width, height
	}
}

// WithZoom sets the initial zoom level. The default is 1.
func WithZoom(level int) Option {
	return func(o *options) {
		o.zoom = level
	}
}

// WithScheduler sets the frame scheduler driving repaints.
func WithScheduler(scheduler FrameScheduler) Option {
	return func(o *options) {
		o.scheduler = scheduler
	}
}

// WithSurface sets the surface the canvas paints onto.
func WithSurface(surface Surface) Option {
	return func(o *options) {
		o.surface = surface
	}
}

// WithHost sets the host receiving cursor changes.
func WithHost(host Host) Option {
	return func(o *options) {
		o.host = host
	}
}

// Editor ties together the canvas, the selection, the zoom and the tools. It
// is not safe for concurrent use: all methods, including the pointer event
// entry points, must be called from the host's event goroutine.
type Editor struct {
	canvas    *CanvasManager
	selection *SelectionManager
	zoom      *ZoomManager
	tools     *ToolManager

	selector *Selector
	zoomTool *Zoom

	host   Host
	cursor Cursor
}

// NewEditor returns an editor with the select tool active and the zoom tool
// available in the "Tools" group.
func NewEditor(opts ...Option) *Editor {
	o := options{width: 800, height: 600, zoom: 1}
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}

	e := &Editor{host: o.host, cursor: CursorDefault}
	e.canvas = newCanvasManager(e, o.width, o.height)
	e.canvas.scheduler = o.scheduler
	e.canvas.surface = o.surface
	e.selection = newSelectionManager(e.canvas)
	e.zoom = newZoomManager(e.canvas, o.zoom)
	e.tools = newToolManager()

	e.selector = NewSelector(e)
	e.zoomTool = NewZoom(e)
	e.tools.AddGroup("Tools", e.selector, e.zoomTool).SetDefaultTool(e.selector)
	return e
}

func (e *Editor) Canvas() *CanvasManager       { return e.canvas }
func (e *Editor) Selection() *SelectionManager { return e.selection }
func (e *Editor) Zoom() *ZoomManager           { return e.zoom }
func (e *Editor) Tools() *ToolManager          { return e.tools }

// RootStage returns the root stage of the canvas.
func (e *Editor) RootStage() *Stage {
	return e.canvas.RootStage()
}

// Selector returns the built-in select tool.
func (e *Editor) Selector() *Selector {
	return e.selector
}

// ZoomTool returns the built-in zoom tool.
func (e *Editor) ZoomTool() *Zoom {
	return e.zoomTool
}

// SetHost sets the host receiving cursor changes.
func (e *Editor) SetHost(host Host) *Editor {
	e.host = host
	if host != nil {
		host.SetCanvasCursor(e.cursor)
	}
	return e
}

// Cursor returns the cursor last requested by a tool.
func (e *Editor) Cursor() Cursor {
	return e.cursor
}

func (e *Editor) setCursor(cursor Cursor) {
	e.cursor = cursor
	if e.host != nil {
		e.host.SetCanvasCursor(cursor)
	}
}

// Start starts repainting the canvas.
func (e *Editor) Start() {
	e.canvas.Start()
}

// Stop deactivates the active tool, canceling its drags, and stops
// repainting.
func (e *Editor) Stop() {
	if active := e.tools.ActiveTool(); active != nil {
		active.OnToolDeactivated()
	}
	e.canvas.Stop()
}

// ContentPosition converts a position on the canvas to content coordinates.
func (e *Editor) ContentPosition(rawX, rawY float64) (float64, float64) {
	scale := e.zoom.Scale()
	return rawX / scale, rawY / scale
}

// The pointer event entry points take content coordinates and forward to the
// active tool.

func (e *Editor) OnLeftDown(x, y float64, keys Keys)    { e.tools.OnLeftDown(x, y, keys) }
func (e *Editor) OnLeftUp(x, y float64, keys Keys)      { e.tools.OnLeftUp(x, y, keys) }
func (e *Editor) OnRightDown(x, y float64, keys Keys)   { e.tools.OnRightDown(x, y, keys) }
func (e *Editor) OnRightUp(x, y float64, keys Keys)     { e.tools.OnRightUp(x, y, keys) }
func (e *Editor) OnMouseMove(x, y float64, keys Keys)   { e.tools.OnMouseMove(x, y, keys) }
func (e *Editor) OnMouseEnter(x, y float64, keys Keys)  { e.tools.OnMouseEnter(x, y, keys) }
func (e *Editor) OnMouseLeave(x, y float64, keys Keys)  { e.tools.OnMouseLeave(x, y, keys) }
func (e *Editor) OnDoubleClick(x, y float64, keys Keys) { e.tools.OnDoubleClick(x, y, keys) }
func (e *Editor) OnRightClick(x, y float64, keys Keys)  { e.tools.OnRightClick(x, y, keys) }
