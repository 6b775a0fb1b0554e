// Package termhost runs a grapheditor.Editor in a terminal. The canvas is
// rasterized with ggsurface and shown with half block characters, two
// pixels per cell. Pointer events are translated from terminal mouse
// events.
package termhost

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/ayn2op/grapheditor"
	"github.com/ayn2op/grapheditor/ggsurface"
	"github.com/ayn2op/grapheditor/help"
	"github.com/ayn2op/grapheditor/keybind"
	"github.com/ayn2op/grapheditor/termtext"
	"github.com/gdamore/tcell/v2"
)

const (
	// The size of the event and queued updates channels.
	queueSize = 100
	// DefaultFPS is the frame rate used when none is configured.
	DefaultFPS = 30
)

// DoubleClickInterval specifies the maximum time between clicks to register a
// double click rather than click.
var DoubleClickInterval = 500 * time.Millisecond

// queuedUpdate represents the execution of f queued by
// Application.QueueUpdate. If "done" is not nil, it receives exactly one
// element after f has executed.
type queuedUpdate struct {
	f    func()
	done chan struct{}
}

type Option func(*Application)

// WithScreen sets the screen to run on. By default a terminal screen is
// created by Run.
func WithScreen(screen tcell.Screen) Option {
	return func(a *Application) {
		a.screen = screen
	}
}

// WithFPS sets the number of frames per second.
func WithFPS(fps int) Option {
	return func(a *Application) {
		if fps > 0 {
			a.fps = fps
		}
	}
}

// WithKeyMap replaces the default key bindings.
func WithKeyMap(keyMap *KeyMap) Option {
	return func(a *Application) {
		a.keyMap = keyMap
	}
}

// Application is the terminal host of an editor. It implements
// grapheditor.Host and owns the frame scheduler of the editor canvas.
type Application struct {
	mu sync.Mutex

	screen    tcell.Screen
	editor    *grapheditor.Editor
	surface   *ggsurface.Surface
	scheduler *Scheduler
	keyMap    *KeyMap
	help      *help.Help
	fps       int

	events  chan tcell.Event
	updates chan queuedUpdate
	done    chan struct{}

	cursor   grapheditor.Cursor
	zoomHome int

	// The canvas area in cells. Rows below it hold the status line and help.
	canvasWidth, canvasHeight int

	// framePainted is set by the canvas when a frame was painted and
	// chromeDirty when the status line or help need redrawing.
	framePainted bool
	chromeDirty  bool

	inCanvas               bool             // Whether the mouse is over the canvas.
	lastMouseX, lastMouseY int              // The last position of the mouse.
	mouseDownX, mouseDownY int              // The position of the mouse when its button was last pressed.
	lastMouseClick         time.Time        // The time when a mouse button was last clicked.
	lastMouseButtons       tcell.ButtonMask // The last mouse button state.
}

var _ grapheditor.Host = (*Application)(nil)

// NewApplication returns an application hosting editor.
func NewApplication(editor *grapheditor.Editor, opts ...Option) *Application {
	a := &Application{
		editor:    editor,
		scheduler: NewScheduler(),
		keyMap:    DefaultKeyMap(),
		help:      help.New(),
		fps:       DefaultFPS,
		updates:   make(chan queuedUpdate, queueSize),
		events:    make(chan tcell.Event, queueSize),
		done:      make(chan struct{}),
		cursor:    grapheditor.CursorDefault,
		zoomHome:  editor.Zoom().Level(),
	}
	for _, opt := range opts {
		opt(a)
	}
	a.help.SetKeyMap(a.keyMap)
	return a
}

func (a *Application) Editor() *grapheditor.Editor { return a.editor }
func (a *Application) Scheduler() *Scheduler       { return a.scheduler }

// Surface returns the raster the canvas paints onto. It is nil until the
// application is set up by Run.
func (a *Application) Surface() *ggsurface.Surface {
	return a.surface
}

// CanvasCursor returns the cursor last requested by the editor.
func (a *Application) CanvasCursor() grapheditor.Cursor {
	return a.cursor
}

// SetCanvasCursor implements grapheditor.Host. Terminals have no pointer
// shapes, so the cursor is shown in the status line.
func (a *Application) SetCanvasCursor(cursor grapheditor.Cursor) {
	if cursor != a.cursor {
		a.cursor = cursor
		a.chromeDirty = true
	}
}

// setup connects the editor to the screen and the scheduler.
func (a *Application) setup(screen tcell.Screen) {
	a.screen = screen
	screen.EnableMouse()
	screen.HideCursor()

	canvas := a.editor.Canvas()
	canvas.SetScheduler(a.scheduler)
	canvas.SetDrawnFunc(func() { a.framePainted = true })
	a.editor.Tools().SetChangedFunc(func(grapheditor.Tool) { a.updateKeyMap() })
	a.editor.Zoom().SetChangedFunc(func(float64) { a.updateKeyMap() })
	a.editor.SetHost(a)
	a.updateKeyMap()

	a.resize()
}

// updateKeyMap disables the bindings that would do nothing: switching to
// the active tool and resetting a zoom that is already at its start level.
func (a *Application) updateKeyMap() {
	tools := a.editor.Tools()
	a.keyMap.SelectTool.SetEnabled(tools.ActiveTool() != a.editor.Selector())
	a.keyMap.ZoomTool.SetEnabled(tools.ActiveTool() != a.editor.ZoomTool())
	a.keyMap.ZoomReset.SetEnabled(a.editor.Zoom().Level() != a.zoomHome)
	a.chromeDirty = true

	// Full help may change height with the bindings.
	if a.surface != nil {
		width, height := a.screen.Size()
		if max(height-1-a.help.Height(width), 0) != a.canvasHeight {
			a.resize()
		}
	}
}

// resize lays out the screen and resizes the surface to the canvas area.
func (a *Application) resize() {
	width, height := a.screen.Size()
	helpHeight := a.help.Height(width)
	a.canvasWidth = width
	a.canvasHeight = max(height-1-helpHeight, 0)

	pw, ph := max(a.canvasWidth, 1), max(2*a.canvasHeight, 1)
	if a.surface == nil {
		a.surface = ggsurface.New(pw, ph)
		a.editor.Canvas().SetSurface(a.surface)
	} else if err := a.surface.Resize(pw, ph); err != nil {
		grapheditor.Logger().Warn("resize failed", "width", pw, "height", ph, "error", err)
	}
	a.editor.Canvas().Invalidate()
	a.chromeDirty = true
	a.screen.Clear()
}

// Run sets up the screen and processes events until ctx is done, a quit key
// is pressed or Stop is called.
func (a *Application) Run(ctx context.Context) error {
	screen := a.screen
	if screen == nil {
		var err error
		screen, err = tcell.NewScreen()
		if err != nil {
			return fmt.Errorf("failed to create screen: %w", err)
		}
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("failed to initialize screen: %w", err)
	}

	// We catch panics to clean up because they mess up the terminal.
	defer func() {
		if p := recover(); p != nil {
			a.Stop()
			panic(p)
		}
	}()

	a.setup(screen)
	a.editor.Start()
	defer a.editor.Stop()

	go a.pollEvents(screen)

	ticker := time.NewTicker(time.Second / time.Duration(a.fps))
	defer ticker.Stop()

	grapheditor.Logger().Info("terminal host started", "fps", a.fps)
	defer grapheditor.Logger().Info("terminal host stopped")

	a.frame()
	for {
		select {
		case <-ctx.Done():
			a.Stop()
			return nil
		case <-a.done:
			return nil
		case event := <-a.events:
			if event == nil {
				return nil
			}
			if err := a.handleEvent(event); err != nil {
				a.Stop()
				return err
			}
		case update := <-a.updates:
			update.f()
			if update.done != nil {
				update.done <- struct{}{}
			}
		case <-ticker.C:
			a.frame()
		}
	}
}

func (a *Application) pollEvents(screen tcell.Screen) {
	for {
		event := screen.PollEvent()
		if event == nil {
			return
		}
		select {
		case a.events <- event:
		case <-a.done:
			return
		}
	}
}

// Stop finalizes the screen and causes Run to return.
func (a *Application) Stop() {
	a.mu.Lock()
	defer a.mu.Unlock()
	select {
	case <-a.done:
		return
	default:
	}
	close(a.done)
	if a.screen != nil {
		a.screen.Fini()
	}
}

// QueueUpdate runs f on the event loop and returns after it has executed.
// Editor state must only be changed this way from other goroutines.
func (a *Application) QueueUpdate(f func()) {
	ch := make(chan struct{})
	select {
	case a.updates <- queuedUpdate{f: f, done: ch}:
	case <-a.done:
		return
	}
	select {
	case <-ch:
	case <-a.done:
	}
}

// handleEvent dispatches a terminal event. A returned error stops the
// application.
func (a *Application) handleEvent(event tcell.Event) error {
	switch event := event.(type) {
	case *tcell.EventKey:
		if a.handleKey(event) {
			a.Stop()
		}
	case *tcell.EventMouse:
		a.handleMouse(event)
	case *tcell.EventResize:
		a.screen.Sync()
		a.resize()
	case *tcell.EventError:
		return event
	}
	return nil
}

// handleKey applies a key binding and reports whether the application
// should quit.
func (a *Application) handleKey(event *tcell.EventKey) bool {
	km := a.keyMap
	editor := a.editor
	switch {
	case keybind.Matches(event, km.Quit):
		return true
	case keybind.Matches(event, km.ZoomIn):
		editor.Zoom().ZoomIn()
	case keybind.Matches(event, km.ZoomOut):
		editor.Zoom().ZoomOut()
	case keybind.Matches(event, km.ZoomReset):
		editor.Zoom().SetLevel(a.zoomHome)
	case keybind.Matches(event, km.SelectTool):
		editor.Tools().ActivateTool(editor.Selector())
	case keybind.Matches(event, km.ZoomTool):
		editor.Tools().ActivateTool(editor.ZoomTool())
	case keybind.Matches(event, km.Unselect):
		editor.Selection().UnselectAll()
	case keybind.Matches(event, km.Help):
		a.help.Toggle()
		a.resize()
	}
	return false
}

// frame runs the pending frame callbacks and presents what changed.
func (a *Application) frame() {
	a.scheduler.RunFrame()
	if !a.framePainted && !a.chromeDirty {
		return
	}
	if a.framePainted {
		blit(a.screen, a.surface.Image(), 0, 0, a.canvasWidth, a.canvasHeight)
	}
	a.drawChrome()
	a.framePainted, a.chromeDirty = false, false
	a.screen.Show()
}

// statusText describes the active tool, the zoom and the cursor.
func (a *Application) statusText() string {
	tool := "none"
	if active := a.editor.Tools().ActiveTool(); active != nil {
		tool = active.Name()
	}
	selected := len(a.editor.Selection().Selected())
	return fmt.Sprintf(" %s │ zoom %.0f%% │ %d selected │ %s", tool, a.editor.Zoom().Scale()*100, selected, a.cursor)
}

// drawChrome draws the status line and the help below the canvas.
func (a *Application) drawChrome() {
	width, height := a.screen.Size()
	y := a.canvasHeight
	if y >= height {
		return
	}
	style := tcell.StyleDefault.Reverse(true)
	termtext.Fill(a.screen, 0, y, width, style)
	termtext.Print(a.screen, a.statusText(), 0, y, width, termtext.AlignmentLeft, style)
	a.help.Draw(a.screen, 0, y+1, width, height-y-1)
}
