package termhost

import (
	"context"
	"image"
	"image/color"
	"strings"
	"testing"
	"time"

	"github.com/ayn2op/grapheditor"
	"github.com/ayn2op/grapheditor/keybind"
	"github.com/gdamore/tcell/v2"
)

func newTestApp(t *testing.T) (*Application, tcell.SimulationScreen) {
	t.Helper()
	screen := tcell.NewSimulationScreen("UTF-8")
	if err := screen.Init(); err != nil {
		t.Fatalf("screen.Init() error = %v", err)
	}
	t.Cleanup(screen.Fini)
	screen.SetSize(40, 12)

	app := NewApplication(grapheditor.NewEditor(), WithScreen(screen))
	app.setup(screen)
	return app, screen
}

func rowText(screen tcell.SimulationScreen, y int) string {
	width, _ := screen.Size()
	var b strings.Builder
	for x := 0; x < width; x++ {
		r, _, _, _ := screen.GetContent(x, y)
		b.WriteRune(r)
	}
	return b.String()
}

func near(got, want int32) bool {
	return got >= want-2 && got <= want+2
}

func TestApplication_Layout(t *testing.T) {
	app, _ := newTestApp(t)
	if app.canvasWidth != 40 || app.canvasHeight != 10 {
		t.Fatalf("canvas = %dx%d cells, want 40x10", app.canvasWidth, app.canvasHeight)
	}
	if w, h := app.Surface().Size(); w != 40 || h != 20 {
		t.Errorf("surface = %dx%d, want 40x20", w, h)
	}

	x, y := app.contentPosition(10, 5)
	if x != 10.5 || y != 11 {
		t.Errorf("contentPosition(10, 5) = (%v, %v), want (10.5, 11)", x, y)
	}
	app.editor.Zoom().SetLevel(2)
	x, y = app.contentPosition(10, 5)
	if x != 5.25 || y != 5.5 {
		t.Errorf("contentPosition at zoom 2 = (%v, %v), want (5.25, 5.5)", x, y)
	}
}

func TestApplication_Frame(t *testing.T) {
	app, screen := newTestApp(t)
	stage := app.editor.RootStage()
	stage.AddElement(grapheditor.NewRect(stage, 5, 5, 10, 6, grapheditor.WithFill("#ff0000")))

	app.editor.Start()
	app.frame()

	_, _, style, _ := screen.GetContent(10, 4)
	fg, bg, _ := style.Decompose()
	for _, c := range []tcell.Color{fg, bg} {
		if r, g, b := c.RGB(); !near(r, 255) || !near(g, 0) || !near(b, 0) {
			t.Errorf("cell inside rect = (%d, %d, %d), want red", r, g, b)
		}
	}
	if status := rowText(screen, 10); !strings.Contains(status, "Select") || !strings.Contains(status, "zoom 100%") {
		t.Errorf("status line = %q", status)
	}
	if app.editor.Canvas().IsDirty() {
		t.Error("canvas still dirty after frame")
	}
}

func TestApplication_MouseSelectAndDrag(t *testing.T) {
	app, _ := newTestApp(t)
	stage := app.editor.RootStage()
	rect := grapheditor.NewRect(stage, 5, 5, 10, 6)
	stage.AddElement(rect)

	// Click at (10.5, 9).
	app.handleMouse(tcell.NewEventMouse(10, 4, tcell.ButtonPrimary, tcell.ModNone))
	app.handleMouse(tcell.NewEventMouse(10, 4, tcell.ButtonNone, tcell.ModNone))
	if !app.editor.Selection().IsSelected(rect) {
		t.Fatal("rect not selected after click")
	}
	if app.CanvasCursor() != grapheditor.CursorMove {
		t.Errorf("cursor = %q, want %q", app.CanvasCursor(), grapheditor.CursorMove)
	}

	// Drag two cells to the right.
	app.handleMouse(tcell.NewEventMouse(10, 4, tcell.ButtonPrimary, tcell.ModNone))
	app.handleMouse(tcell.NewEventMouse(12, 4, tcell.ButtonPrimary, tcell.ModNone))
	app.handleMouse(tcell.NewEventMouse(12, 4, tcell.ButtonNone, tcell.ModNone))

	if got := rect.Visible(); got.X != 7 || got.Y != 5 {
		t.Errorf("rect after drag = %+v, want origin (7, 5)", got)
	}
	if rect.IsMoving() {
		t.Error("rect still moving after release")
	}
}

func TestApplication_MouseLeaveCancelsDrag(t *testing.T) {
	app, _ := newTestApp(t)
	stage := app.editor.RootStage()
	rect := grapheditor.NewRect(stage, 5, 5, 10, 6)
	stage.AddElement(rect)

	app.handleMouse(tcell.NewEventMouse(10, 4, tcell.ButtonPrimary, tcell.ModNone))
	app.handleMouse(tcell.NewEventMouse(14, 4, tcell.ButtonPrimary, tcell.ModNone))
	if !rect.IsMoving() {
		t.Fatal("rect not moving during drag")
	}

	// Row 10 is the status line.
	app.handleMouse(tcell.NewEventMouse(14, 10, tcell.ButtonPrimary, tcell.ModNone))
	if rect.IsMoving() {
		t.Error("rect still moving after the pointer left the canvas")
	}
	if got := rect.Visible(); got.X != 5 {
		t.Errorf("rect after leave = %+v, want origin x 5", got)
	}
}

func TestApplication_ReleaseOutsideCanvas(t *testing.T) {
	app, _ := newTestApp(t)
	stage := app.editor.RootStage()
	rect := grapheditor.NewRect(stage, 5, 5, 10, 6)
	stage.AddElement(rect)

	app.handleMouse(tcell.NewEventMouse(10, 4, tcell.ButtonPrimary, tcell.ModNone))
	// Row 11 is below the canvas.
	app.handleMouse(tcell.NewEventMouse(10, 11, tcell.ButtonPrimary, tcell.ModNone))
	app.handleMouse(tcell.NewEventMouse(10, 11, tcell.ButtonNone, tcell.ModNone))
	if app.editor.Selector().Pending() != nil {
		t.Fatal("release outside the canvas left a pending element")
	}

	app.handleMouse(tcell.NewEventMouse(20, 6, tcell.ButtonNone, tcell.ModNone))
	app.handleMouse(tcell.NewEventMouse(25, 6, tcell.ButtonNone, tcell.ModNone))
	if rect.IsMoving() || len(app.editor.Selector().Moving()) != 0 {
		t.Error("rect is dragged without a button held")
	}
	if got := rect.Visible(); got.X != 5 || got.Y != 5 {
		t.Errorf("rect after re-entering = %+v, want origin (5, 5)", got)
	}
}

func TestApplication_PressOutsideCanvas(t *testing.T) {
	app, _ := newTestApp(t)
	stage := app.editor.RootStage()
	rect := grapheditor.NewRect(stage, 5, 5, 10, 6)
	stage.AddElement(rect)
	app.editor.Selection().Select(rect)

	// A press on the status row must not reach the selector, which would
	// clear the selection on an empty spot.
	app.handleMouse(tcell.NewEventMouse(3, 10, tcell.ButtonPrimary, tcell.ModNone))
	app.handleMouse(tcell.NewEventMouse(3, 10, tcell.ButtonNone, tcell.ModNone))
	if !app.editor.Selection().IsSelected(rect) {
		t.Error("press outside the canvas changed the selection")
	}
}

func TestApplication_DoubleClick(t *testing.T) {
	app, _ := newTestApp(t)
	stage := app.editor.RootStage()
	var clicked bool
	label := grapheditor.NewLabel(stage, grapheditor.BoundingBox{X: 2, Y: 2, Width: 20, Height: 10},
		grapheditor.WithText("hello"))
	label.SetActionFunc(func(*grapheditor.Label, float64, float64) { clicked = true })
	stage.AddElement(label)

	for range 2 {
		app.handleMouse(tcell.NewEventMouse(5, 2, tcell.ButtonPrimary, tcell.ModNone))
		app.handleMouse(tcell.NewEventMouse(5, 2, tcell.ButtonNone, tcell.ModNone))
	}
	if !clicked {
		t.Error("double click did not run the label action")
	}
}

func TestApplication_Keys(t *testing.T) {
	app, _ := newTestApp(t)
	editor := app.editor
	key := func(r rune) bool {
		return app.handleKey(tcell.NewEventKey(tcell.KeyRune, r, tcell.ModNone))
	}

	key('z')
	if editor.Tools().ActiveTool() != editor.ZoomTool() {
		t.Errorf("active tool = %v, want zoom", editor.Tools().ActiveTool().Name())
	}
	key('s')
	if editor.Tools().ActiveTool() != editor.Selector() {
		t.Errorf("active tool = %v, want select", editor.Tools().ActiveTool().Name())
	}

	key('+')
	if editor.Zoom().Level() != 2 {
		t.Errorf("zoom level = %d, want 2", editor.Zoom().Level())
	}
	key('0')
	if editor.Zoom().Level() != 1 {
		t.Errorf("zoom level after reset = %d, want 1", editor.Zoom().Level())
	}

	key('?')
	if app.canvasHeight != 9 {
		t.Errorf("canvas rows with full help = %d, want 9", app.canvasHeight)
	}
	// Zooming enables reset, which adds a row to the zoom column.
	key('+')
	if app.canvasHeight != 8 {
		t.Errorf("canvas rows with full help after zoom = %d, want 8", app.canvasHeight)
	}

	if !key('q') {
		t.Error("q did not quit")
	}
	if app.handleKey(tcell.NewEventKey(tcell.KeyCtrlC, 0, tcell.ModCtrl)) != true {
		t.Error("ctrl+c did not quit")
	}
}

func TestApplication_KeysFollowState(t *testing.T) {
	app, screen := newTestApp(t)
	km := app.keyMap
	key := func(r rune) bool {
		return app.handleKey(tcell.NewEventKey(tcell.KeyRune, r, tcell.ModNone))
	}
	helpRow := func() string {
		app.frame()
		return rowText(screen, 11)
	}

	if km.SelectTool.Enabled() || !km.ZoomTool.Enabled() || km.ZoomReset.Enabled() {
		t.Fatalf("enabled select=%v zoom=%v reset=%v, want false true false",
			km.SelectTool.Enabled(), km.ZoomTool.Enabled(), km.ZoomReset.Enabled())
	}
	if row := helpRow(); strings.Contains(row, "select tool") || !strings.Contains(row, "zoom tool") {
		t.Errorf("help with select tool active = %q", row)
	}

	key('z')
	if !km.SelectTool.Enabled() || km.ZoomTool.Enabled() {
		t.Errorf("zoom tool active: select enabled = %v, zoom enabled = %v", km.SelectTool.Enabled(), km.ZoomTool.Enabled())
	}
	if row := helpRow(); !strings.Contains(row, "select tool") || strings.Contains(row, "zoom tool") {
		t.Errorf("help with zoom tool active = %q", row)
	}

	key('+')
	if !km.ZoomReset.Enabled() {
		t.Error("zoom reset disabled after zooming in")
	}
	key('0')
	if km.ZoomReset.Enabled() {
		t.Error("zoom reset enabled at the start level")
	}
}

func TestKeyMap_Rebind(t *testing.T) {
	km := DefaultKeyMap()
	if err := km.Rebind("zoom-tool", "ctrl+z", "Z"); err != nil {
		t.Fatalf("Rebind() error = %v", err)
	}
	if got := km.ZoomTool.Help(); got.Key != "ctrl+z" || got.Desc != "zoom tool" {
		t.Errorf("help = %+v, want ctrl+z zoom tool", got)
	}
	if !keybind.Matches(tcell.NewEventKey(tcell.KeyCtrlZ, 0, tcell.ModCtrl), km.ZoomTool) {
		t.Error("ctrl+z does not match the rebound zoom tool")
	}
	if keybind.Matches(tcell.NewEventKey(tcell.KeyRune, 'z', tcell.ModNone), km.ZoomTool) {
		t.Error("z still matches the rebound zoom tool")
	}

	if err := km.Rebind("paint", "p"); err == nil {
		t.Error("Rebind() of an unknown binding returned nil error")
	}
	if err := km.Rebind("quit", "hyper+q"); err == nil {
		t.Error("Rebind() with an invalid key returned nil error")
	}
	if !keybind.Matches(tcell.NewEventKey(tcell.KeyRune, 'q', tcell.ModNone), km.Quit) {
		t.Error("failed Rebind() changed the quit keys")
	}
}

func TestBlit(t *testing.T) {
	screen := tcell.NewSimulationScreen("UTF-8")
	if err := screen.Init(); err != nil {
		t.Fatalf("screen.Init() error = %v", err)
	}
	defer screen.Fini()
	screen.SetSize(2, 2)

	img := image.NewRGBA(image.Rect(0, 0, 2, 3))
	img.SetRGBA(0, 0, color.RGBA{R: 255, A: 255})
	img.SetRGBA(0, 1, color.RGBA{B: 255, A: 255})
	blit(screen, img, 0, 0, 2, 2)

	r, _, style, _ := screen.GetContent(0, 0)
	if r != upperHalfBlock {
		t.Errorf("cell rune = %q, want %q", r, upperHalfBlock)
	}
	fg, bg, _ := style.Decompose()
	if fg != tcell.NewRGBColor(255, 0, 0) || bg != tcell.NewRGBColor(0, 0, 255) {
		t.Errorf("cell colors = %v, %v, want red over blue", fg, bg)
	}

	// Row 3 is outside the image.
	_, _, style, _ = screen.GetContent(1, 1)
	if fg, bg, _ := style.Decompose(); fg != tcell.ColorDefault || bg != tcell.ColorDefault {
		t.Errorf("transparent cell colors = %v, %v, want default", fg, bg)
	}
}

func TestApplication_Run(t *testing.T) {
	t.Run("quit key", func(t *testing.T) {
		screen := tcell.NewSimulationScreen("UTF-8")
		app := NewApplication(grapheditor.NewEditor(), WithScreen(screen), WithFPS(100))

		result := make(chan error, 1)
		go func() { result <- app.Run(context.Background()) }()

		app.QueueUpdate(func() {})
		screen.InjectKey(tcell.KeyRune, 'q', tcell.ModNone)

		select {
		case err := <-result:
			if err != nil {
				t.Errorf("Run() error = %v", err)
			}
		case <-time.After(5 * time.Second):
			t.Fatal("Run() did not return after q")
		}
	})

	t.Run("context canceled", func(t *testing.T) {
		screen := tcell.NewSimulationScreen("UTF-8")
		app := NewApplication(grapheditor.NewEditor(), WithScreen(screen))
		ctx, cancel := context.WithCancel(context.Background())

		result := make(chan error, 1)
		go func() { result <- app.Run(ctx) }()

		var running bool
		app.QueueUpdate(func() { running = app.Editor().Canvas().IsRunning() })
		if !running {
			t.Error("canvas not running inside Run")
		}
		cancel()

		select {
		case err := <-result:
			if err != nil {
				t.Errorf("Run() error = %v", err)
			}
		case <-time.After(5 * time.Second):
			t.Fatal("Run() did not return after cancel")
		}
		if app.Editor().Canvas().IsRunning() {
			t.Error("canvas still running after Run returned")
		}
	})
}
