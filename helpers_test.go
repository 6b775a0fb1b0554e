package grapheditor

import (
	"fmt"
	"testing"
)

// recordingSurface is a Surface that records the name of every call.
type recordingSurface struct {
	ops   []string
	texts []string
}

func (s *recordingSurface) record(format string, args ...any) {
	s.ops = append(s.ops, fmt.Sprintf(format, args...))
}

func (s *recordingSurface) count(op string) int {
	n := 0
	for _, o := range s.ops {
		if o == op {
			n++
		}
	}
	return n
}

func (s *recordingSurface) Save()                         { s.record("Save") }
func (s *recordingSurface) Restore()                      { s.record("Restore") }
func (s *recordingSurface) Scale(sx, sy float64)          { s.record("Scale %g %g", sx, sy) }
func (s *recordingSurface) Clear()                        { s.record("Clear") }
func (s *recordingSurface) FillRect(_, _, _, _ float64)   { s.record("FillRect") }
func (s *recordingSurface) StrokeRect(_, _, _, _ float64) { s.record("StrokeRect") }
func (s *recordingSurface) BeginPath()                    { s.record("BeginPath") }
func (s *recordingSurface) MoveTo(_, _ float64)           { s.record("MoveTo") }
func (s *recordingSurface) LineTo(_, _ float64)           { s.record("LineTo") }
func (s *recordingSurface) Rect(_, _, _, _ float64)       { s.record("Rect") }
func (s *recordingSurface) Arc(_, _, _, _, _ float64)     { s.record("Arc") }
func (s *recordingSurface) Fill()                         { s.record("Fill") }
func (s *recordingSurface) Stroke()                       { s.record("Stroke") }
func (s *recordingSurface) Clip()                         { s.record("Clip") }
func (s *recordingSurface) SetFillStyle(Paint)            { s.record("SetFillStyle") }
func (s *recordingSurface) SetStrokeStyle(Paint)          { s.record("SetStrokeStyle") }
func (s *recordingSurface) SetLineWidth(float64)          { s.record("SetLineWidth") }
func (s *recordingSurface) SetLineCap(LineCap)            { s.record("SetLineCap") }
func (s *recordingSurface) SetLineJoin(LineJoin)          { s.record("SetLineJoin") }
func (s *recordingSurface) SetMiterLimit(float64)         { s.record("SetMiterLimit") }
func (s *recordingSurface) SetLineDash(segments ...float64) {
	s.record("SetLineDash %v", segments)
}
func (s *recordingSurface) SetLineDashOffset(float64) { s.record("SetLineDashOffset") }
func (s *recordingSurface) SetShadow(Shadow)          { s.record("SetShadow") }
func (s *recordingSurface) SetFont(Font)              { s.record("SetFont") }

// MeasureText reports six units per byte.
func (s *recordingSurface) MeasureText(text string) float64 {
	return float64(len(text)) * 6
}

func (s *recordingSurface) FillText(text string, _, _ float64, _ TextAlign) {
	s.texts = append(s.texts, text)
	s.record("FillText")
}

// manualScheduler runs frame callbacks when the test calls frame.
type manualScheduler struct {
	next     FrameID
	pending  map[FrameID]func()
	requests int
}

func newManualScheduler() *manualScheduler {
	return &manualScheduler{pending: make(map[FrameID]func())}
}

func (s *manualScheduler) RequestFrame(fn func()) FrameID {
	s.next++
	s.requests++
	s.pending[s.next] = fn
	return s.next
}

func (s *manualScheduler) CancelFrame(id FrameID) {
	delete(s.pending, id)
}

func (s *manualScheduler) frame() {
	pending := s.pending
	s.pending = make(map[FrameID]func())
	for _, fn := range pending {
		fn()
	}
}

// cursorHost records the cursors requested by the editor.
type cursorHost struct {
	cursors []Cursor
}

func (h *cursorHost) SetCanvasCursor(cursor Cursor) {
	h.cursors = append(h.cursors, cursor)
}

func (h *cursorHost) last() Cursor {
	if len(h.cursors) == 0 {
		return ""
	}
	return h.cursors[len(h.cursors)-1]
}

// newTestEditor returns an editor painting onto a recording surface. The
// canvas starts clean.
func newTestEditor(t *testing.T, opts ...Option) (*Editor, *recordingSurface) {
	t.Helper()
	surface := &recordingSurface{}
	e := NewEditor(append([]Option{WithSurface(surface)}, opts...)...)
	e.Canvas().draw()
	surface.ops = nil
	return e, surface
}

// markClean paints pending changes so the next invalidation is observable.
func markClean(e *Editor) {
	e.Canvas().draw()
}

func expectPanic(t *testing.T, want error, f func()) {
	t.Helper()
	defer func() {
		t.Helper()
		r := recover()
		if r == nil {
			t.Fatalf("expected panic with %v", want)
		}
		if err, ok := r.(error); !ok || err != want {
			t.Fatalf("panic = %v, want %v", r, want)
		}
	}()
	f()
}

func boxEqual(a, b BoundingBox) bool {
	const eps = 1e-9
	near := func(x, y float64) bool { return x-y < eps && y-x < eps }
	return near(a.X, b.X) && near(a.Y, b.Y) && near(a.Width, b.Width) && near(a.Height, b.Height)
}
