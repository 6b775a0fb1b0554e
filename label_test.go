package grapheditor

import (
	"slices"
	"testing"
)

// labelOwner is a rectangle counting label notifications.
type labelOwner struct {
	*Rect
	changed []string
}

func (o *labelOwner) LabelChanged(label *Label) {
	o.changed = append(o.changed, label.Text())
}

func TestLabel_Move(t *testing.T) {
	e, _ := newTestEditor(t)
	l := NewLabel(e.RootStage(), BoundingBox{X: 10, Y: 10, Width: 50, Height: 20})

	l.StartMove(15, 15)
	l.MoveTo(25, 20)
	if got := l.BoundingBox(); got.X != 20 || got.Y != 15 || got.Width != 50 {
		t.Errorf("box while moving = %+v, want origin (20, 15)", got)
	}
	if l.Cursor() != CursorMove {
		t.Errorf("Cursor() while moving = %q", l.Cursor())
	}
	if !e.Canvas().IsDirty() {
		t.Error("MoveTo did not invalidate")
	}

	l.CancelMove()
	if got := l.BoundingBox(); got.X != 10 || got.Y != 10 {
		t.Errorf("box after cancel = %+v", got)
	}

	l.StartMove(0, 0)
	l.MoveTo(100, 100)
	l.FinishMove(5, 5)
	if got := l.BoundingBox(); got.X != 15 || got.Y != 15 {
		t.Errorf("box after finish = %+v, want origin (15, 15)", got)
	}
	if l.Cursor() != CursorText {
		t.Errorf("Cursor() at rest = %q", l.Cursor())
	}
}

func TestLabel_SetText(t *testing.T) {
	e, _ := newTestEditor(t)
	owner := &labelOwner{Rect: NewRect(e.RootStage(), 0, 0, 100, 50)}
	l := NewAttachedLabel(owner, BoundingBox{Width: 40, Height: 12}, WithText("a"))
	if l.Owner() != owner || l.Parent() != e.RootStage() {
		t.Fatal("attached label has the wrong owner or stage")
	}

	l.SetText("b")
	l.SetText("c")
	if want := []string{"b", "c"}; !slices.Equal(owner.changed, want) {
		t.Errorf("owner notified with %v, want %v", owner.changed, want)
	}
	if l.Text() != "c" || !e.Canvas().IsDirty() {
		t.Errorf("Text() = %q, dirty = %v", l.Text(), e.Canvas().IsDirty())
	}

	// Free-standing labels have nobody to notify.
	free := NewLabel(e.RootStage(), BoundingBox{})
	free.SetText("x")
	free.DoAction(0, 0)
}

func TestLabel_AutoResize(t *testing.T) {
	tests := []struct {
		name string
		text string
		want BoundingBox
	}{
		{"widest line", "ab\nabcdef", BoundingBox{X: 5, Y: 5, Width: 36, Height: 22}},
		{"min width", "a", BoundingBox{X: 5, Y: 5, Width: 20, Height: 11}},
		{"max width", "abcdefghij", BoundingBox{X: 5, Y: 5, Width: 50, Height: 11}},
		{"max height", "a\nb\nc\nd", BoundingBox{X: 5, Y: 5, Width: 20, Height: 40}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e, surface := newTestEditor(t)
			limits := SizeLimits{MinWidth: 20, MaxWidth: 50, MaxHeight: 40}
			l := NewLabel(e.RootStage(), BoundingBox{X: 5, Y: 5, Width: 1, Height: 1}, WithText(tt.text), WithAutoResize(limits))
			l.Draw(surface)
			if got := l.BoundingBox(); !boxEqual(got, tt.want) {
				t.Errorf("box = %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestLabel_Draw(t *testing.T) {
	e, surface := newTestEditor(t)
	l := NewLabel(e.RootStage(), BoundingBox{Width: 80, Height: 30}, WithText("one\ntwo"), WithTextAlign(TextAlignLeft))
	e.RootStage().AddElement(l)

	l.Draw(surface)
	if want := []string{"one", "two"}; !slices.Equal(surface.texts, want) {
		t.Errorf("texts = %v, want %v", surface.texts, want)
	}
	if surface.count("Clip") != 1 || surface.count("StrokeRect") != 0 {
		t.Errorf("unselected label ops = %v", surface.ops)
	}
	if surface.count("Save") != surface.count("Restore") {
		t.Errorf("unbalanced Save/Restore in %v", surface.ops)
	}

	surface.ops = nil
	e.Selection().Select(l)
	l.Draw(surface)
	if surface.count("StrokeRect") != 1 {
		t.Errorf("selected label ops = %v, want an outline", surface.ops)
	}
	if surface.count("SetLineDash [10 10]") != 0 {
		t.Error("free-standing label drew an ownership hint")
	}
}

func TestLabel_DrawAttachedHint(t *testing.T) {
	e, surface := newTestEditor(t)
	owner := NewRect(e.RootStage(), 0, 0, 100, 50)
	l := NewAttachedLabel(owner, BoundingBox{X: 0, Y: 60, Width: 40, Height: 12})
	e.Selection().Select(l)

	l.Draw(surface)
	if surface.count("SetLineDash [10 10]") != 1 || surface.count("Stroke") != 1 {
		t.Errorf("ops = %v, want a dashed hint line", surface.ops)
	}
	if surface.count("Save") != surface.count("Restore") {
		t.Errorf("unbalanced Save/Restore in %v", surface.ops)
	}
	if x, y := owner.LabelHintLocation(20, 66); x != 50 || y != 25 {
		t.Errorf("LabelHintLocation() = (%v, %v), want the rect center", x, y)
	}
}
