package grapheditor

import (
	"slices"
	"testing"
)

// recordingTool logs activation changes and left presses.
type recordingTool struct {
	BaseTool
	log *[]string
}

func newRecordingTool(name string, log *[]string) *recordingTool {
	return &recordingTool{BaseTool: NewBaseTool(name), log: log}
}

func (t *recordingTool) OnLeftDown(x, y float64, keys Keys) {
	*t.log = append(*t.log, t.Name()+" down")
}

func (t *recordingTool) OnToolActivated()   { *t.log = append(*t.log, t.Name()+" on") }
func (t *recordingTool) OnToolDeactivated() { *t.log = append(*t.log, t.Name()+" off") }

func TestToolManager_Activation(t *testing.T) {
	var log []string
	a := newRecordingTool("a", &log)
	b := newRecordingTool("b", &log)

	m := newToolManager()
	var changed []string
	m.SetChangedFunc(func(tool Tool) { changed = append(changed, tool.Name()) })
	m.AddGroup("Tools", a, b).SetDefaultTool(a)

	m.OnLeftDown(0, 0, Keys{})
	m.ActivateTool(b)
	m.ActivateTool(b)
	m.OnLeftDown(0, 0, Keys{})
	m.DeactivateTool()
	m.ActivateTool(nil)

	want := []string{"a on", "a down", "a off", "b on", "b down", "b off", "a on"}
	if !slices.Equal(log, want) {
		t.Errorf("log = %v, want %v", log, want)
	}
	if want := []string{"a", "b", "a"}; !slices.Equal(changed, want) {
		t.Errorf("changed = %v, want %v", changed, want)
	}
	if m.ActiveTool() != a {
		t.Errorf("ActiveTool() = %v, want a", m.ActiveTool().Name())
	}
}

func TestToolManager_NoActiveTool(t *testing.T) {
	m := newToolManager()
	m.OnLeftDown(0, 0, Keys{})
	m.OnMouseMove(0, 0, Keys{})
	m.DeactivateTool()
	if m.ActiveTool() != nil {
		t.Error("empty manager has an active tool")
	}
}

func TestToolManager_Groups(t *testing.T) {
	e, _ := newTestEditor(t)
	m := e.Tools()

	groups := m.Groups()
	if len(groups) != 1 || groups[0].Name != "Tools" || len(groups[0].Tools) != 2 {
		t.Fatalf("Groups() = %+v", groups)
	}
	if m.ToolByName("Select") != e.Selector() {
		t.Error(`ToolByName("Select") is not the selector`)
	}
	if m.ToolByName("Zoom") != e.ZoomTool() {
		t.Error(`ToolByName("Zoom") is not the zoom tool`)
	}
	if m.ToolByName("Pen") != nil {
		t.Error(`ToolByName("Pen") found a tool`)
	}
}
