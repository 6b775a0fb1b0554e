package grapheditor

// Keys holds the modifier keys pressed during a pointer event.
type Keys struct {
	Ctrl, Alt, Shift bool
}

// Tool receives pointer events in content coordinates while it is active.
type Tool interface {
	// Name returns the name shown to the user.
	Name() string

	OnLeftDown(x, y float64, keys Keys)
	OnLeftUp(x, y float64, keys Keys)
	OnRightDown(x, y float64, keys Keys)
	OnRightUp(x, y float64, keys Keys)
	OnMouseMove(x, y float64, keys Keys)
	OnMouseEnter(x, y float64, keys Keys)
	OnMouseLeave(x, y float64, keys Keys)
	OnDoubleClick(x, y float64, keys Keys)
	OnRightClick(x, y float64, keys Keys)

	// OnToolActivated is called when the tool becomes the active tool.
	OnToolActivated()
	// OnToolDeactivated is called when another tool is activated. Tools must
	// not leave operations in flight.
	OnToolDeactivated()
}

// BaseTool implements every Tool event as a no-op. Embed it in tools that
// only handle some events.
type BaseTool struct {
	name string
}

// NewBaseTool returns the base of a tool with the given name.
func NewBaseTool(name string) BaseTool {
	return BaseTool{name: name}
}

func (t *BaseTool) Name() string { return t.name }

func (t *BaseTool) OnLeftDown(x, y float64, keys Keys)    {}
func (t *BaseTool) OnLeftUp(x, y float64, keys Keys)      {}
func (t *BaseTool) OnRightDown(x, y float64, keys Keys)   {}
func (t *BaseTool) OnRightUp(x, y float64, keys Keys)     {}
func (t *BaseTool) OnMouseMove(x, y float64, keys Keys)   {}
func (t *BaseTool) OnMouseEnter(x, y float64, keys Keys)  {}
func (t *BaseTool) OnMouseLeave(x, y float64, keys Keys)  {}
func (t *BaseTool) OnDoubleClick(x, y float64, keys Keys) {}
func (t *BaseTool) OnRightClick(x, y float64, keys Keys)  {}
func (t *BaseTool) OnToolActivated()                      {}
func (t *BaseTool) OnToolDeactivated()                    {}

// ToolGroup is a named group of tools.
type ToolGroup struct {
	Name  string
	Tools []Tool
}

// ToolManager forwards pointer events to the active tool.
type ToolManager struct {
	groups      []ToolGroup
	defaultTool Tool
	active      Tool

	// An optional handler called after the active tool changed.
	changed func(tool Tool)
}

func newToolManager() *ToolManager {
	return &ToolManager{}
}

// AddGroup appends a group of tools.
func (m *ToolManager) AddGroup(name string, tools ...Tool) *ToolManager {
	m.groups = append(m.groups, ToolGroup{Name: name, Tools: tools})
	return m
}

// Groups returns the tool groups in the order they were added.
func (m *ToolManager) Groups() []ToolGroup {
	return m.groups
}

// ToolByName returns the first tool of any group with the given name, or nil.
func (m *ToolManager) ToolByName(name string) Tool {
	for _, group := range m.groups {
		for _, tool := range group.Tools {
			if tool.Name() == name {
				return tool
			}
		}
	}
	return nil
}

// SetDefaultTool sets the tool DeactivateTool returns to and activates it.
func (m *ToolManager) SetDefaultTool(tool Tool) *ToolManager {
	m.defaultTool = tool
	m.ActivateTool(tool)
	return m
}

// SetChangedFunc sets a handler called after the active tool changed.
func (m *ToolManager) SetChangedFunc(handler func(tool Tool)) *ToolManager {
	m.changed = handler
	return m
}

// ActiveTool returns the active tool, or nil.
func (m *ToolManager) ActiveTool() Tool {
	return m.active
}

// ActivateTool deactivates the current tool and activates tool.
func (m *ToolManager) ActivateTool(tool Tool) {
	if tool == nil || tool == m.active {
		return
	}
	if m.active != nil {
		m.active.OnToolDeactivated()
	}
	m.active = tool
	tool.OnToolActivated()
	Logger().Info("tool activated", "tool", tool.Name())
	if m.changed != nil {
		m.changed(tool)
	}
}

// DeactivateTool returns to the default tool.
func (m *ToolManager) DeactivateTool() {
	m.ActivateTool(m.defaultTool)
}

func (m *ToolManager) OnLeftDown(x, y float64, keys Keys) {
	if m.active != nil {
		m.active.OnLeftDown(x, y, keys)
	}
}

func (m *ToolManager) OnLeftUp(x, y float64, keys Keys) {
	if m.active != nil {
		m.active.OnLeftUp(x, y, keys)
	}
}

func (m *ToolManager) OnRightDown(x, y float64, keys Keys) {
	if m.active != nil {
		m.active.OnRightDown(x, y, keys)
	}
}

func (m *ToolManager) OnRightUp(x, y float64, keys Keys) {
	if m.active != nil {
		m.active.OnRightUp(x, y, keys)
	}
}

func (m *ToolManager) OnMouseMove(x, y float64, keys Keys) {
	if m.active != nil {
		m.active.OnMouseMove(x, y, keys)
	}
}

func (m *ToolManager) OnMouseEnter(x, y float64, keys Keys) {
	if m.active != nil {
		m.active.OnMouseEnter(x, y, keys)
	}
}

func (m *ToolManager) OnMouseLeave(x, y float64, keys Keys) {
	if m.active != nil {
		m.active.OnMouseLeave(x, y, keys)
	}
}

func (m *ToolManager) OnDoubleClick(x, y float64, keys Keys) {
	if m.active != nil {
		m.active.OnDoubleClick(x, y, keys)
	}
}

func (m *ToolManager) OnRightClick(x, y float64, keys Keys) {
	if m.active != nil {
		m.active.OnRightClick(x, y, keys)
	}
}
