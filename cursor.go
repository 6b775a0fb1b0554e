package grapheditor

// Cursor names a pointer cursor style. The values match the CSS cursor
// keywords so hosts that render real cursors can pass them through.
type Cursor string

// General.
const (
	CursorDefault Cursor = "default"
	CursorNone    Cursor = "none"
)

// Links and status.
const (
	CursorContextMenu Cursor = "context-menu"
	CursorHelp        Cursor = "help"
	CursorPointer     Cursor = "pointer"
	CursorProgress    Cursor = "progress"
	CursorWait        Cursor = "wait"
)

// Selection.
const (
	CursorCell         Cursor = "cell"
	CursorCrosshair    Cursor = "crosshair"
	CursorText         Cursor = "text"
	CursorVerticalText Cursor = "vertical-text"
)

// Drag and drop.
const (
	CursorAlias      Cursor = "alias"
	CursorCopy       Cursor = "copy"
	CursorMove       Cursor = "move"
	CursorNoDrop     Cursor = "no-drop"
	CursorNotAllowed Cursor = "not-allowed"
	CursorGrab       Cursor = "grab"
	CursorGrabbing   Cursor = "grabbing"
)

// Resizing and scrolling.
const (
	CursorAllScroll  Cursor = "all-scroll"
	CursorColResize  Cursor = "col-resize"
	CursorRowResize  Cursor = "row-resize"
	CursorNResize    Cursor = "n-resize"
	CursorEResize    Cursor = "e-resize"
	CursorWResize    Cursor = "w-resize"
	CursorSResize    Cursor = "s-resize"
	CursorNEResize   Cursor = "ne-resize"
	CursorNWResize   Cursor = "nw-resize"
	CursorSEResize   Cursor = "se-resize"
	CursorSWResize   Cursor = "sw-resize"
	CursorEWResize   Cursor = "ew-resize"
	CursorNSResize   Cursor = "ns-resize"
	CursorNESWResize Cursor = "nesw-resize"
	CursorNWSEResize Cursor = "nwse-resize"
)

// Zooming.
const (
	CursorZoomIn  Cursor = "zoom-in"
	CursorZoomOut Cursor = "zoom-out"
)
