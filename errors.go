package grapheditor

import "errors"

var (
	// ErrNoParent is raised when an element other than the root stage is
	// constructed without a parent stage.
	ErrNoParent = errors.New("grapheditor: parent can only be nil for the root stage")

	// ErrNotImplemented is raised by placeholder element types.
	ErrNotImplemented = errors.New("grapheditor: not implemented")

	// ErrUnknownCursorRole is raised when a control point carries a role
	// outside of the enumerated set.
	ErrUnknownCursorRole = errors.New("grapheditor: no such cursor role")
)
