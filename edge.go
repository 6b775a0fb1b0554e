package grapheditor

// Edge will connect two nodes. It is not implemented yet: every drawing and
// hit-testing method panics with ErrNotImplemented.
type Edge struct {
	BaseElement
}

// NewEdge returns an edge on parent.
func NewEdge(parent *Stage) *Edge {
	return &Edge{BaseElement: NewBaseElement(parent)}
}

func (e *Edge) Draw(Surface) {
	panic(ErrNotImplemented)
}

func (e *Edge) BoundingBox() BoundingBox {
	panic(ErrNotImplemented)
}

func (e *Edge) ElementUnderPosition(float64, float64) Element {
	panic(ErrNotImplemented)
}
