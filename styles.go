package grapheditor

// Theme defines the colors and sizes used when elements are initialized.
// Colors are CSS color strings (hex or named) interpreted by the Surface.
type Theme struct {
	SelectedColor      string  // Control boxes, control points and selection outlines.
	StageBackground    string  // Stage fill.
	StageBorder        string  // Stage outline.
	ShapeFill          string  // Default fill of basic shapes.
	ShapeStroke        string  // Default stroke of basic shapes.
	LabelText          string  // Default label text color.
	ControlPointRadius float64 // Radius of resize handles.
}

// Styles defines the theme for editors. Change it before creating elements.
var Styles = Theme{
	SelectedColor:      "#0000FF",
	StageBackground:    "#fefefe",
	StageBorder:        "black",
	ShapeFill:          "#d3d3d3",
	ShapeStroke:        "#a9a9a9",
	LabelText:          "black",
	ControlPointRadius: 4,
}
