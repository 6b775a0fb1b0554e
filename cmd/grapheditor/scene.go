package main

import (
	"fmt"

	"github.com/ayn2op/grapheditor"
)

// buildScene adds the demo elements to stage.
func buildScene(stage *grapheditor.Stage) {
	plain := grapheditor.NewRect(stage, 40, 40, 160, 100)
	stage.AddElement(plain)

	gradient := grapheditor.NewRect(stage, 260, 60, 200, 120,
		grapheditor.WithGradient(grapheditor.GradientLeftToRight,
			grapheditor.ColorStop{Offset: 0, Color: "#4f8cc9"},
			grapheditor.ColorStop{Offset: 1, Color: "#c94f7c"},
		),
		grapheditor.WithStroke("#333333", 2),
		grapheditor.WithSizeLimits(grapheditor.SizeLimits{MinWidth: 40, MinHeight: 30, MaxWidth: 400, MaxHeight: 300}),
	)
	stage.AddElement(gradient)

	radial := grapheditor.NewRect(stage, 120, 220, 140, 140,
		grapheditor.WithGradient(grapheditor.GradientCenterOut,
			grapheditor.ColorStop{Offset: 0, Color: "white"},
			grapheditor.ColorStop{Offset: 1, Color: "teal"},
		),
		grapheditor.WithLineDash(0, 6, 4),
		grapheditor.WithShadow(grapheditor.Shadow{Color: "#888888", OffsetX: 6, OffsetY: 6}),
	)
	stage.AddElement(radial)

	caption := grapheditor.NewAttachedLabel(gradient,
		grapheditor.BoundingBox{X: 300, Y: 220, Width: 120, Height: 30},
		grapheditor.WithText("gradient"),
		grapheditor.WithFont(grapheditor.Font{Size: 16}),
	)
	stage.AddElement(caption)

	counter := 0
	note := grapheditor.NewLabel(stage,
		grapheditor.BoundingBox{X: 500, Y: 300, Width: 160, Height: 40},
		grapheditor.WithText("double click me"),
		grapheditor.WithAutoResize(grapheditor.SizeLimits{MinWidth: 60, MinHeight: 20, MaxWidth: 300}),
	)
	note.SetActionFunc(func(label *grapheditor.Label, x, y float64) {
		counter++
		label.SetText(fmt.Sprintf("clicked %d times", counter))
	})
	stage.AddElement(note)
}
