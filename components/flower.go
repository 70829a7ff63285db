package components

import "github.com/yohamta/donburi"

// FlowerData is the singleton animation state: the ordered petals, how many
// are still attached, and whether the final result is on screen.
type FlowerData struct {
	// Center is computed once from the viewport when the flower is created
	// and is not moved by later resizes.
	CenterX, CenterY float64

	Petals      []donburi.Entity // creation order
	Attached    int
	ResultShown bool
}

var Flower = donburi.NewComponentType[FlowerData]()

// ViewportData is the current size of the drawing surface
type ViewportData struct {
	Width, Height float64
}

var Viewport = donburi.NewComponentType[ViewportData]()
