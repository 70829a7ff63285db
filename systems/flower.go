package systems

import (
	"math"

	"github.com/automoto/lovesme/components"
	cfg "github.com/automoto/lovesme/config"
	"github.com/automoto/lovesme/systems/factory"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// InitFlower rebuilds every petal attached and evenly spaced, refills the
// attached counter, clears the result guard and resets the text color.
// Runs at startup and again after each final reveal.
func InitFlower(ecs *ecs.ECS) {
	flower := getOrCreateFlower(ecs)
	for _, entity := range flower.Petals {
		if ecs.World.Valid(entity) {
			ecs.World.Remove(entity)
		}
	}

	count := cfg.Flower.PetalCount
	angleStep := 2 * math.Pi / float64(count)
	petals := make([]donburi.Entity, 0, count)
	for i := 0; i < count; i++ {
		petals = append(petals, factory.CreatePetal(ecs, i, angleStep*float64(i)).Entity())
	}

	// Re-fetch after spawning
	flower = getOrCreateFlower(ecs)
	flower.Petals = petals
	for _, entity := range petals {
		ResetPetal(components.Petal.Get(ecs.World.Entry(entity)), flower)
	}
	flower.Attached = count
	flower.ResultShown = false

	ResetTextColor(ecs)
}

// PetalCounts returns how many petals are attached and how many are falling
func PetalCounts(ecs *ecs.ECS) (attached, falling int) {
	flower := getOrCreateFlower(ecs)
	for _, entity := range flower.Petals {
		if components.Petal.Get(ecs.World.Entry(entity)).State() == components.PetalAttached {
			attached++
		} else {
			falling++
		}
	}
	return attached, falling
}

// getOrCreateFlower returns the singleton Flower component, centering a new
// flower in the current viewport
func getOrCreateFlower(ecs *ecs.ECS) *components.FlowerData {
	entry, ok := components.Flower.First(ecs.World)
	if !ok {
		viewport := getOrCreateViewport(ecs)
		entry = factory.CreateFlower(ecs, viewport.Width, viewport.Height)
	}
	return components.Flower.Get(entry)
}

// getOrCreateViewport returns the singleton Viewport component
func getOrCreateViewport(ecs *ecs.ECS) *components.ViewportData {
	entry, ok := components.Viewport.First(ecs.World)
	if !ok {
		entry = factory.CreateViewport(ecs, float64(cfg.C.Width), float64(cfg.C.Height))
	}
	return components.Viewport.Get(entry)
}

// SetViewport records a new drawing surface size. The flower center is not moved.
func SetViewport(ecs *ecs.ECS, width, height int) {
	viewport := getOrCreateViewport(ecs)
	viewport.Width = float64(width)
	viewport.Height = float64(height)
}
