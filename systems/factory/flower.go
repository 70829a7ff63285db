package factory

import (
	"github.com/automoto/lovesme/archetypes"
	"github.com/automoto/lovesme/components"
	cfg "github.com/automoto/lovesme/config"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreateViewport creates the drawing surface size singleton
func CreateViewport(ecs *ecs.ECS, width, height float64) *donburi.Entry {
	viewport := archetypes.Viewport.Spawn(ecs)
	components.Viewport.SetValue(viewport, components.ViewportData{
		Width:  width,
		Height: height,
	})
	return viewport
}

// CreateFlower creates the flower singleton centered in the given viewport.
// It holds no petals until the flower is initialised.
func CreateFlower(ecs *ecs.ECS, width, height float64) *donburi.Entry {
	flower := archetypes.Flower.Spawn(ecs)
	components.Flower.SetValue(flower, components.FlowerData{
		CenterX: width / 2,
		CenterY: height/2 - cfg.Flower.CenterLift,
	})
	return flower
}

// CreatePetal creates petal number index at the given angle.
// Phrases alternate by creation order.
func CreatePetal(ecs *ecs.ECS, index int, angle float64) *donburi.Entry {
	petal := archetypes.Petal.Spawn(ecs)
	components.Petal.SetValue(petal, components.PetalData{
		Index:       index,
		BaseAngle:   angle,
		PhraseIndex: index % 2,
		Scale:       1,
		Alpha:       1,
	})
	return petal
}
