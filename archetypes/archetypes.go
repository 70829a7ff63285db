package archetypes

import (
	"github.com/automoto/lovesme/components"
	cfg "github.com/automoto/lovesme/config"
	"github.com/automoto/lovesme/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

var (
	Petal = newArchetype(
		tags.Petal,
		components.Petal,
	)
	Flower = newArchetype(
		tags.Flower,
		components.Flower,
	)
	Viewport = newArchetype(
		components.Viewport,
	)
	TextDisplay = newArchetype(
		components.TextDisplay,
	)
	Scheduler = newArchetype(
		components.Scheduler,
	)
	Pointer = newArchetype(
		components.Pointer,
		components.Settings,
	)
)

type archetype struct {
	components []donburi.IComponentType
}

func newArchetype(cs ...donburi.IComponentType) *archetype {
	return &archetype{
		components: cs,
	}
}

func (a *archetype) Spawn(ecs *ecs.ECS, cs ...donburi.IComponentType) *donburi.Entry {
	e := ecs.World.Entry(ecs.Create(
		cfg.Default,
		append(a.components, cs...)...,
	))
	return e
}
