package systems

import (
	"testing"

	"github.com/automoto/lovesme/components"
	cfg "github.com/automoto/lovesme/config"
	"github.com/automoto/lovesme/systems/factory"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

const (
	testWidth  = 800
	testHeight = 600
)

// newTestECS builds the flower scene's world without a window
func newTestECS(t *testing.T) *ecs.ECS {
	t.Helper()
	e := ecs.NewECS(donburi.NewWorld())
	factory.CreateViewport(e, testWidth, testHeight)
	factory.CreateFlower(e, testWidth, testHeight)
	factory.CreateTextDisplay(e)
	factory.CreateScheduler(e)
	factory.CreatePointer(e)
	InitFlower(e)
	return e
}

// withPetalCount overrides the petal count for the duration of the test
func withPetalCount(t *testing.T, n int) {
	t.Helper()
	prev := cfg.Flower.PetalCount
	cfg.Flower.PetalCount = n
	t.Cleanup(func() { cfg.Flower.PetalCount = prev })
}

// tick runs the update systems that do not read devices, n times
func tick(e *ecs.ECS, n int) {
	for i := 0; i < n; i++ {
		UpdateScheduler(e)
		UpdatePetals(e)
		UpdateText(e)
	}
}

// ticksFor returns how many ticks cover d seconds of scheduler time
func ticksFor(seconds float64) int {
	return int(seconds/cfg.Timing.Tick.Seconds()) + 1
}

func flowerOf(e *ecs.ECS) *components.FlowerData {
	return getOrCreateFlower(e)
}

func petalAt(e *ecs.ECS, i int) *components.PetalData {
	return components.Petal.Get(e.World.Entry(flowerOf(e).Petals[i]))
}

func textOf(e *ecs.ECS) *components.TextDisplayData {
	return getOrCreateTextDisplay(e)
}

// checkCounter verifies the attached counter matches the petal states
func checkCounter(t *testing.T, e *ecs.ECS) {
	t.Helper()
	flower := flowerOf(e)
	attached, falling := PetalCounts(e)
	if flower.Attached != attached {
		t.Errorf("attached counter = %d, but %d petals are attached", flower.Attached, attached)
	}
	if flower.Attached != len(flower.Petals)-falling {
		t.Errorf("attached counter = %d, want total %d - falling %d", flower.Attached, len(flower.Petals), falling)
	}
	if flower.Attached < 0 {
		t.Errorf("attached counter went negative: %d", flower.Attached)
	}
}
