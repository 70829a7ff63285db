package systems

import (
	"math"
	"math/rand"
	"time"

	"github.com/automoto/lovesme/components"
	cfg "github.com/automoto/lovesme/config"
	"github.com/automoto/lovesme/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

var rng = rand.New(rand.NewSource(time.Now().UnixNano()))

// ResetPetal puts a petal back on the flower ring at its base angle
func ResetPetal(petal *components.PetalData, flower *components.FlowerData) {
	ring := cfg.Flower.CenterRadius + cfg.Flower.PetalOffset
	petal.X = flower.CenterX + math.Cos(petal.BaseAngle)*ring
	petal.Y = flower.CenterY + math.Sin(petal.BaseAngle)*ring
	petal.Rotation = petal.BaseAngle + math.Pi/2
	petal.Scale = 1
	petal.Alpha = 1
	petal.Fall = nil
}

// PluckPetal detaches a petal and launches it outward with a small hop.
// Callers must only pluck attached petals; plucking a falling petal
// re-randomizes its velocity.
func PluckPetal(petal *components.PetalData, r *rand.Rand) {
	petal.Fall = &components.FallData{
		VX:   math.Cos(petal.BaseAngle)*cfg.Petal.LaunchSpeedX + (r.Float64()-0.5)*cfg.Petal.LaunchJitterX,
		VY:   cfg.Petal.LaunchSpeedY,
		VRot: (r.Float64() - 0.5) * cfg.Petal.SpinJitter,
	}
}

// StepPetal advances a falling petal by one tick. Attached petals are left alone.
func StepPetal(petal *components.PetalData, viewportHeight float64) {
	fall := petal.Fall
	if fall == nil {
		return
	}

	fall.VY += cfg.Petal.Gravity
	fall.VX *= cfg.Petal.Drag
	petal.X += fall.VX
	petal.Y += fall.VY
	petal.Rotation += fall.VRot
	petal.Scale = math.Max(cfg.Petal.MinScale, petal.Scale*cfg.Petal.Shrink)

	// Fade only once well below the bottom edge
	if petal.Y > viewportHeight+cfg.Petal.FadeMargin {
		petal.Alpha = math.Max(0, petal.Alpha-cfg.Petal.FadeRate)
	}
}

// UpdatePetals advances every falling petal exactly once
func UpdatePetals(ecs *ecs.ECS) {
	viewport := getOrCreateViewport(ecs)
	tags.Petal.Each(ecs.World, func(e *donburi.Entry) {
		StepPetal(components.Petal.Get(e), viewport.Height)
	})
}
