package systems

import (
	"github.com/automoto/lovesme/components"
	cfg "github.com/automoto/lovesme/config"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi/ecs"
)

// Petal paths only change when the petal length does
var (
	petalOutline  *vector.Path
	petalVein     *vector.Path
	petalPathsLen float64
)

// DrawBackground clears the whole surface
func DrawBackground(ecs *ecs.ECS, screen *ebiten.Image) {
	screen.Fill(cfg.Flower.BackgroundColor)
}

// DrawStem strokes the stem below the flower center
func DrawStem(ecs *ecs.ECS, screen *ebiten.Image) {
	flower := getOrCreateFlower(ecs)
	strokePath(screen, StemPath(flower.CenterX, flower.CenterY), cfg.Flower.StemWidth, ebiten.GeoM{}, cfg.Flower.StemColor, 1)
}

// DrawAttachedPetals draws the petals still on the flower, in creation order
func DrawAttachedPetals(ecs *ecs.ECS, screen *ebiten.Image) {
	drawPetals(ecs, screen, components.PetalAttached)
}

// DrawCenter fills the center disc over the attached petal bases
func DrawCenter(ecs *ecs.ECS, screen *ebiten.Image) {
	flower := getOrCreateFlower(ecs)
	vector.FillCircle(screen,
		float32(flower.CenterX), float32(flower.CenterY),
		float32(cfg.Flower.CenterRadius),
		cfg.Flower.CenterColor, true)
}

// DrawFallingPetals draws plucked petals on top of the flower, in creation order
func DrawFallingPetals(ecs *ecs.ECS, screen *ebiten.Image) {
	drawPetals(ecs, screen, components.PetalFalling)
}

func drawPetals(ecs *ecs.ECS, screen *ebiten.Image, state components.PetalState) {
	flower := getOrCreateFlower(ecs)
	for _, entity := range flower.Petals {
		petal := components.Petal.Get(ecs.World.Entry(entity))
		if petal.State() != state {
			continue
		}
		DrawPetal(screen, petal)
	}
}

// DrawPetal renders one petal at its position, rotation, scale and opacity
func DrawPetal(screen *ebiten.Image, petal *components.PetalData) {
	if petal.Alpha <= 0 {
		return
	}

	length := cfg.Flower.PetalLength
	if petalOutline == nil || petalPathsLen != length {
		petalOutline = PetalOutline(length)
		petalVein = PetalVein(length)
		petalPathsLen = length
	}

	geo := PetalTransform(petal.X, petal.Y, petal.Rotation, petal.Scale)
	fillPath(screen, petalOutline, geo, cfg.Flower.PetalColor, petal.Alpha)
	strokePath(screen, petalVein, cfg.Flower.VeinWidth, geo, cfg.Flower.VeinColor, petal.Alpha)
}
