package scenes

import (
	"sync"

	cfg "github.com/automoto/lovesme/config"
	"github.com/automoto/lovesme/systems"
	"github.com/automoto/lovesme/systems/factory"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// FlowerScene is the whole animation: one flower, its petals and the phrase display
type FlowerScene struct {
	ecs     *ecs.ECS
	watcher *cfg.Watcher
	once    sync.Once

	width, height int
}

// NewFlowerScene creates the scene. watcher may be nil.
func NewFlowerScene(watcher *cfg.Watcher) *FlowerScene {
	return &FlowerScene{
		watcher: watcher,
		width:   cfg.C.Width,
		height:  cfg.C.Height,
	}
}

func (fs *FlowerScene) Update() {
	fs.once.Do(fs.configure)
	fs.ecs.Update()
}

func (fs *FlowerScene) Draw(screen *ebiten.Image) {
	if fs.ecs == nil {
		screen.Fill(cfg.Flower.BackgroundColor)
		return
	}
	fs.ecs.Draw(screen)
}

// Resize follows the window size. The flower keeps the center it was created with.
func (fs *FlowerScene) Resize(width, height int) {
	fs.width, fs.height = width, height
	if fs.ecs != nil {
		systems.SetViewport(fs.ecs, width, height)
	}
}

func (fs *FlowerScene) configure() {
	fs.ecs = ecs.NewECS(donburi.NewWorld())

	// Input first so a click is handled on the tick it happens
	fs.ecs.AddSystem(systems.UpdateInput)
	if fs.watcher != nil {
		fs.ecs.AddSystem(systems.NewUpdateConfigReload(fs.watcher))
	}
	fs.ecs.AddSystem(systems.UpdatePluck)
	fs.ecs.AddSystem(systems.UpdateScheduler)
	fs.ecs.AddSystem(systems.UpdatePetals)
	fs.ecs.AddSystem(systems.UpdateText)

	// Renderers run in registration order: this is the z-order
	fs.ecs.AddRenderer(cfg.Default, systems.DrawBackground)
	fs.ecs.AddRenderer(cfg.Default, systems.DrawStem)
	fs.ecs.AddRenderer(cfg.Default, systems.DrawAttachedPetals)
	fs.ecs.AddRenderer(cfg.Default, systems.DrawCenter)
	fs.ecs.AddRenderer(cfg.Default, systems.DrawFallingPetals)
	fs.ecs.AddRenderer(cfg.Default, systems.DrawText)
	fs.ecs.AddRenderer(cfg.Default, systems.DrawDebug)

	factory.CreateViewport(fs.ecs, float64(fs.width), float64(fs.height))
	factory.CreateFlower(fs.ecs, float64(fs.width), float64(fs.height))
	factory.CreateTextDisplay(fs.ecs)
	factory.CreateScheduler(fs.ecs)
	factory.CreatePointer(fs.ecs)

	systems.InitFlower(fs.ecs)
}
