package main

import (
	"flag"
	"log"

	cfg "github.com/automoto/lovesme/config"
	"github.com/automoto/lovesme/fonts"
	"github.com/automoto/lovesme/scenes"
	"github.com/hajimehoshi/ebiten/v2"
	"golang.org/x/image/font/gofont/goregular"
)

type Scene interface {
	Update()
	Draw(screen *ebiten.Image)
	Resize(width, height int)
}

type Game struct {
	width, height int
	scene         Scene
}

func NewGame(scene Scene) *Game {
	return &Game{scene: scene}
}

func (g *Game) Update() error {
	g.scene.Update()
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.scene.Draw(screen)
}

// Layout keeps the drawing surface the same size as the window
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	if outsideWidth != g.width || outsideHeight != g.height {
		g.width, g.height = outsideWidth, outsideHeight
		g.scene.Resize(outsideWidth, outsideHeight)
	}
	return outsideWidth, outsideHeight
}

func main() {
	petals := flag.Int("petals", cfg.Flower.PetalCount, "number of petals")
	width := flag.Int("width", cfg.C.Width, "initial window width")
	height := flag.Int("height", cfg.C.Height, "initial window height")
	configPath := flag.String("config", "", "YAML file overriding the built-in tuning")
	watch := flag.Bool("watch", false, "reload the -config file when it changes")
	debug := flag.Bool("debug", false, "show the debug overlay (toggle with F3)")
	flag.Parse()

	if *configPath != "" {
		f, err := cfg.LoadFile(*configPath)
		if err != nil {
			log.Fatal(err)
		}
		f.Apply()
	}

	// Flags win over the config file
	flag.Visit(func(fl *flag.Flag) {
		if fl.Name == "petals" {
			cfg.Flower.PetalCount = *petals
		}
	})
	if cfg.Flower.PetalCount < 1 {
		log.Fatalf("petal count must be at least 1, got %d", cfg.Flower.PetalCount)
	}
	cfg.C.Width, cfg.C.Height = *width, *height
	if err := cfg.C.Validate(); err != nil {
		log.Fatal(err)
	}
	cfg.Debug.Overlay = *debug

	if err := fonts.LoadFontWithSize(fonts.Phrase, goregular.TTF, cfg.Text.FontSize); err != nil {
		log.Fatal(err)
	}

	var watcher *cfg.Watcher
	if *watch {
		if *configPath == "" {
			log.Fatal("-watch requires -config")
		}
		w, err := cfg.NewWatcher(*configPath)
		if err != nil {
			log.Fatalf("Failed to watch config: %v", err)
		}
		defer w.Close()
		watcher = w
	}

	// Timers and transitions advance by Timing.Tick per update
	ebiten.SetTPS(cfg.Timing.TPS())
	ebiten.SetWindowSize(cfg.C.Width, cfg.C.Height)
	ebiten.SetWindowTitle(cfg.C.Title)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)

	if err := ebiten.RunGame(NewGame(scenes.NewFlowerScene(watcher))); err != nil {
		log.Fatal(err)
	}
}
