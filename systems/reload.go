package systems

import (
	"log"

	cfg "github.com/automoto/lovesme/config"
	"github.com/automoto/lovesme/fonts"
	"github.com/yohamta/donburi/ecs"
)

// NewUpdateConfigReload returns a system that applies config file changes
// reported by w. Everything applies on the next tick except petal ring
// positions and petal count, which follow at the next regrowth. The tick
// length is fixed at startup.
func NewUpdateConfigReload(w *cfg.Watcher) func(*ecs.ECS) {
	return func(e *ecs.ECS) {
		select {
		case path, ok := <-w.Events:
			if !ok {
				return
			}
			ReloadConfig(path)
		case err, ok := <-w.Errors:
			if ok {
				log.Printf("Warning: config watcher: %v", err)
			}
		default:
		}
	}
}

// ReloadConfig loads and applies path, keeping the current configuration
// when the file is invalid
func ReloadConfig(path string) bool {
	f, err := cfg.LoadFile(path)
	if err != nil {
		log.Printf("Warning: Could not reload config: %v", err)
		return false
	}
	prevFontSize := cfg.Text.FontSize
	f.Apply()
	if cfg.Text.FontSize != prevFontSize {
		if err := fonts.Phrase.Resize(cfg.Text.FontSize); err != nil {
			log.Printf("Warning: Could not resize phrase font: %v", err)
		}
	}
	log.Printf("Reloaded config from %s", path)
	return true
}
