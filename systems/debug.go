package systems

import (
	"fmt"

	cfg "github.com/automoto/lovesme/config"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi/ecs"
)

const (
	debugMargin = 8
	debugWidth  = 190
	debugHeight = 100
)

func DrawDebug(ecs *ecs.ECS, screen *ebiten.Image) {
	settings := getOrCreateSettings(ecs)
	if !settings.Debug {
		return
	}

	flower := getOrCreateFlower(ecs)
	attached, falling := PetalCounts(ecs)
	viewport := getOrCreateViewport(ecs)

	vector.FillRect(screen, debugMargin, debugMargin, debugWidth, debugHeight, cfg.DebugOverlay, false)
	msg := fmt.Sprintf("TPS %0.1f  FPS %0.1f\nviewport %.0fx%.0f\nattached %d/%d  falling %d\ncounter %d  result %t\ntimers %d",
		ebiten.ActualTPS(), ebiten.ActualFPS(),
		viewport.Width, viewport.Height,
		attached, len(flower.Petals), falling,
		flower.Attached, flower.ResultShown,
		PendingTimers(ecs),
	)
	ebitenutil.DebugPrintAt(screen, msg, debugMargin*2, debugMargin*2)
}
