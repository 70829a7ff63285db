package systems

import (
	"github.com/automoto/lovesme/components"
	cfg "github.com/automoto/lovesme/config"
	"github.com/yohamta/donburi/ecs"
)

// UpdatePluck plucks a petal for every accepted click
func UpdatePluck(ecs *ecs.ECS) {
	if getOrCreatePointer(ecs).Clicked {
		Pluck(ecs)
	}
}

// Pluck detaches the first attached petal in creation order and shows its
// phrase. Plucking the last petal schedules the final reveal and the
// regrowth. Returns false without changing anything when no petal is
// attached or the result is already showing.
func Pluck(e *ecs.ECS) bool {
	flower := getOrCreateFlower(e)
	if flower.Attached <= 0 || flower.ResultShown {
		return false
	}

	var petal *components.PetalData
	for _, entity := range flower.Petals {
		p := components.Petal.Get(e.World.Entry(entity))
		if p.State() == components.PetalAttached {
			petal = p
			break
		}
	}
	if petal == nil {
		return false
	}

	PluckPetal(petal, rng)
	flower.Attached--
	last := flower.Attached == 0
	if last {
		flower.ResultShown = true
	}

	phrase := cfg.Text.Phrases[petal.PhraseIndex]
	ShowText(e, phrase)
	// Not cancelled by later plucks: a quick second click can have its
	// phrase hidden early by this timer.
	After(e, cfg.Timing.HideDelay, HideText)

	if last {
		After(e, cfg.Timing.RevealDelay, func(e *ecs.ECS) {
			ShowResult(e, phrase+cfg.Text.ResultSuffix)
			After(e, cfg.Timing.ResetDelay, InitFlower)
		})
	}
	return true
}
