package factory

import (
	"github.com/automoto/lovesme/archetypes"
	"github.com/automoto/lovesme/components"
	cfg "github.com/automoto/lovesme/config"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreateTextDisplay creates the phrase display, hidden and in the neutral color
func CreateTextDisplay(ecs *ecs.ECS) *donburi.Entry {
	text := archetypes.TextDisplay.Spawn(ecs)
	components.TextDisplay.SetValue(text, components.TextDisplayData{
		Color:         cfg.Text.NeutralColor,
		Opacity:       0,
		OffsetY:       cfg.Text.HiddenOffset,
		Scale:         1,
		TargetOpacity: 0,
		TargetOffsetY: cfg.Text.HiddenOffset,
		TargetScale:   1,
	})
	return text
}

// CreateScheduler creates the deferred callback clock
func CreateScheduler(ecs *ecs.ECS) *donburi.Entry {
	scheduler := archetypes.Scheduler.Spawn(ecs)
	components.Scheduler.SetValue(scheduler, components.SchedulerData{})
	return scheduler
}

// CreatePointer creates the input state singleton
func CreatePointer(ecs *ecs.ECS) *donburi.Entry {
	pointer := archetypes.Pointer.Spawn(ecs)
	components.Settings.SetValue(pointer, components.SettingsData{
		Debug: cfg.Debug.Overlay,
	})
	return pointer
}
