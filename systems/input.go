package systems

import (
	"github.com/automoto/lovesme/components"
	"github.com/automoto/lovesme/systems/factory"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/yohamta/donburi/ecs"
)

// Reusable slice for touch IDs to avoid allocations
var touchIDs []ebiten.TouchID

// pluckKeys also count as a click so the flower works without a pointer
var pluckKeys = []ebiten.Key{ebiten.KeySpace, ebiten.KeyEnter}

// UpdateInput polls this tick's clicks into the Pointer component.
// Must run BEFORE UpdatePluck in the system order.
func UpdateInput(ecs *ecs.ECS) {
	pointer := getOrCreatePointer(ecs)
	pointer.Clicked = false

	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		pointer.Clicked = true
		pointer.X, pointer.Y = ebiten.CursorPosition()
		pointer.LastInputMethod = components.InputMouse
	}

	touchIDs = inpututil.AppendJustPressedTouchIDs(touchIDs[:0])
	if len(touchIDs) > 0 {
		pointer.Clicked = true
		pointer.X, pointer.Y = ebiten.TouchPosition(touchIDs[0])
		pointer.LastInputMethod = components.InputTouch
	}

	for _, key := range pluckKeys {
		if inpututil.IsKeyJustPressed(key) {
			pointer.Clicked = true
			pointer.LastInputMethod = components.InputKeyboard
		}
	}

	if inpututil.IsKeyJustPressed(ebiten.KeyF3) {
		settings := getOrCreateSettings(ecs)
		settings.Debug = !settings.Debug
	}
}

// getOrCreatePointer returns the singleton Pointer component
func getOrCreatePointer(ecs *ecs.ECS) *components.PointerData {
	entry, ok := components.Pointer.First(ecs.World)
	if !ok {
		entry = factory.CreatePointer(ecs)
	}
	return components.Pointer.Get(entry)
}

// getOrCreateSettings returns the singleton Settings component
func getOrCreateSettings(ecs *ecs.ECS) *components.SettingsData {
	entry, ok := components.Settings.First(ecs.World)
	if !ok {
		entry = factory.CreatePointer(ecs)
	}
	return components.Settings.Get(entry)
}
