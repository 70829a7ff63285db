package components

import "github.com/yohamta/donburi"

// InputMethod is the device that produced the last click
type InputMethod int

const (
	InputMouse InputMethod = iota
	InputTouch
	InputKeyboard
)

// PointerData stores this tick's pointer click.
// Clicked is reset every tick by UpdateInput.
type PointerData struct {
	Clicked         bool
	X, Y            int
	LastInputMethod InputMethod
}

var Pointer = donburi.NewComponentType[PointerData]()

// SettingsData holds runtime toggles
type SettingsData struct {
	Debug bool
}

var Settings = donburi.NewComponentType[SettingsData]()
