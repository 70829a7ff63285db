package components

import (
	"image/color"

	"github.com/tanema/gween"
	"github.com/yohamta/donburi"
)

// TextDisplayData is the phrase display element. The pluck handler sets the
// targets; UpdateText eases the current values toward them.
type TextDisplayData struct {
	Content string
	Color   color.RGBA

	Opacity float64
	OffsetY float64 // Positive is downward
	Scale   float64

	TargetOpacity float64
	TargetOffsetY float64
	TargetScale   float64

	OpacityTween *gween.Tween // nil once settled
	OffsetTween  *gween.Tween
	ScaleVel     float64 // spring velocity
}

var TextDisplay = donburi.NewComponentType[TextDisplayData]()
