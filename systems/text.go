package systems

import (
	"math"

	"github.com/automoto/lovesme/components"
	cfg "github.com/automoto/lovesme/config"
	"github.com/automoto/lovesme/fonts"
	"github.com/automoto/lovesme/systems/factory"
	"github.com/charmbracelet/harmonica"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text" //nolint:staticcheck // TODO: migrate to text/v2
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
	"github.com/yohamta/donburi/ecs"
	"golang.org/x/image/font"
)

const scaleSettleThreshold = 1e-3

// Cached font face for phrase rendering (lazy initialized, refreshed when the size changes)
var (
	phraseFontFace font.Face
	phraseFontSize float64
)

var textDrawOp = &ebiten.DrawImageOptions{}

// ShowText displays a phrase: fades in and slides back to its resting place
func ShowText(ecs *ecs.ECS, phrase string) {
	t := getOrCreateTextDisplay(ecs)
	t.Content = phrase
	fadeTextTo(t, 1)
	offsetTextTo(t, 0)
}

// HideText fades the phrase out and drops it by the hidden offset.
// The content is kept so it stays visible while fading.
func HideText(ecs *ecs.ECS) {
	t := getOrCreateTextDisplay(ecs)
	fadeTextTo(t, 0)
	offsetTextTo(t, cfg.Text.HiddenOffset)
}

// ShowResult displays the final phrase fully opaque, in the accent color and enlarged
func ShowResult(ecs *ecs.ECS, phrase string) {
	t := getOrCreateTextDisplay(ecs)
	t.Content = phrase
	t.Color = cfg.Text.AccentColor
	fadeTextTo(t, 1)
	scaleTextTo(t, cfg.Text.EmphasisScale)
}

// ResetTextColor returns the phrase to the neutral color
func ResetTextColor(ecs *ecs.ECS) {
	getOrCreateTextDisplay(ecs).Color = cfg.Text.NeutralColor
}

// fadeTextTo starts an opacity transition from the current value
func fadeTextTo(t *components.TextDisplayData, target float64) {
	t.TargetOpacity = target
	t.OpacityTween = gween.New(float32(t.Opacity), float32(target), float32(cfg.Text.TransitionTime), ease.OutQuad)
}

// offsetTextTo replaces the transform with a vertical offset, dropping any scale
func offsetTextTo(t *components.TextDisplayData, target float64) {
	t.TargetOffsetY = target
	t.OffsetTween = gween.New(float32(t.OffsetY), float32(target), float32(cfg.Text.TransitionTime), ease.OutQuad)
	t.TargetScale = 1
}

// scaleTextTo replaces the transform with a scale, dropping any offset
func scaleTextTo(t *components.TextDisplayData, target float64) {
	offsetTextTo(t, 0)
	t.TargetScale = target
}

// UpdateText advances the text transitions by one tick
func UpdateText(ecs *ecs.ECS) {
	t := getOrCreateTextDisplay(ecs)
	dt := float32(cfg.Timing.Tick.Seconds())

	if t.OpacityTween != nil {
		v, done := t.OpacityTween.Update(dt)
		t.Opacity = float64(v)
		if done {
			t.Opacity = t.TargetOpacity
			t.OpacityTween = nil
		}
	}

	if t.OffsetTween != nil {
		v, done := t.OffsetTween.Update(dt)
		t.OffsetY = float64(v)
		if done {
			t.OffsetY = t.TargetOffsetY
			t.OffsetTween = nil
		}
	}

	if t.Scale != t.TargetScale || t.ScaleVel != 0 {
		spring := harmonica.NewSpring(cfg.Timing.Tick.Seconds(), cfg.Text.SpringFreq, cfg.Text.SpringDamping)
		t.Scale, t.ScaleVel = spring.Update(t.Scale, t.ScaleVel, t.TargetScale)
		if math.Abs(t.Scale-t.TargetScale) < scaleSettleThreshold && math.Abs(t.ScaleVel) < scaleSettleThreshold {
			t.Scale = t.TargetScale
			t.ScaleVel = 0
		}
	}
}

// DrawText renders the phrase centered below the stem
func DrawText(ecs *ecs.ECS, screen *ebiten.Image) {
	t := getOrCreateTextDisplay(ecs)
	if t.Content == "" || t.Opacity <= 0 {
		return
	}

	// Lazy initialize cached font face
	if phraseFontFace == nil || phraseFontSize != cfg.Text.FontSize {
		phraseFontFace = fonts.Phrase.Get()
		phraseFontSize = cfg.Text.FontSize
	}

	flower := getOrCreateFlower(ecs)
	viewport := getOrCreateViewport(ecs)

	bounds := text.BoundString(phraseFontFace, t.Content) //nolint:staticcheck // TODO: migrate to text/v2
	halfW := float64(bounds.Min.X) + float64(bounds.Dx())/2
	halfH := float64(bounds.Min.Y) + float64(bounds.Dy())/2

	x := viewport.Width / 2
	y := flower.CenterY + cfg.Flower.StemHeight + cfg.Text.MarginY + t.OffsetY

	textDrawOp.GeoM.Reset()
	textDrawOp.GeoM.Translate(-halfW, -halfH)
	textDrawOp.GeoM.Scale(t.Scale, t.Scale)
	textDrawOp.GeoM.Translate(x, y)
	textDrawOp.ColorScale.Reset()
	textDrawOp.ColorScale.ScaleWithColor(t.Color)
	textDrawOp.ColorScale.ScaleAlpha(float32(t.Opacity))
	text.DrawWithOptions(screen, t.Content, phraseFontFace, textDrawOp) //nolint:staticcheck // TODO: migrate to text/v2
}

// getOrCreateTextDisplay returns the singleton TextDisplay component
func getOrCreateTextDisplay(ecs *ecs.ECS) *components.TextDisplayData {
	entry, ok := components.TextDisplay.First(ecs.World)
	if !ok {
		entry = factory.CreateTextDisplay(ecs)
	}
	return components.TextDisplay.Get(entry)
}
