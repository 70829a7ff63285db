package config

import (
	"fmt"
	"image/color"
	"time"

	"github.com/yohamta/donburi/ecs"
	"golang.org/x/image/colornames"
)

// Default is the only render layer; draw order comes from renderer registration order.
const Default ecs.LayerID = iota

// FlowerConfig contains the flower geometry and palette
type FlowerConfig struct {
	PetalCount   int     `yaml:"petalCount"`
	CenterRadius float64 `yaml:"centerRadius"`
	PetalLength  float64 `yaml:"petalLength"`
	PetalOffset  float64 `yaml:"petalOffset"` // Gap between the center disc edge and the petal base

	StemHeight float64 `yaml:"stemHeight"`
	StemCurve  float64 `yaml:"stemCurve"` // Horizontal pull of the stem's control point
	StemWidth  float64 `yaml:"stemWidth"`

	// CenterLift raises the flower center above the middle of the viewport
	CenterLift float64 `yaml:"centerLift"`

	// Colors
	BackgroundColor color.RGBA `yaml:"-"`
	StemColor       color.RGBA `yaml:"-"`
	CenterColor     color.RGBA `yaml:"-"`
	PetalColor      color.RGBA `yaml:"-"`
	VeinColor       color.RGBA `yaml:"-"`
	VeinWidth       float64    `yaml:"veinWidth"`
}

// PetalPhysicsConfig contains the falling petal tuning. All rates are per tick.
type PetalPhysicsConfig struct {
	LaunchSpeedX  float64 `yaml:"launchSpeedX"`  // Scaled by cos(angle)
	LaunchJitterX float64 `yaml:"launchJitterX"` // Full width of the random horizontal perturbation
	LaunchSpeedY  float64 `yaml:"launchSpeedY"`  // Negative is upward
	SpinJitter    float64 `yaml:"spinJitter"`    // Full width of the random rotational velocity

	Gravity  float64 `yaml:"gravity"`
	Drag     float64 `yaml:"drag"`   // Horizontal velocity multiplier
	Shrink   float64 `yaml:"shrink"` // Scale multiplier
	MinScale float64 `yaml:"minScale"`

	FadeMargin float64 `yaml:"fadeMargin"` // Pixels below the viewport before fading starts
	FadeRate   float64 `yaml:"fadeRate"`
}

// TextConfig contains the phrase display configuration
type TextConfig struct {
	Phrases      []string `yaml:"phrases"`
	ResultSuffix string   `yaml:"resultSuffix"`

	NeutralColor color.RGBA `yaml:"-"`
	AccentColor  color.RGBA `yaml:"-"`

	HiddenOffset   float64 `yaml:"hiddenOffset"`   // Downward offset while hidden
	EmphasisScale  float64 `yaml:"emphasisScale"`  // Scale of the final result
	TransitionTime float64 `yaml:"transitionTime"` // Seconds for opacity/offset transitions
	SpringFreq     float64 `yaml:"springFreq"`     // Angular frequency of the scale spring
	SpringDamping  float64 `yaml:"springDamping"`

	FontSize float64 `yaml:"fontSize"`
	MarginY  float64 `yaml:"marginY"` // Distance below the stem tip
}

// TimingConfig contains the tick length and the deferred text/reset delays.
// Tick is not read from config files: it must match the rate Ebiten runs
// Update at, see TPS.
type TimingConfig struct {
	Tick        time.Duration `yaml:"-"`
	HideDelay   time.Duration `yaml:"hideDelay"`
	RevealDelay time.Duration `yaml:"revealDelay"`
	ResetDelay  time.Duration `yaml:"resetDelay"`
}

// TPS returns the number of updates per second that makes one update last Tick
func (t TimingConfig) TPS() int {
	return int(time.Second / t.Tick)
}

// Config holds general window configuration
type Config struct {
	Width  int
	Height int
	Title  string
}

// Validate checks the window size
func (c *Config) Validate() error {
	if c.Width <= 0 || c.Height <= 0 {
		return fmt.Errorf("window size must be positive, got %dx%d", c.Width, c.Height)
	}
	return nil
}

// DebugConfig contains debug command-line options
type DebugConfig struct {
	Overlay bool // Show the debug overlay at startup
}

// Global configuration instances
var C *Config
var Flower FlowerConfig
var Petal PetalPhysicsConfig
var Text TextConfig
var Timing TimingConfig
var Debug DebugConfig

// Shared RGBA color constants
var (
	White        = color.RGBA{R: 255, G: 255, B: 255, A: 255}
	Charcoal     = color.RGBA{R: 0x4a, G: 0x4a, B: 0x4a, A: 255}
	Blush        = color.RGBA{R: 253, G: 232, B: 239, A: 255}
	PetalWhite   = color.RGBA{R: 255, G: 255, B: 255, A: 230} // 0.9 alpha
	VeinBlue     = color.RGBA{R: 240, G: 240, B: 255, A: 178} // 0.7 alpha
	DebugOverlay = color.RGBA{R: 0, G: 0, B: 0, A: 140}
)

func init() {
	C = &Config{
		Width:  800,
		Height: 600,
		Title:  "Loves Me, Loves Me Not",
	}

	Flower = FlowerConfig{
		PetalCount:   11,
		CenterRadius: 25,
		PetalLength:  70,
		PetalOffset:  3,

		StemHeight: 200,
		StemCurve:  20,
		StemWidth:  10,

		CenterLift: 60,

		BackgroundColor: Blush,
		StemColor:       colornames.Mediumseagreen,
		CenterColor:     colornames.Gold,
		PetalColor:      PetalWhite,
		VeinColor:       VeinBlue,
		VeinWidth:       1.5,
	}

	Petal = PetalPhysicsConfig{
		LaunchSpeedX:  1.5,
		LaunchJitterX: 1.0,  // +-0.5
		LaunchSpeedY:  -2.5, // Small upward hop before gravity wins
		SpinJitter:    0.08, // +-0.04 rad/tick

		Gravity:  0.12,
		Drag:     0.98,
		Shrink:   0.995,
		MinScale: 0.85,

		FadeMargin: 50,
		FadeRate:   0.015,
	}

	Text = TextConfig{
		Phrases:      []string{"Loves me", "Loves me not"},
		ResultSuffix: "!",

		NeutralColor: Charcoal,
		AccentColor:  colornames.Hotpink,

		HiddenOffset:   15,
		EmphasisScale:  1.15,
		TransitionTime: 0.4,
		SpringFreq:     6.0,
		SpringDamping:  0.5,

		FontSize: 32,
		MarginY:  60,
	}

	Timing = TimingConfig{
		Tick:        time.Second / 60,
		HideDelay:   800 * time.Millisecond,
		RevealDelay: 500 * time.Millisecond,
		ResetDelay:  1500 * time.Millisecond,
	}

	Debug = DebugConfig{
		Overlay: false,
	}
}
