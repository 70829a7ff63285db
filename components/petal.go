package components

import "github.com/yohamta/donburi"

// PetalState is the two-state petal lifecycle
type PetalState int

const (
	PetalAttached PetalState = iota
	PetalFalling
)

func (s PetalState) String() string {
	switch s {
	case PetalAttached:
		return "attached"
	case PetalFalling:
		return "falling"
	default:
		return "unknown"
	}
}

// FallData holds the velocity of a plucked petal
type FallData struct {
	VX, VY float64
	VRot   float64 // radians per tick
}

// PetalData is one petal of the flower. Fall is nil while the petal is attached.
type PetalData struct {
	Index       int     // creation order, which is also angular order
	BaseAngle   float64 // fixed at creation
	PhraseIndex int     // 0 or 1

	X, Y     float64
	Rotation float64
	Scale    float64
	Alpha    float64

	Fall *FallData
}

// State reports whether the petal is still on the flower
func (p *PetalData) State() PetalState {
	if p.Fall == nil {
		return PetalAttached
	}
	return PetalFalling
}

var Petal = donburi.NewComponentType[PetalData]()
