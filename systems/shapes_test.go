package systems

import (
	"math"
	"testing"
)

func TestPetalTransform(t *testing.T) {
	tests := []struct {
		name             string
		x, y, rot, scale float64
		localX, localY   float64
		wantX, wantY     float64
	}{
		{name: "identity", scale: 1, localX: 0, localY: -70, wantX: 0, wantY: -70},
		{name: "translate", x: 100, y: 50, scale: 1, localX: 0, localY: 0, wantX: 100, wantY: 50},
		{name: "scale before translate", x: 10, y: 10, scale: 0.5, localX: 0, localY: -70, wantX: 10, wantY: -25},
		// A petal at angle 0 is rotated by pi/2 so its tip points away from the center
		{name: "rotate tip outward", x: 0, y: 0, rot: math.Pi / 2, scale: 1, localX: 0, localY: -70, wantX: 70, wantY: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			geo := PetalTransform(tt.x, tt.y, tt.rot, tt.scale)
			x, y := geo.Apply(tt.localX, tt.localY)
			if math.Abs(x-tt.wantX) > 1e-9 || math.Abs(y-tt.wantY) > 1e-9 {
				t.Errorf("expected (%f, %f), got (%f, %f)", tt.wantX, tt.wantY, x, y)
			}
		})
	}
}

func TestPetalOutlineIsClosedAroundAxis(t *testing.T) {
	vs, is := PetalOutline(70).AppendVerticesAndIndicesForFilling(nil, nil)
	if len(vs) == 0 || len(is) == 0 {
		t.Fatal("expected petal outline to produce triangles")
	}

	minY, maxAbsX := 0.0, 0.0
	for _, v := range vs {
		minY = math.Min(minY, float64(v.DstY))
		maxAbsX = math.Max(maxAbsX, math.Abs(float64(v.DstX)))
	}
	if math.Abs(minY+70) > 1e-3 {
		t.Errorf("expected tip at y=-70, got %f", minY)
	}
	if maxAbsX == 0 || maxAbsX > 25 {
		t.Errorf("expected width within the control points, got half width %f", maxAbsX)
	}
}
