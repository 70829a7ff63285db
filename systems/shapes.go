package systems

import (
	"image"
	"image/color"

	cfg "github.com/automoto/lovesme/config"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// Petal silhouette control points, in local space with the base at the
// origin and the tip at (0, -length)
const (
	petalInnerX = 15.0
	petalInnerY = -15.0
	petalOuterX = 25.0
	petalOuterY = -35.0
	veinCtrlX   = 10.0
	veinCtrlY   = -20.0
	veinTipGap  = 5.0
	stemCtrlAt  = 0.4 // fraction of the stem height
)

var (
	whiteImage    *ebiten.Image
	whiteSubImage *ebiten.Image

	// Reusable vertex buffers to avoid per-frame allocations
	pathVertices []ebiten.Vertex
	pathIndices  []uint16
)

// PetalOutline builds the teardrop from two mirrored cubic curves
func PetalOutline(length float64) *vector.Path {
	var p vector.Path
	p.MoveTo(0, 0)
	p.CubicTo(petalInnerX, petalInnerY, petalOuterX, petalOuterY, 0, float32(-length))
	p.CubicTo(-petalOuterX, petalOuterY, -petalInnerX, petalInnerY, 0, 0)
	p.Close()
	return &p
}

// PetalVein builds the single curved vein from the base toward the tip
func PetalVein(length float64) *vector.Path {
	var p vector.Path
	p.MoveTo(0, 0)
	p.QuadTo(veinCtrlX, veinCtrlY, 0, float32(-length+veinTipGap))
	return &p
}

// StemPath builds the stem curve hanging from the bottom of the center disc
func StemPath(centerX, centerY float64) *vector.Path {
	f := cfg.Flower
	var p vector.Path
	p.MoveTo(float32(centerX), float32(centerY+f.CenterRadius))
	p.QuadTo(
		float32(centerX+f.StemCurve), float32(centerY+f.StemHeight*stemCtrlAt),
		float32(centerX), float32(centerY+f.StemHeight),
	)
	return &p
}

// PetalTransform maps petal local space to the screen: scale, then rotate,
// then move to the petal position
func PetalTransform(x, y, rotation, scale float64) ebiten.GeoM {
	var geo ebiten.GeoM
	geo.Scale(scale, scale)
	geo.Rotate(rotation)
	geo.Translate(x, y)
	return geo
}

// fillPath fills p under geo with clr, its alpha multiplied by alpha
func fillPath(dst *ebiten.Image, p *vector.Path, geo ebiten.GeoM, clr color.RGBA, alpha float64) {
	pathVertices, pathIndices = p.AppendVerticesAndIndicesForFilling(pathVertices[:0], pathIndices[:0])
	drawPathTriangles(dst, geo, clr, alpha)
}

// strokePath strokes p with the given width under geo, so the width scales with geo
func strokePath(dst *ebiten.Image, p *vector.Path, width float64, geo ebiten.GeoM, clr color.RGBA, alpha float64) {
	op := &vector.StrokeOptions{
		Width:    float32(width),
		LineJoin: vector.LineJoinRound,
		LineCap:  vector.LineCapButt,
	}
	pathVertices, pathIndices = p.AppendVerticesAndIndicesForStroke(pathVertices[:0], pathIndices[:0], op)
	drawPathTriangles(dst, geo, clr, alpha)
}

func drawPathTriangles(dst *ebiten.Image, geo ebiten.GeoM, clr color.RGBA, alpha float64) {
	if whiteSubImage == nil {
		whiteImage = ebiten.NewImage(3, 3)
		whiteImage.Fill(color.White)
		whiteSubImage = whiteImage.SubImage(image.Rect(1, 1, 2, 2)).(*ebiten.Image)
	}

	r := float32(clr.R) / 0xff
	g := float32(clr.G) / 0xff
	b := float32(clr.B) / 0xff
	a := float32(clr.A) / 0xff * float32(alpha)
	for i := range pathVertices {
		v := &pathVertices[i]
		x, y := geo.Apply(float64(v.DstX), float64(v.DstY))
		v.DstX, v.DstY = float32(x), float32(y)
		v.SrcX, v.SrcY = 1, 1
		v.ColorR, v.ColorG, v.ColorB, v.ColorA = r, g, b, a
	}

	op := &ebiten.DrawTrianglesOptions{
		AntiAlias: true,
		FillRule:  ebiten.FillRuleNonZero,
	}
	dst.DrawTriangles(pathVertices, pathIndices, whiteSubImage, op)
}
