package f32

import (
	"github.com/ethaniccc/float32-cube/cube"
	"github.com/go-gl/mathgl/mgl32"
)

var _ BezierCurve = Line{}
var _ Extremer = Line{}

// Line represents a line segment.
type Line struct {
	P0 mgl32.Vec3
	P1 mgl32.Vec3
}

func (l Line) BoundingBox() cube.BBox {
	return cube.Box(
		min(l.P0[0], l.P1[0]), min(l.P0[1], l.P1[1]), min(l.P0[2], l.P1[2]),
		max(l.P0[0], l.P1[0]), max(l.P0[1], l.P1[1]), max(l.P0[2], l.P1[2]),
	)
}

func (l Line) Eval(t float32) mgl32.Vec3 {
	return l.P0.Add(l.P1.Sub(l.P0).Mul(t))
}

// Extrema implements [Extremer]. Lines are monotonic and have no extrema.
func (l Line) Extrema() ([MaxExtrema]float32, int) {
	return [MaxExtrema]float32{}, 0
}

func (l Line) Length() float32 {
	return l.P1.Sub(l.P0).Len()
}

func (l Line) Start() mgl32.Vec3 { return l.P0 }
func (l Line) End() mgl32.Vec3   { return l.P1 }
