package curve3

import (
	"github.com/go-gl/mathgl/mgl64"
)

// Line represents a line segment. It is the degenerate, linear case of a
// Bézier curve.
type Line struct {
	// The line's start point.
	P0 mgl64.Vec3
	// The line's end point.
	P1 mgl64.Vec3
}

var _ BezierCurve = Line{}
var _ Extremer = Line{}

// Length returns the length of the line.
func (l Line) Length() float64 {
	return l.P1.Sub(l.P0).Len()
}

func (l Line) IsInf() bool {
	return vecIsInf(l.P0) || vecIsInf(l.P1)
}

func (l Line) IsNaN() bool {
	return vecIsNaN(l.P0) || vecIsNaN(l.P1)
}

func (l Line) Translate(v mgl64.Vec3) Line {
	return Line{
		P0: l.P0.Add(v),
		P1: l.P1.Add(v),
	}
}

func (l Line) BoundingBox() Box {
	return NewBoxFromPoints(l.P0, l.P1)
}

func (l Line) Eval(t float64) mgl64.Vec3 {
	return lerp(l.P0, l.P1, t)
}

// Extrema implements [Extremer]. Lines are monotonic and have no extrema.
func (l Line) Extrema() ([MaxExtrema]float64, int) {
	return [MaxExtrema]float64{}, 0
}

func (l Line) Subsegment(t0, t1 float64) Line {
	return Line{l.Eval(t0), l.Eval(t1)}
}

func (l Line) Start() mgl64.Vec3 {
	return l.P0
}

func (l Line) End() mgl64.Vec3 {
	return l.P1
}

func (l Line) Transform(m mgl64.Mat4) Line {
	return Line{
		P0: mgl64.TransformCoordinate(l.P0, m),
		P1: mgl64.TransformCoordinate(l.P1, m),
	}
}
