package curve3

import (
	"github.com/go-gl/mathgl/mgl64"
)

var _ BezierCurve = QuadBez{}
var _ Extremer = QuadBez{}

// QuadBez is a quadratic Bézier segment.
type QuadBez struct {
	P0 mgl64.Vec3
	P1 mgl64.Vec3
	P2 mgl64.Vec3
}

// BoundingBox implements [BezierCurve].
func (q QuadBez) BoundingBox() Box {
	return BoundingBoxOf(q)
}

// ControlBox returns the box enclosing all control points. It always contains
// [QuadBez.BoundingBox] but is usually larger.
func (q QuadBez) ControlBox() Box {
	return NewBoxFromPoints(q.P0, q.P2).UnionPoint(q.P1)
}

// Raise raises the order by 1.
//
// Returns a cubic Bézier segment that exactly represents this quadratic.
func (q QuadBez) Raise() CubicBez {
	return CubicBez{
		q.P0,
		q.P0.Add(q.P1.Sub(q.P0).Mul(2.0 / 3.0)),
		q.P2.Add(q.P1.Sub(q.P2).Mul(2.0 / 3.0)),
		q.P2,
	}
}

func (q QuadBez) IsInf() bool {
	return vecIsInf(q.P0) || vecIsInf(q.P1) || vecIsInf(q.P2)
}

func (q QuadBez) IsNaN() bool {
	return vecIsNaN(q.P0) || vecIsNaN(q.P1) || vecIsNaN(q.P2)
}

// Eval implements [BezierCurve].
func (q QuadBez) Eval(t float64) mgl64.Vec3 {
	mt := 1.0 - t
	a := q.P0.Mul(mt * mt)
	b := q.P1.Mul(mt * 2.0)
	c := q.P2.Mul(t)
	d := b.Add(c)
	return a.Add(d.Mul(t))
}

// Subdivide subdivides the quadratic into halves, using de Casteljau.
func (q QuadBez) Subdivide() (QuadBez, QuadBez) {
	pm := q.Eval(0.5)
	return QuadBez{q.P0, midpoint(q.P0, q.P1), pm},
		QuadBez{pm, midpoint(q.P1, q.P2), q.P2}
}

// Subsegment returns the part of the curve between t0 and t1, reparametrized
// to [0, 1].
func (q QuadBez) Subsegment(t0 float64, t1 float64) QuadBez {
	p0 := q.Eval(t0)
	p2 := q.Eval(t1)
	p1 := p0.Add(lerp(q.P1.Sub(q.P0), q.P2.Sub(q.P1), t0).Mul(t1 - t0))
	return QuadBez{p0, p1, p2}
}

// Differentiate returns the derivative of the curve, which is a line. The
// line's points are to be interpreted as vectors.
func (q QuadBez) Differentiate() Line {
	return Line{
		q.P1.Sub(q.P0).Mul(2),
		q.P2.Sub(q.P1).Mul(2),
	}
}

func (q QuadBez) Start() mgl64.Vec3 {
	return q.P0
}

func (q QuadBez) End() mgl64.Vec3 {
	return q.P2
}

// Extrema implements [Extremer].
func (q QuadBez) Extrema() ([MaxExtrema]float64, int) {
	// Finding the extrema of a quadratic bezier means finding the roots in the
	// quadratic's first derivative, which is a line.

	var out [MaxExtrema]float64
	var outN int
	d0 := q.P1.Sub(q.P0)
	d1 := q.P2.Sub(q.P1)
	dd := d1.Sub(d0)
	for axis := range 3 {
		if dd[axis] != 0.0 {
			t := -d0[axis] / dd[axis]
			if t > 0.0 && t < 1.0 {
				out[outN] = t
				outN++
			}
		}
	}
	return extremaSorted(out, outN)
}

// Transform applies m to the control points. The result is exact for affine
// transformations.
func (q QuadBez) Transform(m mgl64.Mat4) QuadBez {
	return QuadBez{
		P0: mgl64.TransformCoordinate(q.P0, m),
		P1: mgl64.TransformCoordinate(q.P1, m),
		P2: mgl64.TransformCoordinate(q.P2, m),
	}
}
