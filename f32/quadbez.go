package f32

import (
	"github.com/ethaniccc/float32-cube/cube"
	"github.com/go-gl/mathgl/mgl32"
)

var _ BezierCurve = QuadBez{}
var _ Extremer = QuadBez{}

// QuadBez is a quadratic Bézier segment.
type QuadBez struct {
	P0 mgl32.Vec3
	P1 mgl32.Vec3
	P2 mgl32.Vec3
}

func (q QuadBez) BoundingBox() cube.BBox {
	return BoundingBoxOf(q)
}

func (q QuadBez) Eval(t float32) mgl32.Vec3 {
	mt := 1 - t
	a := q.P0.Mul(mt * mt)
	b := q.P1.Mul(mt * 2)
	c := q.P2.Mul(t)
	return a.Add(b.Add(c).Mul(t))
}

// Raise returns a cubic Bézier segment that exactly represents this
// quadratic.
func (q QuadBez) Raise() CubicBez {
	return CubicBez{
		q.P0,
		q.P0.Add(q.P1.Sub(q.P0).Mul(2.0 / 3.0)),
		q.P2.Add(q.P1.Sub(q.P2).Mul(2.0 / 3.0)),
		q.P2,
	}
}

// Subdivide subdivides the quadratic into halves, using de Casteljau.
func (q QuadBez) Subdivide() (QuadBez, QuadBez) {
	pm := q.Eval(0.5)
	return QuadBez{q.P0, midpoint(q.P0, q.P1), pm},
		QuadBez{pm, midpoint(q.P1, q.P2), q.P2}
}

func (q QuadBez) Start() mgl32.Vec3 { return q.P0 }
func (q QuadBez) End() mgl32.Vec3   { return q.P2 }

func (q QuadBez) IsNaN() bool {
	return vecIsNaN(q.P0) || vecIsNaN(q.P1) || vecIsNaN(q.P2)
}

func (q QuadBez) IsInf() bool {
	return vecIsInf(q.P0) || vecIsInf(q.P1) || vecIsInf(q.P2)
}

func (q QuadBez) Extrema() ([MaxExtrema]float32, int) {
	var out [MaxExtrema]float32
	var outN int
	d0 := q.P1.Sub(q.P0)
	dd := q.P2.Sub(q.P1).Sub(d0)
	for axis := range 3 {
		if dd[axis] != 0 {
			t := -d0[axis] / dd[axis]
			if t > 0 && t < 1 {
				out[outN] = t
				outN++
			}
		}
	}
	return extremaSorted(out, outN)
}
