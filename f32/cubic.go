package f32

import (
	"github.com/ethaniccc/float32-cube/cube"
	"github.com/go-gl/mathgl/mgl32"
)

var _ BezierCurve = CubicBez{}
var _ Extremer = CubicBez{}

// CubicBez is a cubic Bézier segment.
type CubicBez struct {
	P0 mgl32.Vec3
	P1 mgl32.Vec3
	P2 mgl32.Vec3
	P3 mgl32.Vec3
}

func (c CubicBez) BoundingBox() cube.BBox {
	return BoundingBoxOf(c)
}

func (c CubicBez) Eval(t float32) mgl32.Vec3 {
	mt := 1 - t
	a := c.P0.Mul(mt * mt * mt)
	b := c.P1.Mul(mt * mt * 3)
	cc := c.P2.Mul(mt * 3)
	return a.Add(b.Add(cc.Add(c.P3.Mul(t)).Mul(t)).Mul(t))
}

// Subdivide subdivides the cubic into halves, using de Casteljau.
func (c CubicBez) Subdivide() (CubicBez, CubicBez) {
	pm := c.Eval(0.5)
	return CubicBez{
			c.P0,
			midpoint(c.P0, c.P1),
			c.P0.Add(c.P1.Mul(2)).Add(c.P2).Mul(0.25),
			pm,
		},
		CubicBez{
			pm,
			c.P1.Add(c.P2.Mul(2)).Add(c.P3).Mul(0.25),
			midpoint(c.P2, c.P3),
			c.P3,
		}
}

func (c CubicBez) Start() mgl32.Vec3 { return c.P0 }
func (c CubicBez) End() mgl32.Vec3   { return c.P3 }

func (c CubicBez) IsNaN() bool {
	return vecIsNaN(c.P0) || vecIsNaN(c.P1) || vecIsNaN(c.P2) || vecIsNaN(c.P3)
}

func (c CubicBez) IsInf() bool {
	return vecIsInf(c.P0) || vecIsInf(c.P1) || vecIsInf(c.P2) || vecIsInf(c.P3)
}

func (c CubicBez) Extrema() ([MaxExtrema]float32, int) {
	var out [MaxExtrema]float32
	var outN int
	d0 := c.P1.Sub(c.P0)
	d1 := c.P2.Sub(c.P1)
	d2 := c.P3.Sub(c.P2)
	for axis := range 3 {
		a := d0[axis] - 2*d1[axis] + d2[axis]
		b := 2 * (d1[axis] - d0[axis])
		roots, n := SolveQuadratic(d0[axis], b, a)
		for _, t := range roots[:n] {
			if t > 0 && t < 1 {
				out[outN] = t
				outN++
			}
		}
	}
	return extremaSorted(out, outN)
}
