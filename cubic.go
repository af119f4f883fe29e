package curve3

import (
	"github.com/go-gl/mathgl/mgl64"
)

var _ BezierCurve = CubicBez{}
var _ Extremer = CubicBez{}

// CubicBez is a cubic Bézier segment.
type CubicBez struct {
	P0 mgl64.Vec3
	P1 mgl64.Vec3
	P2 mgl64.Vec3
	P3 mgl64.Vec3
}

func (c CubicBez) IsInf() bool {
	return vecIsInf(c.P0) || vecIsInf(c.P1) || vecIsInf(c.P2) || vecIsInf(c.P3)
}

func (c CubicBez) IsNaN() bool {
	return vecIsNaN(c.P0) || vecIsNaN(c.P1) || vecIsNaN(c.P2) || vecIsNaN(c.P3)
}

// BoundingBox implements [BezierCurve].
func (c CubicBez) BoundingBox() Box {
	return BoundingBoxOf(c)
}

// ControlBox returns the box enclosing all control points.
func (c CubicBez) ControlBox() Box {
	return NewBoxFromPoints(c.P0, c.P3).UnionPoint(c.P1).UnionPoint(c.P2)
}

// Eval implements [BezierCurve].
func (c CubicBez) Eval(t float64) mgl64.Vec3 {
	mt := 1.0 - t
	a := c.P0.Mul(mt * mt * mt)
	b := c.P1.Mul(mt * mt * 3.0)
	cc := c.P2.Mul(mt * 3.0)
	d := c.P3
	return a.Add(b.Add(cc.Add(d.Mul(t)).Mul(t)).Mul(t))
}

// Subdivide subdivides the cubic into halves, using de Casteljau.
func (c CubicBez) Subdivide() (CubicBez, CubicBez) {
	pm := c.Eval(0.5)
	return CubicBez{
			c.P0,
			midpoint(c.P0, c.P1),
			c.P0.Add(c.P1.Mul(2.0)).Add(c.P2).Mul(0.25),
			pm,
		},
		CubicBez{
			pm,
			c.P1.Add(c.P2.Mul(2.0)).Add(c.P3).Mul(0.25),
			midpoint(c.P2, c.P3),
			c.P3,
		}
}

// Subsegment returns the part of the curve between t0 and t1, reparametrized
// to [0, 1].
func (c CubicBez) Subsegment(t0, t1 float64) CubicBez {
	p0 := c.Eval(t0)
	p3 := c.Eval(t1)
	d := c.Differentiate()
	scale := (t1 - t0) * (1.0 / 3.0)
	p1 := p0.Add(d.Eval(t0).Mul(scale))
	p2 := p3.Sub(d.Eval(t1).Mul(scale))
	return CubicBez{p0, p1, p2, p3}
}

// Differentiate returns the derivative of the curve, which is a quadratic
// Bézier. The quadratic's points are to be interpreted as vectors.
func (c CubicBez) Differentiate() QuadBez {
	return QuadBez{
		c.P1.Sub(c.P0).Mul(3),
		c.P2.Sub(c.P1).Mul(3),
		c.P3.Sub(c.P2).Mul(3),
	}
}

func (c CubicBez) Start() mgl64.Vec3 {
	return c.P0
}

func (c CubicBez) End() mgl64.Vec3 {
	return c.P3
}

// Extrema implements [Extremer].
func (c CubicBez) Extrema() ([MaxExtrema]float64, int) {
	// three calls to oneCoord, up to 2 roots per call, for a total of 6 possible values.
	var out [MaxExtrema]float64
	var outN int
	oneCoord := func(d0, d1, d2 float64) {
		a := d0 - 2*d1 + d2
		b := 2 * (d1 - d0)
		c := d0
		roots, n := SolveQuadratic(c, b, a)
		for _, t := range roots[:n] {
			if t > 0.0 && t < 1.0 {
				out[outN] = t
				outN++
			}
		}
	}

	d0 := c.P1.Sub(c.P0)
	d1 := c.P2.Sub(c.P1)
	d2 := c.P3.Sub(c.P2)
	for axis := range 3 {
		oneCoord(d0[axis], d1[axis], d2[axis])
	}
	return extremaSorted(out, outN)
}

// Transform applies m to the control points. The result is exact for affine
// transformations.
func (c CubicBez) Transform(m mgl64.Mat4) CubicBez {
	return CubicBez{
		P0: mgl64.TransformCoordinate(c.P0, m),
		P1: mgl64.TransformCoordinate(c.P1, m),
		P2: mgl64.TransformCoordinate(c.P2, m),
		P3: mgl64.TransformCoordinate(c.P3, m),
	}
}
