package curve3

import (
	"math"
	"slices"

	"github.com/go-gl/mathgl/mgl64"
)

// MaxExtrema is the maximum number of extrema that can be reported by
// [Extremer].
//
// This is 6 to support cubic Béziers, which can have two extrema per axis.
const MaxExtrema = 6

// BezierCurve is implemented by all Bézier curves in this package.
//
// Any value of type BezierCurve is itself a BezierCurve, so curves can be
// stored and passed around as interface values without giving up access to
// their evaluation and bounds.
type BezierCurve interface {
	// Eval evaluates the curve at parameter t. Generally, t is in the range
	// [0, 1]. Values outside of that range are not rejected; they extrapolate
	// along the curve's polynomial.
	Eval(t float64) mgl64.Vec3

	// BoundingBox returns the smallest axis-aligned box that encloses the
	// curve in the range [0, 1].
	BoundingBox() Box
}

// Extremer describes parametrized curves that report their extrema.
type Extremer interface {
	// Extrema computes the extrema of the curve.
	//
	// Only extrema within the interior of the curve count. They are parameter
	// values at which the derivative of at least one coordinate is zero,
	// reported in increasing order.
	Extrema() ([MaxExtrema]float64, int)
}

// ExtremaRanges returns parameter ranges, each of which is monotonic within the
// range on every axis.
func ExtremaRanges(e Extremer) ([MaxExtrema + 1][2]float64, int) {
	var ret [MaxExtrema + 1][2]float64
	var retN int
	var t0 float64

	ex, n := e.Extrema()
	for _, t := range ex[:n] {
		ret[retN] = [2]float64{t0, t}
		retN++
		t0 = t
	}
	ret[retN] = [2]float64{t0, 1}
	retN++
	return ret, retN
}

// BoundingBoxOf returns the smallest axis-aligned box that encloses the
// curve in the range [0, 1].
//
// Curves in this package implement [BezierCurve.BoundingBox] by calling this
// function.
func BoundingBoxOf(c interface {
	Extremer
	Eval(t float64) mgl64.Vec3
}) Box {
	bbox := NewBoxFromPoints(c.Eval(0), c.Eval(1))
	ex, n := c.Extrema()
	for _, t := range ex[:n] {
		bbox = bbox.UnionPoint(c.Eval(t))
	}
	return bbox
}

// UnionBoundingBox returns the smallest box enclosing all of the curves. It
// returns the zero box if no curves are provided.
func UnionBoundingBox(curves ...BezierCurve) Box {
	if len(curves) == 0 {
		return Box{}
	}
	bbox := curves[0].BoundingBox()
	for _, c := range curves[1:] {
		bbox = bbox.Union(c.BoundingBox())
	}
	return bbox
}

// Sample evaluates the curve at n evenly spaced parameters, starting at 0 and
// ending at 1. It panics if n is less than 2.
func Sample(c BezierCurve, n int) []mgl64.Vec3 {
	if n < 2 {
		panic("Sample needs at least two samples")
	}
	out := make([]mgl64.Vec3, n)
	for i := range n {
		out[i] = c.Eval(float64(i) / float64(n-1))
	}
	return out
}

// extremaSorted sorts the first n extrema in place and returns them.
func extremaSorted(out [MaxExtrema]float64, n int) ([MaxExtrema]float64, int) {
	slices.Sort(out[:n])
	return out, n
}

// SolveQuadratic finds real roots of quadratic equations.
//
// Return values of x for which c0 + c1 x + c2 x² = 0.
//
// This function tries to be quite numerically robust. If the equation
// is nearly linear, it will return the root ignoring the quadratic term;
// the other root might be out of representable range. In the degenerate
// case where all coefficients are zero, so that all values of x satisfy
// the equation, a single `0.0` is returned.
func SolveQuadratic(c0, c1, c2 float64) ([2]float64, int) {
	sc0 := c0 / c2
	sc1 := c1 / c2
	if math.IsInf(sc0, 0) || math.IsInf(sc1, 0) || c2 == 0 {
		// c2 is zero or very small, treat as linear eqn
		root := -c0 / c1
		if !math.IsInf(root, 0) && !math.IsNaN(root) {
			return [2]float64{root}, 1
		} else if c0 == 0.0 && c1 == 0.0 {
			// Degenerate case
			return [2]float64{0}, 1
		} else {
			return [2]float64{}, 0
		}
	}
	arg := sc1*sc1 - 4.0*sc0
	var root1 float64
	if math.IsInf(arg, 0) {
		// Likely, calculation of sc1 * sc1 overflowed. Find one root
		// using sc1 x + x² = 0, other root as sc0 / root1.
		root1 = -sc1
	} else {
		if arg < 0.0 {
			return [2]float64{}, 0
		} else if arg == 0.0 {
			return [2]float64{-0.5 * sc1}, 1
		}
		// See https://math.stackexchange.com/questions/866331
		root1 = -0.5 * (sc1 + math.Copysign(math.Sqrt(arg), sc1))
	}
	root2 := sc0 / root1
	if !math.IsInf(root2, 0) && !math.IsNaN(root2) {
		// Sort just to be friendly and make results deterministic.
		if root2 > root1 {
			return [2]float64{root1, root2}, 2
		} else {
			return [2]float64{root2, root1}, 2
		}
	} else {
		return [2]float64{root1}, 1
	}
}

func lerp(a, b mgl64.Vec3, t float64) mgl64.Vec3 {
	return a.Add(b.Sub(a).Mul(t))
}

func midpoint(a, b mgl64.Vec3) mgl64.Vec3 {
	return a.Add(b).Mul(0.5)
}

func vecIsInf(v mgl64.Vec3) bool {
	return math.IsInf(v[0], 0) || math.IsInf(v[1], 0) || math.IsInf(v[2], 0)
}

func vecIsNaN(v mgl64.Vec3) bool {
	return math.IsNaN(v[0]) || math.IsNaN(v[1]) || math.IsNaN(v[2])
}
