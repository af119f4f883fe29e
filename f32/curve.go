package f32

import (
	"slices"

	"github.com/chewxy/math32"
	"github.com/ethaniccc/float32-cube/cube"
	"github.com/go-gl/mathgl/mgl32"
)

// MaxExtrema is the maximum number of extrema that can be reported by
// [Extremer].
const MaxExtrema = 6

// BezierCurve is implemented by all Bézier curves in this package.
type BezierCurve interface {
	// Eval evaluates the curve at parameter t. Values outside of [0, 1]
	// extrapolate.
	Eval(t float32) mgl32.Vec3

	// BoundingBox returns the smallest axis-aligned box that encloses the
	// curve in the range [0, 1].
	BoundingBox() cube.BBox
}

// Extremer describes parametrized curves that report their extrema, in
// increasing order.
type Extremer interface {
	Extrema() ([MaxExtrema]float32, int)
}

// BoundingBoxOf returns the smallest axis-aligned box that encloses the
// curve in the range [0, 1].
func BoundingBoxOf(c interface {
	Extremer
	Eval(t float32) mgl32.Vec3
}) cube.BBox {
	p0 := c.Eval(0)
	lo, hi := p0, p0
	grow := func(p mgl32.Vec3) {
		for axis := range 3 {
			lo[axis] = min(lo[axis], p[axis])
			hi[axis] = max(hi[axis], p[axis])
		}
	}
	grow(c.Eval(1))
	ex, n := c.Extrema()
	for _, t := range ex[:n] {
		grow(c.Eval(t))
	}
	return cube.Box(lo[0], lo[1], lo[2], hi[0], hi[1], hi[2])
}

// UnionBoundingBox returns the smallest box enclosing all of the curves. It
// returns the zero box if no curves are provided.
func UnionBoundingBox(curves ...BezierCurve) cube.BBox {
	if len(curves) == 0 {
		return cube.BBox{}
	}
	bbox := curves[0].BoundingBox()
	for _, c := range curves[1:] {
		bbox = union(bbox, c.BoundingBox())
	}
	return bbox
}

// Contains reports whether pt lies within b, including its boundary.
func Contains(b cube.BBox, pt mgl32.Vec3) bool {
	lo, hi := b.Min(), b.Max()
	for axis := range 3 {
		if pt[axis] < lo[axis] || pt[axis] > hi[axis] {
			return false
		}
	}
	return true
}

func union(a, b cube.BBox) cube.BBox {
	amin, amax := a.Min(), a.Max()
	bmin, bmax := b.Min(), b.Max()
	return cube.Box(
		min(amin[0], bmin[0]), min(amin[1], bmin[1]), min(amin[2], bmin[2]),
		max(amax[0], bmax[0]), max(amax[1], bmax[1]), max(amax[2], bmax[2]),
	)
}

// SolveQuadratic finds real roots of quadratic equations.
//
// Return values of x for which c0 + c1 x + c2 x² = 0. See
// curve3.SolveQuadratic for the handling of degenerate cases.
func SolveQuadratic(c0, c1, c2 float32) ([2]float32, int) {
	sc0 := c0 / c2
	sc1 := c1 / c2
	if math32.IsInf(sc0, 0) || math32.IsInf(sc1, 0) || c2 == 0 {
		// c2 is zero or very small, treat as linear eqn
		root := -c0 / c1
		if !math32.IsInf(root, 0) && !math32.IsNaN(root) {
			return [2]float32{root}, 1
		} else if c0 == 0 && c1 == 0 {
			return [2]float32{0}, 1
		} else {
			return [2]float32{}, 0
		}
	}
	arg := sc1*sc1 - 4*sc0
	var root1 float32
	if math32.IsInf(arg, 0) {
		root1 = -sc1
	} else {
		if arg < 0 {
			return [2]float32{}, 0
		} else if arg == 0 {
			return [2]float32{-0.5 * sc1}, 1
		}
		root1 = -0.5 * (sc1 + math32.Copysign(math32.Sqrt(arg), sc1))
	}
	root2 := sc0 / root1
	if !math32.IsInf(root2, 0) && !math32.IsNaN(root2) {
		if root2 > root1 {
			return [2]float32{root1, root2}, 2
		} else {
			return [2]float32{root2, root1}, 2
		}
	} else {
		return [2]float32{root1}, 1
	}
}

func extremaSorted(out [MaxExtrema]float32, n int) ([MaxExtrema]float32, int) {
	slices.Sort(out[:n])
	return out, n
}

func midpoint(a, b mgl32.Vec3) mgl32.Vec3 {
	return a.Add(b).Mul(0.5)
}

func vecIsNaN(v mgl32.Vec3) bool {
	return math32.IsNaN(v[0]) || math32.IsNaN(v[1]) || math32.IsNaN(v[2])
}

func vecIsInf(v mgl32.Vec3) bool {
	return math32.IsInf(v[0], 0) || math32.IsInf(v[1], 0) || math32.IsInf(v[2], 0)
}
