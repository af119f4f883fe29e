package curve3

import (
	"iter"

	"github.com/go-gl/mathgl/mgl64"
)

// QuadBSpline is a quadratic B-spline. It is encoded as [P₁, C₁, C₂, C₃, C₄, ..., Pₙ],
// where Pᵢ are on-curve points and Cᵢ are off-curve control points. Only the first and
// last on-curve points are explicit. All other on-curve points are implicit and defined
// as Pᵢ = (Cᵢ₋₁ + Cᵢ) / 2. For example, P₂ lies halfway between C₁ and C₂.
type QuadBSpline []mgl64.Vec3

// Quads returns an iterator over the implied sequence of quadratic Bézier segments. The
// returned segments are guaranteed to be G1 continuous.
func (q QuadBSpline) Quads() iter.Seq[QuadBez] {
	return func(yield func(QuadBez) bool) {
		var idx int
		for len(q[idx:]) >= 3 {
			p0, p1, p2 := q[idx], q[idx+1], q[idx+2]

			if idx != 0 {
				p0 = midpoint(p0, p1)
			}
			if idx+2 < len(q)-1 {
				p2 = midpoint(p1, p2)
			}

			idx++

			if !yield(QuadBez{p0, p1, p2}) {
				break
			}
		}
	}
}

// BoundingBox returns the smallest box enclosing all segments of the spline.
// It returns the zero box for splines with fewer than three points.
func (q QuadBSpline) BoundingBox() Box {
	first := true
	var bbox Box
	for seg := range q.Quads() {
		if first {
			first = false
			bbox = seg.BoundingBox()
		} else {
			bbox = bbox.Union(seg.BoundingBox())
		}
	}
	return bbox
}
