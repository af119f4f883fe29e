package curve3

import (
	"fmt"

	"github.com/go-gl/mathgl/mgl64"
)

// Box is an axis-aligned box in three dimensions.
//
// Boxes returned by this package always have Min ≤ Max on every axis. Boxes
// constructed by hand can be normalized with [Box.Abs].
type Box struct {
	Min mgl64.Vec3
	Max mgl64.Vec3
}

// NewBoxFromPoints returns the box with the extents of p0 and p1, ensuring
// that Min ≤ Max on every axis.
func NewBoxFromPoints(p0, p1 mgl64.Vec3) Box {
	return Box{p0, p1}.Abs()
}

// Abs returns a new box with the same extents as b, but ensuring that Min ≤
// Max on every axis.
func (b Box) Abs() Box {
	return Box{
		Min: mgl64.Vec3{min(b.Min[0], b.Max[0]), min(b.Min[1], b.Max[1]), min(b.Min[2], b.Max[2])},
		Max: mgl64.Vec3{max(b.Min[0], b.Max[0]), max(b.Min[1], b.Max[1]), max(b.Min[2], b.Max[2])},
	}
}

// Size returns the box's extent along each axis, defined as Max − Min.
func (b Box) Size() mgl64.Vec3 {
	return b.Max.Sub(b.Min)
}

// Center returns the point halfway between Min and Max.
func (b Box) Center() mgl64.Vec3 {
	return midpoint(b.Min, b.Max)
}

// Volume returns the box's volume. It may be negative for boxes that aren't
// normalized.
func (b Box) Volume() float64 {
	s := b.Size()
	return s[0] * s[1] * s[2]
}

// Contains reports whether pt lies within the box. Unlike the half-open
// rectangles of 2D rasterization, points on the boundary are contained, so
// that a curve is contained in its own bounding box.
func (b Box) Contains(pt mgl64.Vec3) bool {
	return pt[0] >= b.Min[0] && pt[0] <= b.Max[0] &&
		pt[1] >= b.Min[1] && pt[1] <= b.Max[1] &&
		pt[2] >= b.Min[2] && pt[2] <= b.Max[2]
}

// Union returns the smallest box enclosing b and o.
//
// Results are valid only if both boxes are normalized.
func (b Box) Union(o Box) Box {
	return Box{
		Min: mgl64.Vec3{min(b.Min[0], o.Min[0]), min(b.Min[1], o.Min[1]), min(b.Min[2], o.Min[2])},
		Max: mgl64.Vec3{max(b.Max[0], o.Max[0]), max(b.Max[1], o.Max[1]), max(b.Max[2], o.Max[2])},
	}
}

// UnionPoint computes the union with one point.
//
// This method includes the boundary of zero-volume boxes. Thus, a succession
// of UnionPoint operations on a series of points yields their enclosing box.
//
// Results are valid only if b is normalized.
func (b Box) UnionPoint(pt mgl64.Vec3) Box {
	return Box{
		Min: mgl64.Vec3{min(b.Min[0], pt[0]), min(b.Min[1], pt[1]), min(b.Min[2], pt[2])},
		Max: mgl64.Vec3{max(b.Max[0], pt[0]), max(b.Max[1], pt[1]), max(b.Max[2], pt[2])},
	}
}

// Inflate returns a box grown by d on every side. Negative values shrink the
// box, possibly past the point of it being normalized.
func (b Box) Inflate(d float64) Box {
	off := mgl64.Vec3{d, d, d}
	return Box{
		Min: b.Min.Sub(off),
		Max: b.Max.Add(off),
	}
}

// IsInf reports whether at least one coordinate of the box is infinite.
func (b Box) IsInf() bool {
	return vecIsInf(b.Min) || vecIsInf(b.Max)
}

// IsNaN reports whether at least one coordinate of the box is NaN.
func (b Box) IsNaN() bool {
	return vecIsNaN(b.Min) || vecIsNaN(b.Max)
}

func (b Box) String() string {
	return fmt.Sprintf("Box{(%g, %g, %g), (%g, %g, %g)}",
		b.Min[0], b.Min[1], b.Min[2],
		b.Max[0], b.Max[1], b.Max[2])
}
