// Package curve3 provides quadratic and cubic Bézier curves in three
// dimensions, unified by the [BezierCurve] interface.
//
// Points and vectors are [mgl64.Vec3] values from the go-gl/mathgl module, so
// curves interoperate directly with code that already uses mathgl for its
// linear algebra. Transformations use [mgl64.Mat4].
//
// # Curves
//
// This package includes the following curves:
//   - [Line]
//   - [QuadBez]
//   - [CubicBez]
//
// All of them are small, immutable value types. They implement
// [BezierCurve], which exposes evaluation ([BezierCurve.Eval]) and tight
// axis-aligned bounds ([BezierCurve.BoundingBox]). Because a value of an
// interface type is itself a BezierCurve, heterogeneous collections of curves
// can be stored as []BezierCurve and handled uniformly, for example by
// [UnionBoundingBox].
//
// # Parameter range
//
// Curves are parametrized over t ∈ [0, 1], with Eval(0) being the first and
// Eval(1) being the last control point. Eval does not validate its argument:
// values outside of [0, 1] extrapolate along the curve's polynomial. The
// Bézier helpers in mathgl itself panic for such values, which is why this
// package evaluates curves on its own.
//
// Similarly, nothing in this package reports errors. Non-finite control
// points produce non-finite results; use the IsNaN and IsInf methods to check
// for them.
//
// # Bounding boxes
//
// [Box] is an axis-aligned box. The bounding box of a curve is computed from
// its end points and its extrema ([Extremer]), and is the smallest box that
// contains the curve for t ∈ [0, 1]. ControlBox methods return the cheaper,
// more conservative box around all control points.
//
// # Precision
//
// This package uses float64. The f32 subpackage provides the same curves for
// float32, using [mgl32.Vec3] and float32-cube's bounding boxes.
//
// # Literature
//
//   - [A Primer on Bézier Curves]
//
// [A Primer on Bézier Curves]: https://pomax.github.io/bezierinfo/
// [mgl32.Vec3]: https://pkg.go.dev/github.com/go-gl/mathgl/mgl32#Vec3
package curve3
