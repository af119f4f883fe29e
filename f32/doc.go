// Package f32 provides the Bézier curves of package curve3 in single
// precision.
//
// Points and vectors are [mgl32.Vec3] values and bounding boxes are
// float32-cube [cube.BBox] values, matching code that keeps its geometry in
// float32. The behavior mirrors that of curve3: evaluation extrapolates
// outside of [0, 1], bounding boxes are tight, and nothing reports errors.
package f32
