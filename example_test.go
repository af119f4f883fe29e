package curve3_test

import (
	"fmt"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/spacetrace/curve3"
)

func ExampleQuadBez() {
	q := curve3.QuadBez{
		P0: mgl64.Vec3{0, 0, 0},
		P1: mgl64.Vec3{1, 2, 0},
		P2: mgl64.Vec3{2, 0, 0},
	}
	p := q.Eval(0.5)
	fmt.Printf("%g %g %g\n", p.X(), p.Y(), p.Z())
	// The curve only reaches half way to its middle control point.
	fmt.Println(q.BoundingBox())
	fmt.Println(q.ControlBox())
	// Output:
	// 1 1 0
	// Box{(0, 0, 0), (2, 1, 0)}
	// Box{(0, 0, 0), (2, 2, 0)}
}

func ExampleUnionBoundingBox() {
	curves := []curve3.BezierCurve{
		curve3.Line{P0: mgl64.Vec3{-1, 0, 0}, P1: mgl64.Vec3{0, 0, 0}},
		curve3.CubicBez{
			P0: mgl64.Vec3{0, 0, 0},
			P1: mgl64.Vec3{0, 1, 0},
			P2: mgl64.Vec3{1, 1, 0},
			P3: mgl64.Vec3{1, 0, 2},
		},
	}
	fmt.Println(curve3.UnionBoundingBox(curves...))
	// Output:
	// Box{(-1, 0, 0), (1, 0.75, 2)}
}
