package curve3

import (
	"testing"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/google/go-cmp/cmp"
)

func diff(t *testing.T, want, got any, opts ...cmp.Option) {
	t.Helper()
	if d := cmp.Diff(want, got, opts...); d != "" {
		t.Error(d)
	}
}

func assertNear(t *testing.T, p0 mgl64.Vec3, p1 mgl64.Vec3, epsilon float64) {
	t.Helper()
	if d := p1.Sub(p0).Len(); d > epsilon {
		t.Fatalf("got %v, expected %v", p0, p1)
	}
}

func v3(x, y, z float64) mgl64.Vec3 {
	return mgl64.Vec3{x, y, z}
}
