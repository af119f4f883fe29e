package curve3

import (
	"math"
	"testing"
)

func TestLineEval(t *testing.T) {
	l := Line{v3(1, 2, 3), v3(3, 2, -1)}
	assertNear(t, l.Eval(0.5), v3(2, 2, 1), 1e-15)
	// Out of range parameters extrapolate.
	assertNear(t, l.Eval(2), v3(5, 2, -5), 1e-12)
	if got, want := l.Length(), math.Sqrt(20); math.Abs(got-want) > 1e-12 {
		t.Errorf("got length %v, want %v", got, want)
	}
}

func TestLineBoundingBox(t *testing.T) {
	l := Line{v3(1, 2, 3), v3(3, 2, -1)}
	want := Box{Min: v3(1, 2, -1), Max: v3(3, 2, 3)}
	if got := l.BoundingBox(); got != want {
		t.Errorf("got %v, want %v", got, want)
	}
	if got := BoundingBoxOf(l); got != want {
		t.Errorf("got %v, want %v", got, want)
	}
}

func TestLineSubsegment(t *testing.T) {
	l := Line{v3(1, 2, 3), v3(3, 2, -1)}
	ls := l.Subsegment(0.25, 0.75)
	assertNear(t, ls.P0, v3(1.5, 2, 2), 1e-12)
	assertNear(t, ls.P1, v3(2.5, 2, 0), 1e-12)

	lt := l.Translate(v3(1, 1, 1))
	assertNear(t, lt.Start(), v3(2, 3, 4), 0)
	assertNear(t, lt.End(), v3(4, 3, 0), 0)
}
