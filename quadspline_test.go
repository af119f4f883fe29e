package curve3

import (
	"slices"
	"testing"

	"github.com/google/go-cmp/cmp/cmpopts"
)

func TestQuadSpline(t *testing.T) {
	p1 := v3(1, 1, 1)
	p2 := v3(2, 2, 0)
	p3 := v3(3, 3, -1)
	p5 := v3(5, 5, 5)
	p8 := v3(8, 8, 2)
	tests := []struct {
		in  QuadBSpline
		out []QuadBez
	}{
		{make(QuadBSpline, 0), nil},
		{make(QuadBSpline, 1), nil},
		{make(QuadBSpline, 2), nil},
		{QuadBSpline{p1, p2, p3}, []QuadBez{{p1, p2, p3}}},
		{QuadBSpline{p1, p3, p5, p8}, []QuadBez{
			{p1, p3, midpoint(p3, p5)},
			{midpoint(p3, p5), p5, p8},
		}},
	}

	for _, tt := range tests {
		got := slices.Collect(tt.in.Quads())
		diff(t, got, tt.out, cmpopts.EquateEmpty())
	}
}

func TestQuadSplineBoundingBox(t *testing.T) {
	s := QuadBSpline{v3(0, 0, 0), v3(1, 2, 0), v3(2, 0, 0), v3(3, -2, 1), v3(4, 0, 0)}
	var want Box
	for i, q := range slices.Collect(s.Quads()) {
		if i == 0 {
			want = q.BoundingBox()
		} else {
			want = want.Union(q.BoundingBox())
		}
	}
	if got := s.BoundingBox(); got != want {
		t.Errorf("got %v, want %v", got, want)
	}
	if got := (QuadBSpline{v3(1, 1, 1)}).BoundingBox(); got != (Box{}) {
		t.Errorf("got %v, want the zero box", got)
	}
}
