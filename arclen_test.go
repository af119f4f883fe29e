package curve3

import (
	"math"
	"testing"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/google/go-cmp/cmp/cmpopts"
)

// Arc length of y = x² for x ∈ [0, 1].
var parabolaArclen = 0.5*math.Sqrt(5.0) + 0.25*math.Log(2.0+math.Sqrt(5.0))

func TestQuadBezArclen(t *testing.T) {
	q := QuadBez{
		v3(0.0, 0.0, 0.0),
		v3(0.0, 0.0, 0.5),
		v3(1.0, 0.0, 1.0),
	}
	for i := range 12 {
		accuracy := math.Pow(0.1, float64(i))
		est := q.Arclen(accuracy)
		if error := math.Abs(est - parabolaArclen); error > accuracy {
			t.Errorf("got error %g for desired accuracy of %g", error, accuracy)
		}
	}
}

func TestQuadBezArclenPathological(t *testing.T) {
	q := QuadBez{
		v3(-1.0, 0.0, 0.0),
		v3(1.03, 0.0, 0.0),
		v3(1.0, 0.0, 0.0),
	}
	const want = 2.0008737864167325 // A rough empirical calculation
	const accuracy = 1e-11
	if error := math.Abs(q.Arclen(accuracy) - want); error > accuracy {
		t.Errorf("got error %g for desired accuracy of %g", error, accuracy)
	}
}

func TestCubicBezArclen(t *testing.T) {
	// y = x², tilted out of the xy plane. Rotation preserves arc length.
	c := CubicBez{
		v3(0.0, 0.0, 0.0),
		v3(1.0/3.0, 0.0, 0.0),
		v3(2.0/3.0, 1.0/3.0, 0.0),
		v3(1.0, 1.0, 0.0),
	}.Transform(mgl64.HomogRotate3DX(0.7))
	for i := range 12 {
		accuracy := math.Pow(0.1, float64(i))
		diff(t, parabolaArclen, c.Arclen(accuracy), cmpopts.EquateApprox(0, accuracy))
	}
}

func TestRaisedArclen(t *testing.T) {
	q := QuadBez{v3(3.1, 4.1, 0.2), v3(5.9, 2.6, -1.7), v3(5.3, 5.8, 3.3)}
	const accuracy = 1e-9
	diff(t, q.Arclen(accuracy), q.Raise().Arclen(accuracy), cmpopts.EquateApprox(0, 2*accuracy))
}

func TestLineArclen(t *testing.T) {
	l := Line{v3(0, 0, 0), v3(1, 2, 2)}
	if got := l.Arclen(DefaultAccuracy); math.Abs(got-3) > 1e-12 {
		t.Errorf("got %v, want 3", got)
	}
}

func TestGaussLegendreWeights(t *testing.T) {
	// Weights sum to the length of the interval each table integrates over.
	for name, coeffs := range map[string][][2]float64{
		"8":       gaussLegendreCoeffs8[:],
		"8 half":  gaussLegendreCoeffs8Half[:],
		"16 half": gaussLegendreCoeffs16Half[:],
		"24 half": gaussLegendreCoeffs24Half[:],
	} {
		var sum float64
		for _, c := range coeffs {
			sum += c[0]
		}
		want := 1.0
		if name == "8" {
			want = 2
		}
		if math.Abs(sum-want) > 1e-12 {
			t.Errorf("table %s: weights sum to %v, want %v", name, sum, want)
		}
	}
}
