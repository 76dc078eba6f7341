package scalar_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/katalvlaran/oneloop/scalar"
)

func TestTwoPoint_Scaleless(t *testing.T) {
	cfg := scalar.DefaultConfig()
	assert.True(t, cfg.TwoPoint(0, 0, 0).IsZero())
}

func TestTwoPoint_Massless(t *testing.T) {
	cfg := scalar.DefaultConfig()

	// Spacelike: B₀(−μ²; 0, 0) = 2 exactly.
	assertTriple(t, cfg.TwoPoint(-1, 0, 0), 0, 1, 2, 1e-12)

	// Timelike: crossing the cut adds iπ.
	assertTriple(t, cfg.TwoPoint(1, 0, 0), 0, 1, complex(2, math.Pi), 1e-12)
}

func TestTwoPoint_AtRest(t *testing.T) {
	cfg := scalar.DefaultConfig()

	// Equal masses: B₀(0; m², m²) = −ln(m²/μ²).
	assertTriple(t, cfg.TwoPoint(0, 1, 1), 0, 1, 0, 1e-12)
	assertTriple(t, cfg.TwoPoint(0, 2, 2), 0, 1, complex(-math.Log(2), 0), 1e-12)

	// One vanishing mass: B₀(0; 0, m²) = 1 − ln(m²/μ²).
	assertTriple(t, cfg.TwoPoint(0, 0, 1), 0, 1, 1, 1e-12)

	// Distinct masses: B₀(0; m1², m2²) = 1 + (m1²L1 − m2²L2)/(m1²−m2²).
	want := 1 - 2*math.Log(2) // m1²=1, m2²=2, μ²=1
	assertTriple(t, cfg.TwoPoint(0, 1, 2), 0, 1, complex(want, 0), 1e-12)
}

func TestTwoPoint_OneMass(t *testing.T) {
	cfg := scalar.DefaultConfig()

	// B₀(−m²; 0, m²) = 2 − 2ln2 at μ² = m² = 1.
	assertTriple(t, cfg.TwoPoint(-1, 0, 1), 0, 1, complex(2-2*math.Log(2), 0), 1e-12)

	// On shell: the (m²−p²)·ln(m²−p²) term vanishes, B₀(m²; 0, m²) = 2.
	assertTriple(t, cfg.TwoPoint(1, 0, 1), 0, 1, 2, 1e-12)
}

func TestTwoPoint_GenericEqualMasses(t *testing.T) {
	// B₀(s; m², m²) = 2 − β·ln((β+1)/(β−1)) for s < 0, β = √(1−4m²/s).
	cfg := scalar.DefaultConfig()
	beta := math.Sqrt(5)
	want := 2 - beta*math.Log((beta+1)/(beta-1))
	assertTriple(t, cfg.TwoPoint(-1, 1, 1), 0, 1, complex(want, 0), 1e-10)
}

func TestTwoPoint_MassSymmetryIsExact(t *testing.T) {
	cfg := scalar.DefaultConfig()
	cases := []struct {
		p      float64
		m1, m2 complex128
	}{
		{-1, 1, 2},
		{3.7, 0.4, 2.9},
		{5, complex(1, -0.3), complex(2.5, -0.1)},
		{0, 1, 4},
	}
	for _, c := range cases {
		a := cfg.TwoPoint(c.p, c.m1, c.m2)
		b := cfg.TwoPoint(c.p, c.m2, c.m1)
		assert.Equal(t, a, b, "B₀ must be bitwise symmetric under m1 ↔ m2")
	}
}

func TestTwoPoint_SmallMomentumLimit(t *testing.T) {
	cfg := scalar.DefaultConfig()
	at0 := cfg.TwoPoint(0, 1, 2)
	near := cfg.TwoPoint(1e-7, 1, 2)
	assertCloseC(t, at0.Epsilon0(), near.Epsilon0(), 1e-5, "p² → 0 continuity")
}

func TestTwoPoint_NearEqualMassLimit(t *testing.T) {
	cfg := scalar.DefaultConfig()
	exact := cfg.TwoPoint(-1, 1, 1)
	near := cfg.TwoPoint(-1, 1, 1+1e-7)
	assertCloseC(t, exact.Epsilon0(), near.Epsilon0(), 1e-5, "m2² → m1² continuity")
}

func TestTwoPoint_ThresholdWarning(t *testing.T) {
	cfg, buf := captureConfig(scalar.UnitWarning)

	// p² = (m1+m2)² is the normal threshold; the root formula stays
	// finite (β = 0) and a warning is emitted.
	r := cfg.TwoPoint(4, 1, 1)
	assertTriple(t, r, 0, 1, 2, 1e-9)
	assert.Contains(t, buf.String(), "threshold")
}

func TestTwoPoint_TimelikeAboveThresholdHasImaginaryPart(t *testing.T) {
	cfg := scalar.DefaultConfig()
	r := cfg.TwoPoint(9, 1, 1)
	assert.Greater(t, imag(r.Epsilon0()), 0.1,
		"above threshold the bubble develops an absorptive part")
}
