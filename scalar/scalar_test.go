package scalar_test

import (
	"bytes"
	"log/slog"
	"math/cmplx"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/oneloop/scalar"
)

// assertTriple checks a Laurent triple against pole-first expectations.
func assertTriple(t *testing.T, r scalar.Result, e2, e1, e0 complex128, tol float64) {
	t.Helper()
	assertCloseC(t, e2, r.EpsilonMinus2(), tol, "ε⁻² coefficient")
	assertCloseC(t, e1, r.EpsilonMinus1(), tol, "ε⁻¹ coefficient")
	assertCloseC(t, e0, r.Epsilon0(), tol, "ε⁰ coefficient")
}

func assertCloseC(t *testing.T, want, got complex128, tol float64, msg string) {
	t.Helper()
	require.Falsef(t, cmplx.IsNaN(got), "%s: got NaN, want %v", msg, want)
	assert.InDeltaf(t, real(want), real(got), tol, "%s (real)", msg)
	assert.InDeltaf(t, imag(want), imag(got), tol, "%s (imag)", msg)
}

// captureConfig returns a Config whose diagnostics land in the
// returned buffer, down to the given severity.
func captureConfig(level scalar.Unit) (scalar.Config, *bytes.Buffer) {
	var buf bytes.Buffer
	cfg := scalar.DefaultConfig()
	cfg.SetDiagnosticLevel(level, slog.New(slog.NewTextHandler(&buf, nil)))
	return cfg, &buf
}

// simpson integrates f over [0,1] with 2n panels.
func simpson(f func(float64) float64, n int) float64 {
	h := 1.0 / float64(2*n)
	sum := f(0) + f(1)
	for i := 1; i < 2*n; i++ {
		w := 2.0 + 2.0*float64(i%2)
		sum += w * f(float64(i)*h)
	}
	return sum * h / 3
}

// boxQuad is the direct three-dimensional quadrature of
// ∫ d³x 1/F(x)² over the Feynman simplex, for a box polynomial that
// stays positive there (Euclidean kinematics, real masses). The
// simplex is parameterized as x₂ ∈ [0,1], x₃ ∈ [0,1−x₂],
// x₄ ∈ [0,1−x₂−x₃], x₁ the rest.
func boxQuad(p [4]float64, s, t float64, m [4]float64, n int) float64 {
	f := func(x1, x2, x3, x4 float64) float64 {
		v := m[0]*x1 + m[1]*x2 + m[2]*x3 + m[3]*x4 -
			p[0]*x1*x2 - p[1]*x2*x3 - p[2]*x3*x4 - p[3]*x1*x4 -
			s*x1*x3 - t*x2*x4
		return 1 / (v * v)
	}
	return simpson(func(u2 float64) float64 {
		r2 := 1 - u2
		if r2 <= 0 {
			return 0
		}
		mid := simpson(func(v3 float64) float64 {
			u3 := v3 * r2
			r3 := r2 - u3
			if r3 <= 0 {
				return 0
			}
			inner := simpson(func(v4 float64) float64 {
				u4 := v4 * r3
				return f(1-u2-u3-u4, u2, u3, u4)
			}, n)
			return inner * r3
		}, n)
		return mid * r2
	}, n)
}

// triangleQuad is the direct two-dimensional quadrature of
// −∫₀¹dx ∫₀ˣdy 1/F(x,y) for a Feynman polynomial that stays positive
// on the integration triangle (Euclidean kinematics, real masses).
func triangleQuad(p [3]float64, m [3]float64, n int) float64 {
	f := func(x, y float64) float64 {
		v := m[0]*(1-x) + m[1]*(x-y) + m[2]*y -
			p[0]*(1-x)*(x-y) - p[1]*(x-y)*y - p[2]*(1-x)*y
		return 1 / v
	}
	outer := func(x float64) float64 {
		if x == 0 {
			return 0
		}
		inner := simpson(func(u float64) float64 { return f(x, u*x) }, n)
		return inner * x
	}
	return -simpson(outer, n)
}
