package specfunc_test

import (
	"math"
	"math/cmplx"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/oneloop/specfunc"
)

// assertClose compares complex values component-wise.
func assertClose(t *testing.T, want, got complex128, tol float64, msg string) {
	t.Helper()
	assert.InDelta(t, real(want), real(got), tol, "%s: real part", msg)
	assert.InDelta(t, imag(want), imag(got), tol, "%s: imag part", msg)
}

func TestLog_PrincipalBranch(t *testing.T) {
	// Exactly-real negatives sit on the cut and read from below: −iπ,
	// the same sheet CutBelow selects.
	assertClose(t, complex(0, -math.Pi), specfunc.Log(complex(-1, 0)), 1e-15, "Log(-1-i0)")
	assertClose(t, complex(0, math.Pi), specfunc.Log(complex(-1, 1e-300)), 1e-15, "Log(-1+iδ)")
	assertClose(t, complex(math.Log(2), 0), specfunc.Log(complex(2, 0)), 1e-15, "Log(2)")
	assert.True(t, math.IsInf(real(specfunc.Log(0)), -1), "Log(0) real part must be -Inf")
}

func TestCutBelow_SelectsLowerSheet(t *testing.T) {
	l := specfunc.Log(specfunc.CutBelow(-4))
	assert.InDelta(t, math.Log(4), real(l), 1e-15)
	assert.InDelta(t, -math.Pi, imag(l), 1e-12, "negative reals must resolve below the cut")
}

func TestDilog_SpecialValues(t *testing.T) {
	assert.Equal(t, complex(0, 0), specfunc.Dilog(0))

	assertClose(t, complex(specfunc.Pi2Over6, 0), specfunc.Dilog(1), 1e-15, "Li2(1)")
	assertClose(t, complex(-specfunc.Pi2Over6/2, 0), specfunc.Dilog(-1), 1e-14, "Li2(-1)")

	// Li2(1/2) = π²/12 − ln²2/2.
	half := specfunc.Pi2Over6/2 - math.Ln2*math.Ln2/2
	assertClose(t, complex(half, 0), specfunc.Dilog(0.5), 1e-14, "Li2(1/2)")
}

func TestDilog_ReflectionIdentity(t *testing.T) {
	// Li2(z) + Li2(1−z) = π²/6 − ln z · ln(1−z).
	for _, z := range []complex128{
		complex(0.3, 0.4),
		complex(-0.7, 0.2),
		complex(0.9, -1.1),
		complex(1.4, 0.6),
	} {
		lhs := specfunc.Dilog(z) + specfunc.Dilog(1-z)
		rhs := complex(specfunc.Pi2Over6, 0) - specfunc.Log(z)*specfunc.Log(1-z)
		assertClose(t, rhs, lhs, 1e-12, "reflection")
	}
}

func TestDilog_InversionIdentity(t *testing.T) {
	// Li2(z) + Li2(1/z) = −π²/6 − ½ ln²(−z), valid off the segment (0,1).
	for _, z := range []complex128{
		complex(2, 3),
		complex(-1.5, 0.8),
		complex(0.4, -2.2),
	} {
		lhs := specfunc.Dilog(z) + specfunc.Dilog(1/z)
		lz := specfunc.Log(-z)
		rhs := -complex(specfunc.Pi2Over6, 0) - 0.5*lz*lz
		assertClose(t, rhs, lhs, 1e-12, "inversion")
	}
}

func TestEta_SignTable(t *testing.T) {
	// Both arguments below the axis, product above: +2πi.
	a := complex(-0.5, -0.9)
	assertClose(t, complex(0, 2*math.Pi), specfunc.Eta(a, a), 0, "lower half × lower half wrapping up")

	// Mirror case: −2πi.
	b := cmplx.Conj(a)
	assertClose(t, complex(0, -2*math.Pi), specfunc.Eta(b, b), 0, "upper half × upper half wrapping down")

	// Opposite halves never wrap.
	assert.Equal(t, complex128(0), specfunc.Eta(a, b))
	assert.Equal(t, complex128(0), specfunc.Eta(complex(2, -1), complex(3, -1)))

	// Exactly-real inputs count as lower half: (−2−i0)·(−3−i0) wraps up.
	assertClose(t, complex(0, 2*math.Pi), specfunc.Eta(complex(-2, 0), complex(-3, 0)), 0, "real inputs read as minus i0")

	// One factor exactly real: (−2−i0)·(0.5−0.3i) has Im = +0.6 and
	// both halves below, so it wraps up too.
	assertClose(t, complex(0, 2*math.Pi), specfunc.Eta(complex(-2, 0), complex(0.5, -0.3)), 0, "mixed real and complex")
	assert.Equal(t, complex128(0), specfunc.Eta(complex(2, 0), complex(0.5, -0.3)), "positive real factor never wraps")
}

func TestLogProduct_MatchesPrincipalLog(t *testing.T) {
	samples := []complex128{
		complex(1.3, 0.7),
		complex(-2.1, -0.4),
		complex(0.2, 3.1),
		complex(-0.8, 1.9),
		complex(4.5, -2.6),
	}
	for _, a := range samples {
		for _, b := range samples {
			assertClose(t, specfunc.Log(a*b), specfunc.LogProduct(a, b), 1e-13, "LogProduct")
		}
	}
}

func TestQuadRoots_ReconstructAndDisplace(t *testing.T) {
	// (y−2)(y+3) = y² + y − 6.
	z1, z2 := specfunc.QuadRoots(1, 1, -6)
	if real(z1) < real(z2) {
		z1, z2 = z2, z1
	}
	require.InDelta(t, 2, real(z1), 1e-12)
	require.InDelta(t, -3, real(z2), 1e-12)

	// The −i0 zero near y=2 sits above the axis (positive slope there),
	// the one near y=−3 below (negative slope).
	assert.Positive(t, imag(z1))
	assert.Negative(t, imag(z2))
}

// simpson integrates f over [0,1] with 2n panels.
func simpson(f func(float64) complex128, n int) complex128 {
	h := 1.0 / float64(2*n)
	sum := f(0) + f(1)
	for i := 1; i < 2*n; i++ {
		w := complex(2+2*float64(i%2), 0)
		sum += w * f(float64(i)*h)
	}
	return sum * complex(h/3, 0)
}

// logBelow mirrors the package's −i0 reading of a real quantity.
func logBelow(x float64) complex128 {
	return cmplx.Log(complex(x, -1e-300))
}

func TestLogQuadInt_MatchesQuadrature(t *testing.T) {
	cases := []struct {
		name    string
		a, b, c complex128
		y0      complex128
	}{
		// No real zeros at all.
		{"complex pair", 1, 1, 1, complex(-0.3, 0.7)},
		// Real zeros at 2 and −3: Q is negative on [0,1].
		{"real roots outside", 1, 1, -6, complex(2.5, 0.4)},
		// Linear, no zero in [0,1].
		{"linear", 0, 2, 3, complex(-0.8, 0.3)},
		{"linear negative", 0, -2, -3, complex(1.7, -0.5)},
		// Constant.
		{"constant", 0, 0, complex(-5, 0), complex(0.4, 1.2)},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := specfunc.LogQuadInt(tc.y0, tc.a, tc.b, tc.c)
			want := simpson(func(y float64) complex128 {
				cy := complex(y, 0)
				q := tc.a*cy*cy + tc.b*cy + tc.c
				var l complex128
				if imag(q) == 0 {
					l = logBelow(real(q))
				} else {
					l = cmplx.Log(q)
				}
				return l / (cy - tc.y0)
			}, 4000)
			assertClose(t, want, got, 1e-8, tc.name)
		})
	}
}

func TestLogQuadIntRoot_FiniteAtPivot(t *testing.T) {
	// Pivot on the displaced root near y=2 of (y−2)(y+3).
	z1, z2 := specfunc.QuadRoots(1, 1, -6)
	if real(z1) < real(z2) {
		z1, z2 = z2, z1
	}
	got := specfunc.LogQuadIntRoot(z1, z2, 1)
	want := simpson(func(y float64) complex128 {
		cy := complex(y, 0)
		q := (cy - z1) * (cy - z2)
		return cmplx.Log(q) / (cy - z1)
	}, 4000)
	assertClose(t, want, got, 1e-8, "pivot on root")
}
