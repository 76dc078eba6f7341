package specfunc

import (
	"math"
	"math/cmplx"
)

// QuadRoots returns the two roots of a·y² + b·y + c with the −i0
// displacement of the polynomial folded into them: a root that lands
// exactly on the real axis is pushed to the side on which the zero of
// a·y² + b·y + c − i0 actually sits.
//
// The roots are computed via the Vieta pairing (q = −(b ± √Δ)/2 with
// the sign chosen against cancellation, z₁ = q/a, z₂ = c/q), so
// neither root suffers subtractive loss. Requires a ≠ 0.
func QuadRoots(a, b, c complex128) (z1, z2 complex128) {
	sq := cmplx.Sqrt(b*b - 4*a*c)
	if real(b)*real(sq)+imag(b)*imag(sq) < 0 {
		sq = -sq
	}
	q := -(b + sq) / 2
	if q == 0 { // b == 0 && c == 0: double root at the origin
		z1 = complex(0, -cutEps)
		z2 = complex(0, +cutEps)
		return z1, z2
	}
	z1 = q / a
	z2 = c / q
	z1 = displaceRoot(z1, a*(z1-z2))
	z2 = displaceRoot(z2, a*(z2-z1))
	return z1, z2
}

// displaceRoot pushes a real root of Q off the axis along +i/t, where
// t = Q'(z) is the slope at the root; Q(y) − i0 vanishes at z + i0/t.
func displaceRoot(z, t complex128) complex128 {
	if imag(z) != 0 {
		return z
	}
	s := math.Copysign(1, real(t))
	return complex(real(z), s*cutEps*(1+math.Abs(real(z))))
}

// LinRoot returns the root of the linear polynomial b·y + c with the
// −i0 displacement of b·y + c − i0 folded into it, the degree-one
// companion of QuadRoots. Requires b ≠ 0.
func LinRoot(b, c complex128) complex128 {
	return displaceRoot(-c/b, b)
}

// lineLog is ∫₀¹ dy/(y−y₀) = ln(1−y₀) − ln(−y₀), finite for any y₀
// off the segment [0,1].
func lineLog(y0 complex128) complex128 {
	return Log(1-y0) - Log(-y0)
}

// R — 't Hooft–Veltman dilogarithmic kernel
//
// Description:
//
//	R(y₀,z) = ∫₀¹ dy [ln(y−z) − ln(y₀−z)]/(y−y₀)
//	        = Li₂(y₀/(y₀−z)) − Li₂((y₀−1)/(y₀−z))
//	          + η(−z, 1/(y₀−z)) · ln(y₀/(y₀−z))
//	          − η(1−z, 1/(y₀−z)) · ln((y₀−1)/(y₀−z)),
//
//	with the principal log in the integrand. The two η terms are tied
//	to the two endpoints: 1 − y₀/(y₀−z) = −z/(y₀−z) and
//	1 − (y₀−1)/(y₀−z) = (1−z)/(y₀−z), so each dilogarithm crosses its
//	cut exactly when its own η jumps and the sum stays continuous.
//	The two η arguments differ only when Re z lies inside (0,1), which
//	is why a root under the segment needs the split form.
//
//	z must sit off the real axis (a displaced root qualifies); the
//	pivot y₀ may sit anywhere, the segment [0,1] included — the
//	integrand is regular at y = y₀.
//
// Complexity: O(1) — two dilogarithms.
func R(y0, z complex128) complex128 {
	d := y0 - z
	w1 := y0 / d
	w2 := (y0 - 1) / d
	h := 1 / d
	r := Dilog(w1) - Dilog(w2)
	if e := Eta(-z, h); e != 0 {
		r += e * Log(w1)
	}
	if e := Eta(1-z, h); e != 0 {
		r -= e * Log(w2)
	}
	return r
}

// quadEta returns the constant 2πi multiple η_Q that makes
//
//	ln Q(y) = ln a + ln(y−z₁) + ln(y−z₂) + η_Q
//
// hold with principal logarithms for y on [0,1]. The probe point is
// the endpoint or midpoint where |Q| is largest, which keeps the
// determination away from the zeros.
func quadEta(a, z1, z2 complex128) complex128 {
	probe := complex(0, 0)
	best := 0.0
	for _, y := range [...]complex128{0, 0.5, 1} {
		if m := cmplx.Abs((y - z1) * (y - z2)); m > best {
			best = m
			probe = y
		}
	}
	w1 := probe - z1
	w2 := probe - z2
	return Eta(a, w1) + Eta(a*w1, w2)
}

// LogQuadInt — dilogarithmic line integral over a quadratic
//
// Description:
//
//	LogQuadInt(y₀, a, b, c) = ∫₀¹ dy ln(a·y² + b·y + c − i0)/(y − y₀)
//
//	evaluated in closed form through the R kernel, with all branch
//	choices fixed by the −i0 prescription. This is the workhorse of
//	the triangle reduction: each Feynman-parameter edge contributes
//	one such integral.
//
// Algorithm Outline:
//  1. Factor Q over its displaced roots z₁, z₂ (QuadRoots), or over a
//     single root when the polynomial degenerates to linear/constant.
//  2. Determine the constant branch offset η_Q on [0,1] (quadEta).
//  3. Assemble R(y₀,z₁) + R(y₀,z₂) + lnQ(y₀)·∫₀¹ dy/(y−y₀), where
//     lnQ(y₀) uses the continuation of step 2.
//
// The caller must keep y₀ off the segment [0,1]; a vanishing
// imaginary displacement of y₀ (inherited from the −i0 of the parent
// integral) is sufficient.
//
// Complexity: O(1) — four dilogarithms and a handful of logs.
func LogQuadInt(y0, a, b, c complex128) complex128 {
	if a == 0 {
		if b == 0 {
			q := c
			if imag(q) == 0 {
				q = CutBelow(real(c))
			}
			return Log(q) * lineLog(y0)
		}
		z := LinRoot(b, c)
		q := Log(b) + Eta(b, linProbe(z)-z) + Log(y0-z)
		return R(y0, z) + q*lineLog(y0)
	}
	z1, z2 := QuadRoots(a, b, c)
	q := Log(a) + quadEta(a, z1, z2) + Log(y0-z1) + Log(y0-z2)
	return R(y0, z1) + R(y0, z2) + q*lineLog(y0)
}

// linProbe picks the endpoint of [0,1] farther from the root z.
func linProbe(z complex128) complex128 {
	if cmplx.Abs(z) > cmplx.Abs(1-z) {
		return 0
	}
	return 1
}

// LogQuadIntRoot evaluates ∫₀¹ dy ln(a·(y−zr)·(y−zo) − i0)/(y − zr)
// when the pivot y₀ coincides with the displaced root zr itself. The
// would-be singular piece integrates exactly to ½ ln², so the result
// stays finite:
//
//	½[ln²(1−zr) − ln²(−zr)] + R(zr, zo) + [ln a + η_Q + ln(zr−zo)]·∫₀¹ dy/(y−zr).
//
// Used by the soft-triangle branch, whose pivot is always a root of
// the edge quadratic.
func LogQuadIntRoot(zr, zo, a complex128) complex128 {
	l1 := Log(1 - zr)
	l0 := Log(-zr)
	q := Log(a) + quadEta(a, zr, zo) + Log(zr-zo)
	return 0.5*(l1*l1-l0*l0) + R(zr, zo) + q*(l1-l0)
}
