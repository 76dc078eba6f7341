package scalar

import (
	"math"

	"github.com/katalvlaran/oneloop/specfunc"
)

// FourPoint — scalar box D₀(p1², p2², p3², p4², s, t, m1²…m4²)
//
// Description:
//
//	The four-propagator integral with external invariants pᵢ² (leg i
//	joins propagators i and i+1), s = (p1+p2)², t = (p2+p3)², and
//	squared masses mᵢ². Three massless-internal families carry exact
//	closed forms, matched over the four cyclic relabelings:
//
//	  zero-mass      — all legs null            (1/ε² double poles)
//	  one-mass       — one off-shell leg        (1/ε²)
//	  two-mass-easy  — opposite off-shell legs  (1/ε)
//
//	Every other configuration — massive propagators, adjacent off-shell
//	legs, three or more masses, vanishing s or t — reduces to the four
//	daughter triangles through the modified Cayley matrix Y,
//	Y·x = (1,1,1,1):
//
//	  D₀ = −Σᵢ xᵢ · C₀⁽ⁱ⁾ − (Σᵢxᵢ)·I₄⁽⁶⁾ + O(ε),
//
//	applied per Laurent coefficient. The pole coefficients come from
//	the triangle sum alone and are exact; the finite part adds the
//	six-dimensional remainder I₄⁽⁶⁾ = ∫d³x/F, evaluated by fixed-order
//	Gauss–Legendre quadrature over the Feynman simplex. Degenerate
//	external momenta make Y singular; a fully massive box then falls
//	back to the direct parametric form ∫d³x/F², while massless lines
//	leave no stable path and yield NaN with an error diagnostic. A
//	propagator zero crossing the simplex costs quadrature accuracy
//	and is flagged with a warning.
//
// Scaleless input returns zero.
//
// Complexity: O(1) — at most four triangle evaluations plus a
// fixed-order cubature for reduced boxes.
func (c *Config) FourPoint(p1, p2, p3, p4, p12, p23 float64, m1, m2, m3, m4 complex128) Result {
	cl := c.classifyFourPoint([4]float64{p1, p2, p3, p4}, p12, p23,
		[4]complex128{m1, m2, m3, m4})

	switch cl.branch {
	case boxZero:
		return Result{}
	case boxZeroMass:
		return c.boxZeroMassForm(cl.s, cl.t)
	case boxOneMass:
		return c.boxOneMassForm(cl.s, cl.t, cl.p[3])
	case boxTwoMassEasy:
		return c.boxTwoMassEasyForm(cl.s, cl.t, cl.p[1], cl.p[3])
	default:
		return c.boxByReduction(cl)
	}
}

// boxZeroMassForm: all external legs null, massless internal lines.
// With Ls = ln(μ²/(−s−i0)), Lt likewise:
//
//	st·D₀ = 4/ε² + 2(Ls+Lt)/ε + 2·Ls·Lt − π².
func (c *Config) boxZeroMassForm(s, t float64) Result {
	ls := c.muLog(qInv(s))
	lt := c.muLog(qInv(t))
	inv := 1 / complex(s*t, 0)
	c0 := 2*ls*lt - complex(6*specfunc.Pi2Over6, 0)
	return newResult(c0*inv, 2*(ls+lt)*inv, 4*inv)
}

// boxOneMassForm: single off-shell leg P = p4², massless internal
// lines.
//
//	st·D₀ = 2/ε² + 2(Ls+Lt−LP)/ε
//	        + Ls² + Lt² − LP² − (Ls−Lt)²
//	        − 2 Li₂(1−P/s) − 2 Li₂(1−P/t) − π²/3.
func (c *Config) boxOneMassForm(s, t, bigP float64) Result {
	ls := c.muLog(qInv(s))
	lt := c.muLog(qInv(t))
	lp := c.muLog(qInv(bigP))
	inv := 1 / complex(s*t, 0)
	dst := ls - lt
	c0 := ls*ls + lt*lt - lp*lp - dst*dst -
		2*dilogOneMinusRatio(bigP, s) - 2*dilogOneMinusRatio(bigP, t) -
		complex(2*specfunc.Pi2Over6, 0)
	return newResult(c0*inv, 2*(ls+lt-lp)*inv, 2*inv)
}

// boxTwoMassEasyForm: two off-shell legs on opposite corners, P2 and
// P4, massless internal lines. The double pole cancels:
//
//	(st − P2·P4)·D₀ = 2(Ls+Lt−L2−L4)/ε
//	        + Ls² + Lt² − L2² − L4² − (Ls−Lt)²
//	        − 2[ Li₂(1−P2/s) + Li₂(1−P2/t) + Li₂(1−P4/s) + Li₂(1−P4/t)
//	             − Li₂(1−P2·P4/(s·t)) ].
func (c *Config) boxTwoMassEasyForm(s, t, p2m, p4m float64) Result {
	ls := c.muLog(qInv(s))
	lt := c.muLog(qInv(t))
	l2 := c.muLog(qInv(p2m))
	l4 := c.muLog(qInv(p4m))
	inv := 1 / complex(s*t-p2m*p4m, 0)
	dst := ls - lt
	dils := dilogOneMinusRatio(p2m, s) + dilogOneMinusRatio(p2m, t) +
		dilogOneMinusRatio(p4m, s) + dilogOneMinusRatio(p4m, t) -
		dilogOneMinusProduct(p2m, p4m, s, t)
	c0 := ls*ls + lt*lt - l2*l2 - l4*l4 - dst*dst - 2*dils
	return newResult(c0*inv, 2*(ls+lt-l2-l4)*inv, 0)
}

// dilogOneMinusRatio is Li₂(1 − P/s) with the side of the real axis
// inherited from the −i0 of both invariants: (−P−i0)/(−s−i0) lies
// above the axis when s > P, so 1 − P/s picks up −i0 there.
func dilogOneMinusRatio(bigP, s float64) complex128 {
	x := 1 - bigP/s
	side := math.Copysign(1, bigP-s)
	return specfunc.Dilog(complex(x, side*1e-30*(1+math.Abs(x))))
}

// dilogOneMinusProduct is Li₂(1 − P2·P4/(s·t)); the composite ratio
// inherits its side from the sum of the four displacements.
func dilogOneMinusProduct(p2m, p4m, s, t float64) complex128 {
	x := 1 - p2m*p4m/(s*t)
	side := math.Copysign(1, p2m+p4m-s-t)
	return specfunc.Dilog(complex(x, side*1e-30*(1+math.Abs(x))))
}

// boxByReduction evaluates a box with no closed form as the
// Cayley-weighted sum of its four daughter triangles plus the
// dimension-shifted remainder. The weights solve Y·x = 1 with
// Y_ij = mᵢ² + mⱼ² − q_ij², where q_ij is the squared momentum
// flowing between propagators i and j. Poles are exact; the finite
// part carries −(Σxᵢ)·I₄⁽⁶⁾ with I₄⁽⁶⁾ from boxSixDim over the same
// Y, so the masses enter it with their −i0 displacement.
//
// Degenerate external momenta make Y singular (collinear region
// vectors drop its rank) and the weights lose all precision before
// that. A fully massive box is infrared finite, so those kinematics
// fall back to boxFiniteDirect; with massless lines the poles forbid
// the parametric form and the result is NaN.
func (c *Config) boxByReduction(cl boxClass) Result {
	c.diag(UnitMessage, "reducing box to triangles", "reason", cl.reason)

	q := func(pp float64) complex128 { return complex(pp, 0) }
	mm := cl.m
	var y [4][4]complex128
	for i := 0; i < 4; i++ {
		y[i][i] = 2 * cutMass(mm[i])
	}
	set := func(i, j int, qq complex128) {
		y[i][j] = cutMass(mm[i]) + cutMass(mm[j]) - qq
		y[j][i] = y[i][j]
	}
	set(0, 1, q(cl.p[0]))
	set(1, 2, q(cl.p[1]))
	set(2, 3, q(cl.p[2]))
	set(0, 3, q(cl.p[3]))
	set(0, 2, q(cl.s))
	set(1, 3, q(cl.t))

	g := boxGram(cl)
	smallGram := math.Abs(g) <= 1e-8*math.Pow(kinScale2(cl.p[:], cl.m[:]), 3)
	massive := mm[0] != 0 && mm[1] != 0 && mm[2] != 0 && mm[3] != 0

	x, ok := solveCayley(y)
	if (!ok || smallGram) && massive {
		c.diag(UnitMessage, "degenerate gram determinant; box evaluated by direct quadrature",
			"gram", g)
		val, floor := boxFiniteDirect(y)
		if floor < 1e-6 {
			c.diag(UnitWarning, "propagator zero crosses the integration simplex; accuracy reduced",
				"floor", floor)
		}
		return newResult(val, 0, 0)
	}
	if !ok {
		c.diag(UnitError, "singular cayley matrix; box has no stable reduction",
			"s", cl.s, "t", cl.t)
		return nanResult()
	}
	if smallGram {
		c.diag(UnitWarning, "small gram determinant; reduction loses precision", "gram", g)
	}

	p := cl.p
	tris := [4]Result{
		c.ThreePoint(p[1], p[2], cl.t, mm[1], mm[2], mm[3]),
		c.ThreePoint(cl.s, p[2], p[3], mm[0], mm[2], mm[3]),
		c.ThreePoint(p[0], cl.t, p[3], mm[0], mm[1], mm[3]),
		c.ThreePoint(p[0], p[1], cl.s, mm[0], mm[1], mm[2]),
	}
	var total Result
	for i, tr := range tris {
		total = total.add(tr.scale(-x[i]))
	}

	rem, floor := boxSixDim(y)
	if floor < 1e-6 {
		c.diag(UnitWarning, "propagator zero crosses the reduction simplex; remainder accuracy reduced",
			"floor", floor)
	}
	b := x[0] + x[1] + x[2] + x[3]
	return total.add(newResult(-b*rem, 0, 0))
}

// boxGram is the Gram determinant det(2 vᵢ·vⱼ) of the three
// independent external momenta, reconstructed from invariants.
func boxGram(cl boxClass) float64 {
	v22 := cl.p[0]
	v33 := cl.s
	v44 := cl.p[3]
	v23 := (cl.p[0] + cl.s - cl.p[1]) / 2
	v24 := (cl.p[0] + cl.p[3] - cl.t) / 2
	v34 := (cl.s + cl.p[3] - cl.p[2]) / 2
	g := [3][3]float64{
		{2 * v22, 2 * v23, 2 * v24},
		{2 * v23, 2 * v33, 2 * v34},
		{2 * v24, 2 * v34, 2 * v44},
	}
	return g[0][0]*(g[1][1]*g[2][2]-g[1][2]*g[2][1]) -
		g[0][1]*(g[1][0]*g[2][2]-g[1][2]*g[2][0]) +
		g[0][2]*(g[1][0]*g[2][1]-g[1][1]*g[2][0])
}
