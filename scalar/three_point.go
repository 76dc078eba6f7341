package scalar

import (
	"math"
	"math/cmplx"

	"github.com/katalvlaran/oneloop/specfunc"
)

// degEps is the relative tolerance used inside closed forms to switch
// to their stable degenerate limits. It is deliberately looser than
// the classification threshold: it guards floating-point cancellation,
// not branch identity.
const degEps = 1e-7

// ThreePoint — scalar triangle C₀(p1², p2², p3², m1², m2², m3²)
//
// Description:
//
//	The three-propagator integral with external invariants p1², p2²,
//	p3² (leg i joins propagators i and i+1) and squared masses mi².
//	The input is first matched, over all six invariance-preserving
//	relabelings, onto the most degenerate branch it fits:
//
//	  (0,0,s;   0,0,0)     — 1/ε² pole, single off-shell leg
//	  (0,s2,s3; 0,0,0)     — 1/ε, two off-shell legs
//	  (0,s2,s3; 0,0,m²)    — 1/ε, one massive propagator
//	  (0,m²,s;  0,0,m²)    — 1/ε², on-shell leg next to the mass
//	  (m2²,s,m3²; 0,m2²,m3²) — 1/ε soft configuration
//	  p1=p2=p3=0, massive  — finite, linear Feynman polynomial
//	  two null legs, massive — finite, single-pivot reduction
//	  generic              — finite, three-kernel reduction
//
//	Divergent branches evaluate exact closed forms; finite ones reduce
//	the Feynman-parameter integral to the dilogarithmic line integrals
//	of package specfunc. Scaleless configurations return zero.
//
// Degenerate kinematics within a branch (coinciding invariants,
// vanishing gaps) switch to series limits rather than cancelling
// differences; a vanishing kinematic determinant in the generic branch
// has no stable reduction and yields NaN with an error diagnostic.
//
// Complexity: O(1) — at most a dozen dilogarithms.
func (c *Config) ThreePoint(p1, p2, p3 float64, m1, m2, m3 complex128) Result {
	cl := c.classifyThreePoint([3]float64{p1, p2, p3}, [3]complex128{m1, m2, m3})

	switch cl.branch {
	case triZero:
		return Result{}
	case triHardLight:
		return c.triangleHardLight(cl.p[2])
	case triTwoOffShell:
		return c.triangleOneMassLight(cl.p[1], cl.p[2], 0)
	case triOneMassLight:
		return c.triangleOneMassLight(cl.p[1], cl.p[2], cutMass(cl.m[2]))
	case triOnShellLight:
		return c.triangleOnShellLight(cl.p[2], cutMass(cl.m[2]))
	case triSoft:
		return c.triangleSoft(cl.p[1], cutMass(cl.m[1]), cutMass(cl.m[2]))
	case triAllNull:
		return c.triangleAllNull(cutMass(cl.m[0]), cutMass(cl.m[1]), cutMass(cl.m[2]))
	case triTwoNull:
		return c.triangleTwoNull(cl.p[1], cl.m)
	default:
		return c.triangleGeneric(cl.p, cl.m)
	}
}

// triangleHardLight is the fully massless triangle with one off-shell
// leg. Exact to all orders in ε:
//
//	C₀ = (1/ε²) (μ²/(−s−i0))^ε / s.
func (c *Config) triangleHardLight(s float64) Result {
	l := c.muLog(qInv(s))
	inv := 1 / complex(s, 0)
	return newResult(0.5*l*l*inv, l*inv, inv)
}

// triangleOneMassLight covers (0, s2, s3; 0, 0, m²) and, with m² = 0,
// the two-off-shell-leg massless triangle. With qᵢ = m² − sᵢ − i0 and
// L(q) = ln(μ²/q):
//
//	C₀ = [ (e^{εL(q3)} − e^{εL(q2)})/ε² + Li₂(s2/(s2−m²)) − Li₂(s3/(s3−m²)) ] / (s3 − s2),
//
// expanded through ε⁰. Coinciding s2, s3 switch to the derivative
// limit 1/q, and a vanishing s on top of that to (L+1)/q.
func (c *Config) triangleOneMassLight(s2, s3 float64, m complex128) Result {
	q2 := massShifted(m, s2)
	q3 := massShifted(m, s3)

	gap := math.Abs(s3 - s2)
	scale := math.Max(math.Abs(s2), math.Abs(s3))
	if gap <= degEps*scale {
		sb := 0.5 * (s2 + s3)
		q := massShifted(m, sb)
		l := c.muLog(q)
		c1 := 1 / q
		var c0 complex128
		switch {
		case m == 0:
			c0 = l / q
		case math.Abs(sb) <= degEps*cmplx.Abs(m):
			c0 = (l + 1) / q
		default:
			sc := complex(sb, 0)
			c0 = (l + m/sc*specfunc.Log(m/q)) / q
		}
		return newResult(c0, c1, 0)
	}

	l2 := c.muLog(q2)
	l3 := c.muLog(q3)
	den := complex(s3-s2, 0)
	c1 := (l3 - l2) / den
	c0 := (l3*l3 - l2*l2) / (2 * den)
	if m != 0 {
		w2 := complex(s2, 0) / (complex(s2, 0) - m)
		w3 := complex(s3, 0) / (complex(s3, 0) - m)
		c0 += (specfunc.Dilog(w2) - specfunc.Dilog(w3)) / den
	}
	return newResult(c0, c1, 0)
}

// massShifted is q = m² − s − i0 on the physical sheet.
func massShifted(m complex128, s float64) complex128 {
	if m == 0 {
		return qInv(s)
	}
	return cutMass(m - complex(s, 0))
}

// triangleOnShellLight is (0, m², s; 0, 0, m²): the massive propagator
// sees one exactly on-shell leg, which upgrades the soft 1/ε to a
// 1/ε². With q = m² − s − i0, Lq = ln(μ²/q), Lm = ln(μ²/m²):
//
//	C₀ = [ ½/ε² + (Lq − ½Lm)/ε
//	       + ½Lq² − ¼Lm² + π²/12 − Li₂(s/(s−m²)) ] / (s − m²).
func (c *Config) triangleOnShellLight(s float64, m complex128) Result {
	den := complex(s, 0) - m // = −q
	q := -den
	lq := c.muLog(q)
	lm := c.muLog(m)
	w := complex(s, 0) / den
	c2 := 0.5 / den
	c1 := (lq - 0.5*lm) / den
	c0 := (0.5*lq*lq - 0.25*lm*lm + complex(specfunc.Pi2Over6/2, 0) - specfunc.Dilog(w)) / den
	return newResult(c0, c1, c2)
}

// triangleSoft is the soft configuration (m2², s, m3²; 0, m2², m3²):
// both legs adjacent to the massless propagator are on shell. The
// Feynman polynomial is homogeneous, so one radial integration is
// exact and leaves h(u) = s·u² + (m3²−m2²−s)·u + m2² on [0,1]:
//
//	C₀ = I₀/(2ε) − I₁/2,  I₀ = ∫ du/h,  I₁ = ∫ du ln(h/μ²)/h.
func (c *Config) triangleSoft(s float64, m2c, m3c complex128) Result {
	scale := math.Max(math.Abs(s), math.Max(cmplx.Abs(m2c), cmplx.Abs(m3c)))

	var i0, i1 complex128
	if math.Abs(s) <= degEps*scale {
		// h degenerates to the line (m3²−m2²)u + m2².
		gap := m3c - m2c
		if cmplx.Abs(gap) <= degEps*scale {
			mb := 0.5 * (m2c + m3c)
			i0 = 1 / mb
			i1 = -c.muLog(mb) / mb
		} else {
			i0 = (specfunc.Log(m3c) - specfunc.Log(m2c)) / gap
			l2 := c.muLog(m2c)
			l3 := c.muLog(m3c)
			i1 = (l3*l3 - l2*l2) / (2 * gap)
		}
	} else {
		sc := complex(s, 0)
		z1, z2 := specfunc.QuadRoots(sc, m3c-m2c-sc, m2c)
		den := sc * (z1 - z2)
		line := func(z complex128) complex128 {
			return specfunc.Log(1-z) - specfunc.Log(-z)
		}
		i0 = (line(z1) - line(z2)) / den
		raw := (specfunc.LogQuadIntRoot(z1, z2, sc) - specfunc.LogQuadIntRoot(z2, z1, sc)) / den
		i1 = raw - specfunc.Log(complex(c.MuSquared, 0))*i0
	}
	return newResult(-0.5*i1, 0.5*i0, 0)
}

// triangleAllNull is the finite triangle with three null legs and
// massive propagators: the Feynman polynomial is linear, so C₀
// reduces to one-dimensional logarithmic integrals. d = m2²−m1²,
// e = m3²−m2², f = m1²:
//
//	C₀ = −(1/e)·[Φ(d+e, f) − Φ(d, f)],  Φ(A,F) = ∫₀¹ ln(Ax+F) dx.
func (c *Config) triangleAllNull(m1c, m2c, m3c complex128) Result {
	d := m2c - m1c
	e := m3c - m2c
	f := m1c
	scale := cmplx.Abs(m1c) + cmplx.Abs(m2c) + cmplx.Abs(m3c)

	var c0 complex128
	switch {
	case cmplx.Abs(e) <= degEps*scale && cmplx.Abs(d) <= degEps*scale:
		// All masses equal: C₀ = −1/(2m²).
		mb := (m1c + m2c + m3c) / 3
		c0 = -0.5 / mb
	case cmplx.Abs(e) <= degEps*scale:
		// m2² = m3²: C₀ = −1/d + (f/d²)(ln(d+f) − ln f).
		c0 = -1/d + f/(d*d)*(specfunc.Log(d+f)-specfunc.Log(f))
	default:
		c0 = -(logLineInt(d+e, f) - logLineInt(d, f)) / e
	}
	return newResult(c0, 0, 0)
}

// logLineInt is Φ(A,F) = ∫₀¹ ln(Ax+F) dx, with the small-|A| series
// guard against the 1/A cancellation.
func logLineInt(a, f complex128) complex128 {
	if cmplx.Abs(a) <= degEps*cmplx.Abs(f) {
		return specfunc.Log(f) + a/(2*f)
	}
	af := a + f
	return (af*specfunc.Log(af)-f*specfunc.Log(f))/a - 1
}

// triangleTwoNull is the finite triangle with exactly two null legs
// (arranged as p1 = p3 = 0, p2 = s) and massive propagators. The
// Feynman polynomial is linear in x, so a single pivot y₀ = d/s
// survives:
//
//	C₀ = (1/s)·[ ∫₀¹ ln Q2/(y−y₀) − ∫₀¹ ln Qlin/(y−y₀) ],
//	Q2 = s·y² + (e−s)·y + (d+f),  Qlin = (d+e)·y + f.
//
// Q2(y₀) = Qlin(y₀) identically, so the ∫dy/(y−y₀) moments of the two
// pieces cancel exactly and only the R kernels over the displaced
// roots remain. That cancellation is applied analytically here: it
// keeps the form finite when y₀ lands on [0,1] itself, which equal
// masses (d = 0) force onto an endpoint.
func (c *Config) triangleTwoNull(s float64, m [3]complex128) Result {
	m1c := cutMass(m[0])
	m2c := cutMass(m[1])
	m3c := cutMass(m[2])
	d := m2c - m1c
	e := m3c - m2c
	f := m1c
	sc := complex(s, 0)

	y0 := d / sc
	if imag(y0) == 0 {
		y0 = specfunc.CutBelow(real(y0))
	}
	z1, z2 := specfunc.QuadRoots(sc, e-sc, d+f)
	v := specfunc.R(y0, z1) + specfunc.R(y0, z2)
	if de := d + e; de != 0 {
		// d + e = 0 means Qlin is the constant f, whose moment was
		// already absorbed by the cancellation.
		v -= specfunc.R(y0, specfunc.LinRoot(de, f))
	}
	return newResult(v/sc, 0, 0)
}

// triangleGeneric is the 't Hooft–Veltman reduction of the finite
// triangle: shear y = αx + t with α a root of b·α² + c·α + a = 0
// linearizes the Feynman polynomial in x, and the remaining t
// integral splits into three edge pieces, each a LogQuadInt with its
// own pivot:
//
//	C₀ = [ −S(y₀₁,Q1) + S(y₀₂,Q2) − S(y₀₃,Q3) ] / N,  N = c + 2bα.
//
// A vanishing discriminant (degenerate kinematic determinant) leaves
// no stable pivot; that case reports an error diagnostic and NaN.
func (c *Config) triangleGeneric(p [3]float64, m [3]complex128) Result {
	a := complex(p[0], 0)
	b := complex(p[1], 0)
	cc := complex(p[2]-p[0]-p[1], 0)
	m1c := cutMass(m[0])
	m2c := cutMass(m[1])
	m3c := cutMass(m[2])
	d := m2c - m1c - a
	e := a - complex(p[2], 0) + m3c - m2c
	f := m1c

	sq := cmplx.Sqrt(cc*cc - 4*a*b)
	if real(cc)*real(sq)+imag(cc)*imag(sq) < 0 {
		sq = -sq
	}
	pscale := math.Max(math.Abs(p[0]), math.Max(math.Abs(p[1]), math.Abs(p[2])))
	if cmplx.Abs(sq) <= 1e-10*pscale {
		c.diag(UnitError, "triangle kinematic determinant vanishes; no stable reduction",
			"p1", p[0], "p2", p[1], "p3", p[2])
		return nanResult()
	}
	qq := -(cc + sq) / 2
	alpha := qq / b
	if alt := a / qq; degenDist(alt) > degenDist(alpha) {
		alpha = alt
	}
	n := cc + 2*b*alpha

	t0 := -(d + e*alpha) / n
	if imag(t0) == 0 {
		t0 = specfunc.CutBelow(real(t0))
	}
	y1 := alpha + t0
	y2 := t0 / (1 - alpha)
	y3 := -t0 / alpha

	v := -specfunc.LogQuadInt(y1, b, cc+e, a+d+f) +
		specfunc.LogQuadInt(y2, a+b+cc, d+e, f) -
		specfunc.LogQuadInt(y3, a, d, f)
	return newResult(v/n, 0, 0)
}

// degenDist scores a shear root by its distance from the two poles of
// the edge maps, α = 0 and α = 1.
func degenDist(alpha complex128) float64 {
	return math.Min(cmplx.Abs(alpha), cmplx.Abs(1-alpha))
}

// nanResult marks a configuration with no meaningful value.
func nanResult() Result {
	nan := complex(math.NaN(), math.NaN())
	return newResult(nan, nan, nan)
}
