package scalar

import (
	"math/cmplx"

	"github.com/katalvlaran/oneloop/specfunc"
)

// TwoPoint — scalar bubble B₀(p², m1², m2²)
//
// Description:
//
//	The two-propagator integral with external invariant p² and squared
//	masses m1², m2². The single pole is mass-independent,
//
//	  ε⁻²: 0
//	  ε⁻¹: 1
//	  ε⁰ : branch-dependent finite part,
//
//	and the finite part is dispatched over the degeneracy lattice:
//	scaleless (≡ 0), zero momentum with equal / single / distinct
//	masses, and off-shell momentum with zero / one / two massive
//	propagators. The generic massive case uses the root
//	parametrization r + 1/r = (m1² + m2² − p²)/(m1·m2), which stays
//	finite across the normal threshold p² = (m1+m2)²; proximity to
//	the threshold is reported as a warning.
//
// TwoPoint is exactly symmetric under m1 ↔ m2, bit for bit.
//
// Complexity: O(1).
func (c *Config) TwoPoint(p float64, m1, m2 complex128) Result {
	cl := c.classifyTwoPoint(p, m1, m2)
	if cl.nearThreshold {
		c.diag(UnitWarning, "two-point near two-particle threshold", "p2", p)
	}

	switch cl.branch {
	case twoScaleless:
		return Result{}

	case twoRestEqual:
		mb := cutMass(0.5 * (m1 + m2))
		return newResult(c.muLog(mb), 1, 0)

	case twoRestOne:
		mm := m1
		if cmplx.Abs(m2) > cmplx.Abs(m1) {
			mm = m2
		}
		return newResult(1+c.muLog(cutMass(mm)), 1, 0)

	case twoRestGeneric:
		d1 := cutMass(m1)
		d2 := cutMass(m2)
		num := d1*c.muLog(d1) - d2*c.muLog(d2)
		return newResult(1+num/(d1-d2), 1, 0)

	case twoMassless:
		return newResult(2+c.muLog(qInv(p)), 1, 0)

	case twoOneMass:
		mm := m1
		if cmplx.Abs(m2) > cmplx.Abs(m1) {
			mm = m2
		}
		md := cutMass(mm)
		pc := complex(p, 0)
		gap := md - pc
		// On shell, (m²−p²)·ln(m²−p²) → 0; guard the 0·log(0) form.
		rest := complex(0, 0)
		if cmplx.Abs(gap) > degEps*cmplx.Abs(pc) {
			rest = gap / pc * (specfunc.Log(gap) - specfunc.Log(md))
		}
		return newResult(2+c.muLog(md)+rest, 1, 0)

	default:
		return c.twoPointGeneric(p, m1, m2)
	}
}

// twoPointGeneric is the fully massive off-shell bubble in the root
// parametrization: with m = m1·m2 (linear masses) and
// A = (m1² + m2² − p²)/m, r is a root of r² − A·r + 1 = 0 and
//
//	B₀ = 1/ε + 2 − ln(m1 m2/μ²)
//	     + (m1² − m2²)/p² · ln(m2/m1)
//	     − (m1 m2/p²) · (1/r − r) · ln r.
func (c *Config) twoPointGeneric(p float64, m1, m2 complex128) Result {
	d1 := cutMass(m1)
	d2 := cutMass(m2)
	mu2 := complex(c.MuSquared, 0)
	pc := complex(p, 0)

	mprod := cmplx.Sqrt(d1) * cmplx.Sqrt(d2) // m1·m2, linear masses

	a := (d1 + d2 - pc) / mprod
	if imag(a) == 0 {
		a = specfunc.CutBelow(real(a))
	}
	sq := cmplx.Sqrt(a*a - 4)
	if real(a)*real(sq)+imag(a)*imag(sq) < 0 {
		sq = -sq
	}
	rBig := (a + sq) / 2 // |rBig| ≥ 1; the formula is r ↔ 1/r symmetric
	r := 1 / rBig

	c0 := complex(2, 0)
	c0 -= 0.5 * specfunc.LogProduct(d1/mu2, d2/mu2)
	c0 += (d1 - d2) / pc * 0.5 * (specfunc.Log(d2) - specfunc.Log(d1))
	c0 -= mprod / pc * (rBig - r) * specfunc.Log(r)
	return newResult(c0, 1, 0)
}
