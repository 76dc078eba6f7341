package scalar

import "github.com/katalvlaran/oneloop/specfunc"

// OnePoint — scalar tadpole A₀(m²)
//
// Description:
//
//	The one-propagator integral with a single squared mass m². In this
//	package's normalization its Laurent triple is
//
//	  ε⁻²: 0
//	  ε⁻¹: 0
//	  ε⁰ : m²·(1 − ln(m²/μ²))
//
//	i.e. the pole has already been absorbed into the normalization and
//	only the scheme-independent finite part is reported. A vanishing
//	mass makes the integral scaleless, hence identically zero.
//
// The imaginary part of m² must be ≤ 0 (complex-mass scheme); use
// OnePointChecked to have that enforced.
//
// Complexity: O(1).
func (c *Config) OnePoint(m complex128) Result {
	if m == 0 {
		return Result{}
	}
	l := specfunc.Log(complex(c.MuSquared, 0)) - specfunc.Log(cutMass(m))
	return newResult(m*(1+l), 0, 0)
}
