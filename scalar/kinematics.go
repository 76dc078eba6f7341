package scalar

import "github.com/katalvlaran/oneloop/specfunc"

// cutMass resolves a squared mass sitting exactly on the real axis
// onto the physical sheet: real means "minus i0".
func cutMass(m complex128) complex128 {
	if imag(m) != 0 {
		return m
	}
	return specfunc.CutBelow(real(m))
}

// qInv encodes the invariant combination −p² − i0 that appears inside
// every logarithm of an off-shell leg.
func qInv(p float64) complex128 {
	return specfunc.CutBelow(-p)
}

// muLog is L(q) = ln(μ²/q) for a q already on the physical sheet.
func (c *Config) muLog(q complex128) complex128 {
	return specfunc.Log(complex(c.MuSquared, 0)) - specfunc.Log(q)
}
