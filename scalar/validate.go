package scalar

import (
	"fmt"
	"math"
	"math/cmplx"
)

// checkInvariant rejects NaN and infinite external invariants.
func checkInvariant(name string, p float64) error {
	if math.IsNaN(p) || math.IsInf(p, 0) {
		return fmt.Errorf("%w: %s = %v is not finite", ErrInvalidInput, name, p)
	}
	return nil
}

// checkMass rejects non-finite masses and masses on the wrong side of
// the cut: a squared mass must satisfy Im(m²) ≤ 0 so that every
// propagator carries the −i0 prescription.
func checkMass(name string, m complex128) error {
	if cmplx.IsNaN(m) || cmplx.IsInf(m) {
		return fmt.Errorf("%w: %s = %v is not finite", ErrInvalidInput, name, m)
	}
	if imag(m) > 0 {
		return fmt.Errorf("%w: %s = %v has positive imaginary part", ErrInvalidInput, name, m)
	}
	return nil
}

func firstErr(errs ...error) error {
	for _, e := range errs {
		if e != nil {
			return e
		}
	}
	return nil
}

// OnePointChecked is OnePoint with input validation: the mass must be
// finite with Im(m²) ≤ 0. On violation it returns the zero Result and
// an error wrapping ErrInvalidInput.
func (c *Config) OnePointChecked(m complex128) (Result, error) {
	if err := checkMass("m²", m); err != nil {
		return Result{}, err
	}
	return c.OnePoint(m), nil
}

// TwoPointChecked is TwoPoint with input validation.
func (c *Config) TwoPointChecked(p float64, m1, m2 complex128) (Result, error) {
	if err := firstErr(
		checkInvariant("p²", p),
		checkMass("m1²", m1),
		checkMass("m2²", m2),
	); err != nil {
		return Result{}, err
	}
	return c.TwoPoint(p, m1, m2), nil
}

// ThreePointChecked is ThreePoint with input validation.
func (c *Config) ThreePointChecked(p1, p2, p3 float64, m1, m2, m3 complex128) (Result, error) {
	if err := firstErr(
		checkInvariant("p1²", p1),
		checkInvariant("p2²", p2),
		checkInvariant("p3²", p3),
		checkMass("m1²", m1),
		checkMass("m2²", m2),
		checkMass("m3²", m3),
	); err != nil {
		return Result{}, err
	}
	return c.ThreePoint(p1, p2, p3, m1, m2, m3), nil
}

// FourPointChecked is FourPoint with input validation.
func (c *Config) FourPointChecked(p1, p2, p3, p4, p12, p23 float64, m1, m2, m3, m4 complex128) (Result, error) {
	if err := firstErr(
		checkInvariant("p1²", p1),
		checkInvariant("p2²", p2),
		checkInvariant("p3²", p3),
		checkInvariant("p4²", p4),
		checkInvariant("s", p12),
		checkInvariant("t", p23),
		checkMass("m1²", m1),
		checkMass("m2²", m2),
		checkMass("m3²", m3),
		checkMass("m4²", m4),
	); err != nil {
		return Result{}, err
	}
	return c.FourPoint(p1, p2, p3, p4, p12, p23, m1, m2, m3, m4), nil
}

// OnePointChecked validates and evaluates with the package-level
// Config.
func OnePointChecked(m complex128) (Result, error) { return std.OnePointChecked(m) }

// TwoPointChecked validates and evaluates with the package-level
// Config.
func TwoPointChecked(p float64, m1, m2 complex128) (Result, error) {
	return std.TwoPointChecked(p, m1, m2)
}

// ThreePointChecked validates and evaluates with the package-level
// Config.
func ThreePointChecked(p1, p2, p3 float64, m1, m2, m3 complex128) (Result, error) {
	return std.ThreePointChecked(p1, p2, p3, m1, m2, m3)
}

// FourPointChecked validates and evaluates with the package-level
// Config.
func FourPointChecked(p1, p2, p3, p4, p12, p23 float64, m1, m2, m3, m4 complex128) (Result, error) {
	return std.FourPointChecked(p1, p2, p3, p4, p12, p23, m1, m2, m3, m4)
}
