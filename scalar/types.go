package scalar

import (
	"errors"
	"fmt"
	"math"
)

// ToFeynman converts a Laurent triple from the loop-measure
// normalization used throughout this package to the conventional
// Feynman-diagram normalization: multiply every coefficient by it.
const ToFeynman = -1.0 / (16.0 * math.Pi * math.Pi)

// ErrInvalidInput reports kinematics that violate the documented
// preconditions of the *Checked wrappers (positive imaginary mass
// parts, NaN or infinite inputs).
var ErrInvalidInput = errors.New("scalar: invalid kinematic input")

// Result is the Laurent expansion of a scalar one-loop integral around
// ε = 0, truncated to the three coefficients that survive
// renormalization. It is immutable and comparable; evaluators with
// identical inputs and configuration return identical Results.
type Result struct {
	vals [3]complex128 // [ε⁰, ε⁻¹, ε⁻²]
}

// newResult packs the three Laurent coefficients, finite part first.
func newResult(e0, e1, e2 complex128) Result {
	return Result{vals: [3]complex128{e0, e1, e2}}
}

// Epsilon0 returns the finite part (coefficient of ε⁰).
func (r Result) Epsilon0() complex128 { return r.vals[0] }

// EpsilonMinus1 returns the coefficient of the single pole ε⁻¹.
func (r Result) EpsilonMinus1() complex128 { return r.vals[1] }

// EpsilonMinus2 returns the coefficient of the double pole ε⁻².
func (r Result) EpsilonMinus2() complex128 { return r.vals[2] }

// IsZero reports whether all three coefficients vanish exactly, as
// they do for scaleless integrals.
func (r Result) IsZero() bool {
	return r.vals == [3]complex128{}
}

// scale multiplies every Laurent coefficient by f.
func (r Result) scale(f complex128) Result {
	return newResult(f*r.vals[0], f*r.vals[1], f*r.vals[2])
}

// add returns the coefficient-wise sum r + o.
func (r Result) add(o Result) Result {
	return newResult(r.vals[0]+o.vals[0], r.vals[1]+o.vals[1], r.vals[2]+o.vals[2])
}

// String renders the triple in pole-first order:
//
//	ε⁻²: (...), ε⁻¹: (...), ε⁰: (...)
func (r Result) String() string {
	return fmt.Sprintf("ε⁻²: %v, ε⁻¹: %v, ε⁰: %v", r.vals[2], r.vals[1], r.vals[0])
}

// Unit labels the severity of a diagnostic category, mirroring the
// message/warning/error channels of the classic Fortran loop codes.
type Unit int

const (
	// UnitPrintAll enables every diagnostic, including per-branch
	// dispatch traces.
	UnitPrintAll Unit = iota

	// UnitMessage covers informational notes such as fallback
	// evaluations that are exact for the given kinematics.
	UnitMessage

	// UnitWarning covers precision hazards: near-threshold, small Gram
	// determinant, approximate fallbacks.
	UnitWarning

	// UnitError covers configurations with no meaningful value, e.g. a
	// singular reduction system.
	UnitError
)

// String implements fmt.Stringer.
func (u Unit) String() string {
	switch u {
	case UnitPrintAll:
		return "print-all"
	case UnitMessage:
		return "message"
	case UnitWarning:
		return "warning"
	case UnitError:
		return "error"
	default:
		return fmt.Sprintf("Unit(%d)", int(u))
	}
}
