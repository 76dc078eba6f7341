package specfunc

import "math"

// twoPi is the magnitude of a full η step.
const twoPi = 2 * math.Pi

// imSign reports the sign of the imaginary part of z under the −i0
// convention: an exactly-zero imaginary part counts as negative.
func imSign(z complex128) int {
	switch im := imag(z); {
	case im > 0:
		return +1
	default:
		return -1
	}
}

// prodImSign reports the side of the real axis on which the product
// a·b lands. An exactly-real factor is first displaced below the axis,
// so the side is that of (a−i0)(b−i0) rather than of the bare product:
// two negative reals multiply to a value just above the axis.
func prodImSign(a, b complex128) int {
	ia, ib := imag(a), imag(b)
	switch {
	case ia != 0 && ib != 0:
		return imSign(a * b)
	case ia == 0 && ib == 0:
		if real(a) < 0 && real(b) < 0 {
			return +1
		}
		return -1
	case ia == 0:
		// Im((a−i0)·b) = a·Im(b) up to the vanishing displacement.
		if real(a)*ib > 0 {
			return +1
		}
		return -1
	default:
		if ia*real(b) > 0 {
			return +1
		}
		return -1
	}
}

// Eta — 't Hooft–Veltman η function
//
// Description:
//
//	η(a,b) = ln(ab) − ln a − ln b ∈ {0, +2πi, −2πi} compensates the
//	principal logarithm when the arguments of a and b wrap around the
//	cut. It is nonzero only when Im a and Im b share a sign and the
//	product lands on the other side:
//
//	  Im a < 0, Im b < 0, Im ab > 0  →  +2πi
//	  Im a > 0, Im b > 0, Im ab < 0  →  −2πi
//
//	Exactly-real inputs are read as "minus i0" (see CutBelow), both
//	as factors and when deciding which side the product lands on.
//
// Complexity: O(1).
func Eta(a, b complex128) complex128 {
	sa, sb, sab := imSign(a), imSign(b), prodImSign(a, b)
	switch {
	case sa < 0 && sb < 0 && sab > 0:
		return complex(0, twoPi)
	case sa > 0 && sb > 0 && sab < 0:
		return complex(0, -twoPi)
	default:
		return 0
	}
}

// LogProduct returns ln(ab) assembled branch-correctly from the
// principal logarithms of the factors:
//
//	LogProduct(a, b) = Log(a) + Log(b) + Eta(a, b).
//
// Off the cuts this equals Log(a*b) exactly; on a cut it follows the
// −i0 convention of the package.
func LogProduct(a, b complex128) complex128 {
	return Log(a) + Log(b) + Eta(a, b)
}
