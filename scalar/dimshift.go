package scalar

import (
	"math"
	"math/cmplx"
)

// glOrder is the per-axis order of the Gauss–Legendre rule behind the
// simplex cubatures.
const glOrder = 32

var glNodes, glWeights = gaussLegendre(glOrder)

// gaussLegendre computes the n-point Gauss–Legendre nodes and weights
// on [0,1], by Newton iteration on the Legendre three-term recurrence.
func gaussLegendre(n int) ([]float64, []float64) {
	x := make([]float64, n)
	w := make([]float64, n)
	for i := 0; i < (n+1)/2; i++ {
		z := math.Cos(math.Pi * (float64(i) + 0.75) / (float64(n) + 0.5))
		var p1, pp float64
		for it := 0; it < 64; it++ {
			p1 = 1
			p2 := 0.0
			for j := 1; j <= n; j++ {
				p3 := p2
				p2 = p1
				p1 = ((2*float64(j)-1)*z*p2 - (float64(j)-1)*p3) / float64(j)
			}
			pp = float64(n) * (z*p1 - p2) / (z*z - 1)
			z1 := z
			z = z1 - p1/pp
			if math.Abs(z-z1) < 1e-15 {
				break
			}
		}
		x[i] = (1 - z) / 2
		x[n-1-i] = (1 + z) / 2
		w[i] = 1 / ((1 - z*z) * pp * pp)
		w[n-1-i] = w[i]
	}
	return x, w
}

// simplexCubature integrates 1/F(x)^pole over the Feynman simplex
// xᵢ ≥ 0, Σxᵢ = 1, where F = ½ xᵀ·Y·x − i0 and Y is the modified
// Cayley matrix of a box. The simplex is reached from the unit cube
// through x₁ = t₁, x₂ = t₂(1−t₁), x₃ = t₃(1−t₁)(1−t₂),
// x₄ = 1−x₁−x₂−x₃, Jacobian (1−t₁)²(1−t₂), and integrated by the
// tensor Gauss–Legendre rule, whose interior nodes never touch the
// simplex boundary where F of a massless corner vanishes.
//
// floor is the smallest |F| met along the rule relative to the
// largest: a small floor means a propagator zero crosses the simplex
// and the fixed-order rule loses accuracy there.
func simplexCubature(y [4][4]complex128, pole int) (val complex128, floor float64) {
	minF := math.Inf(1)
	maxF := 0.0
	for i1, t1 := range glNodes {
		j1 := (1 - t1) * (1 - t1) * glWeights[i1]
		for i2, t2 := range glNodes {
			j2 := j1 * (1 - t2) * glWeights[i2]
			for i3, t3 := range glNodes {
				x := [4]complex128{
					complex(t1, 0),
					complex(t2*(1-t1), 0),
					complex(t3*(1-t1)*(1-t2), 0),
					complex((1-t1)*(1-t2)*(1-t3), 0),
				}
				var f complex128
				for a := 0; a < 4; a++ {
					for b := 0; b < 4; b++ {
						f += x[a] * y[a][b] * x[b]
					}
				}
				f /= 2
				af := cmplx.Abs(f)
				if af < minF {
					minF = af
				}
				if af > maxF {
					maxF = af
				}
				den := f
				if pole == 2 {
					den *= f
				}
				val += complex(j2*glWeights[i3], 0) / den
			}
		}
	}
	if maxF == 0 {
		return val, 0
	}
	return val, minF / maxF
}

// boxSixDim is the dimension-shifted remainder of the box reduction,
//
//	I₄⁽⁶⁾ = ∫ d³x / F(x) + O(ε),
//
// finite for any kinematics.
func boxSixDim(y [4][4]complex128) (complex128, float64) {
	return simplexCubature(y, 1)
}

// boxFiniteDirect is the parametric form of an infrared-finite box,
//
//	D₀ = ∫ d³x / F(x)² + O(ε),
//
// valid whenever every internal line is massive. It needs no Cayley
// inverse, so it survives kinematics the reduction cannot reach.
func boxFiniteDirect(y [4][4]complex128) (complex128, float64) {
	return simplexCubature(y, 2)
}
