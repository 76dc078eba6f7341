// Package specfunc provides the special functions behind one-loop
// scalar integrals: the principal complex logarithm with η-function
// branch bookkeeping, the complex dilogarithm Li₂, and the closed-form
// line integrals ∫₀¹ ln Q(y)/(y−y₀) dy over quadratic polynomials that
// drive the dilogarithmic reduction of triangle and box integrals.
//
// 🚀 What lives here?
//
//	• Log         — principal-branch complex logarithm (thin, explicit)
//	• Dilog       — complex dilogarithm Li₂(z), cut along [1, ∞)
//	• Eta         — 't Hooft–Veltman η(a,b) ∈ {0, ±2πi}
//	• LogProduct  — ln(ab) assembled as ln a + ln b + η(a,b)
//	• QuadRoots   — stable quadratic roots with the −i0 displacement
//	• LogQuadInt  — ∫₀¹ ln(ay²+by+c−i0)/(y−y₀) dy in closed form
//	• CutBelow    — lift a real number just below the branch cut
//
// ✨ Conventions:
//
//   - All branch cuts are the principal ones of math/cmplx; values on
//     a cut are resolved as if approached from below (Im → 0⁻), which
//     matches the Feynman −i0 prescription of the propagators.
//   - Eta treats an exactly-zero imaginary part as negative for the
//     same reason: real input means "real minus i0".
//   - Functions are pure and allocation-free; all are safe for
//     concurrent use.
//
// ⚙️ Usage:
//
//	import "github.com/katalvlaran/oneloop/specfunc"
//
//	v := specfunc.Dilog(complex(0.3, 0.4))
//	l := specfunc.LogProduct(a, b) // == Log(a*b), branch-correct
//
// Accuracy: Dilog is good to ~1 ulp over the transformed fundamental
// region (|z| ≤ 1, Re z ≤ ½) and degrades gracefully elsewhere through
// the inversion and reflection identities.
package specfunc
