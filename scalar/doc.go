// Package scalar evaluates the scalar one-loop integrals — tadpole
// A₀, bubble B₀, triangle C₀ and box D₀ — in dimensional
// regularization with d = 4 − 2ε, returning each value as a Laurent
// triple (coefficients of ε⁰, ε⁻¹, ε⁻²).
//
// 🚀 What is scalar?
//
//	The user-facing layer of oneloop:
//	  • OnePoint(m)                         — tadpole A₀
//	  • TwoPoint(p, m1, m2)                 — bubble B₀
//	  • ThreePoint(p1,p2,p3, m1,m2,m3)      — triangle C₀
//	  • FourPoint(p1..p4, p12,p23, m1..m4)  — box D₀
//	plus *Checked variants that validate inputs up front, and a Config
//	holding the renormalization scale μ², the on-shell threshold and
//	the diagnostic sink.
//
// ✨ Key properties:
//   - Every evaluator is a total function: no panics, no errors on the
//     fast path. Kinematics outside the supported branches degrade to
//     a documented fallback and emit a structured diagnostic.
//   - Each input is classified onto the most degenerate matching
//     branch (equal masses, vanishing momenta, on-shell legs), so
//     nearby degenerate configurations evaluate through stable
//     closed forms instead of cancelling general ones.
//   - Masses are complex with Im m² ≤ 0 (complex-mass scheme);
//     momentum invariants are real. Real inputs on a branch cut are
//     read as approached from below, matching the Feynman −i0.
//   - Scaleless integrals are identically zero in dimensional
//     regularization and return the zero triple.
//
// ⚙️ Usage:
//
//	import "github.com/katalvlaran/oneloop/scalar"
//
//	cfg := scalar.DefaultConfig()
//	cfg.SetRenormalizationScale(91.1876 * 91.1876) // μ² = M_Z²
//	res := cfg.ThreePoint(0, 0, -1e4, 0, 0, 0)
//	fmt.Println(res.EpsilonMinus2())
//
// Package-level OnePoint/TwoPoint/... operate on a shared default
// Config; mutate it through the package-level setters before spawning
// concurrent evaluations, never during them.
//
// Normalization: results are coefficients of the standard one-loop
// measure μ^{2ε}/(iπ^{d/2} rΓ) ∫ dᵈl ...; multiply by ToFeynman to
// recover the textbook i/(16π²) normalization.
package scalar
