// Package oneloop evaluates the scalar one-loop Feynman integrals —
// tadpole, bubble, triangle and box — in dimensional regularization,
// returning each result as a Laurent triple in the regulator ε.
//
// 🚀 What is oneloop?
//
//	A pure-Go numerical library that brings together:
//		• Tadpole A₀, bubble B₀, triangle C₀ and box D₀ evaluators
//		• Full complex-mass support with the Feynman −i0 prescription
//		• Automatic dispatch over kinematic degeneracies (on-shell legs,
//		  vanishing masses, thresholds, small Gram determinants)
//		• Special functions: complex dilogarithm, η-corrected logarithms,
//		  and the dilogarithmic line integrals behind triangle reduction
//
// ✨ Why choose oneloop?
//
//   - Predictable – every evaluator is a total function: no panics,
//     no hidden state beyond an explicit, swappable Config
//   - Transparent – near-singular kinematics are reported through
//     structured log/slog diagnostics instead of silent precision loss
//   - Pure Go – no cgo, no Fortran backends, no hidden deps
//   - Concurrent – evaluators are safe for parallel use under a fixed
//     configuration
//
// Under the hood, everything is organized under two subpackages:
//
//	scalar/   — the A₀/B₀/C₀/D₀ evaluators, configuration & validation
//	specfunc/ — dilogarithm, η function and log/dilog kernel integrals
//
// Conventions follow the one-loop literature: each result holds the
// coefficients of ε⁰, ε⁻¹ and ε⁻² with ε = (4−d)/2, normalized so that
// multiplying the triple by scalar.ToFeynman recovers the conventional
// Feynman-rule normalization.
//
// Quick start:
//
//	res := scalar.TwoPoint(-1.0, complex(1, 0), complex(1, 0))
//	fmt.Println(res.Epsilon0(), res.EpsilonMinus1())
//
// Dive into the scalar and specfunc package docs for the full surface.
//
//	go get github.com/katalvlaran/oneloop/scalar
package oneloop
