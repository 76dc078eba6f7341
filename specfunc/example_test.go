package specfunc_test

import (
	"fmt"

	"github.com/katalvlaran/oneloop/specfunc"
)

// ExampleDilog evaluates the dilogarithm at its apex, Li₂(1) = π²/6.
func ExampleDilog() {
	v := specfunc.Dilog(1)
	fmt.Printf("%.4f\n", real(v))
	// Output:
	// 1.6449
}

// ExampleLogProduct shows the η-corrected logarithm of a product whose
// factors both sit in the lower half-plane: the naive sum of principal
// logarithms would land on the wrong sheet.
func ExampleLogProduct() {
	a := complex(-0.5, -0.9)
	b := complex(-0.5, -0.9)
	naive := specfunc.Log(a) + specfunc.Log(b)
	fixed := specfunc.LogProduct(a, b)
	fmt.Printf("naive imag: %.4f\n", imag(naive))
	fmt.Printf("fixed imag: %.4f\n", imag(fixed))
	// Output:
	// naive imag: -4.1558
	// fixed imag: 2.1274
}
