package scalar

import "math/cmplx"

// solveCayley solves Y·x = (1,1,1,1) for the modified Cayley matrix
// Y of a box, Y_ij = mᵢ² + mⱼ² − q_ij². Gaussian elimination with
// partial pivoting; ok reports whether every pivot stayed above the
// numerical noise floor of the matrix.
func solveCayley(y [4][4]complex128) (x [4]complex128, ok bool) {
	var a [4][5]complex128
	norm := 0.0
	for i := 0; i < 4; i++ {
		for j := 0; j < 4; j++ {
			a[i][j] = y[i][j]
			if v := cmplx.Abs(y[i][j]); v > norm {
				norm = v
			}
		}
		a[i][4] = 1
	}
	floor := 1e-13 * norm

	for col := 0; col < 4; col++ {
		piv := col
		for r := col + 1; r < 4; r++ {
			if cmplx.Abs(a[r][col]) > cmplx.Abs(a[piv][col]) {
				piv = r
			}
		}
		if cmplx.Abs(a[piv][col]) <= floor {
			return x, false
		}
		a[col], a[piv] = a[piv], a[col]
		for r := col + 1; r < 4; r++ {
			f := a[r][col] / a[col][col]
			for k := col; k < 5; k++ {
				a[r][k] -= f * a[col][k]
			}
		}
	}
	for i := 3; i >= 0; i-- {
		v := a[i][4]
		for k := i + 1; k < 4; k++ {
			v -= a[i][k] * x[k]
		}
		x[i] = v / a[i][i]
	}
	return x, true
}
