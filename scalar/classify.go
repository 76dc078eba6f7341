package scalar

import (
	"math"
	"math/cmplx"
)

// Branch tags for the bubble dispatch, most degenerate first.
type twoBranch int

const (
	twoScaleless twoBranch = iota
	twoRestEqual           // p = 0, m1 = m2
	twoRestOne             // p = 0, exactly one vanishing mass
	twoRestGeneric         // p = 0, distinct nonzero masses
	twoMassless            // p ≠ 0, m1 = m2 = 0
	twoOneMass             // p ≠ 0, exactly one vanishing mass
	twoGeneric
)

// Branch tags for the triangle dispatch.
type triBranch int

const (
	triZero triBranch = iota
	triHardLight           // (0,0,s; 0,0,0)
	triTwoOffShell         // (0,s2,s3; 0,0,0)
	triOneMassLight        // (0,s2,s3; 0,0,m²)
	triOnShellLight        // (0,m²,s; 0,0,m²)
	triSoft                // (m2²,s,m3²; 0,m2²,m3²)
	triAllNull             // p1=p2=p3=0, massive propagators
	triTwoNull             // two vanishing legs, massive propagators
	triGeneric
)

// Branch tags for the box dispatch.
type boxBranch int

const (
	boxZero boxBranch = iota
	boxZeroMass            // all legs null, massless internal
	boxOneMass             // one off-shell leg, massless internal
	boxTwoMassEasy         // two opposite off-shell legs, massless internal
	boxReduce              // everything else: Cayley-weighted triangle sum
)

type twoClass struct {
	branch        twoBranch
	nearThreshold bool
}

type triClass struct {
	branch triBranch
	p      [3]float64
	m      [3]complex128
}

type boxClass struct {
	branch boxBranch
	p      [4]float64
	s, t   float64
	m      [4]complex128
	reason string // why boxReduce was chosen
}

// kinScale2 is the magnitude of the largest squared invariant in play;
// all degeneracy tests are relative to it.
func kinScale2(ps []float64, ms []complex128) float64 {
	s := 0.0
	for _, p := range ps {
		s = math.Max(s, math.Abs(p))
	}
	for _, m := range ms {
		s = math.Max(s, cmplx.Abs(m))
	}
	return s
}

func (c *Config) classifyTwoPoint(p float64, m1, m2 complex128) twoClass {
	scale := kinScale2([]float64{p}, []complex128{m1, m2})
	if scale == 0 {
		return twoClass{branch: twoScaleless}
	}
	tol := c.OnShellThreshold * scale
	z1 := cmplx.Abs(m1) <= tol
	z2 := cmplx.Abs(m2) <= tol
	equal := cmplx.Abs(m1-m2) <= tol

	var cl twoClass
	switch {
	case p == 0 && equal:
		cl.branch = twoRestEqual
	case p == 0 && (z1 || z2):
		cl.branch = twoRestOne
	case p == 0:
		cl.branch = twoRestGeneric
	case z1 && z2:
		cl.branch = twoMassless
	case z1 || z2:
		cl.branch = twoOneMass
	default:
		cl.branch = twoGeneric
	}

	// Threshold proximity is diagnostic only: the generic closed form
	// stays finite there but loses digits.
	if cl.branch == twoGeneric {
		th := cmplx.Sqrt(m1) + cmplx.Sqrt(m2)
		cl.nearThreshold = cmplx.Abs(complex(p, 0)-th*th) <= tol
	}
	return cl
}

// triArrangements enumerates the six relabelings of a triangle that
// leave its value invariant: leg i always connects propagators i and
// i+1, so cycling or reflecting the propagators drags the legs along.
func triArrangements(p [3]float64, m [3]complex128) [6]triClass {
	cyc := func(a triClass) triClass {
		return triClass{
			p: [3]float64{a.p[1], a.p[2], a.p[0]},
			m: [3]complex128{a.m[1], a.m[2], a.m[0]},
		}
	}
	refl := func(a triClass) triClass {
		return triClass{
			p: [3]float64{a.p[0], a.p[2], a.p[1]},
			m: [3]complex128{a.m[1], a.m[0], a.m[2]},
		}
	}
	id := triClass{p: p, m: m}
	c1 := cyc(id)
	c2 := cyc(c1)
	return [6]triClass{id, c1, c2, refl(id), refl(c1), refl(c2)}
}

func (c *Config) classifyThreePoint(p [3]float64, m [3]complex128) triClass {
	scale := kinScale2(p[:], m[:])
	if scale == 0 {
		return triClass{branch: triZero}
	}
	tol := c.OnShellThreshold * scale
	pZero := func(x float64) bool { return math.Abs(x) <= tol }
	mZero := func(z complex128) bool { return cmplx.Abs(z) <= tol }
	onShell := func(x float64, z complex128) bool { return cmplx.Abs(complex(x, 0)-z) <= tol }

	arrs := triArrangements(p, m)

	if mZero(m[0]) && mZero(m[1]) && mZero(m[2]) {
		nz := make([]int, 0, 3)
		for i, x := range p {
			if !pZero(x) {
				nz = append(nz, i)
			}
		}
		switch len(nz) {
		case 0:
			return triClass{branch: triZero} // scaleless
		case 1:
			// Rotate the off-shell leg into position 3.
			for _, a := range arrs {
				if !pZero(a.p[2]) && pZero(a.p[0]) && pZero(a.p[1]) {
					a.branch = triHardLight
					return a
				}
			}
		case 2:
			// Rotate the null leg into position 1.
			for _, a := range arrs {
				if pZero(a.p[0]) && !pZero(a.p[1]) && !pZero(a.p[2]) {
					a.branch = triTwoOffShell
					return a
				}
			}
		}
		a := arrs[0]
		a.branch = triGeneric
		return a
	}

	// One massive propagator with both adjacent legs degenerate: the
	// on-shell variant first (it owns the extra double pole).
	for _, a := range arrs {
		if mZero(a.m[0]) && mZero(a.m[1]) && !mZero(a.m[2]) &&
			pZero(a.p[0]) && onShell(a.p[1], a.m[2]) {
			a.branch = triOnShellLight
			return a
		}
	}
	for _, a := range arrs {
		if mZero(a.m[0]) && mZero(a.m[1]) && !mZero(a.m[2]) && pZero(a.p[0]) {
			a.branch = triOneMassLight
			return a
		}
	}

	// Soft configuration: one massless propagator, both neighboring
	// legs on the shell of the mass they see.
	for _, a := range arrs {
		if mZero(a.m[0]) && !mZero(a.m[1]) && !mZero(a.m[2]) &&
			onShell(a.p[0], a.m[1]) && onShell(a.p[2], a.m[2]) {
			a.branch = triSoft
			return a
		}
	}

	if pZero(p[0]) && pZero(p[1]) && pZero(p[2]) {
		return triClass{branch: triAllNull, p: p, m: m}
	}

	// Two null legs: rotate the off-shell one into position 2.
	for _, a := range arrs {
		if pZero(a.p[0]) && pZero(a.p[2]) && !pZero(a.p[1]) {
			a.branch = triTwoNull
			return a
		}
	}

	// Generic: pick the arrangement with the largest |p2²| so the
	// reduction pivot quadratic is well conditioned.
	best := arrs[0]
	for _, a := range arrs[1:] {
		if math.Abs(a.p[1]) > math.Abs(best.p[1]) {
			best = a
		}
	}
	best.branch = triGeneric
	return best
}

// boxRotations enumerates the four cyclic relabelings of a box; each
// step swaps the roles of s = (p1+p2)² and t = (p2+p3)².
func boxRotations(p [4]float64, s, t float64, m [4]complex128) [4]boxClass {
	var out [4]boxClass
	a := boxClass{p: p, s: s, t: t, m: m}
	for i := 0; i < 4; i++ {
		out[i] = a
		a = boxClass{
			p: [4]float64{a.p[1], a.p[2], a.p[3], a.p[0]},
			s: a.t, t: a.s,
			m: [4]complex128{a.m[1], a.m[2], a.m[3], a.m[0]},
		}
	}
	return out
}

func (c *Config) classifyFourPoint(p [4]float64, s, t float64, m [4]complex128) boxClass {
	scale := kinScale2(append(p[:], s, t), m[:])
	if scale == 0 {
		return boxClass{branch: boxZero}
	}
	tol := c.OnShellThreshold * scale
	pZero := func(x float64) bool { return math.Abs(x) <= tol }
	mZero := func(z complex128) bool { return cmplx.Abs(z) <= tol }

	massless := true
	for _, mm := range m {
		if !mZero(mm) {
			massless = false
			break
		}
	}
	if !massless {
		return boxClass{branch: boxReduce, p: p, s: s, t: t, m: m, reason: "massive propagators"}
	}
	if pZero(s) || pZero(t) {
		return boxClass{branch: boxReduce, p: p, s: s, t: t, m: m, reason: "vanishing s or t"}
	}

	rots := boxRotations(p, s, t, m)
	nOff := 0
	for _, x := range p {
		if !pZero(x) {
			nOff++
		}
	}
	switch nOff {
	case 0:
		a := rots[0]
		a.branch = boxZeroMass
		return a
	case 1:
		for _, a := range rots {
			if pZero(a.p[0]) && pZero(a.p[1]) && pZero(a.p[2]) {
				a.branch = boxOneMass
				return a
			}
		}
	case 2:
		for _, a := range rots {
			if pZero(a.p[0]) && pZero(a.p[2]) && !pZero(a.p[1]) && !pZero(a.p[3]) {
				a.branch = boxTwoMassEasy
				return a
			}
		}
	}
	return boxClass{branch: boxReduce, p: p, s: s, t: t, m: m,
		reason: "adjacent or three-plus off-shell legs"}
}
