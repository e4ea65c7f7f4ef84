package geom

import "math"

// SolveQuadratic returns the real roots of ax² + bx + c = 0 in ascending
// order. It is used to find where a line crosses a circle boundary.
//
// A (near) zero a falls back to the linear equation bx + c = 0. When every
// coefficient is zero the single root 0 is returned. Two distinct roots are
// computed with the cancellation-free form q = -(b + sign(b)·√disc)/2,
// x1 = q/a, x2 = c/q.
func SolveQuadratic(a, b, c float64) []float64 {
	// Normalise to x² + p·x + q = 0; a tiny a makes p or q non-finite.
	q := c / a
	p := b / a
	if !isFinite(q) || !isFinite(p) {
		return solveLinear(b, c)
	}

	disc := p*p - 4*q
	switch {
	case !isFinite(disc):
		// p² overflowed. One root is close to -p, the other follows
		// from the product of the roots being q.
		return sortedRoots(-p, q/-p)
	case disc < 0:
		return nil
	case disc == 0:
		return []float64{-0.5 * p}
	}

	r1 := -0.5 * (p + math.Copysign(math.Sqrt(disc), p))
	return sortedRoots(r1, q/r1)
}

func sortedRoots(r1, r2 float64) []float64 {
	if !isFinite(r2) {
		return []float64{r1}
	}
	if r1 > r2 {
		r1, r2 = r2, r1
	}
	return []float64{r1, r2}
}

func solveLinear(b, c float64) []float64 {
	if x := -c / b; isFinite(x) {
		return []float64{x}
	}
	if b == 0 && c == 0 {
		return []float64{0}
	}
	return nil
}

// isFinite reports whether x is neither NaN nor ±Inf.
func isFinite(x float64) bool {
	return !math.IsNaN(x) && !math.IsInf(x, 0)
}
