package poly

import "runtime"

// mulParallelThreshold is the number of term pairs below which Mul stays
// sequential. Fan-out overhead dominates under roughly a 16x16 product.
const mulParallelThreshold = 256

// Mul returns p * q, the convolution of their term lists: for every pair
// of terms the coefficient product is accumulated at the sum of exponents.
//
// Products above a size threshold are computed by a bounded pool of
// workers, one contiguous chunk of p's terms each. Accumulation is
// commutative, so the result is identical for any worker count.
func (p Poly) Mul(q Poly) Poly {
	if p.IsZero() || q.IsZero() {
		return New()
	}

	workers := min(runtime.NumCPU(), len(p.terms))
	if len(p.terms)*len(q.terms) < mulParallelThreshold {
		workers = 1
	}
	if workers <= 1 {
		acc := make(map[int]int64, len(p.terms)+len(q.terms))
		convolveAssign(p.terms, q.terms, acc)
		return fromAccum(acc)
	}

	return mulParallel(p.terms, q.terms, workers)
}

// convolveAssign accumulates the product of every pair of terms from a and
// b into acc, keyed by the sum of exponents.
func convolveAssign(a, b []Term, acc map[int]int64) {
	for _, ta := range a {
		for _, tb := range b {
			acc[ta.Exp+tb.Exp] += ta.Coef * tb.Coef
		}
	}
}
