package poly

import "github.com/sp301415/sparse-poly/num"

// accum copies p's terms into a fresh exponent-to-coefficient accumulator
// with room for sizeHint entries.
func (p Poly) accum(sizeHint int) map[int]int64 {
	acc := make(map[int]int64, sizeHint)
	for _, t := range p.terms {
		acc[t.Exp] += t.Coef
	}
	return acc
}

// Add returns p + q.
func (p Poly) Add(q Poly) Poly {
	acc := p.accum(len(p.terms) + len(q.terms))
	for _, t := range q.terms {
		acc[t.Exp] += t.Coef
	}
	return fromAccum(acc)
}

// AddScalar returns p + c, adding c at exponent zero.
// Scalar addition commutes, so this is also c + p.
func (p Poly) AddScalar(c int64) Poly {
	acc := p.accum(len(p.terms) + 1)
	acc[0] += c
	return fromAccum(acc)
}

// Sub returns p - q.
func (p Poly) Sub(q Poly) Poly {
	acc := p.accum(len(p.terms) + len(q.terms))
	for _, t := range q.terms {
		acc[t.Exp] -= t.Coef
	}
	return fromAccum(acc)
}

// Neg returns -p.
func (p Poly) Neg() Poly {
	return p.ScalarMul(-1)
}

// ScalarMul returns p * c.
// Scalar multiplication commutes, so this is also c * p.
// A zero scalar collapses the result to the zero polynomial.
func (p Poly) ScalarMul(c int64) Poly {
	terms := make([]Term, 0, len(p.terms))
	for _, t := range p.terms {
		terms = append(terms, Term{t.Exp, t.Coef * c})
	}
	return clean(terms)
}

// Evaluate returns p(x).
func (p Poly) Evaluate(x int64) int64 {
	var sum int64
	for _, t := range p.terms {
		sum += t.Coef * num.Pow(x, t.Exp)
	}
	return sum
}

// Content returns the greatest common divisor of all coefficients of p,
// as a non-negative value. The content of the zero polynomial is 0.
func (p Poly) Content() int64 {
	var g int64
	for _, t := range p.terms {
		g = num.Gcd(g, t.Coef)
	}
	return g
}

// PrimitivePart returns p divided by its content.
// The primitive part of the zero polynomial is the zero polynomial.
func (p Poly) PrimitivePart() Poly {
	g := p.Content()
	if g == 0 {
		return New()
	}

	terms := make([]Term, 0, len(p.terms))
	for _, t := range p.terms {
		terms = append(terms, Term{t.Exp, t.Coef / g})
	}
	return clean(terms)
}
