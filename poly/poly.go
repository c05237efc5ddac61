// Package poly implements sparse univariate polynomial arithmetic over
// fixed-width integer coefficients.
package poly

import (
	"cmp"
	"slices"
	"strconv"
	"strings"

	"github.com/bits-and-blooms/bitset"
)

// Term is a single (exponent, coefficient) pair of a sparse polynomial.
type Term struct {
	Exp  int
	Coef int64
}

// Poly is a sparse univariate polynomial with int64 coefficients.
//
// Terms are stored in descending exponent order with no zero coefficients,
// so the first term is always the leading term. The only exception is the
// zero polynomial, stored as the single term (0, 0). All operations return
// a fresh Poly in this canonical form and never mutate their operands, so
// values can be shared freely across goroutines.
//
// Coefficients are fixed-width: multiply-accumulate over large or many
// terms can overflow int64 and wraps silently.
type Poly struct {
	terms []Term
}

// New creates a new Poly, equal to the zero polynomial.
func New() Poly {
	return Poly{terms: []Term{{0, 0}}}
}

// From creates a new Poly from a sequence of terms.
// Terms may appear in any order; coefficients at duplicate exponents are
// summed. Panics if an exponent is negative.
func From(terms ...Term) Poly {
	acc := make(map[int]int64, len(terms))
	for _, t := range terms {
		if t.Exp < 0 {
			panic("poly: negative exponent")
		}
		acc[t.Exp] += t.Coef
	}
	return fromAccum(acc)
}

// fromAccum flattens an exponent-to-coefficient accumulator into a
// canonical Poly.
func fromAccum(acc map[int]int64) Poly {
	terms := make([]Term, 0, len(acc))
	for e, c := range acc {
		terms = append(terms, Term{e, c})
	}
	return clean(terms)
}

// clean brings terms into canonical form: zero coefficients are dropped,
// the rest is sorted by descending exponent, and the zero polynomial
// becomes the single term (0, 0). clean takes ownership of terms.
func clean(terms []Term) Poly {
	terms = slices.DeleteFunc(terms, func(t Term) bool { return t.Coef == 0 })
	if len(terms) == 0 {
		terms = append(terms, Term{0, 0})
	}
	slices.SortFunc(terms, func(a, b Term) int { return cmp.Compare(b.Exp, a.Exp) })
	return Poly{terms: terms}
}

// IsZero reports whether p is the zero polynomial.
func (p Poly) IsZero() bool {
	return len(p.terms) == 0 || (len(p.terms) == 1 && p.terms[0].Coef == 0)
}

// Degree returns the exponent of the leading term.
// The degree of the zero polynomial is 0.
func (p Poly) Degree() int {
	if len(p.terms) == 0 {
		return 0
	}
	return p.terms[0].Exp
}

// LeadingCoeff returns the coefficient of the leading term.
func (p Poly) LeadingCoeff() int64 {
	if len(p.terms) == 0 {
		return 0
	}
	return p.terms[0].Coef
}

// CanonicalForm returns the terms of p in descending exponent order with
// no zero coefficients. The zero polynomial yields the single term (0, 0).
// The returned slice is a copy and can be modified by the caller.
func (p Poly) CanonicalForm() []Term {
	if p.IsZero() {
		return []Term{{0, 0}}
	}
	out := make([]Term, len(p.terms))
	copy(out, p.terms)
	return out
}

// Support returns the set of exponents with nonzero coefficients.
// The zero polynomial has empty support.
func (p Poly) Support() *bitset.BitSet {
	s := bitset.New(uint(p.Degree() + 1))
	for _, t := range p.terms {
		if t.Coef != 0 {
			s.Set(uint(t.Exp))
		}
	}
	return s
}

// Equal reports whether p and q represent the same polynomial.
func (p Poly) Equal(q Poly) bool {
	if !p.Support().Equal(q.Support()) {
		return false
	}

	a, b := p.CanonicalForm(), q.CanonicalForm()
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

// String formats p for debugging, e.g. "3x^2 - x + 1".
func (p Poly) String() string {
	if p.IsZero() {
		return "0"
	}

	var sb strings.Builder
	for i, t := range p.terms {
		c := t.Coef
		switch {
		case i == 0 && c < 0:
			sb.WriteString("-")
			c = -c
		case i > 0 && c < 0:
			sb.WriteString(" - ")
			c = -c
		case i > 0:
			sb.WriteString(" + ")
		}

		if c != 1 || t.Exp == 0 {
			sb.WriteString(strconv.FormatInt(c, 10))
		}
		if t.Exp >= 1 {
			sb.WriteString("x")
		}
		if t.Exp > 1 {
			sb.WriteString("^")
			sb.WriteString(strconv.Itoa(t.Exp))
		}
	}
	return sb.String()
}
