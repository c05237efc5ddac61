package poly

import "errors"

// ErrZeroDivisor is returned when dividing by the zero polynomial.
var ErrZeroDivisor = errors.New("poly: division by zero polynomial")

// QuoRem returns the quotient and remainder of polynomial long division
// of p by d. Returns ErrZeroDivisor if d is the zero polynomial.
//
// Leading coefficients are divided with truncating integer division. When
// a reduction step does not divide exactly, the quotient step is truncated
// and the remainder differs from long division over the rationals; once a
// step truncates to zero the reduction cannot progress and the current
// remainder is returned as is.
func (p Poly) QuoRem(d Poly) (quo, rem Poly, err error) {
	if d.IsZero() {
		return Poly{}, Poly{}, ErrZeroDivisor
	}

	quoAcc := make(map[int]int64)
	rem = From(p.terms...)

	for rem.Degree() >= d.Degree() && !rem.IsZero() {
		shiftExp := rem.Degree() - d.Degree()
		shiftCoef := rem.LeadingCoeff() / d.LeadingCoeff()
		if shiftCoef == 0 {
			break
		}
		quoAcc[shiftExp] += shiftCoef

		step := From(Term{shiftExp, shiftCoef})
		rem = rem.Sub(step.Mul(d))
	}

	return fromAccum(quoAcc), rem, nil
}

// Rem returns the remainder of polynomial long division of p by d.
// Returns ErrZeroDivisor if d is the zero polynomial.
func (p Poly) Rem(d Poly) (Poly, error) {
	_, rem, err := p.QuoRem(d)
	return rem, err
}
