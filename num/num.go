// Package num implements various utility functions regarding numeric types.
package num

// CeilDiv returns the ceiling of x divided by y.
// Panics if y is not positive.
func CeilDiv(x, y int) int {
	if y <= 0 {
		panic("non-positive divisor")
	}
	return (x + y - 1) / y
}

// Abs returns the absolute value of x.
func Abs(x int64) int64 {
	if x < 0 {
		return -x
	}
	return x
}

// Gcd returns the greatest common divisor of x and y, ignoring signs.
// Gcd(0, 0) is 0.
func Gcd(x, y int64) int64 {
	x, y = Abs(x), Abs(y)
	for y != 0 {
		x, y = y, x%y
	}
	return x
}

// Pow returns x^y using exponentiation by squaring.
// Panics if y is negative.
func Pow(x int64, y int) int64 {
	if y < 0 {
		panic("negative exponent")
	}

	r := int64(1)
	for y > 0 {
		if y&1 == 1 {
			r *= x
		}
		x *= x
		y >>= 1
	}
	return r
}
