package num_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/sp301415/sparse-poly/num"
)

func TestCeilDiv(t *testing.T) {
	assert.Equal(t, 0, num.CeilDiv(0, 4))
	assert.Equal(t, 1, num.CeilDiv(1, 4))
	assert.Equal(t, 1, num.CeilDiv(4, 4))
	assert.Equal(t, 2, num.CeilDiv(5, 4))
	assert.Equal(t, 3, num.CeilDiv(9, 4))

	assert.Panics(t, func() { num.CeilDiv(1, 0) })
}

func TestAbs(t *testing.T) {
	assert.Equal(t, int64(3), num.Abs(3))
	assert.Equal(t, int64(3), num.Abs(-3))
	assert.Equal(t, int64(0), num.Abs(0))
}

func TestGcd(t *testing.T) {
	assert.Equal(t, int64(6), num.Gcd(12, 18))
	assert.Equal(t, int64(6), num.Gcd(-12, 18))
	assert.Equal(t, int64(7), num.Gcd(7, 0))
	assert.Equal(t, int64(7), num.Gcd(0, -7))
	assert.Equal(t, int64(0), num.Gcd(0, 0))
	assert.Equal(t, int64(1), num.Gcd(17, 4))
}

func TestPow(t *testing.T) {
	assert.Equal(t, int64(1), num.Pow(5, 0))
	assert.Equal(t, int64(5), num.Pow(5, 1))
	assert.Equal(t, int64(1024), num.Pow(2, 10))
	assert.Equal(t, int64(-27), num.Pow(-3, 3))
	assert.Equal(t, int64(1), num.Pow(0, 0))
	assert.Equal(t, int64(0), num.Pow(0, 3))

	assert.Panics(t, func() { num.Pow(2, -1) })
}
