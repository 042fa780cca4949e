package curve

import (
	"errors"
	"math/big"
)

// ErrNotInvertible is returned by ModInverse when the operand shares a
// factor with the modulus.
var ErrNotInvertible = errors.New("curve: value is not invertible")

// Mod returns a mod m as a non-negative residue in [0, m).
func Mod(a, m *big.Int) *big.Int {
	r := new(big.Int).Mod(a, m)
	if r.Sign() < 0 {
		r.Add(r, m)
	}
	return r
}

// ModInverse returns the multiplicative inverse of a modulo m using the
// extended Euclidean algorithm. It fails with ErrNotInvertible when
// gcd(a, m) != 1; over a prime modulus that only happens for multiples of
// the modulus itself, but it is checked rather than assumed.
func ModInverse(a, m *big.Int) (*big.Int, error) {
	r0 := new(big.Int).Set(m)
	r1 := Mod(a, m)
	t0 := big.NewInt(0)
	t1 := big.NewInt(1)

	for r1.Sign() != 0 {
		q := new(big.Int).Div(r0, r1)
		r0, r1 = r1, r0.Sub(r0, new(big.Int).Mul(q, r1))
		t0, t1 = t1, t0.Sub(t0, new(big.Int).Mul(q, t1))
	}
	if r0.Cmp(bigOne) != 0 {
		return nil, ErrNotInvertible
	}
	return Mod(t0, m), nil
}

// ModPow returns base^exp mod m by square-and-multiply. exp must be
// non-negative.
func ModPow(base, exp, m *big.Int) *big.Int {
	result := big.NewInt(1)
	b := Mod(base, m)
	for i := 0; i < exp.BitLen(); i++ {
		if exp.Bit(i) == 1 {
			result.Mul(result, b)
			result.Mod(result, m)
		}
		b.Mul(b, b)
		b.Mod(b, m)
	}
	return result
}
