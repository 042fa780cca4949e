package curve

import (
	"errors"
	"math/big"
)

// ErrInvalidPoint is returned by Decode when a byte string does not
// correspond to a point on the curve.
var ErrInvalidPoint = errors.New("curve: invalid point encoding")

// PointBytes is the width of the compressed point encoding: the y
// coordinate little-endian, with the top bit of the last byte carrying the
// sign of x.
const PointBytes = 32

// edwards25519 parameters: -x^2 + y^2 = 1 + d*x^2*y^2 over GF(2^255-19),
// with a basepoint generating the prime-order subgroup of order N.
var (
	// P is the field prime 2^255 - 19.
	P *big.Int
	// N is the order of the basepoint, 2^252 + 27742317777372353535851937790883648493.
	N *big.Int
	// D is the curve constant -121665/121666.
	D *big.Int

	baseX, baseY *big.Int

	// sqrtM1 is sqrt(-1) mod P, used to recover x during decoding.
	sqrtM1 *big.Int

	// cofactor is the index of the prime-order subgroup in the full group.
	cofactor = big.NewInt(8)

	bigOne = big.NewInt(1)
)

func init() {
	P, _ = new(big.Int).SetString("7fffffffffffffffffffffffffffffffffffffffffffffffffffffffffffffed", 16)
	N, _ = new(big.Int).SetString("1000000000000000000000000000000014def9dea2f79cd65812631a5cf5d3ed", 16)
	D, _ = new(big.Int).SetString("37095705934669439343138083508754565189542113879843219016388785533085940283555", 10)
	baseX, _ = new(big.Int).SetString("15112221349535400772501151409588531511454012693041857206046113283949847762202", 10)
	baseY, _ = new(big.Int).SetString("46316835694926478169428394003475163141307993866256225615783033603165251855960", 10)
	sqrtM1, _ = new(big.Int).SetString("19681161376707505956807079304988542015446066515923890162744021073123829784752", 10)
}

// Point is an affine curve point. The zero value is not a valid point; use
// Identity, Basepoint or Decode.
type Point struct {
	X, Y *big.Int
}

// Identity returns the neutral element (0, 1).
func Identity() Point {
	return Point{X: big.NewInt(0), Y: big.NewInt(1)}
}

// Basepoint returns the canonical generator G.
func Basepoint() Point {
	return Point{X: new(big.Int).Set(baseX), Y: new(big.Int).Set(baseY)}
}

// Equal reports whether p and q are the same point.
func (p Point) Equal(q Point) bool {
	return p.X.Cmp(q.X) == 0 && p.Y.Cmp(q.Y) == 0
}

// IsIdentity reports whether p is the neutral element.
func (p Point) IsIdentity() bool {
	return p.X.Sign() == 0 && p.Y.Cmp(bigOne) == 0
}

// IsOnCurve reports whether p satisfies the curve equation
// -x^2 + y^2 = 1 + d*x^2*y^2 (mod P).
func IsOnCurve(p Point) bool {
	x2 := Mod(new(big.Int).Mul(p.X, p.X), P)
	y2 := Mod(new(big.Int).Mul(p.Y, p.Y), P)

	left := Mod(new(big.Int).Sub(y2, x2), P)

	right := new(big.Int).Mul(x2, y2)
	right.Mul(right, D)
	right.Add(right, bigOne)
	right = Mod(right, P)

	return left.Cmp(right) == 0
}

// Add returns p + q using the complete twisted Edwards addition law:
//
//	x3 = (x1*y2 + y1*x2) / (1 + d*x1*x2*y1*y2)
//	y3 = (y1*y2 + x1*x2) / (1 - d*x1*x2*y1*y2)
//
// The denominators are never zero for points on the curve because d is a
// non-square mod P, so the law has no exceptional cases, identity included.
func Add(p, q Point) Point {
	x1y2 := new(big.Int).Mul(p.X, q.Y)
	y1x2 := new(big.Int).Mul(p.Y, q.X)
	x1x2 := new(big.Int).Mul(p.X, q.X)
	y1y2 := new(big.Int).Mul(p.Y, q.Y)

	dxxyy := new(big.Int).Mul(x1x2, y1y2)
	dxxyy.Mul(dxxyy, D)
	dxxyy = Mod(dxxyy, P)

	xDen := mustInverse(new(big.Int).Add(bigOne, dxxyy))
	yDen := mustInverse(new(big.Int).Sub(bigOne, dxxyy))

	x3 := new(big.Int).Add(x1y2, y1x2)
	x3.Mul(x3, xDen)
	y3 := new(big.Int).Add(y1y2, x1x2)
	y3.Mul(y3, yDen)

	return Point{X: Mod(x3, P), Y: Mod(y3, P)}
}

// Double returns 2*p.
func Double(p Point) Point {
	return Add(p, p)
}

// ScalarMult returns k*p. The scalar is reduced mod N first, so any
// integer, canonical residue or not, is a well-defined multiplier. The
// result is accumulated into the identity by double-and-add, processing
// the reduced scalar from the least significant bit upward.
func ScalarMult(p Point, k *big.Int) Point {
	s := Mod(k, N)

	result := Identity()
	addend := Point{X: new(big.Int).Set(p.X), Y: new(big.Int).Set(p.Y)}
	for i := 0; i < s.BitLen(); i++ {
		if s.Bit(i) == 1 {
			result = Add(result, addend)
		}
		addend = Double(addend)
	}
	return result
}

// ScalarBaseMult returns k*G.
func ScalarBaseMult(k *big.Int) Point {
	return ScalarMult(Basepoint(), k)
}

// IsSmallOrder reports whether p lies in the small cofactor subgroup, i.e.
// 8*p is the identity. Shared DH outputs landing here carry no secret
// contribution and must be rejected by callers.
func IsSmallOrder(p Point) bool {
	return ScalarMult(p, cofactor).IsIdentity()
}

// Encode returns the 32-byte compressed form of p: the y coordinate
// little-endian with the parity of x stored in the top bit of the final
// byte. Coordinates are already affine, so no projective normalisation is
// needed beyond canonical reduction.
func (p Point) Encode() [PointBytes]byte {
	var out [PointBytes]byte
	y := Mod(p.Y, P)
	copy(out[:], leBytes(y, PointBytes))
	if Mod(p.X, P).Bit(0) == 1 {
		out[PointBytes-1] |= 0x80
	}
	return out
}

// Decode parses a compressed point, recovering x from y via a field square
// root and the encoded sign bit. It returns ErrInvalidPoint when the
// candidate y admits no square root, i.e. the bytes name no point on the
// curve, and never silently substitutes a default.
func Decode(b [PointBytes]byte) (Point, error) {
	sign := b[PointBytes-1] >> 7
	var yb [PointBytes]byte
	copy(yb[:], b[:])
	yb[PointBytes-1] &= 0x7f

	y := leInt(yb[:])
	if y.Cmp(P) >= 0 {
		return Point{}, ErrInvalidPoint
	}

	x, err := recoverX(y, sign)
	if err != nil {
		return Point{}, err
	}
	p := Point{X: x, Y: y}
	if !IsOnCurve(p) {
		return Point{}, ErrInvalidPoint
	}
	return p, nil
}

// recoverX solves x^2 = (y^2 - 1) / (d*y^2 + 1) and picks the root whose
// parity matches the sign bit. With P = 5 mod 8 the candidate root is
// u^((P+3)/8), corrected by sqrt(-1) when it squares to -u.
func recoverX(y *big.Int, sign byte) (*big.Int, error) {
	y2 := Mod(new(big.Int).Mul(y, y), P)

	u := Mod(new(big.Int).Sub(y2, bigOne), P)
	den := new(big.Int).Mul(D, y2)
	den.Add(den, bigOne)
	v, err := ModInverse(den, P)
	if err != nil {
		return nil, ErrInvalidPoint
	}
	x2 := Mod(new(big.Int).Mul(u, v), P)

	exp := new(big.Int).Add(P, big.NewInt(3))
	exp.Rsh(exp, 3)
	x := ModPow(x2, exp, P)

	if Mod(new(big.Int).Mul(x, x), P).Cmp(x2) != 0 {
		x = Mod(new(big.Int).Mul(x, sqrtM1), P)
		if Mod(new(big.Int).Mul(x, x), P).Cmp(x2) != 0 {
			return nil, ErrInvalidPoint
		}
	}

	if x.Sign() == 0 && sign == 1 {
		// -0 is not a canonical encoding.
		return nil, ErrInvalidPoint
	}
	if byte(x.Bit(0)) != sign {
		x = new(big.Int).Sub(P, x)
	}
	return x, nil
}

// mustInverse inverts a denominator of the complete addition law mod P.
// Such denominators cannot vanish for curve points, so a failure here
// means the operands were never valid points.
func mustInverse(a *big.Int) *big.Int {
	inv, err := ModInverse(a, P)
	if err != nil {
		panic("curve: addition denominator not invertible: " + err.Error())
	}
	return inv
}
