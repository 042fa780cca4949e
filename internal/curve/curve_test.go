package curve

import (
	"bytes"
	"crypto/rand"
	"errors"
	"math/big"
	"testing"

	ed "filippo.io/edwards25519"
)

func randomPoint(t *testing.T) Point {
	t.Helper()
	k, err := RandomScalar(rand.Reader)
	if err != nil {
		t.Fatalf("RandomScalar: %v", err)
	}
	return ScalarBaseMult(k)
}

func TestBasepointOnCurve(t *testing.T) {
	if !IsOnCurve(Basepoint()) {
		t.Fatal("basepoint fails curve equation")
	}
	if !IsOnCurve(Identity()) {
		t.Fatal("identity fails curve equation")
	}
}

func TestEncodeDecodeRoundTrip(t *testing.T) {
	for i := 0; i < 32; i++ {
		p := randomPoint(t)
		q, err := Decode(p.Encode())
		if err != nil {
			t.Fatalf("Decode: %v", err)
		}
		if !p.Equal(q) {
			t.Fatalf("round trip changed the point: %v vs %v", p, q)
		}
	}
}

func TestIdentityEncoding(t *testing.T) {
	enc := Identity().Encode()
	var want [PointBytes]byte
	want[0] = 1
	if enc != want {
		t.Fatalf("identity encodes as %x", enc)
	}
	p, err := Decode(enc)
	if err != nil {
		t.Fatalf("Decode(identity): %v", err)
	}
	if !p.IsIdentity() {
		t.Fatal("decoded identity is not the identity")
	}
}

func TestDecodeRejectsNonPoints(t *testing.T) {
	// y = P is out of field range.
	var overflow [PointBytes]byte
	copy(overflow[:], leBytes(P, PointBytes))
	if _, err := Decode(overflow); !errors.Is(err, ErrInvalidPoint) {
		t.Fatalf("Decode(y=P) err = %v, want ErrInvalidPoint", err)
	}

	// y = 1 with the sign bit set would need x = -0, which is not canonical.
	var negZero [PointBytes]byte
	negZero[0] = 1
	negZero[PointBytes-1] = 0x80
	if _, err := Decode(negZero); !errors.Is(err, ErrInvalidPoint) {
		t.Fatalf("Decode(-0) err = %v, want ErrInvalidPoint", err)
	}

	// Roughly half of all y values have no matching x; scan for one and
	// make sure it is refused rather than silently mapped to a point.
	var b [PointBytes]byte
	found := false
	for y := byte(2); y < 100; y++ {
		b[0] = y
		if _, err := Decode(b); err != nil {
			if !errors.Is(err, ErrInvalidPoint) {
				t.Fatalf("Decode err = %v, want ErrInvalidPoint", err)
			}
			found = true
			break
		}
	}
	if !found {
		t.Fatal("no invalid encoding found in scan")
	}
}

func TestGroupLawConsistency(t *testing.T) {
	for i := 0; i < 8; i++ {
		a, err := RandomScalar(rand.Reader)
		if err != nil {
			t.Fatalf("RandomScalar: %v", err)
		}
		b, err := RandomScalar(rand.Reader)
		if err != nil {
			t.Fatalf("RandomScalar: %v", err)
		}
		sum := Mod(new(big.Int).Add(a, b), N)

		lhs := Add(ScalarBaseMult(a), ScalarBaseMult(b))
		rhs := ScalarBaseMult(sum)
		if !lhs.Equal(rhs) {
			t.Fatalf("a*G + b*G != (a+b)*G for a=%v b=%v", a, b)
		}
	}
}

func TestScalarMultReducesScalar(t *testing.T) {
	k := big.NewInt(42)
	unreduced := new(big.Int).Add(k, N)
	if !ScalarMult(Basepoint(), k).Equal(ScalarMult(Basepoint(), unreduced)) {
		t.Fatal("k*G != (k+N)*G")
	}
	if !ScalarMult(Basepoint(), big.NewInt(0)).IsIdentity() {
		t.Fatal("0*G is not the identity")
	}
	if !ScalarMult(Basepoint(), N).IsIdentity() {
		t.Fatal("N*G is not the identity")
	}
}

func TestAddIdentityAndInverse(t *testing.T) {
	p := randomPoint(t)
	if !Add(p, Identity()).Equal(p) {
		t.Fatal("P + identity != P")
	}
	neg := Point{X: Mod(new(big.Int).Neg(p.X), P), Y: new(big.Int).Set(p.Y)}
	if !Add(p, neg).IsIdentity() {
		t.Fatal("P + (-P) != identity")
	}
	if !Double(p).Equal(Add(p, p)) {
		t.Fatal("Double(P) != P + P")
	}
}

func TestIsSmallOrder(t *testing.T) {
	if !IsSmallOrder(Identity()) {
		t.Fatal("identity should be small order")
	}
	if IsSmallOrder(Basepoint()) {
		t.Fatal("basepoint flagged as small order")
	}
}

func TestLittleEndianConvention(t *testing.T) {
	var b [ScalarBytes]byte
	b[0] = 1
	if ScalarFromBytes(b).Cmp(big.NewInt(1)) != 0 {
		t.Fatal("first byte is not the least significant")
	}
	b[0] = 0
	b[1] = 1
	if ScalarFromBytes(b).Cmp(big.NewInt(256)) != 0 {
		t.Fatal("second byte is not worth 256")
	}

	round := ScalarToBytes(big.NewInt(256))
	if round != b {
		t.Fatalf("ScalarToBytes(256) = %x", round)
	}
}

// TestAgainstReferenceImplementation pins the arithmetic and the wire
// encoding to filippo.io/edwards25519.
func TestAgainstReferenceImplementation(t *testing.T) {
	for i := 0; i < 16; i++ {
		k, err := RandomScalar(rand.Reader)
		if err != nil {
			t.Fatalf("RandomScalar: %v", err)
		}
		kb := ScalarToBytes(k)

		refScalar, err := ed.NewScalar().SetCanonicalBytes(kb[:])
		if err != nil {
			t.Fatalf("reference SetCanonicalBytes: %v", err)
		}
		refPoint := ed.NewIdentityPoint().ScalarBaseMult(refScalar)

		mine := ScalarBaseMult(k).Encode()
		if !bytes.Equal(mine[:], refPoint.Bytes()) {
			t.Fatalf("scalar base mult disagrees with reference for k=%v", k)
		}
	}
}

func TestAddAgainstReferenceImplementation(t *testing.T) {
	p := randomPoint(t)
	q := randomPoint(t)

	pe, qe := p.Encode(), q.Encode()
	refP, err := ed.NewIdentityPoint().SetBytes(pe[:])
	if err != nil {
		t.Fatalf("reference SetBytes: %v", err)
	}
	refQ, err := ed.NewIdentityPoint().SetBytes(qe[:])
	if err != nil {
		t.Fatalf("reference SetBytes: %v", err)
	}
	refSum := ed.NewIdentityPoint().Add(refP, refQ)

	mine := Add(p, q).Encode()
	if !bytes.Equal(mine[:], refSum.Bytes()) {
		t.Fatal("point addition disagrees with reference")
	}
}
