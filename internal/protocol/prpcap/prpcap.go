package prpcap

import (
	"crypto/sha256"
	"crypto/sha512"
	"encoding/binary"
	"errors"
	"fmt"
	"io"
	"math/big"

	"golang.org/x/crypto/hkdf"

	"prpcap/internal/curve"
	"prpcap/internal/domain"
	"prpcap/internal/util/memzero"
)

// Protocol tags. The derive tag separates capability scalars from every
// other use of the hash; the secret info separates the convergence KDF.
const (
	DeriveTag  = "prpcap/v1 derive"
	secretInfo = "prpcap/v1 secret"
)

// ErrConvergence indicates that the sender- and receiver-side views of the
// same exchange produced different secrets. It is an implementation-bug
// signal and must fail the operation outright.
var ErrConvergence = errors.New("prpcap: sender and receiver secrets diverge")

// HashToScalar derives the per-index scalar t_i from the protocol tag, the
// big-endian index and the two epoch public encodings. The transcript is
// hashed with SHA-512, whose 64-byte output is twice the scalar width, so
// the final reduction mod N introduces no usable bias. Identical inputs
// always produce the identical scalar.
func HashToScalar(tag string, index uint32, a, b domain.PointBytes) *big.Int {
	h := sha512.New()
	h.Write([]byte(tag))
	var idx [4]byte
	binary.BigEndian.PutUint32(idx[:], index)
	h.Write(idx[:])
	h.Write(a[:])
	h.Write(b[:])

	digest := h.Sum(nil)
	return reduceWide(digest)
}

// NewEpoch generates a fresh epoch key pair from r and self-checks that
// capability derivation and private-scalar recovery agree at index 0.
func NewEpoch(r io.Reader) (domain.EpochKeyPair, error) {
	s1, err := curve.RandomScalar(r)
	if err != nil {
		return domain.EpochKeyPair{}, err
	}
	s2, err := curve.RandomScalar(r)
	if err != nil {
		return domain.EpochKeyPair{}, err
	}

	ep := domain.EpochKeyPair{
		A:  curve.ScalarBaseMult(s1).Encode(),
		B:  curve.ScalarBaseMult(s2).Encode(),
		S1: curve.ScalarToBytes(s1),
		S2: curve.ScalarToBytes(s2),
	}

	v, err := PrivateScalar(ep, 0)
	if err != nil {
		return domain.EpochKeyPair{}, err
	}
	want, err := Capability(ep.A, ep.B, 0)
	if err != nil {
		return domain.EpochKeyPair{}, err
	}
	got := curve.ScalarBaseMult(curve.ScalarFromBytes(v)).Encode()
	memzero.Zero(v[:])
	if got != want.V {
		return domain.EpochKeyPair{}, ErrConvergence
	}
	return ep, nil
}

// Capability derives V_i = A + t_i*B. It is a pure function of public
// values and may be evaluated by anyone holding the epoch publics.
func Capability(a, b domain.PointBytes, index uint32) (domain.Capability, error) {
	ptA, err := curve.Decode(a)
	if err != nil {
		return domain.Capability{}, fmt.Errorf("capability point A: %w", err)
	}
	ptB, err := curve.Decode(b)
	if err != nil {
		return domain.Capability{}, fmt.Errorf("capability point B: %w", err)
	}

	t := HashToScalar(DeriveTag, index, a, b)
	v := curve.Add(ptA, curve.ScalarMult(ptB, t))
	return domain.Capability{Index: index, V: v.Encode()}, nil
}

// PrivateScalar recovers v_i = s1 + t_i*s2 mod N for the given index. This
// is the one operation that requires the epoch secrets and must never
// leave the receiver's trust boundary.
func PrivateScalar(ep domain.EpochKeyPair, index uint32) (domain.ScalarBytes, error) {
	t := HashToScalar(DeriveTag, index, ep.A, ep.B)

	s1 := curve.ScalarFromBytes(ep.S1)
	s2 := curve.ScalarFromBytes(ep.S2)

	v := new(big.Int).Mul(t, s2)
	v.Add(v, s1)
	out := curve.ScalarToBytes(v)

	zeroInt(s1)
	zeroInt(s2)
	zeroInt(v)
	return out, nil
}

// NewEphemeral generates a single-message key pair from r.
func NewEphemeral(r io.Reader) (domain.EphemeralKeyPair, error) {
	e, err := curve.RandomScalar(r)
	if err != nil {
		return domain.EphemeralKeyPair{}, err
	}
	return domain.EphemeralKeyPair{
		Priv: curve.ScalarToBytes(e),
		Pub:  curve.ScalarBaseMult(e).Encode(),
	}, nil
}

// SenderSecret computes the sender's view of the shared secret:
// KDF(e * V_i) for the capability derived from (A, B, index).
func SenderSecret(eph domain.EphemeralKeyPair, a, b domain.PointBytes, index uint32) (domain.SharedSecret, error) {
	capability, err := Capability(a, b, index)
	if err != nil {
		return domain.SharedSecret{}, err
	}
	v, err := curve.Decode(capability.V)
	if err != nil {
		return domain.SharedSecret{}, err
	}
	return agree(curve.ScalarFromBytes(eph.Priv), v)
}

// ReceiverSecret computes the receiver's view: KDF(v_i * E) for the
// ephemeral public carried with the message.
func ReceiverSecret(ep domain.EpochKeyPair, ephPub domain.PointBytes, index uint32) (domain.SharedSecret, error) {
	e, err := curve.Decode(ephPub)
	if err != nil {
		return domain.SharedSecret{}, fmt.Errorf("ephemeral point: %w", err)
	}
	v, err := PrivateScalar(ep, index)
	if err != nil {
		return domain.SharedSecret{}, err
	}
	sec, err := agree(curve.ScalarFromBytes(v), e)
	memzero.Zero(v[:])
	return sec, err
}

// agree performs the Diffie-Hellman step and derives the symmetric secret
// from the encoded shared point. The KDF output, never the raw point, is
// what leaves this package: hashing destroys the algebraic structure a
// downstream key must not inherit.
func agree(scalar *big.Int, point curve.Point) (domain.SharedSecret, error) {
	shared := curve.ScalarMult(point, scalar)
	zeroInt(scalar)
	if curve.IsSmallOrder(shared) {
		return domain.SharedSecret{}, curve.ErrInvalidPoint
	}

	enc := shared.Encode()
	kdf := hkdf.New(sha256.New, enc[:], nil, []byte(secretInfo))
	var out domain.SharedSecret
	if _, err := io.ReadFull(kdf, out[:]); err != nil {
		return domain.SharedSecret{}, err
	}
	memzero.Zero(enc[:])
	return out, nil
}

// reduceWide maps a wide digest to a scalar, reading the bytes with the
// same little-endian convention used for every other byte-to-integer
// conversion in the module.
func reduceWide(digest []byte) *big.Int {
	be := make([]byte, len(digest))
	for i, b := range digest {
		be[len(digest)-1-i] = b
	}
	v := new(big.Int).SetBytes(be)
	return curve.Mod(v, curve.N)
}

func zeroInt(v *big.Int) {
	v.SetInt64(0)
}
