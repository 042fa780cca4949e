package curve

import (
	"io"
	"math/big"
)

// ScalarBytes is the width of the little-endian scalar encoding.
const ScalarBytes = 32

// ScalarFromBytes interprets b as a little-endian integer and reduces it
// mod N. Every scalar that enters a group operation goes through here, so
// out-of-range wire values cannot reach the arithmetic unreduced.
func ScalarFromBytes(b [ScalarBytes]byte) *big.Int {
	return Mod(leInt(b[:]), N)
}

// ScalarToBytes encodes k as 32 little-endian bytes, reducing mod N first.
func ScalarToBytes(k *big.Int) [ScalarBytes]byte {
	var out [ScalarBytes]byte
	copy(out[:], leBytes(Mod(k, N), ScalarBytes))
	return out
}

// RandomScalar returns a uniformly distributed scalar in [0, N) drawn from
// r by rejection sampling.
func RandomScalar(r io.Reader) (*big.Int, error) {
	buf := make([]byte, ScalarBytes)
	for {
		if _, err := io.ReadFull(r, buf); err != nil {
			return nil, err
		}
		// Clear the top three bits so candidates land below 2^253;
		// almost all of those are already below N.
		buf[ScalarBytes-1] &= 0x1f
		k := leInt(buf)
		if k.Cmp(N) < 0 {
			return k, nil
		}
	}
}

// leInt decodes a little-endian byte string into an integer.
func leInt(b []byte) *big.Int {
	be := make([]byte, len(b))
	for i, v := range b {
		be[len(b)-1-i] = v
	}
	return new(big.Int).SetBytes(be)
}

// leBytes encodes a non-negative integer as size little-endian bytes.
func leBytes(v *big.Int, size int) []byte {
	be := v.Bytes()
	out := make([]byte, size)
	for i, b := range be {
		out[len(be)-1-i] = b
	}
	return out
}
