package ladder

import (
	"bytes"
	"crypto/sha512"

	"prpcap/internal/domain"
)

// mergeTag domain-separates the merged secret from single-direction KDF
// output.
const mergeTag = "prpcap/v1 ladder"

// Direction is one half of a double ladder: the ephemeral public that
// initiated it and the secret that direction converged on.
type Direction struct {
	Ephemeral domain.PointBytes
	Secret    domain.SharedSecret
}

// Merge combines the two directions into one secret. The direction whose
// ephemeral encoding is smaller under unsigned lexicographic comparison
// contributes first, so the result does not depend on which direction the
// caller happened to compute first.
func Merge(a, b Direction) domain.SharedSecret {
	first, second := a, b
	if bytes.Compare(b.Ephemeral[:], a.Ephemeral[:]) < 0 {
		first, second = b, a
	}

	h := sha512.New512_256()
	h.Write([]byte(mergeTag))
	h.Write(first.Secret[:])
	h.Write(second.Secret[:])

	var out domain.SharedSecret
	copy(out[:], h.Sum(nil))
	return out
}
