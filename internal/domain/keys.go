package domain

// PointBytes is a compressed curve point: little-endian y with the sign of
// x in the top bit of the last byte.
type PointBytes [32]byte

// Slice returns the encoding as a []byte.
func (p PointBytes) Slice() []byte { return p[:] }

// ScalarBytes is a curve-order scalar, little-endian, reduced mod the group
// order before encoding.
type ScalarBytes [32]byte

// Slice returns the encoding as a []byte.
func (s ScalarBytes) Slice() []byte { return s[:] }

// SharedSecret is the KDF output of one convergence step. It is never the
// raw curve point.
type SharedSecret [32]byte

// Slice returns the secret as a []byte.
func (s SharedSecret) Slice() []byte { return s[:] }

// EpochPublic is the receiver's shareable identity for one epoch: the two
// long-lived public points every capability is derived from.
type EpochPublic struct {
	A PointBytes `json:"a"`
	B PointBytes `json:"b"`
}

// EpochKeyPair is the receiver's full epoch material: two independent
// scalar/point pairs (s1, A=s1*G) and (s2, B=s2*G). S1 and S2 never leave
// the receiver; zeroing them is the forward-secrecy boundary.
type EpochKeyPair struct {
	A  PointBytes  `json:"a"`
	B  PointBytes  `json:"b"`
	S1 ScalarBytes `json:"s1"`
	S2 ScalarBytes `json:"s2"`
}

// Public returns the shareable half of the epoch.
func (e EpochKeyPair) Public() EpochPublic {
	return EpochPublic{A: e.A, B: e.B}
}

// EphemeralKeyPair is a sender-side, single-message key pair. It is never
// persisted.
type EphemeralKeyPair struct {
	Priv ScalarBytes
	Pub  PointBytes
}

// Capability is the publicly derivable per-index public key V_i together
// with the index it was derived for.
type Capability struct {
	Index uint32     `json:"index"`
	V     PointBytes `json:"v"`
}

// Fingerprint is a short identifier for public key material presented to
// users.
type Fingerprint string

// String returns the string form of the fingerprint.
func (f Fingerprint) String() string { return string(f) }
