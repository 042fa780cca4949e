// Package prpcap implements the pseudorandom-public-capability
// construction: an unbounded family of one-time public keys derived from
// one compact epoch key pair, with 0-round-trip key agreement.
//
// # Construction
//
// The receiver owns an epoch pair (s1, A=s1*G) and (s2, B=s2*G) and
// publishes (A, B). For any index i, anyone can derive the capability
//
//	V_i = A + t_i*B,  t_i = HashToScalar(tag, i, A, B)
//
// while only the receiver can recompute the matching private scalar
//
//	v_i = s1 + t_i*s2 mod N,  so that v_i*G = V_i.
//
// # Flows
//
// Sender: pick an index, generate an ephemeral (e, E), derive V_i and the
// shared secret KDF(e*V_i), then transmit (E, i) beside the ciphertext.
//
// Receiver: on (E, i), recompute v_i and derive KDF(v_i*E). Associativity
// gives e*V_i = e*(s1+t_i*s2)*G = v_i*E, so both sides converge on the
// same secret with no round trip.
//
// # Errors
//
// Point decoding surfaces curve.ErrInvalidPoint. Shared points in the
// small cofactor subgroup are rejected before the KDF. ErrConvergence is
// returned by the NewEpoch self-check when the two views of index 0
// disagree, which signals an implementation bug, never a recoverable
// condition.
package prpcap
