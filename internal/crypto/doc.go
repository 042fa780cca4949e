// Package crypto exposes the symmetric collaborators around the PRP-Cap
// core.
//
// Contents
//
//   - ChaCha20-Poly1305 sealing under a convergence secret (Seal, Open)
//   - Short public-key fingerprints for display/logging (Fingerprint)
//
// # Notes
//
// Open fails closed: on authentication failure it reports no plaintext
// rather than raising, so callers can distinguish "wrong key" from a
// malformed-input fault. The curve arithmetic itself lives in
// internal/curve; nothing here touches points or scalars.
package crypto
