// Package message seals plaintexts into envelopes and processes inbound
// envelopes.
//
// # Flows
//
//   - Seal: derive the peer's capability for an index, run the sender side
//     of the convergence step, and encrypt under the derived secret. The
//     envelope carries the ephemeral public and the index; the secret
//     itself never leaves the process.
//   - Process: recompute the private scalar for the carried index, run the
//     receiver side, and attempt authenticated decryption. A failed
//     authentication is an explicit "no plaintext", not a fault: it is the
//     expected result of an envelope sealed for another epoch.
//
// Send and Receive wrap these flows around the relay transport.
package message
