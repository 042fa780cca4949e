// Package relay is the transport glue between peers: an HTTP client for
// publishing epoch publics and moving envelopes, and the matching
// in-memory handler served by cmd/relay.
//
// The relay sees only public material and ciphertext. It performs no
// cryptography and can be run by anyone.
package relay
