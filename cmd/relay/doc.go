// Command relay runs an in-memory relay server for prpcap peers.
//
// It stores published epoch publics and queued envelopes in process
// memory only; restarting it drops both. It sees no plaintext and no
// secret key material.
package main
