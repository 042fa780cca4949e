package crypto

import (
	"crypto/rand"

	"golang.org/x/crypto/chacha20poly1305"

	"prpcap/internal/domain"
)

const (
	// KeyBytes is the symmetric key width, matching the KDF output.
	KeyBytes = chacha20poly1305.KeySize
	// NonceBytes is the AEAD nonce width.
	NonceBytes = chacha20poly1305.NonceSize
)

// Seal encrypts plaintext under the convergence secret with a fresh random
// nonce and returns both.
func Seal(key domain.SharedSecret, plaintext, ad []byte) (nonce, ciphertext []byte, err error) {
	aead, err := chacha20poly1305.New(key[:])
	if err != nil {
		return nil, nil, err
	}
	nonce = make([]byte, NonceBytes)
	if _, err := rand.Read(nonce); err != nil {
		return nil, nil, err
	}
	return nonce, aead.Seal(nil, nonce, plaintext, ad), nil
}

// Open decrypts a ciphertext sealed by Seal. It returns (nil, false) when
// the key does not authenticate the ciphertext; that is the expected
// outcome for a wrong epoch or a tampered envelope, not a fault, and no
// partial plaintext is ever returned.
func Open(key domain.SharedSecret, nonce, ciphertext, ad []byte) ([]byte, bool) {
	aead, err := chacha20poly1305.New(key[:])
	if err != nil {
		return nil, false
	}
	if len(nonce) != NonceBytes {
		return nil, false
	}
	pt, err := aead.Open(nil, nonce, ciphertext, ad)
	if err != nil {
		return nil, false
	}
	return pt, true
}
