package crypto_test

import (
	"bytes"
	"crypto/rand"
	"testing"

	"prpcap/internal/crypto"
	"prpcap/internal/domain"
)

func randomKey(t *testing.T) domain.SharedSecret {
	t.Helper()
	var k domain.SharedSecret
	if _, err := rand.Read(k[:]); err != nil {
		t.Fatalf("rand: %v", err)
	}
	return k
}

func TestSealOpenRoundTrip(t *testing.T) {
	key := randomKey(t)
	ad := []byte("header")
	nonce, ct, err := crypto.Seal(key, []byte("hello"), ad)
	if err != nil {
		t.Fatalf("Seal: %v", err)
	}
	pt, ok := crypto.Open(key, nonce, ct, ad)
	if !ok {
		t.Fatal("Open rejected its own ciphertext")
	}
	if !bytes.Equal(pt, []byte("hello")) {
		t.Fatalf("plaintext = %q", pt)
	}
}

func TestOpenFailsClosed(t *testing.T) {
	key := randomKey(t)
	nonce, ct, err := crypto.Seal(key, []byte("hello"), nil)
	if err != nil {
		t.Fatalf("Seal: %v", err)
	}

	wrong := randomKey(t)
	if pt, ok := crypto.Open(wrong, nonce, ct, nil); ok || pt != nil {
		t.Fatal("wrong key produced a plaintext")
	}

	tampered := append([]byte(nil), ct...)
	tampered[0] ^= 1
	if pt, ok := crypto.Open(key, nonce, tampered, nil); ok || pt != nil {
		t.Fatal("tampered ciphertext produced a plaintext")
	}

	if pt, ok := crypto.Open(key, nonce[:4], ct, nil); ok || pt != nil {
		t.Fatal("short nonce produced a plaintext")
	}

	if pt, ok := crypto.Open(key, nonce, ct, []byte("other ad")); ok || pt != nil {
		t.Fatal("mismatched associated data produced a plaintext")
	}
}
