package ladder_test

import (
	"crypto/rand"
	"testing"

	"prpcap/internal/domain"
	"prpcap/internal/protocol/ladder"
	"prpcap/internal/protocol/prpcap"
)

// TestMergeSymmetry runs a full simultaneous initiation: both parties pick
// their own index and ephemeral, each computes both directions locally in
// its own order, and the merged secrets must be byte-identical.
func TestMergeSymmetry(t *testing.T) {
	alice, err := prpcap.NewEpoch(rand.Reader)
	if err != nil {
		t.Fatalf("NewEpoch: %v", err)
	}
	bob, err := prpcap.NewEpoch(rand.Reader)
	if err != nil {
		t.Fatalf("NewEpoch: %v", err)
	}

	aliceEph, err := prpcap.NewEphemeral(rand.Reader)
	if err != nil {
		t.Fatalf("NewEphemeral: %v", err)
	}
	bobEph, err := prpcap.NewEphemeral(rand.Reader)
	if err != nil {
		t.Fatalf("NewEphemeral: %v", err)
	}

	const aliceIndex, bobIndex = 7, 1234

	// Alice's view: she initiated toward Bob, and processes Bob's
	// inbound initiation.
	aliceOut, err := prpcap.SenderSecret(aliceEph, bob.A, bob.B, aliceIndex)
	if err != nil {
		t.Fatalf("SenderSecret: %v", err)
	}
	aliceIn, err := prpcap.ReceiverSecret(alice, bobEph.Pub, bobIndex)
	if err != nil {
		t.Fatalf("ReceiverSecret: %v", err)
	}

	// Bob's view, computed in the opposite order.
	bobIn, err := prpcap.ReceiverSecret(bob, aliceEph.Pub, aliceIndex)
	if err != nil {
		t.Fatalf("ReceiverSecret: %v", err)
	}
	bobOut, err := prpcap.SenderSecret(bobEph, alice.A, alice.B, bobIndex)
	if err != nil {
		t.Fatalf("SenderSecret: %v", err)
	}

	// Each direction is named by the ephemeral that initiated it; the two
	// parties hold the same per-direction secrets computed from opposite
	// ends (aliceOut == bobIn and bobOut == aliceIn).
	aliceMerged := ladder.Merge(
		ladder.Direction{Ephemeral: aliceEph.Pub, Secret: aliceOut},
		ladder.Direction{Ephemeral: bobEph.Pub, Secret: aliceIn},
	)
	bobMerged := ladder.Merge(
		ladder.Direction{Ephemeral: bobEph.Pub, Secret: bobOut},
		ladder.Direction{Ephemeral: aliceEph.Pub, Secret: bobIn},
	)

	if aliceMerged != bobMerged {
		t.Fatal("merged secrets differ between the two local views")
	}
	var zero domain.SharedSecret
	if aliceMerged == zero {
		t.Fatal("merged secret is all zero")
	}
}

func TestMergeArgumentOrderIrrelevant(t *testing.T) {
	var a, b ladder.Direction
	if _, err := rand.Read(a.Ephemeral[:]); err != nil {
		t.Fatalf("rand: %v", err)
	}
	if _, err := rand.Read(b.Ephemeral[:]); err != nil {
		t.Fatalf("rand: %v", err)
	}
	if _, err := rand.Read(a.Secret[:]); err != nil {
		t.Fatalf("rand: %v", err)
	}
	if _, err := rand.Read(b.Secret[:]); err != nil {
		t.Fatalf("rand: %v", err)
	}

	if ladder.Merge(a, b) != ladder.Merge(b, a) {
		t.Fatal("Merge depends on argument order")
	}
}

func TestMergeBindsSecrets(t *testing.T) {
	var a, b ladder.Direction
	a.Ephemeral[0] = 1
	b.Ephemeral[0] = 2
	a.Secret[0] = 3
	b.Secret[0] = 4

	base := ladder.Merge(a, b)
	b.Secret[0] = 5
	if base == ladder.Merge(a, b) {
		t.Fatal("changing one direction's secret did not change the merge")
	}
}
