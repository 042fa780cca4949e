package curve

import (
	"errors"
	"math/big"
	"testing"
)

func TestModReturnsNonNegativeResidue(t *testing.T) {
	m := big.NewInt(97)
	got := Mod(big.NewInt(-5), m)
	if got.Cmp(big.NewInt(92)) != 0 {
		t.Fatalf("Mod(-5, 97) = %v, want 92", got)
	}
	if Mod(big.NewInt(200), m).Cmp(big.NewInt(6)) != 0 {
		t.Fatalf("Mod(200, 97) != 6")
	}
}

func TestModInverse(t *testing.T) {
	m := big.NewInt(97)
	inv, err := ModInverse(big.NewInt(3), m)
	if err != nil {
		t.Fatalf("ModInverse: %v", err)
	}
	prod := Mod(new(big.Int).Mul(inv, big.NewInt(3)), m)
	if prod.Cmp(big.NewInt(1)) != 0 {
		t.Fatalf("3 * inv(3) = %v mod 97, want 1", prod)
	}

	// Negative operands are reduced first.
	inv2, err := ModInverse(big.NewInt(-94), m) // -94 = 3 mod 97
	if err != nil {
		t.Fatalf("ModInverse(-94): %v", err)
	}
	if inv.Cmp(inv2) != 0 {
		t.Fatalf("inverse of congruent operands differ: %v vs %v", inv, inv2)
	}
}

func TestModInverseNotInvertible(t *testing.T) {
	if _, err := ModInverse(big.NewInt(6), big.NewInt(9)); !errors.Is(err, ErrNotInvertible) {
		t.Fatalf("ModInverse(6, 9) err = %v, want ErrNotInvertible", err)
	}
	if _, err := ModInverse(big.NewInt(0), P); !errors.Is(err, ErrNotInvertible) {
		t.Fatalf("ModInverse(0, P) err = %v, want ErrNotInvertible", err)
	}
}

func TestModPowMatchesBigExp(t *testing.T) {
	base := big.NewInt(12345)
	exp := big.NewInt(67891)
	want := new(big.Int).Exp(base, exp, P)
	if got := ModPow(base, exp, P); got.Cmp(want) != 0 {
		t.Fatalf("ModPow mismatch: got %v want %v", got, want)
	}
	if got := ModPow(base, big.NewInt(0), P); got.Cmp(big.NewInt(1)) != 0 {
		t.Fatalf("ModPow(_, 0, P) = %v, want 1", got)
	}
}
