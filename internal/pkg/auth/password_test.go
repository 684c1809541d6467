package auth

import "testing"

func TestBcryptHasherRoundTrip(t *testing.T) {
	hasher := NewBcryptHasher(4)

	hash, err := hasher.Hash("secret")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if hash == "secret" {
		t.Fatal("expected hash to differ from password")
	}

	if err := hasher.Compare(hash, "secret"); err != nil {
		t.Fatalf("expected password to match: %v", err)
	}
	if err := hasher.Compare(hash, "wrong"); err == nil {
		t.Fatal("expected mismatch error")
	}
}

func TestBcryptHasherZeroCostUsesDefault(t *testing.T) {
	hasher := NewBcryptHasher(0)

	hash, err := hasher.Hash("secret")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := hasher.Compare(hash, "secret"); err != nil {
		t.Fatalf("expected password to match: %v", err)
	}
}
