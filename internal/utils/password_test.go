package utils

import "testing"

func TestHashAndCheckPassword(t *testing.T) {
	hashed, err := HashPassword("correct-horse")
	if err != nil {
		t.Fatalf("HashPassword: %v", err)
	}
	if hashed == "correct-horse" {
		t.Fatal("hash equals the plaintext")
	}
	if !CheckPassword(hashed, "correct-horse") {
		t.Fatal("correct password did not verify")
	}
	if CheckPassword(hashed, "wrong") {
		t.Fatal("wrong password verified")
	}
}

func TestFederatedSentinelNeverVerifies(t *testing.T) {
	if CheckPassword(FederatedPasswordSentinel, FederatedPasswordSentinel) {
		t.Fatal("sentinel verified against itself")
	}
	if CheckPassword(FederatedPasswordSentinel, "anything") {
		t.Fatal("sentinel verified a password")
	}
}

func TestHashPasswordSalts(t *testing.T) {
	h1, err := HashPassword("same")
	if err != nil {
		t.Fatalf("HashPassword: %v", err)
	}
	h2, err := HashPassword("same")
	if err != nil {
		t.Fatalf("HashPassword: %v", err)
	}
	if h1 == h2 {
		t.Fatal("two hashes of the same password are identical")
	}
}
