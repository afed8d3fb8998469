package auth

import (
	"strings"
	"testing"
)

func TestHashAndVerifyPassword(t *testing.T) {
	mgr := NewPasswordManager(testConfig())

	hash, err := mgr.HashPassword("s3cret-pass")
	if err != nil {
		t.Fatalf("HashPassword returned error: %v", err)
	}
	if hash == "s3cret-pass" {
		t.Fatal("hash must not equal the plaintext password")
	}
	if !strings.HasPrefix(hash, "$2") {
		t.Fatalf("expected bcrypt hash, got %q", hash)
	}

	if err := mgr.VerifyPassword("s3cret-pass", hash); err != nil {
		t.Fatalf("VerifyPassword rejected correct password: %v", err)
	}
	if err := mgr.VerifyPassword("wrong-pass", hash); err == nil {
		t.Fatal("VerifyPassword accepted wrong password")
	}
}

func TestHashPasswordIsSalted(t *testing.T) {
	mgr := NewPasswordManager(testConfig())

	first, err := mgr.HashPassword("same-input")
	if err != nil {
		t.Fatalf("HashPassword returned error: %v", err)
	}
	second, err := mgr.HashPassword("same-input")
	if err != nil {
		t.Fatalf("HashPassword returned error: %v", err)
	}

	if first == second {
		t.Fatal("two hashes of the same password must differ")
	}
}
