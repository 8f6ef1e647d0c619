package auth

import (
	"strings"
	"testing"
)

func TestPasswordServiceImpl_HashAndVerify(t *testing.T) {
	svc := NewPasswordService()

	hash, err := svc.Hash("secret1")
	if err != nil {
		t.Fatalf("failed to hash password: %v", err)
	}
	if hash == "secret1" {
		t.Fatal("hash must not equal the raw password")
	}
	if !strings.HasPrefix(hash, "$2") {
		t.Errorf("expected a bcrypt hash, got %q", hash)
	}

	if !svc.Verify(hash, "secret1") {
		t.Error("expected correct password to verify")
	}
	if svc.Verify(hash, "wrong") {
		t.Error("expected wrong password to fail")
	}
	if svc.Verify("", "secret1") {
		t.Error("expected empty hash to fail")
	}
}

func TestPasswordServiceImpl_HashTooLong(t *testing.T) {
	svc := NewPasswordService()

	// bcrypt rejects inputs over 72 bytes
	if _, err := svc.Hash(strings.Repeat("x", 100)); err == nil {
		t.Error("expected error for over-long password")
	}
}
