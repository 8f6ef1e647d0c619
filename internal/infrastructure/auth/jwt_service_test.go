package auth

import (
	"errors"
	"testing"
	"time"

	"github.com/Heisenberg-Vader/Auction-Website/domain"
)

func TestJWTServiceImpl_IssueAndVerify(t *testing.T) {
	svc := NewJWTService("test-secret", "auction-website")

	token, err := svc.Issue(42, domain.UserTypeSeller, time.Hour)
	if err != nil {
		t.Fatalf("failed to issue token: %v", err)
	}

	claims, err := svc.Verify(token)
	if err != nil {
		t.Fatalf("failed to verify token: %v", err)
	}
	if claims.AccountID != 42 {
		t.Errorf("expected account 42, got %d", claims.AccountID)
	}
	if claims.UserType != domain.UserTypeSeller {
		t.Errorf("expected user type seller, got %s", claims.UserType)
	}
	if claims.ExpiresAt <= claims.IssuedAt {
		t.Error("expected expiry after issuance")
	}
}

func TestJWTServiceImpl_Verify_Expired(t *testing.T) {
	svc := NewJWTService("test-secret", "auction-website")

	token, err := svc.Issue(1, domain.UserTypeClient, -time.Minute)
	if err != nil {
		t.Fatalf("failed to issue token: %v", err)
	}

	if _, err := svc.Verify(token); !errors.Is(err, domain.ErrTokenExpired) {
		t.Fatalf("expected ErrTokenExpired, got %v", err)
	}
}

func TestJWTServiceImpl_Verify_Invalid(t *testing.T) {
	svc := NewJWTService("test-secret", "auction-website")

	tests := []struct {
		name  string
		token string
	}{
		{"garbage", "not-a-token"},
		{"empty", ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := svc.Verify(tt.token); !errors.Is(err, domain.ErrTokenInvalid) {
				t.Fatalf("expected ErrTokenInvalid, got %v", err)
			}
		})
	}

	t.Run("wrong secret", func(t *testing.T) {
		other := NewJWTService("other-secret", "auction-website")
		token, err := other.Issue(1, domain.UserTypeClient, time.Hour)
		if err != nil {
			t.Fatalf("failed to issue token: %v", err)
		}
		if _, err := svc.Verify(token); !errors.Is(err, domain.ErrTokenInvalid) {
			t.Fatalf("expected ErrTokenInvalid for foreign signature, got %v", err)
		}
	})

	t.Run("tampered payload", func(t *testing.T) {
		token, err := svc.Issue(1, domain.UserTypeClient, time.Hour)
		if err != nil {
			t.Fatalf("failed to issue token: %v", err)
		}
		tampered := token[:len(token)-4] + "AAAA"
		if _, err := svc.Verify(tampered); !errors.Is(err, domain.ErrTokenInvalid) {
			t.Fatalf("expected ErrTokenInvalid for tampered token, got %v", err)
		}
	})
}

func TestJWTServiceImpl_TokensAreUnique(t *testing.T) {
	svc := NewJWTService("test-secret", "auction-website")

	a, err := svc.Issue(1, domain.UserTypeClient, time.Hour)
	if err != nil {
		t.Fatalf("failed to issue token: %v", err)
	}
	b, err := svc.Issue(1, domain.UserTypeClient, time.Hour)
	if err != nil {
		t.Fatalf("failed to issue token: %v", err)
	}
	if a == b {
		t.Error("expected unique tokens for identical claims")
	}
}
