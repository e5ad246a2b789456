package utils

import (
	"testing"
	"time"
)

func TestTokenRoundTrip(t *testing.T) {
	token, err := GenerateToken("tenant-1", "jane@example.com", "tenant", time.Hour)
	if err != nil {
		t.Fatalf("failed to generate token: %v", err)
	}

	claims, err := ExtractClaims(token)
	if err != nil {
		t.Fatalf("failed to extract claims: %v", err)
	}
	if claims.Subject != "tenant-1" {
		t.Errorf("subject = %q, want %q", claims.Subject, "tenant-1")
	}
	if claims.Email != "jane@example.com" {
		t.Errorf("email = %q, want %q", claims.Email, "jane@example.com")
	}
	if claims.Role != "tenant" {
		t.Errorf("role = %q, want %q", claims.Role, "tenant")
	}
}

func TestExpiredTokenRejected(t *testing.T) {
	token, err := GenerateToken("tenant-1", "jane@example.com", "tenant", -time.Minute)
	if err != nil {
		t.Fatalf("failed to generate token: %v", err)
	}
	if _, err := ExtractClaims(token); err == nil {
		t.Fatal("expected expired token to be rejected")
	}
}

func TestTamperedTokenRejected(t *testing.T) {
	token, err := GenerateToken("tenant-1", "jane@example.com", "tenant", time.Hour)
	if err != nil {
		t.Fatalf("failed to generate token: %v", err)
	}
	tampered := token[:len(token)-2] + "xx"
	if _, err := ExtractClaims(tampered); err == nil {
		t.Fatal("expected tampered token to be rejected")
	}
}

func TestHashTokenDeterministic(t *testing.T) {
	a := HashToken("some-token")
	b := HashToken("some-token")
	if a != b {
		t.Errorf("hash not deterministic: %q vs %q", a, b)
	}
	if a == HashToken("other-token") {
		t.Error("distinct tokens hashed to the same value")
	}
	if len(a) != 64 {
		t.Errorf("expected 64 hex chars, got %d", len(a))
	}
}
