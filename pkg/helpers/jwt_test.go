package helpers

import (
	"testing"
	"time"
)

func TestJWTManager_RoundTrip(t *testing.T) {
	t.Parallel()

	m := NewJWTManager("access-secret", "refresh-secret", time.Hour, 24*time.Hour)

	token, exp, err := m.GenerateAccessToken("user-1", "ADMIN")
	if err != nil {
		t.Fatalf("generate failed: %v", err)
	}
	if !exp.After(time.Now()) {
		t.Fatalf("expected future expiry, got %v", exp)
	}

	claims, err := m.ParseAccessToken(token)
	if err != nil {
		t.Fatalf("parse failed: %v", err)
	}
	if claims.UserID != "user-1" || claims.Role != "ADMIN" {
		t.Fatalf("unexpected claims %+v", claims)
	}
}

func TestJWTManager_SecretsAreSeparate(t *testing.T) {
	t.Parallel()

	m := NewJWTManager("access-secret", "refresh-secret", time.Hour, 24*time.Hour)

	access, _, err := m.GenerateAccessToken("user-1", "VISITOR")
	if err != nil {
		t.Fatalf("generate failed: %v", err)
	}
	if _, err := m.ParseRefreshToken(access); err == nil {
		t.Fatalf("access token must not verify against refresh secret")
	}

	refresh, _, err := m.GenerateRefreshToken("user-1", "VISITOR")
	if err != nil {
		t.Fatalf("generate failed: %v", err)
	}
	if _, err := m.ParseAccessToken(refresh); err == nil {
		t.Fatalf("refresh token must not verify against access secret")
	}
}

func TestJWTManager_Expiry(t *testing.T) {
	t.Parallel()

	m := NewJWTManager("access-secret", "refresh-secret", -time.Minute, time.Hour)

	token, _, err := m.GenerateAccessToken("user-1", "VISITOR")
	if err != nil {
		t.Fatalf("generate failed: %v", err)
	}
	if _, err := m.ParseAccessToken(token); err == nil {
		t.Fatalf("expected expired token to be rejected")
	}
}

func TestPasswordHashing(t *testing.T) {
	t.Parallel()

	hash, err := HashPassword("password123")
	if err != nil {
		t.Fatalf("hash failed: %v", err)
	}
	if !CompareHashAndPassword(hash, "password123") {
		t.Fatalf("expected matching password to verify")
	}
	if CompareHashAndPassword(hash, "password124") {
		t.Fatalf("expected mismatch to fail")
	}
}
