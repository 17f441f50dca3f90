package jwt

import (
	"testing"
	"time"

	"github.com/google/uuid"
)

func TestAccessTokenRoundTrip(t *testing.T) {
	m := NewManager("access-secret", "refresh-secret", 15*time.Minute, 24*time.Hour)

	userID := uuid.New()
	token, err := m.GenerateAccessToken(userID, "alice@example.com")
	if err != nil {
		t.Fatalf("generate failed: %v", err)
	}

	claims, err := m.ValidateAccessToken(token)
	if err != nil {
		t.Fatalf("validate failed: %v", err)
	}
	if claims.UserID != userID {
		t.Fatalf("user ID = %s, want %s", claims.UserID, userID)
	}
	if claims.Email != "alice@example.com" {
		t.Fatalf("email = %s", claims.Email)
	}
}

func TestRefreshTokenRoundTrip(t *testing.T) {
	m := NewManager("access-secret", "refresh-secret", 15*time.Minute, 24*time.Hour)

	userID := uuid.New()
	token, err := m.GenerateRefreshToken(userID)
	if err != nil {
		t.Fatalf("generate failed: %v", err)
	}

	got, err := m.ValidateRefreshToken(token)
	if err != nil {
		t.Fatalf("validate failed: %v", err)
	}
	if got != userID {
		t.Fatalf("user ID = %s, want %s", got, userID)
	}
}

func TestTokenSecretsAreNotInterchangeable(t *testing.T) {
	m := NewManager("access-secret", "refresh-secret", 15*time.Minute, 24*time.Hour)

	access, err := m.GenerateAccessToken(uuid.New(), "alice@example.com")
	if err != nil {
		t.Fatalf("generate failed: %v", err)
	}

	if _, err := m.ValidateRefreshToken(access); err == nil {
		t.Fatal("access token validated as refresh token")
	}
}

func TestExpiredAccessTokenRejected(t *testing.T) {
	m := NewManager("access-secret", "refresh-secret", -time.Minute, 24*time.Hour)

	token, err := m.GenerateAccessToken(uuid.New(), "alice@example.com")
	if err != nil {
		t.Fatalf("generate failed: %v", err)
	}

	if _, err := m.ValidateAccessToken(token); err == nil {
		t.Fatal("expired token validated")
	}
}
