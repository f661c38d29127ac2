package auth

import (
	"testing"
	"time"

	"github.com/google/uuid"
)

func TestGenerateAndParseJWT(t *testing.T) {
	secret := "test-secret"
	userID := uuid.New()

	token, err := GenerateJWT(secret, userID, "CREATOR", time.Hour)
	if err != nil {
		t.Fatalf("GenerateJWT: %v", err)
	}

	claims, err := ParseJWT(secret, token)
	if err != nil {
		t.Fatalf("ParseJWT: %v", err)
	}
	if claims.UserID != userID {
		t.Errorf("UserID = %s, want %s", claims.UserID, userID)
	}
	if claims.Role != "CREATOR" {
		t.Errorf("Role = %q, want CREATOR", claims.Role)
	}
}

func TestParseJWTWrongSecret(t *testing.T) {
	token, err := GenerateJWT("secret-a", uuid.New(), "BRAND", time.Hour)
	if err != nil {
		t.Fatalf("GenerateJWT: %v", err)
	}
	if _, err := ParseJWT("secret-b", token); err == nil {
		t.Error("expected error for wrong secret, got nil")
	}
}

func TestParseJWTExpired(t *testing.T) {
	// Nanosecond expiry truncates to an exp claim already in the past.
	token, err := GenerateJWT("secret", uuid.New(), "CREATOR", time.Nanosecond)
	if err != nil {
		t.Fatalf("GenerateJWT: %v", err)
	}
	time.Sleep(time.Second)
	if _, err := ParseJWT("secret", token); err == nil {
		t.Error("expected error for expired token, got nil")
	}
}

func TestPasswordHashRoundTrip(t *testing.T) {
	hash, err := HashPassword("hunter2", 4)
	if err != nil {
		t.Fatalf("HashPassword: %v", err)
	}
	if !CheckPassword(hash, "hunter2") {
		t.Error("CheckPassword rejected correct password")
	}
	if CheckPassword(hash, "hunter3") {
		t.Error("CheckPassword accepted wrong password")
	}
}
