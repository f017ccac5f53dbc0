package auth_test

import (
	"testing"
	"time"

	"github.com/bakehouse/api/internal/auth"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

func TestGenerateAndValidateSessionToken(t *testing.T) {
	secret := "test-secret"
	sessionID := uuid.New()

	token, err := auth.GenerateSessionToken(secret, sessionID, "chocolate-cake", time.Hour)
	if err != nil {
		t.Fatalf("generate token: %v", err)
	}

	claims, err := auth.ValidateToken(secret, token)
	if err != nil {
		t.Fatalf("validate token: %v", err)
	}

	if claims.SessionID != sessionID {
		t.Errorf("session ID: got %v, want %v", claims.SessionID, sessionID)
	}
	if claims.ProductID != "chocolate-cake" {
		t.Errorf("product ID: got %v", claims.ProductID)
	}
	if claims.Subject != sessionID.String() {
		t.Errorf("subject: got %v", claims.Subject)
	}
}

func TestValidateTokenWithWrongSecret(t *testing.T) {
	token, err := auth.GenerateSessionToken("secret-a", uuid.New(), "croissant", time.Hour)
	if err != nil {
		t.Fatalf("generate token: %v", err)
	}

	_, err = auth.ValidateToken("secret-b", token)
	if err == nil {
		t.Fatal("expected error validating with wrong secret")
	}
}

func TestValidateTokenExpired(t *testing.T) {
	token, err := auth.GenerateSessionToken("secret", uuid.New(), "croissant", -time.Minute)
	if err != nil {
		t.Fatalf("generate token: %v", err)
	}

	_, err = auth.ValidateToken("secret", token)
	if err == nil {
		t.Fatal("expected error validating expired token")
	}
}

func TestValidateTokenWrongAudience(t *testing.T) {
	claims := jwt.RegisteredClaims{
		Subject:   uuid.NewString(),
		Audience:  jwt.ClaimStrings{"someone-else"},
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("secret"))
	if err != nil {
		t.Fatalf("sign: %v", err)
	}

	if _, err := auth.ValidateToken("secret", token); err == nil {
		t.Fatal("expected error for foreign audience")
	}
}

func TestValidateTokenWithInvalidString(t *testing.T) {
	_, err := auth.ValidateToken("secret", "not-a-jwt")
	if err == nil {
		t.Fatal("expected error validating invalid token string")
	}
}
