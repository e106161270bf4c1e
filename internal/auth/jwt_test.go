package auth

import (
	"testing"
	"time"
)

func TestGenerateToken_WithJTI(t *testing.T) {
	secret := "test-secret"
	email := "p@x.com"
	name := "Pat Example"

	token, jti, err := GenerateToken(secret, email, name, time.Hour)
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	if token == "" {
		t.Error("Expected token to be generated")
	}

	if jti == "" {
		t.Error("Expected JTI to be generated")
	}

	claims, err := ParseToken(secret, token)
	if err != nil {
		t.Fatalf("Expected no error parsing token, got %v", err)
	}

	if claims.ID != jti {
		t.Errorf("Expected JTI %s, got %s", jti, claims.ID)
	}

	if claims.Email != email {
		t.Errorf("Expected email %s, got %s", email, claims.Email)
	}

	if claims.Name != name {
		t.Errorf("Expected name %s, got %s", name, claims.Name)
	}
}

func TestParseToken_InvalidToken(t *testing.T) {
	secret := "test-secret"
	invalidToken := "invalid.token.here"

	_, err := ParseToken(secret, invalidToken)
	if err == nil {
		t.Error("Expected error for invalid token")
	}
}

func TestParseToken_WrongSecret(t *testing.T) {
	token, _, err := GenerateToken("right-secret", "p@x.com", "", time.Hour)
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	if _, err := ParseToken("wrong-secret", token); err == nil {
		t.Error("Expected signature verification to fail")
	}
}

func TestParseToken_Expired(t *testing.T) {
	secret := "test-secret"

	token, _, err := GenerateToken(secret, "p@x.com", "", -time.Minute)
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	if _, err := ParseToken(secret, token); err == nil {
		t.Error("Expected error for expired token")
	}
}

func TestGenerateToken_UniqueJTIs(t *testing.T) {
	secret := "test-secret"

	token1, jti1, err1 := GenerateToken(secret, "p@x.com", "", time.Hour)
	token2, jti2, err2 := GenerateToken(secret, "p@x.com", "", time.Hour)

	if err1 != nil || err2 != nil {
		t.Fatalf("Expected no errors, got %v, %v", err1, err2)
	}

	if jti1 == jti2 {
		t.Error("Expected unique JTIs for different tokens")
	}

	if token1 == token2 {
		t.Error("Expected different tokens")
	}
}
