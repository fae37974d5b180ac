package utils

import "testing"

func TestPasswordHashRoundTrip(t *testing.T) {
	hash, err := HashPassword("s3cret-pass")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !CheckPassword("s3cret-pass", hash) {
		t.Error("correct password rejected")
	}
	if CheckPassword("wrong-pass", hash) {
		t.Error("wrong password accepted")
	}
}

func TestAccessTokenRoundTrip(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")

	token, err := GenerateAccessToken("user-123", "user@example.com")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	claims, err := ValidateAccessToken(token)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if claims.UserID != "user-123" || claims.Email != "user@example.com" {
		t.Errorf("claims = %+v", claims)
	}

	if _, err := ValidateAccessToken(token + "x"); err == nil {
		t.Error("tampered token accepted")
	}
}

func TestAccessTokenRequiresSecret(t *testing.T) {
	t.Setenv("JWT_SECRET", "")
	if _, err := GenerateAccessToken("user-123", "user@example.com"); err == nil {
		t.Error("expected error without JWT_SECRET")
	}
}

func TestEncryptStringRoundTrip(t *testing.T) {
	t.Setenv("DATA_ENCRYPTION_KEY", "0123456789abcdef0123456789abcdef")

	ciphertext, err := EncryptString("JBSWY3DPEHPK3PXP")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if ciphertext == "JBSWY3DPEHPK3PXP" {
		t.Fatal("ciphertext equals plaintext")
	}

	plaintext, err := DecryptString(ciphertext)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if plaintext != "JBSWY3DPEHPK3PXP" {
		t.Errorf("round trip = %q", plaintext)
	}
}

func TestEncryptStringRequiresKey(t *testing.T) {
	t.Setenv("DATA_ENCRYPTION_KEY", "too-short")
	if _, err := EncryptString("x"); err == nil {
		t.Error("expected error with invalid key length")
	}
}
