package security

import (
	"testing"

	"github.com/spf13/viper"
)

func TestPasswordHashRoundtrip(t *testing.T) {
	hash, err := HashPassword("correct horse battery staple")
	if err != nil {
		t.Fatalf("HashPassword failed: %v", err)
	}

	if hash == "correct horse battery staple" {
		t.Fatal("hash equals the plaintext password")
	}

	if !VerifyPassword("correct horse battery staple", hash) {
		t.Error("correct password rejected")
	}

	if VerifyPassword("wrong password", hash) {
		t.Error("wrong password accepted")
	}
}

func TestTokenRoundtrip(t *testing.T) {
	viper.Set("jwt.secret", "test-secret")
	t.Cleanup(func() { viper.Set("jwt.secret", "") })

	token, err := MakeToken(42, "me@example.com")
	if err != nil {
		t.Fatalf("MakeToken failed: %v", err)
	}

	ident, err := ParseToken(token)
	if err != nil {
		t.Fatalf("ParseToken failed: %v", err)
	}

	if ident.UserID != 42 {
		t.Errorf("user id = %d, want 42", ident.UserID)
	}
	if ident.Email != "me@example.com" {
		t.Errorf("email = %q, want me@example.com", ident.Email)
	}
}

func TestParseTokenRejectsBadInput(t *testing.T) {
	viper.Set("jwt.secret", "test-secret")
	t.Cleanup(func() { viper.Set("jwt.secret", "") })

	if _, err := ParseToken("not.a.token"); err == nil {
		t.Error("garbage token accepted")
	}

	// A token signed under a different secret must not verify
	token, err := MakeToken(1, "a@b.c")
	if err != nil {
		t.Fatalf("MakeToken failed: %v", err)
	}

	viper.Set("jwt.secret", "another-secret")
	if _, err := ParseToken(token); err == nil {
		t.Error("token with a mismatched signature accepted")
	}
}
