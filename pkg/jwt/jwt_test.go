package jwt

import (
	"testing"
	"time"
)

func TestGenerateAndParseToken(t *testing.T) {
	secret := []byte("secret")

	token, err := GenerateToken(secret, "ops", time.Hour)
	if err != nil {
		t.Fatalf("GenerateToken() error = %v", err)
	}

	subject, err := ParseToken(secret, token)
	if err != nil {
		t.Fatalf("ParseToken() error = %v", err)
	}
	if subject != "ops" {
		t.Errorf("Expected subject ops, got %s", subject)
	}
}

func TestParseTokenRejects(t *testing.T) {
	secret := []byte("secret")
	expired, _ := GenerateToken(secret, "ops", -time.Minute)
	otherKey, _ := GenerateToken([]byte("other"), "ops", time.Hour)

	for name, token := range map[string]string{
		"expired":   expired,
		"wrong key": otherKey,
		"garbage":   "not-a-token",
	} {
		t.Run(name, func(t *testing.T) {
			if _, err := ParseToken(secret, token); err == nil {
				t.Error("Expected an error")
			}
		})
	}
}
