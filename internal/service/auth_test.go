package service

import (
	"errors"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

func signTestToken(t *testing.T, secret string, claims jwt.MapClaims) string {
	t.Helper()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(secret))
	if err != nil {
		t.Fatalf("sign token: %v", err)
	}
	return signed
}

func TestValidateAccessToken(t *testing.T) {
	svc := NewAuthService(nil, nil, nil, "test-secret")
	now := time.Now()

	good := signTestToken(t, "test-secret", jwt.MapClaims{
		"sub":      "p-1",
		"username": "marksman",
		"iat":      now.Unix(),
		"exp":      now.Add(time.Minute).Unix(),
	})
	playerID, username, err := svc.ValidateAccessToken(good)
	if err != nil {
		t.Fatalf("valid token rejected: %v", err)
	}
	if playerID != "p-1" || username != "marksman" {
		t.Errorf("claims = (%q, %q), want (p-1, marksman)", playerID, username)
	}

	expired := signTestToken(t, "test-secret", jwt.MapClaims{
		"sub": "p-1", "exp": now.Add(-time.Minute).Unix(),
	})
	if _, _, err := svc.ValidateAccessToken(expired); !errors.Is(err, ErrInvalidToken) {
		t.Errorf("expired token: got %v, want ErrInvalidToken", err)
	}

	wrongKey := signTestToken(t, "other-secret", jwt.MapClaims{
		"sub": "p-1", "exp": now.Add(time.Minute).Unix(),
	})
	if _, _, err := svc.ValidateAccessToken(wrongKey); !errors.Is(err, ErrInvalidToken) {
		t.Errorf("wrong key: got %v, want ErrInvalidToken", err)
	}

	noSubject := signTestToken(t, "test-secret", jwt.MapClaims{
		"exp": now.Add(time.Minute).Unix(),
	})
	if _, _, err := svc.ValidateAccessToken(noSubject); !errors.Is(err, ErrInvalidToken) {
		t.Errorf("missing subject: got %v, want ErrInvalidToken", err)
	}
}

func TestIsValidUsername(t *testing.T) {
	tests := []struct {
		name  string
		valid bool
	}{
		{"marksman", true},
		{"Gun_Smith-42", true},
		{"abc", true},
		{"ab", false},
		{"", false},
		{"has space", false},
		{"semi;colon", false},
		{"émigré", false},
		{"0123456789012345678901234567890123", false},
	}
	for _, tt := range tests {
		if got := isValidUsername(tt.name); got != tt.valid {
			t.Errorf("isValidUsername(%q) = %v, want %v", tt.name, got, tt.valid)
		}
	}
}
