package auth

import (
	"errors"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

const testSecret = "unit-test-secret"

func signed(t *testing.T, claims Claims) string {
	t.Helper()
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(testSecret))
	if err != nil {
		t.Fatalf("sign token: %v", err)
	}
	return token
}

func TestValidateAcceptsWellFormedToken(t *testing.T) {
	validator := NewJWTValidator(testSecret)
	token := signed(t, Claims{
		Roles: []string{"admin"},
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   "ops",
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		},
	})

	claims, err := validator.Validate(token)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if claims.RegisteredClaims.Subject != "ops" {
		t.Fatalf("unexpected subject: %s", claims.RegisteredClaims.Subject)
	}
	if !claims.HasRole("Admin") {
		t.Fatal("expected case-insensitive role match")
	}
	if claims.HasRole("viewer") {
		t.Fatal("unexpected role")
	}
}

func TestValidateRejectsBadTokens(t *testing.T) {
	validator := NewJWTValidator(testSecret)

	cases := []struct {
		name     string
		token    string
		expected error
	}{
		{name: "empty token", token: "", expected: ErrMissingToken},
		{name: "garbage token", token: "not-a-jwt", expected: ErrInvalidToken},
		{
			name: "wrong secret",
			token: func() string {
				token, _ := jwt.NewWithClaims(jwt.SigningMethodHS256, Claims{
					RegisteredClaims: jwt.RegisteredClaims{Subject: "ops"},
				}).SignedString([]byte("other-secret"))
				return token
			}(),
			expected: ErrInvalidToken,
		},
		{
			name:     "missing subject",
			token:    signed(t, Claims{RegisteredClaims: jwt.RegisteredClaims{ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour))}}),
			expected: ErrInvalidToken,
		},
		{
			name:     "expired",
			token:    signed(t, Claims{RegisteredClaims: jwt.RegisteredClaims{Subject: "ops", ExpiresAt: jwt.NewNumericDate(time.Now().Add(-time.Hour))}}),
			expected: ErrInvalidToken,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := validator.Validate(tc.token); !errors.Is(err, tc.expected) {
				t.Fatalf("expected %v, got %v", tc.expected, err)
			}
		})
	}
}
