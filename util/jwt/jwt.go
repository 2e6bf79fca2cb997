package jwt

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Issue signs an HS256 token carrying the subject and role claims the way
// the external auth provider does. Signature verification on incoming
// requests is echo-jwt's job; Issue exists for tooling and tests.
func Issue(secret, userID string, role string, ttlHours int) (string, error) {
	claims := jwt.MapClaims{
		"sub":  userID,
		"role": role,
		"exp":  time.Now().Add(time.Duration(ttlHours) * time.Hour).Unix(),
	}
	t := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return t.SignedString([]byte(secret))
}

// Subject pulls the user id out of parsed claims.
func Subject(claims map[string]any) (string, error) {
	if s, ok := claims["sub"].(string); ok && s != "" {
		return s, nil
	}
	return "", errors.New("sub missing in claims")
}

// RoleOf returns the role claim, defaulting to customer when absent.
func RoleOf(claims map[string]any) string {
	if s, ok := claims["role"].(string); ok && s != "" {
		return s
	}
	return "customer"
}
