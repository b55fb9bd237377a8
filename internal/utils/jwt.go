package utils

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// ErrNoExpiry is returned by [TokenExpiry] for tokens without an exp claim.
var ErrNoExpiry = errors.New("token has no expiry")

// TokenExpiry returns the exp claim of a JWT access token without verifying
// its signature. The client never holds the signing key; the server remains
// the authority on validity and this is only used to refresh ahead of time.
func TokenExpiry(tokenString string) (time.Time, error) {
	claims := &jwt.RegisteredClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(tokenString, claims); err != nil {
		return time.Time{}, fmt.Errorf("error parsing token: %w", err)
	}

	if claims.ExpiresAt == nil {
		return time.Time{}, ErrNoExpiry
	}

	return claims.ExpiresAt.Time, nil
}

// IsTokenExpired reports whether tokenString expires within leeway of now.
// Opaque (non-JWT) tokens and tokens without exp are never considered
// expired; the server decides for them.
func IsTokenExpired(tokenString string, now time.Time, leeway time.Duration) bool {
	exp, err := TokenExpiry(tokenString)
	if err != nil {
		return false
	}
	return !now.Add(leeway).Before(exp)
}

// GenerateJWTToken creates an HMAC-SHA256 signed JWT with the given subject
// expiring after tokenDuration. It is used by the fake API of the test
// suites and by the local development server.
func GenerateJWTToken(subject string, tokenDuration time.Duration, signKey string) (string, error) {
	if tokenDuration == 0 || signKey == "" {
		return "", errors.New("invalid params for generating JWT Token")
	}

	now := time.Now()
	claims := &jwt.RegisteredClaims{
		Subject:   subject,
		ExpiresAt: jwt.NewNumericDate(now.Add(tokenDuration)),
		IssuedAt:  jwt.NewNumericDate(now),
	}

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(signKey))
	if err != nil {
		return "", fmt.Errorf("error occurred during signing JWT token: %w", err)
	}

	return signed, nil
}
