package utils

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/wall-of-love/server/models"
)

// GenerateJWTToken creates a signed JWT token carrying the user's email
// as the subject claim.
//
// The token includes the following standard claims:
//   - Subject   (sub): the user's email address
//   - ExpiresAt (exp): the current time plus tokenDuration
//
// The signing method is resolved by name (e.g. "HS256", "HS384", "HS512").
// All parameters are required; an error is returned if any of them are
// empty or zero, or if the algorithm name is unknown.
func GenerateJWTToken(email string, tokenDuration time.Duration, signKey, algorithm string) (models.Token, error) {
	if email == "" || tokenDuration == 0 || signKey == "" {
		return models.Token{}, errors.New("invalid params for generating JWT Token")
	}

	method := jwt.GetSigningMethod(algorithm)
	if method == nil {
		return models.Token{}, fmt.Errorf("unknown signing algorithm: %q", algorithm)
	}

	claims := &jwt.RegisteredClaims{
		Subject:   email,
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(tokenDuration)),
	}

	token := jwt.NewWithClaims(method, claims)
	tokenString, err := token.SignedString([]byte(signKey))
	if err != nil {
		return models.Token{}, fmt.Errorf("error occurred during signing JWT token: %w", err)
	}

	return models.Token{Token: token, SignedString: tokenString, Email: email}, nil
}

// ValidateAndParseJWTToken validates the given JWT token string and extracts
// its claims.
//
// Validation includes:
//   - Signature verification using the provided sign key
//   - Signing method check against the configured algorithm name
//   - Expiration (exp) claim check
//   - Subject (sub) claim presence (the user's email)
//
// Returns the parsed token with the Email field populated, or an error if
// validation fails or the subject claim is missing.
func ValidateAndParseJWTToken(tokenString, signKey, algorithm string) (models.Token, error) {
	token, err := jwt.ParseWithClaims(tokenString, &models.Token{}, func(token *jwt.Token) (any, error) {
		return []byte(signKey), nil
	}, jwt.WithValidMethods([]string{algorithm}))
	if err != nil {
		return models.Token{}, fmt.Errorf("error occurred validating and parsing token: %w", err)
	}

	email, err := token.Claims.GetSubject()
	if err != nil {
		return models.Token{}, fmt.Errorf("error occurred during getting subject from token: %w", err)
	}
	if email == "" {
		return models.Token{}, errors.New("empty subject error")
	}

	return models.Token{Token: token, Email: email}, nil
}

// ParseBearerToken extracts the token part of an "Authorization" header
// value of the form "Bearer <token>".
func ParseBearerToken(authorizationHeader string) (string, error) {
	parts := strings.Split(strings.TrimSpace(authorizationHeader), " ")
	if len(parts) != 2 || parts[1] == "" {
		return "", errors.New("invalid authorization header")
	}
	return parts[1], nil
}
