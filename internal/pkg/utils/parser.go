package utils

import (
	"consultorio-service/internal/pkg/constvars"
	"errors"

	"github.com/golang-jwt/jwt/v4"
)

// ParseJWT verifies an HS256 session token and extracts the session ID
// claim. Any other signing method is rejected before the key is handed
// to the library.
func ParseJWT(tokenString, secret string) (string, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New(constvars.ErrDevAuthSigningMethod)
		}
		return []byte(secret), nil
	})
	if err != nil {
		return "", err
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok || !token.Valid {
		return "", errors.New(constvars.ErrDevAuthTokenInvalid)
	}
	sessionID, ok := claims[constvars.JWTClaimSessionID].(string)
	if !ok || sessionID == "" {
		return "", errors.New(constvars.ErrDevAuthTokenInvalid)
	}
	return sessionID, nil
}
