package utils

import (
	"consultorio-service/internal/pkg/constvars"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseJWT(t *testing.T) {
	const secret = "test-jwt-secret"

	t.Run("Round trip recovers the session ID", func(t *testing.T) {
		token, err := GenerateSessionJWT("session-abc", secret, 1)
		require.NoError(t, err)

		sessionID, err := ParseJWT(token, secret)
		require.NoError(t, err)
		assert.Equal(t, "session-abc", sessionID)
	})

	t.Run("Wrong secret is rejected", func(t *testing.T) {
		token, err := GenerateSessionJWT("session-abc", secret, 1)
		require.NoError(t, err)

		_, err = ParseJWT(token, "another-secret")
		assert.Error(t, err)
	})

	t.Run("Missing session claim is rejected", func(t *testing.T) {
		bare := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
			"exp": time.Now().Add(time.Hour).Unix(),
		})
		token, err := bare.SignedString([]byte(secret))
		require.NoError(t, err)

		_, err = ParseJWT(token, secret)
		assert.Error(t, err)
	})

	t.Run("Non HMAC signing method is rejected", func(t *testing.T) {
		unsigned := jwt.NewWithClaims(jwt.SigningMethodNone, jwt.MapClaims{
			constvars.JWTClaimSessionID: "session-abc",
		})
		token, err := unsigned.SignedString(jwt.UnsafeAllowNoneSignatureType)
		require.NoError(t, err)

		_, err = ParseJWT(token, secret)
		assert.Error(t, err)
	})
}
