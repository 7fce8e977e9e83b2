package utils

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testJWTSecret = "test-signing-secret"

func TestCreateAndValidateToken(t *testing.T) {
	t.Setenv("JWT_SECRET", testJWTSecret)

	id := uuid.New()
	token, err := CreateToken(id, "member")
	require.NoError(t, err)

	claims, err := ValidateToken(token)
	require.NoError(t, err)
	assert.Equal(t, id.String(), claims.UserID)
	assert.Equal(t, "member", claims.Role)
}

// The secret may only land in the environment once .env is loaded during
// startup, which happens after this package initializes. A token signed
// with an empty key must still be rejected.
func TestValidateToken_RejectsEmptyKeySignature(t *testing.T) {
	t.Setenv("JWT_SECRET", testJWTSecret)

	forged := jwt.NewWithClaims(jwt.SigningMethodHS256, &Claims{
		UserID: uuid.NewString(),
		Role:   "admin",
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		},
	})
	signed, err := forged.SignedString([]byte(""))
	require.NoError(t, err)

	_, err = ValidateToken(signed)
	assert.ErrorIs(t, err, ErrUnauthenticated)
}

func TestValidateToken_RejectsGarbage(t *testing.T) {
	t.Setenv("JWT_SECRET", testJWTSecret)

	_, err := ValidateToken("not-a-token")
	assert.ErrorIs(t, err, ErrUnauthenticated)
}
