package utils

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
)

func TestTokenUtil_GenerateToken(t *testing.T) {
	tokenUtil := NewTokenUtil("secret", time.Hour)
	sessionID := "9f2c8a9e-1111-2222-3333-444455556666"
	userID := 1

	tokenString, err := tokenUtil.GenerateToken(sessionID, userID)

	assert.NoError(t, err)
	assert.NotEmpty(t, tokenString)

	// Validate the token to ensure it's well-formed and contains correct claims
	claims, err := tokenUtil.ValidateToken(tokenString)
	assert.NoError(t, err)
	assert.NotNil(t, claims)
	assert.Equal(t, sessionID, claims.SessionID)
	assert.Equal(t, userID, claims.UserID)
	assert.WithinDuration(t, time.Now().Add(time.Hour), claims.ExpiresAt.Time, 5*time.Second)
}

func TestTokenUtil_ValidateToken(t *testing.T) {
	tokenUtil := NewTokenUtil("secret", time.Hour)

	tokenString, _ := tokenUtil.GenerateToken("sid-1", 7)

	claims, err := tokenUtil.ValidateToken(tokenString)

	assert.NoError(t, err)
	assert.NotNil(t, claims)
	assert.Equal(t, "sid-1", claims.SessionID)
	assert.Equal(t, 7, claims.UserID)
}

func TestTokenUtil_ValidateToken_InvalidToken(t *testing.T) {
	tokenUtil := NewTokenUtil("secret", time.Hour)

	_, err := tokenUtil.ValidateToken("invalid.token.string")
	assert.Error(t, err)
}

func TestTokenUtil_ValidateToken_ExpiredToken(t *testing.T) {
	tokenUtil := NewTokenUtil("secret", -time.Hour) // Token expires in the past

	tokenString, _ := tokenUtil.GenerateToken("sid-1", 1)

	_, err := tokenUtil.ValidateToken(tokenString)
	assert.Error(t, err)
	assert.ErrorIs(t, err, jwt.ErrTokenExpired)
}

func TestTokenUtil_ValidateToken_WrongSecret(t *testing.T) {
	tokenUtil1 := NewTokenUtil("secret1", time.Hour)
	tokenUtil2 := NewTokenUtil("secret2", time.Hour)

	tokenString, _ := tokenUtil1.GenerateToken("sid-1", 1)

	_, err := tokenUtil2.ValidateToken(tokenString)
	assert.Error(t, err)
}

func TestTokenUtil_ValidateToken_InvalidSigningMethod(t *testing.T) {
	tokenUtil := NewTokenUtil("secret", time.Hour)
	// Create a token with a different signing method (e.g., HS384 instead of HS256)
	claims := &SessionClaims{
		SessionID: "sid-1",
		UserID:    1,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS384, claims)
	tokenString, _ := token.SignedString([]byte("secret"))

	_, err := tokenUtil.ValidateToken(tokenString)
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "unexpected signing method")
}
