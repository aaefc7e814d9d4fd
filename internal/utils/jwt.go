package utils

import (
	"fmt"
	"strconv"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// SessionClaims carries the server-side session id and its owner inside the
// signed token handed to clients. The session id is what gets checked
// against the session store; the signature only proves the token was issued
// by this process.
type SessionClaims struct {
	SessionID string `json:"sid"`
	UserID    int    `json:"user_id"`
	jwt.RegisteredClaims
}

// TokenUtil signs and parses session tokens
type TokenUtil struct {
	secretKey string
	ttl       time.Duration
}

// NewTokenUtil creates a new TokenUtil
func NewTokenUtil(secretKey string, ttl time.Duration) *TokenUtil {
	return &TokenUtil{secretKey: secretKey, ttl: ttl}
}

// GenerateToken wraps a session id and user id in a signed token
func (tu *TokenUtil) GenerateToken(sessionID string, userID int) (string, error) {
	claims := &SessionClaims{
		SessionID: sessionID,
		UserID:    userID,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(tu.ttl)),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
			Subject:   strconv.Itoa(userID),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	tokenString, err := token.SignedString([]byte(tu.secretKey))
	if err != nil {
		return "", fmt.Errorf("failed to sign token: %w", err)
	}
	return tokenString, nil
}

// ValidateToken verifies the signature and expiry of a session token
func (tu *TokenUtil) ValidateToken(tokenString string) (*SessionClaims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &SessionClaims{}, func(token *jwt.Token) (interface{}, error) {
		if token.Method != jwt.SigningMethodHS256 {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return []byte(tu.secretKey), nil
	})

	if err != nil {
		return nil, fmt.Errorf("failed to parse token: %w", err)
	}

	if claims, ok := token.Claims.(*SessionClaims); ok && token.Valid {
		return claims, nil
	}

	return nil, fmt.Errorf("invalid token")
}
