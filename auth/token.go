// Package auth is the thin identity gate in front of the directory: password
// verification at registration/login and short-lived session tokens carrying
// the participant name. Anything richer (roles, federation) is out of scope.
package auth

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// SessionClaims is the payload carried inside a session token.
type SessionClaims struct {
	Participant string `json:"participant"`
	jwt.RegisteredClaims
}

// TokenManager signs and validates session tokens with a symmetric key
// (HS256). The key comes from configuration, never from source.
type TokenManager struct {
	key      []byte
	duration time.Duration
}

func NewTokenManager(key string, duration time.Duration) TokenManager {
	return TokenManager{key: []byte(key), duration: duration}
}

// Generate creates a signed token binding a session to a participant name.
func (m TokenManager) Generate(participant string) (string, error) {
	now := time.Now()
	claims := &SessionClaims{
		Participant: participant,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(now.Add(m.duration)),
			IssuedAt:  jwt.NewNumericDate(now),
			Issuer:    "presence-lab",
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(m.key)
}

// Validate parses the token and returns the participant name it was issued
// for. Expired or tampered tokens fail here, before any directory lookup.
func (m TokenManager) Validate(tokenString string) (string, error) {
	token, err := jwt.ParseWithClaims(tokenString, &SessionClaims{}, func(*jwt.Token) (interface{}, error) {
		return m.key, nil
	})
	if err != nil {
		return "", err
	}
	claims, ok := token.Claims.(*SessionClaims)
	if !ok || !token.Valid {
		return "", jwt.ErrSignatureInvalid
	}
	return claims.Participant, nil
}
