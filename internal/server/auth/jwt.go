// Package auth issues and verifies the HS256 tokens that guard the payroll
// RPCs.
package auth

import (
	"errors"
	"fmt"
	"time"

	"github.com/dmitrijs2005/transferbench/internal/common"
	"github.com/golang-jwt/jwt/v5"
)

// Claims carries the standard claims plus the client name.
type Claims struct {
	jwt.RegisteredClaims
	Client string `json:"client"`
}

func GenerateToken(client string, secretKey []byte, validityDuration time.Duration) (string, error) {
	now := time.Now()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(validityDuration)),
		},
		Client: client,
	})

	return token.SignedString(secretKey)
}

// ClientFromToken verifies tokenString and returns the client it was issued
// to. Expired tokens yield common.ErrTokenExpired, anything else invalid
// yields common.ErrInvalidToken.
func ClientFromToken(tokenString string, secretKey []byte) (string, error) {
	claims := &Claims{}

	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		return secretKey, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return "", common.ErrTokenExpired
		}
		return "", fmt.Errorf("%w: %v", common.ErrInvalidToken, err)
	}

	if !token.Valid {
		return "", common.ErrInvalidToken
	}

	return claims.Client, nil
}
