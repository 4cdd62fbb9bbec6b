package auth

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

var ErrInvalidToken = errors.New("invalid session token")

type tokenClaims struct {
	SessionID string
	UserID    uint
}

func signToken(secret []byte, sessionID string, userID uint, expires time.Time) (string, error) {
	claims := jwt.MapClaims{
		"sid": sessionID,
		"uid": userID,
		"exp": expires.Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(secret)
}

func parseToken(secret []byte, tokenStr string, now time.Time) (tokenClaims, error) {
	token, err := jwt.Parse(tokenStr, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}
		return secret, nil
	}, jwt.WithTimeFunc(func() time.Time { return now }))
	if err != nil || !token.Valid {
		return tokenClaims{}, fmt.Errorf("%w: %v", ErrInvalidToken, err)
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return tokenClaims{}, ErrInvalidToken
	}
	sid, ok := claims["sid"].(string)
	if !ok || sid == "" {
		return tokenClaims{}, ErrInvalidToken
	}
	// Numeric claims decode as float64.
	uid, ok := claims["uid"].(float64)
	if !ok || uid <= 0 {
		return tokenClaims{}, ErrInvalidToken
	}
	return tokenClaims{SessionID: sid, UserID: uint(uid)}, nil
}
