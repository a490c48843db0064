package token

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/ndanyliw/tasklist-server/internal/model"
)

// Claims represents JWT claims binding a username and numeric user id.
type Claims struct {
	jwt.RegisteredClaims
	UserID int64 `json:"id"`
}

// JWT implements TokenManager backed by symmetric HMAC. The signing
// method is pinned server-side; tokens proposing any other algorithm
// are rejected before signature verification.
type JWT struct {
	secretKey string
	accessTTL time.Duration
}

// NewJWT creates a new JWT token manager with the provided secret key
// and access token lifetime.
func NewJWT(secretKey string, accessTTL time.Duration) model.TokenManager {
	return &JWT{secretKey: secretKey, accessTTL: accessTTL}
}

// Generate creates a signed access token for the given identity,
// expiring accessTTL from now.
func (j *JWT) Generate(username string, userID int64) (string, error) {
	now := time.Now()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   username,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(j.accessTTL)),
		},
		UserID: userID,
	})

	tokenString, err := token.SignedString([]byte(j.secretKey))
	if err != nil {
		return "", fmt.Errorf("failed to sign access token: %w", err)
	}

	return tokenString, nil
}

// Parse validates the signature and expiry of an access token and
// extracts its identity claims.
func (j *JWT) Parse(tokenString string) (model.Claims, error) {
	claims := &Claims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("wrong signing method %v", t.Header["alg"])
		}
		return []byte(j.secretKey), nil
	})
	if err != nil {
		return model.Claims{}, fmt.Errorf("failed to parse access token: %w", err)
	}
	if !token.Valid {
		return model.Claims{}, fmt.Errorf("access token is invalid")
	}
	if claims.Subject == "" {
		return model.Claims{}, fmt.Errorf("access token has empty subject")
	}

	return model.Claims{Username: claims.Subject, UserID: claims.UserID}, nil
}
