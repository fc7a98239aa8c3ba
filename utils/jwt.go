package utils

import (
	"errors"
	"os"
	"strconv"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"food-delivery-backend/models"
)

var jwtSecret = []byte(envOr("JWT_SECRET", "dev-secret-change-me"))

const (
	TokenTypeAccess  = "access"
	TokenTypeRefresh = "refresh"
)

type Claims struct {
	UserID    uint   `json:"user_id"`
	IsStaff   bool   `json:"is_staff"`
	IsAdmin   bool   `json:"is_admin"`
	TokenType string `json:"token_type"`
	jwt.RegisteredClaims
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func envHours(key string, fallback int) time.Duration {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			return time.Duration(n) * time.Hour
		}
	}
	return time.Duration(fallback) * time.Hour
}

// AccessTokenTTL defaults to 5 hours, RefreshTokenTTL to 24 hours.
func AccessTokenTTL() time.Duration  { return envHours("ACCESS_TOKEN_HOURS", 5) }
func RefreshTokenTTL() time.Duration { return envHours("REFRESH_TOKEN_HOURS", 24) }

func signToken(user *models.User, tokenType string, ttl time.Duration) (string, error) {
	claims := &Claims{
		UserID:    user.ID,
		IsStaff:   user.IsStaff,
		IsAdmin:   user.IsAdmin,
		TokenType: tokenType,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(ttl)),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
			Issuer:    "food-delivery-backend",
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(jwtSecret)
}

// GenerateTokenPair issues the access/refresh pair returned on login.
func GenerateTokenPair(user *models.User) (access string, refresh string, err error) {
	access, err = signToken(user, TokenTypeAccess, AccessTokenTTL())
	if err != nil {
		return "", "", err
	}
	refresh, err = signToken(user, TokenTypeRefresh, RefreshTokenTTL())
	if err != nil {
		return "", "", err
	}
	return access, refresh, nil
}

// GenerateAccessToken issues a fresh access token, used by the refresh
// endpoint.
func GenerateAccessToken(user *models.User) (string, error) {
	return signToken(user, TokenTypeAccess, AccessTokenTTL())
}

// ParseToken validates a token of the expected type (access or refresh)
// and returns its claims.
func ParseToken(tokenString, expectedType string) (*Claims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(token *jwt.Token) (interface{}, error) {
		return jwtSecret, nil
	})
	if err != nil || !token.Valid {
		return nil, errors.New("invalid or expired token")
	}
	claims, ok := token.Claims.(*Claims)
	if !ok {
		return nil, errors.New("invalid token claims")
	}
	if claims.TokenType != expectedType {
		return nil, errors.New("unexpected token type")
	}
	return claims, nil
}
