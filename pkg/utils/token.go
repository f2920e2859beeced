package utils

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Claims carried in the bearer token: subject is the user ID,
// role travels alongside so middleware can authorize without a DB hit.
type Claims struct {
	Role string `json:"role"`
	jwt.RegisteredClaims
}

// GenerateToken signs an HS256 token for the given user and role.
func GenerateToken(cfg JWTConfig, userID, role string) (token string, expiresAt time.Time, err error) {
	if cfg.Secret == "" {
		return "", time.Time{}, fmt.Errorf("JWT secret is empty")
	}

	expiryHours := cfg.ExpiryHours
	if expiryHours <= 0 {
		expiryHours = 720 // 30 days
	}

	now := time.Now()
	expiresAt = now.Add(time.Duration(expiryHours) * time.Hour)

	claims := Claims{
		Role: role,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   userID,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(expiresAt),
		},
	}

	t := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := t.SignedString([]byte(cfg.Secret))
	if err != nil {
		return "", time.Time{}, err
	}

	return signed, expiresAt, nil
}

// VerifyToken parses and validates a bearer token against the shared secret.
func VerifyToken(cfg JWTConfig, token string) (*Claims, error) {
	claims := &Claims{}

	parsed, err := jwt.ParseWithClaims(token, claims, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return []byte(cfg.Secret), nil
	})
	if err != nil {
		return nil, err
	}
	if !parsed.Valid {
		return nil, jwt.ErrTokenUnverifiable
	}

	return claims, nil
}
