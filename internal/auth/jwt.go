package auth

import (
	"errors"
	"os"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// The signing key comes from JWT_SECRET. The fallback keeps local
// development working without a .env file; it must never reach production.
func secretKey() []byte {
	if secret := os.Getenv("JWT_SECRET"); secret != "" {
		return []byte(secret)
	}
	return []byte("A_VERY_SECURE_SECRET_KEY_REPLACE_LATER")
}

// GenerateToken creates a portal session token. There are no user accounts
// behind the EPP portal, only a shared password gate, so the token carries a
// single "authorized" claim rather than a user id.
func GenerateToken() (string, error) {
	claims := jwt.MapClaims{
		"authorized": true,
		"exp":        time.Now().Add(24 * time.Hour).Unix(),
		"iat":        time.Now().Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(secretKey())
}

// ValidateToken parses a session token and confirms the authorized claim.
func ValidateToken(tokenString string) error {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return secretKey(), nil
	})
	if err != nil {
		return err
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok || !token.Valid {
		return errors.New("invalid token")
	}
	if authorized, ok := claims["authorized"].(bool); !ok || !authorized {
		return errors.New("token is not authorized")
	}
	return nil
}
