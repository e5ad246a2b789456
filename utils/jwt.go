package utils

import (
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"time"

	"rentaldesk/config"

	"github.com/golang-jwt/jwt"
)

func secretKey() []byte {
	secret := config.AppConfig.JWTSecret
	if secret == "" {
		secret = "supersecretkeychangeinproduction"
	}
	return []byte(secret)
}

// GenerateToken creates a signed JWT token for the given subject (tenant or admin ID).
// The role claim distinguishes the two principals. The token expires after duration.
func GenerateToken(subject, email, role string, duration time.Duration) (string, error) {
	claims := jwt.MapClaims{
		"sub":   subject,
		"email": email,
		"role":  role,
		"iat":   time.Now().Unix(),
		"exp":   time.Now().Add(duration).Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(secretKey())
}

// HashToken computes a SHA-256 hash of the token string.
func HashToken(token string) string {
	sum := sha256.Sum256([]byte(token))
	return hex.EncodeToString(sum[:])
}

// ValidateToken parses and validates a token string and returns the token if valid.
func ValidateToken(tokenString string) (*jwt.Token, error) {
	return jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		// Ensure that the token's signing method is HMAC.
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return secretKey(), nil
	})
}

// TokenClaims holds the claims extracted from a validated token.
type TokenClaims struct {
	Subject string
	Email   string
	Role    string
}

// ExtractClaims validates a token string and returns its subject, email and role claims.
func ExtractClaims(tokenString string) (*TokenClaims, error) {
	token, err := ValidateToken(tokenString)
	if err != nil {
		return nil, err
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok || !token.Valid {
		return nil, errors.New("invalid token")
	}

	sub, ok := claims["sub"].(string)
	if !ok || sub == "" {
		return nil, errors.New("token does not contain a valid 'sub' claim")
	}
	email, _ := claims["email"].(string)
	role, _ := claims["role"].(string)

	return &TokenClaims{Subject: sub, Email: email, Role: role}, nil
}
