package utils

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"homestay-backend/models"
)

// SessionTTL is how long a login survives before the owner is sent back to
// the identity provider.
const SessionTTL = 7 * 24 * time.Hour

// SessionClaims is the identity carried by the session cookie. Subject is
// the provider's stable user id; the profile fields ride along so handlers
// can render the header without a lookup.
type SessionClaims struct {
	Email           string `json:"email"`
	FirstName       string `json:"first_name"`
	LastName        string `json:"last_name"`
	ProfileImageURL string `json:"profile_image_url"`
	jwt.RegisteredClaims
}

// NewSessionToken signs an HS256 token for the given user.
func NewSessionToken(secret string, user models.User, ttl time.Duration) (string, error) {
	now := time.Now()
	claims := SessionClaims{
		Email:           user.Email,
		FirstName:       user.FirstName,
		LastName:        user.LastName,
		ProfileImageURL: user.ProfileImageURL,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   user.ID,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(secret))
	if err != nil {
		return "", fmt.Errorf("sign session token: %w", err)
	}
	return signed, nil
}

// ParseSessionToken validates a token string and returns its claims.
// Expired, tampered or differently-signed tokens are rejected.
func ParseSessionToken(secret, tokenString string) (*SessionClaims, error) {
	claims := &SessionClaims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return []byte(secret), nil
	})
	if err != nil {
		return nil, fmt.Errorf("parse session token: %w", err)
	}
	if !token.Valid || claims.Subject == "" {
		return nil, fmt.Errorf("invalid session token")
	}
	return claims, nil
}
