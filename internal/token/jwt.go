package token

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"github.com/dtroode/scheduleapp/internal/model"
)

// Claims represents the access token claims issued by the auth backend.
type Claims struct {
	jwt.RegisteredClaims
	Email string `json:"email"`
	Role  string `json:"role"`
}

// Decoder extracts the identity and expiry from backend access tokens.
// With an empty secret the signature is not checked: the client only reads
// claims, the backend re-validates every token it receives.
type Decoder struct {
	secretKey string
}

// NewDecoder creates a new access token decoder.
func NewDecoder(secretKey string) *Decoder {
	return &Decoder{secretKey: secretKey}
}

// Decode parses an access token and returns its subject identity and expiry.
func (d *Decoder) Decode(tokenString string) (model.Identity, time.Time, error) {
	claims := &Claims{}

	if d.secretKey == "" {
		if _, _, err := jwt.NewParser().ParseUnverified(tokenString, claims); err != nil {
			return model.Identity{}, time.Time{}, fmt.Errorf("failed to parse access token: %w", err)
		}
	} else {
		token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
			if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, fmt.Errorf("wrong signing method %v", t.Header["alg"])
			}
			return []byte(d.secretKey), nil
		})
		if err != nil {
			return model.Identity{}, time.Time{}, fmt.Errorf("failed to parse access token: %w", err)
		}
		if !token.Valid {
			return model.Identity{}, time.Time{}, fmt.Errorf("access token is invalid")
		}
	}

	userID, err := uuid.Parse(claims.Subject)
	if err != nil {
		return model.Identity{}, time.Time{}, fmt.Errorf("invalid subject %q: %w", claims.Subject, err)
	}

	var expiresAt time.Time
	if claims.ExpiresAt != nil {
		expiresAt = claims.ExpiresAt.Time
	}

	return model.Identity{ID: userID, Email: claims.Email}, expiresAt, nil
}
