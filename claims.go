package swt

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// Claims is a ready-made token payload carrying the usual bearer
// fields. Callers who need more structure define their own payload
// type; the token core is generic over any serializable payload.
//
// Claims also satisfies golang-jwt's jwt.Claims, so the same value can
// be handed to JWT-based middleware when the two formats coexist.
//
// The token core never interprets ExpiresAt; expiry enforcement is the
// caller's job (see Expired).
type Claims struct {
	ID        string `json:"jti"`
	Subject   string `json:"sub,omitempty"`
	Issuer    string `json:"iss,omitempty"`
	IssuedAt  int64  `json:"iat,omitempty"`
	ExpiresAt int64  `json:"exp"`
}

var _ jwt.Claims = Claims{}

// NewClaims returns claims for subject with a fresh random ID,
// issued now and expiring after ttl.
func NewClaims(subject string, ttl time.Duration) Claims {
	now := time.Now()
	return Claims{
		ID:        uuid.NewString(),
		Subject:   subject,
		IssuedAt:  now.Unix(),
		ExpiresAt: now.Add(ttl).Unix(),
	}
}

// Expired reports whether the claims' expiry has passed at now. Zero
// ExpiresAt means no expiry.
func (c Claims) Expired(now time.Time) bool {
	return c.ExpiresAt != 0 && now.Unix() >= c.ExpiresAt
}

// GetExpirationTime implements jwt.Claims.
func (c Claims) GetExpirationTime() (*jwt.NumericDate, error) {
	if c.ExpiresAt == 0 {
		return nil, nil
	}
	return jwt.NewNumericDate(time.Unix(c.ExpiresAt, 0)), nil
}

// GetIssuedAt implements jwt.Claims.
func (c Claims) GetIssuedAt() (*jwt.NumericDate, error) {
	if c.IssuedAt == 0 {
		return nil, nil
	}
	return jwt.NewNumericDate(time.Unix(c.IssuedAt, 0)), nil
}

// GetNotBefore implements jwt.Claims. Claims carries no nbf field.
func (c Claims) GetNotBefore() (*jwt.NumericDate, error) { return nil, nil }

// GetIssuer implements jwt.Claims.
func (c Claims) GetIssuer() (string, error) { return c.Issuer, nil }

// GetSubject implements jwt.Claims.
func (c Claims) GetSubject() (string, error) { return c.Subject, nil }

// GetAudience implements jwt.Claims. Claims carries no aud field.
func (c Claims) GetAudience() (jwt.ClaimStrings, error) { return nil, nil }
