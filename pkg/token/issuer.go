package token

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

var (
	ErrTokenInvalid = errors.New("token invalid")
	ErrTokenExpired = errors.New("token expired")
)

// AccessClaims are the decoded contents of a valid access token.
type AccessClaims struct {
	UserId uuid.UUID
	Email  string
}

// Issuer signs and validates short-lived access tokens. Access tokens are
// stateless; refresh tokens are persisted and revoked elsewhere.
type Issuer struct {
	secret []byte
	ttl    time.Duration
}

func NewIssuer(secret string, ttl time.Duration) *Issuer {
	return &Issuer{secret: []byte(secret), ttl: ttl}
}

// TTL returns the configured access token lifetime.
func (i *Issuer) TTL() time.Duration {
	return i.ttl
}

// IssueAccess signs a new access token for the user.
func (i *Issuer) IssueAccess(userId uuid.UUID, email string, now time.Time) (string, error) {
	claims := jwt.MapClaims{
		"user_id": userId.String(),
		"email":   email,
		"iat":     now.Unix(),
		"exp":     now.Add(i.ttl).Unix(),
		"type":    "access",
	}
	t := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return t.SignedString(i.secret)
}

// ValidateAccess verifies signature, expiry and the access type marker.
// Expired and otherwise-invalid tokens are distinct errors; callers treat
// both as unauthenticated.
func (i *Issuer) ValidateAccess(tokenStr string) (*AccessClaims, error) {
	t, err := jwt.Parse(tokenStr, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return i.secret, nil
	})
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, ErrTokenExpired
		}
		return nil, ErrTokenInvalid
	}
	claims, ok := t.Claims.(jwt.MapClaims)
	if !ok || !t.Valid {
		return nil, ErrTokenInvalid
	}
	if typ, _ := claims["type"].(string); typ != "access" {
		return nil, ErrTokenInvalid
	}

	idStr, _ := claims["user_id"].(string)
	userId, err := uuid.Parse(idStr)
	if err != nil {
		return nil, ErrTokenInvalid
	}
	email, _ := claims["email"].(string)

	return &AccessClaims{UserId: userId, Email: email}, nil
}

// NewRefreshToken mints an opaque refresh token string. The raw value is
// handed to the client; only its hash is persisted.
func NewRefreshToken() string {
	return uuid.New().String() + uuid.New().String()
}
