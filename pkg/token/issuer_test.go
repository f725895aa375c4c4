package token

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestIssueAndValidate(t *testing.T) {
	issuer := NewIssuer("test-secret", time.Hour)
	userId := uuid.New()

	signed, err := issuer.IssueAccess(userId, "leaf@example.com", time.Now())
	assert.NoError(t, err)
	assert.NotEmpty(t, signed)

	claims, err := issuer.ValidateAccess(signed)
	assert.NoError(t, err)
	assert.Equal(t, userId, claims.UserId)
	assert.Equal(t, "leaf@example.com", claims.Email)
}

func TestValidateExpired(t *testing.T) {
	issuer := NewIssuer("test-secret", time.Minute)

	// Issued two hours in the past, well beyond the one-minute TTL.
	signed, err := issuer.IssueAccess(uuid.New(), "old@example.com", time.Now().Add(-2*time.Hour))
	assert.NoError(t, err)

	_, err = issuer.ValidateAccess(signed)
	assert.ErrorIs(t, err, ErrTokenExpired)
}

func TestValidateWrongSecret(t *testing.T) {
	signed, err := NewIssuer("secret-a", time.Hour).IssueAccess(uuid.New(), "a@example.com", time.Now())
	assert.NoError(t, err)

	_, err = NewIssuer("secret-b", time.Hour).ValidateAccess(signed)
	assert.ErrorIs(t, err, ErrTokenInvalid)
}

func TestValidateRejectsNonAccessType(t *testing.T) {
	issuer := NewIssuer("test-secret", time.Hour)

	claims := jwt.MapClaims{
		"user_id": uuid.New().String(),
		"email":   "x@example.com",
		"iat":     time.Now().Unix(),
		"exp":     time.Now().Add(time.Hour).Unix(),
		"type":    "refresh",
	}
	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("test-secret"))
	assert.NoError(t, err)

	_, err = issuer.ValidateAccess(signed)
	assert.ErrorIs(t, err, ErrTokenInvalid)
}

func TestValidateGarbage(t *testing.T) {
	issuer := NewIssuer("test-secret", time.Hour)
	_, err := issuer.ValidateAccess("not.a.jwt")
	assert.ErrorIs(t, err, ErrTokenInvalid)
}

func TestNewRefreshTokenUnique(t *testing.T) {
	a := NewRefreshToken()
	b := NewRefreshToken()
	assert.NotEqual(t, a, b)
	assert.Greater(t, len(a), 36)
}
