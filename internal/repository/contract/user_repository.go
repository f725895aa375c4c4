package contract

import (
	"context"
	"time"

	"leafit-be/internal/entity"
	"leafit-be/internal/repository/specification"

	"github.com/google/uuid"
)

// StatsDelta is the increment applied to a user's aggregates when one
// activity is recorded, together with the post-streak values.
type StatsDelta struct {
	Points        int
	CO2Saved      float64
	WaterSaved    float64
	CurrentStreak int
	LongestStreak int
	LastActivity  time.Time
}

type UserRepository interface {
	Create(ctx context.Context, user *entity.User) error
	Update(ctx context.Context, user *entity.User) error
	FindOne(ctx context.Context, specs ...specification.Specification) (*entity.User, error)
	// FindOneForUpdate locks the matched row until the surrounding
	// transaction finishes. Serializes concurrent stat accrual.
	FindOneForUpdate(ctx context.Context, specs ...specification.Specification) (*entity.User, error)
	FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.User, error)
	Count(ctx context.Context, specs ...specification.Specification) (int64, error)

	// ApplyStatsDelta adds the counter deltas atomically and sets the
	// streak triple on the user row.
	ApplyStatsDelta(ctx context.Context, userId uuid.UUID, delta StatsDelta) error
	UpdatePassword(ctx context.Context, userId uuid.UUID, passwordHash string) error

	// Refresh tokens
	CreateRefreshToken(ctx context.Context, token *entity.RefreshToken) error
	FindRefreshToken(ctx context.Context, specs ...specification.Specification) (*entity.RefreshToken, error)
	// RevokeRefreshToken flips revoked on a still-live token and reports
	// whether it touched a row. Only matching `revoked = false` lets two
	// concurrent rotations race on the flip itself: exactly one caller
	// sees true, the loser sees false.
	RevokeRefreshToken(ctx context.Context, tokenHash string) (bool, error)
	RevokeAllRefreshTokens(ctx context.Context, userId uuid.UUID) error
}
