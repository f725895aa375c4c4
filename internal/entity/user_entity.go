package entity

import (
	"time"

	"github.com/google/uuid"
)

type User struct {
	Id            uuid.UUID
	Email         string
	PasswordHash  string
	Name          string
	PublicProfile bool

	// Aggregate stats, mutated only by the activity ledger.
	TotalPoints     int
	TotalCO2Saved   float64
	TotalWaterSaved float64
	ActivitiesCount int
	CurrentStreak   int
	LongestStreak   int
	LastActivity    *time.Time

	CreatedAt time.Time
	UpdatedAt time.Time
}

// RefreshToken is the server-side revocable half of a session. Only the
// sha256 hash of the opaque client string is stored.
type RefreshToken struct {
	Id        uuid.UUID
	UserId    uuid.UUID
	TokenHash string
	ExpiresAt time.Time
	Revoked   bool
	CreatedAt time.Time
}

// Valid reports whether the token can still mint new access tokens.
func (t *RefreshToken) Valid(now time.Time) bool {
	return !t.Revoked && now.Before(t.ExpiresAt)
}
