package model

import (
	"time"

	"github.com/google/uuid"
)

type User struct {
	Id            uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	Email         string    `gorm:"type:varchar(255);uniqueIndex;not null"`
	PasswordHash  string    `gorm:"type:varchar(255);not null"`
	Name          string    `gorm:"type:varchar(255);not null"`
	PublicProfile bool      `gorm:"default:true"`

	TotalPoints     int     `gorm:"default:0"`
	TotalCO2Saved   float64 `gorm:"column:total_co2_saved;default:0"`
	TotalWaterSaved float64 `gorm:"default:0"`
	ActivitiesCount int     `gorm:"default:0"`
	CurrentStreak   int     `gorm:"default:0"`
	LongestStreak   int     `gorm:"default:0"`
	LastActivity    *time.Time

	CreatedAt time.Time `gorm:"autoCreateTime"`
	UpdatedAt time.Time `gorm:"autoUpdateTime"`
}

func (User) TableName() string {
	return "users"
}

type RefreshToken struct {
	Id        uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	UserId    uuid.UUID `gorm:"type:uuid;not null;index"`
	TokenHash string    `gorm:"type:text;not null;uniqueIndex"`
	ExpiresAt time.Time `gorm:"not null"`
	Revoked   bool      `gorm:"default:false"`
	CreatedAt time.Time `gorm:"autoCreateTime"`
}

func (RefreshToken) TableName() string {
	return "refresh_tokens"
}
