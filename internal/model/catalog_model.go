package model

import (
	"time"

	"github.com/google/uuid"
)

type GreenAction struct {
	Id            uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	Title         string    `gorm:"type:varchar(200);not null"`
	Slug          string    `gorm:"type:varchar(200);uniqueIndex;not null"`
	Category      string    `gorm:"type:varchar(50);not null;index"`
	PointsPerUnit int       `gorm:"default:10"`
	CO2PerUnit    float64   `gorm:"column:co2_per_unit;default:0"`
	WaterPerUnit  float64   `gorm:"default:0"`
	Unit          string    `gorm:"type:varchar(50)"`
	Icon          string    `gorm:"type:varchar(50)"`
	IsActive      bool      `gorm:"default:true"`
	CreatedAt     time.Time `gorm:"autoCreateTime"`
}

func (GreenAction) TableName() string {
	return "green_actions"
}

type Badge struct {
	Id             uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	Name           string    `gorm:"type:varchar(100);not null"`
	Slug           string    `gorm:"type:varchar(100);uniqueIndex;not null"`
	Description    string    `gorm:"type:text"`
	Icon           string    `gorm:"type:varchar(50)"`
	PointsRequired int       `gorm:"default:0"`
	Category       string    `gorm:"type:varchar(50)"`
	CreatedAt      time.Time `gorm:"autoCreateTime"`
}

func (Badge) TableName() string {
	return "badges"
}

type UserBadge struct {
	Id       uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	UserId   uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_user_badge"`
	BadgeId  uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_user_badge"`
	EarnedAt time.Time `gorm:"autoCreateTime"`
}

func (UserBadge) TableName() string {
	return "user_badges"
}
