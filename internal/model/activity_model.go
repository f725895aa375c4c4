package model

import (
	"time"

	"github.com/google/uuid"
)

type UserActivity struct {
	Id              uuid.UUID  `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	UserId          uuid.UUID  `gorm:"type:uuid;not null;index"`
	GreenActionId   *uuid.UUID `gorm:"type:uuid;index"`
	ActivityType    string     `gorm:"type:varchar(50);not null;index"`
	ActivitySubtype string     `gorm:"type:varchar(100);not null"`
	ActivityName    string     `gorm:"type:varchar(255);not null"`
	Quantity        float64    `gorm:"not null"`
	Unit            string     `gorm:"type:varchar(50)"`
	Notes           string     `gorm:"type:text"`
	ActivityDate    time.Time  `gorm:"not null;index"`
	PointsEarned    int        `gorm:"not null"`
	CO2Saved        float64    `gorm:"column:co2_saved;not null"`
	WaterSaved      float64    `gorm:"not null"`
	CreatedAt       time.Time  `gorm:"autoCreateTime"`
}

func (UserActivity) TableName() string {
	return "user_activities"
}
