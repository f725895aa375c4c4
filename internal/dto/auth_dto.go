package dto

import (
	"time"

	"github.com/google/uuid"
)

type RegisterRequest struct {
	Name            string `json:"name" validate:"required,min=2,max=100"`
	Email           string `json:"email" validate:"required,email"`
	Password        string `json:"password" validate:"required,min=8"`
	ConfirmPassword string `json:"confirm_password" validate:"required,eqfield=Password"`
}

type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type RefreshRequest struct {
	RefreshToken string `json:"refresh_token" validate:"required"`
}

type LogoutRequest struct {
	RefreshToken string `json:"refresh_token" validate:"required"`
}

type ChangePasswordRequest struct {
	OldPassword     string `json:"old_password" validate:"required"`
	NewPassword     string `json:"new_password" validate:"required,min=8"`
	ConfirmPassword string `json:"confirm_password" validate:"required,eqfield=NewPassword"`
}

type UpdateProfileRequest struct {
	Name          string `json:"name" validate:"required,min=2,max=100"`
	PublicProfile *bool  `json:"public_profile" validate:"omitempty"`
}

type UserProfileResponse struct {
	Id              uuid.UUID  `json:"id"`
	Email           string     `json:"email"`
	Name            string     `json:"name"`
	PublicProfile   bool       `json:"public_profile"`
	TotalPoints     int        `json:"total_points"`
	TotalCO2Saved   float64    `json:"total_co2_saved"`
	TotalWaterSaved float64    `json:"total_water_saved"`
	ActivitiesCount int        `json:"activities_count"`
	CurrentStreak   int        `json:"current_streak"`
	LongestStreak   int        `json:"longest_streak"`
	LastActivity    *time.Time `json:"last_activity"`
	CreatedAt       time.Time  `json:"created_at"`
}

// TokenPairResponse is the flat envelope register/login/refresh return.
type TokenPairResponse struct {
	Success      bool                `json:"success"`
	AccessToken  string              `json:"access_token"`
	RefreshToken string              `json:"refresh_token"`
	TokenType    string              `json:"token_type"`
	ExpiresIn    int                 `json:"expires_in"`
	User         UserProfileResponse `json:"user"`
}
