package mapper

import (
	"leafit-be/internal/entity"
	"leafit-be/internal/model"
)

type UserMapper struct{}

func NewUserMapper() *UserMapper {
	return &UserMapper{}
}

func (m *UserMapper) ToEntity(u *model.User) *entity.User {
	if u == nil {
		return nil
	}
	return &entity.User{
		Id:              u.Id,
		Email:           u.Email,
		PasswordHash:    u.PasswordHash,
		Name:            u.Name,
		PublicProfile:   u.PublicProfile,
		TotalPoints:     u.TotalPoints,
		TotalCO2Saved:   u.TotalCO2Saved,
		TotalWaterSaved: u.TotalWaterSaved,
		ActivitiesCount: u.ActivitiesCount,
		CurrentStreak:   u.CurrentStreak,
		LongestStreak:   u.LongestStreak,
		LastActivity:    u.LastActivity,
		CreatedAt:       u.CreatedAt,
		UpdatedAt:       u.UpdatedAt,
	}
}

func (m *UserMapper) ToModel(u *entity.User) *model.User {
	if u == nil {
		return nil
	}
	return &model.User{
		Id:              u.Id,
		Email:           u.Email,
		PasswordHash:    u.PasswordHash,
		Name:            u.Name,
		PublicProfile:   u.PublicProfile,
		TotalPoints:     u.TotalPoints,
		TotalCO2Saved:   u.TotalCO2Saved,
		TotalWaterSaved: u.TotalWaterSaved,
		ActivitiesCount: u.ActivitiesCount,
		CurrentStreak:   u.CurrentStreak,
		LongestStreak:   u.LongestStreak,
		LastActivity:    u.LastActivity,
		CreatedAt:       u.CreatedAt,
		UpdatedAt:       u.UpdatedAt,
	}
}

func (m *UserMapper) ToEntities(users []*model.User) []*entity.User {
	entities := make([]*entity.User, len(users))
	for i, u := range users {
		entities[i] = m.ToEntity(u)
	}
	return entities
}

// Refresh token mappers

func (m *UserMapper) RefreshTokenToEntity(t *model.RefreshToken) *entity.RefreshToken {
	if t == nil {
		return nil
	}
	return &entity.RefreshToken{
		Id:        t.Id,
		UserId:    t.UserId,
		TokenHash: t.TokenHash,
		ExpiresAt: t.ExpiresAt,
		Revoked:   t.Revoked,
		CreatedAt: t.CreatedAt,
	}
}

func (m *UserMapper) RefreshTokenToModel(t *entity.RefreshToken) *model.RefreshToken {
	if t == nil {
		return nil
	}
	return &model.RefreshToken{
		Id:        t.Id,
		UserId:    t.UserId,
		TokenHash: t.TokenHash,
		ExpiresAt: t.ExpiresAt,
		Revoked:   t.Revoked,
		CreatedAt: t.CreatedAt,
	}
}
