package mapper

import (
	"leafit-be/internal/entity"
	"leafit-be/internal/model"
)

type CatalogMapper struct{}

func NewCatalogMapper() *CatalogMapper {
	return &CatalogMapper{}
}

func (m *CatalogMapper) ActionToEntity(a *model.GreenAction) *entity.GreenAction {
	if a == nil {
		return nil
	}
	return &entity.GreenAction{
		Id:            a.Id,
		Title:         a.Title,
		Slug:          a.Slug,
		Category:      entity.ActivityCategory(a.Category),
		PointsPerUnit: a.PointsPerUnit,
		CO2PerUnit:    a.CO2PerUnit,
		WaterPerUnit:  a.WaterPerUnit,
		Unit:          a.Unit,
		Icon:          a.Icon,
		IsActive:      a.IsActive,
		CreatedAt:     a.CreatedAt,
	}
}

func (m *CatalogMapper) ActionToModel(a *entity.GreenAction) *model.GreenAction {
	if a == nil {
		return nil
	}
	return &model.GreenAction{
		Id:            a.Id,
		Title:         a.Title,
		Slug:          a.Slug,
		Category:      string(a.Category),
		PointsPerUnit: a.PointsPerUnit,
		CO2PerUnit:    a.CO2PerUnit,
		WaterPerUnit:  a.WaterPerUnit,
		Unit:          a.Unit,
		Icon:          a.Icon,
		IsActive:      a.IsActive,
		CreatedAt:     a.CreatedAt,
	}
}

func (m *CatalogMapper) ActionsToEntities(actions []*model.GreenAction) []*entity.GreenAction {
	entities := make([]*entity.GreenAction, len(actions))
	for i, a := range actions {
		entities[i] = m.ActionToEntity(a)
	}
	return entities
}

func (m *CatalogMapper) BadgeToEntity(b *model.Badge) *entity.Badge {
	if b == nil {
		return nil
	}
	return &entity.Badge{
		Id:             b.Id,
		Name:           b.Name,
		Slug:           b.Slug,
		Description:    b.Description,
		Icon:           b.Icon,
		PointsRequired: b.PointsRequired,
		Category:       b.Category,
		CreatedAt:      b.CreatedAt,
	}
}

func (m *CatalogMapper) BadgeToModel(b *entity.Badge) *model.Badge {
	if b == nil {
		return nil
	}
	return &model.Badge{
		Id:             b.Id,
		Name:           b.Name,
		Slug:           b.Slug,
		Description:    b.Description,
		Icon:           b.Icon,
		PointsRequired: b.PointsRequired,
		Category:       b.Category,
		CreatedAt:      b.CreatedAt,
	}
}

func (m *CatalogMapper) BadgesToEntities(badges []*model.Badge) []*entity.Badge {
	entities := make([]*entity.Badge, len(badges))
	for i, b := range badges {
		entities[i] = m.BadgeToEntity(b)
	}
	return entities
}

func (m *CatalogMapper) UserBadgeToEntity(ub *model.UserBadge) *entity.UserBadge {
	if ub == nil {
		return nil
	}
	return &entity.UserBadge{
		Id:       ub.Id,
		UserId:   ub.UserId,
		BadgeId:  ub.BadgeId,
		EarnedAt: ub.EarnedAt,
	}
}

func (m *CatalogMapper) UserBadgeToModel(ub *entity.UserBadge) *model.UserBadge {
	if ub == nil {
		return nil
	}
	return &model.UserBadge{
		Id:       ub.Id,
		UserId:   ub.UserId,
		BadgeId:  ub.BadgeId,
		EarnedAt: ub.EarnedAt,
	}
}

func (m *CatalogMapper) UserBadgesToEntities(userBadges []*model.UserBadge) []*entity.UserBadge {
	entities := make([]*entity.UserBadge, 0, len(userBadges))
	for _, ub := range userBadges {
		entities = append(entities, m.UserBadgeToEntity(ub))
	}
	return entities
}
