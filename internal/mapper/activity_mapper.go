package mapper

import (
	"leafit-be/internal/entity"
	"leafit-be/internal/model"
)

type ActivityMapper struct{}

func NewActivityMapper() *ActivityMapper {
	return &ActivityMapper{}
}

func (m *ActivityMapper) ToEntity(a *model.UserActivity) *entity.UserActivity {
	if a == nil {
		return nil
	}
	return &entity.UserActivity{
		Id:              a.Id,
		UserId:          a.UserId,
		GreenActionId:   a.GreenActionId,
		ActivityType:    a.ActivityType,
		ActivitySubtype: a.ActivitySubtype,
		ActivityName:    a.ActivityName,
		Quantity:        a.Quantity,
		Unit:            a.Unit,
		Notes:           a.Notes,
		ActivityDate:    a.ActivityDate,
		PointsEarned:    a.PointsEarned,
		CO2Saved:        a.CO2Saved,
		WaterSaved:      a.WaterSaved,
		CreatedAt:       a.CreatedAt,
	}
}

func (m *ActivityMapper) ToModel(a *entity.UserActivity) *model.UserActivity {
	if a == nil {
		return nil
	}
	return &model.UserActivity{
		Id:              a.Id,
		UserId:          a.UserId,
		GreenActionId:   a.GreenActionId,
		ActivityType:    a.ActivityType,
		ActivitySubtype: a.ActivitySubtype,
		ActivityName:    a.ActivityName,
		Quantity:        a.Quantity,
		Unit:            a.Unit,
		Notes:           a.Notes,
		ActivityDate:    a.ActivityDate,
		PointsEarned:    a.PointsEarned,
		CO2Saved:        a.CO2Saved,
		WaterSaved:      a.WaterSaved,
		CreatedAt:       a.CreatedAt,
	}
}

func (m *ActivityMapper) ToEntities(activities []*model.UserActivity) []*entity.UserActivity {
	entities := make([]*entity.UserActivity, len(activities))
	for i, a := range activities {
		entities[i] = m.ToEntity(a)
	}
	return entities
}
