package implementation

import (
	"context"

	"leafit-be/internal/entity"
	"leafit-be/internal/mapper"
	"leafit-be/internal/model"
	"leafit-be/internal/repository/contract"
	"leafit-be/internal/repository/specification"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ActivityRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.ActivityMapper
}

func NewActivityRepository(db *gorm.DB) contract.ActivityRepository {
	return &ActivityRepositoryImpl{
		db:     db,
		mapper: mapper.NewActivityMapper(),
	}
}

func (r *ActivityRepositoryImpl) applySpecifications(db *gorm.DB, specs ...specification.Specification) *gorm.DB {
	for _, spec := range specs {
		db = spec.Apply(db)
	}
	return db
}

func (r *ActivityRepositoryImpl) Create(ctx context.Context, activity *entity.UserActivity) error {
	m := r.mapper.ToModel(activity)
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return err
	}
	*activity = *r.mapper.ToEntity(m)
	return nil
}

func (r *ActivityRepositoryImpl) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.UserActivity, error) {
	var models []*model.UserActivity
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)

	if err := query.Find(&models).Error; err != nil {
		return nil, err
	}

	return r.mapper.ToEntities(models), nil
}

func (r *ActivityRepositoryImpl) Count(ctx context.Context, specs ...specification.Specification) (int64, error) {
	var count int64
	query := r.applySpecifications(r.db.WithContext(ctx).Model(&model.UserActivity{}), specs...)
	if err := query.Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

func (r *ActivityRepositoryImpl) CategoryBreakdown(ctx context.Context, userId uuid.UUID) ([]contract.CategoryStat, error) {
	var results []contract.CategoryStat
	err := r.db.WithContext(ctx).Model(&model.UserActivity{}).
		Select("activity_type AS category, COUNT(*) as count, COALESCE(SUM(points_earned), 0) as points, COALESCE(SUM(co2_saved), 0) as co2_saved, COALESCE(SUM(water_saved), 0) as water_saved").
		Where("user_id = ?", userId).
		Group("activity_type").
		Order("activity_type ASC").
		Scan(&results).Error
	if err != nil {
		return nil, err
	}
	return results, nil
}

func (r *ActivityRepositoryImpl) Totals(ctx context.Context) (*contract.GlobalTotals, error) {
	var totals contract.GlobalTotals
	err := r.db.WithContext(ctx).Model(&model.UserActivity{}).
		Select("COUNT(*) as activities, COALESCE(SUM(points_earned), 0) as total_points, COALESCE(SUM(co2_saved), 0) as total_co2, COALESCE(SUM(water_saved), 0) as total_water").
		Scan(&totals).Error
	if err != nil {
		return nil, err
	}
	return &totals, nil
}
