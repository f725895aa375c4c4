package implementation

import (
	"context"
	"errors"

	"leafit-be/internal/entity"
	"leafit-be/internal/mapper"
	"leafit-be/internal/model"
	"leafit-be/internal/repository/contract"
	"leafit-be/internal/repository/specification"

	"gorm.io/gorm"
)

type GreenActionRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.CatalogMapper
}

func NewGreenActionRepository(db *gorm.DB) contract.GreenActionRepository {
	return &GreenActionRepositoryImpl{
		db:     db,
		mapper: mapper.NewCatalogMapper(),
	}
}

func (r *GreenActionRepositoryImpl) applySpecifications(db *gorm.DB, specs ...specification.Specification) *gorm.DB {
	for _, spec := range specs {
		db = spec.Apply(db)
	}
	return db
}

func (r *GreenActionRepositoryImpl) Create(ctx context.Context, action *entity.GreenAction) error {
	m := r.mapper.ActionToModel(action)
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return err
	}
	*action = *r.mapper.ActionToEntity(m)
	return nil
}

func (r *GreenActionRepositoryImpl) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.GreenAction, error) {
	var m model.GreenAction
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)

	if err := query.First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	return r.mapper.ActionToEntity(&m), nil
}

func (r *GreenActionRepositoryImpl) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.GreenAction, error) {
	var models []*model.GreenAction
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)

	if err := query.Find(&models).Error; err != nil {
		return nil, err
	}

	return r.mapper.ActionsToEntities(models), nil
}

func (r *GreenActionRepositoryImpl) Count(ctx context.Context, specs ...specification.Specification) (int64, error) {
	var count int64
	query := r.applySpecifications(r.db.WithContext(ctx).Model(&model.GreenAction{}), specs...)
	if err := query.Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}
