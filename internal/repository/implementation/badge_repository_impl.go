package implementation

import (
	"context"
	"errors"

	"leafit-be/internal/entity"
	"leafit-be/internal/mapper"
	"leafit-be/internal/model"
	"leafit-be/internal/repository/contract"
	"leafit-be/internal/repository/specification"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type BadgeRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.CatalogMapper
}

func NewBadgeRepository(db *gorm.DB) contract.BadgeRepository {
	return &BadgeRepositoryImpl{
		db:     db,
		mapper: mapper.NewCatalogMapper(),
	}
}

func (r *BadgeRepositoryImpl) applySpecifications(db *gorm.DB, specs ...specification.Specification) *gorm.DB {
	for _, spec := range specs {
		db = spec.Apply(db)
	}
	return db
}

func (r *BadgeRepositoryImpl) Create(ctx context.Context, badge *entity.Badge) error {
	m := r.mapper.BadgeToModel(badge)
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return err
	}
	*badge = *r.mapper.BadgeToEntity(m)
	return nil
}

func (r *BadgeRepositoryImpl) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.Badge, error) {
	var m model.Badge
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)

	if err := query.First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	return r.mapper.BadgeToEntity(&m), nil
}

func (r *BadgeRepositoryImpl) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Badge, error) {
	var models []*model.Badge
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)

	if err := query.Find(&models).Error; err != nil {
		return nil, err
	}

	return r.mapper.BadgesToEntities(models), nil
}

func (r *BadgeRepositoryImpl) AttachToUser(ctx context.Context, userId, badgeId uuid.UUID) (bool, error) {
	m := &model.UserBadge{
		UserId:  userId,
		BadgeId: badgeId,
	}
	result := r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "user_id"}, {Name: "badge_id"}},
			DoNothing: true,
		}).
		Create(m)
	if result.Error != nil {
		return false, result.Error
	}
	return result.RowsAffected > 0, nil
}

func (r *BadgeRepositoryImpl) FindUserBadges(ctx context.Context, userId uuid.UUID) ([]*entity.UserBadge, error) {
	var models []*model.UserBadge
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userId).
		Order("earned_at ASC").
		Find(&models).Error
	if err != nil {
		return nil, err
	}
	return r.mapper.UserBadgesToEntities(models), nil
}
