package service

import (
	"context"
	"time"

	"leafit-be/internal/dto"
	"leafit-be/internal/repository/specification"
	"leafit-be/internal/repository/unitofwork"

	"github.com/google/uuid"
)

type IBadgeService interface {
	ListForUser(ctx context.Context, userId uuid.UUID) (*dto.ListBadgesResponse, error)
}

type badgeService struct {
	uowFactory unitofwork.RepositoryFactory
}

func NewBadgeService(uowFactory unitofwork.RepositoryFactory) IBadgeService {
	return &badgeService{uowFactory: uowFactory}
}

func (s *badgeService) ListForUser(ctx context.Context, userId uuid.UUID) (*dto.ListBadgesResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	badges, err := uow.BadgeRepository().FindAll(ctx,
		specification.OrderBy{Field: "points_required", Desc: false},
	)
	if err != nil {
		return nil, err
	}

	earned, err := uow.BadgeRepository().FindUserBadges(ctx, userId)
	if err != nil {
		return nil, err
	}

	earnedAt := make(map[uuid.UUID]time.Time, len(earned))
	for _, ub := range earned {
		earnedAt[ub.BadgeId] = ub.EarnedAt
	}

	res := &dto.ListBadgesResponse{
		Badges:      make([]dto.BadgeResponse, 0, len(badges)),
		EarnedCount: len(earned),
	}
	for _, b := range badges {
		entry := dto.BadgeResponse{
			Id:             b.Id,
			Name:           b.Name,
			Slug:           b.Slug,
			Description:    b.Description,
			Icon:           b.Icon,
			PointsRequired: b.PointsRequired,
			Category:       b.Category,
		}
		if at, ok := earnedAt[b.Id]; ok {
			entry.Earned = true
			t := at
			entry.EarnedAt = &t
		}
		res.Badges = append(res.Badges, entry)
	}
	return res, nil
}
