package service

import (
	"context"
	"time"

	"leafit-be/internal/dto"
	"leafit-be/internal/repository/specification"
	"leafit-be/internal/repository/unitofwork"

	gocache "github.com/patrickmn/go-cache"
)

const actionCatalogCacheKey = "green_actions:active"

type IActionService interface {
	ListActive(ctx context.Context) (*dto.ListGreenActionsResponse, error)
}

type actionService struct {
	uowFactory unitofwork.RepositoryFactory
	cache      *gocache.Cache
}

func NewActionService(uowFactory unitofwork.RepositoryFactory) IActionService {
	return &actionService{
		uowFactory: uowFactory,
		// The catalog only changes on reseed.
		cache: gocache.New(5*time.Minute, 10*time.Minute),
	}
}

func (s *actionService) ListActive(ctx context.Context) (*dto.ListGreenActionsResponse, error) {
	if cached, found := s.cache.Get(actionCatalogCacheKey); found {
		if res, ok := cached.(*dto.ListGreenActionsResponse); ok {
			return res, nil
		}
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)
	actions, err := uow.GreenActionRepository().FindAll(ctx,
		specification.ActiveOnly{},
		specification.OrderBy{Field: "category", Desc: false},
	)
	if err != nil {
		return nil, err
	}

	res := &dto.ListGreenActionsResponse{
		Actions: make([]dto.GreenActionResponse, 0, len(actions)),
	}
	for _, a := range actions {
		res.Actions = append(res.Actions, dto.GreenActionResponse{
			Id:            a.Id,
			Title:         a.Title,
			Slug:          a.Slug,
			Category:      string(a.Category),
			PointsPerUnit: a.PointsPerUnit,
			CO2PerUnit:    a.CO2PerUnit,
			WaterPerUnit:  a.WaterPerUnit,
			Unit:          a.Unit,
			Icon:          a.Icon,
		})
	}

	s.cache.Set(actionCatalogCacheKey, res, gocache.DefaultExpiration)
	return res, nil
}
