package service

import (
	"context"
	"encoding/json"
	"time"

	"leafit-be/internal/dto"
	"leafit-be/internal/entity"
	"leafit-be/internal/pkg/logger"
	"leafit-be/internal/repository/contract"
	"leafit-be/internal/repository/specification"
	"leafit-be/internal/repository/unitofwork"
	"leafit-be/pkg/events"
	"leafit-be/pkg/impact"
	pktNats "leafit-be/pkg/nats"
	"leafit-be/pkg/streak"

	"github.com/google/uuid"
)

const recentActivitiesLimit = 10

type IActivityService interface {
	Create(ctx context.Context, userId uuid.UUID, req *dto.CreateActivityRequest) (*dto.CreateActivityResponse, error)
	List(ctx context.Context, userId uuid.UUID, limit, offset int) (*dto.ListActivitiesResponse, error)
	UserStats(ctx context.Context, userId uuid.UUID) (*dto.UserStatsResponse, error)
}

type activityService struct {
	uowFactory       unitofwork.RepositoryFactory
	publisherService IPublisherService
	eventPublisher   *pktNats.Publisher
	logger           logger.ILogger
}

func NewActivityService(
	uowFactory unitofwork.RepositoryFactory,
	publisherService IPublisherService,
	eventPublisher *pktNats.Publisher,
	log logger.ILogger,
) IActivityService {
	return &activityService{
		uowFactory:       uowFactory,
		publisherService: publisherService,
		eventPublisher:   eventPublisher,
		logger:           log,
	}
}

func (s *activityService) Create(ctx context.Context, userId uuid.UUID, req *dto.CreateActivityRequest) (*dto.CreateActivityResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	now := time.Now()
	activityDate := now
	if req.ActivityDate != nil {
		activityDate = *req.ActivityDate
	}

	calc := impact.Calculate(req.ActivitySubtype, req.Quantity)

	activity := &entity.UserActivity{
		Id:              uuid.New(),
		UserId:          userId,
		ActivityType:    req.ActivityType,
		ActivitySubtype: req.ActivitySubtype,
		ActivityName:    req.ActivityName,
		Quantity:        req.Quantity,
		Unit:            req.Unit,
		Notes:           req.Notes,
		ActivityDate:    activityDate,
		PointsEarned:    calc.PointsEarned,
		CO2Saved:        calc.CO2Saved,
		WaterSaved:      calc.WaterSaved,
		CreatedAt:       now,
	}

	// Optional catalog link, the subtype doubles as the action slug.
	if action, err := uow.GreenActionRepository().FindOne(ctx, specification.BySlug{Slug: req.ActivitySubtype}); err == nil && action != nil {
		activity.GreenActionId = &action.Id
	}

	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}
	defer uow.Rollback()

	// Row lock serializes concurrent accrual for the same user.
	user, err := uow.UserRepository().FindOneForUpdate(ctx, specification.ByID{ID: userId})
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, ErrUserNotFound
	}

	if err := uow.ActivityRepository().Create(ctx, activity); err != nil {
		return nil, err
	}

	next := streak.Advance(streak.State{
		Current:      user.CurrentStreak,
		Longest:      user.LongestStreak,
		LastActivity: user.LastActivity,
	}, now)

	delta := contract.StatsDelta{
		Points:        calc.PointsEarned,
		CO2Saved:      calc.CO2Saved,
		WaterSaved:    calc.WaterSaved,
		CurrentStreak: next.Current,
		LongestStreak: next.Longest,
		LastActivity:  now,
	}
	if err := uow.UserRepository().ApplyStatsDelta(ctx, userId, delta); err != nil {
		return nil, err
	}

	if err := uow.Commit(); err != nil {
		return nil, err
	}

	stats := dto.UserStatsBlock{
		TotalPoints:     user.TotalPoints + calc.PointsEarned,
		TotalCO2Saved:   user.TotalCO2Saved + calc.CO2Saved,
		TotalWaterSaved: user.TotalWaterSaved + calc.WaterSaved,
		ActivitiesCount: user.ActivitiesCount + 1,
		CurrentStreak:   next.Current,
		LongestStreak:   next.Longest,
		LastActivity:    next.LastActivity,
	}

	s.publishActivityLogged(ctx, activity, stats.TotalPoints)

	return &dto.CreateActivityResponse{
		Activity:  toActivityResponse(activity),
		UserStats: stats,
	}, nil
}

func (s *activityService) publishActivityLogged(ctx context.Context, activity *entity.UserActivity, totalPoints int) {
	msg := dto.ActivityLoggedMessage{
		UserId:      activity.UserId,
		ActivityId:  activity.Id,
		TotalPoints: totalPoints,
	}
	payload, err := json.Marshal(msg)
	if err == nil {
		if err := s.publisherService.Publish(ctx, payload); err != nil {
			s.logger.Warn("ActivityService", "failed to publish badge check message", map[string]interface{}{
				"error": err.Error(),
			})
		}
	}

	if s.eventPublisher != nil {
		evt := events.BaseEvent{
			Type: events.TypeActivityLogged,
			Data: map[string]interface{}{
				"user_id":       activity.UserId.String(),
				"activity_id":   activity.Id.String(),
				"points_earned": activity.PointsEarned,
				"co2_saved":     activity.CO2Saved,
			},
			OccurredAt: time.Now(),
		}
		if err := s.eventPublisher.Publish(ctx, evt); err != nil {
			s.logger.Warn("ActivityService", "failed to publish ACTIVITY_LOGGED", map[string]interface{}{
				"error": err.Error(),
			})
		}
	}
}

func (s *activityService) List(ctx context.Context, userId uuid.UUID, limit, offset int) (*dto.ListActivitiesResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	if limit <= 0 || limit > 100 {
		limit = 50
	}
	if offset < 0 {
		offset = 0
	}

	repo := uow.ActivityRepository()

	total, err := repo.Count(ctx, specification.OwnedBy{UserID: userId})
	if err != nil {
		return nil, err
	}

	activities, err := repo.FindAll(ctx,
		specification.OwnedBy{UserID: userId},
		specification.OrderBy{Field: "activity_date", Desc: true},
		specification.Pagination{Limit: limit, Offset: offset},
	)
	if err != nil {
		return nil, err
	}

	res := &dto.ListActivitiesResponse{
		Activities: make([]dto.ActivityResponse, 0, len(activities)),
		Total:      total,
	}
	for _, a := range activities {
		res.Activities = append(res.Activities, toActivityResponse(a))
	}
	return res, nil
}

func (s *activityService) UserStats(ctx context.Context, userId uuid.UUID) (*dto.UserStatsResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	user, err := uow.UserRepository().FindOne(ctx, specification.ByID{ID: userId})
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, ErrUserNotFound
	}

	breakdown, err := uow.ActivityRepository().CategoryBreakdown(ctx, userId)
	if err != nil {
		return nil, err
	}

	recent, err := uow.ActivityRepository().FindAll(ctx,
		specification.OwnedBy{UserID: userId},
		specification.OrderBy{Field: "activity_date", Desc: true},
		specification.Limit{N: recentActivitiesLimit},
	)
	if err != nil {
		return nil, err
	}

	res := &dto.UserStatsResponse{
		Stats: dto.UserStatsBlock{
			TotalPoints:     user.TotalPoints,
			TotalCO2Saved:   user.TotalCO2Saved,
			TotalWaterSaved: user.TotalWaterSaved,
			ActivitiesCount: user.ActivitiesCount,
			CurrentStreak:   user.CurrentStreak,
			LongestStreak:   user.LongestStreak,
			LastActivity:    user.LastActivity,
		},
		CategoryBreakdown: breakdown,
		RecentActivities:  make([]dto.ActivityResponse, 0, len(recent)),
	}
	for _, a := range recent {
		res.RecentActivities = append(res.RecentActivities, toActivityResponse(a))
	}
	return res, nil
}

func toActivityResponse(a *entity.UserActivity) dto.ActivityResponse {
	return dto.ActivityResponse{
		Id:              a.Id,
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
