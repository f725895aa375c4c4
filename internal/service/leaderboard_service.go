package service

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"leafit-be/internal/dto"
	"leafit-be/internal/pkg/logger"
	"leafit-be/internal/repository/specification"
	"leafit-be/internal/repository/unitofwork"

	"github.com/redis/go-redis/v9"
)

const (
	leaderboardCacheTTL  = 30 * time.Second
	defaultLeaderboardN  = 50
	maxLeaderboardN      = 100
	leaderboardSortField = "total_points"
)

// allowedSortKeys maps query values to the columns the leaderboard may
// order by. Anything else falls back to total_points.
var allowedSortKeys = map[string]bool{
	"total_points":     true,
	"total_co2_saved":  true,
	"activities_count": true,
	"current_streak":   true,
}

type ILeaderboardService interface {
	Leaderboard(ctx context.Context, sortKey string, limit int) (*dto.LeaderboardResponse, error)
	GlobalStats(ctx context.Context) (*dto.GlobalStatsResponse, error)
}

type leaderboardService struct {
	uowFactory unitofwork.RepositoryFactory
	redis      *redis.Client
	logger     logger.ILogger
}

func NewLeaderboardService(uowFactory unitofwork.RepositoryFactory, rdb *redis.Client, log logger.ILogger) ILeaderboardService {
	return &leaderboardService{
		uowFactory: uowFactory,
		redis:      rdb,
		logger:     log,
	}
}

// NormalizeSortKey clamps a requested sort key to the allow-list.
func NormalizeSortKey(key string) string {
	if allowedSortKeys[key] {
		return key
	}
	return leaderboardSortField
}

// NormalizeLimit clamps a requested page size to [1, 100].
func NormalizeLimit(limit int) int {
	if limit <= 0 {
		return defaultLeaderboardN
	}
	if limit > maxLeaderboardN {
		return maxLeaderboardN
	}
	return limit
}

func (s *leaderboardService) Leaderboard(ctx context.Context, sortKey string, limit int) (*dto.LeaderboardResponse, error) {
	sortKey = NormalizeSortKey(sortKey)
	limit = NormalizeLimit(limit)

	cacheKey := fmt.Sprintf("leaderboard:%s:%d", sortKey, limit)
	if cached := s.fromCache(ctx, cacheKey); cached != nil {
		var res dto.LeaderboardResponse
		if err := json.Unmarshal(cached, &res); err == nil {
			return &res, nil
		}
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)
	users, err := uow.UserRepository().FindAll(ctx,
		specification.PublicProfiles{},
		specification.OrderBy{Field: sortKey, Desc: true},
		specification.OrderBy{Field: "id", Desc: false},
		specification.Limit{N: limit},
	)
	if err != nil {
		return nil, err
	}

	res := &dto.LeaderboardResponse{
		SortedBy: sortKey,
		Entries:  make([]dto.LeaderboardEntry, 0, len(users)),
	}
	for i, u := range users {
		res.Entries = append(res.Entries, dto.LeaderboardEntry{
			Rank:            i + 1,
			UserId:          u.Id,
			Name:            u.Name,
			TotalPoints:     u.TotalPoints,
			TotalCO2Saved:   u.TotalCO2Saved,
			ActivitiesCount: u.ActivitiesCount,
			CurrentStreak:   u.CurrentStreak,
		})
	}

	s.toCache(ctx, cacheKey, res)
	return res, nil
}

func (s *leaderboardService) GlobalStats(ctx context.Context) (*dto.GlobalStatsResponse, error) {
	cacheKey := "stats:global"
	if cached := s.fromCache(ctx, cacheKey); cached != nil {
		var res dto.GlobalStatsResponse
		if err := json.Unmarshal(cached, &res); err == nil {
			return &res, nil
		}
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)

	userCount, err := uow.UserRepository().Count(ctx)
	if err != nil {
		return nil, err
	}

	totals, err := uow.ActivityRepository().Totals(ctx)
	if err != nil {
		return nil, err
	}

	res := &dto.GlobalStatsResponse{
		TotalUsers:      userCount,
		TotalActivities: totals.Activities,
		TotalPoints:     totals.TotalPoints,
		TotalCO2Saved:   totals.TotalCO2,
		TotalWaterSaved: totals.TotalWater,
	}

	s.toCache(ctx, cacheKey, res)
	return res, nil
}

// fromCache returns nil on any cache failure; the DB is authoritative.
func (s *leaderboardService) fromCache(ctx context.Context, key string) []byte {
	if s.redis == nil {
		return nil
	}
	data, err := s.redis.Get(ctx, key).Bytes()
	if err != nil {
		return nil
	}
	return data
}

func (s *leaderboardService) toCache(ctx context.Context, key string, value interface{}) {
	if s.redis == nil {
		return
	}
	data, err := json.Marshal(value)
	if err != nil {
		return
	}
	if err := s.redis.Set(ctx, key, data, leaderboardCacheTTL).Err(); err != nil {
		s.logger.Warn("LeaderboardService", "cache write failed", map[string]interface{}{
			"key":   key,
			"error": err.Error(),
		})
	}
}
