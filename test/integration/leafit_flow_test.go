package integration

import (
	"context"
	"log"
	"os"
	"testing"
	"time"

	"leafit-be/internal/dto"
	"leafit-be/internal/entity"
	"leafit-be/internal/pkg/logger"
	"leafit-be/internal/repository/specification"
	"leafit-be/internal/repository/unitofwork"
	"leafit-be/internal/service"
	"leafit-be/pkg/database"
	"leafit-be/pkg/token"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
	"github.com/google/uuid"
	"github.com/joho/godotenv"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Needs a migrated Postgres. Skips without DB_CONNECTION_STRING.
func TestActivityFlow(t *testing.T) {
	if err := godotenv.Load("../../.env"); err != nil {
		log.Println("No .env file found, using system env")
	}

	dsn := os.Getenv("DB_CONNECTION_STRING")
	if dsn == "" {
		t.Skip("Skipping integration test: DB_CONNECTION_STRING not set")
	}

	gormDB, err := database.NewGormDBFromDSN(dsn)
	require.NoError(t, err)

	ctx := context.Background()
	uowFactory := unitofwork.NewRepositoryFactory(gormDB)
	sysLogger := logger.NewZapLogger(os.TempDir()+"/leafit-test.log", false)
	issuer := token.NewIssuer("integration-test-secret", time.Hour)

	pubSub := gochannel.NewGoChannel(gochannel.Config{}, watermill.NewStdLogger(false, false))
	publisherService := service.NewPublisherService(pubSub, "activity.logged.test")

	authService := service.NewAuthService(uowFactory, issuer, 7*24*time.Hour, nil, sysLogger)
	activityService := service.NewActivityService(uowFactory, publisherService, nil, sysLogger)
	leaderboardService := service.NewLeaderboardService(uowFactory, nil, sysLogger)

	email := "flow-" + uuid.NewString() + "@example.com"

	// The welcome badge row must exist for registration to grant it.
	// Get-or-create like the seed command, the DB may not be seeded.
	firstSteps, err := uowFactory.NewUnitOfWork(ctx).BadgeRepository().FindOne(ctx, specification.BySlug{Slug: entity.FirstStepsSlug})
	require.NoError(t, err)
	if firstSteps == nil {
		firstSteps = &entity.Badge{
			Id:             uuid.New(),
			Name:           "First Steps",
			Slug:           entity.FirstStepsSlug,
			Description:    "Welcome to LeafIt! You've taken your first step towards a greener future.",
			Icon:           "🌱",
			PointsRequired: 0,
			Category:       "milestone",
			CreatedAt:      time.Now(),
		}
		require.NoError(t, uowFactory.NewUnitOfWork(ctx).BadgeRepository().Create(ctx, firstSteps))
	}

	// Register
	pair, err := authService.Register(ctx, &dto.RegisterRequest{
		Name:            "Flow Test User",
		Email:           email,
		Password:        "supersecret",
		ConfirmPassword: "supersecret",
	})
	require.NoError(t, err)
	require.True(t, pair.Success)
	assert.Equal(t, "Bearer", pair.TokenType)
	assert.NotEmpty(t, pair.AccessToken)
	assert.NotEmpty(t, pair.RefreshToken)
	assert.Equal(t, 0, pair.User.TotalPoints)

	userId := pair.User.Id

	// Access token round trip
	claims, err := issuer.ValidateAccess(pair.AccessToken)
	require.NoError(t, err)
	assert.Equal(t, userId, claims.UserId)

	// Registration granted the welcome badge exactly once
	earned, err := uowFactory.NewUnitOfWork(ctx).BadgeRepository().FindUserBadges(ctx, userId)
	require.NoError(t, err)
	require.Len(t, earned, 1)
	assert.Equal(t, firstSteps.Id, earned[0].BadgeId)

	// A repeat grant inserts nothing
	regranted, err := uowFactory.NewUnitOfWork(ctx).BadgeRepository().AttachToUser(ctx, userId, firstSteps.Id)
	require.NoError(t, err)
	assert.False(t, regranted)

	earned, err = uowFactory.NewUnitOfWork(ctx).BadgeRepository().FindUserBadges(ctx, userId)
	require.NoError(t, err)
	require.Len(t, earned, 1)

	// Duplicate registration rejected
	_, err = authService.Register(ctx, &dto.RegisterRequest{
		Name:            "Flow Test User",
		Email:           email,
		Password:        "supersecret",
		ConfirmPassword: "supersecret",
	})
	assert.ErrorIs(t, err, service.ErrEmailTaken)

	// Log an activity
	created, err := activityService.Create(ctx, userId, &dto.CreateActivityRequest{
		ActivityType:    "transport",
		ActivitySubtype: "cycling",
		ActivityName:    "Bike to Work",
		Quantity:        10,
		Unit:            "km",
	})
	require.NoError(t, err)
	assert.Equal(t, 200, created.Activity.PointsEarned) // 10km * 20
	assert.InDelta(t, 2.1, created.Activity.CO2Saved, 0.0001)
	assert.Equal(t, 200, created.UserStats.TotalPoints)
	assert.Equal(t, 1, created.UserStats.ActivitiesCount)
	assert.Equal(t, 1, created.UserStats.CurrentStreak)

	// Aggregates persisted
	uow := uowFactory.NewUnitOfWork(ctx)
	user, err := uow.UserRepository().FindOne(ctx, specification.ByID{ID: userId})
	require.NoError(t, err)
	require.NotNil(t, user)
	assert.Equal(t, 200, user.TotalPoints)
	assert.Equal(t, 1, user.ActivitiesCount)
	assert.NotNil(t, user.LastActivity)

	// Stats endpoint data
	stats, err := activityService.UserStats(ctx, userId)
	require.NoError(t, err)
	assert.Equal(t, 200, stats.Stats.TotalPoints)
	assert.Len(t, stats.RecentActivities, 1)

	// Breakdown rolls up under the activity's category
	require.Len(t, stats.CategoryBreakdown, 1)
	assert.Equal(t, "transport", stats.CategoryBreakdown[0].Category)
	assert.Equal(t, int64(1), stats.CategoryBreakdown[0].Count)
	assert.Equal(t, int64(200), stats.CategoryBreakdown[0].Points)
	assert.InDelta(t, 2.1, stats.CategoryBreakdown[0].CO2Saved, 0.0001)

	// Leaderboard includes the new user
	board, err := leaderboardService.Leaderboard(ctx, "total_points", 100)
	require.NoError(t, err)
	assert.Equal(t, "total_points", board.SortedBy)
	found := false
	for _, entry := range board.Entries {
		if entry.UserId == userId {
			found = true
			assert.GreaterOrEqual(t, entry.TotalPoints, 200)
		}
	}
	assert.True(t, found, "registered user should appear on the leaderboard")

	// Refresh rotation: old token dies, new one works
	rotated, err := authService.Refresh(ctx, pair.RefreshToken)
	require.NoError(t, err)
	assert.NotEqual(t, pair.RefreshToken, rotated.RefreshToken)

	_, err = authService.Refresh(ctx, pair.RefreshToken)
	assert.ErrorIs(t, err, service.ErrInvalidRefreshToken)

	// The revoke is conditional: the first flip reports a row, replays
	// match nothing
	planted := &entity.RefreshToken{
		Id:        uuid.New(),
		UserId:    userId,
		TokenHash: "rotation-" + uuid.NewString(),
		ExpiresAt: time.Now().Add(time.Hour),
		CreatedAt: time.Now(),
	}
	userRepo := uowFactory.NewUnitOfWork(ctx).UserRepository()
	require.NoError(t, userRepo.CreateRefreshToken(ctx, planted))

	flipped, err := userRepo.RevokeRefreshToken(ctx, planted.TokenHash)
	require.NoError(t, err)
	assert.True(t, flipped)

	flipped, err = userRepo.RevokeRefreshToken(ctx, planted.TokenHash)
	require.NoError(t, err)
	assert.False(t, flipped)

	// Logout is idempotent
	require.NoError(t, authService.Logout(ctx, rotated.RefreshToken))
	require.NoError(t, authService.Logout(ctx, rotated.RefreshToken))
	require.NoError(t, authService.Logout(ctx, "never-issued-token"))

	// Changing the password kills every open session
	fresh, err := authService.Login(ctx, &dto.LoginRequest{Email: email, Password: "supersecret"})
	require.NoError(t, err)

	require.NoError(t, authService.ChangePassword(ctx, userId, &dto.ChangePasswordRequest{
		OldPassword:     "supersecret",
		NewPassword:     "evenmoresecret",
		ConfirmPassword: "evenmoresecret",
	}))

	_, err = authService.Refresh(ctx, fresh.RefreshToken)
	assert.ErrorIs(t, err, service.ErrInvalidRefreshToken)

	relogin, err := authService.Login(ctx, &dto.LoginRequest{Email: email, Password: "evenmoresecret"})
	require.NoError(t, err)
	assert.NotEmpty(t, relogin.RefreshToken)
}
