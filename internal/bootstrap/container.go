package bootstrap

import (
	"context"
	"log"
	"time"

	"leafit-be/internal/config"
	"leafit-be/internal/controller"
	"leafit-be/internal/pkg/logger"
	"leafit-be/internal/repository/unitofwork"
	"leafit-be/internal/service"
	"leafit-be/pkg/assistant"
	"leafit-be/pkg/assistant/gemini"
	"leafit-be/pkg/assistant/openai"
	pktNats "leafit-be/pkg/nats"
	"leafit-be/pkg/token"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

const activityTopic = "activity.logged"

type Container struct {
	// Controllers
	AuthController        controller.IAuthController
	ActivityController    controller.IActivityController
	LeaderboardController controller.ILeaderboardController
	BadgeController       controller.IBadgeController
	ActionController      controller.IActionController
	ChatController        controller.IChatController

	// Background Services (Exposed for main.go to run)
	ConsumerService service.IConsumerService

	Logger logger.ILogger
}

func NewContainer(db *gorm.DB, cfg *config.Config) *Container {
	// 1. Core Facades
	uowFactory := unitofwork.NewRepositoryFactory(db)
	sysLogger := logger.NewZapLogger(cfg.App.LogFilePath, cfg.App.Environment == "production")

	issuer := token.NewIssuer(
		cfg.Auth.JWTSecret,
		time.Duration(cfg.Auth.AccessTokenMinutes)*time.Minute,
	)
	refreshTTL := time.Duration(cfg.Auth.RefreshTokenDays) * 24 * time.Hour

	// 2. Event Bus
	watermillLogger := watermill.NewStdLogger(false, false)
	pubSub := gochannel.NewGoChannel(
		gochannel.Config{},
		watermillLogger,
	)

	// NATS is best effort, a dead broker must not block startup.
	natsPub, err := pktNats.NewPublisher(cfg.App.NatsURL)
	if err != nil {
		log.Printf("[WARN] Failed to connect to NATS Publisher: %v", err)
	}

	// Redis
	opt, err := redis.ParseURL(cfg.App.RedisURL)
	if err != nil {
		log.Printf("[WARN] Failed to parse Redis URL: %v. Using direct Addr", err)
		opt = &redis.Options{
			Addr: cfg.App.RedisURL,
		}
	}
	rdb := redis.NewClient(opt)
	if _, err := rdb.Ping(context.Background()).Result(); err != nil {
		log.Printf("[WARN] Failed to connect to Redis: %v", err)
	}

	// 3. Assistant provider chain, priority order
	var providers []assistant.Provider
	if cfg.Keys.OpenAI != "" {
		providers = append(providers, openai.NewOpenAIProvider(cfg.Keys.OpenAI, "", cfg.Keys.OpenAIModel))
	}
	if cfg.Keys.GoogleGemini != "" {
		providers = append(providers, gemini.NewGeminiProvider(cfg.Keys.GoogleGemini, cfg.Keys.GeminiModel))
	}
	chain := assistant.NewChain(sysLogger, providers...)

	// 4. Services
	publisherService := service.NewPublisherService(pubSub, activityTopic)
	consumerService := service.NewConsumerService(pubSub, activityTopic, uowFactory, natsPub, sysLogger)

	authService := service.NewAuthService(uowFactory, issuer, refreshTTL, natsPub, sysLogger)
	activityService := service.NewActivityService(uowFactory, publisherService, natsPub, sysLogger)
	leaderboardService := service.NewLeaderboardService(uowFactory, rdb, sysLogger)
	badgeService := service.NewBadgeService(uowFactory)
	actionService := service.NewActionService(uowFactory)
	chatService := service.NewChatService(chain)

	// 5. Controllers
	return &Container{
		AuthController:        controller.NewAuthController(authService, issuer),
		ActivityController:    controller.NewActivityController(activityService, issuer),
		LeaderboardController: controller.NewLeaderboardController(leaderboardService),
		BadgeController:       controller.NewBadgeController(badgeService, issuer),
		ActionController:      controller.NewActionController(actionService),
		ChatController:        controller.NewChatController(chatService, issuer),
		ConsumerService:       consumerService,
		Logger:                sysLogger,
	}
}
