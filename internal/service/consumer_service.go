package service

import (
	"context"
	"encoding/json"
	"time"

	"leafit-be/internal/dto"
	"leafit-be/internal/entity"
	"leafit-be/internal/pkg/logger"
	"leafit-be/internal/repository/specification"
	"leafit-be/internal/repository/unitofwork"
	"leafit-be/pkg/events"
	pktNats "leafit-be/pkg/nats"

	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
)

type IConsumerService interface {
	Consume(ctx context.Context) error
}

// consumerService grants points-threshold badges off the activity bus.
// Awards are idempotent, so redelivery is harmless.
type consumerService struct {
	pubSub         *gochannel.GoChannel
	topicName      string
	uowFactory     unitofwork.RepositoryFactory
	eventPublisher *pktNats.Publisher
	logger         logger.ILogger
}

func NewConsumerService(
	pubSub *gochannel.GoChannel,
	topicName string,
	uowFactory unitofwork.RepositoryFactory,
	eventPublisher *pktNats.Publisher,
	log logger.ILogger,
) IConsumerService {
	return &consumerService{
		pubSub:         pubSub,
		topicName:      topicName,
		uowFactory:     uowFactory,
		eventPublisher: eventPublisher,
		logger:         log,
	}
}

func (cs *consumerService) Consume(ctx context.Context) error {
	messages, err := cs.pubSub.Subscribe(ctx, cs.topicName)
	if err != nil {
		return err
	}

	go func() {
		for msg := range messages {
			cs.processMessage(ctx, msg)
		}
	}()

	return nil
}

func (cs *consumerService) processMessage(ctx context.Context, msg *message.Message) {
	var payload dto.ActivityLoggedMessage
	if err := json.Unmarshal(msg.Payload, &payload); err != nil {
		cs.logger.Error("ConsumerService", "failed to unmarshal message", map[string]interface{}{
			"error": err.Error(),
		})
		msg.Ack() // malformed, retrying will not help
		return
	}

	uow := cs.uowFactory.NewUnitOfWork(ctx)

	user, err := uow.UserRepository().FindOne(ctx, specification.ByID{ID: payload.UserId})
	if err != nil {
		cs.logger.Error("ConsumerService", "failed to load user", map[string]interface{}{
			"user_id": payload.UserId.String(),
			"error":   err.Error(),
		})
		msg.Nack()
		return
	}
	if user == nil {
		msg.Ack() // user deleted meanwhile
		return
	}

	eligible, err := uow.BadgeRepository().FindAll(ctx,
		specification.PointsWithin{Points: user.TotalPoints},
	)
	if err != nil {
		cs.logger.Error("ConsumerService", "failed to load badge catalog", map[string]interface{}{
			"error": err.Error(),
		})
		msg.Nack()
		return
	}

	for _, badge := range eligible {
		// The registration badge is granted elsewhere, not by points.
		if badge.Slug == entity.FirstStepsSlug {
			continue
		}
		awarded, err := uow.BadgeRepository().AttachToUser(ctx, user.Id, badge.Id)
		if err != nil {
			cs.logger.Warn("ConsumerService", "badge award failed", map[string]interface{}{
				"user_id": user.Id.String(),
				"badge":   badge.Slug,
				"error":   err.Error(),
			})
			continue
		}
		if awarded {
			cs.publishBadgeEarned(ctx, user.Id.String(), badge.Slug)
		}
	}

	msg.Ack()
}

// publishBadgeEarned announces a fresh award downstream. Redeliveries do
// not reach here, the conditional insert only reports new grants.
func (cs *consumerService) publishBadgeEarned(ctx context.Context, userId, slug string) {
	if cs.eventPublisher == nil {
		return
	}
	evt := events.BaseEvent{
		Type: events.TypeBadgeEarned,
		Data: map[string]interface{}{
			"user_id": userId,
			"badge":   slug,
		},
		OccurredAt: time.Now(),
	}
	if err := cs.eventPublisher.Publish(ctx, evt); err != nil {
		cs.logger.Warn("ConsumerService", "failed to publish BADGE_EARNED", map[string]interface{}{
			"user_id": userId,
			"badge":   slug,
			"error":   err.Error(),
		})
	}
}
