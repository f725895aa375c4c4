package contract

import (
	"context"

	"leafit-be/internal/entity"
	"leafit-be/internal/repository/specification"

	"github.com/google/uuid"
)

type BadgeRepository interface {
	Create(ctx context.Context, badge *entity.Badge) error
	FindOne(ctx context.Context, specs ...specification.Specification) (*entity.Badge, error)
	FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Badge, error)

	// AttachToUser grants a badge and reports whether a new grant was
	// inserted. No-op false when the (user, badge) pair already exists.
	AttachToUser(ctx context.Context, userId, badgeId uuid.UUID) (bool, error)
	FindUserBadges(ctx context.Context, userId uuid.UUID) ([]*entity.UserBadge, error)
}
