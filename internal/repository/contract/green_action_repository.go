package contract

import (
	"context"

	"leafit-be/internal/entity"
	"leafit-be/internal/repository/specification"
)

type GreenActionRepository interface {
	Create(ctx context.Context, action *entity.GreenAction) error
	FindOne(ctx context.Context, specs ...specification.Specification) (*entity.GreenAction, error)
	FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.GreenAction, error)
	Count(ctx context.Context, specs ...specification.Specification) (int64, error)
}
