package unitofwork

import (
	"context"

	"leafit-be/internal/repository/contract"
)

type UnitOfWork interface {
	Begin(ctx context.Context) error
	Commit() error
	Rollback() error

	UserRepository() contract.UserRepository
	ActivityRepository() contract.ActivityRepository
	GreenActionRepository() contract.GreenActionRepository
	BadgeRepository() contract.BadgeRepository
}
