package service

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"time"

	"leafit-be/internal/dto"
	"leafit-be/internal/entity"
	"leafit-be/internal/pkg/logger"
	"leafit-be/internal/repository/specification"
	"leafit-be/internal/repository/unitofwork"
	"leafit-be/pkg/events"
	pktNats "leafit-be/pkg/nats"
	"leafit-be/pkg/token"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

var (
	ErrEmailTaken          = errors.New("email already registered")
	ErrInvalidCredentials  = errors.New("invalid email or password")
	ErrInvalidRefreshToken = errors.New("invalid or expired refresh token")
	ErrUserNotFound        = errors.New("user not found")
	ErrWrongPassword       = errors.New("old password is incorrect")
)

type IAuthService interface {
	Register(ctx context.Context, req *dto.RegisterRequest) (*dto.TokenPairResponse, error)
	Login(ctx context.Context, req *dto.LoginRequest) (*dto.TokenPairResponse, error)
	Logout(ctx context.Context, refreshToken string) error
	Refresh(ctx context.Context, refreshToken string) (*dto.TokenPairResponse, error)
	GetProfile(ctx context.Context, userId uuid.UUID) (*dto.UserProfileResponse, error)
	UpdateProfile(ctx context.Context, userId uuid.UUID, req *dto.UpdateProfileRequest) (*dto.UserProfileResponse, error)
	ChangePassword(ctx context.Context, userId uuid.UUID, req *dto.ChangePasswordRequest) error
}

type authService struct {
	uowFactory      unitofwork.RepositoryFactory
	issuer          *token.Issuer
	refreshTokenTTL time.Duration
	eventPublisher  *pktNats.Publisher
	logger          logger.ILogger
}

func NewAuthService(
	uowFactory unitofwork.RepositoryFactory,
	issuer *token.Issuer,
	refreshTokenTTL time.Duration,
	eventPublisher *pktNats.Publisher,
	log logger.ILogger,
) IAuthService {
	return &authService{
		uowFactory:      uowFactory,
		issuer:          issuer,
		refreshTokenTTL: refreshTokenTTL,
		eventPublisher:  eventPublisher,
		logger:          log,
	}
}

func hashRefreshToken(raw string) string {
	sum := sha256.Sum256([]byte(raw))
	return hex.EncodeToString(sum[:])
}

func (s *authService) Register(ctx context.Context, req *dto.RegisterRequest) (*dto.TokenPairResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	existing, err := uow.UserRepository().FindOne(ctx, specification.ByEmail{Email: req.Email})
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, ErrEmailTaken
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	user := &entity.User{
		Id:            uuid.New(),
		Email:         req.Email,
		Name:          req.Name,
		PasswordHash:  string(hash),
		PublicProfile: true,
		CreatedAt:     time.Now(),
		UpdatedAt:     time.Now(),
	}

	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}
	defer uow.Rollback()

	if err := uow.UserRepository().Create(ctx, user); err != nil {
		return nil, err
	}

	pair, err := s.issueTokenPair(ctx, uow, user)
	if err != nil {
		return nil, err
	}

	// Welcome badge. Missing catalog row is fine, registration never
	// fails because of it.
	if badge, berr := uow.BadgeRepository().FindOne(ctx, specification.BySlug{Slug: entity.FirstStepsSlug}); berr == nil && badge != nil {
		if _, aerr := uow.BadgeRepository().AttachToUser(ctx, user.Id, badge.Id); aerr != nil {
			s.logger.Warn("AuthService", "first steps badge not attached", map[string]interface{}{
				"user_id": user.Id.String(),
				"error":   aerr.Error(),
			})
		}
	}

	if err := uow.Commit(); err != nil {
		return nil, err
	}

	if s.eventPublisher != nil {
		evt := events.BaseEvent{
			Type: events.TypeUserRegistered,
			Data: map[string]interface{}{
				"user_id": user.Id.String(),
				"email":   user.Email,
			},
			OccurredAt: time.Now(),
		}
		if err := s.eventPublisher.Publish(ctx, evt); err != nil {
			s.logger.Warn("AuthService", "failed to publish USER_REGISTERED", map[string]interface{}{
				"error": err.Error(),
			})
		}
	}

	return pair, nil
}

func (s *authService) Login(ctx context.Context, req *dto.LoginRequest) (*dto.TokenPairResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	user, err := uow.UserRepository().FindOne(ctx, specification.ByEmail{Email: req.Email})
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)); err != nil {
		return nil, ErrInvalidCredentials
	}

	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}
	defer uow.Rollback()

	pair, err := s.issueTokenPair(ctx, uow, user)
	if err != nil {
		return nil, err
	}

	if err := uow.Commit(); err != nil {
		return nil, err
	}

	return pair, nil
}

// Logout revokes one refresh token. Unknown tokens succeed silently so the
// endpoint stays idempotent.
func (s *authService) Logout(ctx context.Context, refreshToken string) error {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	_, err := uow.UserRepository().RevokeRefreshToken(ctx, hashRefreshToken(refreshToken))
	return err
}

func (s *authService) Refresh(ctx context.Context, refreshToken string) (*dto.TokenPairResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}
	defer uow.Rollback()

	stored, err := uow.UserRepository().FindRefreshToken(ctx, specification.ByTokenHash{Hash: hashRefreshToken(refreshToken)})
	if err != nil {
		return nil, err
	}
	if stored == nil || !stored.Valid(time.Now()) {
		return nil, ErrInvalidRefreshToken
	}

	user, err := uow.UserRepository().FindOne(ctx, specification.ByID{ID: stored.UserId})
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, ErrInvalidRefreshToken
	}

	// Single-use rotation: the presented token dies in the same
	// transaction that mints its successor. The conditional revoke is
	// the arbiter when two rotations present the same token; whichever
	// flips zero rows lost the race and gets no pair.
	revoked, err := uow.UserRepository().RevokeRefreshToken(ctx, stored.TokenHash)
	if err != nil {
		return nil, err
	}
	if !revoked {
		return nil, ErrInvalidRefreshToken
	}

	pair, err := s.issueTokenPair(ctx, uow, user)
	if err != nil {
		return nil, err
	}

	if err := uow.Commit(); err != nil {
		return nil, err
	}

	return pair, nil
}

func (s *authService) GetProfile(ctx context.Context, userId uuid.UUID) (*dto.UserProfileResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	user, err := uow.UserRepository().FindOne(ctx, specification.ByID{ID: userId})
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, ErrUserNotFound
	}

	res := toProfileResponse(user)
	return &res, nil
}

func (s *authService) UpdateProfile(ctx context.Context, userId uuid.UUID, req *dto.UpdateProfileRequest) (*dto.UserProfileResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	user, err := uow.UserRepository().FindOne(ctx, specification.ByID{ID: userId})
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, ErrUserNotFound
	}

	user.Name = req.Name
	if req.PublicProfile != nil {
		user.PublicProfile = *req.PublicProfile
	}
	user.UpdatedAt = time.Now()

	if err := uow.UserRepository().Update(ctx, user); err != nil {
		return nil, err
	}

	res := toProfileResponse(user)
	return &res, nil
}

func (s *authService) ChangePassword(ctx context.Context, userId uuid.UUID, req *dto.ChangePasswordRequest) error {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	user, err := uow.UserRepository().FindOne(ctx, specification.ByID{ID: userId})
	if err != nil {
		return err
	}
	if user == nil {
		return ErrUserNotFound
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.OldPassword)); err != nil {
		return ErrWrongPassword
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.NewPassword), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	if err := uow.Begin(ctx); err != nil {
		return err
	}
	defer uow.Rollback()

	if err := uow.UserRepository().UpdatePassword(ctx, userId, string(hash)); err != nil {
		return err
	}

	// Every open session is forced to re-authenticate.
	if err := uow.UserRepository().RevokeAllRefreshTokens(ctx, userId); err != nil {
		return err
	}

	return uow.Commit()
}

func (s *authService) issueTokenPair(ctx context.Context, uow unitofwork.UnitOfWork, user *entity.User) (*dto.TokenPairResponse, error) {
	now := time.Now()

	accessToken, err := s.issuer.IssueAccess(user.Id, user.Email, now)
	if err != nil {
		return nil, err
	}

	rawRefresh := token.NewRefreshToken()
	refresh := &entity.RefreshToken{
		Id:        uuid.New(),
		UserId:    user.Id,
		TokenHash: hashRefreshToken(rawRefresh),
		ExpiresAt: now.Add(s.refreshTokenTTL),
		CreatedAt: now,
	}
	if err := uow.UserRepository().CreateRefreshToken(ctx, refresh); err != nil {
		return nil, err
	}

	return &dto.TokenPairResponse{
		Success:      true,
		AccessToken:  accessToken,
		RefreshToken: rawRefresh,
		TokenType:    "Bearer",
		ExpiresIn:    int(s.issuer.TTL().Seconds()),
		User:         toProfileResponse(user),
	}, nil
}

func toProfileResponse(user *entity.User) dto.UserProfileResponse {
	return dto.UserProfileResponse{
		Id:              user.Id,
		Email:           user.Email,
		Name:            user.Name,
		PublicProfile:   user.PublicProfile,
		TotalPoints:     user.TotalPoints,
		TotalCO2Saved:   user.TotalCO2Saved,
		TotalWaterSaved: user.TotalWaterSaved,
		ActivitiesCount: user.ActivitiesCount,
		CurrentStreak:   user.CurrentStreak,
		LongestStreak:   user.LongestStreak,
		LastActivity:    user.LastActivity,
		CreatedAt:       user.CreatedAt,
	}
}
