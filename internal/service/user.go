package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"match-wager/internal/event"
	"match-wager/internal/model"
	"match-wager/internal/repository"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

type UserServiceImpl struct {
	userRepo repository.UserRepository
	bus      *event.Bus
	logger   zerolog.Logger
}

func NewUserService(userRepo repository.UserRepository, bus *event.Bus, logger zerolog.Logger) UserService {
	return &UserServiceImpl{userRepo: userRepo, bus: bus, logger: logger}
}

func (s *UserServiceImpl) CreateUser(ctx context.Context, req *model.CreateUserRequest) (*model.User, error) {
	nickname := strings.TrimSpace(req.Nickname)
	if nickname == "" {
		return nil, fmt.Errorf("%w: nickname is required", model.ErrValidation)
	}
	if _, err := s.userRepo.FindByNickname(ctx, nickname); err == nil {
		return nil, fmt.Errorf("%w: nickname already taken", model.ErrValidation)
	}

	now := time.Now().UTC()
	user := &model.User{
		ID:        uuid.NewString(),
		Nickname:  nickname,
		Balance:   0,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := s.userRepo.CreateUser(ctx, user); err != nil {
		return nil, fmt.Errorf("create user: %w", err)
	}

	s.logger.Info().Str("user_id", user.ID).Str("nickname", nickname).Msg("user created")
	s.bus.Publish(event.TypeUserCreated, user)
	return user, nil
}

func (s *UserServiceImpl) GetUser(ctx context.Context, id string) (*model.User, error) {
	return s.userRepo.GetUser(ctx, id)
}

func (s *UserServiceImpl) LinkIdentity(ctx context.Context, id string, req *model.LinkIdentityRequest) (*model.User, error) {
	puuid := strings.TrimSpace(req.PUUID)
	region := strings.ToLower(strings.TrimSpace(req.Region))
	if puuid == "" || region == "" {
		return nil, fmt.Errorf("%w: puuid and region are required", model.ErrValidation)
	}

	user, err := s.userRepo.SetIdentity(ctx, id, model.RiotIdentity{PUUID: puuid, Region: region})
	if err != nil {
		return nil, err
	}

	s.logger.Info().Str("user_id", id).Str("region", region).Msg("riot identity linked")
	return user, nil
}
