package service

import (
	"context"
	"testing"

	"match-wager/internal/model"
	mocks "match-wager/mocks/repository"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestCreateUser_TrimsNickname(t *testing.T) {
	ctx := context.Background()

	mockUserRepo := mocks.NewUserRepository(t)
	mockUserRepo.On("FindByNickname", ctx, "Alice").Return(nil, model.ErrUserNotFound)
	mockUserRepo.On("CreateUser", ctx, mock.MatchedBy(func(user *model.User) bool {
		return user.Nickname == "Alice" && user.Balance == 0 && user.ID != ""
	})).Return(nil)

	service := NewUserService(mockUserRepo, nil, zerolog.Nop())

	user, err := service.CreateUser(ctx, &model.CreateUserRequest{Nickname: "  Alice  "})

	require.NoError(t, err)
	assert.Equal(t, "Alice", user.Nickname)
	assert.Equal(t, int64(0), user.Balance)
}

func TestCreateUser_BlankNickname(t *testing.T) {
	ctx := context.Background()

	mockUserRepo := mocks.NewUserRepository(t)
	service := NewUserService(mockUserRepo, nil, zerolog.Nop())

	user, err := service.CreateUser(ctx, &model.CreateUserRequest{Nickname: "   "})

	require.Error(t, err)
	assert.Nil(t, user)
	assert.ErrorIs(t, err, model.ErrValidation)
}

func TestCreateUser_DuplicateNickname(t *testing.T) {
	ctx := context.Background()

	mockUserRepo := mocks.NewUserRepository(t)
	mockUserRepo.On("FindByNickname", ctx, "Alice").Return(&model.User{ID: "u1", Nickname: "Alice"}, nil)

	service := NewUserService(mockUserRepo, nil, zerolog.Nop())

	user, err := service.CreateUser(ctx, &model.CreateUserRequest{Nickname: "Alice"})

	require.Error(t, err)
	assert.Nil(t, user)
	assert.ErrorIs(t, err, model.ErrValidation)
	mockUserRepo.AssertNotCalled(t, "CreateUser")
}

func TestLinkIdentity_NormalizesRegion(t *testing.T) {
	ctx := context.Background()

	mockUserRepo := mocks.NewUserRepository(t)
	mockUserRepo.On("SetIdentity", ctx, "u1", model.RiotIdentity{PUUID: "puuid-1", Region: "euw1"}).
		Return(&model.User{ID: "u1", Riot: &model.RiotIdentity{PUUID: "puuid-1", Region: "euw1"}}, nil)

	service := NewUserService(mockUserRepo, nil, zerolog.Nop())

	user, err := service.LinkIdentity(ctx, "u1", &model.LinkIdentityRequest{PUUID: " puuid-1 ", Region: " EUW1 "})

	require.NoError(t, err)
	require.NotNil(t, user.Riot)
	assert.Equal(t, "euw1", user.Riot.Region)
}

func TestLinkIdentity_Validation(t *testing.T) {
	ctx := context.Background()

	mockUserRepo := mocks.NewUserRepository(t)
	service := NewUserService(mockUserRepo, nil, zerolog.Nop())

	_, err := service.LinkIdentity(ctx, "u1", &model.LinkIdentityRequest{PUUID: "", Region: "euw1"})
	assert.ErrorIs(t, err, model.ErrValidation)

	_, err = service.LinkIdentity(ctx, "u1", &model.LinkIdentityRequest{PUUID: "puuid-1", Region: "  "})
	assert.ErrorIs(t, err, model.ErrValidation)
}

func TestLinkIdentity_UserNotFound(t *testing.T) {
	ctx := context.Background()

	mockUserRepo := mocks.NewUserRepository(t)
	mockUserRepo.On("SetIdentity", ctx, "missing", mock.Anything).Return(nil, model.ErrUserNotFound)

	service := NewUserService(mockUserRepo, nil, zerolog.Nop())

	_, err := service.LinkIdentity(ctx, "missing", &model.LinkIdentityRequest{PUUID: "puuid-1", Region: "euw1"})
	assert.ErrorIs(t, err, model.ErrUserNotFound)
}
