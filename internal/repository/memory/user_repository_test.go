package memory

import (
	"context"
	"testing"
	"time"

	"match-wager/internal/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUserRepository_CreateAndGet(t *testing.T) {
	ctx := context.Background()
	repo := NewUserRepository()

	user := &model.User{ID: "u1", Nickname: "Alice", Balance: 100}
	require.NoError(t, repo.CreateUser(ctx, user))

	got, err := repo.GetUser(ctx, "u1")
	require.NoError(t, err)
	assert.Equal(t, "Alice", got.Nickname)
	assert.Equal(t, int64(100), got.Balance)

	// Mutating the returned copy must not touch the stored record.
	got.Balance = 999
	again, err := repo.GetUser(ctx, "u1")
	require.NoError(t, err)
	assert.Equal(t, int64(100), again.Balance)
}

func TestUserRepository_GetUser_NotFound(t *testing.T) {
	repo := NewUserRepository()

	_, err := repo.GetUser(context.Background(), "missing")
	assert.ErrorIs(t, err, model.ErrUserNotFound)
}

func TestUserRepository_FindByNickname_CaseInsensitive(t *testing.T) {
	ctx := context.Background()
	repo := NewUserRepository()
	require.NoError(t, repo.CreateUser(ctx, &model.User{ID: "u1", Nickname: "Alice"}))

	got, err := repo.FindByNickname(ctx, "alice")
	require.NoError(t, err)
	assert.Equal(t, "u1", got.ID)

	_, err = repo.FindByNickname(ctx, "bob")
	assert.ErrorIs(t, err, model.ErrUserNotFound)
}

func TestUserRepository_SetIdentity(t *testing.T) {
	ctx := context.Background()
	repo := NewUserRepository()
	require.NoError(t, repo.CreateUser(ctx, &model.User{ID: "u1", Nickname: "Alice"}))

	got, err := repo.SetIdentity(ctx, "u1", model.RiotIdentity{PUUID: "puuid-1", Region: "euw1"})
	require.NoError(t, err)
	require.NotNil(t, got.Riot)
	assert.Equal(t, "puuid-1", got.Riot.PUUID)
	assert.Equal(t, "euw1", got.Riot.Region)

	_, err = repo.SetIdentity(ctx, "missing", model.RiotIdentity{PUUID: "x", Region: "y"})
	assert.ErrorIs(t, err, model.ErrUserNotFound)
}

func TestUserRepository_UpdateBalance(t *testing.T) {
	ctx := context.Background()
	repo := NewUserRepository()
	require.NoError(t, repo.CreateUser(ctx, &model.User{ID: "u1", Balance: 50}))

	require.NoError(t, repo.UpdateBalance(ctx, "u1", 75))

	got, err := repo.GetUser(ctx, "u1")
	require.NoError(t, err)
	assert.Equal(t, int64(75), got.Balance)

	assert.ErrorIs(t, repo.UpdateBalance(ctx, "missing", 10), model.ErrUserNotFound)
}

func TestUserRepository_SetCooldown(t *testing.T) {
	ctx := context.Background()
	repo := NewUserRepository()
	require.NoError(t, repo.CreateUser(ctx, &model.User{ID: "u1"}))

	now := time.Now().UTC()
	until := now.Add(5 * time.Minute)
	require.NoError(t, repo.SetCooldown(ctx, "u1", now, until))

	got, err := repo.GetUser(ctx, "u1")
	require.NoError(t, err)
	require.NotNil(t, got.CooldownUntil)
	assert.True(t, got.InCooldown(now.Add(time.Minute)))
	assert.False(t, got.InCooldown(until.Add(time.Second)))
}
