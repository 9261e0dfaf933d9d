package memory

import (
	"context"
	"errors"
	"testing"

	"match-wager/internal/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newWager(id, userA, userB string, status model.WagerStatus) *model.Wager {
	return &model.Wager{
		ID:      id,
		Status:  status,
		PlayerA: model.WagerSide{UserID: userA, Stake: 50},
		PlayerB: model.WagerSide{UserID: userB, Stake: 50},
	}
}

func TestWagerRepository_CreateAndGet(t *testing.T) {
	ctx := context.Background()
	repo := NewWagerRepository()

	require.NoError(t, repo.CreateWager(ctx, newWager("w1", "u1", "u2", model.StatusWaiting)))

	got, err := repo.GetWager(ctx, "w1")
	require.NoError(t, err)
	assert.Equal(t, model.StatusWaiting, got.Status)

	_, err = repo.GetWager(ctx, "missing")
	assert.ErrorIs(t, err, model.ErrWagerNotFound)
}

func TestWagerRepository_CreateWager_RejectsSecondActive(t *testing.T) {
	ctx := context.Background()
	repo := NewWagerRepository()

	require.NoError(t, repo.CreateWager(ctx, newWager("w1", "u1", "u2", model.StatusWaiting)))

	// Either participant being busy blocks a new wager.
	err := repo.CreateWager(ctx, newWager("w2", "u2", "u3", model.StatusWaiting))
	assert.ErrorIs(t, err, model.ErrActiveWagerExists)

	// A terminal wager does not count.
	_, err = repo.UpdateWager(ctx, "w1", func(w *model.Wager) error {
		w.Status = model.StatusFinished
		return nil
	})
	require.NoError(t, err)
	assert.NoError(t, repo.CreateWager(ctx, newWager("w2", "u2", "u3", model.StatusWaiting)))
}

func TestWagerRepository_UpdateWager_FailedMutatorLeavesRecord(t *testing.T) {
	ctx := context.Background()
	repo := NewWagerRepository()
	require.NoError(t, repo.CreateWager(ctx, newWager("w1", "u1", "u2", model.StatusPlaying)))

	boom := errors.New("boom")
	_, err := repo.UpdateWager(ctx, "w1", func(w *model.Wager) error {
		w.Status = model.StatusFinished
		return boom
	})
	assert.ErrorIs(t, err, boom)

	got, err := repo.GetWager(ctx, "w1")
	require.NoError(t, err)
	assert.Equal(t, model.StatusPlaying, got.Status)
}

func TestWagerRepository_UpdateWager_AppliesMutation(t *testing.T) {
	ctx := context.Background()
	repo := NewWagerRepository()
	require.NoError(t, repo.CreateWager(ctx, newWager("w1", "u1", "u2", model.StatusPlaying)))

	updated, err := repo.UpdateWager(ctx, "w1", func(w *model.Wager) error {
		w.Status = model.StatusFinished
		w.WinnerUserID = "u1"
		w.PlayerA.MarkProcessed("m1")
		return nil
	})
	require.NoError(t, err)
	assert.Equal(t, model.StatusFinished, updated.Status)
	assert.Equal(t, "u1", updated.WinnerUserID)

	got, err := repo.GetWager(ctx, "w1")
	require.NoError(t, err)
	assert.True(t, got.PlayerA.HasProcessed("m1"))
}

func TestWagerRepository_ListWagers_NewestFirst(t *testing.T) {
	ctx := context.Background()
	repo := NewWagerRepository()

	require.NoError(t, repo.CreateWager(ctx, newWager("w1", "u1", "u2", model.StatusFinished)))
	require.NoError(t, repo.CreateWager(ctx, newWager("w2", "u3", "u4", model.StatusWaiting)))

	all, err := repo.ListWagers(ctx)
	require.NoError(t, err)
	require.Len(t, all, 2)
	assert.Equal(t, "w2", all[0].ID)
	assert.Equal(t, "w1", all[1].ID)

	waiting, err := repo.ListByStatus(ctx, model.StatusWaiting)
	require.NoError(t, err)
	require.Len(t, waiting, 1)
	assert.Equal(t, "w2", waiting[0].ID)
}

func TestWagerRepository_ActiveWagerFor(t *testing.T) {
	ctx := context.Background()
	repo := NewWagerRepository()

	require.NoError(t, repo.CreateWager(ctx, newWager("w1", "u1", "u2", model.StatusPlaying)))

	active, err := repo.ActiveWagerFor(ctx, "u2")
	require.NoError(t, err)
	require.NotNil(t, active)
	assert.Equal(t, "w1", active.ID)

	none, err := repo.ActiveWagerFor(ctx, "u3")
	require.NoError(t, err)
	assert.Nil(t, none)
}
