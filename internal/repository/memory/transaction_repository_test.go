package memory

import (
	"context"
	"testing"

	"match-wager/internal/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTransactionRepository_ListByUser_NewestFirst(t *testing.T) {
	ctx := context.Background()
	repo := NewTransactionRepository()

	for _, id := range []string{"t1", "t2", "t3"} {
		require.NoError(t, repo.InsertTransaction(ctx, &model.Transaction{ID: id, UserID: "u1"}))
	}
	require.NoError(t, repo.InsertTransaction(ctx, &model.Transaction{ID: "other", UserID: "u2"}))

	got, err := repo.ListByUser(ctx, "u1", 10, 0)
	require.NoError(t, err)
	require.Len(t, got, 3)
	assert.Equal(t, "t3", got[0].ID)
	assert.Equal(t, "t2", got[1].ID)
	assert.Equal(t, "t1", got[2].ID)
}

func TestTransactionRepository_ListByUser_LimitOffset(t *testing.T) {
	ctx := context.Background()
	repo := NewTransactionRepository()

	for _, id := range []string{"t1", "t2", "t3", "t4"} {
		require.NoError(t, repo.InsertTransaction(ctx, &model.Transaction{ID: id, UserID: "u1"}))
	}

	got, err := repo.ListByUser(ctx, "u1", 2, 1)
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, "t3", got[0].ID)
	assert.Equal(t, "t2", got[1].ID)

	// Offset beyond the log is empty, not an error.
	got, err = repo.ListByUser(ctx, "u1", 2, 10)
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestTransactionRepository_CopiesAreIsolated(t *testing.T) {
	ctx := context.Background()
	repo := NewTransactionRepository()

	trans := &model.Transaction{ID: "t1", UserID: "u1", Metadata: model.Metadata{"wager_id": "w1"}}
	require.NoError(t, repo.InsertTransaction(ctx, trans))

	// Neither the inserted value nor a listed copy can reach the stored entry.
	trans.Metadata["wager_id"] = "changed"

	got, err := repo.ListByUser(ctx, "u1", 1, 0)
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "w1", got[0].Metadata["wager_id"])

	got[0].Metadata["wager_id"] = "changed-again"
	again, err := repo.ListByUser(ctx, "u1", 1, 0)
	require.NoError(t, err)
	assert.Equal(t, "w1", again[0].Metadata["wager_id"])
}
