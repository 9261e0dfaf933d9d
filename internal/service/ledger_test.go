package service

import (
	"context"
	"sync"
	"testing"

	"match-wager/internal/lock"
	"match-wager/internal/model"
	"match-wager/internal/repository/memory"
	mocks "match-wager/mocks/repository"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestAdjustBalance_Credit(t *testing.T) {
	ctx := context.Background()
	logger := zerolog.Nop()

	mockUserRepo := mocks.NewUserRepository(t)
	mockTransRepo := mocks.NewTransactionRepository(t)

	mockUserRepo.On("GetUser", ctx, "u1").Return(&model.User{ID: "u1", Balance: 100}, nil)
	mockUserRepo.On("UpdateBalance", ctx, "u1", int64(150)).Return(nil)
	mockTransRepo.On("InsertTransaction", ctx, mock.MatchedBy(func(trans *model.Transaction) bool {
		return trans.UserID == "u1" &&
			trans.Amount == 50 &&
			trans.BalanceAfter == 150 &&
			trans.Kind == model.KindReward
	})).Return(nil)

	service := NewLedgerService(mockUserRepo, mockTransRepo, lock.NewKeyedMutex(), nil, logger)

	trans, err := service.AdjustBalance(ctx, "u1", 50, model.KindReward, model.Metadata{"source": "ad"})

	require.NoError(t, err)
	assert.Equal(t, int64(150), trans.BalanceAfter)
	assert.NotEmpty(t, trans.ID)
}

func TestAdjustBalance_InsufficientFunds(t *testing.T) {
	ctx := context.Background()
	logger := zerolog.Nop()

	mockUserRepo := mocks.NewUserRepository(t)
	mockTransRepo := mocks.NewTransactionRepository(t)

	mockUserRepo.On("GetUser", ctx, "u1").Return(&model.User{ID: "u1", Balance: 30}, nil)

	service := NewLedgerService(mockUserRepo, mockTransRepo, lock.NewKeyedMutex(), nil, logger)

	trans, err := service.AdjustBalance(ctx, "u1", -50, model.KindBetEscrow, nil)

	require.Error(t, err)
	assert.Nil(t, trans)
	assert.ErrorIs(t, err, model.ErrInsufficientFunds)
	mockUserRepo.AssertNotCalled(t, "UpdateBalance")
	mockTransRepo.AssertNotCalled(t, "InsertTransaction")
}

func TestAdjustBalance_ExactDebitToZero(t *testing.T) {
	ctx := context.Background()
	logger := zerolog.Nop()

	mockUserRepo := mocks.NewUserRepository(t)
	mockTransRepo := mocks.NewTransactionRepository(t)

	mockUserRepo.On("GetUser", ctx, "u1").Return(&model.User{ID: "u1", Balance: 50}, nil)
	mockUserRepo.On("UpdateBalance", ctx, "u1", int64(0)).Return(nil)
	mockTransRepo.On("InsertTransaction", ctx, mock.Anything).Return(nil)

	service := NewLedgerService(mockUserRepo, mockTransRepo, lock.NewKeyedMutex(), nil, logger)

	trans, err := service.AdjustBalance(ctx, "u1", -50, model.KindBetEscrow, nil)

	require.NoError(t, err)
	assert.Equal(t, int64(0), trans.BalanceAfter)
}

func TestAdjustBalance_UserNotFound(t *testing.T) {
	ctx := context.Background()
	logger := zerolog.Nop()

	mockUserRepo := mocks.NewUserRepository(t)
	mockTransRepo := mocks.NewTransactionRepository(t)

	mockUserRepo.On("GetUser", ctx, "missing").Return(nil, model.ErrUserNotFound)

	service := NewLedgerService(mockUserRepo, mockTransRepo, lock.NewKeyedMutex(), nil, logger)

	trans, err := service.AdjustBalance(ctx, "missing", 10, model.KindReward, nil)

	require.Error(t, err)
	assert.Nil(t, trans)
	assert.ErrorIs(t, err, model.ErrUserNotFound)
}

// Concurrent debits against a real store: the zero floor must hold no
// matter how the goroutines interleave.
func TestAdjustBalance_ConcurrentDebits_NeverNegative(t *testing.T) {
	ctx := context.Background()
	logger := zerolog.Nop()

	userRepo := memory.NewUserRepository()
	transRepo := memory.NewTransactionRepository()
	require.NoError(t, userRepo.CreateUser(ctx, &model.User{ID: "u1", Balance: 100}))

	service := NewLedgerService(userRepo, transRepo, lock.NewKeyedMutex(), nil, logger)

	var wg sync.WaitGroup
	succeeded := make(chan struct{}, 20)
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if _, err := service.AdjustBalance(ctx, "u1", -30, model.KindSpend, nil); err == nil {
				succeeded <- struct{}{}
			}
		}()
	}
	wg.Wait()
	close(succeeded)

	wins := 0
	for range succeeded {
		wins++
	}
	assert.Equal(t, 3, wins)

	user, err := userRepo.GetUser(ctx, "u1")
	require.NoError(t, err)
	assert.Equal(t, int64(10), user.Balance)

	// Exactly one ledger entry per successful debit.
	entries, err := transRepo.ListByUser(ctx, "u1", 0, 0)
	require.NoError(t, err)
	assert.Len(t, entries, 3)
}

func TestGetBalance(t *testing.T) {
	ctx := context.Background()

	mockUserRepo := mocks.NewUserRepository(t)
	mockTransRepo := mocks.NewTransactionRepository(t)
	mockUserRepo.On("GetUser", ctx, "u1").Return(&model.User{ID: "u1", Balance: 420}, nil)

	service := NewLedgerService(mockUserRepo, mockTransRepo, lock.NewKeyedMutex(), nil, zerolog.Nop())

	resp, err := service.GetBalance(ctx, "u1")
	require.NoError(t, err)
	assert.Equal(t, int64(420), resp.Balance)
	assert.Equal(t, "u1", resp.UserID)
}

func TestListTransactions_UserNotFound(t *testing.T) {
	ctx := context.Background()

	mockUserRepo := mocks.NewUserRepository(t)
	mockTransRepo := mocks.NewTransactionRepository(t)
	mockUserRepo.On("GetUser", ctx, "missing").Return(nil, model.ErrUserNotFound)

	service := NewLedgerService(mockUserRepo, mockTransRepo, lock.NewKeyedMutex(), nil, zerolog.Nop())

	_, err := service.ListTransactions(ctx, "missing", 10, 0)
	assert.ErrorIs(t, err, model.ErrUserNotFound)
}
