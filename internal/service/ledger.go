package service

import (
	"context"
	"fmt"
	"time"

	"match-wager/internal/event"
	"match-wager/internal/lock"
	"match-wager/internal/model"
	"match-wager/internal/repository"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

type LedgerServiceImpl struct {
	userRepo  repository.UserRepository
	transRepo repository.TransactionRepository
	locks     *lock.KeyedMutex
	bus       *event.Bus
	logger    zerolog.Logger
}

func NewLedgerService(
	userRepo repository.UserRepository,
	transRepo repository.TransactionRepository,
	locks *lock.KeyedMutex,
	bus *event.Bus,
	logger zerolog.Logger,
) LedgerService {
	return &LedgerServiceImpl{
		userRepo:  userRepo,
		transRepo: transRepo,
		locks:     locks,
		bus:       bus,
		logger:    logger,
	}
}

func balanceKey(userID string) string {
	return "balance/" + userID
}

// AdjustBalance performs the read-modify-write under the user's balance
// lock, so two concurrent debits can never both pass the zero floor.
func (s *LedgerServiceImpl) AdjustBalance(ctx context.Context, userID string, delta int64, kind model.TransactionKind, meta model.Metadata) (*model.Transaction, error) {
	unlock := s.locks.Lock(balanceKey(userID))
	defer unlock()

	user, err := s.userRepo.GetUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("get user: %w", err)
	}

	newBalance := user.Balance + delta
	if newBalance < 0 {
		return nil, model.ErrInsufficientFunds
	}

	if err := s.userRepo.UpdateBalance(ctx, userID, newBalance); err != nil {
		return nil, fmt.Errorf("update balance: %w", err)
	}

	trans := &model.Transaction{
		ID:           uuid.NewString(),
		UserID:       userID,
		Kind:         kind,
		Amount:       delta,
		BalanceAfter: newBalance,
		Metadata:     meta,
		CreatedAt:    time.Now().UTC(),
	}
	if err := s.transRepo.InsertTransaction(ctx, trans); err != nil {
		return nil, fmt.Errorf("insert transaction: %w", err)
	}

	s.logger.Info().
		Str("user_id", userID).
		Str("kind", kind.String()).
		Int64("amount", delta).
		Int64("balance", newBalance).
		Msg("balance adjusted")

	s.bus.Publish(event.TypeBalanceChanged, &model.BalanceResponse{UserID: userID, Balance: newBalance})
	s.bus.Publish(event.TypeTransactionCreated, trans)

	return trans, nil
}

func (s *LedgerServiceImpl) GetBalance(ctx context.Context, userID string) (*model.BalanceResponse, error) {
	user, err := s.userRepo.GetUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("get user: %w", err)
	}
	return &model.BalanceResponse{UserID: userID, Balance: user.Balance}, nil
}

func (s *LedgerServiceImpl) ListTransactions(ctx context.Context, userID string, limit, offset int) ([]*model.Transaction, error) {
	if _, err := s.userRepo.GetUser(ctx, userID); err != nil {
		return nil, fmt.Errorf("get user: %w", err)
	}
	transactions, err := s.transRepo.ListByUser(ctx, userID, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list transactions: %w", err)
	}
	return transactions, nil
}
