package service

import (
	"context"

	"match-wager/internal/model"
)

// LedgerService is the single writer of user balances. Every balance
// change appends exactly one transaction to the log.
type LedgerService interface {
	// AdjustBalance atomically applies delta to the user's balance and
	// appends a transaction. Fails with ErrInsufficientFunds, leaving the
	// balance unchanged, if the result would be negative.
	AdjustBalance(ctx context.Context, userID string, delta int64, kind model.TransactionKind, meta model.Metadata) (*model.Transaction, error)

	// GetBalance returns the user's current balance.
	GetBalance(ctx context.Context, userID string) (*model.BalanceResponse, error)

	// ListTransactions returns the user's ledger entries, newest first.
	ListTransactions(ctx context.Context, userID string, limit, offset int) ([]*model.Transaction, error)
}

// WagerService is the wager state machine.
type WagerService interface {
	// CreateWager opens a WAITING wager and escrows the creator's stake.
	CreateWager(ctx context.Context, creatorID string, req *model.CreateWagerRequest) (*model.WagerView, error)

	// AcceptWager moves a WAITING wager to PLAYING: escrows the accepter's
	// stake and snapshots both players' recent-match baselines.
	AcceptWager(ctx context.Context, wagerID, userID string) (*model.WagerView, error)

	// GetWager returns the public view of one wager.
	GetWager(ctx context.Context, wagerID string) (*model.WagerView, error)

	// ListWagers returns public views, optionally filtered by status.
	ListWagers(ctx context.Context, statusFilter string) ([]*model.WagerView, error)

	// EvaluateAll evaluates every PLAYING wager once and returns the
	// wagers resolved or refunded this round. A failure on one wager never
	// stops the batch.
	EvaluateAll(ctx context.Context) ([]*model.WagerView, error)
}

// UserService covers user lifecycle glue: creation and identity linking.
type UserService interface {
	CreateUser(ctx context.Context, req *model.CreateUserRequest) (*model.User, error)
	GetUser(ctx context.Context, id string) (*model.User, error)
	LinkIdentity(ctx context.Context, id string, req *model.LinkIdentityRequest) (*model.User, error)
}

// RewardService grants ad-reward coins and books spends.
type RewardService interface {
	GrantReward(ctx context.Context, userID, token string) (*model.Transaction, error)
	Spend(ctx context.Context, userID string, req *model.SpendRequest) (*model.Transaction, error)
}
