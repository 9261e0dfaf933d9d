package repository

import (
	"context"
	"time"

	"match-wager/internal/model"
)

// The interfaces are backend-agnostic: the memory implementation is the
// default process-lifetime store, the postgres implementation persists
// the same shapes. Atomicity across repositories (check-and-reserve,
// debit+append) is owned by the service layer's per-user locks.

// UserRepository defines operations for user records. Balance writes go
// exclusively through the ledger service.
type UserRepository interface {
	// CreateUser persists a new user record.
	CreateUser(ctx context.Context, user *model.User) error

	// GetUser retrieves a user by id.
	GetUser(ctx context.Context, id string) (*model.User, error)

	// FindByNickname retrieves a user by exact nickname (case-insensitive).
	FindByNickname(ctx context.Context, nickname string) (*model.User, error)

	// SetIdentity links the external riot identity used for wagering.
	SetIdentity(ctx context.Context, id string, identity model.RiotIdentity) (*model.User, error)

	// UpdateBalance overwrites the user's balance.
	UpdateBalance(ctx context.Context, id string, balance int64) error

	// SetCooldown stamps the last wager time and the cooldown expiry.
	SetCooldown(ctx context.Context, id string, lastWagerAt, until time.Time) error
}

// TransactionRepository is the append-only ledger log.
type TransactionRepository interface {
	// InsertTransaction appends one immutable ledger entry.
	InsertTransaction(ctx context.Context, trans *model.Transaction) error

	// ListByUser retrieves a user's transactions, newest first.
	ListByUser(ctx context.Context, userID string, limit, offset int) ([]*model.Transaction, error)
}

// WagerRepository holds wager records and is the single writer of wager
// status.
type WagerRepository interface {
	// CreateWager persists a new wager. Fails with ErrActiveWagerExists
	// if either participant already has a waiting or playing wager.
	CreateWager(ctx context.Context, wager *model.Wager) error

	// GetWager retrieves a wager by id.
	GetWager(ctx context.Context, id string) (*model.Wager, error)

	// UpdateWager applies mutate to the stored wager inside the store's
	// critical section and returns the updated copy. If mutate returns an
	// error nothing is written.
	UpdateWager(ctx context.Context, id string, mutate func(*model.Wager) error) (*model.Wager, error)

	// ListWagers retrieves all wagers, newest first.
	ListWagers(ctx context.Context) ([]*model.Wager, error)

	// ListByStatus retrieves all wagers in the given status, newest first.
	ListByStatus(ctx context.Context, status model.WagerStatus) ([]*model.Wager, error)

	// ActiveWagerFor returns the user's current waiting or playing wager,
	// or nil if there is none.
	ActiveWagerFor(ctx context.Context, userID string) (*model.Wager, error)
}
