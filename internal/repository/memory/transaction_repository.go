package memory

import (
	"context"
	"sync"

	"match-wager/internal/model"
	"match-wager/internal/repository"
)

var _ repository.TransactionRepository = (*TransactionRepository)(nil)

// TransactionRepository is an append-only log; entries are never mutated
// or removed.
type TransactionRepository struct {
	mu           sync.RWMutex
	transactions []*model.Transaction
}

func NewTransactionRepository() *TransactionRepository {
	return &TransactionRepository{}
}

func (r *TransactionRepository) InsertTransaction(_ context.Context, trans *model.Transaction) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.transactions = append(r.transactions, cloneTransaction(trans))
	return nil
}

// ListByUser returns the user's transactions newest first. A limit of
// zero or less means no limit.
func (r *TransactionRepository) ListByUser(_ context.Context, userID string, limit, offset int) ([]*model.Transaction, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var matched []*model.Transaction
	for i := len(r.transactions) - 1; i >= 0; i-- {
		if r.transactions[i].UserID == userID {
			matched = append(matched, cloneTransaction(r.transactions[i]))
		}
	}

	if offset >= len(matched) {
		return nil, nil
	}
	matched = matched[offset:]
	if limit > 0 && limit < len(matched) {
		matched = matched[:limit]
	}
	return matched, nil
}

func cloneTransaction(t *model.Transaction) *model.Transaction {
	c := *t
	if t.Metadata != nil {
		c.Metadata = make(model.Metadata, len(t.Metadata))
		for k, v := range t.Metadata {
			c.Metadata[k] = v
		}
	}
	return &c
}
