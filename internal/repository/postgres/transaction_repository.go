package postgres

import (
	"context"
	"fmt"

	"match-wager/internal/model"
	"match-wager/internal/repository"

	"github.com/jackc/pgx/v5/pgxpool"
)

// Ensure implementation satisfies interface at compile time
var _ repository.TransactionRepository = (*TransactionRepositoryImpl)(nil)

// TransactionRepositoryImpl is the PostgreSQL implementation of TransactionRepository
type TransactionRepositoryImpl struct {
	base
}

func NewTransactionRepository(pool *pgxpool.Pool) repository.TransactionRepository {
	return &TransactionRepositoryImpl{base{pool: pool}}
}

func (r *TransactionRepositoryImpl) InsertTransaction(ctx context.Context, trans *model.Transaction) error {
	query := `
        INSERT INTO transactions (id, user_id, kind, amount, balance_after, metadata, created_at)
        VALUES ($1, $2, $3, $4, $5, $6, $7)`

	_, err := r.pool.Exec(ctx, query, trans.ID, trans.UserID, trans.Kind, trans.Amount,
		trans.BalanceAfter, trans.Metadata, trans.CreatedAt)
	if err != nil {
		return fmt.Errorf("failed to insert transaction: %w", err)
	}
	return nil
}

func (r *TransactionRepositoryImpl) ListByUser(ctx context.Context, userID string, limit, offset int) ([]*model.Transaction, error) {
	if limit <= 0 {
		limit = 50
	}
	query := `
        SELECT id, user_id, kind, amount, balance_after, metadata, created_at
        FROM transactions WHERE user_id = $1
        ORDER BY created_at DESC
        LIMIT $2 OFFSET $3`

	rows, err := r.pool.Query(ctx, query, userID, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to query transactions: %w", err)
	}
	defer rows.Close()

	var transactions []*model.Transaction
	for rows.Next() {
		trans := &model.Transaction{}
		if err := rows.Scan(&trans.ID, &trans.UserID, &trans.Kind, &trans.Amount,
			&trans.BalanceAfter, &trans.Metadata, &trans.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan transaction: %w", err)
		}
		transactions = append(transactions, trans)
	}
	return transactions, nil
}
