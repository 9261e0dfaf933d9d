package postgres

import (
	"context"
	"errors"
	"fmt"

	"match-wager/internal/model"
	"match-wager/internal/repository"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// Ensure implementation satisfies interface at compile time
var _ repository.WagerRepository = (*WagerRepositoryImpl)(nil)

// WagerRepositoryImpl is the PostgreSQL implementation of WagerRepository
type WagerRepositoryImpl struct {
	base
}

func NewWagerRepository(pool *pgxpool.Pool) repository.WagerRepository {
	return &WagerRepositoryImpl{base{pool: pool}}
}

const wagerColumns = `id, status, created_at, started_at, expires_at, completed_at,
        total_pool, match_id, outcome, winner_user_id,
        player_a_user_id, player_a_nickname, player_a_stake, player_a_puuid, player_a_region,
        player_a_baseline, player_a_processed,
        player_b_user_id, player_b_nickname, player_b_stake, player_b_puuid, player_b_region,
        player_b_baseline, player_b_processed`

func scanWager(row pgx.Row) (*model.Wager, error) {
	wager := &model.Wager{}
	var matchID, outcome, winner *string
	err := row.Scan(&wager.ID, &wager.Status, &wager.CreatedAt, &wager.StartedAt,
		&wager.ExpiresAt, &wager.CompletedAt, &wager.TotalPool, &matchID, &outcome, &winner,
		&wager.PlayerA.UserID, &wager.PlayerA.Nickname, &wager.PlayerA.Stake,
		&wager.PlayerA.Riot.PUUID, &wager.PlayerA.Riot.Region,
		&wager.PlayerA.BaselineMatches, &wager.PlayerA.ProcessedMatches,
		&wager.PlayerB.UserID, &wager.PlayerB.Nickname, &wager.PlayerB.Stake,
		&wager.PlayerB.Riot.PUUID, &wager.PlayerB.Riot.Region,
		&wager.PlayerB.BaselineMatches, &wager.PlayerB.ProcessedMatches)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, model.ErrWagerNotFound
		}
		return nil, fmt.Errorf("failed to scan wager: %w", err)
	}
	if matchID != nil {
		wager.MatchID = *matchID
	}
	if outcome != nil {
		wager.Outcome = model.Outcome(*outcome)
	}
	if winner != nil {
		wager.WinnerUserID = *winner
	}
	return wager, nil
}

func nullable(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

func (r *WagerRepositoryImpl) CreateWager(ctx context.Context, wager *model.Wager) error {
	return r.withTransaction(ctx, func(tx pgx.Tx) error {
		var exists bool
		err := tx.QueryRow(ctx, `
            SELECT EXISTS (
                SELECT 1 FROM wagers
                WHERE status IN ('waiting', 'playing')
                  AND (player_a_user_id = ANY($1) OR player_b_user_id = ANY($1))
            )`, []string{wager.PlayerA.UserID, wager.PlayerB.UserID}).Scan(&exists)
		if err != nil {
			return fmt.Errorf("failed to check active wagers: %w", err)
		}
		if exists {
			return model.ErrActiveWagerExists
		}

		_, err = tx.Exec(ctx, `
            INSERT INTO wagers (`+wagerColumns+`)
            VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10,
                    $11, $12, $13, $14, $15, $16, $17,
                    $18, $19, $20, $21, $22, $23, $24)`,
			wager.ID, wager.Status, wager.CreatedAt, wager.StartedAt, wager.ExpiresAt,
			wager.CompletedAt, wager.TotalPool, nullable(wager.MatchID),
			nullable(string(wager.Outcome)), nullable(wager.WinnerUserID),
			wager.PlayerA.UserID, wager.PlayerA.Nickname, wager.PlayerA.Stake,
			wager.PlayerA.Riot.PUUID, wager.PlayerA.Riot.Region,
			wager.PlayerA.BaselineMatches, wager.PlayerA.ProcessedMatches,
			wager.PlayerB.UserID, wager.PlayerB.Nickname, wager.PlayerB.Stake,
			wager.PlayerB.Riot.PUUID, wager.PlayerB.Riot.Region,
			wager.PlayerB.BaselineMatches, wager.PlayerB.ProcessedMatches)
		if err != nil {
			return fmt.Errorf("failed to insert wager: %w", err)
		}
		return nil
	})
}

func (r *WagerRepositoryImpl) GetWager(ctx context.Context, id string) (*model.Wager, error) {
	query := `SELECT ` + wagerColumns + ` FROM wagers WHERE id = $1`
	return scanWager(r.pool.QueryRow(ctx, query, id))
}

// UpdateWager applies mutate to the row under a FOR UPDATE lock so
// concurrent updates serialize and test-and-set transitions stay safe.
func (r *WagerRepositoryImpl) UpdateWager(ctx context.Context, id string, mutate func(*model.Wager) error) (*model.Wager, error) {
	var updated *model.Wager
	err := r.withTransaction(ctx, func(tx pgx.Tx) error {
		wager, err := scanWager(tx.QueryRow(ctx, `SELECT `+wagerColumns+` FROM wagers WHERE id = $1 FOR UPDATE`, id))
		if err != nil {
			return err
		}

		if err := mutate(wager); err != nil {
			return err
		}

		_, err = tx.Exec(ctx, `
            UPDATE wagers
            SET status = $2, started_at = $3, expires_at = $4, completed_at = $5,
                total_pool = $6, match_id = $7, outcome = $8, winner_user_id = $9,
                player_a_baseline = $10, player_a_processed = $11,
                player_b_baseline = $12, player_b_processed = $13
            WHERE id = $1`,
			wager.ID, wager.Status, wager.StartedAt, wager.ExpiresAt, wager.CompletedAt,
			wager.TotalPool, nullable(wager.MatchID), nullable(string(wager.Outcome)),
			nullable(wager.WinnerUserID),
			wager.PlayerA.BaselineMatches, wager.PlayerA.ProcessedMatches,
			wager.PlayerB.BaselineMatches, wager.PlayerB.ProcessedMatches)
		if err != nil {
			return fmt.Errorf("failed to update wager: %w", err)
		}
		updated = wager
		return nil
	})
	if err != nil {
		return nil, err
	}
	return updated, nil
}

func (r *WagerRepositoryImpl) ListWagers(ctx context.Context) ([]*model.Wager, error) {
	query := `SELECT ` + wagerColumns + ` FROM wagers ORDER BY created_at DESC`
	return r.queryWagers(ctx, query)
}

func (r *WagerRepositoryImpl) ListByStatus(ctx context.Context, status model.WagerStatus) ([]*model.Wager, error) {
	query := `SELECT ` + wagerColumns + ` FROM wagers WHERE status = $1 ORDER BY created_at DESC`
	return r.queryWagers(ctx, query, status)
}

func (r *WagerRepositoryImpl) ActiveWagerFor(ctx context.Context, userID string) (*model.Wager, error) {
	query := `
        SELECT ` + wagerColumns + ` FROM wagers
        WHERE status IN ('waiting', 'playing')
          AND (player_a_user_id = $1 OR player_b_user_id = $1)
        ORDER BY created_at ASC
        LIMIT 1`

	wager, err := scanWager(r.pool.QueryRow(ctx, query, userID))
	if errors.Is(err, model.ErrWagerNotFound) {
		return nil, nil
	}
	return wager, err
}

func (r *WagerRepositoryImpl) queryWagers(ctx context.Context, query string, args ...any) ([]*model.Wager, error) {
	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query wagers: %w", err)
	}
	defer rows.Close()

	var wagers []*model.Wager
	for rows.Next() {
		wager, err := scanWager(rows)
		if err != nil {
			return nil, err
		}
		wagers = append(wagers, wager)
	}
	return wagers, nil
}
