package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"match-wager/internal/model"
	"match-wager/internal/repository"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

// Ensure implementation satisfies interface at compile time
var _ repository.UserRepository = (*UserRepositoryImpl)(nil)

// UserRepositoryImpl is the PostgreSQL implementation of UserRepository
type UserRepositoryImpl struct {
	base
}

func NewUserRepository(pool *pgxpool.Pool) repository.UserRepository {
	return &UserRepositoryImpl{base{pool: pool}}
}

const userColumns = `id, nickname, balance, riot_puuid, riot_region, last_wager_at, cooldown_until, created_at, updated_at`

func scanUser(row pgx.Row) (*model.User, error) {
	user := &model.User{}
	var puuid, region *string
	err := row.Scan(&user.ID, &user.Nickname, &user.Balance, &puuid, &region,
		&user.LastWagerAt, &user.CooldownUntil, &user.CreatedAt, &user.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, model.ErrUserNotFound
		}
		return nil, fmt.Errorf("failed to scan user: %w", err)
	}
	if puuid != nil && region != nil {
		user.Riot = &model.RiotIdentity{PUUID: *puuid, Region: *region}
	}
	return user, nil
}

func (r *UserRepositoryImpl) CreateUser(ctx context.Context, user *model.User) error {
	query := `
        INSERT INTO users (id, nickname, balance, created_at, updated_at)
        VALUES ($1, $2, $3, $4, $5)`

	_, err := r.pool.Exec(ctx, query, user.ID, user.Nickname, user.Balance, user.CreatedAt, user.UpdatedAt)
	if err != nil {
		return fmt.Errorf("failed to insert user: %w", err)
	}
	return nil
}

func (r *UserRepositoryImpl) GetUser(ctx context.Context, id string) (*model.User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE id = $1`
	return scanUser(r.pool.QueryRow(ctx, query, id))
}

func (r *UserRepositoryImpl) FindByNickname(ctx context.Context, nickname string) (*model.User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE LOWER(nickname) = LOWER(TRIM($1))`
	return scanUser(r.pool.QueryRow(ctx, query, nickname))
}

func (r *UserRepositoryImpl) SetIdentity(ctx context.Context, id string, identity model.RiotIdentity) (*model.User, error) {
	query := `
        UPDATE users
        SET riot_puuid = $1, riot_region = $2, updated_at = NOW()
        WHERE id = $3
        RETURNING ` + userColumns

	return scanUser(r.pool.QueryRow(ctx, query, identity.PUUID, identity.Region, id))
}

func (r *UserRepositoryImpl) UpdateBalance(ctx context.Context, id string, balance int64) error {
	query := `
        UPDATE users
        SET balance = $1, updated_at = NOW()
        WHERE id = $2`

	commandTag, err := r.pool.Exec(ctx, query, balance, id)
	if err != nil {
		var pgErr *pgconn.PgError
		// CONSTRAINT balance_non_negative CHECK (balance >= 0)
		if errors.As(err, &pgErr) && pgErr.Code == pgerrcode.CheckViolation {
			return model.ErrInsufficientFunds
		}
		return fmt.Errorf("failed to update balance: %w", err)
	}

	if commandTag.RowsAffected() == 0 {
		return model.ErrUserNotFound
	}
	return nil
}

func (r *UserRepositoryImpl) SetCooldown(ctx context.Context, id string, lastWagerAt, until time.Time) error {
	query := `
        UPDATE users
        SET last_wager_at = $1, cooldown_until = $2, updated_at = NOW()
        WHERE id = $3`

	commandTag, err := r.pool.Exec(ctx, query, lastWagerAt, until, id)
	if err != nil {
		return fmt.Errorf("failed to set cooldown: %w", err)
	}
	if commandTag.RowsAffected() == 0 {
		return model.ErrUserNotFound
	}
	return nil
}
