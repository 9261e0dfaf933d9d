package service

import (
	"context"
	"fmt"

	"match-wager/internal/config"
	"match-wager/internal/model"

	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
)

type RewardServiceImpl struct {
	ledger LedgerService
	cfg    config.RewardConfig
	logger zerolog.Logger
}

func NewRewardService(ledger LedgerService, cfg config.RewardConfig, logger zerolog.Logger) RewardService {
	return &RewardServiceImpl{ledger: ledger, cfg: cfg, logger: logger}
}

// GrantReward credits the configured ad-reward amount after validating
// the shared reward token.
func (s *RewardServiceImpl) GrantReward(ctx context.Context, userID, token string) (*model.Transaction, error) {
	if token == "" || token != s.cfg.Token {
		return nil, model.ErrInvalidRewardToken
	}

	trans, err := s.ledger.AdjustBalance(ctx, userID, s.cfg.Amount, model.KindReward, model.Metadata{"source": "ad"})
	if err != nil {
		return nil, err
	}

	s.logger.Info().Str("user_id", userID).Int64("amount", s.cfg.Amount).Msg("reward granted")
	return trans, nil
}

func (s *RewardServiceImpl) Spend(ctx context.Context, userID string, req *model.SpendRequest) (*model.Transaction, error) {
	amount, err := decimal.NewFromString(req.Amount)
	if err != nil {
		return nil, fmt.Errorf("%w: amount must be a number", model.ErrValidation)
	}
	if amount.LessThanOrEqual(decimal.Zero) || !amount.IsInteger() {
		return nil, fmt.Errorf("%w: amount must be a positive whole number of coins", model.ErrValidation)
	}

	meta := model.Metadata{}
	if req.Reason != "" {
		meta["reason"] = req.Reason
	}
	return s.ledger.AdjustBalance(ctx, userID, -amount.IntPart(), model.KindSpend, meta)
}
