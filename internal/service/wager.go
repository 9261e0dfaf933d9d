package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"match-wager/internal/event"
	"match-wager/internal/lock"
	"match-wager/internal/model"
	"match-wager/internal/repository"
	"match-wager/internal/riot"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
)

const (
	// playWindow is how long a PLAYING wager waits for a shared match
	// before it expires and refunds.
	playWindow = time.Hour

	// cooldownPeriod blocks both participants from new wagers after any
	// terminal transition.
	cooldownPeriod = 5 * time.Minute
)

type WagerServiceImpl struct {
	userRepo  repository.UserRepository
	wagerRepo repository.WagerRepository
	ledger    LedgerService
	provider  riot.MatchProvider
	locks     *lock.KeyedMutex
	bus       *event.Bus
	logger    zerolog.Logger
}

func NewWagerService(
	userRepo repository.UserRepository,
	wagerRepo repository.WagerRepository,
	ledger LedgerService,
	provider riot.MatchProvider,
	locks *lock.KeyedMutex,
	bus *event.Bus,
	logger zerolog.Logger,
) WagerService {
	return &WagerServiceImpl{
		userRepo:  userRepo,
		wagerRepo: wagerRepo,
		ledger:    ledger,
		provider:  provider,
		locks:     locks,
		bus:       bus,
		logger:    logger,
	}
}

// wagerKey is a separate key space from the ledger's balance locks: the
// engine never holds a balance lock itself, so calling into the ledger
// while holding wager-operation locks cannot deadlock.
func wagerKey(userID string) string {
	return "wager/" + userID
}

// parseStake validates the request stake: a finite positive whole number
// of coins.
func parseStake(raw string) (int64, error) {
	stake, err := decimal.NewFromString(raw)
	if err != nil {
		return 0, fmt.Errorf("%w: stake must be a number", model.ErrValidation)
	}
	if stake.LessThanOrEqual(decimal.Zero) {
		return 0, fmt.Errorf("%w: stake must be positive", model.ErrValidation)
	}
	if !stake.IsInteger() {
		return 0, fmt.Errorf("%w: stake must be a whole number of coins", model.ErrValidation)
	}
	return stake.IntPart(), nil
}

func assertReady(user *model.User) error {
	if user.Riot == nil || user.Riot.PUUID == "" {
		return model.ErrNotReady
	}
	return nil
}

// CreateWager holds both participants' wager-operation locks across the
// precondition checks, the escrow debit and the store insert, making
// check-and-reserve atomic.
func (s *WagerServiceImpl) CreateWager(ctx context.Context, creatorID string, req *model.CreateWagerRequest) (*model.WagerView, error) {
	if req.OpponentID == "" {
		return nil, fmt.Errorf("%w: opponent is required", model.ErrValidation)
	}
	if req.OpponentID == creatorID {
		return nil, fmt.Errorf("%w: cannot wager against yourself", model.ErrValidation)
	}

	unlock := s.locks.Lock(wagerKey(creatorID), wagerKey(req.OpponentID))
	defer unlock()

	creator, err := s.userRepo.GetUser(ctx, creatorID)
	if err != nil {
		return nil, err
	}
	opponent, err := s.userRepo.GetUser(ctx, req.OpponentID)
	if err != nil {
		return nil, err
	}

	if err := assertReady(creator); err != nil {
		return nil, err
	}
	if err := assertReady(opponent); err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	if creator.InCooldown(now) {
		return nil, model.ErrCooldownActive
	}
	if opponent.InCooldown(now) {
		return nil, model.ErrCooldownActive
	}

	if active, err := s.wagerRepo.ActiveWagerFor(ctx, creatorID); err != nil {
		return nil, fmt.Errorf("check active wager: %w", err)
	} else if active != nil {
		return nil, model.ErrActiveWagerExists
	}
	if active, err := s.wagerRepo.ActiveWagerFor(ctx, req.OpponentID); err != nil {
		return nil, fmt.Errorf("check active wager: %w", err)
	} else if active != nil {
		return nil, model.ErrActiveWagerExists
	}

	stake, err := parseStake(req.Stake)
	if err != nil {
		return nil, err
	}

	if creator.Balance < stake {
		return nil, model.ErrInsufficientFunds
	}
	if opponent.Balance < stake {
		return nil, model.ErrInsufficientFunds
	}

	wager := &model.Wager{
		ID:        uuid.NewString(),
		Status:    model.StatusWaiting,
		CreatedAt: now,
		TotalPool: stake,
		PlayerA: model.WagerSide{
			UserID:   creator.ID,
			Nickname: creator.Nickname,
			Stake:    stake,
		},
		PlayerB: model.WagerSide{
			UserID:   opponent.ID,
			Nickname: opponent.Nickname,
			Stake:    stake,
		},
	}

	// First mutating effect: every precondition has passed by now.
	if _, err := s.ledger.AdjustBalance(ctx, creatorID, -stake, model.KindBetEscrow,
		model.Metadata{"wager_id": wager.ID, "wager_action": "create"}); err != nil {
		return nil, err
	}

	if err := s.wagerRepo.CreateWager(ctx, wager); err != nil {
		// Never strand the escrow if the insert fails.
		if _, refundErr := s.ledger.AdjustBalance(ctx, creatorID, stake, model.KindRefund,
			model.Metadata{"wager_id": wager.ID, "reason": "wager creation failed"}); refundErr != nil {
			s.logger.Error().Err(refundErr).Str("wager_id", wager.ID).Msg("failed to refund escrow after create failure")
		}
		return nil, err
	}

	s.logger.Info().
		Str("wager_id", wager.ID).
		Str("creator_id", creatorID).
		Str("opponent_id", req.OpponentID).
		Int64("stake", stake).
		Msg("wager created")

	view := wager.View()
	s.bus.Publish(event.TypeWagerCreated, view)
	return view, nil
}

func (s *WagerServiceImpl) AcceptWager(ctx context.Context, wagerID, userID string) (*model.WagerView, error) {
	// Peek without locks to learn the participants, then re-check under
	// both users' wager-operation locks.
	peek, err := s.wagerRepo.GetWager(ctx, wagerID)
	if err != nil {
		return nil, err
	}
	if peek.Status != model.StatusWaiting {
		return nil, model.ErrWagerNotWaiting
	}
	if peek.PlayerB.UserID != userID {
		return nil, model.ErrWrongOpponent
	}

	accepter, err := s.userRepo.GetUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	creator, err := s.userRepo.GetUser(ctx, peek.PlayerA.UserID)
	if err != nil {
		return nil, err
	}
	if err := assertReady(accepter); err != nil {
		return nil, err
	}
	if err := assertReady(creator); err != nil {
		return nil, err
	}

	// Baselines are snapshotted before the locks are taken: provider
	// round-trips never run inside a lock hold, and a provider failure
	// aborts the acceptance with no partial effect.
	identityA := *creator.Riot
	identityB := *accepter.Riot
	baselineA, err := s.provider.RecentMatches(ctx, identityA)
	if err != nil {
		return nil, err
	}
	baselineB, err := s.provider.RecentMatches(ctx, identityB)
	if err != nil {
		return nil, err
	}

	unlock := s.locks.Lock(wagerKey(peek.PlayerA.UserID), wagerKey(peek.PlayerB.UserID))
	defer unlock()

	wager, err := s.wagerRepo.GetWager(ctx, wagerID)
	if err != nil {
		return nil, err
	}
	if wager.Status != model.StatusWaiting {
		return nil, model.ErrWagerNotWaiting
	}

	accepter, err = s.userRepo.GetUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	creator, err = s.userRepo.GetUser(ctx, wager.PlayerA.UserID)
	if err != nil {
		return nil, err
	}
	if err := assertReady(accepter); err != nil {
		return nil, err
	}
	if err := assertReady(creator); err != nil {
		return nil, err
	}
	// A re-linked identity invalidates the prefetched baselines.
	if *creator.Riot != identityA || *accepter.Riot != identityB {
		return nil, fmt.Errorf("%w: identity changed during acceptance", model.ErrNotReady)
	}

	now := time.Now().UTC()
	if accepter.InCooldown(now) {
		return nil, model.ErrCooldownActive
	}

	// The wager being accepted already references the accepter, so only a
	// different active wager blocks acceptance.
	if active, err := s.wagerRepo.ActiveWagerFor(ctx, userID); err != nil {
		return nil, fmt.Errorf("check active wager: %w", err)
	} else if active != nil && active.ID != wagerID {
		return nil, model.ErrActiveWagerExists
	}

	if accepter.Balance < wager.PlayerB.Stake {
		return nil, model.ErrInsufficientFunds
	}

	if _, err := s.ledger.AdjustBalance(ctx, userID, -wager.PlayerB.Stake, model.KindBetEscrow,
		model.Metadata{"wager_id": wager.ID, "wager_action": "accept"}); err != nil {
		return nil, err
	}

	started := now
	expires := now.Add(playWindow)
	updated, err := s.wagerRepo.UpdateWager(ctx, wagerID, func(w *model.Wager) error {
		if w.Status != model.StatusWaiting {
			return model.ErrWagerNotWaiting
		}
		w.Status = model.StatusPlaying
		w.StartedAt = &started
		w.ExpiresAt = &expires
		w.TotalPool = w.PlayerA.Stake + w.PlayerB.Stake
		w.PlayerA.Riot = identityA
		w.PlayerB.Riot = identityB
		w.PlayerA.BaselineMatches = baselineA
		w.PlayerB.BaselineMatches = baselineB
		return nil
	})
	if err != nil {
		if _, refundErr := s.ledger.AdjustBalance(ctx, userID, wager.PlayerB.Stake, model.KindRefund,
			model.Metadata{"wager_id": wager.ID, "reason": "wager acceptance failed"}); refundErr != nil {
			s.logger.Error().Err(refundErr).Str("wager_id", wager.ID).Msg("failed to refund escrow after accept failure")
		}
		return nil, err
	}

	s.logger.Info().
		Str("wager_id", wagerID).
		Str("accepter_id", userID).
		Int64("total_pool", updated.TotalPool).
		Time("expires_at", expires).
		Msg("wager accepted")

	view := updated.View()
	s.bus.Publish(event.TypeWagerAccepted, view)
	return view, nil
}

func (s *WagerServiceImpl) GetWager(ctx context.Context, wagerID string) (*model.WagerView, error) {
	wager, err := s.wagerRepo.GetWager(ctx, wagerID)
	if err != nil {
		return nil, err
	}
	return wager.View(), nil
}

func (s *WagerServiceImpl) ListWagers(ctx context.Context, statusFilter string) ([]*model.WagerView, error) {
	var wagers []*model.Wager
	var err error
	if statusFilter == "" {
		wagers, err = s.wagerRepo.ListWagers(ctx)
	} else {
		var status model.WagerStatus
		status, err = model.ParseWagerStatus(statusFilter)
		if err != nil {
			return nil, err
		}
		wagers, err = s.wagerRepo.ListByStatus(ctx, status)
	}
	if err != nil {
		return nil, fmt.Errorf("list wagers: %w", err)
	}

	views := make([]*model.WagerView, 0, len(wagers))
	for _, w := range wagers {
		views = append(views, w.View())
	}
	return views, nil
}

// EvaluateAll drives one evaluation round over every PLAYING wager. It is
// safe to run concurrently with itself: terminal transitions are
// test-and-set, so a lost race is a no-op.
func (s *WagerServiceImpl) EvaluateAll(ctx context.Context) ([]*model.WagerView, error) {
	playing, err := s.wagerRepo.ListByStatus(ctx, model.StatusPlaying)
	if err != nil {
		return nil, fmt.Errorf("list playing wagers: %w", err)
	}

	var resolved []*model.WagerView
	for _, wager := range playing {
		select {
		case <-ctx.Done():
			return resolved, ctx.Err()
		default:
		}

		view, err := s.evaluate(ctx, wager.ID)
		if err != nil {
			s.logger.Warn().Err(err).Str("wager_id", wager.ID).Msg("wager evaluation failed, will retry next round")
			s.bus.Publish(event.TypeEvaluationFailed, map[string]string{
				"wager_id": wager.ID,
				"error":    err.Error(),
			})
			continue
		}
		if view != nil {
			resolved = append(resolved, view)
		}
	}
	return resolved, nil
}

// evaluate runs one idempotent evaluation pass over a single wager. It
// returns a non-nil view only when the wager reached a terminal state in
// this pass.
func (s *WagerServiceImpl) evaluate(ctx context.Context, wagerID string) (*model.WagerView, error) {
	wager, err := s.wagerRepo.GetWager(ctx, wagerID)
	if err != nil {
		return nil, err
	}
	if wager.Status != model.StatusPlaying {
		return nil, nil
	}

	matchesA, err := s.provider.RecentMatches(ctx, wager.PlayerA.Riot)
	if err != nil {
		return nil, err
	}
	matchesB, err := s.provider.RecentMatches(ctx, wager.PlayerB.Riot)
	if err != nil {
		return nil, err
	}

	// A candidate is new relative to side A's pre-acceptance history,
	// shared with side B, and not yet processed.
	inB := make(map[string]struct{}, len(matchesB))
	for _, id := range matchesB {
		inB[id] = struct{}{}
	}
	baselineA := make(map[string]struct{}, len(wager.PlayerA.BaselineMatches))
	for _, id := range wager.PlayerA.BaselineMatches {
		baselineA[id] = struct{}{}
	}

	var matchID string
	for _, id := range matchesA {
		if _, ok := baselineA[id]; ok {
			continue
		}
		if _, ok := inB[id]; !ok {
			continue
		}
		if wager.PlayerA.HasProcessed(id) {
			continue
		}
		matchID = id
		break
	}

	now := time.Now().UTC()
	if matchID == "" {
		if wager.Expired(now) {
			return s.expire(ctx, wager, now)
		}
		return nil, nil
	}

	details, err := s.provider.MatchDetails(ctx, matchID, wager.PlayerA.Riot.Region)
	if err != nil {
		return nil, err
	}
	resultA := s.provider.Outcome(details, wager.PlayerA.Riot.PUUID)
	resultB := s.provider.Outcome(details, wager.PlayerB.Riot.PUUID)

	if resultA == model.MatchUnknown || resultB == model.MatchUnknown {
		// Mark processed so an ambiguous match is never reconsidered, but
		// leave the wager in play.
		_, err := s.wagerRepo.UpdateWager(ctx, wagerID, func(w *model.Wager) error {
			if w.Status != model.StatusPlaying {
				return model.ErrWagerNotPlaying
			}
			w.PlayerA.MarkProcessed(matchID)
			w.PlayerB.MarkProcessed(matchID)
			return nil
		})
		if err != nil && !errors.Is(err, model.ErrWagerNotPlaying) {
			return nil, err
		}
		return nil, nil
	}

	if resultA == resultB {
		return s.finish(ctx, wager, matchID, model.OutcomeDraw, now)
	}
	outcome := model.OutcomePlayerA
	if resultB == model.MatchWin {
		outcome = model.OutcomePlayerB
	}
	return s.finish(ctx, wager, matchID, outcome, now)
}

// finish performs the FINISHED transition for a win or a draw. The status
// check and the terminal write share the store's critical section, so
// only one caller ever disburses the pool. Both participants' wager locks
// are held until the cooldown stamps land: no new wager can slip in
// between the terminal write and the cooldown.
func (s *WagerServiceImpl) finish(ctx context.Context, wager *model.Wager, matchID string, outcome model.Outcome, now time.Time) (*model.WagerView, error) {
	unlock := s.locks.Lock(wagerKey(wager.PlayerA.UserID), wagerKey(wager.PlayerB.UserID))
	defer unlock()

	updated, err := s.wagerRepo.UpdateWager(ctx, wager.ID, func(w *model.Wager) error {
		if w.Status != model.StatusPlaying {
			return model.ErrWagerNotPlaying
		}
		w.PlayerA.MarkProcessed(matchID)
		w.PlayerB.MarkProcessed(matchID)
		w.Status = model.StatusFinished
		w.CompletedAt = &now
		w.MatchID = matchID
		w.Outcome = outcome
		switch outcome {
		case model.OutcomePlayerA:
			w.WinnerUserID = w.PlayerA.UserID
		case model.OutcomePlayerB:
			w.WinnerUserID = w.PlayerB.UserID
		}
		return nil
	})
	if err != nil {
		if errors.Is(err, model.ErrWagerNotPlaying) {
			// Lost the resolution race; the other caller paid out.
			return nil, nil
		}
		return nil, err
	}

	if outcome == model.OutcomeDraw {
		meta := model.Metadata{"wager_id": wager.ID, "match_id": matchID, "reason": "draw"}
		if _, err := s.ledger.AdjustBalance(ctx, updated.PlayerA.UserID, updated.PlayerA.Stake, model.KindRefund, meta); err != nil {
			return nil, fmt.Errorf("refund side A: %w", err)
		}
		if _, err := s.ledger.AdjustBalance(ctx, updated.PlayerB.UserID, updated.PlayerB.Stake, model.KindRefund, meta); err != nil {
			return nil, fmt.Errorf("refund side B: %w", err)
		}
	} else {
		winnerID := updated.WinnerUserID
		loserID := updated.PlayerA.UserID
		if loserID == winnerID {
			loserID = updated.PlayerB.UserID
		}
		meta := model.Metadata{"wager_id": wager.ID, "match_id": matchID}
		if _, err := s.ledger.AdjustBalance(ctx, winnerID, updated.TotalPool, model.KindWin, meta); err != nil {
			return nil, fmt.Errorf("credit winner: %w", err)
		}
		// Zero-amount audit entry for the loser.
		if _, err := s.ledger.AdjustBalance(ctx, loserID, 0, model.KindLoss, meta); err != nil {
			return nil, fmt.Errorf("book loss: %w", err)
		}
	}

	s.applyCooldowns(ctx, updated, now)

	s.logger.Info().
		Str("wager_id", wager.ID).
		Str("match_id", matchID).
		Str("outcome", outcome.String()).
		Str("winner_user_id", updated.WinnerUserID).
		Msg("wager resolved")

	view := updated.View()
	s.bus.Publish(event.TypeWagerResolved, view)
	return view, nil
}

// expire performs the EXPIRED transition: the play window closed with no
// qualifying match, both stakes go back. Locking mirrors finish.
func (s *WagerServiceImpl) expire(ctx context.Context, wager *model.Wager, now time.Time) (*model.WagerView, error) {
	unlock := s.locks.Lock(wagerKey(wager.PlayerA.UserID), wagerKey(wager.PlayerB.UserID))
	defer unlock()

	updated, err := s.wagerRepo.UpdateWager(ctx, wager.ID, func(w *model.Wager) error {
		if w.Status != model.StatusPlaying {
			return model.ErrWagerNotPlaying
		}
		if !w.Expired(now) {
			return model.ErrWagerNotPlaying
		}
		w.Status = model.StatusExpired
		w.CompletedAt = &now
		w.Outcome = model.OutcomeRefunded
		w.WinnerUserID = ""
		return nil
	})
	if err != nil {
		if errors.Is(err, model.ErrWagerNotPlaying) {
			return nil, nil
		}
		return nil, err
	}

	meta := model.Metadata{"wager_id": wager.ID, "reason": "no match found in window"}
	if _, err := s.ledger.AdjustBalance(ctx, updated.PlayerA.UserID, updated.PlayerA.Stake, model.KindRefund, meta); err != nil {
		return nil, fmt.Errorf("refund side A: %w", err)
	}
	if _, err := s.ledger.AdjustBalance(ctx, updated.PlayerB.UserID, updated.PlayerB.Stake, model.KindRefund, meta); err != nil {
		return nil, fmt.Errorf("refund side B: %w", err)
	}

	s.applyCooldowns(ctx, updated, now)

	s.logger.Info().
		Str("wager_id", wager.ID).
		Msg("wager expired and refunded")

	view := updated.View()
	s.bus.Publish(event.TypeWagerRefunded, view)
	return view, nil
}

// applyCooldowns stamps both participants, after payout.
func (s *WagerServiceImpl) applyCooldowns(ctx context.Context, wager *model.Wager, now time.Time) {
	until := now.Add(cooldownPeriod)
	for _, userID := range []string{wager.PlayerA.UserID, wager.PlayerB.UserID} {
		if err := s.userRepo.SetCooldown(ctx, userID, now, until); err != nil {
			s.logger.Error().Err(err).Str("user_id", userID).Msg("failed to apply cooldown")
		}
	}
}
