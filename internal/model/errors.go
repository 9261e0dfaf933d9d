package model

import "errors"

var (
	ErrValidation          = errors.New("invalid request")
	ErrInvalidStatus       = errors.New("invalid wager status")
	ErrUserNotFound        = errors.New("user not found")
	ErrWagerNotFound       = errors.New("wager not found")
	ErrNotReady            = errors.New("user has no linked riot account")
	ErrCooldownActive      = errors.New("user is still in cooldown")
	ErrActiveWagerExists   = errors.New("user already has an active wager")
	ErrInsufficientFunds   = errors.New("insufficient funds")
	ErrWrongOpponent       = errors.New("only the targeted opponent can accept this wager")
	ErrWagerNotWaiting     = errors.New("wager is no longer open for acceptance")
	ErrWagerNotPlaying     = errors.New("wager is not in play")
	ErrProviderUnavailable = errors.New("match provider unavailable")
	ErrInvalidRewardToken  = errors.New("invalid reward token")
)
