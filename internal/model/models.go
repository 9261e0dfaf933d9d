package model

import (
	"time"
)

// Metadata is free-form context attached to a transaction (wager id,
// match id, refund reason and so on).
type Metadata map[string]string

// RiotIdentity is the linked external account a user wagers with.
type RiotIdentity struct {
	PUUID  string `json:"puuid"`
	Region string `json:"region"`
}

type User struct {
	ID            string        `json:"id"`
	Nickname      string        `json:"nickname"`
	Balance       int64         `json:"balance"`
	Riot          *RiotIdentity `json:"riot,omitempty"`
	LastWagerAt   *time.Time    `json:"last_wager_at,omitempty"`
	CooldownUntil *time.Time    `json:"cooldown_until,omitempty"`
	CreatedAt     time.Time     `json:"created_at"`
	UpdatedAt     time.Time     `json:"updated_at"`
}

// InCooldown reports whether the user may not start or accept a wager yet.
func (u *User) InCooldown(now time.Time) bool {
	return u.CooldownUntil != nil && u.CooldownUntil.After(now)
}

// Transaction is one immutable entry of the append-only ledger log.
type Transaction struct {
	ID           string          `json:"id"`
	UserID       string          `json:"user_id"`
	Kind         TransactionKind `json:"kind"`
	Amount       int64           `json:"amount"`
	BalanceAfter int64           `json:"balance_after"`
	Metadata     Metadata        `json:"metadata,omitempty"`
	CreatedAt    time.Time       `json:"created_at"`
}

type CreateUserRequest struct {
	Nickname string `json:"nickname" binding:"required" example:"Alice"`
}

type LinkIdentityRequest struct {
	PUUID  string `json:"puuid" binding:"required" example:"b8f1c2..."`
	Region string `json:"region" binding:"required" example:"euw1"`
}

type CreateWagerRequest struct {
	OpponentID string `json:"opponent_id" binding:"required" example:"8d3b1f40-58cf-4f2e-b312-1df6e6c0a1af"`
	Stake      string `json:"stake" binding:"required" example:"50"`
}

type RewardRequest struct {
	Token string `json:"token" binding:"required" example:"demo-token"`
}

type SpendRequest struct {
	Amount string `json:"amount" binding:"required" example:"25"`
	Reason string `json:"reason" example:"icon purchase"`
}

type BalanceResponse struct {
	UserID  string `json:"user_id"`
	Balance int64  `json:"balance" example:"200"`
}

type TransactionListResponse struct {
	Transactions []*Transaction `json:"transactions"`
	Total        int            `json:"total"`
}

type WagerListResponse struct {
	Wagers []*WagerView `json:"wagers"`
	Total  int          `json:"total"`
}

type EvaluationResponse struct {
	Resolved []*WagerView `json:"resolved"`
	Total    int          `json:"total"`
}

type ErrorResponse struct {
	Error   string `json:"error" example:"insufficient funds"`
	Code    string `json:"code,omitempty" example:"INSUFFICIENT_FUNDS"`
	Details string `json:"details,omitempty"`
}
