package model

type WagerStatus string

const (
	StatusWaiting  WagerStatus = "waiting"
	StatusPlaying  WagerStatus = "playing"
	StatusFinished WagerStatus = "finished"
	StatusExpired  WagerStatus = "expired"
)

func ParseWagerStatus(s string) (WagerStatus, error) {
	switch s {
	case string(StatusWaiting):
		return StatusWaiting, nil
	case string(StatusPlaying):
		return StatusPlaying, nil
	case string(StatusFinished):
		return StatusFinished, nil
	case string(StatusExpired):
		return StatusExpired, nil
	default:
		return "", ErrInvalidStatus
	}
}

func (s WagerStatus) String() string {
	return string(s)
}

// Terminal reports whether a wager in this status can never change again.
func (s WagerStatus) Terminal() bool {
	return s == StatusFinished || s == StatusExpired
}

// Active reports whether a wager in this status counts against the
// one-active-wager-per-user rule.
func (s WagerStatus) Active() bool {
	return s == StatusWaiting || s == StatusPlaying
}

type Outcome string

const (
	OutcomePlayerA  Outcome = "playerA"
	OutcomePlayerB  Outcome = "playerB"
	OutcomeDraw     Outcome = "draw"
	OutcomeRefunded Outcome = "refunded"
)

func (o Outcome) String() string {
	return string(o)
}

type TransactionKind string

const (
	KindBetEscrow TransactionKind = "bet-escrow"
	KindWin       TransactionKind = "win"
	KindLoss      TransactionKind = "loss"
	KindRefund    TransactionKind = "refund"
	KindReward    TransactionKind = "reward"
	KindSpend     TransactionKind = "spend"
)

func (k TransactionKind) String() string {
	return string(k)
}

// MatchResult is the per-player outcome reported by the match provider.
type MatchResult string

const (
	MatchWin     MatchResult = "win"
	MatchLoss    MatchResult = "loss"
	MatchUnknown MatchResult = "unknown"
)
