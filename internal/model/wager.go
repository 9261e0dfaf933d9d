package model

import "time"

// WagerSide is one participant of a wager. The identity snapshot and the
// baseline match list are captured at acceptance and immutable afterwards;
// the processed set only ever grows.
type WagerSide struct {
	UserID           string       `json:"user_id"`
	Nickname         string       `json:"nickname"`
	Stake            int64        `json:"stake"`
	Riot             RiotIdentity `json:"riot"`
	BaselineMatches  []string     `json:"baseline_matches"`
	ProcessedMatches []string     `json:"processed_matches"`
}

// HasProcessed reports whether matchID was already considered for payout.
func (s *WagerSide) HasProcessed(matchID string) bool {
	for _, id := range s.ProcessedMatches {
		if id == matchID {
			return true
		}
	}
	return false
}

// MarkProcessed appends matchID to the processed set exactly once.
func (s *WagerSide) MarkProcessed(matchID string) {
	if !s.HasProcessed(matchID) {
		s.ProcessedMatches = append(s.ProcessedMatches, matchID)
	}
}

type Wager struct {
	ID           string      `json:"id"`
	Status       WagerStatus `json:"status"`
	CreatedAt    time.Time   `json:"created_at"`
	StartedAt    *time.Time  `json:"started_at,omitempty"`
	ExpiresAt    *time.Time  `json:"expires_at,omitempty"`
	CompletedAt  *time.Time  `json:"completed_at,omitempty"`
	TotalPool    int64       `json:"total_pool"`
	MatchID      string      `json:"match_id,omitempty"`
	Outcome      Outcome     `json:"outcome,omitempty"`
	WinnerUserID string      `json:"winner_user_id,omitempty"`
	PlayerA      WagerSide   `json:"player_a"`
	PlayerB      WagerSide   `json:"player_b"`
}

// References reports whether userID participates in this wager.
func (w *Wager) References(userID string) bool {
	return w.PlayerA.UserID == userID || w.PlayerB.UserID == userID
}

// Expired reports whether the play window has closed.
func (w *Wager) Expired(now time.Time) bool {
	return w.ExpiresAt != nil && now.After(*w.ExpiresAt)
}

// Clone returns a deep copy so callers can never mutate stored state
// outside the store's critical section.
func (w *Wager) Clone() *Wager {
	c := *w
	c.StartedAt = cloneTime(w.StartedAt)
	c.ExpiresAt = cloneTime(w.ExpiresAt)
	c.CompletedAt = cloneTime(w.CompletedAt)
	c.PlayerA.BaselineMatches = append([]string(nil), w.PlayerA.BaselineMatches...)
	c.PlayerA.ProcessedMatches = append([]string(nil), w.PlayerA.ProcessedMatches...)
	c.PlayerB.BaselineMatches = append([]string(nil), w.PlayerB.BaselineMatches...)
	c.PlayerB.ProcessedMatches = append([]string(nil), w.PlayerB.ProcessedMatches...)
	return &c
}

func cloneTime(t *time.Time) *time.Time {
	if t == nil {
		return nil
	}
	c := *t
	return &c
}

// SideView is the public projection of a wager side: identity snapshots
// and match lists stay private.
type SideView struct {
	UserID   string `json:"user_id"`
	Nickname string `json:"nickname"`
	Stake    int64  `json:"stake"`
}

// WagerView is the sanitized wager representation exposed over the API
// and the event bus.
type WagerView struct {
	ID           string      `json:"id"`
	Status       WagerStatus `json:"status"`
	CreatedAt    time.Time   `json:"created_at"`
	StartedAt    *time.Time  `json:"started_at,omitempty"`
	ExpiresAt    *time.Time  `json:"expires_at,omitempty"`
	CompletedAt  *time.Time  `json:"completed_at,omitempty"`
	TotalPool    int64       `json:"total_pool"`
	MatchID      string      `json:"match_id,omitempty"`
	Outcome      Outcome     `json:"outcome,omitempty"`
	WinnerUserID string      `json:"winner_user_id,omitempty"`
	PlayerA      SideView    `json:"player_a"`
	PlayerB      SideView    `json:"player_b"`
}

func (w *Wager) View() *WagerView {
	return &WagerView{
		ID:           w.ID,
		Status:       w.Status,
		CreatedAt:    w.CreatedAt,
		StartedAt:    cloneTime(w.StartedAt),
		ExpiresAt:    cloneTime(w.ExpiresAt),
		CompletedAt:  cloneTime(w.CompletedAt),
		TotalPool:    w.TotalPool,
		MatchID:      w.MatchID,
		Outcome:      w.Outcome,
		WinnerUserID: w.WinnerUserID,
		PlayerA:      SideView{UserID: w.PlayerA.UserID, Nickname: w.PlayerA.Nickname, Stake: w.PlayerA.Stake},
		PlayerB:      SideView{UserID: w.PlayerB.UserID, Nickname: w.PlayerB.Nickname, Stake: w.PlayerB.Stake},
	}
}
