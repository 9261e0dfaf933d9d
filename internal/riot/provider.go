// Package riot supplies match data for wager resolution. The engine only
// depends on the MatchProvider contract; Client is the thin Riot API
// implementation wired in at startup.
package riot

import (
	"context"

	"match-wager/internal/model"
)

// MatchProvider exposes the external match data the wager engine needs.
// Any returned error is transient: callers retry later and never treat a
// provider failure as a wager outcome.
type MatchProvider interface {
	// RecentMatches returns the player's recent match ids, most recent
	// first, bounded length.
	RecentMatches(ctx context.Context, identity model.RiotIdentity) ([]string, error)

	// MatchDetails fetches the payload for one match.
	MatchDetails(ctx context.Context, matchID, region string) (*Match, error)

	// Outcome derives the player's win/loss from a match payload;
	// MatchUnknown when the player cannot be found in it.
	Outcome(match *Match, puuid string) model.MatchResult
}

// Match is the subset of the Riot match-v5 payload the engine consumes.
type Match struct {
	Metadata MatchMetadata `json:"metadata"`
	Info     MatchInfo     `json:"info"`
}

type MatchMetadata struct {
	MatchID string `json:"matchId"`
}

type MatchInfo struct {
	Participants []Participant `json:"participants"`
}

type Participant struct {
	PUUID string `json:"puuid"`
	Win   bool   `json:"win"`
}
