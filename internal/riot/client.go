package riot

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"match-wager/internal/model"
)

// regionHosts maps platform regions to their match-v5 routing host.
var regionHosts = map[string]string{
	"br1":  "americas",
	"eun1": "europe",
	"euw1": "europe",
	"jp1":  "asia",
	"kr":   "asia",
	"la1":  "americas",
	"la2":  "americas",
	"na1":  "americas",
	"oc1":  "sea",
	"tr1":  "europe",
	"ru":   "europe",
}

var _ MatchProvider = (*Client)(nil)

type Client struct {
	apiKey     string
	http       *http.Client
	matchCount int
}

func NewClient(apiKey string, timeout time.Duration, matchCount int) *Client {
	if matchCount <= 0 {
		matchCount = 10
	}
	return &Client{
		apiKey:     apiKey,
		http:       &http.Client{Timeout: timeout},
		matchCount: matchCount,
	}
}

func routingHost(region string) string {
	if host, ok := regionHosts[strings.ToLower(region)]; ok {
		return host
	}
	return regionHosts["euw1"]
}

func (c *Client) RecentMatches(ctx context.Context, identity model.RiotIdentity) ([]string, error) {
	endpoint := fmt.Sprintf("https://%s.api.riotgames.com/lol/match/v5/matches/by-puuid/%s/ids?start=0&count=%s",
		routingHost(identity.Region), url.PathEscape(identity.PUUID), strconv.Itoa(c.matchCount))

	var ids []string
	if err := c.getJSON(ctx, endpoint, &ids); err != nil {
		return nil, err
	}
	return ids, nil
}

func (c *Client) MatchDetails(ctx context.Context, matchID, region string) (*Match, error) {
	endpoint := fmt.Sprintf("https://%s.api.riotgames.com/lol/match/v5/matches/%s",
		routingHost(region), url.PathEscape(matchID))

	match := &Match{}
	if err := c.getJSON(ctx, endpoint, match); err != nil {
		return nil, err
	}
	return match, nil
}

func (c *Client) Outcome(match *Match, puuid string) model.MatchResult {
	if match == nil {
		return model.MatchUnknown
	}
	for _, p := range match.Info.Participants {
		if p.PUUID == puuid {
			if p.Win {
				return model.MatchWin
			}
			return model.MatchLoss
		}
	}
	return model.MatchUnknown
}

func (c *Client) getJSON(ctx context.Context, endpoint string, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return fmt.Errorf("%w: build request: %v", model.ErrProviderUnavailable, err)
	}
	if c.apiKey != "" {
		req.Header.Set("X-Riot-Token", c.apiKey)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("%w: %v", model.ErrProviderUnavailable, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("%w: unexpected status %d", model.ErrProviderUnavailable, resp.StatusCode)
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("%w: decode response: %v", model.ErrProviderUnavailable, err)
	}
	return nil
}
