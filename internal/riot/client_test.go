package riot

import (
	"testing"
	"time"

	"match-wager/internal/model"

	"github.com/stretchr/testify/assert"
)

func TestRoutingHost(t *testing.T) {
	tests := []struct {
		region string
		want   string
	}{
		{"euw1", "europe"},
		{"EUW1", "europe"},
		{"na1", "americas"},
		{"kr", "asia"},
		{"oc1", "sea"},
		{"unknown-region", "europe"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, routingHost(tt.region), "region %s", tt.region)
	}
}

func TestClient_Outcome(t *testing.T) {
	client := NewClient("", time.Second, 10)

	match := &Match{
		Info: MatchInfo{Participants: []Participant{
			{PUUID: "winner", Win: true},
			{PUUID: "loser", Win: false},
		}},
	}

	assert.Equal(t, model.MatchWin, client.Outcome(match, "winner"))
	assert.Equal(t, model.MatchLoss, client.Outcome(match, "loser"))
	assert.Equal(t, model.MatchUnknown, client.Outcome(match, "absent"))
	assert.Equal(t, model.MatchUnknown, client.Outcome(nil, "winner"))
}

func TestNewClient_DefaultsMatchCount(t *testing.T) {
	client := NewClient("key", time.Second, 0)
	assert.Equal(t, 10, client.matchCount)
}
