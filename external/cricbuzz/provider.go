package cricbuzz

import (
	"context"

	"github.com/riskibarqy/cricket-stats/internal/domain/player"
	"github.com/riskibarqy/cricket-stats/internal/domain/scorecard"
	"github.com/riskibarqy/cricket-stats/internal/usecase"
)

var _ usecase.CricketProvider = (*Client)(nil)

func (c *Client) FetchLiveMatches(ctx context.Context) ([]usecase.ExternalMatch, bool) {
	raw, ok := c.LiveMatches(ctx)
	if !ok {
		return nil, false
	}
	return c.matchesFromFeed(ctx, raw)
}

func (c *Client) FetchRecentMatches(ctx context.Context) ([]usecase.ExternalMatch, bool) {
	raw, ok := c.RecentMatches(ctx)
	if !ok {
		return nil, false
	}
	return c.matchesFromFeed(ctx, raw)
}

func (c *Client) matchesFromFeed(ctx context.Context, raw any) ([]usecase.ExternalMatch, bool) {
	entries, err := MatchesFromFeed(raw)
	if err != nil {
		c.loggerFor(ctx).WarnContext(ctx, "skip cricbuzz match feed", "error", err)
		return nil, false
	}

	now := c.now()
	out := make([]usecase.ExternalMatch, 0, len(entries))
	for _, entry := range entries {
		item, err := NormalizeMatch(entry, now)
		out = append(out, usecase.ExternalMatch{Match: item, Err: err})
	}
	return out, true
}

func (c *Client) SearchPlayer(ctx context.Context, name string) ([]usecase.ExternalPlayerHit, bool) {
	raw, ok := c.SearchPlayers(ctx, name)
	if !ok {
		return nil, false
	}
	hits, err := PlayerHits(raw)
	if err != nil {
		c.loggerFor(ctx).WarnContext(ctx, "skip cricbuzz player search", "name", name, "error", err)
		return nil, false
	}
	return hits, true
}

func (c *Client) FetchPlayer(ctx context.Context, hit usecase.ExternalPlayerHit) (player.Player, bool) {
	raw, ok := c.PlayerDetail(ctx, hit.ID)
	if !ok {
		return player.Player{}, false
	}

	search := hit.Raw
	if search == nil {
		search = map[string]any{"name": hit.Name, "teamName": hit.TeamName}
	}
	item, err := NormalizePlayer(search, raw)
	if err != nil {
		c.loggerFor(ctx).WarnContext(ctx, "skip cricbuzz player detail", "provider_id", hit.ID, "error", err)
		return player.Player{}, false
	}
	return item, true
}

// FetchScorecard treats a payload without a scorecard list as no data.
func (c *Client) FetchScorecard(ctx context.Context, providerMatchID int64, format string) (scorecard.Card, bool) {
	raw, ok := c.Scorecard(ctx, providerMatchID)
	if !ok {
		return scorecard.Card{}, false
	}
	if _, has := asMap(raw)["scorecard"]; !has {
		return scorecard.Card{}, false
	}

	card, err := NormalizeScorecard(raw, format)
	if err != nil {
		c.loggerFor(ctx).WarnContext(ctx, "skip cricbuzz scorecard", "provider_match_id", providerMatchID, "error", err)
		return scorecard.Card{}, false
	}
	return card, true
}
