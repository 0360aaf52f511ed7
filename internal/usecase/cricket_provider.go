package usecase

import (
	"context"

	"github.com/riskibarqy/cricket-stats/internal/domain/match"
	"github.com/riskibarqy/cricket-stats/internal/domain/player"
	"github.com/riskibarqy/cricket-stats/internal/domain/scorecard"
)

// CricketProvider is the upstream stats API. A false ok means "no data": the
// provider already logged why and the caller moves on.
type CricketProvider interface {
	FetchLiveMatches(ctx context.Context) ([]ExternalMatch, bool)
	FetchRecentMatches(ctx context.Context) ([]ExternalMatch, bool)
	SearchPlayer(ctx context.Context, name string) ([]ExternalPlayerHit, bool)
	FetchPlayer(ctx context.Context, hit ExternalPlayerHit) (player.Player, bool)
	FetchScorecard(ctx context.Context, providerMatchID int64, format string) (scorecard.Card, bool)
}

// ExternalMatch is one feed entry. Err is set when the entry could not be
// normalized; the rest of the feed is still usable.
type ExternalMatch struct {
	Match match.Match
	Err   error
}

// ExternalPlayerHit is one player search result.
type ExternalPlayerHit struct {
	ID       int64
	Name     string
	TeamName string
	Raw      any
}
