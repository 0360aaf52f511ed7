package usecase

import (
	"context"
	"errors"
	"testing"

	"github.com/riskibarqy/cricket-stats/internal/domain/match"
	"github.com/riskibarqy/cricket-stats/internal/domain/scorecard"
	matchmock "github.com/riskibarqy/cricket-stats/internal/mocks/domain/match"
	playermock "github.com/riskibarqy/cricket-stats/internal/mocks/domain/player"
	scorecardmock "github.com/riskibarqy/cricket-stats/internal/mocks/domain/scorecard"
	"github.com/stretchr/testify/mock"
)

func TestStatsService_Overview(t *testing.T) {
	t.Parallel()

	players := playermock.NewRepository(t)
	matches := matchmock.NewRepository(t)
	svc := NewStatsService(players, matches, scorecardmock.NewRepository(t))

	players.On("Count", mock.Anything).Return(int64(12), nil).Once()
	matches.On("Count", mock.Anything).Return(int64(40), nil).Once()

	got, err := svc.Overview(context.Background())
	if err != nil {
		t.Fatalf("overview: %v", err)
	}
	if got.Players != 12 || got.Matches != 40 {
		t.Fatalf("unexpected overview: %+v", got)
	}
}

func TestStatsService_OverviewPropagatesError(t *testing.T) {
	t.Parallel()

	players := playermock.NewRepository(t)
	svc := NewStatsService(players, matchmock.NewRepository(t), scorecardmock.NewRepository(t))

	boom := errors.New("boom")
	players.On("Count", mock.Anything).Return(int64(0), boom).Once()

	if _, err := svc.Overview(context.Background()); !errors.Is(err, boom) {
		t.Fatalf("expected wrapped error, got %v", err)
	}
}

func TestStatsService_MatchListsUseFixedLimit(t *testing.T) {
	t.Parallel()

	matches := matchmock.NewRepository(t)
	svc := NewStatsService(playermock.NewRepository(t), matches, scorecardmock.NewRepository(t))

	matches.On("ListLive", mock.Anything, 50).Return([]match.Recent{{ID: 1, State: "Live"}}, nil).Once()
	matches.On("ListRecent", mock.Anything, 50).Return([]match.Combined{{ID: 2}}, nil).Once()

	live, err := svc.LiveMatches(context.Background())
	if err != nil || len(live) != 1 {
		t.Fatalf("live matches: %v %v", live, err)
	}
	recent, err := svc.RecentMatches(context.Background())
	if err != nil || len(recent) != 1 {
		t.Fatalf("recent matches: %v %v", recent, err)
	}
}

func TestStatsService_LeaderboardLimits(t *testing.T) {
	t.Parallel()

	scorecards := scorecardmock.NewRepository(t)
	players := playermock.NewRepository(t)
	svc := NewStatsService(players, matchmock.NewRepository(t), scorecards)

	scorecards.On("TopBatters", mock.Anything, 10).Return([]scorecard.Leader{{PlayerID: 1, Total: 94}}, nil).Once()
	scorecards.On("TopBowlers", mock.Anything, 100).Return(nil, nil).Once()
	players.On("List", mock.Anything, 100).Return(nil, nil).Once()

	batters, err := svc.TopBatters(context.Background(), 0)
	if err != nil || len(batters) != 1 || batters[0].Total != 94 {
		t.Fatalf("top batters: %v %v", batters, err)
	}
	if _, err := svc.TopBowlers(context.Background(), 5000); err != nil {
		t.Fatalf("top bowlers: %v", err)
	}
	if _, err := svc.Players(context.Background(), -1); err != nil {
		t.Fatalf("players: %v", err)
	}
}
