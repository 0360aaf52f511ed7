package usecase

import (
	"context"
	"fmt"

	"github.com/riskibarqy/cricket-stats/internal/domain/match"
	"github.com/riskibarqy/cricket-stats/internal/domain/player"
	"github.com/riskibarqy/cricket-stats/internal/domain/scorecard"
)

const (
	matchListLimit = 50

	leaderboardDefaultLimit = 10
	leaderboardMaxLimit     = 100
	playerListDefaultLimit  = 100
	playerListMaxLimit      = 500
)

type Overview struct {
	Players int64
	Matches int64
}

// StatsService serves the read-only dashboard views.
type StatsService struct {
	players    player.Repository
	matches    match.Repository
	scorecards scorecard.Repository
}

func NewStatsService(players player.Repository, matches match.Repository, scorecards scorecard.Repository) *StatsService {
	return &StatsService{
		players:    players,
		matches:    matches,
		scorecards: scorecards,
	}
}

func (s *StatsService) Overview(ctx context.Context) (Overview, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.StatsService.Overview")
	defer span.End()

	players, err := s.players.Count(ctx)
	if err != nil {
		return Overview{}, fmt.Errorf("count players: %w", err)
	}
	matches, err := s.matches.Count(ctx)
	if err != nil {
		return Overview{}, fmt.Errorf("count matches: %w", err)
	}

	return Overview{Players: players, Matches: matches}, nil
}

func (s *StatsService) LiveMatches(ctx context.Context) ([]match.Recent, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.StatsService.LiveMatches")
	defer span.End()

	items, err := s.matches.ListLive(ctx, matchListLimit)
	if err != nil {
		return nil, fmt.Errorf("list live matches: %w", err)
	}
	return items, nil
}

func (s *StatsService) RecentMatches(ctx context.Context) ([]match.Combined, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.StatsService.RecentMatches")
	defer span.End()

	items, err := s.matches.ListRecent(ctx, matchListLimit)
	if err != nil {
		return nil, fmt.Errorf("list recent matches: %w", err)
	}
	return items, nil
}

func (s *StatsService) TopBatters(ctx context.Context, limit int) ([]scorecard.Leader, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.StatsService.TopBatters")
	defer span.End()

	items, err := s.scorecards.TopBatters(ctx, clampLimit(limit, leaderboardDefaultLimit, leaderboardMaxLimit))
	if err != nil {
		return nil, fmt.Errorf("top batters: %w", err)
	}
	return items, nil
}

func (s *StatsService) TopBowlers(ctx context.Context, limit int) ([]scorecard.Leader, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.StatsService.TopBowlers")
	defer span.End()

	items, err := s.scorecards.TopBowlers(ctx, clampLimit(limit, leaderboardDefaultLimit, leaderboardMaxLimit))
	if err != nil {
		return nil, fmt.Errorf("top bowlers: %w", err)
	}
	return items, nil
}

func (s *StatsService) Players(ctx context.Context, limit int) ([]player.Player, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.StatsService.Players")
	defer span.End()

	items, err := s.players.List(ctx, clampLimit(limit, playerListDefaultLimit, playerListMaxLimit))
	if err != nil {
		return nil, fmt.Errorf("list players: %w", err)
	}
	return items, nil
}
