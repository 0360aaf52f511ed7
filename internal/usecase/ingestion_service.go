package usecase

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/riskibarqy/cricket-stats/internal/domain/match"
	"github.com/riskibarqy/cricket-stats/internal/domain/player"
	"github.com/riskibarqy/cricket-stats/internal/domain/scorecard"
	"github.com/riskibarqy/cricket-stats/internal/platform/logging"
	"golang.org/x/time/rate"
)

// DefaultPopularPlayers is the fixed list refreshed on every run.
var DefaultPopularPlayers = []string{
	"Virat Kohli", "Rohit Sharma", "MS Dhoni", "Jasprit Bumrah",
	"Ravindra Jadeja", "Steve Smith", "Pat Cummins", "Ben Stokes",
	"Kane Williamson", "Babar Azam", "Joe Root", "David Warner",
}

type IngestionConfig struct {
	PlayerPace    time.Duration
	ScorecardPace time.Duration
	// ScorecardCandidates bounds the stored match query; ScorecardMatches of
	// those are fetched.
	ScorecardCandidates int
	ScorecardMatches    int
	PopularPlayers      []string
}

func DefaultIngestionConfig() IngestionConfig {
	return IngestionConfig{
		PlayerPace:          500 * time.Millisecond,
		ScorecardPace:       time.Second,
		ScorecardCandidates: 10,
		ScorecardMatches:    5,
		PopularPlayers:      DefaultPopularPlayers,
	}
}

// IngestionService pulls matches, players and scorecards from the provider
// and upserts them. Steps run strictly in sequence.
type IngestionService struct {
	provider   CricketProvider
	players    player.Repository
	matches    match.Repository
	scorecards scorecard.Repository
	cfg        IngestionConfig
	logger     *logging.Logger
	now        func() time.Time
}

func NewIngestionService(
	provider CricketProvider,
	players player.Repository,
	matches match.Repository,
	scorecards scorecard.Repository,
	cfg IngestionConfig,
	logger *logging.Logger,
) *IngestionService {
	if logger == nil {
		logger = logging.Default()
	}
	if cfg.ScorecardMatches <= 0 {
		cfg.ScorecardMatches = DefaultIngestionConfig().ScorecardMatches
	}
	if cfg.ScorecardCandidates < cfg.ScorecardMatches {
		cfg.ScorecardCandidates = max(DefaultIngestionConfig().ScorecardCandidates, cfg.ScorecardMatches)
	}
	if len(cfg.PopularPlayers) == 0 {
		cfg.PopularPlayers = DefaultPopularPlayers
	}

	return &IngestionService{
		provider:   provider,
		players:    players,
		matches:    matches,
		scorecards: scorecards,
		cfg:        cfg,
		logger:     logger,
		now:        time.Now,
	}
}

type refreshStep struct {
	name string
	run  func(ctx context.Context, log *logging.Logger, report *RefreshReport) error
}

// Refresh runs one ingestion pass. Per-item failures are logged and counted
// in the report; an error is returned only when the store is unreachable or
// ctx is cancelled.
func (s *IngestionService) Refresh(ctx context.Context) (RefreshReport, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.IngestionService.Refresh")
	defer span.End()

	report := RefreshReport{
		RunID:     uuid.NewString(),
		Status:    RefreshStatusFailed,
		StartedAt: s.now(),
	}
	if s.provider == nil || s.players == nil || s.matches == nil || s.scorecards == nil {
		return report, fmt.Errorf("%w: ingestion is not fully configured", ErrDependencyUnavailable)
	}

	log, capture := s.logger.Tee(logging.LevelInfo)
	defer capture.Release()
	ctx = logging.NewContext(ctx, log)
	finish := func() {
		report.FinishedAt = s.now()
		report.Output = capture.String()
	}

	log.InfoContext(ctx, "refresh started", "run_id", report.RunID)
	if _, err := s.matches.Count(ctx); err != nil {
		log.ErrorContext(ctx, "refresh aborted: store unreachable", "error", err)
		finish()
		return report, fmt.Errorf("%w: check store: %w", ErrDependencyUnavailable, err)
	}

	steps := []refreshStep{
		{name: "matches", run: s.ingestMatches},
		{name: "players", run: s.ingestPlayers},
		{name: "scorecards", run: s.ingestScorecards},
	}
	for _, step := range steps {
		if err := step.run(ctx, log, &report); err != nil {
			log.ErrorContext(ctx, "refresh aborted", "step", step.name, "error", err)
			finish()
			return report, fmt.Errorf("refresh %s: %w", step.name, err)
		}
	}

	if total, err := s.players.Count(ctx); err == nil {
		report.TotalPlayers = total
	} else {
		report.AddErrorf("count players: %v", err)
	}
	if total, err := s.matches.Count(ctx); err == nil {
		report.TotalMatches = total
	} else {
		report.AddErrorf("count matches: %v", err)
	}

	report.Status = RefreshStatusSuccess
	log.InfoContext(ctx, "refresh finished",
		"players", report.TotalPlayers,
		"matches", report.TotalMatches,
		"errors", len(report.Errors),
	)
	finish()
	return report, nil
}

func (s *IngestionService) ingestMatches(ctx context.Context, log *logging.Logger, report *RefreshReport) error {
	feeds := []struct {
		name  string
		fetch func(context.Context) ([]ExternalMatch, bool)
	}{
		{name: "live", fetch: s.provider.FetchLiveMatches},
		{name: "recent", fetch: s.provider.FetchRecentMatches},
	}

	for _, feed := range feeds {
		log.InfoContext(ctx, "fetching matches", "feed", feed.name)
		items, ok := feed.fetch(ctx)
		if !ok {
			log.WarnContext(ctx, "no match data received", "feed", feed.name)
			continue
		}

		stored := 0
		for _, item := range items {
			if err := ctx.Err(); err != nil {
				return err
			}
			if item.Err != nil {
				report.MatchesSkipped++
				log.WarnContext(ctx, "skip malformed match", "feed", feed.name, "error", item.Err)
				continue
			}

			m := item.Match
			if err := s.storeMatch(ctx, m, report); err != nil {
				report.MatchesSkipped++
				report.AddErrorf("store match %s vs %s on %s: %v", m.Team1, m.Team2, m.Date, err)
				log.WarnContext(ctx, "skip match", "team1", m.Team1, "team2", m.Team2, "error", err)
				continue
			}
			stored++
			log.InfoContext(ctx, "stored match", "team1", m.Team1, "team2", m.Team2, "date", m.Date.String())
		}
		log.InfoContext(ctx, "matches stored", "feed", feed.name, "count", stored)
	}

	return nil
}

// storeMatch writes both projections. They are independent rows, so a
// failure on the second leaves the first in place.
func (s *IngestionService) storeMatch(ctx context.Context, m match.Match, report *RefreshReport) error {
	_, inserted, err := s.matches.UpsertRecent(ctx, m.Recent())
	if err != nil {
		return fmt.Errorf("upsert recent match: %w", err)
	}
	if _, _, err := s.matches.UpsertCombined(ctx, m.Combined()); err != nil {
		return fmt.Errorf("upsert combined match: %w", err)
	}

	if inserted {
		report.MatchesInserted++
	} else {
		report.MatchesUpdated++
	}
	return nil
}

func (s *IngestionService) ingestPlayers(ctx context.Context, log *logging.Logger, report *RefreshReport) error {
	log.InfoContext(ctx, "fetching players", "count", len(s.cfg.PopularPlayers))
	pacer := newPacer(s.cfg.PlayerPace)

	for _, name := range s.cfg.PopularPlayers {
		if err := ctx.Err(); err != nil {
			return err
		}

		hits, ok := s.provider.SearchPlayer(ctx, name)
		if !ok || len(hits) == 0 {
			log.WarnContext(ctx, "no player search result", "name", name)
			continue
		}

		if err := pacer.Wait(ctx); err != nil {
			return err
		}
		item, ok := s.provider.FetchPlayer(ctx, hits[0])
		if !ok {
			log.WarnContext(ctx, "no player detail", "name", name, "provider_id", hits[0].ID)
			continue
		}

		_, inserted, err := s.players.Upsert(ctx, item)
		if err != nil {
			report.AddErrorf("upsert player %s: %v", name, err)
			log.WarnContext(ctx, "skip player", "name", name, "error", err)
			continue
		}
		if inserted {
			report.PlayersInserted++
		} else {
			report.PlayersUpdated++
		}
		log.InfoContext(ctx, "stored player", "name", item.ShortName())
	}

	return nil
}

func (s *IngestionService) ingestScorecards(ctx context.Context, log *logging.Logger, report *RefreshReport) error {
	targets, err := s.matches.ListScorecardTargets(ctx, s.cfg.ScorecardCandidates)
	if err != nil {
		return fmt.Errorf("list scorecard targets: %w", err)
	}
	if len(targets) == 0 {
		log.WarnContext(ctx, "no stored matches to fetch scorecards for")
		return nil
	}
	if len(targets) > s.cfg.ScorecardMatches {
		targets = targets[:s.cfg.ScorecardMatches]
	}

	pacer := newPacer(s.cfg.ScorecardPace)
	resolver := newPlayerResolver(s.players)
	var batting []scorecard.Batting
	var bowling []scorecard.Bowling

	for _, target := range targets {
		if err := pacer.Wait(ctx); err != nil {
			return err
		}

		card, ok := s.provider.FetchScorecard(ctx, target.FetchID(), target.Format)
		if !ok {
			log.WarnContext(ctx, "no scorecard data", "match_id", target.MatchID, "provider_match_id", target.FetchID())
			continue
		}
		report.ScorecardsFetched++

		for _, rec := range card.Batting {
			playerID, ok, err := resolver.resolve(ctx, rec.PlayerName)
			if err != nil {
				report.AddErrorf("resolve batter %s: %v", rec.PlayerName, err)
				continue
			}
			if !ok {
				continue
			}
			rec.MatchID = target.MatchID
			rec.PlayerID = playerID
			batting = append(batting, rec)
		}
		for _, rec := range card.Bowling {
			playerID, ok, err := resolver.resolve(ctx, rec.PlayerName)
			if err != nil {
				report.AddErrorf("resolve bowler %s: %v", rec.PlayerName, err)
				continue
			}
			if !ok {
				continue
			}
			rec.MatchID = target.MatchID
			rec.PlayerID = playerID
			if rec.Format == "" {
				rec.Format = card.Format
			}
			bowling = append(bowling, rec)
		}
	}

	if len(batting) > 0 {
		inserted, err := s.scorecards.UpsertBatting(ctx, batting)
		if err != nil {
			return fmt.Errorf("upsert batting: %w", err)
		}
		report.BattingInserted = inserted
		log.InfoContext(ctx, "batting records stored", "inserted", inserted, "total", len(batting))
	}
	if len(bowling) > 0 {
		inserted, err := s.scorecards.UpsertBowling(ctx, bowling)
		if err != nil {
			return fmt.Errorf("upsert bowling: %w", err)
		}
		report.BowlingInserted = inserted
		log.InfoContext(ctx, "bowling records stored", "inserted", inserted, "total", len(bowling))
	}

	return nil
}

func newPacer(interval time.Duration) *rate.Limiter {
	if interval <= 0 {
		return rate.NewLimiter(rate.Inf, 1)
	}
	return rate.NewLimiter(rate.Every(interval), 1)
}

// playerResolver memoizes name lookups for one run, including misses.
type playerResolver struct {
	repo  player.Repository
	known map[string]resolvedPlayer
}

type resolvedPlayer struct {
	id int64
	ok bool
}

func newPlayerResolver(repo player.Repository) *playerResolver {
	return &playerResolver{repo: repo, known: make(map[string]resolvedPlayer)}
}

func (r *playerResolver) resolve(ctx context.Context, name string) (int64, bool, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return 0, false, nil
	}
	if hit, ok := r.known[name]; ok {
		return hit.id, hit.ok, nil
	}

	id, ok, err := r.repo.FindIDByName(ctx, name)
	if err != nil {
		return 0, false, err
	}
	r.known[name] = resolvedPlayer{id: id, ok: ok}
	return id, ok, nil
}
