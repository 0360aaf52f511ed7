package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/riskibarqy/cricket-stats/internal/domain/match"
	"github.com/riskibarqy/cricket-stats/internal/domain/player"
	"github.com/riskibarqy/cricket-stats/internal/domain/scorecard"
	"github.com/riskibarqy/cricket-stats/internal/domain/snapshot"
	"github.com/riskibarqy/cricket-stats/internal/platform/logging"
)

const (
	seedMatchCount   = 4
	seedBatterCount  = 3
	seedBowlerCount  = 3
	seedStatsPlayers = 6
	seedFielderCount = 2
)

var seedBowlingFormats = []string{"ODI", "Test", "T20"}

// SeedDataset is the static sample data. Dates are already resolved against
// the seeding time.
type SeedDataset struct {
	Teams      []snapshot.Team
	Players    []player.Player
	Venues     []snapshot.Venue
	Matches    []match.Match
	TopODIRuns []snapshot.TopODIRun
	Series     []snapshot.SeriesMatch
}

type SeedReport struct {
	Teams         int
	Players       int
	Venues        int
	Matches       int
	TopODIRuns    int
	Series        int
	Batting       int
	Bowling       int
	Fielding      int
	PlayerStats   int
	BatterInnings int
	Partnerships  int
	BowlerVenues  int
	Errors        []string
}

func (r *SeedReport) AddErrorf(format string, args ...any) {
	r.Errors = append(r.Errors, fmt.Sprintf(format, args...))
}

func (r SeedReport) Summary() string {
	return fmt.Sprintf(
		"teams=%d players=%d venues=%d matches=%d top_odi=%d series=%d batting=%d bowling=%d fielding=%d stats=%d innings=%d partnerships=%d bowler_venues=%d errors=%d",
		r.Teams, r.Players, r.Venues, r.Matches, r.TopODIRuns, r.Series,
		r.Batting, r.Bowling, r.Fielding,
		r.PlayerStats, r.BatterInnings, r.Partnerships, r.BowlerVenues,
		len(r.Errors),
	)
}

type seededPlayer struct {
	id   int64
	item player.Player
}

type seededMatch struct {
	id   int64
	item match.Match
}

// SeedService loads the sample dataset and derives per-match performance rows
// from it. Players, matches and scorecard rows go through the upserts; the
// snapshot tables are appended on every run.
type SeedService struct {
	players    player.Repository
	matches    match.Repository
	scorecards scorecard.Repository
	snapshots  snapshot.Repository
	logger     *logging.Logger
	now        func() time.Time
}

func NewSeedService(
	players player.Repository,
	matches match.Repository,
	scorecards scorecard.Repository,
	snapshots snapshot.Repository,
	logger *logging.Logger,
) *SeedService {
	if logger == nil {
		logger = logging.Default()
	}
	return &SeedService{
		players:    players,
		matches:    matches,
		scorecards: scorecards,
		snapshots:  snapshots,
		logger:     logger,
		now:        time.Now,
	}
}

func (s *SeedService) Seed(ctx context.Context, data SeedDataset) (SeedReport, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.SeedService.Seed")
	defer span.End()

	var report SeedReport

	teamIDs := make(map[string]int64, len(data.Teams))
	for _, item := range data.Teams {
		id, err := s.snapshots.InsertTeam(ctx, item)
		if err != nil {
			report.AddErrorf("insert team %s: %v", item.Name, err)
			continue
		}
		teamIDs[item.Name] = id
		report.Teams++
	}

	players := make([]seededPlayer, 0, len(data.Players))
	for _, item := range data.Players {
		if item.TeamID == 0 {
			item.TeamID = teamIDs[item.Country]
		}
		id, _, err := s.players.Upsert(ctx, item)
		if err != nil {
			report.AddErrorf("upsert player %s: %v", item.ShortName(), err)
			continue
		}
		players = append(players, seededPlayer{id: id, item: item})
		report.Players++
	}

	for _, item := range data.Venues {
		if _, err := s.snapshots.InsertVenue(ctx, item); err != nil {
			report.AddErrorf("insert venue %s: %v", item.Name, err)
			continue
		}
		report.Venues++
	}

	matches := make([]seededMatch, 0, len(data.Matches))
	for _, item := range data.Matches {
		if _, _, err := s.matches.UpsertRecent(ctx, item.Recent()); err != nil {
			report.AddErrorf("upsert recent match %s vs %s: %v", item.Team1, item.Team2, err)
			continue
		}
		id, _, err := s.matches.UpsertCombined(ctx, item.Combined())
		if err != nil {
			report.AddErrorf("upsert combined match %s vs %s: %v", item.Team1, item.Team2, err)
			continue
		}
		matches = append(matches, seededMatch{id: id, item: item})
		report.Matches++
	}

	for _, item := range data.TopODIRuns {
		if _, err := s.snapshots.InsertTopODIRun(ctx, item); err != nil {
			report.AddErrorf("insert top odi run %s: %v", item.PlayerName, err)
			continue
		}
		report.TopODIRuns++
	}
	for _, item := range data.Series {
		if _, err := s.snapshots.InsertSeriesMatch(ctx, item); err != nil {
			report.AddErrorf("insert series match %s: %v", item.SeriesName, err)
			continue
		}
		report.Series++
	}

	if err := ctx.Err(); err != nil {
		return report, err
	}
	if len(matches) > seedMatchCount {
		matches = matches[:seedMatchCount]
	}
	if len(matches) == 0 || len(players) == 0 {
		s.logger.WarnContext(ctx, "no matches or players seeded, skipping performance rows")
		return report, nil
	}

	if err := s.seedBatting(ctx, matches, players, &report); err != nil {
		return report, err
	}
	if err := s.seedBowling(ctx, matches, players, &report); err != nil {
		return report, err
	}
	s.seedFielding(ctx, matches, players, &report)
	s.seedPlayerStats(ctx, players, &report)
	s.seedPartnerships(ctx, matches, players, &report)

	s.logger.InfoContext(ctx, "seed finished", "summary", report.Summary())
	return report, nil
}

func (s *SeedService) seedBatting(ctx context.Context, matches []seededMatch, players []seededPlayer, report *SeedReport) error {
	batters := players[:min(seedBatterCount, len(players))]
	today := match.DateOf(s.now())

	var records []scorecard.Batting
	for i, m := range matches {
		team := "India"
		if i%2 == 1 {
			team = "Australia"
		}
		innings := int64(1)
		if i >= 2 {
			innings = 2
		}

		for j, p := range batters {
			dismissal := "caught"
			if j%2 == 1 {
				dismissal = "not out"
			}
			records = append(records, scorecard.Batting{
				MatchID:    m.id,
				PlayerID:   p.id,
				PlayerName: p.item.ShortName(),
				Runs:       int64(50 + i*10 + j*5),
				Balls:      int64(40 + i*5 + j*3),
				StrikeRate: 120 + float64(i*5),
				Dismissal:  dismissal,
				Team:       team,
				InningsNo:  innings,
			})

			_, err := s.snapshots.InsertBatterInnings(ctx, snapshot.BatterInnings{
				MatchID:    m.id,
				PlayerID:   p.id,
				PlayerName: p.item.ShortName(),
				Runs:       int64(40 + i*10 + j*5),
				BallsFaced: int64(30 + i*5 + j*3),
				StrikeRate: 130 + float64(i*5),
				Date:       today.AddDays(-(30 - i)),
			})
			if err != nil {
				report.AddErrorf("insert batter innings %s: %v", p.item.ShortName(), err)
				continue
			}
			report.BatterInnings++
		}
	}

	inserted, err := s.scorecards.UpsertBatting(ctx, records)
	if err != nil {
		return fmt.Errorf("seed batting: %w", err)
	}
	report.Batting = inserted
	return nil
}

func (s *SeedService) seedBowling(ctx context.Context, matches []seededMatch, players []seededPlayer, report *SeedReport) error {
	var bowlers []seededPlayer
	for _, p := range players {
		if p.item.PlayingRole == "Bowler" || p.item.PlayingRole == "Allrounder" {
			bowlers = append(bowlers, p)
		}
		if len(bowlers) == seedBowlerCount {
			break
		}
	}
	if len(bowlers) == 0 {
		return nil
	}

	var records []scorecard.Bowling
	for i, m := range matches {
		for j, p := range bowlers {
			rec := scorecard.Bowling{
				MatchID:      m.id,
				PlayerID:     p.id,
				PlayerName:   p.item.ShortName(),
				Overs:        10,
				RunsConceded: int64(50 + i*10),
				Wickets:      int64(2 + j),
				EconomyRate:  5 + float64(i)*0.5,
				Format:       seedBowlingFormats[i%len(seedBowlingFormats)],
			}
			records = append(records, rec)

			_, err := s.snapshots.InsertBowlerVenue(ctx, snapshot.BowlerVenue{
				MatchID:      m.id,
				PlayerID:     p.id,
				PlayerName:   rec.PlayerName,
				Venue:        m.item.Venue,
				Overs:        rec.Overs,
				RunsConceded: rec.RunsConceded,
				Wickets:      rec.Wickets,
				EconomyRate:  rec.EconomyRate,
			})
			if err != nil {
				report.AddErrorf("insert bowler venue %s: %v", rec.PlayerName, err)
				continue
			}
			report.BowlerVenues++
		}
	}

	inserted, err := s.scorecards.UpsertBowling(ctx, records)
	if err != nil {
		return fmt.Errorf("seed bowling: %w", err)
	}
	report.Bowling = inserted
	return nil
}

func (s *SeedService) seedFielding(ctx context.Context, matches []seededMatch, players []seededPlayer, report *SeedReport) {
	fielders := players[:min(seedFielderCount, len(players))]
	for i, m := range matches {
		for j, p := range fielders {
			item := scorecard.Fielding{
				MatchID:   m.id,
				PlayerID:  p.id,
				Catches:   int64(1 + j),
				Stumpings: int64(i % 2),
				RunOuts:   int64(j % 2),
				Format:    m.item.Format,
			}
			if _, _, err := s.scorecards.UpsertFielding(ctx, item); err != nil {
				report.AddErrorf("upsert fielding %s: %v", p.item.ShortName(), err)
				continue
			}
			report.Fielding++
		}
	}
}

func (s *SeedService) seedPlayerStats(ctx context.Context, players []seededPlayer, report *SeedReport) {
	for i, p := range players[:min(seedStatsPlayers, len(players))] {
		item := snapshot.PlayerStat{PlayerID: p.id, PlayerName: p.item.ShortName()}
		if i%2 == 0 {
			item.TestRuns = int64(2000 + i*500)
		} else {
			item.T20Runs = int64(1000 + i*200)
		}
		if i%3 != 0 {
			item.ODIRuns = int64(3000 + i*400)
		}

		if _, err := s.snapshots.InsertPlayerStat(ctx, item); err != nil {
			report.AddErrorf("insert player stat %s: %v", item.PlayerName, err)
			continue
		}
		report.PlayerStats++
	}
}

func (s *SeedService) seedPartnerships(ctx context.Context, matches []seededMatch, players []seededPlayer, report *SeedReport) {
	if len(players) < 2 {
		return
	}
	for i, m := range matches {
		item := snapshot.Partnership{
			MatchID:         m.id,
			InningsNo:       int64(1 + i%2),
			Batter1Name:     players[0].item.ShortName(),
			Batter2Name:     players[1].item.ShortName(),
			RunsPartnership: int64(60 + i*25),
			WicketFallen:    int64(1 + i),
		}
		if _, err := s.snapshots.InsertPartnership(ctx, item); err != nil {
			report.AddErrorf("insert partnership for match %d: %v", m.id, err)
			continue
		}
		report.Partnerships++
	}
}
