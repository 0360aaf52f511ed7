// Package seeddata carries the embedded sample dataset used by `ingest seed`.
package seeddata

import (
	_ "embed"
	"fmt"
	"time"

	sonic "github.com/bytedance/sonic"
	"github.com/riskibarqy/cricket-stats/internal/domain/match"
	"github.com/riskibarqy/cricket-stats/internal/domain/player"
	"github.com/riskibarqy/cricket-stats/internal/domain/snapshot"
	"github.com/riskibarqy/cricket-stats/internal/usecase"
)

//go:embed sample.json
var sampleJSON []byte

type document struct {
	Teams      []teamDoc      `json:"teams"`
	Players    []playerDoc    `json:"players"`
	Venues     []venueDoc     `json:"venues"`
	Matches    []matchDoc     `json:"matches"`
	TopODIRuns []topODIRunDoc `json:"top_odi_runs"`
	Series     []seriesDoc    `json:"series"`
}

type teamDoc struct {
	Name    string `json:"name"`
	Country string `json:"country"`
}

type playerDoc struct {
	Name         string `json:"name"`
	FullName     string `json:"full_name"`
	Country      string `json:"country"`
	PlayingRole  string `json:"playing_role"`
	BattingStyle string `json:"batting_style"`
	BowlingStyle string `json:"bowling_style"`
	TotalRuns    int64  `json:"total_runs"`
	TotalWickets int64  `json:"total_wickets"`
}

type venueDoc struct {
	Name     string `json:"name"`
	City     string `json:"city"`
	Country  string `json:"country"`
	Capacity string `json:"capacity"`
}

// matchDoc dates are relative so the sample always looks recent.
type matchDoc struct {
	Description  string `json:"description"`
	Format       string `json:"format"`
	Team1        string `json:"team1"`
	Team2        string `json:"team2"`
	Venue        string `json:"venue"`
	VenueCity    string `json:"venue_city"`
	DaysAgo      int    `json:"days_ago"`
	Status       string `json:"status"`
	State        string `json:"state"`
	TossWinner   string `json:"toss_winner"`
	TossDecision string `json:"toss_decision"`
}

type topODIRunDoc struct {
	PlayerName string  `json:"player_name"`
	Runs       int64   `json:"runs"`
	Average    float64 `json:"average"`
	Centuries  int64   `json:"centuries"`
}

type seriesDoc struct {
	SeriesName  string `json:"series_name"`
	Team1       string `json:"team1"`
	Team2       string `json:"team2"`
	Venue       string `json:"venue"`
	MatchFormat string `json:"match_format"`
	DaysAgo     int    `json:"days_ago"`
	Status      string `json:"status"`
}

// Load decodes the embedded sample and resolves relative dates against now.
func Load(now time.Time) (usecase.SeedDataset, error) {
	return decode(sampleJSON, now)
}

func decode(raw []byte, now time.Time) (usecase.SeedDataset, error) {
	var doc document
	if err := sonic.Unmarshal(raw, &doc); err != nil {
		return usecase.SeedDataset{}, fmt.Errorf("decode seed dataset: %w", err)
	}

	today := match.DateOf(now)
	out := usecase.SeedDataset{
		Teams:      make([]snapshot.Team, 0, len(doc.Teams)),
		Players:    make([]player.Player, 0, len(doc.Players)),
		Venues:     make([]snapshot.Venue, 0, len(doc.Venues)),
		Matches:    make([]match.Match, 0, len(doc.Matches)),
		TopODIRuns: make([]snapshot.TopODIRun, 0, len(doc.TopODIRuns)),
		Series:     make([]snapshot.SeriesMatch, 0, len(doc.Series)),
	}

	for _, item := range doc.Teams {
		out.Teams = append(out.Teams, snapshot.Team{Name: item.Name, Country: item.Country})
	}
	for _, item := range doc.Players {
		out.Players = append(out.Players, player.Player{
			Name:         item.Name,
			FullName:     item.FullName,
			Country:      item.Country,
			PlayingRole:  item.PlayingRole,
			BattingStyle: item.BattingStyle,
			BowlingStyle: item.BowlingStyle,
			TotalRuns:    item.TotalRuns,
			TotalWickets: item.TotalWickets,
		})
	}
	for _, item := range doc.Venues {
		out.Venues = append(out.Venues, snapshot.Venue{
			Name:     item.Name,
			City:     item.City,
			Country:  item.Country,
			Capacity: item.Capacity,
		})
	}
	for _, item := range doc.Matches {
		winner, margin := match.ParseOutcome(item.Status)
		out.Matches = append(out.Matches, match.Match{
			Description:  item.Description,
			Format:       item.Format,
			Status:       item.Status,
			State:        item.State,
			Team1:        item.Team1,
			Team2:        item.Team2,
			Venue:        item.Venue,
			VenueCity:    item.VenueCity,
			Date:         today.AddDays(-item.DaysAgo),
			Winner:       winner,
			Margin:       margin,
			TossWinner:   item.TossWinner,
			TossDecision: item.TossDecision,
		})
	}
	for _, item := range doc.TopODIRuns {
		out.TopODIRuns = append(out.TopODIRuns, snapshot.TopODIRun{
			PlayerName: item.PlayerName,
			Runs:       item.Runs,
			Average:    item.Average,
			Centuries:  item.Centuries,
		})
	}
	for _, item := range doc.Series {
		out.Series = append(out.Series, snapshot.SeriesMatch{
			SeriesName:  item.SeriesName,
			Team1:       item.Team1,
			Team2:       item.Team2,
			Venue:       item.Venue,
			MatchFormat: item.MatchFormat,
			StartDate:   today.AddDays(-item.DaysAgo),
			Status:      item.Status,
		})
	}

	return out, nil
}
