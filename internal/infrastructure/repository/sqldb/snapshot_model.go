package sqldb

import (
	"database/sql"

	"github.com/riskibarqy/cricket-stats/internal/domain/match"
)

type teamInsertModel struct {
	Name    string `db:"team_name"`
	Country string `db:"country"`
}

type venueInsertModel struct {
	Name     string `db:"venue_name"`
	City     string `db:"city"`
	Country  string `db:"country"`
	Capacity string `db:"capacity"`
}

type topODIRunInsertModel struct {
	PlayerName string  `db:"player_name"`
	Runs       int64   `db:"runs"`
	Average    float64 `db:"average"`
	Centuries  int64   `db:"centuries"`
}

type seriesMatchInsertModel struct {
	SeriesName  string     `db:"series_name"`
	Team1       string     `db:"team1"`
	Team2       string     `db:"team2"`
	Venue       string     `db:"venue"`
	MatchFormat string     `db:"match_format"`
	StartDate   match.Date `db:"start_date"`
	Status      string     `db:"status"`
}

type playerStatInsertModel struct {
	PlayerName string        `db:"player_name"`
	PlayerID   sql.NullInt64 `db:"player_id"`
	TestRuns   int64         `db:"test_runs"`
	ODIRuns    int64         `db:"odi_runs"`
	T20Runs    int64         `db:"t20_runs"`
}

type partnershipInsertModel struct {
	MatchID         int64  `db:"match_id"`
	InningsNo       int64  `db:"innings_no"`
	Batter1Name     string `db:"batter1_name"`
	Batter2Name     string `db:"batter2_name"`
	RunsPartnership int64  `db:"runs_partnership"`
	WicketFallen    int64  `db:"wicket_fallen"`
}

type bowlerVenueInsertModel struct {
	MatchID      int64         `db:"match_id"`
	PlayerID     sql.NullInt64 `db:"player_id"`
	PlayerName   string        `db:"player_name"`
	Venue        string        `db:"venue"`
	Overs        float64       `db:"overs"`
	RunsConceded int64         `db:"runs_conceded"`
	Wickets      int64         `db:"wickets"`
	EconomyRate  float64       `db:"economy_rate"`
}

type batterInningsInsertModel struct {
	MatchID    int64         `db:"match_id"`
	PlayerID   sql.NullInt64 `db:"player_id"`
	PlayerName string        `db:"player_name"`
	Runs       int64         `db:"runs"`
	BallsFaced int64         `db:"balls_faced"`
	StrikeRate float64       `db:"strike_rate"`
	Date       match.Date    `db:"date"`
}
