// Package snapshot holds rows that are appended as-is with no natural-key
// dedup. Re-running a load that writes them produces new rows.
package snapshot

import "github.com/riskibarqy/cricket-stats/internal/domain/match"

type Team struct {
	ID      int64
	Name    string
	Country string
}

type Venue struct {
	ID       int64
	Name     string
	City     string
	Country  string
	Capacity string
}

type TopODIRun struct {
	ID         int64
	PlayerName string
	Runs       int64
	Average    float64
	Centuries  int64
}

type SeriesMatch struct {
	ID          int64
	SeriesName  string
	Team1       string
	Team2       string
	Venue       string
	MatchFormat string
	StartDate   match.Date
	Status      string
}

type PlayerStat struct {
	ID         int64
	PlayerID   int64
	PlayerName string
	TestRuns   int64
	ODIRuns    int64
	T20Runs    int64
}

type Partnership struct {
	ID              int64
	MatchID         int64
	InningsNo       int64
	Batter1Name     string
	Batter2Name     string
	RunsPartnership int64
	WicketFallen    int64
}

type BowlerVenue struct {
	ID           int64
	MatchID      int64
	PlayerID     int64
	PlayerName   string
	Venue        string
	Overs        float64
	RunsConceded int64
	Wickets      int64
	EconomyRate  float64
}

type BatterInnings struct {
	ID         int64
	MatchID    int64
	PlayerID   int64
	PlayerName string
	Runs       int64
	BallsFaced int64
	StrikeRate float64
	Date       match.Date
}
