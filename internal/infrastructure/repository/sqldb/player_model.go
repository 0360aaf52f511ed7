package sqldb

import "database/sql"

type playerTableModel struct {
	ID           int64         `db:"player_id"`
	FullName     string        `db:"full_name"`
	Name         string        `db:"name"`
	Country      string        `db:"country"`
	PlayingRole  string        `db:"playing_role"`
	BattingStyle string        `db:"batting_style"`
	BowlingStyle string        `db:"bowling_style"`
	TotalRuns    int64         `db:"total_runs"`
	TotalWickets int64         `db:"total_wickets"`
	TeamID       sql.NullInt64 `db:"team_id"`
}

var playerSelectColumns = []string{
	"player_id",
	"COALESCE(full_name, '') AS full_name",
	"COALESCE(name, '') AS name",
	"COALESCE(country, '') AS country",
	"COALESCE(playing_role, '') AS playing_role",
	"COALESCE(batting_style, '') AS batting_style",
	"COALESCE(bowling_style, '') AS bowling_style",
	"COALESCE(total_runs, 0) AS total_runs",
	"COALESCE(total_wickets, 0) AS total_wickets",
	"team_id",
}

var playerUpsertTarget = upsertTarget{
	Table:      "players",
	PK:         "player_id",
	Keys:       []string{"name", "full_name"},
	AnyKey:     true,
	InsertOnly: []string{"total_runs", "total_wickets", "team_id"},
}
