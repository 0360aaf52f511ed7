package sqldb

import (
	"context"
	"fmt"
	"strings"

	"github.com/jmoiron/sqlx"
)

type tableDDL struct {
	name string
	ddl  string
}

// Tables are created in dependency order. {{id}} and {{date}} are replaced by
// the dialect's identity column and date type.
var schemaTables = []tableDDL{
	{name: "teams", ddl: `
CREATE TABLE IF NOT EXISTS teams (
	team_id {{id}},
	team_name VARCHAR(100),
	country VARCHAR(100)
)`},
	{name: "players", ddl: `
CREATE TABLE IF NOT EXISTS players (
	player_id {{id}},
	full_name VARCHAR(255),
	name VARCHAR(255),
	country VARCHAR(100),
	playing_role VARCHAR(100),
	batting_style VARCHAR(100),
	bowling_style VARCHAR(100),
	total_runs INTEGER DEFAULT 0,
	total_wickets INTEGER DEFAULT 0,
	team_id BIGINT REFERENCES teams(team_id) ON DELETE SET NULL,
	CONSTRAINT unique_player UNIQUE (name, full_name)
)`},
	{name: "recent_matches", ddl: `
CREATE TABLE IF NOT EXISTS recent_matches (
	match_id {{id}},
	cricbuzz_match_id BIGINT DEFAULT 0,
	match_desc VARCHAR(500),
	team1 VARCHAR(100),
	team2 VARCHAR(100),
	venue VARCHAR(200),
	venue_city VARCHAR(100),
	start_date {{date}},
	status VARCHAR(500),
	state VARCHAR(50),
	CONSTRAINT unique_recent_match UNIQUE (team1, team2, start_date)
)`},
	{name: "top_odi_runs", ddl: `
CREATE TABLE IF NOT EXISTS top_odi_runs (
	player_id {{id}},
	player_name VARCHAR(255),
	runs INTEGER,
	average DECIMAL(10, 2),
	centuries INTEGER DEFAULT 0
)`},
	{name: "venues", ddl: `
CREATE TABLE IF NOT EXISTS venues (
	venue_id {{id}},
	venue_name VARCHAR(255),
	city VARCHAR(100),
	country VARCHAR(100),
	capacity VARCHAR(100)
)`},
	{name: "combined_matches", ddl: `
CREATE TABLE IF NOT EXISTS combined_matches (
	match_id {{id}},
	cricbuzz_match_id BIGINT DEFAULT 0,
	team1 VARCHAR(100),
	team2 VARCHAR(100),
	match_winner VARCHAR(100),
	win_margin VARCHAR(100),
	format VARCHAR(50),
	venue VARCHAR(200),
	match_date {{date}},
	toss_winner VARCHAR(100),
	toss_decision VARCHAR(50),
	CONSTRAINT unique_combined_match UNIQUE (team1, team2, match_date)
)`},
	{name: "batting_data", ddl: `
CREATE TABLE IF NOT EXISTS batting_data (
	batting_id {{id}},
	match_id BIGINT REFERENCES combined_matches(match_id) ON DELETE CASCADE,
	player_id BIGINT REFERENCES players(player_id) ON DELETE SET NULL,
	player_name VARCHAR(255),
	runs INTEGER,
	balls INTEGER,
	strike_rate DECIMAL(10, 2),
	dismissal VARCHAR(100),
	team VARCHAR(100),
	innings_no INTEGER,
	CONSTRAINT unique_batting UNIQUE (match_id, player_id, innings_no)
)`},
	{name: "series_matches", ddl: `
CREATE TABLE IF NOT EXISTS series_matches (
	series_match_id {{id}},
	series_name VARCHAR(255),
	team1 VARCHAR(100),
	team2 VARCHAR(100),
	venue VARCHAR(200),
	match_format VARCHAR(50),
	start_date {{date}},
	status VARCHAR(500)
)`},
	{name: "players_stats", ddl: `
CREATE TABLE IF NOT EXISTS players_stats (
	stat_id {{id}},
	player_name VARCHAR(255),
	player_id BIGINT REFERENCES players(player_id) ON DELETE CASCADE,
	test_runs INTEGER DEFAULT 0,
	odi_runs INTEGER DEFAULT 0,
	t20_runs INTEGER DEFAULT 0
)`},
	{name: "players_partnerships_data", ddl: `
CREATE TABLE IF NOT EXISTS players_partnerships_data (
	partnership_id {{id}},
	match_id BIGINT REFERENCES combined_matches(match_id) ON DELETE CASCADE,
	innings_no INTEGER,
	batter1_name VARCHAR(255),
	batter2_name VARCHAR(255),
	runs_partnership INTEGER,
	wicket_fallen INTEGER
)`},
	{name: "bowlers_bowling_venue_data", ddl: `
CREATE TABLE IF NOT EXISTS bowlers_bowling_venue_data (
	bowling_id {{id}},
	match_id BIGINT REFERENCES combined_matches(match_id) ON DELETE CASCADE,
	player_id BIGINT REFERENCES players(player_id) ON DELETE SET NULL,
	player_name VARCHAR(255),
	venue VARCHAR(200),
	overs DECIMAL(10, 1),
	runs_conceded INTEGER,
	wickets INTEGER,
	economy_rate DECIMAL(10, 2)
)`},
	{name: "batters_batting_data", ddl: `
CREATE TABLE IF NOT EXISTS batters_batting_data (
	batter_id {{id}},
	match_id BIGINT REFERENCES combined_matches(match_id) ON DELETE CASCADE,
	player_id BIGINT REFERENCES players(player_id) ON DELETE SET NULL,
	player_name VARCHAR(255),
	runs INTEGER,
	balls_faced INTEGER,
	strike_rate DECIMAL(10, 2),
	date {{date}}
)`},
	{name: "bowling_data", ddl: `
CREATE TABLE IF NOT EXISTS bowling_data (
	bowling_id {{id}},
	match_id BIGINT REFERENCES combined_matches(match_id) ON DELETE CASCADE,
	player_id BIGINT REFERENCES players(player_id) ON DELETE SET NULL,
	player_name VARCHAR(255),
	overs DECIMAL(10, 1),
	runs_conceded INTEGER,
	wickets INTEGER,
	economy_rate DECIMAL(10, 2),
	format VARCHAR(50),
	CONSTRAINT unique_bowling UNIQUE (match_id, player_id)
)`},
	{name: "fielding_data", ddl: `
CREATE TABLE IF NOT EXISTS fielding_data (
	fielding_id {{id}},
	match_id BIGINT REFERENCES combined_matches(match_id) ON DELETE CASCADE,
	player_id BIGINT REFERENCES players(player_id) ON DELETE SET NULL,
	catches INTEGER DEFAULT 0,
	stumpings INTEGER DEFAULT 0,
	run_outs INTEGER DEFAULT 0,
	format VARCHAR(50)
)`},
}

// TableNames lists the schema tables in creation order.
func TableNames() []string {
	out := make([]string, 0, len(schemaTables))
	for _, t := range schemaTables {
		out = append(out, t.name)
	}
	return out
}

// SchemaStatements renders the CREATE TABLE statements for a dialect.
func SchemaStatements(d Dialect) []string {
	r := strings.NewReplacer("{{id}}", d.IdentityColumn, "{{date}}", d.DateType)
	out := make([]string, 0, len(schemaTables))
	for _, t := range schemaTables {
		out = append(out, strings.TrimSpace(r.Replace(t.ddl)))
	}
	return out
}

// EnsureSchema creates every missing table. It is safe to run repeatedly and
// returns the tables it created or checked, in order.
func EnsureSchema(ctx context.Context, db *sqlx.DB) ([]string, error) {
	statements := SchemaStatements(dialectOf(db))
	done := make([]string, 0, len(statements))
	for i, stmt := range statements {
		if _, err := db.ExecContext(ctx, stmt); err != nil {
			return done, fmt.Errorf("create table %s: %w", schemaTables[i].name, err)
		}
		done = append(done, schemaTables[i].name)
	}

	return done, nil
}
