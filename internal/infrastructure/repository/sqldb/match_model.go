package sqldb

import "github.com/riskibarqy/cricket-stats/internal/domain/match"

type recentMatchTableModel struct {
	ID          int64      `db:"match_id"`
	ProviderID  int64      `db:"cricbuzz_match_id"`
	Description string     `db:"match_desc"`
	Team1       string     `db:"team1"`
	Team2       string     `db:"team2"`
	Venue       string     `db:"venue"`
	VenueCity   string     `db:"venue_city"`
	StartDate   match.Date `db:"start_date"`
	Status      string     `db:"status"`
	State       string     `db:"state"`
}

type combinedMatchTableModel struct {
	ID           int64      `db:"match_id"`
	ProviderID   int64      `db:"cricbuzz_match_id"`
	Team1        string     `db:"team1"`
	Team2        string     `db:"team2"`
	Winner       string     `db:"match_winner"`
	Margin       string     `db:"win_margin"`
	Format       string     `db:"format"`
	Venue        string     `db:"venue"`
	MatchDate    match.Date `db:"match_date"`
	TossWinner   string     `db:"toss_winner"`
	TossDecision string     `db:"toss_decision"`
}

type scorecardTargetModel struct {
	MatchID    int64  `db:"match_id"`
	ProviderID int64  `db:"cricbuzz_match_id"`
	Format     string `db:"format"`
}

var recentMatchSelectColumns = []string{
	"match_id",
	"COALESCE(cricbuzz_match_id, 0) AS cricbuzz_match_id",
	"COALESCE(match_desc, '') AS match_desc",
	"COALESCE(team1, '') AS team1",
	"COALESCE(team2, '') AS team2",
	"COALESCE(venue, '') AS venue",
	"COALESCE(venue_city, '') AS venue_city",
	"start_date",
	"COALESCE(status, '') AS status",
	"COALESCE(state, '') AS state",
}

var combinedMatchSelectColumns = []string{
	"match_id",
	"COALESCE(cricbuzz_match_id, 0) AS cricbuzz_match_id",
	"COALESCE(team1, '') AS team1",
	"COALESCE(team2, '') AS team2",
	"COALESCE(match_winner, '') AS match_winner",
	"COALESCE(win_margin, '') AS win_margin",
	"COALESCE(format, '') AS format",
	"COALESCE(venue, '') AS venue",
	"match_date",
	"COALESCE(toss_winner, '') AS toss_winner",
	"COALESCE(toss_decision, '') AS toss_decision",
}

var (
	recentMatchUpsertTarget = upsertTarget{
		Table: "recent_matches",
		PK:    "match_id",
		Keys:  []string{"team1", "team2", "start_date"},
	}
	combinedMatchUpsertTarget = upsertTarget{
		Table: "combined_matches",
		PK:    "match_id",
		Keys:  []string{"team1", "team2", "match_date"},
	}
)
