package sqldb

import "database/sql"

type battingTableModel struct {
	ID         int64         `db:"batting_id"`
	MatchID    int64         `db:"match_id"`
	PlayerID   sql.NullInt64 `db:"player_id"`
	PlayerName string        `db:"player_name"`
	Runs       int64         `db:"runs"`
	Balls      int64         `db:"balls"`
	StrikeRate float64       `db:"strike_rate"`
	Dismissal  string        `db:"dismissal"`
	Team       string        `db:"team"`
	InningsNo  int64         `db:"innings_no"`
}

type bowlingTableModel struct {
	ID           int64         `db:"bowling_id"`
	MatchID      int64         `db:"match_id"`
	PlayerID     sql.NullInt64 `db:"player_id"`
	PlayerName   string        `db:"player_name"`
	Overs        float64       `db:"overs"`
	RunsConceded int64         `db:"runs_conceded"`
	Wickets      int64         `db:"wickets"`
	EconomyRate  float64       `db:"economy_rate"`
	Format       string        `db:"format"`
}

type fieldingTableModel struct {
	ID        int64         `db:"fielding_id"`
	MatchID   int64         `db:"match_id"`
	PlayerID  sql.NullInt64 `db:"player_id"`
	Catches   int64         `db:"catches"`
	Stumpings int64         `db:"stumpings"`
	RunOuts   int64         `db:"run_outs"`
	Format    string        `db:"format"`
}

type leaderModel struct {
	PlayerID   int64  `db:"player_id"`
	PlayerName string `db:"player_name"`
	Total      int64  `db:"total"`
	Matches    int64  `db:"matches"`
}

var (
	battingUpsertTarget = upsertTarget{
		Table: "batting_data",
		PK:    "batting_id",
		Keys:  []string{"match_id", "player_id", "innings_no"},
	}
	bowlingUpsertTarget = upsertTarget{
		Table: "bowling_data",
		PK:    "bowling_id",
		Keys:  []string{"match_id", "player_id"},
	}
	// fielding_data has no UNIQUE constraint; the key is only enforced here.
	fieldingUpsertTarget = upsertTarget{
		Table: "fielding_data",
		PK:    "fielding_id",
		Keys:  []string{"match_id", "player_id"},
	}
)

func nullID(id int64) sql.NullInt64 {
	return sql.NullInt64{Int64: id, Valid: id > 0}
}
