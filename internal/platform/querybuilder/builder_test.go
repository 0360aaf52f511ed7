package querybuilder

import "testing"

func TestSelectBuilder(t *testing.T) {
	query, args, err := Select("player_id").
		From("players").
		Where(Any(Eq("name", "Virat Kohli"), Eq("full_name", "Virat Kohli")), IsNull("team_id")).
		OrderBy("player_id").
		Limit(1).
		ToSQL()
	if err != nil {
		t.Fatalf("build select query: %v", err)
	}

	wantQuery := "SELECT player_id FROM players WHERE (name = ? OR full_name = ?) AND team_id IS NULL ORDER BY player_id LIMIT 1"
	if query != wantQuery {
		t.Fatalf("unexpected query:\nwant: %s\ngot:  %s", wantQuery, query)
	}
	if len(args) != 2 || args[0] != "Virat Kohli" || args[1] != "Virat Kohli" {
		t.Fatalf("unexpected args: %+v", args)
	}
}

func TestSelectBuilder_LikeAndGroupBy(t *testing.T) {
	query, args, err := Select("player_id", "SUM(runs) AS runs").
		From("batting_data").
		Where(Like("player_name", "%Root%")).
		GroupBy("player_id").
		OrderBy("runs DESC").
		ToSQL()
	if err != nil {
		t.Fatalf("build select query: %v", err)
	}

	wantQuery := "SELECT player_id, SUM(runs) AS runs FROM batting_data WHERE player_name LIKE ? GROUP BY player_id ORDER BY runs DESC"
	if query != wantQuery {
		t.Fatalf("unexpected query:\nwant: %s\ngot:  %s", wantQuery, query)
	}
	if len(args) != 1 || args[0] != "%Root%" {
		t.Fatalf("unexpected args: %+v", args)
	}
}

func TestAnyCondition_Empty(t *testing.T) {
	query, _, err := Select("venue_id").From("venues").Where(Any()).ToSQL()
	if err != nil {
		t.Fatalf("build select query: %v", err)
	}
	if query != "SELECT venue_id FROM venues WHERE 1=0" {
		t.Fatalf("unexpected query: %s", query)
	}
}

func TestInsertBuilder(t *testing.T) {
	query, args, err := InsertInto("recent_matches").
		Columns("team1", "team2").
		Values("India", "Australia").
		Suffix("RETURNING match_id").
		ToSQL()
	if err != nil {
		t.Fatalf("build insert query: %v", err)
	}

	wantQuery := "INSERT INTO recent_matches (team1, team2) VALUES (?, ?) RETURNING match_id"
	if query != wantQuery {
		t.Fatalf("unexpected query:\nwant: %s\ngot:  %s", wantQuery, query)
	}
	if len(args) != 2 || args[0] != "India" || args[1] != "Australia" {
		t.Fatalf("unexpected args: %+v", args)
	}
}

func TestInsertBuilder_RowLengthMismatch(t *testing.T) {
	_, _, err := InsertInto("venues").Columns("venue_name", "city").Values("MCG").ToSQL()
	if err == nil {
		t.Fatalf("expected error for short row")
	}
}

func TestUpdateBuilder(t *testing.T) {
	query, args, err := Update("combined_matches").
		Set("match_winner", "India").
		Set("win_margin", "5 wickets").
		Where(Eq("match_id", int64(7))).
		ToSQL()
	if err != nil {
		t.Fatalf("build update query: %v", err)
	}

	wantQuery := "UPDATE combined_matches SET match_winner = ?, win_margin = ? WHERE match_id = ?"
	if query != wantQuery {
		t.Fatalf("unexpected query:\nwant: %s\ngot:  %s", wantQuery, query)
	}
	if len(args) != 3 || args[0] != "India" || args[1] != "5 wickets" || args[2] != int64(7) {
		t.Fatalf("unexpected args: %+v", args)
	}
}

func TestInsertModel(t *testing.T) {
	type venueRow struct {
		ID       int64  `db:"-"`
		Name     string `db:"venue_name"`
		City     string `db:"city"`
		internal string
		Capacity string `db:"capacity,omitempty"`
	}

	query, args, err := InsertModel("venues", &venueRow{ID: 9, Name: "Eden Gardens", City: "Kolkata", Capacity: "66000"}, "")
	if err != nil {
		t.Fatalf("build insert model query: %v", err)
	}

	wantQuery := "INSERT INTO venues (venue_name, city, capacity) VALUES (?, ?, ?)"
	if query != wantQuery {
		t.Fatalf("unexpected query:\nwant: %s\ngot:  %s", wantQuery, query)
	}
	if len(args) != 3 || args[0] != "Eden Gardens" || args[2] != "66000" {
		t.Fatalf("unexpected args: %+v", args)
	}
}

func TestColumnValues_RejectsNonStruct(t *testing.T) {
	if _, _, err := ColumnValues(42); err == nil {
		t.Fatalf("expected error for non-struct model")
	}
	var nilModel *struct{}
	if _, _, err := ColumnValues(nilModel); err == nil {
		t.Fatalf("expected error for nil model")
	}
}
