package scorecard

const DefaultFormat = "ODI"

// Batting is one batting_data row. Natural key is (MatchID, PlayerID, InningsNo).
type Batting struct {
	ID         int64
	MatchID    int64
	PlayerID   int64
	PlayerName string
	Runs       int64
	Balls      int64
	StrikeRate float64
	Dismissal  string
	Team       string
	InningsNo  int64
}

// Bowling is one bowling_data row. Natural key is (MatchID, PlayerID).
type Bowling struct {
	ID           int64
	MatchID      int64
	PlayerID     int64
	PlayerName   string
	Overs        float64
	RunsConceded int64
	Wickets      int64
	EconomyRate  float64
	Format       string
}

// Fielding is one fielding_data row. Natural key is (MatchID, PlayerID).
type Fielding struct {
	ID        int64
	MatchID   int64
	PlayerID  int64
	Catches   int64
	Stumpings int64
	RunOuts   int64
	Format    string
}

// Card is a normalized provider scorecard. Entries carry player names only;
// match and player ids are resolved by the caller before storing.
type Card struct {
	Format  string
	Batting []Batting
	Bowling []Bowling
}

// Leader is one leaderboard line.
type Leader struct {
	PlayerID   int64
	PlayerName string
	Total      int64
	Matches    int64
}
