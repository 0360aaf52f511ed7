package match

import (
	"strings"
)

// StateComplete is the stateTitle the provider reports for finished matches.
const StateComplete = "Complete"

// Match is one normalized provider match before it is split into the recent
// and combined projections.
type Match struct {
	ProviderID   int64
	Description  string
	Format       string
	Status       string
	State        string
	Team1        string
	Team2        string
	Venue        string
	VenueCity    string
	Date         Date
	Winner       string
	Margin       string
	TossWinner   string
	TossDecision string
}

// Recent is a recent_matches row. Natural key is (Team1, Team2, StartDate).
type Recent struct {
	ID          int64
	ProviderID  int64
	Description string
	Team1       string
	Team2       string
	Venue       string
	VenueCity   string
	StartDate   Date
	Status      string
	State       string
}

// Combined is a combined_matches row. Natural key is (Team1, Team2, MatchDate).
type Combined struct {
	ID           int64
	ProviderID   int64
	Team1        string
	Team2        string
	Winner       string
	Margin       string
	Format       string
	Venue        string
	MatchDate    Date
	TossWinner   string
	TossDecision string
}

// ScorecardTarget is a stored match whose scorecard can be fetched.
type ScorecardTarget struct {
	MatchID    int64
	ProviderID int64
	Format     string
}

// FetchID is the id sent to the provider. Rows ingested without a provider id
// fall back to the local id.
func (t ScorecardTarget) FetchID() int64 {
	if t.ProviderID > 0 {
		return t.ProviderID
	}
	return t.MatchID
}

func (m Match) Recent() Recent {
	return Recent{
		ProviderID:  m.ProviderID,
		Description: m.Description,
		Team1:       m.Team1,
		Team2:       m.Team2,
		Venue:       m.Venue,
		VenueCity:   m.VenueCity,
		StartDate:   m.Date,
		Status:      m.Status,
		State:       m.State,
	}
}

func (m Match) Combined() Combined {
	return Combined{
		ProviderID:   m.ProviderID,
		Team1:        m.Team1,
		Team2:        m.Team2,
		Winner:       m.Winner,
		Margin:       m.Margin,
		Format:       m.Format,
		Venue:        m.Venue,
		MatchDate:    m.Date,
		TossWinner:   m.TossWinner,
		TossDecision: m.TossDecision,
	}
}

// IsLive reports whether the row still belongs on the live board.
func (r Recent) IsLive() bool {
	return !strings.EqualFold(strings.TrimSpace(r.State), StateComplete)
}

// ParseOutcome splits a status like "India won by 5 wickets" into winner and
// margin. Anything that does not split into exactly two parts yields empty
// strings.
func ParseOutcome(status string) (winner, margin string) {
	if !strings.Contains(strings.ToLower(status), "won by") {
		return "", ""
	}

	parts := strings.Split(status, " won by ")
	if len(parts) != 2 {
		return "", ""
	}

	return strings.TrimSpace(parts[0]), strings.TrimSpace(parts[1])
}
