package httpapi

import (
	"time"

	"github.com/riskibarqy/cricket-stats/internal/domain/console"
	"github.com/riskibarqy/cricket-stats/internal/domain/match"
	"github.com/riskibarqy/cricket-stats/internal/domain/player"
	"github.com/riskibarqy/cricket-stats/internal/domain/scorecard"
	"github.com/riskibarqy/cricket-stats/internal/usecase"
)

type overviewDTO struct {
	Players int64 `json:"players"`
	Matches int64 `json:"matches"`
}

type liveMatchDTO struct {
	ID          int64  `json:"id"`
	ProviderID  int64  `json:"match_id"`
	Description string `json:"description"`
	Team1       string `json:"team1"`
	Team2       string `json:"team2"`
	Venue       string `json:"venue"`
	VenueCity   string `json:"venue_city"`
	StartDate   string `json:"start_date"`
	Status      string `json:"status"`
	State       string `json:"state"`
}

type recentMatchDTO struct {
	ID           int64  `json:"id"`
	ProviderID   int64  `json:"match_id"`
	Team1        string `json:"team1"`
	Team2        string `json:"team2"`
	Winner       string `json:"winner"`
	Margin       string `json:"margin"`
	Format       string `json:"format"`
	Venue        string `json:"venue"`
	MatchDate    string `json:"match_date"`
	TossWinner   string `json:"toss_winner"`
	TossDecision string `json:"toss_decision"`
}

type leaderDTO struct {
	PlayerID   int64  `json:"player_id"`
	PlayerName string `json:"player_name"`
	Total      int64  `json:"total"`
	Matches    int64  `json:"matches"`
}

type playerDTO struct {
	ID           int64  `json:"id"`
	Name         string `json:"name"`
	FullName     string `json:"full_name"`
	Country      string `json:"country"`
	PlayingRole  string `json:"playing_role"`
	BattingStyle string `json:"batting_style"`
	BowlingStyle string `json:"bowling_style"`
	TotalRuns    int64  `json:"total_runs"`
	TotalWickets int64  `json:"total_wickets"`
	TeamID       int64  `json:"team_id,omitempty"`
}

type refreshReportDTO struct {
	RunID             string   `json:"run_id"`
	Status            string   `json:"status"`
	StartedAt         string   `json:"started_at"`
	FinishedAt        string   `json:"finished_at"`
	DurationMS        int64    `json:"duration_ms"`
	MatchesInserted   int      `json:"matches_inserted"`
	MatchesUpdated    int      `json:"matches_updated"`
	MatchesSkipped    int      `json:"matches_skipped"`
	PlayersInserted   int      `json:"players_inserted"`
	PlayersUpdated    int      `json:"players_updated"`
	ScorecardsFetched int      `json:"scorecards_fetched"`
	BattingInserted   int      `json:"batting_inserted"`
	BowlingInserted   int      `json:"bowling_inserted"`
	TotalPlayers      int64    `json:"total_players"`
	TotalMatches      int64    `json:"total_matches"`
	Errors            []string `json:"errors"`
	Output            string   `json:"output"`
}

type resultSetDTO struct {
	Columns   []string `json:"columns"`
	Rows      [][]any  `json:"rows"`
	RowCount  int      `json:"row_count"`
	Statement string   `json:"statement"`
}

type writeResultDTO struct {
	Affected  int64  `json:"affected"`
	Statement string `json:"statement"`
}

type columnDTO struct {
	Name     string `json:"name"`
	Type     string `json:"type"`
	Nullable bool   `json:"nullable"`
	Key      string `json:"key,omitempty"`
	Default  string `json:"default,omitempty"`
}

type tableDTO struct {
	Name    string      `json:"name"`
	Columns []columnDTO `json:"columns"`
}

type queryRequest struct {
	Query string `json:"query" validate:"required,max=10000"`
}

type insertRowRequest struct {
	Values map[string]any `json:"values" validate:"required,min=1"`
}

type updateRowsRequest struct {
	Set   string `json:"set" validate:"required,max=4000"`
	Where string `json:"where" validate:"required,max=4000"`
}

// The empty-where guard lives in the service, so where is not required here.
type deleteRowsRequest struct {
	Where string `json:"where" validate:"max=4000"`
}

func overviewToDTO(o usecase.Overview) overviewDTO {
	return overviewDTO{Players: o.Players, Matches: o.Matches}
}

func liveMatchToDTO(m match.Recent) liveMatchDTO {
	return liveMatchDTO{
		ID:          m.ID,
		ProviderID:  m.ProviderID,
		Description: m.Description,
		Team1:       m.Team1,
		Team2:       m.Team2,
		Venue:       m.Venue,
		VenueCity:   m.VenueCity,
		StartDate:   m.StartDate.String(),
		Status:      m.Status,
		State:       m.State,
	}
}

func recentMatchToDTO(m match.Combined) recentMatchDTO {
	return recentMatchDTO{
		ID:           m.ID,
		ProviderID:   m.ProviderID,
		Team1:        m.Team1,
		Team2:        m.Team2,
		Winner:       m.Winner,
		Margin:       m.Margin,
		Format:       m.Format,
		Venue:        m.Venue,
		MatchDate:    m.MatchDate.String(),
		TossWinner:   m.TossWinner,
		TossDecision: m.TossDecision,
	}
}

func leaderToDTO(l scorecard.Leader) leaderDTO {
	return leaderDTO{
		PlayerID:   l.PlayerID,
		PlayerName: l.PlayerName,
		Total:      l.Total,
		Matches:    l.Matches,
	}
}

func playerToDTO(p player.Player) playerDTO {
	return playerDTO{
		ID:           p.ID,
		Name:         p.Name,
		FullName:     p.FullName,
		Country:      p.Country,
		PlayingRole:  p.PlayingRole,
		BattingStyle: p.BattingStyle,
		BowlingStyle: p.BowlingStyle,
		TotalRuns:    p.TotalRuns,
		TotalWickets: p.TotalWickets,
		TeamID:       p.TeamID,
	}
}

func refreshReportToDTO(r usecase.RefreshReport) refreshReportDTO {
	errs := r.Errors
	if errs == nil {
		errs = []string{}
	}

	return refreshReportDTO{
		RunID:             r.RunID,
		Status:            r.Status,
		StartedAt:         formatTime(r.StartedAt),
		FinishedAt:        formatTime(r.FinishedAt),
		DurationMS:        r.Duration().Milliseconds(),
		MatchesInserted:   r.MatchesInserted,
		MatchesUpdated:    r.MatchesUpdated,
		MatchesSkipped:    r.MatchesSkipped,
		PlayersInserted:   r.PlayersInserted,
		PlayersUpdated:    r.PlayersUpdated,
		ScorecardsFetched: r.ScorecardsFetched,
		BattingInserted:   r.BattingInserted,
		BowlingInserted:   r.BowlingInserted,
		TotalPlayers:      r.TotalPlayers,
		TotalMatches:      r.TotalMatches,
		Errors:            errs,
		Output:            r.Output,
	}
}

func resultSetToDTO(rs console.ResultSet) resultSetDTO {
	columns := rs.Columns
	if columns == nil {
		columns = []string{}
	}
	rows := rs.Rows
	if rows == nil {
		rows = [][]any{}
	}

	return resultSetDTO{
		Columns:   columns,
		Rows:      rows,
		RowCount:  len(rows),
		Statement: rs.Statement,
	}
}

func writeResultToDTO(res console.WriteResult) writeResultDTO {
	return writeResultDTO{Affected: res.Affected, Statement: res.Statement}
}

func tableToDTO(name string, columns []console.Column) tableDTO {
	items := make([]columnDTO, 0, len(columns))
	for _, c := range columns {
		items = append(items, columnDTO{
			Name:     c.Name,
			Type:     c.Type,
			Nullable: c.Nullable,
			Key:      c.Key,
			Default:  c.Default,
		})
	}
	return tableDTO{Name: name, Columns: items}
}

func formatTime(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.UTC().Format(time.RFC3339)
}
