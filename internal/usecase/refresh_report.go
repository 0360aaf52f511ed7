package usecase

import (
	"fmt"
	"time"
)

const (
	RefreshStatusSuccess = "success"
	RefreshStatusFailed  = "failed"
)

// RefreshReport describes one ingestion run.
type RefreshReport struct {
	RunID      string
	Status     string
	StartedAt  time.Time
	FinishedAt time.Time

	MatchesInserted   int
	MatchesUpdated    int
	MatchesSkipped    int
	PlayersInserted   int
	PlayersUpdated    int
	ScorecardsFetched int
	BattingInserted   int
	BowlingInserted   int

	TotalPlayers int64
	TotalMatches int64

	Errors []string
	// Output is the human-readable run log.
	Output string
}

func (r *RefreshReport) AddErrorf(format string, args ...any) {
	r.Errors = append(r.Errors, fmt.Sprintf(format, args...))
}

func (r RefreshReport) Duration() time.Duration {
	if r.FinishedAt.IsZero() {
		return 0
	}
	return r.FinishedAt.Sub(r.StartedAt)
}

func (r RefreshReport) Summary() string {
	return fmt.Sprintf(
		"status=%s matches=%d/%d skipped=%d players=%d/%d scorecards=%d batting=%d bowling=%d errors=%d",
		r.Status,
		r.MatchesInserted, r.MatchesUpdated,
		r.MatchesSkipped,
		r.PlayersInserted, r.PlayersUpdated,
		r.ScorecardsFetched,
		r.BattingInserted, r.BowlingInserted,
		len(r.Errors),
	)
}
