package scorecard

import "context"

// Repository persists per-match performance rows.
type Repository interface {
	// UpsertBatting writes records one at a time. Failed records are logged and
	// skipped; the result counts newly inserted rows only.
	UpsertBatting(ctx context.Context, records []Batting) (int, error)
	UpsertBowling(ctx context.Context, records []Bowling) (int, error)
	UpsertFielding(ctx context.Context, item Fielding) (id int64, inserted bool, err error)
	TopBatters(ctx context.Context, limit int) ([]Leader, error)
	TopBowlers(ctx context.Context, limit int) ([]Leader, error)
}
