package match

import "context"

// Repository covers both match projections. Every ingested match is written
// to each projection separately and each assigns its own id.
type Repository interface {
	UpsertRecent(ctx context.Context, item Recent) (id int64, inserted bool, err error)
	UpsertCombined(ctx context.Context, item Combined) (id int64, inserted bool, err error)
	ListScorecardTargets(ctx context.Context, limit int) ([]ScorecardTarget, error)
	ListLive(ctx context.Context, limit int) ([]Recent, error)
	ListRecent(ctx context.Context, limit int) ([]Combined, error)
	Count(ctx context.Context) (int64, error)
}
