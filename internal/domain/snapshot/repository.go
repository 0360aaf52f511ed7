package snapshot

import "context"

// Repository appends snapshot rows and returns the assigned id.
type Repository interface {
	InsertTeam(ctx context.Context, item Team) (int64, error)
	InsertVenue(ctx context.Context, item Venue) (int64, error)
	InsertTopODIRun(ctx context.Context, item TopODIRun) (int64, error)
	InsertSeriesMatch(ctx context.Context, item SeriesMatch) (int64, error)
	InsertPlayerStat(ctx context.Context, item PlayerStat) (int64, error)
	InsertPartnership(ctx context.Context, item Partnership) (int64, error)
	InsertBowlerVenue(ctx context.Context, item BowlerVenue) (int64, error)
	InsertBatterInnings(ctx context.Context, item BatterInnings) (int64, error)
}
