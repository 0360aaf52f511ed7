package player

import "context"

// Repository describes player persistence needs from use cases.
type Repository interface {
	// Upsert matches an existing row by name OR full name, updates it in place
	// and returns its id, or inserts a new row.
	Upsert(ctx context.Context, item Player) (id int64, inserted bool, err error)
	// FindIDByName resolves a scorecard name with a substring match.
	FindIDByName(ctx context.Context, name string) (int64, bool, error)
	List(ctx context.Context, limit int) ([]Player, error)
	Count(ctx context.Context) (int64, error)
}
