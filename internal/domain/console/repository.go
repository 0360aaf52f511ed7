package console

import "context"

// Repository executes operator statements. Callers validate identifiers and
// guard clauses before reaching it; set and where fragments are interpolated
// as given.
type Repository interface {
	Query(ctx context.Context, statement string) (ResultSet, error)
	Insert(ctx context.Context, table string, values map[string]any) (WriteResult, error)
	Update(ctx context.Context, table, set, where string) (WriteResult, error)
	Delete(ctx context.Context, table, where string) (WriteResult, error)
	Fetch(ctx context.Context, table string, limit int) (ResultSet, error)
	ListTables(ctx context.Context) ([]string, error)
	DescribeTable(ctx context.Context, table string) ([]Column, error)
}
