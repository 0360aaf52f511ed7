package usecase

import (
	"context"
	"fmt"
	"slices"
	"strings"
	"time"
	"unicode"

	"github.com/riskibarqy/cricket-stats/internal/domain/console"
	"github.com/riskibarqy/cricket-stats/internal/platform/cache"
)

const (
	consoleFetchDefaultLimit = 200
	consoleFetchMaxLimit     = 200

	consoleTablesKey     = "tables"
	consoleColumnsPrefix = "columns:"
)

// ConsoleService is the operator query and CRUD surface. Update and delete
// fragments are passed to the store as raw SQL; only the guard checks and the
// identifier allow-list stand between the caller and the database, so it must
// sit behind admin authentication.
type ConsoleService struct {
	repo    console.Repository
	tables  *cache.Store[[]string]
	columns *cache.Store[[]console.Column]
}

func NewConsoleService(repo console.Repository, schemaTTL time.Duration) *ConsoleService {
	return &ConsoleService{
		repo:    repo,
		tables:  cache.NewStore[[]string](schemaTTL),
		columns: cache.NewStore[[]console.Column](schemaTTL),
	}
}

func (s *ConsoleService) RunSelect(ctx context.Context, statement string) (console.ResultSet, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.ConsoleService.RunSelect")
	defer span.End()

	statement = strings.TrimSpace(statement)
	if !strings.HasPrefix(strings.ToLower(statement), "select") {
		return console.ResultSet{}, fmt.Errorf("%w: only SELECT queries are allowed", ErrInvalidInput)
	}
	if hasStackedStatement(statement) {
		return console.ResultSet{}, fmt.Errorf("%w: only a single statement is allowed", ErrInvalidInput)
	}

	result, err := s.repo.Query(ctx, statement)
	if err != nil {
		return console.ResultSet{}, fmt.Errorf("run select: %w", err)
	}
	return result, nil
}

func (s *ConsoleService) InsertRow(ctx context.Context, table string, values map[string]any) (console.WriteResult, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.ConsoleService.InsertRow")
	defer span.End()

	if len(values) == 0 {
		return console.WriteResult{}, fmt.Errorf("%w: no values to insert", ErrInvalidInput)
	}
	table, err := s.resolveTable(ctx, table)
	if err != nil {
		return console.WriteResult{}, err
	}

	columns, err := s.describe(ctx, table)
	if err != nil {
		return console.WriteResult{}, err
	}
	for name := range values {
		if !slices.ContainsFunc(columns, func(c console.Column) bool { return c.Name == name }) {
			return console.WriteResult{}, fmt.Errorf("%w: unknown column %q on %s", ErrInvalidInput, name, table)
		}
	}

	result, err := s.repo.Insert(ctx, table, values)
	if err != nil {
		return console.WriteResult{}, fmt.Errorf("insert into %s: %w", table, err)
	}
	return result, nil
}

func (s *ConsoleService) UpdateRows(ctx context.Context, table, set, where string) (console.WriteResult, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.ConsoleService.UpdateRows")
	defer span.End()

	set = strings.TrimSpace(set)
	where = strings.TrimSpace(where)
	if set == "" {
		return console.WriteResult{}, fmt.Errorf("%w: set clause is required", ErrInvalidInput)
	}
	if where == "" {
		return console.WriteResult{}, fmt.Errorf("%w: where clause is required", ErrInvalidInput)
	}
	table, err := s.resolveTable(ctx, table)
	if err != nil {
		return console.WriteResult{}, err
	}

	result, err := s.repo.Update(ctx, table, set, where)
	if err != nil {
		return console.WriteResult{}, fmt.Errorf("update %s: %w", table, err)
	}
	return result, nil
}

func (s *ConsoleService) DeleteRows(ctx context.Context, table, where string) (console.WriteResult, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.ConsoleService.DeleteRows")
	defer span.End()

	where = strings.TrimSpace(where)
	if where == "" {
		return console.WriteResult{}, fmt.Errorf("%w: where clause is required", ErrInvalidInput)
	}
	table, err := s.resolveTable(ctx, table)
	if err != nil {
		return console.WriteResult{}, err
	}

	result, err := s.repo.Delete(ctx, table, where)
	if err != nil {
		return console.WriteResult{}, fmt.Errorf("delete from %s: %w", table, err)
	}
	return result, nil
}

func (s *ConsoleService) ListTables(ctx context.Context) ([]string, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.ConsoleService.ListTables")
	defer span.End()

	return s.listTables(ctx)
}

func (s *ConsoleService) DescribeTable(ctx context.Context, table string) ([]console.Column, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.ConsoleService.DescribeTable")
	defer span.End()

	table, err := s.resolveTable(ctx, table)
	if err != nil {
		return nil, err
	}
	return s.describe(ctx, table)
}

// FetchTable returns up to limit rows; limit is clamped to 1..200 and
// defaults to 200.
func (s *ConsoleService) FetchTable(ctx context.Context, table string, limit int) (console.ResultSet, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.ConsoleService.FetchTable")
	defer span.End()

	table, err := s.resolveTable(ctx, table)
	if err != nil {
		return console.ResultSet{}, err
	}

	result, err := s.repo.Fetch(ctx, table, clampLimit(limit, consoleFetchDefaultLimit, consoleFetchMaxLimit))
	if err != nil {
		return console.ResultSet{}, fmt.Errorf("fetch %s: %w", table, err)
	}
	return result, nil
}

// ForgetSchema drops the cached allow-list so the next call re-reads it.
func (s *ConsoleService) ForgetSchema(ctx context.Context) {
	s.tables.Delete(ctx, consoleTablesKey)
	s.columns.DeletePrefix(ctx, consoleColumnsPrefix)
}

// resolveTable checks table against the allow-list. A miss reloads the list
// once, since tables may have been created after it was cached.
func (s *ConsoleService) resolveTable(ctx context.Context, table string) (string, error) {
	table = strings.TrimSpace(table)
	if table == "" {
		return "", fmt.Errorf("%w: table is required", ErrInvalidInput)
	}

	for attempt := 0; attempt < 2; attempt++ {
		tables, err := s.listTables(ctx)
		if err != nil {
			return "", err
		}
		if slices.Contains(tables, table) {
			return table, nil
		}
		if attempt == 0 {
			s.ForgetSchema(ctx)
		}
	}
	return "", fmt.Errorf("%w: unknown table %q", ErrNotFound, table)
}

func (s *ConsoleService) listTables(ctx context.Context) ([]string, error) {
	tables, err := s.tables.GetOrLoad(ctx, consoleTablesKey, s.repo.ListTables)
	if err != nil {
		return nil, fmt.Errorf("list tables: %w", err)
	}
	return tables, nil
}

func (s *ConsoleService) describe(ctx context.Context, table string) ([]console.Column, error) {
	columns, err := s.columns.GetOrLoad(ctx, consoleColumnsPrefix+table, func(ctx context.Context) ([]console.Column, error) {
		return s.repo.DescribeTable(ctx, table)
	})
	if err != nil {
		return nil, fmt.Errorf("describe %s: %w", table, err)
	}
	return columns, nil
}

func clampLimit(limit, fallback, maximum int) int {
	if limit <= 0 {
		return fallback
	}
	return min(limit, maximum)
}

// hasStackedStatement reports whether a ';' outside quoted text is followed by
// anything other than whitespace or further semicolons.
func hasStackedStatement(statement string) bool {
	var quote rune
	terminated := false
	for _, ch := range statement {
		switch {
		case quote != 0:
			if ch == quote {
				quote = 0
			}
		case terminated:
			if ch != ';' && !unicode.IsSpace(ch) {
				return true
			}
		case ch == '\'' || ch == '"' || ch == '`':
			quote = ch
		case ch == ';':
			terminated = true
		}
	}
	return false
}
