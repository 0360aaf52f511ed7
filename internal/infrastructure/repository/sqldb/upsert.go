package sqldb

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"
	qb "github.com/riskibarqy/cricket-stats/internal/platform/querybuilder"
)

// upsertTarget declares how a table is matched on its natural key.
type upsertTarget struct {
	Table string
	PK    string
	Keys  []string
	// AnyKey matches a row when any key column is equal instead of all of them.
	// The key columns are then rewritten on update as well.
	AnyKey bool
	// InsertOnly columns are written on insert and left alone on update.
	InsertOnly []string
}

// upsert looks the row up by natural key, updates it in place when found and
// inserts it otherwise. Last write wins; there is no field merge. The model's
// db-tagged fields define the written columns and the primary key field, if
// present, is ignored.
func upsert(ctx context.Context, db sqlx.ExtContext, target upsertTarget, model any) (int64, bool, error) {
	cols, vals, err := qb.ColumnValues(model)
	if err != nil {
		return 0, false, fmt.Errorf("read %s model columns: %w", target.Table, err)
	}

	values := make(map[string]any, len(cols))
	writeCols := make([]string, 0, len(cols))
	writeVals := make([]any, 0, len(cols))
	for i, col := range cols {
		if col == target.PK {
			continue
		}
		values[col] = vals[i]
		writeCols = append(writeCols, col)
		writeVals = append(writeVals, vals[i])
	}

	keyConds := make([]qb.Condition, 0, len(target.Keys))
	for _, key := range target.Keys {
		value, ok := values[key]
		if !ok {
			return 0, false, fmt.Errorf("%s model has no key column %s", target.Table, key)
		}
		keyConds = append(keyConds, qb.Eq(key, value))
	}
	if target.AnyKey {
		keyConds = []qb.Condition{qb.Any(keyConds...)}
	}

	query, args, err := qb.Select(target.PK).From(target.Table).
		Where(keyConds...).
		OrderBy(target.PK).
		Limit(1).
		ToSQL()
	if err != nil {
		return 0, false, fmt.Errorf("build select %s by natural key query: %w", target.Table, err)
	}

	var id int64
	err = sqlx.GetContext(ctx, db, &id, db.Rebind(query), args...)
	switch {
	case err == nil:
		if err := updateByPK(ctx, db, target, id, writeCols, values); err != nil {
			return 0, false, err
		}
		return id, false, nil
	case isNotFound(err):
	default:
		return 0, false, fmt.Errorf("select %s by natural key: %w", target.Table, err)
	}

	query, args, err = qb.InsertInto(target.Table).
		Columns(writeCols...).
		Values(writeVals...).
		Suffix("RETURNING " + target.PK).
		ToSQL()
	if err != nil {
		return 0, false, fmt.Errorf("build insert %s query: %w", target.Table, err)
	}

	if err := sqlx.GetContext(ctx, db, &id, db.Rebind(query), args...); err != nil {
		if isUniqueViolation(err) {
			return 0, false, fmt.Errorf("insert %s: %w: %w", target.Table, ErrDuplicateKey, err)
		}
		return 0, false, fmt.Errorf("insert %s: %w", target.Table, err)
	}

	return id, true, nil
}

func updateByPK(ctx context.Context, db sqlx.ExtContext, target upsertTarget, id int64, cols []string, values map[string]any) error {
	skip := make(map[string]struct{}, len(target.Keys)+len(target.InsertOnly))
	for _, col := range target.InsertOnly {
		skip[col] = struct{}{}
	}
	if !target.AnyKey {
		for _, col := range target.Keys {
			skip[col] = struct{}{}
		}
	}

	builder := qb.Update(target.Table)
	sets := 0
	for _, col := range cols {
		if _, ok := skip[col]; ok {
			continue
		}
		builder.Set(col, values[col])
		sets++
	}
	if sets == 0 {
		return nil
	}

	query, args, err := builder.Where(qb.Eq(target.PK, id)).ToSQL()
	if err != nil {
		return fmt.Errorf("build update %s query: %w", target.Table, err)
	}
	if _, err := db.ExecContext(ctx, db.Rebind(query), args...); err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("update %s %d: %w: %w", target.Table, id, ErrDuplicateKey, err)
		}
		return fmt.Errorf("update %s %d: %w", target.Table, id, err)
	}

	return nil
}

// insertReturning appends a row and returns its generated key.
func insertReturning(ctx context.Context, db sqlx.ExtContext, table, pk string, model any) (int64, error) {
	query, args, err := qb.InsertModel(table, model, "RETURNING "+pk)
	if err != nil {
		return 0, fmt.Errorf("build insert %s query: %w", table, err)
	}

	var id int64
	if err := sqlx.GetContext(ctx, db, &id, db.Rebind(query), args...); err != nil {
		return 0, fmt.Errorf("insert %s: %w", table, err)
	}

	return id, nil
}
