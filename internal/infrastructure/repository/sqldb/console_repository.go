package sqldb

import (
	"context"
	"database/sql"
	"database/sql/driver"
	"fmt"
	"sort"
	"strconv"

	"github.com/jmoiron/sqlx"
	"github.com/riskibarqy/cricket-stats/internal/domain/console"
	qb "github.com/riskibarqy/cricket-stats/internal/platform/querybuilder"
)

// ConsoleRepository runs operator-authored statements. Table and column names
// reaching it must already be validated against ListTables and DescribeTable;
// SET and WHERE fragments are executed verbatim.
type ConsoleRepository struct {
	db      *sqlx.DB
	dialect Dialect
}

func NewConsoleRepository(db *sqlx.DB) *ConsoleRepository {
	return &ConsoleRepository{db: db, dialect: dialectOf(db)}
}

// Query runs a read statement. Postgres prepares it inside a read-only
// transaction that is always rolled back; a prepared statement cannot carry a
// second command. sqlite runs it on a pinned connection with query_only set.
func (r *ConsoleRepository) Query(ctx context.Context, statement string) (console.ResultSet, error) {
	if !r.dialect.ReadOnlyTx {
		return r.queryOnly(ctx, statement)
	}

	tx, err := r.db.BeginTxx(ctx, &sql.TxOptions{ReadOnly: true})
	if err != nil {
		return console.ResultSet{}, fmt.Errorf("begin read-only tx: %w", err)
	}
	defer func() {
		_ = tx.Rollback()
	}()

	stmt, err := tx.PreparexContext(ctx, statement)
	if err != nil {
		return console.ResultSet{}, fmt.Errorf("prepare query: %w", err)
	}
	defer stmt.Close()

	rows, err := stmt.QueryxContext(ctx)
	if err != nil {
		return console.ResultSet{}, fmt.Errorf("run query: %w", err)
	}
	return collectRows(rows, statement)
}

func (r *ConsoleRepository) queryOnly(ctx context.Context, statement string) (console.ResultSet, error) {
	conn, err := r.db.Connx(ctx)
	if err != nil {
		return console.ResultSet{}, fmt.Errorf("acquire connection: %w", err)
	}
	defer conn.Close()

	if _, err := conn.ExecContext(ctx, "PRAGMA query_only = ON"); err != nil {
		return console.ResultSet{}, fmt.Errorf("enable query_only: %w", err)
	}
	defer func() {
		if _, err := conn.ExecContext(context.WithoutCancel(ctx), "PRAGMA query_only = OFF"); err != nil {
			// A connection left read-only must not go back to the pool.
			_ = conn.Raw(func(any) error { return driver.ErrBadConn })
		}
	}()

	rows, err := conn.QueryxContext(ctx, statement)
	if err != nil {
		return console.ResultSet{}, fmt.Errorf("run query: %w", err)
	}
	return collectRows(rows, statement)
}

func (r *ConsoleRepository) Insert(ctx context.Context, table string, values map[string]any) (console.WriteResult, error) {
	cols := make([]string, 0, len(values))
	for col := range values {
		cols = append(cols, col)
	}
	sort.Strings(cols)

	quoted := make([]string, 0, len(cols))
	args := make([]any, 0, len(cols))
	for _, col := range cols {
		quoted = append(quoted, quoteIdent(col))
		args = append(args, values[col])
	}

	query, args, err := qb.InsertInto(quoteIdent(table)).Columns(quoted...).Values(args...).ToSQL()
	if err != nil {
		return console.WriteResult{}, fmt.Errorf("build insert %s query: %w", table, err)
	}

	return r.exec(ctx, r.db.Rebind(query), args...)
}

func (r *ConsoleRepository) Update(ctx context.Context, table, set, where string) (console.WriteResult, error) {
	statement := "UPDATE " + quoteIdent(table) + " SET " + set + " WHERE " + where
	return r.exec(ctx, statement)
}

func (r *ConsoleRepository) Delete(ctx context.Context, table, where string) (console.WriteResult, error) {
	statement := "DELETE FROM " + quoteIdent(table) + " WHERE " + where
	return r.exec(ctx, statement)
}

func (r *ConsoleRepository) Fetch(ctx context.Context, table string, limit int) (console.ResultSet, error) {
	statement := "SELECT * FROM " + quoteIdent(table) + " LIMIT " + strconv.Itoa(limit)
	rows, err := r.db.QueryxContext(ctx, statement)
	if err != nil {
		return console.ResultSet{}, fmt.Errorf("fetch %s: %w", table, err)
	}
	return collectRows(rows, statement)
}

func (r *ConsoleRepository) ListTables(ctx context.Context) ([]string, error) {
	query := `
SELECT table_name
FROM information_schema.tables
WHERE table_schema = current_schema() AND table_type = 'BASE TABLE'
ORDER BY table_name`
	if r.dialect.Name == SQLite.Name {
		query = `
SELECT name
FROM sqlite_master
WHERE type = 'table' AND name NOT LIKE 'sqlite_%'
ORDER BY name`
	}

	var tables []string
	if err := r.db.SelectContext(ctx, &tables, query); err != nil {
		return nil, fmt.Errorf("list tables: %w", err)
	}
	return tables, nil
}

type columnModel struct {
	Name     string `db:"name"`
	Type     string `db:"type"`
	Nullable bool   `db:"nullable"`
	Key      string `db:"key_type"`
	Default  string `db:"default_value"`
}

func (r *ConsoleRepository) DescribeTable(ctx context.Context, table string) ([]console.Column, error) {
	query := `
SELECT
	c.column_name AS name,
	c.data_type AS type,
	c.is_nullable = 'YES' AS nullable,
	COALESCE((
		SELECT MIN(tc.constraint_type)
		FROM information_schema.key_column_usage k
		JOIN information_schema.table_constraints tc
			ON tc.constraint_name = k.constraint_name AND tc.table_schema = k.table_schema
		WHERE k.table_schema = c.table_schema AND k.table_name = c.table_name AND k.column_name = c.column_name
	), '') AS key_type,
	COALESCE(c.column_default, '') AS default_value
FROM information_schema.columns c
WHERE c.table_schema = current_schema() AND c.table_name = ?
ORDER BY c.ordinal_position`
	if r.dialect.Name == SQLite.Name {
		query = `
SELECT
	name,
	type,
	"notnull" = 0 AS nullable,
	CASE WHEN pk > 0 THEN 'PRIMARY KEY' ELSE '' END AS key_type,
	COALESCE(dflt_value, '') AS default_value
FROM pragma_table_info(?)
ORDER BY cid`
	}

	var rows []columnModel
	if err := r.db.SelectContext(ctx, &rows, r.db.Rebind(query), table); err != nil {
		return nil, fmt.Errorf("describe table %s: %w", table, err)
	}

	out := make([]console.Column, 0, len(rows))
	for _, row := range rows {
		out = append(out, console.Column{
			Name:     row.Name,
			Type:     row.Type,
			Nullable: row.Nullable,
			Key:      keyShortName(row.Key),
			Default:  row.Default,
		})
	}
	return out, nil
}

func (r *ConsoleRepository) exec(ctx context.Context, statement string, args ...any) (console.WriteResult, error) {
	res, err := r.db.ExecContext(ctx, statement, args...)
	if err != nil {
		if isUniqueViolation(err) {
			return console.WriteResult{Statement: statement}, fmt.Errorf("exec statement: %w: %w", ErrDuplicateKey, err)
		}
		return console.WriteResult{Statement: statement}, fmt.Errorf("exec statement: %w", err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return console.WriteResult{Statement: statement}, fmt.Errorf("read affected rows: %w", err)
	}

	return console.WriteResult{Affected: affected, Statement: statement}, nil
}

func collectRows(rows *sqlx.Rows, statement string) (console.ResultSet, error) {
	defer rows.Close()

	columns, err := rows.Columns()
	if err != nil {
		return console.ResultSet{}, fmt.Errorf("read columns: %w", err)
	}

	out := console.ResultSet{Columns: columns, Rows: [][]any{}, Statement: statement}
	for rows.Next() {
		values, err := rows.SliceScan()
		if err != nil {
			return console.ResultSet{}, fmt.Errorf("scan row: %w", err)
		}
		for i, v := range values {
			if b, ok := v.([]byte); ok {
				values[i] = string(b)
			}
		}
		out.Rows = append(out.Rows, values)
	}
	if err := rows.Err(); err != nil {
		return console.ResultSet{}, fmt.Errorf("iterate rows: %w", err)
	}

	return out, nil
}

func keyShortName(constraintType string) string {
	switch constraintType {
	case "PRIMARY KEY":
		return "PRI"
	case "UNIQUE":
		return "UNI"
	case "FOREIGN KEY":
		return "MUL"
	default:
		return ""
	}
}
