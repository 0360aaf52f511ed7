package sqldb

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"
	"github.com/riskibarqy/cricket-stats/internal/platform/logging"
	_ "modernc.org/sqlite"
)

func openTestDB(t *testing.T) *sqlx.DB {
	t.Helper()

	db, err := sqlx.Open("sqlite", ":memory:?_pragma=foreign_keys(1)")
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	// Every pooled connection would get its own in-memory database.
	db.SetMaxOpenConns(1)
	t.Cleanup(func() {
		_ = db.Close()
	})

	if _, err := EnsureSchema(context.Background(), db); err != nil {
		t.Fatalf("ensure schema: %v", err)
	}
	return db
}

func testLogger() *logging.Logger {
	return logging.NewNop()
}

type fakeErr string

func (e fakeErr) Error() string { return string(e) }

func TestIsUniqueViolation(t *testing.T) {
	t.Run("postgres unique violation code", func(t *testing.T) {
		if !isUniqueViolation(&pq.Error{Code: "23505"}) {
			t.Fatalf("expected true for 23505")
		}
	})

	t.Run("postgres other code", func(t *testing.T) {
		if isUniqueViolation(&pq.Error{Code: "23503"}) {
			t.Fatalf("expected false for foreign key violation")
		}
	})

	t.Run("sqlite message", func(t *testing.T) {
		err := fakeErr("constraint failed: UNIQUE constraint failed: players.name, players.full_name (2067)")
		if !isUniqueViolation(err) {
			t.Fatalf("expected true for sqlite unique message")
		}
	})

	t.Run("unrelated error", func(t *testing.T) {
		if isUniqueViolation(fakeErr("no such table: players")) {
			t.Fatalf("expected false for unrelated error")
		}
		if isUniqueViolation(nil) {
			t.Fatalf("expected false for nil")
		}
	})
}

func TestDialectFor(t *testing.T) {
	if got := DialectFor("sqlite3"); got.Name != SQLite.Name {
		t.Fatalf("unexpected dialect for sqlite3: %s", got.Name)
	}
	if got := DialectFor("postgres"); !got.ReadOnlyTx || got.DateType != "DATE" {
		t.Fatalf("unexpected postgres dialect: %+v", got)
	}
}

func TestSchemaStatements_PostgresUsesNativeTypes(t *testing.T) {
	statements := SchemaStatements(Postgres)
	if len(statements) != 14 {
		t.Fatalf("expected 14 statements, got %d", len(statements))
	}
	for _, stmt := range statements {
		if strings.Contains(stmt, "{{id}}") || strings.Contains(stmt, "{{date}}") {
			t.Fatalf("unrendered placeholder in %s", stmt)
		}
	}
	if !strings.Contains(statements[2], "start_date DATE") {
		t.Fatalf("expected DATE column in recent_matches ddl: %s", statements[2])
	}
}

func TestEnsureSchema_Idempotent(t *testing.T) {
	ctx := context.Background()
	db := openTestDB(t)

	tables, err := EnsureSchema(ctx, db)
	if err != nil {
		t.Fatalf("second ensure schema: %v", err)
	}
	if len(tables) != 14 || tables[0] != "teams" || tables[13] != "fielding_data" {
		t.Fatalf("unexpected tables: %v", tables)
	}

	listed, err := NewConsoleRepository(db).ListTables(ctx)
	if err != nil {
		t.Fatalf("list tables: %v", err)
	}
	if len(listed) != 14 {
		t.Fatalf("expected 14 tables, got %d: %v", len(listed), listed)
	}
}

func TestUpsert_DuplicateKeyOnUpdate(t *testing.T) {
	ctx := context.Background()
	db := openTestDB(t)

	// Lower id row shares full_name with the payload; rewriting it collides
	// with the second row's (name, full_name) pair.
	if _, err := db.ExecContext(ctx, `INSERT INTO players (name, full_name) VALUES ('A', 'Y'), ('B', 'Y')`); err != nil {
		t.Fatalf("insert players: %v", err)
	}

	_, _, err := upsert(ctx, db, playerUpsertTarget, playerTableModel{Name: "B", FullName: "Y"})
	if !errors.Is(err, ErrDuplicateKey) {
		t.Fatalf("expected ErrDuplicateKey, got %v", err)
	}
}

func TestUpsert_MissingKeyColumn(t *testing.T) {
	db := openTestDB(t)

	target := upsertTarget{Table: "teams", PK: "team_id", Keys: []string{"team_code"}}
	_, _, err := upsert(context.Background(), db, target, teamInsertModel{Name: "India"})
	if err == nil {
		t.Fatalf("expected error for key column missing from model")
	}
}
