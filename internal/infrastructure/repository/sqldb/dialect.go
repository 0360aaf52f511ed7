package sqldb

import (
	"strings"

	"github.com/jmoiron/sqlx"
)

// Dialect holds the few DDL and execution details that differ between the
// supported drivers. Everything else is written in the shared SQL subset.
type Dialect struct {
	Name string
	// IdentityColumn is the column definition of an auto-assigned primary key.
	IdentityColumn string
	// DateType is the column type for calendar dates. sqlite keeps ISO text so
	// values round-trip as strings.
	DateType string
	// ReadOnlyTx reports whether the driver honours sql.TxOptions.ReadOnly.
	ReadOnlyTx bool
}

var (
	Postgres = Dialect{
		Name:           "postgres",
		IdentityColumn: "BIGSERIAL PRIMARY KEY",
		DateType:       "DATE",
		ReadOnlyTx:     true,
	}
	SQLite = Dialect{
		Name:           "sqlite",
		IdentityColumn: "INTEGER PRIMARY KEY AUTOINCREMENT",
		DateType:       "TEXT",
	}
)

// DialectFor maps a database/sql driver name to its dialect. Unknown names are
// treated as postgres.
func DialectFor(driverName string) Dialect {
	switch strings.ToLower(strings.TrimSpace(driverName)) {
	case "sqlite", "sqlite3":
		return SQLite
	default:
		return Postgres
	}
}

func dialectOf(db *sqlx.DB) Dialect {
	return DialectFor(db.DriverName())
}

func quoteIdent(name string) string {
	return `"` + strings.ReplaceAll(name, `"`, `""`) + `"`
}
