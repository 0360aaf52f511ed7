package app

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"
	"github.com/riskibarqy/cricket-stats/internal/config"
	"github.com/uptrace/opentelemetry-go-extra/otelsql"
	"github.com/uptrace/opentelemetry-go-extra/otelsqlx"
	_ "modernc.org/sqlite"
)

func init() {
	// modernc registers as "sqlite", which sqlx does not map to a bindvar style.
	sqlx.BindDriver(config.DriverSQLite, sqlx.QUESTION)
}

// OpenDB opens the configured store with query tracing and pings it.
func OpenDB(ctx context.Context, cfg config.Config) (*sqlx.DB, error) {
	var (
		dsn      string
		dbName   string
		dbSystem string
	)
	switch cfg.DBDriver {
	case config.DriverSQLite:
		dsn = sqliteDSN(cfg.DBPath)
		dbName = strings.TrimSuffix(filepath.Base(cfg.DBPath), filepath.Ext(cfg.DBPath))
		dbSystem = "sqlite"
	default:
		dsn = postgresDSN(cfg)
		dbName = dbNameFromURL(dsn)
		dbSystem = "postgresql"
	}

	db, err := otelsqlx.Open(cfg.DBDriver, dsn,
		otelsql.WithDBSystem(dbSystem),
		otelsql.WithDBName(dbName),
		otelsql.WithQueryFormatter(formatDBQueryForTrace),
	)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", cfg.DBDriver, err)
	}

	if cfg.DBDriver == config.DriverSQLite {
		// sqlite serialises writers; one connection also keeps :memory: databases shared.
		db.SetMaxOpenConns(1)
	} else {
		db.SetMaxOpenConns(10)
		db.SetMaxIdleConns(5)
		db.SetConnMaxLifetime(30 * time.Minute)
	}
	otelsql.ReportDBStatsMetrics(db.DB, otelsql.WithDBSystem(dbSystem), otelsql.WithDBName(dbName))

	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := db.PingContext(pingCtx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("ping %s: %w", cfg.DBDriver, err)
	}

	return db, nil
}
