package sqldb

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"github.com/jmoiron/sqlx"
	"github.com/riskibarqy/cricket-stats/internal/domain/player"
	qb "github.com/riskibarqy/cricket-stats/internal/platform/querybuilder"
)

type PlayerRepository struct {
	db *sqlx.DB
}

func NewPlayerRepository(db *sqlx.DB) *PlayerRepository {
	return &PlayerRepository{db: db}
}

func (r *PlayerRepository) Upsert(ctx context.Context, item player.Player) (int64, bool, error) {
	if err := item.Validate(); err != nil {
		return 0, false, err
	}

	return upsert(ctx, r.db, playerUpsertTarget, playerTableModel{
		FullName:     item.FullName,
		Name:         item.Name,
		Country:      item.Country,
		PlayingRole:  item.PlayingRole,
		BattingStyle: item.BattingStyle,
		BowlingStyle: item.BowlingStyle,
		TotalRuns:    item.TotalRuns,
		TotalWickets: item.TotalWickets,
		TeamID:       sql.NullInt64{Int64: item.TeamID, Valid: item.TeamID > 0},
	})
}

func (r *PlayerRepository) FindIDByName(ctx context.Context, name string) (int64, bool, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return 0, false, nil
	}

	query, args, err := qb.Select("player_id").From("players").
		Where(qb.Like("name", "%"+name+"%")).
		OrderBy("player_id").
		Limit(1).
		ToSQL()
	if err != nil {
		return 0, false, fmt.Errorf("build find player by name query: %w", err)
	}

	var id int64
	if err := r.db.GetContext(ctx, &id, r.db.Rebind(query), args...); err != nil {
		if isNotFound(err) {
			return 0, false, nil
		}
		return 0, false, fmt.Errorf("find player by name: %w", err)
	}

	return id, true, nil
}

func (r *PlayerRepository) List(ctx context.Context, limit int) ([]player.Player, error) {
	query, args, err := qb.Select(playerSelectColumns...).From("players").
		OrderBy("player_id").
		Limit(limit).
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build select players query: %w", err)
	}

	var rows []playerTableModel
	if err := r.db.SelectContext(ctx, &rows, r.db.Rebind(query), args...); err != nil {
		return nil, fmt.Errorf("select players: %w", err)
	}

	out := make([]player.Player, 0, len(rows))
	for _, row := range rows {
		out = append(out, player.Player{
			ID:           row.ID,
			Name:         row.Name,
			FullName:     row.FullName,
			Country:      row.Country,
			PlayingRole:  row.PlayingRole,
			BattingStyle: row.BattingStyle,
			BowlingStyle: row.BowlingStyle,
			TotalRuns:    row.TotalRuns,
			TotalWickets: row.TotalWickets,
			TeamID:       row.TeamID.Int64,
		})
	}

	return out, nil
}

func (r *PlayerRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	if err := r.db.GetContext(ctx, &count, `SELECT COUNT(1) FROM players`); err != nil {
		return 0, fmt.Errorf("count players: %w", err)
	}
	return count, nil
}
