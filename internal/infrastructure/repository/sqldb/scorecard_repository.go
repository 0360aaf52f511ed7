package sqldb

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"
	"github.com/riskibarqy/cricket-stats/internal/domain/scorecard"
	"github.com/riskibarqy/cricket-stats/internal/platform/logging"
	qb "github.com/riskibarqy/cricket-stats/internal/platform/querybuilder"
)

type ScorecardRepository struct {
	db     *sqlx.DB
	logger *logging.Logger
}

func NewScorecardRepository(db *sqlx.DB, logger *logging.Logger) *ScorecardRepository {
	if logger == nil {
		logger = logging.Default()
	}
	return &ScorecardRepository{db: db, logger: logger}
}

func (r *ScorecardRepository) UpsertBatting(ctx context.Context, records []scorecard.Batting) (int, error) {
	inserted := 0
	for _, rec := range records {
		if err := ctx.Err(); err != nil {
			return inserted, err
		}

		_, created, err := upsert(ctx, r.db, battingUpsertTarget, battingTableModel{
			MatchID:    rec.MatchID,
			PlayerID:   nullID(rec.PlayerID),
			PlayerName: rec.PlayerName,
			Runs:       rec.Runs,
			Balls:      rec.Balls,
			StrikeRate: rec.StrikeRate,
			Dismissal:  rec.Dismissal,
			Team:       rec.Team,
			InningsNo:  rec.InningsNo,
		})
		if err != nil {
			logging.FromContext(ctx, r.logger).WarnContext(ctx, "skip batting record",
				"match_id", rec.MatchID,
				"player_id", rec.PlayerID,
				"innings_no", rec.InningsNo,
				"error", err,
			)
			continue
		}
		if created {
			inserted++
		}
	}

	return inserted, nil
}

func (r *ScorecardRepository) UpsertBowling(ctx context.Context, records []scorecard.Bowling) (int, error) {
	inserted := 0
	for _, rec := range records {
		if err := ctx.Err(); err != nil {
			return inserted, err
		}

		_, created, err := upsert(ctx, r.db, bowlingUpsertTarget, bowlingTableModel{
			MatchID:      rec.MatchID,
			PlayerID:     nullID(rec.PlayerID),
			PlayerName:   rec.PlayerName,
			Overs:        rec.Overs,
			RunsConceded: rec.RunsConceded,
			Wickets:      rec.Wickets,
			EconomyRate:  rec.EconomyRate,
			Format:       rec.Format,
		})
		if err != nil {
			logging.FromContext(ctx, r.logger).WarnContext(ctx, "skip bowling record",
				"match_id", rec.MatchID,
				"player_id", rec.PlayerID,
				"error", err,
			)
			continue
		}
		if created {
			inserted++
		}
	}

	return inserted, nil
}

func (r *ScorecardRepository) UpsertFielding(ctx context.Context, item scorecard.Fielding) (int64, bool, error) {
	return upsert(ctx, r.db, fieldingUpsertTarget, fieldingTableModel{
		MatchID:   item.MatchID,
		PlayerID:  nullID(item.PlayerID),
		Catches:   item.Catches,
		Stumpings: item.Stumpings,
		RunOuts:   item.RunOuts,
		Format:    item.Format,
	})
}

func (r *ScorecardRepository) TopBatters(ctx context.Context, limit int) ([]scorecard.Leader, error) {
	return r.leaders(ctx, "batting_data", "runs", limit)
}

func (r *ScorecardRepository) TopBowlers(ctx context.Context, limit int) ([]scorecard.Leader, error) {
	return r.leaders(ctx, "bowling_data", "wickets", limit)
}

func (r *ScorecardRepository) leaders(ctx context.Context, table, metric string, limit int) ([]scorecard.Leader, error) {
	query, args, err := qb.Select(
		"player_id",
		"COALESCE(MAX(player_name), '') AS player_name",
		"COALESCE(SUM("+metric+"), 0) AS total",
		"COUNT(DISTINCT match_id) AS matches",
	).From(table).
		Where(qb.Expr("player_id IS NOT NULL")).
		GroupBy("player_id").
		OrderBy("total DESC", "player_id").
		Limit(limit).
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build select %s leaders query: %w", table, err)
	}

	var rows []leaderModel
	if err := r.db.SelectContext(ctx, &rows, r.db.Rebind(query), args...); err != nil {
		return nil, fmt.Errorf("select %s leaders: %w", table, err)
	}

	out := make([]scorecard.Leader, 0, len(rows))
	for _, row := range rows {
		out = append(out, scorecard.Leader{
			PlayerID:   row.PlayerID,
			PlayerName: row.PlayerName,
			Total:      row.Total,
			Matches:    row.Matches,
		})
	}
	return out, nil
}
