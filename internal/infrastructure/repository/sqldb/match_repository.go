package sqldb

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"
	"github.com/riskibarqy/cricket-stats/internal/domain/match"
	qb "github.com/riskibarqy/cricket-stats/internal/platform/querybuilder"
)

type MatchRepository struct {
	db *sqlx.DB
}

func NewMatchRepository(db *sqlx.DB) *MatchRepository {
	return &MatchRepository{db: db}
}

func (r *MatchRepository) UpsertRecent(ctx context.Context, item match.Recent) (int64, bool, error) {
	return upsert(ctx, r.db, recentMatchUpsertTarget, recentMatchTableModel{
		ProviderID:  item.ProviderID,
		Description: item.Description,
		Team1:       item.Team1,
		Team2:       item.Team2,
		Venue:       item.Venue,
		VenueCity:   item.VenueCity,
		StartDate:   item.StartDate,
		Status:      item.Status,
		State:       item.State,
	})
}

func (r *MatchRepository) UpsertCombined(ctx context.Context, item match.Combined) (int64, bool, error) {
	return upsert(ctx, r.db, combinedMatchUpsertTarget, combinedMatchTableModel{
		ProviderID:   item.ProviderID,
		Team1:        item.Team1,
		Team2:        item.Team2,
		Winner:       item.Winner,
		Margin:       item.Margin,
		Format:       item.Format,
		Venue:        item.Venue,
		MatchDate:    item.MatchDate,
		TossWinner:   item.TossWinner,
		TossDecision: item.TossDecision,
	})
}

// ListScorecardTargets returns the first stored combined matches by id.
func (r *MatchRepository) ListScorecardTargets(ctx context.Context, limit int) ([]match.ScorecardTarget, error) {
	query, args, err := qb.Select(
		"match_id",
		"COALESCE(cricbuzz_match_id, 0) AS cricbuzz_match_id",
		"COALESCE(format, '') AS format",
	).From("combined_matches").
		OrderBy("match_id").
		Limit(limit).
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build select scorecard targets query: %w", err)
	}

	var rows []scorecardTargetModel
	if err := r.db.SelectContext(ctx, &rows, r.db.Rebind(query), args...); err != nil {
		return nil, fmt.Errorf("select scorecard targets: %w", err)
	}

	out := make([]match.ScorecardTarget, 0, len(rows))
	for _, row := range rows {
		out = append(out, match.ScorecardTarget{
			MatchID:    row.MatchID,
			ProviderID: row.ProviderID,
			Format:     row.Format,
		})
	}
	return out, nil
}

func (r *MatchRepository) ListLive(ctx context.Context, limit int) ([]match.Recent, error) {
	query, args, err := qb.Select(recentMatchSelectColumns...).From("recent_matches").
		Where(qb.Any(
			qb.IsNull("state"),
			qb.Expr("state <> ?", match.StateComplete),
		)).
		OrderBy("start_date DESC", "match_id DESC").
		Limit(limit).
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build select live matches query: %w", err)
	}

	var rows []recentMatchTableModel
	if err := r.db.SelectContext(ctx, &rows, r.db.Rebind(query), args...); err != nil {
		return nil, fmt.Errorf("select live matches: %w", err)
	}

	out := make([]match.Recent, 0, len(rows))
	for _, row := range rows {
		out = append(out, match.Recent{
			ID:          row.ID,
			ProviderID:  row.ProviderID,
			Description: row.Description,
			Team1:       row.Team1,
			Team2:       row.Team2,
			Venue:       row.Venue,
			VenueCity:   row.VenueCity,
			StartDate:   row.StartDate,
			Status:      row.Status,
			State:       row.State,
		})
	}
	return out, nil
}

func (r *MatchRepository) ListRecent(ctx context.Context, limit int) ([]match.Combined, error) {
	query, args, err := qb.Select(combinedMatchSelectColumns...).From("combined_matches").
		OrderBy("match_date DESC", "match_id DESC").
		Limit(limit).
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build select recent matches query: %w", err)
	}

	var rows []combinedMatchTableModel
	if err := r.db.SelectContext(ctx, &rows, r.db.Rebind(query), args...); err != nil {
		return nil, fmt.Errorf("select recent matches: %w", err)
	}

	out := make([]match.Combined, 0, len(rows))
	for _, row := range rows {
		out = append(out, match.Combined{
			ID:           row.ID,
			ProviderID:   row.ProviderID,
			Team1:        row.Team1,
			Team2:        row.Team2,
			Winner:       row.Winner,
			Margin:       row.Margin,
			Format:       row.Format,
			Venue:        row.Venue,
			MatchDate:    row.MatchDate,
			TossWinner:   row.TossWinner,
			TossDecision: row.TossDecision,
		})
	}
	return out, nil
}

func (r *MatchRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	if err := r.db.GetContext(ctx, &count, `SELECT COUNT(1) FROM combined_matches`); err != nil {
		return 0, fmt.Errorf("count matches: %w", err)
	}
	return count, nil
}
