package sqldb

import (
	"context"

	"github.com/jmoiron/sqlx"
	"github.com/riskibarqy/cricket-stats/internal/domain/snapshot"
)

type SnapshotRepository struct {
	db *sqlx.DB
}

func NewSnapshotRepository(db *sqlx.DB) *SnapshotRepository {
	return &SnapshotRepository{db: db}
}

func (r *SnapshotRepository) InsertTeam(ctx context.Context, item snapshot.Team) (int64, error) {
	return insertReturning(ctx, r.db, "teams", "team_id", teamInsertModel{
		Name:    item.Name,
		Country: item.Country,
	})
}

func (r *SnapshotRepository) InsertVenue(ctx context.Context, item snapshot.Venue) (int64, error) {
	return insertReturning(ctx, r.db, "venues", "venue_id", venueInsertModel{
		Name:     item.Name,
		City:     item.City,
		Country:  item.Country,
		Capacity: item.Capacity,
	})
}

func (r *SnapshotRepository) InsertTopODIRun(ctx context.Context, item snapshot.TopODIRun) (int64, error) {
	return insertReturning(ctx, r.db, "top_odi_runs", "player_id", topODIRunInsertModel{
		PlayerName: item.PlayerName,
		Runs:       item.Runs,
		Average:    item.Average,
		Centuries:  item.Centuries,
	})
}

func (r *SnapshotRepository) InsertSeriesMatch(ctx context.Context, item snapshot.SeriesMatch) (int64, error) {
	return insertReturning(ctx, r.db, "series_matches", "series_match_id", seriesMatchInsertModel{
		SeriesName:  item.SeriesName,
		Team1:       item.Team1,
		Team2:       item.Team2,
		Venue:       item.Venue,
		MatchFormat: item.MatchFormat,
		StartDate:   item.StartDate,
		Status:      item.Status,
	})
}

func (r *SnapshotRepository) InsertPlayerStat(ctx context.Context, item snapshot.PlayerStat) (int64, error) {
	return insertReturning(ctx, r.db, "players_stats", "stat_id", playerStatInsertModel{
		PlayerName: item.PlayerName,
		PlayerID:   nullID(item.PlayerID),
		TestRuns:   item.TestRuns,
		ODIRuns:    item.ODIRuns,
		T20Runs:    item.T20Runs,
	})
}

func (r *SnapshotRepository) InsertPartnership(ctx context.Context, item snapshot.Partnership) (int64, error) {
	return insertReturning(ctx, r.db, "players_partnerships_data", "partnership_id", partnershipInsertModel{
		MatchID:         item.MatchID,
		InningsNo:       item.InningsNo,
		Batter1Name:     item.Batter1Name,
		Batter2Name:     item.Batter2Name,
		RunsPartnership: item.RunsPartnership,
		WicketFallen:    item.WicketFallen,
	})
}

func (r *SnapshotRepository) InsertBowlerVenue(ctx context.Context, item snapshot.BowlerVenue) (int64, error) {
	return insertReturning(ctx, r.db, "bowlers_bowling_venue_data", "bowling_id", bowlerVenueInsertModel{
		MatchID:      item.MatchID,
		PlayerID:     nullID(item.PlayerID),
		PlayerName:   item.PlayerName,
		Venue:        item.Venue,
		Overs:        item.Overs,
		RunsConceded: item.RunsConceded,
		Wickets:      item.Wickets,
		EconomyRate:  item.EconomyRate,
	})
}

func (r *SnapshotRepository) InsertBatterInnings(ctx context.Context, item snapshot.BatterInnings) (int64, error) {
	return insertReturning(ctx, r.db, "batters_batting_data", "batter_id", batterInningsInsertModel{
		MatchID:    item.MatchID,
		PlayerID:   nullID(item.PlayerID),
		PlayerName: item.PlayerName,
		Runs:       item.Runs,
		BallsFaced: item.BallsFaced,
		StrikeRate: item.StrikeRate,
		Date:       item.Date,
	})
}
