package cache

import (
	"context"
	"strconv"

	"github.com/riskibarqy/cricket-stats/internal/domain/match"
	"github.com/riskibarqy/cricket-stats/internal/domain/player"
	"github.com/riskibarqy/cricket-stats/internal/domain/scorecard"
	basecache "github.com/riskibarqy/cricket-stats/internal/platform/cache"
)

const (
	playerPrefix    = "player:"
	matchPrefix     = "match:"
	scorecardPrefix = "scorecard:"
)

// PlayerRepository caches the read views and drops them on every write that
// goes through it.
type PlayerRepository struct {
	next  player.Repository
	cache *basecache.Store[any]
}

func NewPlayerRepository(next player.Repository, cache *basecache.Store[any]) *PlayerRepository {
	return &PlayerRepository{next: next, cache: cache}
}

func (r *PlayerRepository) Upsert(ctx context.Context, item player.Player) (int64, bool, error) {
	id, inserted, err := r.next.Upsert(ctx, item)
	r.cache.DeletePrefix(ctx, playerPrefix)
	return id, inserted, err
}

func (r *PlayerRepository) FindIDByName(ctx context.Context, name string) (int64, bool, error) {
	return r.next.FindIDByName(ctx, name)
}

func (r *PlayerRepository) List(ctx context.Context, limit int) ([]player.Player, error) {
	key := playerPrefix + "list:" + strconv.Itoa(limit)
	v, err := r.cache.GetOrLoad(ctx, key, func(ctx context.Context) (any, error) {
		items, err := r.next.List(ctx, limit)
		if err != nil {
			return nil, err
		}
		return append([]player.Player(nil), items...), nil
	})
	if err != nil {
		return nil, err
	}

	items, _ := v.([]player.Player)
	return append([]player.Player(nil), items...), nil
}

// Count doubles as the ingestion reachability check, so it always reaches the store.
func (r *PlayerRepository) Count(ctx context.Context) (int64, error) {
	return r.next.Count(ctx)
}

type MatchRepository struct {
	next  match.Repository
	cache *basecache.Store[any]
}

func NewMatchRepository(next match.Repository, cache *basecache.Store[any]) *MatchRepository {
	return &MatchRepository{next: next, cache: cache}
}

func (r *MatchRepository) UpsertRecent(ctx context.Context, item match.Recent) (int64, bool, error) {
	id, inserted, err := r.next.UpsertRecent(ctx, item)
	r.cache.DeletePrefix(ctx, matchPrefix)
	return id, inserted, err
}

func (r *MatchRepository) UpsertCombined(ctx context.Context, item match.Combined) (int64, bool, error) {
	id, inserted, err := r.next.UpsertCombined(ctx, item)
	r.cache.DeletePrefix(ctx, matchPrefix)
	return id, inserted, err
}

// ListScorecardTargets feeds ingestion and is never cached.
func (r *MatchRepository) ListScorecardTargets(ctx context.Context, limit int) ([]match.ScorecardTarget, error) {
	return r.next.ListScorecardTargets(ctx, limit)
}

func (r *MatchRepository) ListLive(ctx context.Context, limit int) ([]match.Recent, error) {
	key := matchPrefix + "live:" + strconv.Itoa(limit)
	v, err := r.cache.GetOrLoad(ctx, key, func(ctx context.Context) (any, error) {
		items, err := r.next.ListLive(ctx, limit)
		if err != nil {
			return nil, err
		}
		return append([]match.Recent(nil), items...), nil
	})
	if err != nil {
		return nil, err
	}

	items, _ := v.([]match.Recent)
	return append([]match.Recent(nil), items...), nil
}

func (r *MatchRepository) ListRecent(ctx context.Context, limit int) ([]match.Combined, error) {
	key := matchPrefix + "recent:" + strconv.Itoa(limit)
	v, err := r.cache.GetOrLoad(ctx, key, func(ctx context.Context) (any, error) {
		items, err := r.next.ListRecent(ctx, limit)
		if err != nil {
			return nil, err
		}
		return append([]match.Combined(nil), items...), nil
	})
	if err != nil {
		return nil, err
	}

	items, _ := v.([]match.Combined)
	return append([]match.Combined(nil), items...), nil
}

func (r *MatchRepository) Count(ctx context.Context) (int64, error) {
	return r.next.Count(ctx)
}

type ScorecardRepository struct {
	next  scorecard.Repository
	cache *basecache.Store[any]
}

func NewScorecardRepository(next scorecard.Repository, cache *basecache.Store[any]) *ScorecardRepository {
	return &ScorecardRepository{next: next, cache: cache}
}

func (r *ScorecardRepository) UpsertBatting(ctx context.Context, records []scorecard.Batting) (int, error) {
	n, err := r.next.UpsertBatting(ctx, records)
	r.cache.DeletePrefix(ctx, scorecardPrefix)
	return n, err
}

func (r *ScorecardRepository) UpsertBowling(ctx context.Context, records []scorecard.Bowling) (int, error) {
	n, err := r.next.UpsertBowling(ctx, records)
	r.cache.DeletePrefix(ctx, scorecardPrefix)
	return n, err
}

func (r *ScorecardRepository) UpsertFielding(ctx context.Context, item scorecard.Fielding) (int64, bool, error) {
	return r.next.UpsertFielding(ctx, item)
}

func (r *ScorecardRepository) TopBatters(ctx context.Context, limit int) ([]scorecard.Leader, error) {
	return r.leaders(ctx, scorecardPrefix+"batting:"+strconv.Itoa(limit), func(ctx context.Context) ([]scorecard.Leader, error) {
		return r.next.TopBatters(ctx, limit)
	})
}

func (r *ScorecardRepository) TopBowlers(ctx context.Context, limit int) ([]scorecard.Leader, error) {
	return r.leaders(ctx, scorecardPrefix+"bowling:"+strconv.Itoa(limit), func(ctx context.Context) ([]scorecard.Leader, error) {
		return r.next.TopBowlers(ctx, limit)
	})
}

func (r *ScorecardRepository) leaders(ctx context.Context, key string, load func(context.Context) ([]scorecard.Leader, error)) ([]scorecard.Leader, error) {
	v, err := r.cache.GetOrLoad(ctx, key, func(ctx context.Context) (any, error) {
		items, err := load(ctx)
		if err != nil {
			return nil, err
		}
		return append([]scorecard.Leader(nil), items...), nil
	})
	if err != nil {
		return nil, err
	}

	items, _ := v.([]scorecard.Leader)
	return append([]scorecard.Leader(nil), items...), nil
}
