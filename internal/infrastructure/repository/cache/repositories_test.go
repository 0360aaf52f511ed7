package cache

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/riskibarqy/cricket-stats/internal/domain/match"
	"github.com/riskibarqy/cricket-stats/internal/domain/player"
	"github.com/riskibarqy/cricket-stats/internal/domain/scorecard"
	matchmock "github.com/riskibarqy/cricket-stats/internal/mocks/domain/match"
	playermock "github.com/riskibarqy/cricket-stats/internal/mocks/domain/player"
	scorecardmock "github.com/riskibarqy/cricket-stats/internal/mocks/domain/scorecard"
	basecache "github.com/riskibarqy/cricket-stats/internal/platform/cache"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestPlayerRepository_ListIsCachedPerLimit(t *testing.T) {
	t.Parallel()

	next := playermock.NewRepository(t)
	repo := NewPlayerRepository(next, basecache.NewStore[any](time.Minute))
	ctx := context.Background()

	next.On("List", mock.Anything, 5).Return([]player.Player{{ID: 1, Name: "Virat Kohli"}}, nil).Once()
	next.On("List", mock.Anything, 10).Return([]player.Player{{ID: 1}, {ID: 2}}, nil).Once()

	for range 3 {
		items, err := repo.List(ctx, 5)
		require.NoError(t, err)
		require.Len(t, items, 1)
	}
	items, err := repo.List(ctx, 10)
	require.NoError(t, err)
	require.Len(t, items, 2)
}

func TestPlayerRepository_UpsertInvalidates(t *testing.T) {
	t.Parallel()

	next := playermock.NewRepository(t)
	repo := NewPlayerRepository(next, basecache.NewStore[any](time.Minute))
	ctx := context.Background()

	next.On("List", mock.Anything, 5).Return([]player.Player{{ID: 1}}, nil).Twice()
	next.On("Upsert", mock.Anything, mock.Anything).Return(int64(2), true, nil).Once()

	_, err := repo.List(ctx, 5)
	require.NoError(t, err)

	id, inserted, err := repo.Upsert(ctx, player.Player{Name: "Rohit Sharma"})
	require.NoError(t, err)
	require.Equal(t, int64(2), id)
	require.True(t, inserted)

	_, err = repo.List(ctx, 5)
	require.NoError(t, err)
}

func TestPlayerRepository_CountAlwaysReachesStore(t *testing.T) {
	t.Parallel()

	next := playermock.NewRepository(t)
	repo := NewPlayerRepository(next, basecache.NewStore[any](time.Minute))

	next.On("Count", mock.Anything).Return(int64(3), nil).Twice()

	for range 2 {
		n, err := repo.Count(context.Background())
		require.NoError(t, err)
		require.Equal(t, int64(3), n)
	}
}

func TestPlayerRepository_LoadErrorIsNotCached(t *testing.T) {
	t.Parallel()

	next := playermock.NewRepository(t)
	repo := NewPlayerRepository(next, basecache.NewStore[any](time.Minute))
	ctx := context.Background()

	boom := errors.New("boom")
	next.On("List", mock.Anything, 5).Return(nil, boom).Once()
	next.On("List", mock.Anything, 5).Return([]player.Player{{ID: 7}}, nil).Once()

	_, err := repo.List(ctx, 5)
	require.ErrorIs(t, err, boom)

	items, err := repo.List(ctx, 5)
	require.NoError(t, err)
	require.Equal(t, int64(7), items[0].ID)
}

func TestPlayerRepository_ReturnsCopies(t *testing.T) {
	t.Parallel()

	next := playermock.NewRepository(t)
	repo := NewPlayerRepository(next, basecache.NewStore[any](time.Minute))
	ctx := context.Background()

	next.On("List", mock.Anything, 1).Return([]player.Player{{ID: 1, Name: "Jasprit Bumrah"}}, nil).Once()

	first, err := repo.List(ctx, 1)
	require.NoError(t, err)
	first[0].Name = "changed"

	second, err := repo.List(ctx, 1)
	require.NoError(t, err)
	require.Equal(t, "Jasprit Bumrah", second[0].Name)
}

func TestMatchRepository_UpsertInvalidatesLists(t *testing.T) {
	t.Parallel()

	next := matchmock.NewRepository(t)
	repo := NewMatchRepository(next, basecache.NewStore[any](time.Minute))
	ctx := context.Background()

	next.On("ListLive", mock.Anything, 50).Return([]match.Recent{{ID: 1, State: "Live"}}, nil).Twice()
	next.On("ListRecent", mock.Anything, 50).Return([]match.Combined{{ID: 2}}, nil).Twice()
	next.On("UpsertRecent", mock.Anything, mock.Anything).Return(int64(3), true, nil).Once()

	_, err := repo.ListLive(ctx, 50)
	require.NoError(t, err)
	_, err = repo.ListRecent(ctx, 50)
	require.NoError(t, err)
	_, err = repo.ListLive(ctx, 50)
	require.NoError(t, err)

	_, _, err = repo.UpsertRecent(ctx, match.Recent{ProviderID: 100})
	require.NoError(t, err)

	_, err = repo.ListLive(ctx, 50)
	require.NoError(t, err)
	_, err = repo.ListRecent(ctx, 50)
	require.NoError(t, err)
}

func TestMatchRepository_ScorecardTargetsPassThrough(t *testing.T) {
	t.Parallel()

	next := matchmock.NewRepository(t)
	repo := NewMatchRepository(next, basecache.NewStore[any](time.Minute))

	next.On("ListScorecardTargets", mock.Anything, 5).Return([]match.ScorecardTarget{{ProviderID: 9}}, nil).Twice()

	for range 2 {
		items, err := repo.ListScorecardTargets(context.Background(), 5)
		require.NoError(t, err)
		require.Len(t, items, 1)
	}
}

func TestScorecardRepository_WritesInvalidateLeaders(t *testing.T) {
	t.Parallel()

	next := scorecardmock.NewRepository(t)
	store := basecache.NewStore[any](time.Minute)
	repo := NewScorecardRepository(next, store)
	ctx := context.Background()

	next.On("TopBatters", mock.Anything, 10).Return([]scorecard.Leader{{PlayerID: 1, Total: 120}}, nil).Twice()
	next.On("TopBowlers", mock.Anything, 10).Return([]scorecard.Leader{{PlayerID: 2, Total: 4}}, nil).Once()
	next.On("UpsertBatting", mock.Anything, mock.Anything).Return(1, nil).Once()

	_, err := repo.TopBatters(ctx, 10)
	require.NoError(t, err)
	_, err = repo.TopBowlers(ctx, 10)
	require.NoError(t, err)

	n, err := repo.UpsertBatting(ctx, []scorecard.Batting{{MatchID: 1, PlayerID: 1}})
	require.NoError(t, err)
	require.Equal(t, 1, n)

	leaders, err := repo.TopBatters(ctx, 10)
	require.NoError(t, err)
	require.Equal(t, int64(120), leaders[0].Total)

	_, ok := store.Get(ctx, scorecardPrefix+"bowling:10")
	require.False(t, ok)
}

func TestScorecardRepository_InvalidatesOnWriteError(t *testing.T) {
	t.Parallel()

	next := scorecardmock.NewRepository(t)
	store := basecache.NewStore[any](time.Minute)
	repo := NewScorecardRepository(next, store)
	ctx := context.Background()

	next.On("TopBowlers", mock.Anything, 3).Return([]scorecard.Leader{{PlayerID: 2}}, nil).Once()
	next.On("UpsertBowling", mock.Anything, mock.Anything).Return(0, errors.New("tx aborted")).Once()

	_, err := repo.TopBowlers(ctx, 3)
	require.NoError(t, err)

	_, err = repo.UpsertBowling(ctx, []scorecard.Bowling{{MatchID: 1, PlayerID: 2}})
	require.Error(t, err)

	_, ok := store.Get(ctx, scorecardPrefix+"bowling:3")
	require.False(t, ok)
}
