package lookupcache

import (
	"context"
	"testing"

	tablestore "leave-desk-backend/lib/table-store"
	dbmodels "leave-desk-backend/models/db"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/require"
)

type memoryCacheStore struct {
	items map[string]dbmodels.LookupCacheEntry
}

func newMemoryCacheStore() *memoryCacheStore {
	return &memoryCacheStore{items: map[string]dbmodels.LookupCacheEntry{}}
}

func (s *memoryCacheStore) Get(datasetKey string) (*dbmodels.LookupCacheEntry, error) {
	rec, ok := s.items[datasetKey]
	if !ok {
		return nil, nil
	}
	return &rec, nil
}

func (s *memoryCacheStore) Save(rec dbmodels.LookupCacheEntry) error {
	s.items[rec.DatasetKey] = rec
	return nil
}

func (s *memoryCacheStore) Delete(datasetKey string) error {
	delete(s.items, datasetKey)
	return nil
}

func (s *memoryCacheStore) List() ([]dbmodels.LookupCacheEntry, error) {
	list := []dbmodels.LookupCacheEntry{}
	for _, rec := range s.items {
		list = append(list, rec)
	}
	return list, nil
}

// scriptedStore отдает заранее заданные ответы по адресу диапазона
type scriptedStore struct {
	grids map[string][][]string
	err   error
	reads []string
}

func (s *scriptedStore) ReadRange(ctx context.Context, rangeStr string) ([][]string, error) {
	s.reads = append(s.reads, rangeStr)
	if s.err != nil {
		return nil, s.err
	}
	return s.grids[rangeStr], nil
}

func (s *scriptedStore) AppendRow(ctx context.Context, sheet string, cells []string) error {
	return nil
}

func (s *scriptedStore) SetCells(ctx context.Context, sheet string, cells []tablestore.Cell) error {
	return nil
}

func TestFetchWithFallback(t *testing.T) {
	ctx := context.TODO()
	failing := func(ctx context.Context) ([][]string, error) {
		return nil, errors.New("timeout")
	}

	t.Run(`failure without cache gives empty set`, func(t *testing.T) {
		handler := NewInstance(nil, newMemoryCacheStore())
		first := handler.FetchWithFallback(ctx, DatasetRequests, failing)
		require.NotNil(t, first)
		require.Empty(t, first)
		second := handler.FetchWithFallback(ctx, DatasetRequests, failing)
		require.NotNil(t, second)
		require.Empty(t, second)
	})

	t.Run(`failure after success gives cached set`, func(t *testing.T) {
		handler := NewInstance(nil, newMemoryCacheStore())
		grid := [][]string{{"a", "b"}, {"c"}}
		got := handler.FetchWithFallback(ctx, DatasetDirectory, func(ctx context.Context) ([][]string, error) {
			return grid, nil
		})
		require.Equal(t, [][]string{{"a", "b"}, {"c", ""}}, got)

		cached := handler.FetchWithFallback(ctx, DatasetDirectory, failing)
		require.Equal(t, got, cached)

		other := handler.FetchWithFallback(ctx, DatasetLookups, failing)
		require.Empty(t, other)
	})

	t.Run(`nil grid counts as failure`, func(t *testing.T) {
		cacheStore := newMemoryCacheStore()
		handler := NewInstance(nil, cacheStore)
		handler.FetchWithFallback(ctx, DatasetTasks, func(ctx context.Context) ([][]string, error) {
			return [][]string{{"x"}}, nil
		})
		got := handler.FetchWithFallback(ctx, DatasetTasks, func(ctx context.Context) ([][]string, error) {
			return nil, nil
		})
		require.Equal(t, [][]string{{"x"}}, got)
	})

	t.Run(`newer success replaces cache`, func(t *testing.T) {
		handler := NewInstance(nil, newMemoryCacheStore())
		handler.FetchWithFallback(ctx, DatasetTasks, func(ctx context.Context) ([][]string, error) {
			return [][]string{{"old"}}, nil
		})
		handler.FetchWithFallback(ctx, DatasetTasks, func(ctx context.Context) ([][]string, error) {
			return [][]string{{"new"}}, nil
		})
		cached, ok := handler.Cached(DatasetTasks)
		require.True(t, ok)
		require.Equal(t, [][]string{{"new"}}, cached)

		require.NoError(t, handler.Invalidate(DatasetTasks))
		_, ok = handler.Cached(DatasetTasks)
		require.False(t, ok)
	})

	t.Run(`works without cache store`, func(t *testing.T) {
		handler := NewInstance(nil, nil)
		require.Empty(t, handler.FetchWithFallback(ctx, DatasetTasks, failing))
	})
}

func TestFetchRange(t *testing.T) {
	ctx := context.TODO()

	t.Run(`tries candidates until a sheet is found`, func(t *testing.T) {
		store := &scriptedStore{grids: map[string][][]string{
			"requests!A:P": {{"row"}},
		}}
		handler := NewInstance(store, newMemoryCacheStore())
		candidates := RangeCandidates("Requests", "P")
		got := handler.FetchRange(ctx, DatasetRequests, candidates)
		require.Equal(t, [][]string{{"row"}}, got)
		require.Equal(t, []string{"Requests!A:P", "requests!A:P"}, store.reads)
	})

	t.Run(`no sheet found falls back to cache`, func(t *testing.T) {
		store := &scriptedStore{grids: map[string][][]string{
			"Requests!A:P": {{"cached"}},
		}}
		handler := NewInstance(store, newMemoryCacheStore())
		handler.FetchRange(ctx, DatasetRequests, []string{"Requests!A:P"})
		store.grids = map[string][][]string{}
		require.Equal(t, [][]string{{"cached"}}, handler.FetchRange(ctx, DatasetRequests, []string{"Requests!A:P"}))

		store.err = errors.New("quota exceeded")
		require.Equal(t, [][]string{{"cached"}}, handler.FetchRange(ctx, DatasetRequests, []string{"Requests!A:P"}))
	})

	t.Run(`no table store configured`, func(t *testing.T) {
		handler := NewInstance(nil, newMemoryCacheStore())
		require.Empty(t, handler.FetchRange(ctx, DatasetRequests, RangeCandidates("Requests", "P")))
	})
}

func TestRangeCandidates(t *testing.T) {
	require.Equal(t, []string{
		"Requests!A:P",
		"Requests!A:Z",
		"requests!A:P",
		"requests!A:Z",
		"REQUESTS!A:P",
		"REQUESTS!A:Z",
	}, RangeCandidates("Requests", "P", "Z"))

	require.Equal(t, []string{
		"'leave log'!A:B",
		"'LEAVE LOG'!A:B",
		"'Leave log'!A:B",
	}, RangeCandidates("leave log", "B"))
}
