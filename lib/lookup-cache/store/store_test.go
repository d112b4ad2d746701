package lookupcachestore

import (
	"path/filepath"
	"testing"

	dbmodels "leave-desk-backend/models/db"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func newTestDB(t *testing.T) *gorm.DB {
	db, err := gorm.Open(sqlite.Open(filepath.Join(t.TempDir(), "cache.db")), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&dbmodels.LookupCacheEntry{}))
	return db
}

func TestStore(t *testing.T) {
	store := NewInstance(newTestDB(t))

	t.Run(`missing key`, func(t *testing.T) {
		rec, err := store.Get("requests")
		require.NoError(t, err)
		require.Nil(t, rec)
	})

	t.Run(`save overwrites by dataset key`, func(t *testing.T) {
		first, err := dbmodels.NewLookupCacheEntry("requests", [][]string{{"a"}})
		require.NoError(t, err)
		require.NoError(t, store.Save(first))
		second, err := dbmodels.NewLookupCacheEntry("requests", [][]string{{"b"}, {"c"}})
		require.NoError(t, err)
		require.NoError(t, store.Save(second))

		rec, err := store.Get("requests")
		require.NoError(t, err)
		require.NotNil(t, rec)
		require.Equal(t, 2, rec.RowCount)
		grid, err := rec.Grid()
		require.NoError(t, err)
		require.Equal(t, [][]string{{"b"}, {"c"}}, grid)

		list, err := store.List()
		require.NoError(t, err)
		require.Len(t, list, 1)
	})

	t.Run(`delete`, func(t *testing.T) {
		require.NoError(t, store.Delete("requests"))
		rec, err := store.Get("requests")
		require.NoError(t, err)
		require.Nil(t, rec)
	})
}
