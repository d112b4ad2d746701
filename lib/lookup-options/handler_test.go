package lookupoptions

import (
	"context"
	"path/filepath"
	"testing"

	lookupcache "leave-desk-backend/lib/lookup-cache"
	tablestore "leave-desk-backend/lib/table-store"

	"github.com/stretchr/testify/require"
)

func TestGet(t *testing.T) {
	ctx := context.Background()
	store, err := tablestore.NewXlsxInstance(filepath.Join(t.TempDir(), "book.xlsx"), "Lookups")
	require.NoError(t, err)
	for _, row := range [][]string{
		{"Permission Type", "Leave Type"},
		{"Leave", "Annual Leave"},
		{"Permission", "Late In Permission"},
		{"leave", "In Between Permission"},
	} {
		require.NoError(t, store.AppendRow(ctx, "Lookups", row))
	}

	options := NewInstance(lookupcache.NewInstance(store, nil), "Lookups").Get(ctx)
	require.Equal(t, []string{"Leave", "Permission"}, options.PermissionTypes)
	require.Equal(t, []string{"Annual Leave", "Late In Permission", "In Between Permission"}, options.LeaveTypes)
}
