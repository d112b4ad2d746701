package tasklog

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	lookupcache "leave-desk-backend/lib/lookup-cache"
	tablestore "leave-desk-backend/lib/table-store"
	"leave-desk-backend/models"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/require"
)

func TestTaskLog(t *testing.T) {
	ctx := context.TODO()
	store, err := tablestore.NewXlsxInstance(filepath.Join(t.TempDir(), "book.xlsx"), "Tasks")
	require.NoError(t, err)
	handler := NewInstance(store, lookupcache.NewInstance(store, nil), nil, "Tasks").(impl)
	handler.now = func() time.Time {
		return time.Date(2024, 1, 5, 9, 30, 0, 0, time.UTC)
	}

	t.Run(`logged entry is listed for its owner`, func(t *testing.T) {
		entry, _, err := handler.Log(ctx, models.TaskEntry{
			EmployeeName:    "Jane Doe",
			EmployeeEmail:   "Jane@Example.com",
			Company:         "Acme",
			Platform:        "Web",
			Fulfillment:     "In house",
			TaskKind:        "Listing",
			Quantity:        12,
			ClaimedQuantity: 10,
		})
		require.NoError(t, err)
		require.Equal(t, "2024-01-05T09:30:00Z", entry.Timestamp)

		list := handler.ListByEmail(ctx, "jane@example.com")
		require.Len(t, list, 1)
		require.Equal(t, entry, list[0])
		require.Empty(t, handler.ListByEmail(ctx, "bob@example.com"))
	})

	t.Run(`validation`, func(t *testing.T) {
		_, _, err := handler.Log(ctx, models.TaskEntry{EmployeeEmail: "jane@example.com", Company: "Acme"})
		require.True(t, errors.Is(err, models.ErrValidationFailed))

		_, _, err = handler.Log(ctx, models.TaskEntry{
			EmployeeEmail: "jane@example.com",
			Company:       "Acme",
			Platform:      "Web",
			TaskKind:      "Listing",
			Quantity:      -1,
		})
		require.True(t, errors.Is(err, models.ErrValidationFailed))
		require.Len(t, handler.List(ctx), 1)
	})
}
