package directoryhandler

import (
	"context"
	"path/filepath"
	"strings"
	"testing"

	lookupcache "leave-desk-backend/lib/lookup-cache"
	tablestore "leave-desk-backend/lib/table-store"
	"leave-desk-backend/models"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/require"
)

func TestDirectory(t *testing.T) {
	ctx := context.Background()
	store, err := tablestore.NewXlsxInstance(filepath.Join(t.TempDir(), "book.xlsx"), "Employees")
	require.NoError(t, err)
	require.NoError(t, store.AppendRow(ctx, "Employees", []string{"Employee Name", "Email ID", "Employee Code", "Role"}))
	require.NoError(t, store.AppendRow(ctx, "Employees", []string{"Jane Doe", "Jane.Doe@Example.com", "E-17", "Manager"}))
	require.NoError(t, store.AppendRow(ctx, "Employees", []string{"John Roe", "john@example.com", "E-18", ""}))

	directory := NewInstance(lookupcache.NewInstance(store, nil), "Employees")

	list := directory.List(ctx)
	require.Len(t, list, 2)

	rec := directory.GetByEmail(ctx, " JANE.DOE@example.com ")
	require.NotNil(t, rec)
	require.Equal(t, "jane.doe@example.com", rec.Email)
	require.Equal(t, "E-17", rec.EmployeeCode)
	require.Equal(t, models.ManagerRole, rec.Role)

	rec = directory.GetByEmail(ctx, "john@example.com")
	require.NotNil(t, rec)
	require.Equal(t, models.EmployeeRole, rec.Role)

	require.Nil(t, directory.GetByEmail(ctx, "nobody@example.com"))
}

type narrowSheetStore struct {
	tablestore.Provider
}

// лист уже 26 колонок: широкий диапазон отклоняется, как в Google Sheets
func (s narrowSheetStore) ReadRange(ctx context.Context, rangeStr string) ([][]string, error) {
	if strings.HasSuffix(rangeStr, ":Z") {
		return nil, errors.Errorf("range %v exceeds grid limits", rangeStr)
	}
	return s.Provider.ReadRange(ctx, rangeStr)
}

func TestDirectoryNarrowSheet(t *testing.T) {
	ctx := context.Background()
	store, err := tablestore.NewXlsxInstance(filepath.Join(t.TempDir(), "book.xlsx"), "Employees")
	require.NoError(t, err)
	require.NoError(t, store.AppendRow(ctx, "Employees", []string{"Name", "Email", "Role"}))
	require.NoError(t, store.AppendRow(ctx, "Employees", []string{"Jane Doe", "jane.doe@example.com", "admin"}))

	directory := NewInstance(lookupcache.NewInstance(narrowSheetStore{Provider: store}, nil), "Employees")
	rec := directory.GetByEmail(ctx, "jane.doe@example.com")
	require.NotNil(t, rec)
	require.Equal(t, models.AdminRole, rec.Role)
}

func TestDirectoryUnavailable(t *testing.T) {
	directory := NewInstance(lookupcache.NewInstance(nil, nil), "Employees")
	require.Empty(t, directory.List(context.Background()))
	require.Nil(t, directory.GetByEmail(context.Background(), "jane.doe@example.com"))
}
