package xlsexport

import (
	"testing"

	"leave-desk-backend/models"

	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

func TestExportArchive(t *testing.T) {
	requests := []models.RequestRecord{
		{
			RequestID:     "REQ-AB12CD34",
			Status:        models.RequestStatusApproved,
			Timestamp:     "2024-01-05T09:30:00Z",
			EmployeeName:  "Jane Doe",
			EmployeeEmail: "jane.doe@example.com",
			StartDate:     "2024-01-10",
			EndDate:       "2024-01-12",
			ManagerAction: models.ManagerActionApprove,
		},
	}
	tasks := []models.TaskEntry{
		{EmployeeName: "Jane Doe", Company: "Acme", Quantity: 3},
	}
	buf, err := impl{}.ExportArchive(requests, tasks)
	require.NoError(t, err)

	f, err := excelize.OpenReader(buf)
	require.NoError(t, err)
	require.Equal(t, []string{requestSheet, taskSheet}, f.GetSheetList())

	rows, err := f.GetRows(requestSheet)
	require.NoError(t, err)
	require.Len(t, rows, 2)
	require.Equal(t, "Request ID", rows[0][1])
	require.Equal(t, "REQ-AB12CD34", rows[1][1])
	require.Equal(t, "Approved", rows[1][2])
	require.Equal(t, "2024-01-10 - 2024-01-12", rows[1][8])

	rows, err = f.GetRows(taskSheet)
	require.NoError(t, err)
	require.Len(t, rows, 2)
	require.Equal(t, "Acme", rows[1][3])
	require.Equal(t, "3", rows[1][7])
}
