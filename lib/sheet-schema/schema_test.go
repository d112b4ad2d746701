package sheetschema

import (
	"testing"

	"leave-desk-backend/models"

	"github.com/stretchr/testify/require"
)

func logGrid() [][]string {
	return [][]string{
		{"2024-01-05T09:30:00Z", "REQ-AAAA0001", "request", "PENDING", "Jane Doe", "Jane.Doe@Example.com", "E-1001", "2024-01-10 - 2024-01-12", "Family trip", "", "", "leave", "Annual Leave", "", "", "John Roe"},
		{"", "", "", "", "", "", "", "", "", "", "", "", "", "", "", ""},
		{"2024-01-06T09:30:00Z", "REQ-AAAA0002", "request", "approved", "Ann Lee", "ann@example.com", "E-1002", "2024-01-15 - 2024-01-15", "Bank", "ok", "APPROVE", "permission", "In Between Permission", "12:00", "10:00"},
	}
}

func TestParseLog(t *testing.T) {
	t.Run(`header present and absent give the same records`, func(t *testing.T) {
		header := []string{"Timestamp", "Request ID", "Type", "Status", "Employee Name", "Employee Email", "Employee ID", "Dates", "Reason", "Manager Comment", "Manager Action", "Permission Type", "Leave Type", "Requested In Time", "Requested Out Time", "Alternate Staff"}
		withHeader := append([][]string{header}, logGrid()...)
		require.Equal(t, LogRecords(logGrid()), LogRecords(withHeader))

		entries := ParseLog(withHeader)
		require.Len(t, entries, 2)
		require.Equal(t, 2, entries[0].RowNumber)
		require.Equal(t, 4, entries[1].RowNumber)
	})

	t.Run(`fields bound by position`, func(t *testing.T) {
		records := LogRecords(logGrid())
		require.Len(t, records, 2)
		require.Equal(t, "jane.doe@example.com", records[0].EmployeeEmail)
		require.Equal(t, "2024-01-10", records[0].StartDate)
		require.Equal(t, "2024-01-12", records[0].EndDate)
		require.Equal(t, "John Roe", records[0].AlternateStaff)
		require.Equal(t, models.RequestStatusApproved, records[1].Status)
		require.Equal(t, models.ManagerActionApprove, records[1].ManagerAction)
		require.Equal(t, "12:00", records[1].RequestedInTime)
		require.Equal(t, "", records[1].AlternateStaff)
	})

	t.Run(`record survives row round trip`, func(t *testing.T) {
		rec := LogRecords(logGrid())[1]
		require.Equal(t, rec, LogRowFromRecord(rec).Record())
	})

	t.Run(`find by exact id`, func(t *testing.T) {
		entry, ok := FindLogEntry(logGrid(), "REQ-AAAA0002")
		require.True(t, ok)
		require.Equal(t, 3, entry.RowNumber)
		_, ok = FindLogEntry(logGrid(), "REQ-AAAA000")
		require.False(t, ok)
		_, ok = FindLogEntry(logGrid(), "")
		require.False(t, ok)
	})
}

func TestSortNewestFirst(t *testing.T) {
	t.Run(`unparsable timestamp keeps its slot`, func(t *testing.T) {
		items := []string{
			"2024-01-03T00:00:00Z",
			"2024-01-09T00:00:00Z",
			"2024-01-01T00:00:00Z",
			"not a date",
			"2024-01-05T00:00:00Z",
			"2024-01-02 10:00:00",
			"2024-01-08T00:00:00Z",
			"2024-01-04T00:00:00Z",
			"2024-01-07T00:00:00Z",
			"2024-01-06",
		}
		sorted := SortNewestFirst(items, func(item string) string {
			return item
		})
		require.Len(t, sorted, len(items))
		require.Equal(t, "not a date", sorted[3])
		require.Equal(t, "2024-01-09T00:00:00Z", sorted[0])
		prev, _ := ParseTimestamp(sorted[0])
		for idx, item := range sorted {
			if idx == 0 || idx == 3 {
				continue
			}
			at, ok := ParseTimestamp(item)
			require.True(t, ok)
			require.True(t, at.Before(prev), item)
			prev = at
		}
		require.Equal(t, "2024-01-03T00:00:00Z", items[0])
	})

	t.Run(`nothing parsable keeps order`, func(t *testing.T) {
		items := []string{"b", "a", "c"}
		require.Equal(t, items, SortNewestFirst(items, func(item string) string {
			return item
		}))
	})
}

func TestParseDirectory(t *testing.T) {
	t.Run(`synonym headers`, func(t *testing.T) {
		grid := [][]string{
			{"Emp Code", "Employee Name", "Email ID", "User Role"},
			{"E-1", "Jane Doe", " Jane@Example.com ", "Manager"},
			{"E-2", "No Mail", "", "admin"},
			{"E-3", "Bob", "bob@example.com", "unknown"},
		}
		list := ParseDirectory(grid)
		require.Len(t, list, 2)
		require.Equal(t, models.EmployeeRecord{
			Email:        "jane@example.com",
			Name:         "Jane Doe",
			EmployeeCode: "E-1",
			Role:         models.ManagerRole,
		}, list[0])
		require.Equal(t, models.EmployeeRole, list[1].Role)

		rec, ok := FindEmployee(list, "JANE@example.com")
		require.True(t, ok)
		require.Equal(t, "Jane Doe", rec.Name)
	})

	t.Run(`no role column`, func(t *testing.T) {
		grid := [][]string{
			{"email", "name"},
			{"jane@example.com", "Jane Doe"},
		}
		require.Empty(t, ParseDirectory(grid))
	})

	t.Run(`empty grid`, func(t *testing.T) {
		require.Empty(t, ParseDirectory(nil))
	})
}

func TestParseLookupOptions(t *testing.T) {
	grid := [][]string{
		{"Permission Type", "Leave Type"},
		{"leave", "Annual Leave"},
		{"permission", "Late In Permission"},
		{"Leave", "In Between Permission"},
		{"", "annual leave"},
	}
	options := ParseLookupOptions(grid)
	require.Equal(t, []string{"leave", "permission"}, options.PermissionTypes)
	require.Equal(t, []string{"Annual Leave", "Late In Permission", "In Between Permission"}, options.LeaveTypes)
}

func TestParseTasks(t *testing.T) {
	grid := [][]string{
		{"timestamp", "name", "email"},
		{"2024-01-05T09:30:00Z", "Jane Doe", "JANE@example.com", "Acme", "Web", "In house", "Listing", "12", "many"},
	}
	tasks := ParseTasks(grid)
	require.Len(t, tasks, 1)
	require.Equal(t, "jane@example.com", tasks[0].EmployeeEmail)
	require.Equal(t, 12, tasks[0].Quantity)
	require.Equal(t, 0, tasks[0].ClaimedQuantity)
	require.Equal(t, grid[1][3:8], TaskCells(tasks[0])[3:8])
}

func TestHeaderKey(t *testing.T) {
	require.Equal(t, "emailid", HeaderKey(" Email_ID "))
	require.Equal(t, "permissiontype", HeaderKey("Permission-Type"))
	require.True(t, HasHeader([][]string{{" TIMESTAMP "}}, LogHeaderSentinel))
	require.False(t, HasHeader([][]string{{"2024-01-05"}}, LogHeaderSentinel))
	require.False(t, HasHeader(nil, LogHeaderSentinel))
}
