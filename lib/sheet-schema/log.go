package sheetschema

import (
	"strings"

	"leave-desk-backend/models"
)

// Колонки журнала заявок, нумерация с 1.
// Привязка позиционная: перестановка колонок в таблице сломает разбор.
const (
	ColTimestamp = iota + 1
	ColRequestID
	ColType
	ColStatus
	ColEmployeeName
	ColEmployeeEmail
	ColEmployeeID
	ColDates
	ColReason
	ColManagerComment
	ColManagerAction
	ColPermissionType
	ColLeaveType
	ColRequestedInTime
	ColRequestedOutTime
	ColAlternateStaff
)

const LogColumns = ColAlternateStaff

type LogRow [LogColumns]string

func NewLogRow(cells []string) LogRow {
	row := LogRow{}
	copy(row[:], cells)
	return row
}

func (r LogRow) get(col int) string {
	return r[col-1]
}

func (r LogRow) Timestamp() string { return r.get(ColTimestamp) }
func (r LogRow) RequestID() string { return strings.TrimSpace(r.get(ColRequestID)) }
func (r LogRow) Type() models.RowType { return models.RowType(strings.ToLower(strings.TrimSpace(r.get(ColType)))) }
func (r LogRow) Status() models.RequestStatus { return models.ParseRequestStatus(r.get(ColStatus)) }
func (r LogRow) EmployeeName() string { return r.get(ColEmployeeName) }
func (r LogRow) EmployeeEmail() string { return NormalizeEmail(r.get(ColEmployeeEmail)) }
func (r LogRow) EmployeeID() string { return r.get(ColEmployeeID) }
func (r LogRow) Dates() string { return r.get(ColDates) }
func (r LogRow) Reason() string { return r.get(ColReason) }
func (r LogRow) ManagerComment() string { return r.get(ColManagerComment) }
func (r LogRow) ManagerAction() string { return strings.ToUpper(strings.TrimSpace(r.get(ColManagerAction))) }
func (r LogRow) PermissionType() string { return r.get(ColPermissionType) }
func (r LogRow) LeaveType() string { return r.get(ColLeaveType) }
func (r LogRow) RequestedInTime() string { return r.get(ColRequestedInTime) }
func (r LogRow) RequestedOutTime() string { return r.get(ColRequestedOutTime) }
func (r LogRow) AlternateStaff() string { return r.get(ColAlternateStaff) }

func (r LogRow) Cells() []string {
	return append([]string{}, r[:]...)
}

func (r LogRow) Record() models.RequestRecord {
	start, end := models.SplitDates(r.Dates())
	return models.RequestRecord{
		RequestID:        r.RequestID(),
		Type:             r.Type(),
		Status:           r.Status(),
		Timestamp:        r.Timestamp(),
		EmployeeName:     r.EmployeeName(),
		EmployeeEmail:    r.EmployeeEmail(),
		EmployeeID:       r.EmployeeID(),
		StartDate:        start,
		EndDate:          end,
		Reason:           r.Reason(),
		ManagerComment:   r.ManagerComment(),
		ManagerAction:    models.ManagerAction(r.ManagerAction()),
		PermissionType:   r.PermissionType(),
		LeaveType:        r.LeaveType(),
		RequestedInTime:  r.RequestedInTime(),
		RequestedOutTime: r.RequestedOutTime(),
		AlternateStaff:   r.AlternateStaff(),
	}
}

func LogRowFromRecord(rec models.RequestRecord) LogRow {
	row := LogRow{}
	row[ColTimestamp-1] = rec.Timestamp
	row[ColRequestID-1] = rec.RequestID
	row[ColType-1] = string(rec.Type)
	row[ColStatus-1] = string(rec.Status)
	row[ColEmployeeName-1] = rec.EmployeeName
	row[ColEmployeeEmail-1] = rec.EmployeeEmail
	row[ColEmployeeID-1] = rec.EmployeeID
	row[ColDates-1] = rec.Dates()
	row[ColReason-1] = rec.Reason
	row[ColManagerComment-1] = rec.ManagerComment
	row[ColManagerAction-1] = string(rec.ManagerAction)
	row[ColPermissionType-1] = rec.PermissionType
	row[ColLeaveType-1] = rec.LeaveType
	row[ColRequestedInTime-1] = rec.RequestedInTime
	row[ColRequestedOutTime-1] = rec.RequestedOutTime
	row[ColAlternateStaff-1] = rec.AlternateStaff
	return row
}

type LogEntry struct {
	RowNumber int // номер строки на листе, начиная с 1
	Row       LogRow
}

func (e LogEntry) Record() models.RequestRecord {
	return e.Row.Record()
}

// ParseLog разбирает журнал, прочитанный с первой строки листа
func ParseLog(grid [][]string) []LogEntry {
	result := make([]LogEntry, 0, len(grid))
	for idx, cells := range grid {
		if idx == 0 && HasHeader(grid, LogHeaderSentinel) {
			continue
		}
		if isBlankRow(cells) {
			continue
		}
		result = append(result, LogEntry{
			RowNumber: idx + 1,
			Row:       NewLogRow(cells),
		})
	}
	return result
}

func LogRecords(grid [][]string) []models.RequestRecord {
	entries := ParseLog(grid)
	result := make([]models.RequestRecord, 0, len(entries))
	for _, entry := range entries {
		result = append(result, entry.Record())
	}
	return result
}

// FindLogEntry поиск строки по точному совпадению идентификатора заявки
func FindLogEntry(grid [][]string, requestID string) (LogEntry, bool) {
	requestID = strings.TrimSpace(requestID)
	if requestID == "" {
		return LogEntry{}, false
	}
	for _, entry := range ParseLog(grid) {
		if entry.Row.RequestID() == requestID {
			return entry, true
		}
	}
	return LogEntry{}, false
}
