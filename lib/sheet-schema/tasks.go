package sheetschema

import (
	"strconv"
	"strings"

	"leave-desk-backend/models"
)

const (
	TaskColTimestamp = iota + 1
	TaskColEmployeeName
	TaskColEmployeeEmail
	TaskColCompany
	TaskColPlatform
	TaskColFulfillment
	TaskColTaskKind
	TaskColQuantity
	TaskColClaimedQuantity
)

const TaskColumns = TaskColClaimedQuantity

func ParseTasks(grid [][]string) []models.TaskEntry {
	result := make([]models.TaskEntry, 0, len(grid))
	for idx, row := range grid {
		if idx == 0 && HasHeader(grid, TaskHeaderSentinel) {
			continue
		}
		if isBlankRow(row) {
			continue
		}
		result = append(result, models.TaskEntry{
			Timestamp:       cellAt(row, TaskColTimestamp-1),
			EmployeeName:    cellAt(row, TaskColEmployeeName-1),
			EmployeeEmail:   NormalizeEmail(cellAt(row, TaskColEmployeeEmail-1)),
			Company:         cellAt(row, TaskColCompany-1),
			Platform:        cellAt(row, TaskColPlatform-1),
			Fulfillment:     cellAt(row, TaskColFulfillment-1),
			TaskKind:        cellAt(row, TaskColTaskKind-1),
			Quantity:        parseQuantity(cellAt(row, TaskColQuantity-1)),
			ClaimedQuantity: parseQuantity(cellAt(row, TaskColClaimedQuantity-1)),
		})
	}
	return result
}

func TaskCells(entry models.TaskEntry) []string {
	return []string{
		entry.Timestamp,
		entry.EmployeeName,
		entry.EmployeeEmail,
		entry.Company,
		entry.Platform,
		entry.Fulfillment,
		entry.TaskKind,
		strconv.Itoa(entry.Quantity),
		strconv.Itoa(entry.ClaimedQuantity),
	}
}

// нечисловые значения количества считаются нулем
func parseQuantity(value string) int {
	qty, err := strconv.Atoi(strings.TrimSpace(value))
	if err != nil {
		return 0
	}
	return qty
}
