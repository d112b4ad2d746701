package sheetschema

import (
	"strings"

	"leave-desk-backend/models"
)

// ParseLookupOptions справочник: колонка A - виды отсутствия, колонка B - типы отпуска
func ParseLookupOptions(grid [][]string) models.LookupOptions {
	result := models.LookupOptions{
		PermissionTypes: []string{},
		LeaveTypes:      []string{},
	}
	seenPermission := map[string]bool{}
	seenLeave := map[string]bool{}
	for idx, row := range grid {
		if idx == 0 && HasHeader(grid, LookupHeaderSentinel) {
			continue
		}
		if value := strings.TrimSpace(cellAt(row, 0)); value != "" && !seenPermission[HeaderKey(value)] {
			seenPermission[HeaderKey(value)] = true
			result.PermissionTypes = append(result.PermissionTypes, value)
		}
		if value := strings.TrimSpace(cellAt(row, 1)); value != "" && !seenLeave[HeaderKey(value)] {
			seenLeave[HeaderKey(value)] = true
			result.LeaveTypes = append(result.LeaveTypes, value)
		}
	}
	return result
}
