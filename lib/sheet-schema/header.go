package sheetschema

import (
	"strings"

	"golang.org/x/text/cases"
)

const (
	LogHeaderSentinel    = "timestamp"
	TaskHeaderSentinel   = "timestamp"
	LookupHeaderSentinel = "permissiontype"
)

// HeaderKey ключ заголовка: без учета регистра, пробелов и подчеркиваний
func HeaderKey(value string) string {
	key := cases.Fold().String(strings.TrimSpace(value))
	return strings.NewReplacer(" ", "", "_", "", "-", "").Replace(key)
}

// HasHeader первая строка считается заголовком, если ее первая ячейка совпадает с маркером
func HasHeader(grid [][]string, sentinel string) bool {
	if len(grid) == 0 || len(grid[0]) == 0 {
		return false
	}
	return HeaderKey(grid[0][0]) == HeaderKey(sentinel)
}

func cellAt(row []string, idx int) string {
	if idx < 0 || idx >= len(row) {
		return ""
	}
	return row[idx]
}

func isBlankRow(row []string) bool {
	for _, cell := range row {
		if strings.TrimSpace(cell) != "" {
			return false
		}
	}
	return true
}

func NormalizeEmail(value string) string {
	return strings.ToLower(strings.TrimSpace(value))
}
