package tablestore

import (
	"fmt"
	"strconv"
	"strings"
	"unicode"

	"github.com/pkg/errors"
	"github.com/xuri/excelize/v2"
)

// SheetRange разобранный диапазон в A1 нотации, нулевые границы означают "без ограничения"
type SheetRange struct {
	Sheet   string
	FromCol int
	ToCol   int
	FromRow int
	ToRow   int
}

func ParseRange(rangeStr string) (SheetRange, error) {
	rangeStr = strings.TrimSpace(rangeStr)
	if rangeStr == "" {
		return SheetRange{}, errors.New("пустой диапазон")
	}
	idx := strings.LastIndex(rangeStr, "!")
	if idx < 0 {
		return SheetRange{Sheet: unquoteSheet(rangeStr)}, nil
	}
	result := SheetRange{Sheet: unquoteSheet(rangeStr[:idx])}
	if result.Sheet == "" {
		return SheetRange{}, errors.Errorf("не указан лист в диапазоне %q", rangeStr)
	}
	refs := strings.SplitN(rangeStr[idx+1:], ":", 2)
	var err error
	result.FromCol, result.FromRow, err = parseRef(refs[0])
	if err != nil {
		return SheetRange{}, errors.Wrapf(err, "некорректный диапазон %q", rangeStr)
	}
	if len(refs) == 2 {
		result.ToCol, result.ToRow, err = parseRef(refs[1])
		if err != nil {
			return SheetRange{}, errors.Wrapf(err, "некорректный диапазон %q", rangeStr)
		}
	} else {
		// одиночная ячейка
		result.ToCol, result.ToRow = result.FromCol, result.FromRow
	}
	return result, nil
}

// Clip вырезает диапазон из всех строк листа, номера строк считаются с 1
func (r SheetRange) Clip(rows [][]string) [][]string {
	result := make([][]string, 0, len(rows))
	fromCol := 0
	if r.FromCol > 0 {
		fromCol = r.FromCol - 1
	}
	for idx, row := range rows {
		rowNum := idx + 1
		if r.FromRow > 0 && rowNum < r.FromRow {
			continue
		}
		if r.ToRow > 0 && rowNum > r.ToRow {
			break
		}
		toCol := len(row)
		if r.ToCol > 0 && r.ToCol < toCol {
			toCol = r.ToCol
		}
		if fromCol >= toCol {
			result = append(result, []string{})
			continue
		}
		cells := make([]string, toCol-fromCol)
		copy(cells, row[fromCol:toCol])
		result = append(result, cells)
	}
	return result
}

// FormatRange диапазон столбцов листа, например 'Requests'!A:P
func FormatRange(sheet, fromCol, toCol string) string {
	return fmt.Sprintf("%s!%s:%s", QuoteSheet(sheet), fromCol, toCol)
}

func QuoteSheet(name string) string {
	for _, r := range name {
		if !unicode.IsLetter(r) && !unicode.IsDigit(r) && r != '_' {
			return "'" + strings.ReplaceAll(name, "'", "''") + "'"
		}
	}
	return name
}

func unquoteSheet(name string) string {
	name = strings.TrimSpace(name)
	if len(name) >= 2 && strings.HasPrefix(name, "'") && strings.HasSuffix(name, "'") {
		name = strings.ReplaceAll(name[1:len(name)-1], "''", "'")
	}
	return name
}

func parseRef(ref string) (col, row int, err error) {
	ref = strings.ToUpper(strings.TrimSpace(ref))
	split := strings.IndexFunc(ref, unicode.IsDigit)
	letters, digits := ref, ""
	if split >= 0 {
		letters, digits = ref[:split], ref[split:]
	}
	if letters != "" {
		col, err = excelize.ColumnNameToNumber(letters)
		if err != nil {
			return 0, 0, err
		}
	}
	if digits != "" {
		row, err = strconv.Atoi(digits)
		if err != nil {
			return 0, 0, errors.Wrapf(err, "некорректный номер строки %q", digits)
		}
	}
	return col, row, nil
}
