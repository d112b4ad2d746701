package xlsexport

import "github.com/xuri/excelize/v2"

const columnWidth = 20

func newStyle(f *excelize.File, bold bool, alignment *excelize.Alignment) (int, error) {
	return f.NewStyle(&excelize.Style{
		Alignment: alignment,
		Font: &excelize.Font{
			Bold:   bold,
			Family: "Calibri",
			Size:   11,
		},
	})
}

func writeColumn(f *excelize.File, sheet string, col, row int, value interface{}) error {
	cell, err := excelize.CoordinatesToCellName(col, row)
	if err != nil {
		return err
	}
	return f.SetCellValue(sheet, cell, value)
}

// writeHeader пишет заголовок в строку row+1, закрепляет его и включает фильтр по колонкам
func writeHeader(f *excelize.File, sheet string, row int, headers []string) (int, error) {
	row++
	style, err := newStyle(f, true, &excelize.Alignment{Horizontal: "center"})
	if err != nil {
		return row, err
	}
	cellFirst, err := excelize.CoordinatesToCellName(1, row)
	if err != nil {
		return row, err
	}
	cellLast, err := excelize.CoordinatesToCellName(len(headers), row)
	if err != nil {
		return row, err
	}
	if err = f.SetCellStyle(sheet, cellFirst, cellLast, style); err != nil {
		return row, err
	}
	lastCol, err := excelize.ColumnNumberToName(len(headers))
	if err != nil {
		return row, err
	}
	if err = f.SetColWidth(sheet, "A", lastCol, columnWidth); err != nil {
		return row, err
	}
	for idx, value := range headers {
		if err = writeColumn(f, sheet, idx+1, row, value); err != nil {
			return row, err
		}
	}
	topLeft, err := excelize.CoordinatesToCellName(1, row+1)
	if err != nil {
		return row, err
	}
	err = f.SetPanes(sheet, &excelize.Panes{
		Freeze:      true,
		YSplit:      row,
		TopLeftCell: topLeft,
		ActivePane:  "bottomLeft",
	})
	if err != nil {
		return row, err
	}
	return row, f.AutoFilter(sheet, cellFirst+":"+cellLast, nil)
}

func applyDataCellStyle(f *excelize.File, sheet string, colFrom, rowFrom, colTo, rowTo int) error {
	style, err := newStyle(f, false, &excelize.Alignment{
		Horizontal: "left",
		Vertical:   "top",
		WrapText:   true,
	})
	if err != nil {
		return err
	}
	cellFirst, err := excelize.CoordinatesToCellName(colFrom, rowFrom)
	if err != nil {
		return err
	}
	cellLast, err := excelize.CoordinatesToCellName(colTo, rowTo)
	if err != nil {
		return err
	}
	return f.SetCellStyle(sheet, cellFirst, cellLast, style)
}
