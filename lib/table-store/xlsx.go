package tablestore

import (
	"context"
	"os"
	"sync"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"github.com/xuri/excelize/v2"
)

// NewXlsxInstance локальная книга xlsx с той же раскладкой листов, что и удаленная таблица.
// Отсутствующие листы из sheets создаются пустыми.
func NewXlsxInstance(path string, sheets ...string) (Provider, error) {
	var f *excelize.File
	if _, err := os.Stat(path); err == nil {
		f, err = excelize.OpenFile(path)
		if err != nil {
			return nil, errors.Wrapf(err, "ошибка открытия книги %v", path)
		}
	} else {
		f = excelize.NewFile()
	}
	i := &xlsxImpl{path: path, file: f}
	created, err := i.ensureSheets(sheets)
	if err != nil {
		return nil, err
	}
	if created {
		if err = i.file.SaveAs(i.path); err != nil {
			return nil, errors.Wrapf(err, "ошибка сохранения книги %v", path)
		}
	}
	return i, nil
}

type xlsxImpl struct {
	mu   sync.Mutex
	path string
	file *excelize.File
}

func (i *xlsxImpl) ensureSheets(sheets []string) (created bool, err error) {
	defaultSheet := i.file.GetSheetName(0)
	for _, sheet := range sheets {
		if i.hasSheet(sheet) {
			continue
		}
		if defaultSheet == "Sheet1" && len(i.file.GetSheetList()) == 1 {
			// новая книга: переименовываем лист по умолчанию
			if err = i.file.SetSheetName(defaultSheet, sheet); err != nil {
				return false, errors.Wrapf(err, "ошибка создания листа %v", sheet)
			}
			defaultSheet = sheet
		} else if _, err = i.file.NewSheet(sheet); err != nil {
			return false, errors.Wrapf(err, "ошибка создания листа %v", sheet)
		}
		created = true
	}
	return created, nil
}

// hasSheet имя листа сравнивается с учетом регистра, как в адресе диапазона
func (i *xlsxImpl) hasSheet(sheet string) bool {
	for _, name := range i.file.GetSheetList() {
		if name == sheet {
			return true
		}
	}
	return false
}

func (i *xlsxImpl) ReadRange(ctx context.Context, rangeStr string) ([][]string, error) {
	sheetRange, err := ParseRange(rangeStr)
	if err != nil {
		return nil, err
	}
	i.mu.Lock()
	defer i.mu.Unlock()
	if !i.hasSheet(sheetRange.Sheet) {
		log.WithField("range", rangeStr).Debug("лист не найден в книге")
		return nil, nil
	}
	rows, err := i.file.GetRows(sheetRange.Sheet)
	if err != nil {
		return nil, errors.Wrapf(err, "ошибка чтения листа %v", sheetRange.Sheet)
	}
	return sheetRange.Clip(rows), nil
}

func (i *xlsxImpl) AppendRow(ctx context.Context, sheet string, cells []string) error {
	i.mu.Lock()
	defer i.mu.Unlock()
	if !i.hasSheet(sheet) {
		return errors.Errorf("лист %v не найден", sheet)
	}
	rows, err := i.file.GetRows(sheet)
	if err != nil {
		return errors.Wrapf(err, "ошибка чтения листа %v", sheet)
	}
	cell, err := excelize.CoordinatesToCellName(1, len(rows)+1)
	if err != nil {
		return err
	}
	values := toValues(cells)
	if err = i.file.SetSheetRow(sheet, cell, &values); err != nil {
		return errors.Wrapf(err, "ошибка добавления строки в лист %v", sheet)
	}
	return i.save()
}

func (i *xlsxImpl) SetCells(ctx context.Context, sheet string, cells []Cell) error {
	i.mu.Lock()
	defer i.mu.Unlock()
	if !i.hasSheet(sheet) {
		return errors.Errorf("лист %v не найден", sheet)
	}
	for _, item := range cells {
		cell, err := excelize.CoordinatesToCellName(item.Col, item.Row)
		if err != nil {
			return err
		}
		if err = i.file.SetCellValue(sheet, cell, item.Value); err != nil {
			return errors.Wrapf(err, "ошибка записи ячейки %v!%v", sheet, cell)
		}
	}
	return i.save()
}

func (i *xlsxImpl) save() error {
	if err := i.file.SaveAs(i.path); err != nil {
		return errors.Wrapf(err, "ошибка сохранения книги %v", i.path)
	}
	return nil
}
