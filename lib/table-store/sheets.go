package tablestore

import (
	"context"
	"fmt"
	"net/http"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"github.com/xuri/excelize/v2"
	"google.golang.org/api/googleapi"
	"google.golang.org/api/option"
	"google.golang.org/api/sheets/v4"
)

const valueInputOption = "RAW"

// NewSheetsInstance клиент Google Sheets. Авторизация сервисным аккаунтом (credentialsFile)
// или ключом API (только чтение).
func NewSheetsInstance(ctx context.Context, spreadsheetID, credentialsFile, apiKey string) (Provider, error) {
	if spreadsheetID == "" {
		return nil, errors.New("не указан идентификатор таблицы")
	}
	opts := []option.ClientOption{}
	switch {
	case credentialsFile != "":
		opts = append(opts, option.WithCredentialsFile(credentialsFile), option.WithScopes(sheets.SpreadsheetsScope))
	case apiKey != "":
		opts = append(opts, option.WithAPIKey(apiKey))
	}
	srv, err := sheets.NewService(ctx, opts...)
	if err != nil {
		return nil, errors.Wrap(err, "ошибка создания клиента Google Sheets")
	}
	return &sheetsImpl{
		srv:           srv,
		spreadsheetID: spreadsheetID,
	}, nil
}

type sheetsImpl struct {
	srv           *sheets.Service
	spreadsheetID string
}

func (i sheetsImpl) getLogger(rangeStr string) *log.Entry {
	return log.
		WithField("spreadsheet_id", i.spreadsheetID).
		WithField("range", rangeStr)
}

func (i sheetsImpl) ReadRange(ctx context.Context, rangeStr string) ([][]string, error) {
	resp, err := i.srv.Spreadsheets.Values.Get(i.spreadsheetID, rangeStr).Context(ctx).Do()
	if err != nil {
		var apiErr *googleapi.Error
		if errors.As(err, &apiErr) && apiErr.Code == http.StatusBadRequest {
			// такого листа/диапазона нет: пробуем следующий вариант адреса
			i.getLogger(rangeStr).WithError(err).Debug("диапазон не найден в таблице")
			return nil, nil
		}
		return nil, errors.Wrapf(err, "ошибка чтения диапазона %v", rangeStr)
	}
	grid := make([][]string, 0, len(resp.Values))
	for _, row := range resp.Values {
		cells := make([]string, 0, len(row))
		for _, value := range row {
			if value == nil {
				cells = append(cells, "")
				continue
			}
			cells = append(cells, fmt.Sprint(value))
		}
		grid = append(grid, cells)
	}
	return grid, nil
}

func (i sheetsImpl) AppendRow(ctx context.Context, sheet string, cells []string) error {
	rangeStr := QuoteSheet(sheet) + "!A1"
	_, err := i.srv.Spreadsheets.Values.
		Append(i.spreadsheetID, rangeStr, &sheets.ValueRange{Values: [][]interface{}{toValues(cells)}}).
		ValueInputOption(valueInputOption).
		InsertDataOption("INSERT_ROWS").
		Context(ctx).
		Do()
	if err != nil {
		return errors.Wrapf(err, "ошибка добавления строки в лист %v", sheet)
	}
	return nil
}

func (i sheetsImpl) SetCells(ctx context.Context, sheet string, cells []Cell) error {
	data := make([]*sheets.ValueRange, 0, len(cells))
	for _, item := range cells {
		cell, err := excelize.CoordinatesToCellName(item.Col, item.Row)
		if err != nil {
			return err
		}
		data = append(data, &sheets.ValueRange{
			Range:  QuoteSheet(sheet) + "!" + cell,
			Values: [][]interface{}{{item.Value}},
		})
	}
	req := &sheets.BatchUpdateValuesRequest{
		ValueInputOption: valueInputOption,
		Data:             data,
	}
	_, err := i.srv.Spreadsheets.Values.BatchUpdate(i.spreadsheetID, req).Context(ctx).Do()
	if err != nil {
		return errors.Wrapf(err, "ошибка обновления ячеек листа %v", sheet)
	}
	return nil
}

func toValues(cells []string) []interface{} {
	values := make([]interface{}, 0, len(cells))
	for _, value := range cells {
		values = append(values, value)
	}
	return values
}
