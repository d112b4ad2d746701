package xlsexport

import (
	"bytes"

	"leave-desk-backend/models"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"github.com/xuri/excelize/v2"
)

type Provider interface {
	// ExportArchive книга с листами заявок и задач
	ExportArchive(requests []models.RequestRecord, tasks []models.TaskEntry) (*bytes.Buffer, error)
}

var Instance Provider

func NewHandler() {
	Instance = impl{}
}

type impl struct{}

const (
	requestSheet = "Requests"
	taskSheet    = "Tasks"
)

var requestHeaders = []string{"Timestamp", "Request ID", "Status", "Employee", "Email", "Employee ID", "Permission type", "Leave type", "Dates", "Out time", "In time", "Reason", "Alternate staff", "Manager action", "Manager comment"}

var taskHeaders = []string{"Timestamp", "Employee", "Email", "Company", "Platform", "Fulfillment", "Task", "Quantity", "Claimed quantity"}

func (i impl) ExportArchive(requests []models.RequestRecord, tasks []models.TaskEntry) (*bytes.Buffer, error) {
	f := excelize.NewFile()
	defer func() {
		if err := f.Close(); err != nil {
			log.WithError(err).Error("ошибка закрытия файла")
		}
	}()
	if err := f.SetSheetName(f.GetSheetName(0), requestSheet); err != nil {
		return nil, errors.Wrap(err, "ошибка создания листа заявок")
	}
	if _, err := f.NewSheet(taskSheet); err != nil {
		return nil, errors.Wrap(err, "ошибка создания листа задач")
	}

	row, err := writeHeader(f, requestSheet, 0, requestHeaders)
	if err != nil {
		return nil, errors.Wrap(err, "ошибка формирования заголовка в xlsx")
	}
	if len(requests) != 0 {
		if err = writeRows(f, requestSheet, row, len(requestHeaders), requestRows(requests)); err != nil {
			return nil, errors.Wrap(err, "ошибка формирования таблицы заявок в xlsx")
		}
	}

	row, err = writeHeader(f, taskSheet, 0, taskHeaders)
	if err != nil {
		return nil, errors.Wrap(err, "ошибка формирования заголовка в xlsx")
	}
	if len(tasks) != 0 {
		if err = writeRows(f, taskSheet, row, len(taskHeaders), taskRows(tasks)); err != nil {
			return nil, errors.Wrap(err, "ошибка формирования таблицы задач в xlsx")
		}
	}
	return f.WriteToBuffer()
}

func requestRows(list []models.RequestRecord) [][]interface{} {
	rows := make([][]interface{}, 0, len(list))
	for _, item := range list {
		rows = append(rows, []interface{}{
			item.Timestamp,
			item.RequestID,
			item.Status.ToHuman(),
			item.EmployeeName,
			item.EmployeeEmail,
			item.EmployeeID,
			item.PermissionType,
			item.LeaveType,
			item.Dates(),
			item.RequestedOutTime,
			item.RequestedInTime,
			item.Reason,
			item.AlternateStaff,
			string(item.ManagerAction),
			item.ManagerComment,
		})
	}
	return rows
}

func taskRows(list []models.TaskEntry) [][]interface{} {
	rows := make([][]interface{}, 0, len(list))
	for _, item := range list {
		rows = append(rows, []interface{}{
			item.Timestamp,
			item.EmployeeName,
			item.EmployeeEmail,
			item.Company,
			item.Platform,
			item.Fulfillment,
			item.TaskKind,
			item.Quantity,
			item.ClaimedQuantity,
		})
	}
	return rows
}

func writeRows(f *excelize.File, sheet string, row, cols int, rows [][]interface{}) error {
	if err := applyDataCellStyle(f, sheet, 1, row+1, cols, row+len(rows)); err != nil {
		return err
	}
	for _, values := range rows {
		row++
		for idx, value := range values {
			if err := writeColumn(f, sheet, idx+1, row, value); err != nil {
				return err
			}
		}
	}
	return nil
}
