package tasklog

import (
	"context"
	"strings"
	"time"

	lookupcache "leave-desk-backend/lib/lookup-cache"
	notifyhandler "leave-desk-backend/lib/notify"
	sheetschema "leave-desk-backend/lib/sheet-schema"
	tablestore "leave-desk-backend/lib/table-store"
	"leave-desk-backend/models"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
)

type Provider interface {
	Log(ctx context.Context, entry models.TaskEntry) (models.TaskEntry, notifyhandler.Result, error)
	List(ctx context.Context) []models.TaskEntry
	ListByEmail(ctx context.Context, email string) []models.TaskEntry
}

var Instance Provider

func NewHandler(tableStore tablestore.Provider, cache lookupcache.Provider, notifier notifyhandler.Provider, sheet string) {
	Instance = NewInstance(tableStore, cache, notifier, sheet)
}

func NewInstance(tableStore tablestore.Provider, cache lookupcache.Provider, notifier notifyhandler.Provider, sheet string) Provider {
	return impl{
		tableStore: tableStore,
		cache:      cache,
		notifier:   notifier,
		sheet:      sheet,
		ranges:     lookupcache.RangeCandidates(sheet, "I", "Z"),
		now:        time.Now,
	}
}

type impl struct {
	tableStore tablestore.Provider
	cache      lookupcache.Provider
	notifier   notifyhandler.Provider
	sheet      string
	ranges     []string
	now        func() time.Time
}

func Validate(entry models.TaskEntry) error {
	missing := []string{}
	if entry.EmployeeEmail == "" {
		missing = append(missing, "employee_email")
	}
	if entry.Company == "" {
		missing = append(missing, "company")
	}
	if entry.Platform == "" {
		missing = append(missing, "platform")
	}
	if entry.TaskKind == "" {
		missing = append(missing, "task_kind")
	}
	if len(missing) > 0 {
		return errors.Wrapf(models.ErrValidationFailed, "не заполнены поля: %v", strings.Join(missing, ", "))
	}
	if entry.Quantity < 0 || entry.ClaimedQuantity < 0 {
		return errors.Wrap(models.ErrValidationFailed, "количество не может быть отрицательным")
	}
	return nil
}

func (i impl) Log(ctx context.Context, entry models.TaskEntry) (models.TaskEntry, notifyhandler.Result, error) {
	entry.EmployeeEmail = sheetschema.NormalizeEmail(entry.EmployeeEmail)
	entry.EmployeeName = strings.TrimSpace(entry.EmployeeName)
	entry.Company = strings.TrimSpace(entry.Company)
	entry.Platform = strings.TrimSpace(entry.Platform)
	entry.Fulfillment = strings.TrimSpace(entry.Fulfillment)
	entry.TaskKind = strings.TrimSpace(entry.TaskKind)
	if err := Validate(entry); err != nil {
		return models.TaskEntry{}, "", err
	}
	if i.tableStore == nil {
		return models.TaskEntry{}, "", errors.Wrap(models.ErrConfigMissing, "табличное хранилище не настроено")
	}
	entry.Timestamp = i.now().UTC().Format(time.RFC3339)
	if err := i.tableStore.AppendRow(ctx, i.sheet, sheetschema.TaskCells(entry)); err != nil {
		return models.TaskEntry{}, "", errors.Wrapf(models.ErrRemoteUnavailable, "ошибка записи задачи: %v", err)
	}
	log.WithField("email", entry.EmployeeEmail).Info("задача записана в журнал")
	result := notifyhandler.ResultConfigMissing
	if i.notifier != nil {
		result = i.notifier.NotifyTask(ctx, entry)
	}
	return entry, result, nil
}

func (i impl) List(ctx context.Context) []models.TaskEntry {
	grid := i.cache.FetchRange(ctx, lookupcache.DatasetTasks, i.ranges)
	return sheetschema.SortNewestFirst(sheetschema.ParseTasks(grid), func(entry models.TaskEntry) string {
		return entry.Timestamp
	})
}

func (i impl) ListByEmail(ctx context.Context, email string) []models.TaskEntry {
	email = sheetschema.NormalizeEmail(email)
	result := []models.TaskEntry{}
	for _, entry := range i.List(ctx) {
		if email != "" && entry.EmployeeEmail == email {
			result = append(result, entry)
		}
	}
	return result
}
