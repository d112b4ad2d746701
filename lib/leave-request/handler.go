package leaverequesthandler

import (
	"context"
	"strings"
	"time"

	lookupcache "leave-desk-backend/lib/lookup-cache"
	notifyhandler "leave-desk-backend/lib/notify"
	sheetschema "leave-desk-backend/lib/sheet-schema"
	tablestore "leave-desk-backend/lib/table-store"
	"leave-desk-backend/lib/utils/lock"
	"leave-desk-backend/models"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
)

type Provider interface {
	Create(draft models.RequestDraft) (models.RequestRecord, error)
	Persist(ctx context.Context, rec models.RequestRecord) error
	// Submit создание, запись в журнал и уведомление согласующего
	Submit(ctx context.Context, draft models.RequestDraft) (models.RequestRecord, notifyhandler.Result, error)
	Decide(ctx context.Context, requestID string, decision models.RequestStatus, comment string) (models.RequestRecord, error)
	// DecideAndNotify решение и уведомление сотрудника, уведомление только после записи в журнал
	DecideAndNotify(ctx context.Context, requestID string, decision models.RequestStatus, comment string) (models.RequestRecord, notifyhandler.Result, error)
	// DecideOnce то же, что DecideAndNotify, но повторный вызов по той же заявке
	// до завершения первого отклоняется с ErrDecisionInFlight
	DecideOnce(ctx context.Context, requestID string, decision models.RequestStatus, comment string) (models.RequestRecord, notifyhandler.Result, error)
	ListAll(ctx context.Context) []models.RequestRecord
	ListByEmail(ctx context.Context, email string) []models.RequestRecord
	ListPending(ctx context.Context) []models.RequestRecord
	ListHistory(ctx context.Context) []models.RequestRecord
	GetByID(ctx context.Context, requestID string) (models.RequestRecord, error)
}

var Instance Provider

type Config struct {
	LogSheet       string
	RequirePending bool
}

func NewHandler(tableStore tablestore.Provider, cache lookupcache.Provider, notifier notifyhandler.Provider, cfg Config) {
	Instance = NewInstance(tableStore, cache, notifier, cfg)
}

func NewInstance(tableStore tablestore.Provider, cache lookupcache.Provider, notifier notifyhandler.Provider, cfg Config) Provider {
	return impl{
		tableStore: tableStore,
		cache:      cache,
		notifier:   notifier,
		cfg:        cfg,
		ranges:     lookupcache.RangeCandidates(cfg.LogSheet, "P", "Z"),
		now:        time.Now,
		newID:      NewRequestID,
	}
}

type impl struct {
	tableStore tablestore.Provider
	cache      lookupcache.Provider
	notifier   notifyhandler.Provider
	cfg        Config
	ranges     []string
	now        func() time.Time
	newID      func() string
}

func (i impl) getLogger(requestID string) *log.Entry {
	return log.WithField("request_id", requestID)
}

func (i impl) Persist(ctx context.Context, rec models.RequestRecord) error {
	if i.tableStore == nil {
		return errors.Wrap(models.ErrConfigMissing, "табличное хранилище не настроено")
	}
	err := i.tableStore.AppendRow(ctx, i.cfg.LogSheet, sheetschema.LogRowFromRecord(rec).Cells())
	if err != nil {
		return errors.Wrapf(models.ErrRemoteUnavailable, "ошибка записи заявки в журнал: %v", err)
	}
	i.getLogger(rec.RequestID).Info("заявка записана в журнал")
	return nil
}

func (i impl) Submit(ctx context.Context, draft models.RequestDraft) (models.RequestRecord, notifyhandler.Result, error) {
	rec, err := i.Create(draft)
	if err != nil {
		return models.RequestRecord{}, "", err
	}
	if err = i.Persist(ctx, rec); err != nil {
		return models.RequestRecord{}, "", err
	}
	return rec, i.notify(func() notifyhandler.Result {
		return i.notifier.NotifyNewRequest(ctx, rec)
	}), nil
}

func (i impl) Decide(ctx context.Context, requestID string, decision models.RequestStatus, comment string) (models.RequestRecord, error) {
	requestID = strings.TrimSpace(requestID)
	logger := i.getLogger(requestID).WithField("decision", decision)
	if requestID == "" {
		return models.RequestRecord{}, errors.Wrap(models.ErrValidationFailed, "не указан идентификатор заявки")
	}
	if !decision.IsDecision() {
		return models.RequestRecord{}, errors.Wrapf(models.ErrValidationFailed, "недопустимое решение %q", decision)
	}
	sheet, grid, err := i.readLog(ctx)
	if err != nil {
		return models.RequestRecord{}, err
	}
	entry, ok := sheetschema.FindLogEntry(grid, requestID)
	if !ok {
		return models.RequestRecord{}, errors.Wrap(models.ErrNotFound, requestID)
	}
	if i.cfg.RequirePending && !entry.Row.Status().IsPending() {
		return models.RequestRecord{}, errors.Wrapf(models.ErrAlreadyDecided, "%v: %v", requestID, entry.Row.Status())
	}

	action := models.ActionForStatus(decision)
	cells := []tablestore.Cell{
		{Row: entry.RowNumber, Col: sheetschema.ColStatus, Value: string(decision)},
		{Row: entry.RowNumber, Col: sheetschema.ColManagerComment, Value: comment},
		{Row: entry.RowNumber, Col: sheetschema.ColManagerAction, Value: string(action)},
	}
	if err = i.tableStore.SetCells(ctx, sheet, cells); err != nil {
		return models.RequestRecord{}, errors.Wrapf(models.ErrRemoteUnavailable, "ошибка записи решения: %v", err)
	}
	logger.WithField("row", entry.RowNumber).Info("решение по заявке записано")

	rec := entry.Record()
	rec.Status = decision
	rec.ManagerComment = comment
	rec.ManagerAction = action
	return rec, nil
}

func (i impl) DecideAndNotify(ctx context.Context, requestID string, decision models.RequestStatus, comment string) (models.RequestRecord, notifyhandler.Result, error) {
	rec, err := i.Decide(ctx, requestID, decision, comment)
	if err != nil {
		return models.RequestRecord{}, "", err
	}
	return rec, i.notify(func() notifyhandler.Result {
		return i.notifier.NotifyDecision(ctx, rec)
	}), nil
}

func (i impl) DecideOnce(ctx context.Context, requestID string, decision models.RequestStatus, comment string) (rec models.RequestRecord, result notifyhandler.Result, err error) {
	requestID = strings.TrimSpace(requestID)
	acquired, err := lock.TryRun("decision:"+requestID, func() (runErr error) {
		rec, result, runErr = i.DecideAndNotify(ctx, requestID, decision, comment)
		return runErr
	})
	if !acquired {
		i.getLogger(requestID).Warn("повторное решение по заявке до завершения предыдущего")
		return models.RequestRecord{}, "", errors.Wrap(models.ErrDecisionInFlight, requestID)
	}
	return rec, result, err
}

func (i impl) notify(send func() notifyhandler.Result) notifyhandler.Result {
	if i.notifier == nil {
		return notifyhandler.ResultConfigMissing
	}
	return send()
}

// readLog решение всегда ищет строку по актуальному состоянию таблицы, без кеша
func (i impl) readLog(ctx context.Context) (sheet string, grid [][]string, err error) {
	if i.tableStore == nil {
		return "", nil, errors.Wrap(models.ErrConfigMissing, "табличное хранилище не настроено")
	}
	var lastErr error
	for _, rangeStr := range i.ranges {
		grid, err = i.tableStore.ReadRange(ctx, rangeStr)
		if err != nil {
			lastErr = err
			continue
		}
		if grid == nil {
			continue
		}
		sheetRange, err := tablestore.ParseRange(rangeStr)
		if err != nil {
			return "", nil, err
		}
		return sheetRange.Sheet, grid, nil
	}
	if lastErr != nil {
		return "", nil, errors.Wrapf(models.ErrRemoteUnavailable, "ошибка чтения журнала: %v", lastErr)
	}
	return "", nil, errors.Wrapf(models.ErrConfigMissing, "лист журнала %v не найден", i.cfg.LogSheet)
}

func (i impl) ListAll(ctx context.Context) []models.RequestRecord {
	grid := i.cache.FetchRange(ctx, lookupcache.DatasetRequests, i.ranges)
	return sheetschema.SortNewestFirst(sheetschema.LogRecords(grid), func(rec models.RequestRecord) string {
		return rec.Timestamp
	})
}

func (i impl) ListByEmail(ctx context.Context, email string) []models.RequestRecord {
	email = sheetschema.NormalizeEmail(email)
	return i.filter(ctx, func(rec models.RequestRecord) bool {
		return email != "" && rec.EmployeeEmail == email
	})
}

func (i impl) ListPending(ctx context.Context) []models.RequestRecord {
	return i.filter(ctx, func(rec models.RequestRecord) bool {
		return rec.IsPending() && rec.Type == models.RowTypeRequest
	})
}

func (i impl) ListHistory(ctx context.Context) []models.RequestRecord {
	return i.filter(ctx, func(rec models.RequestRecord) bool {
		return !rec.IsPending()
	})
}

func (i impl) GetByID(ctx context.Context, requestID string) (models.RequestRecord, error) {
	requestID = strings.TrimSpace(requestID)
	for _, rec := range i.ListAll(ctx) {
		if requestID != "" && rec.RequestID == requestID {
			return rec, nil
		}
	}
	return models.RequestRecord{}, errors.Wrap(models.ErrNotFound, requestID)
}

func (i impl) filter(ctx context.Context, match func(rec models.RequestRecord) bool) []models.RequestRecord {
	result := []models.RequestRecord{}
	for _, rec := range i.ListAll(ctx) {
		if match(rec) {
			result = append(result, rec)
		}
	}
	return result
}
