package lookupcache

import (
	"context"
	"strings"

	lookupcachestore "leave-desk-backend/lib/lookup-cache/store"
	tablestore "leave-desk-backend/lib/table-store"
	"leave-desk-backend/models"
	dbmodels "leave-desk-backend/models/db"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
)

// наборы данных кешируются целиком, по одному ключу на таблицу
const (
	DatasetRequests  = "requests"
	DatasetDirectory = "directory"
	DatasetLookups   = "lookups"
	DatasetTasks     = "tasks"
)

type FetchFunc func(ctx context.Context) ([][]string, error)

type Provider interface {
	// FetchWithFallback никогда не возвращает ошибку: при сбое отдает последнее успешное чтение или пустой набор
	FetchWithFallback(ctx context.Context, datasetKey string, fetch FetchFunc) [][]string
	// FetchRange читает первый найденный из вариантов адреса диапазона
	FetchRange(ctx context.Context, datasetKey string, candidates []string) [][]string
	Cached(datasetKey string) ([][]string, bool)
	Invalidate(datasetKey string) error
}

var Instance Provider

func NewHandler(tableStore tablestore.Provider, cacheStore lookupcachestore.Provider) {
	Instance = NewInstance(tableStore, cacheStore)
}

func NewInstance(tableStore tablestore.Provider, cacheStore lookupcachestore.Provider) Provider {
	return impl{
		tableStore: tableStore,
		cacheStore: cacheStore,
	}
}

type impl struct {
	tableStore tablestore.Provider
	cacheStore lookupcachestore.Provider
}

func (i impl) getLogger(datasetKey string) *log.Entry {
	return log.WithField("dataset", datasetKey)
}

func (i impl) FetchWithFallback(ctx context.Context, datasetKey string, fetch FetchFunc) [][]string {
	logger := i.getLogger(datasetKey)
	grid, err := fetch(ctx)
	if err == nil && grid == nil {
		err = errors.Wrap(models.ErrRemoteUnavailable, "таблица не вернула данных")
	}
	if err != nil {
		logger.WithError(err).Warn("ошибка чтения из таблицы, используем кеш")
		cached, ok := i.Cached(datasetKey)
		if !ok {
			return [][]string{}
		}
		return cached
	}
	grid = NormalizeGrid(grid)
	i.save(datasetKey, grid, logger)
	return grid
}

func (i impl) FetchRange(ctx context.Context, datasetKey string, candidates []string) [][]string {
	return i.FetchWithFallback(ctx, datasetKey, func(ctx context.Context) ([][]string, error) {
		if i.tableStore == nil {
			return nil, errors.Wrap(models.ErrConfigMissing, "табличное хранилище не настроено")
		}
		var lastErr error
		for _, rangeStr := range candidates {
			grid, err := i.tableStore.ReadRange(ctx, rangeStr)
			if err != nil {
				lastErr = err
				continue
			}
			if grid != nil {
				return grid, nil
			}
		}
		if lastErr != nil {
			return nil, errors.Wrap(models.ErrRemoteUnavailable, lastErr.Error())
		}
		return nil, errors.Wrapf(models.ErrRemoteUnavailable, "ни один из диапазонов не найден: %v", strings.Join(candidates, ", "))
	})
}

func (i impl) Cached(datasetKey string) ([][]string, bool) {
	if i.cacheStore == nil {
		return nil, false
	}
	logger := i.getLogger(datasetKey)
	rec, err := i.cacheStore.Get(datasetKey)
	if err != nil {
		logger.WithError(err).Warn("ошибка чтения кеша")
		return nil, false
	}
	if rec == nil {
		return nil, false
	}
	grid, err := rec.Grid()
	if err != nil {
		logger.WithError(err).Warn("ошибка разбора кеша")
		return nil, false
	}
	return grid, true
}

func (i impl) Invalidate(datasetKey string) error {
	if i.cacheStore == nil {
		return nil
	}
	return i.cacheStore.Delete(datasetKey)
}

func (i impl) save(datasetKey string, grid [][]string, logger *log.Entry) {
	if i.cacheStore == nil {
		return
	}
	rec, err := dbmodels.NewLookupCacheEntry(datasetKey, grid)
	if err == nil {
		err = i.cacheStore.Save(rec)
	}
	if err != nil {
		logger.WithError(err).Warn("ошибка сохранения кеша")
	}
}

// NormalizeGrid выравнивает строки до одинаковой ширины
func NormalizeGrid(grid [][]string) [][]string {
	width := 0
	for _, row := range grid {
		if len(row) > width {
			width = len(row)
		}
	}
	result := make([][]string, 0, len(grid))
	for _, row := range grid {
		cells := make([]string, width)
		copy(cells, row)
		result = append(result, cells)
	}
	return result
}

// RangeCandidates варианты адреса листа: регистр имени листа и ширина диапазона
func RangeCandidates(sheet string, lastCols ...string) []string {
	names := []string{sheet, strings.ToLower(sheet), strings.ToUpper(sheet)}
	if sheet != "" {
		names = append(names, strings.ToUpper(sheet[:1])+strings.ToLower(sheet[1:]))
	}
	seen := map[string]bool{}
	result := []string{}
	for _, name := range names {
		for _, col := range lastCols {
			rangeStr := tablestore.FormatRange(name, "A", col)
			if seen[rangeStr] {
				continue
			}
			seen[rangeStr] = true
			result = append(result, rangeStr)
		}
	}
	return result
}
