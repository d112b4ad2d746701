package dbmodels

import (
	"encoding/json"

	"github.com/pkg/errors"
)

// LookupCacheEntry последнее успешное чтение набора данных из таблицы
type LookupCacheEntry struct {
	BaseModel
	DatasetKey string `gorm:"type:varchar(128);uniqueIndex"`
	Payload    string `gorm:"type:text"`
	RowCount   int
}

func (LookupCacheEntry) TableName() string {
	return "lookup_cache_entries"
}

func (e LookupCacheEntry) Grid() ([][]string, error) {
	grid := [][]string{}
	if e.Payload == "" {
		return grid, nil
	}
	if err := json.Unmarshal([]byte(e.Payload), &grid); err != nil {
		return nil, errors.Wrapf(err, "ошибка чтения кеша набора %v", e.DatasetKey)
	}
	return grid, nil
}

func NewLookupCacheEntry(datasetKey string, grid [][]string) (LookupCacheEntry, error) {
	body, err := json.Marshal(grid)
	if err != nil {
		return LookupCacheEntry{}, errors.Wrapf(err, "ошибка сериализации набора %v", datasetKey)
	}
	return LookupCacheEntry{
		DatasetKey: datasetKey,
		Payload:    string(body),
		RowCount:   len(grid),
	}, nil
}
