package lookupcachestore

import (
	dbmodels "leave-desk-backend/models/db"

	"github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type Provider interface {
	Get(datasetKey string) (rec *dbmodels.LookupCacheEntry, err error)
	Save(rec dbmodels.LookupCacheEntry) error
	Delete(datasetKey string) error
	List() (list []dbmodels.LookupCacheEntry, err error)
}

func NewInstance(DB *gorm.DB) Provider {
	return &impl{
		db: DB,
	}
}

type impl struct {
	db *gorm.DB
}

func (i impl) Get(datasetKey string) (*dbmodels.LookupCacheEntry, error) {
	rec := dbmodels.LookupCacheEntry{}
	err := i.db.
		Where("dataset_key = ?", datasetKey).
		First(&rec).
		Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &rec, nil
}

// Save перезаписывает запись набора: побеждает последний завершившийся запрос
func (i impl) Save(rec dbmodels.LookupCacheEntry) error {
	err := i.db.
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "dataset_key"}},
			DoUpdates: clause.AssignmentColumns([]string{"payload", "row_count", "updated_at"}),
		}).
		Create(&rec).
		Error
	if err != nil {
		return err
	}
	return nil
}

func (i impl) Delete(datasetKey string) error {
	err := i.db.
		Where("dataset_key = ?", datasetKey).
		Delete(&dbmodels.LookupCacheEntry{}).
		Error
	if err != nil {
		return err
	}
	return nil
}

func (i impl) List() (list []dbmodels.LookupCacheEntry, err error) {
	list = []dbmodels.LookupCacheEntry{}
	err = i.db.
		Order("dataset_key ASC").
		Find(&list).
		Error
	if err != nil {
		return nil, err
	}
	return list, nil
}
