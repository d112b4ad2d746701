package db

import (
	dbmodels "leave-desk-backend/models/db"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

func AutoMigrateDB(db *gorm.DB) error {
	log.Info("Запуск миграций")
	if err := db.AutoMigrate(&dbmodels.LookupCacheEntry{}); err != nil {
		return errors.Wrap(err, "ошибка создания структуры LookupCacheEntry")
	}
	log.Info("Миграция прошла успешно")
	return nil
}
