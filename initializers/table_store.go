package initializers

import (
	"context"

	"leave-desk-backend/config"
	tablestore "leave-desk-backend/lib/table-store"

	log "github.com/sirupsen/logrus"
)

const tableProviderXlsx = "xlsx"

// InitTableStore без доступа к таблице сервис продолжает работу на кеше
func InitTableStore(ctx context.Context) tablestore.Provider {
	conf := config.Conf.Sheets
	var (
		store tablestore.Provider
		err   error
	)
	if conf.Provider == tableProviderXlsx {
		store, err = tablestore.NewXlsxInstance(conf.XlsxPath, conf.LogSheet, conf.DirectorySheet, conf.LookupSheet, conf.TaskSheet)
	} else {
		store, err = tablestore.NewSheetsInstance(ctx, conf.SpreadsheetID, conf.CredentialsFile, conf.APIKey)
	}
	if err != nil {
		log.WithError(err).WithField("provider", conf.Provider).Error("ошибка подключения к таблице")
		return nil
	}
	log.WithField("provider", conf.Provider).Info("табличное хранилище подключено")
	return store
}
