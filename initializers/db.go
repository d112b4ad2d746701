package initializers

import (
	"leave-desk-backend/config"
	"leave-desk-backend/db"
)

func InitDBConnection() {
	err := db.Connect(db.ConnectParams{
		Driver:    config.Conf.Database.Driver,
		Path:      config.Conf.Database.Path,
		Host:      config.Conf.Database.Host,
		Port:      config.Conf.Database.Port,
		Database:  config.Conf.Database.Name,
		User:      config.Conf.Database.User,
		Password:  config.Conf.Database.Password,
		DebugMode: *config.Conf.Database.DebugMode,
		Migrate:   *config.Conf.Database.MigrateOnStart,
	})
	if err != nil {
		panic(err.Error())
	}
}
