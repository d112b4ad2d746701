package db

import (
	"fmt"

	gorm_logrus "github.com/onrik/gorm-logrus"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

const (
	DriverSqlite   = "sqlite"
	DriverPostgres = "postgres"
)

var DB *gorm.DB

type ConnectParams struct {
	Driver    string
	Path      string
	Host      string
	Port      string
	Database  string
	User      string
	Password  string
	DebugMode bool
	Migrate   bool
}

func Open(params ConnectParams) (*gorm.DB, error) {
	var dialector gorm.Dialector
	switch params.Driver {
	case DriverSqlite, "":
		dialector = sqlite.Open(params.Path)
	case DriverPostgres:
		dbConnString := fmt.Sprintf("host=%s port=%s user=%s dbname=%s sslmode=disable password=%s",
			params.Host, params.Port, params.User, params.Database, params.Password)
		dialector = postgres.Open(dbConnString)
	default:
		return nil, errors.Errorf("неизвестный драйвер БД %q", params.Driver)
	}
	db, err := gorm.Open(dialector, &gorm.Config{
		Logger: gorm_logrus.New(),
	})
	if err != nil {
		return nil, errors.Wrap(err, "Ошибка подключения к БД")
	}
	if params.DebugMode {
		db = db.Debug()
	}
	if params.Migrate {
		if err = AutoMigrateDB(db); err != nil {
			return nil, err
		}
	}
	return db, nil
}

func Connect(params ConnectParams) error {
	if DB != nil {
		return nil
	}
	db, err := Open(params)
	if err != nil {
		return err
	}
	DB = db
	log.WithField("driver", params.Driver).Info("Сервис успешно подключен к БД")
	return nil
}

func PingDB() error {
	db, err := DB.DB()
	if err != nil {
		return err
	}
	return db.Ping()
}
