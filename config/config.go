package config

import (
	"os"

	"github.com/gotify/configor"
	"github.com/joho/godotenv"
	log "github.com/sirupsen/logrus"
)

var Conf *Configuration

type Configuration struct {
	App struct {
		ListenAddr   string `default:"" env:"APP_HOST"`
		Port         int    `default:"8080"  env:"APP_PORT"`
		PublicURL    string `default:"http://localhost:8080" env:"APP_PUBLIC_URL"` // базовый адрес для ссылок в письмах
		ErrNotifyURL string `default:"" env:"APP_ERR_NOTIFY_URL"`
		BodyLimit    int64  `default:"1048576" env:"APP_BODY_LIMIT"`
	}
	Auth struct {
		JWTSecret      string `default:"" env:"JWT_SECRET"`
		JWTExpireInSec int    `default:"86400" env:"JWT_EXPIRE_IN_SEC"`
		GoogleClientID string `default:"" env:"GOOGLE_CLIENT_ID"` // при заданном id проверяются Google ID токены
	}
	Database struct {
		Driver         string `default:"sqlite" env:"DB_DRIVER"` // sqlite/postgres
		Path           string `default:"leave-desk-cache.db" env:"DB_PATH"`
		Host           string `default:"127.0.0.1" env:"DB_HOST"`
		Port           string `default:"5432" env:"DB_PORT"`
		Name           string `default:"leave-desk" env:"DB_NAME"`
		User           string `default:"postgres" env:"DB_USER"`
		Password       string `default:"postgres" env:"DB_PASSWORD"`
		MigrateOnStart *bool  `default:"true" env:"DB_MIGRATE_ON_START"`
		DebugMode      *bool  `default:"false" env:"DB_DEBUG_MODE"`
	}
	Sheets struct {
		Provider        string `default:"sheets" env:"SHEETS_PROVIDER"` // sheets/xlsx
		SpreadsheetID   string `default:"" env:"SHEETS_SPREADSHEET_ID"`
		CredentialsFile string `default:"" env:"SHEETS_CREDENTIALS_FILE"`
		APIKey          string `default:"" env:"SHEETS_API_KEY"`
		XlsxPath        string `default:"leave-desk.xlsx" env:"SHEETS_XLSX_PATH"`
		LogSheet        string `default:"Requests" env:"SHEETS_LOG_SHEET"`
		DirectorySheet  string `default:"Employees" env:"SHEETS_DIRECTORY_SHEET"`
		LookupSheet     string `default:"Lookups" env:"SHEETS_LOOKUP_SHEET"`
		TaskSheet       string `default:"Tasks" env:"SHEETS_TASK_SHEET"`
	}
	Relay struct {
		Mode          string `default:"webhook" env:"RELAY_MODE"` // webhook/smtp
		WebhookURL    string `default:"" env:"RELAY_WEBHOOK_URL"`
		ApproverEmail string `default:"" env:"RELAY_APPROVER_EMAIL"`
		SenderEmail   string `default:"" env:"RELAY_SENDER_EMAIL"`
	}
	Smtp struct {
		User       string `default:"" env:"SMTP_USER"`
		Password   string `default:"" env:"SMTP_PASSWORD"`
		Host       string `default:"" env:"SMTP_HOST"`
		Port       string `default:"" env:"SMTP_PORT"`
		TLSEnabled *bool  `default:"true" env:"SMTP_TLS_ENABLED"`
	}
	Approval struct {
		LinkSecret     string `default:"" env:"APPROVAL_LINK_SECRET"`
		RequirePending *bool  `default:"false" env:"APPROVAL_REQUIRE_PENDING"`
	}
	S3 struct {
		Endpoint             string `default:"" env:"S3_ENDPOINT"`
		AccessKeyID          string `default:"" env:"S3_ACCESS_KEY_ID"`
		SecretAccessKey      string `default:"" env:"S3_SECRET_ACCESS_KEY"`
		UseSSL               *bool  `default:"false" env:"S3_USE_SSL"`
		BucketName           string `default:"leave-desk-archive" env:"S3_BUCKET_NAME"`
		ArchiveIntervalHours int    `default:"24" env:"S3_ARCHIVE_INTERVAL_HOURS"`
	}
}

func configFiles() []string {
	return []string{"config.yml"}
}

func InitConfig() {
	if Conf != nil {
		return
	}
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		log.WithError(err).Warn("ошибка чтения .env")
	}
	conf := new(Configuration)
	err := configor.New(&configor.Config{}).Load(conf, configFiles()...)
	if err != nil {
		panic(err)
	}
	Conf = conf
}
