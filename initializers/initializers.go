package initializers

import (
	"context"
	"time"

	"leave-desk-backend/config"
	"leave-desk-backend/db"
	"leave-desk-backend/fiberlog"
	auditarchive "leave-desk-backend/lib/audit-archive"
	directoryhandler "leave-desk-backend/lib/directory"
	xlsexport "leave-desk-backend/lib/export/xls"
	leaverequesthandler "leave-desk-backend/lib/leave-request"
	lookupcache "leave-desk-backend/lib/lookup-cache"
	lookupcachestore "leave-desk-backend/lib/lookup-cache/store"
	lookupoptions "leave-desk-backend/lib/lookup-options"
	notifyhandler "leave-desk-backend/lib/notify"
	sessionhandler "leave-desk-backend/lib/session"
	tasklog "leave-desk-backend/lib/task-log"
)

var LoggerConfig *fiberlog.Config

func InitAllServices(ctx context.Context) {
	LoggerConfig = InitLogger()
	config.InitConfig()
	InitDBConnection()
	InitS3(ctx)
	InitSmtp()
	InitDomainServices(ctx)
	go initWorkers(ctx)
}

// InitDomainServices сервисы заявок без http и фоновых задач, используется также в CLI
func InitDomainServices(ctx context.Context) {
	tableStore := InitTableStore(ctx)
	lookupcache.NewHandler(tableStore, lookupcachestore.NewInstance(db.DB))
	directoryhandler.NewHandler(lookupcache.Instance, config.Conf.Sheets.DirectorySheet)
	lookupoptions.NewHandler(lookupcache.Instance, config.Conf.Sheets.LookupSheet)
	sessionhandler.NewHandler(directoryhandler.Instance)
	notifyhandler.NewHandler(notifyhandler.Config{
		Mode:          config.Conf.Relay.Mode,
		WebhookURL:    config.Conf.Relay.WebhookURL,
		ApproverEmail: config.Conf.Relay.ApproverEmail,
		SenderEmail:   config.Conf.Relay.SenderEmail,
		PublicURL:     config.Conf.App.PublicURL,
		LinkSecret:    config.Conf.Approval.LinkSecret,
	})
	leaverequesthandler.NewHandler(tableStore, lookupcache.Instance, notifyhandler.Instance, leaverequesthandler.Config{
		LogSheet:       config.Conf.Sheets.LogSheet,
		RequirePending: *config.Conf.Approval.RequirePending,
	})
	tasklog.NewHandler(tableStore, lookupcache.Instance, notifyhandler.Instance, config.Conf.Sheets.TaskSheet)
	xlsexport.NewHandler()
}

func initWorkers(ctx context.Context) {
	// Задача выгрузки журнала заявок и задач в S3
	auditarchive.StartWorker(ctx, time.Duration(config.Conf.S3.ArchiveIntervalHours)*time.Hour)
}
