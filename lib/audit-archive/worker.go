package auditarchive

import (
	"context"
	"fmt"
	"time"

	xlsexport "leave-desk-backend/lib/export/xls"
	leaverequesthandler "leave-desk-backend/lib/leave-request"
	tasklog "leave-desk-backend/lib/task-log"
	baseworker "leave-desk-backend/lib/utils/base-worker"
	"leave-desk-backend/lib/utils/helpers"
	initchecker "leave-desk-backend/lib/utils/init-checker"
	s3client "leave-desk-backend/s3"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
)

const (
	workerName    = "AuditArchive"
	firstRunDelay = 30 * time.Second
	contentType   = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
)

// StartWorker периодически выгружает журнал заявок и задач в S3.
// Без настроенного S3 или интервала задача не запускается.
func StartWorker(ctx context.Context, interval time.Duration) {
	if s3client.Instance == nil {
		log.WithField("worker_name", workerName).Info("S3 не настроен, архивирование журнала отключено")
		return
	}
	if interval <= 0 {
		log.WithField("worker_name", workerName).Info("интервал архивирования не задан, архивирование журнала отключено")
		return
	}
	initchecker.CheckInit(
		"leaverequesthandler", leaverequesthandler.Instance,
		"tasklog", tasklog.Instance,
		"xlsexport", xlsexport.Instance,
	)
	i := NewInstance(leaverequesthandler.Instance, tasklog.Instance, xlsexport.Instance, s3client.Instance)
	go baseworker.NewInstance(workerName, firstRunDelay, interval).Run(ctx, func(ctx context.Context) {
		if _, err := i.Archive(ctx); err != nil {
			log.WithField("worker_name", workerName).WithError(err).Error("ошибка архивирования журнала")
		}
	})
}

func NewInstance(requests leaverequesthandler.Provider, tasks tasklog.Provider, exporter xlsexport.Provider, storage s3client.Provider) *Impl {
	return &Impl{
		requests: requests,
		tasks:    tasks,
		exporter: exporter,
		storage:  storage,
		now:      time.Now,
	}
}

type Impl struct {
	requests leaverequesthandler.Provider
	tasks    tasklog.Provider
	exporter xlsexport.Provider
	storage  s3client.Provider
	now      func() time.Time
}

// ObjectName имя объекта архива, один снимок на каждый запуск
func ObjectName(t time.Time) string {
	return fmt.Sprintf("archive/%s/leave-desk-%s.xlsx", t.UTC().Format("2006-01"), t.UTC().Format("20060102T150405Z"))
}

// Archive выгружает снимок и возвращает имя загруженного объекта
func (i *Impl) Archive(ctx context.Context) (string, error) {
	if helpers.IsContextDone(ctx) {
		return "", ctx.Err()
	}
	requests := i.requests.ListAll(ctx)
	tasks := i.tasks.List(ctx)
	buf, err := i.exporter.ExportArchive(requests, tasks)
	if err != nil {
		return "", errors.Wrap(err, "ошибка формирования архива")
	}
	if err = i.storage.MakeBucket(ctx); err != nil {
		return "", errors.Wrap(err, "ошибка создания бакета")
	}
	name := ObjectName(i.now())
	if err = i.storage.Upload(ctx, name, buf, int64(buf.Len()), contentType); err != nil {
		return "", err
	}
	log.
		WithField("worker_name", workerName).
		WithField("object", name).
		WithField("requests", len(requests)).
		WithField("tasks", len(tasks)).
		Info("журнал выгружен в архив")
	return name, nil
}
