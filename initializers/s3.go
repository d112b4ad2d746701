package initializers

import (
	"context"
	"time"

	"leave-desk-backend/config"
	s3client "leave-desk-backend/s3"

	log "github.com/sirupsen/logrus"
)

func InitS3(ctx context.Context) {
	if config.Conf.S3.Endpoint == "" {
		log.Info("S3 не настроен")
		return
	}
	client, err := s3client.NewClient(config.Conf.S3.Endpoint, config.Conf.S3.AccessKeyID,
		config.Conf.S3.SecretAccessKey, config.Conf.S3.BucketName, *config.Conf.S3.UseSSL)
	if err != nil {
		log.WithError(err).Error("Ошибка инициализации клиента S3")
		return
	}

	// Проверка соединения
	checkCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()
	if err = client.MakeBucket(checkCtx); err != nil {
		log.WithError(err).Error("S3 соединение не удалось, архивирование будет повторено по расписанию")
	}

	s3client.Instance = client
	log.Info("S3 клиент успешно инициализирован")
}
