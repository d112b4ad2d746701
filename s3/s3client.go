package s3client

import (
	"context"
	"io"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
	"github.com/pkg/errors"
)

const location = "us-east-1"

type Provider interface {
	MakeBucket(ctx context.Context) error
	Upload(ctx context.Context, objectName string, reader io.Reader, size int64, contentType string) error
}

var Instance Provider

type s3client struct {
	minioClient *minio.Client
	bucketName  string
}

func (s s3client) MakeBucket(ctx context.Context) error {
	exists, err := s.minioClient.BucketExists(ctx, s.bucketName)
	if err != nil {
		return err
	}
	if exists {
		return nil
	}
	return s.minioClient.MakeBucket(ctx, s.bucketName, minio.MakeBucketOptions{Region: location})
}

func (s s3client) Upload(ctx context.Context, objectName string, reader io.Reader, size int64, contentType string) error {
	_, err := s.minioClient.PutObject(ctx, s.bucketName, objectName, reader, size, minio.PutObjectOptions{ContentType: contentType})
	if err != nil {
		return errors.Wrapf(err, "ошибка загрузки объекта %v", objectName)
	}
	return nil
}

func NewClient(endpoint, accessKeyID, secretAccessKey, bucketName string, useSSL bool) (Provider, error) {
	minioClient, err := minio.New(endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(accessKeyID, secretAccessKey, ""),
		Secure: useSSL,
	})
	if err != nil {
		return nil, err
	}
	return &s3client{minioClient: minioClient, bucketName: bucketName}, nil
}
