package storage

import (
	"bytes"
	"context"
	"healthcal-service/internal/app/contracts"
	"healthcal-service/internal/pkg/exceptions"
	"time"

	"github.com/minio/minio-go/v7"
)

type minioStorage struct {
	MinioClient *minio.Client
}

func NewMinioStorage(minioClient *minio.Client) contracts.Storage {
	return &minioStorage{
		MinioClient: minioClient,
	}
}

func (m *minioStorage) UploadObject(ctx context.Context, content []byte, bucketName, objectName, contentType string) (string, error) {
	_, err := m.MinioClient.PutObject(
		ctx,
		bucketName,
		objectName,
		bytes.NewReader(content),
		int64(len(content)),
		minio.PutObjectOptions{
			ContentType: contentType,
		},
	)
	if err != nil {
		return "", exceptions.ErrMinioCreateObject(err, bucketName)
	}

	return objectName, nil
}

func (m *minioStorage) GetObjectUrlWithExpiryTime(ctx context.Context, bucketName, objectName string, expiryTime time.Duration) (string, error) {
	presignedURL, err := m.MinioClient.PresignedGetObject(ctx, bucketName, objectName, expiryTime, nil)
	if err != nil {
		return "", exceptions.ErrMinioPresignObject(err, bucketName)
	}
	return presignedURL.String(), nil
}
