package util

import (
	"context"
	"fmt"
	"mime/multipart"

	"github.com/google/uuid"
	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
	"github.com/sinaridesa/sinari-api/common"
)

func InitMinIO() error {
	if common.Config.MinIoEndpoint == nil || common.Config.MinIoAccessKey == nil || common.Config.MinIoSecretKey == nil {
		return fmt.Errorf("MinIO configuration is incomplete")
	}

	client, err := minio.New(*common.Config.MinIoEndpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(*common.Config.MinIoAccessKey, *common.Config.MinIoSecretKey, ""),
		Secure: true,
	})

	if err != nil {
		return fmt.Errorf("failed to initialize MinIO client: %w", err)
	}

	common.MinIOClient = client
	return nil
}

// UploadFile stores a multipart upload under prefix/<uuid>-<filename> in the
// uploads bucket and returns the public URL kept in the database.
func UploadFile(ctx context.Context, prefix string, file *multipart.FileHeader) (string, error) {
	if common.MinIOClient == nil {
		return "", fmt.Errorf("MinIO client not initialized")
	}

	src, err := file.Open()
	if err != nil {
		return "", fmt.Errorf("failed to open uploaded file: %w", err)
	}
	defer src.Close()

	bucket := *common.Config.BucketUploads

	exists, err := common.MinIOClient.BucketExists(ctx, bucket)
	if err != nil {
		return "", fmt.Errorf("failed to check bucket existence: %w", err)
	}

	if !exists {
		if err := common.MinIOClient.MakeBucket(ctx, bucket, minio.MakeBucketOptions{}); err != nil {
			return "", fmt.Errorf("failed to create bucket: %w", err)
		}
	}

	objectName := fmt.Sprintf("%s/%s-%s", prefix, uuid.New().String(), file.Filename)

	_, err = common.MinIOClient.PutObject(ctx, bucket, objectName, src, file.Size, minio.PutObjectOptions{
		ContentType: file.Header.Get("Content-Type"),
	})

	if err != nil {
		return "", fmt.Errorf("failed to upload file: %w", err)
	}

	return fmt.Sprintf("https://%s/%s/%s", *common.Config.MinIoEndpoint, bucket, objectName), nil
}
