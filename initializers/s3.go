package initializers

import (
	"context"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
	log "github.com/sirupsen/logrus"

	"jobportal-backend/config"
	s3client "jobportal-backend/s3"
)

func InitS3() {
	minioClient, err := minio.New(config.Conf.S3.Endpoint, &minio.Options{
		Creds:  credentials.NewStaticV2(config.Conf.S3.AccessKeyID, config.Conf.S3.SecretAccessKey, ""),
		Secure: *config.Conf.S3.UseSSL,
	})
	if err != nil {
		log.WithError(err).Error("failed to init the S3 client")
		return
	}

	// connection check
	_, err = minioClient.ListBuckets(context.Background())
	if err != nil {
		log.WithError(err).Error("S3 connection failed, ListBuckets returned an error")
	}

	s3client.Client = minioClient
	if err = s3client.EnsureBucket(context.Background()); err != nil {
		log.WithError(err).Error("failed to ensure the document bucket")
	}
	log.Info("S3 client initialized")
}
