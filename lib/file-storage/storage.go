package filestorage

import (
	"bytes"
	"context"
	"fmt"
	"io"

	"github.com/minio/minio-go/v7"
	"github.com/pkg/errors"

	"jobportal-backend/config"
	s3client "jobportal-backend/s3"
)

type Provider interface {
	Upload(ctx context.Context, path string, fileReader io.Reader, fileSize int64, mimeType string) error
	Download(ctx context.Context, path string) ([]byte, error)
	Remove(ctx context.Context, path string) error
}

var Instance Provider

func NewHandler() {
	Instance = impl{}
}

type impl struct{}

// DocumentPath builds the object key for an applicant document. The workflow
// only ever references documents by this opaque path.
func DocumentPath(userID, documentID string) string {
	return fmt.Sprintf("documents/%s/%s", userID, documentID)
}

func (i impl) Upload(ctx context.Context, path string, fileReader io.Reader, fileSize int64, mimeType string) error {
	if mimeType == "" {
		mimeType = "application/octet-stream"
	}
	_, err := s3client.Client.PutObject(ctx, config.Conf.S3.BucketName, path, fileReader, fileSize,
		minio.PutObjectOptions{ContentType: mimeType})
	if err != nil {
		return errors.Wrap(err, "failed to upload the file to the object store")
	}
	return nil
}

func (i impl) Download(ctx context.Context, path string) ([]byte, error) {
	object, err := s3client.Client.GetObject(ctx, config.Conf.S3.BucketName, path, minio.GetObjectOptions{})
	if err != nil {
		return nil, errors.Wrap(err, "failed to fetch the file from the object store")
	}
	defer object.Close()
	buf := new(bytes.Buffer)
	if _, err = io.Copy(buf, object); err != nil {
		return nil, errors.Wrap(err, "failed to read the file from the object store")
	}
	return buf.Bytes(), nil
}

func (i impl) Remove(ctx context.Context, path string) error {
	err := s3client.Client.RemoveObject(ctx, config.Conf.S3.BucketName, path, minio.RemoveObjectOptions{})
	if err != nil {
		return errors.Wrap(err, "failed to remove the file from the object store")
	}
	return nil
}
