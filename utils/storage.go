package utils

import (
	"context"
	"fmt"
	"mime/multipart"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/feature/s3/manager"
	"github.com/aws/aws-sdk-go-v2/service/s3"
)

// ImageStore accepts uploaded files and returns a public URL.
type ImageStore interface {
	UploadImage(ctx context.Context, file *multipart.FileHeader, prefix string) (string, error)
}

type S3Store struct {
	bucket   string
	uploader *manager.Uploader
}

func NewS3Store(ctx context.Context, bucket, region string) (*S3Store, error) {
	cfg, err := config.LoadDefaultConfig(ctx, config.WithRegion(region))
	if err != nil {
		return nil, fmt.Errorf("error loading AWS config: %w", err)
	}

	client := s3.NewFromConfig(cfg)
	return &S3Store{bucket: bucket, uploader: manager.NewUploader(client)}, nil
}

func (s *S3Store) UploadImage(ctx context.Context, file *multipart.FileHeader, prefix string) (string, error) {
	f, err := file.Open()
	if err != nil {
		return "", fmt.Errorf("error opening file %s: %w", file.Filename, err)
	}
	defer f.Close()

	// Timestamped key to prevent overwrites between uploads of the same name.
	key := fmt.Sprintf("%s/%s-%s", prefix, time.Now().Format("20060102150405"), file.Filename)

	result, err := s.uploader.Upload(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(s.bucket),
		Key:         aws.String(key),
		Body:        f,
		ACL:         "public-read",
		ContentType: aws.String(file.Header.Get("Content-Type")),
	})
	if err != nil {
		return "", fmt.Errorf("error uploading file %s: %w", file.Filename, err)
	}

	return result.Location, nil
}
