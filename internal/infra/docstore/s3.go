package docstore

import (
	"bytes"
	"context"
	"io"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/google/uuid"

	appconfig "github.com/gtkpad369/LegalSch/internal/config"
)

// Store puts and removes client document files. The core only ever
// sees this interface.
type Store interface {
	Put(ctx context.Context, data io.Reader, size int64, contentType string) (key string, err error)
	Delete(ctx context.Context, key string) error
}

// S3Store keeps documents in an S3-compatible bucket under random
// uuid keys; the database row maps key to appointment.
type S3Store struct {
	client *s3.Client
	bucket string
}

func NewS3Store(cfg *appconfig.Config) *S3Store {
	client := s3.New(s3.Options{
		Region: cfg.S3Region,
		Credentials: aws.NewCredentialsCache(
			credentials.NewStaticCredentialsProvider(cfg.S3AccessKey, cfg.S3SecretKey, ""),
		),
		BaseEndpoint: endpointOrNil(cfg.S3Endpoint),
		UsePathStyle: cfg.S3Endpoint != "",
	})

	return &S3Store{
		client: client,
		bucket: cfg.S3Bucket,
	}
}

func endpointOrNil(endpoint string) *string {
	if endpoint == "" {
		return nil
	}
	return aws.String(endpoint)
}

func (s *S3Store) Put(ctx context.Context, data io.Reader, size int64, contentType string) (string, error) {
	key := uuid.NewString()

	buf, err := io.ReadAll(data)
	if err != nil {
		return "", err
	}

	_, err = s.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:        aws.String(s.bucket),
		Key:           aws.String(key),
		Body:          bytes.NewReader(buf),
		ContentLength: aws.Int64(size),
		ContentType:   aws.String(contentType),
	})
	if err != nil {
		return "", err
	}

	return key, nil
}

func (s *S3Store) Delete(ctx context.Context, key string) error {
	_, err := s.client.DeleteObject(ctx, &s3.DeleteObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(key),
	})
	return err
}

var _ Store = (*S3Store)(nil)
