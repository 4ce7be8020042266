package export

import (
	"bytes"
	"context"
	"fmt"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"

	"github.com/diorama-viz/diorama/viz"
)

type Logger interface {
	Info(msg string, err error, fields ...map[string]interface{})
	Debug(msg string, err error, fields ...map[string]interface{})
	Warn(msg string, err error, fields ...map[string]interface{})
	Error(msg string, err error, fields ...map[string]interface{})
	Fatal(msg string, err error, fields ...map[string]interface{})
}

// MinioConfig holds connection details for the bucket sink.
type MinioConfig struct {
	Endpoint        string // MinIO server endpoint, e.g., "localhost:9000"
	AccessKeyID     string // MinIO access key
	SecretAccessKey string // MinIO secret key
	UseSSL          bool   // Use SSL (true for "https", false for "http")
	BucketName      string // Bucket the figure pages go into
	Region          string // Region for the bucket (e.g., "us-east-1")
}

// MinioSink uploads figure pages into a MinIO/S3 bucket.
type MinioSink struct {
	client *minio.Client
	cfg    MinioConfig
	logger Logger
}

// NewMinioSink connects to MinIO and makes sure the target bucket exists.
func NewMinioSink(cfg MinioConfig, logger Logger) (*MinioSink, error) {
	if cfg.Endpoint == "" {
		return nil, fmt.Errorf("minio endpoint cannot be empty")
	}
	if cfg.BucketName == "" {
		return nil, fmt.Errorf("minio bucket name cannot be empty")
	}

	logger.Info("Connecting to MinIO", nil, map[string]interface{}{
		"endpoint": cfg.Endpoint,
		"region":   cfg.Region,
		"secure":   cfg.UseSSL,
		"bucket":   cfg.BucketName,
	})

	client, err := minio.New(cfg.Endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(cfg.AccessKeyID, cfg.SecretAccessKey, ""),
		Secure: cfg.UseSSL,
		Region: cfg.Region,
	})
	if err != nil {
		return nil, fmt.Errorf("export: connect to minio: %w", err)
	}

	s := &MinioSink{client: client, cfg: cfg, logger: logger}
	if err := s.ensureBucket(context.Background()); err != nil {
		return nil, err
	}
	return s, nil
}

func (s *MinioSink) ensureBucket(ctx context.Context) error {
	exists, err := s.client.BucketExists(ctx, s.cfg.BucketName)
	if err != nil {
		return fmt.Errorf("export: check bucket %s: %w", s.cfg.BucketName, err)
	}
	if exists {
		return nil
	}
	if err := s.client.MakeBucket(ctx, s.cfg.BucketName, minio.MakeBucketOptions{Region: s.cfg.Region}); err != nil {
		return fmt.Errorf("export: create bucket %s: %w", s.cfg.BucketName, err)
	}
	s.logger.Info("Created MinIO bucket", nil, map[string]interface{}{"bucket": s.cfg.BucketName})
	return nil
}

// Export renders the figure and uploads it as <name>.html, returning the
// object key.
func (s *MinioSink) Export(ctx context.Context, name string, fig *viz.Figure) (string, error) {
	var buf bytes.Buffer
	if err := viz.WriteHTML(&buf, fig); err != nil {
		return "", err
	}

	objectKey := htmlName(name)
	_, err := s.client.PutObject(ctx, s.cfg.BucketName, objectKey, &buf, int64(buf.Len()), minio.PutObjectOptions{
		ContentType: "text/html; charset=utf-8",
	})
	if err != nil {
		return "", fmt.Errorf("export: upload %s: %w", objectKey, err)
	}

	s.logger.Debug("Uploaded figure page", nil, map[string]interface{}{
		"bucket": s.cfg.BucketName,
		"object": objectKey,
		"bytes":  buf.Len(),
	})
	return objectKey, nil
}
