package storage

import (
	"bytes"
	"context"
	"fmt"
	"net/http"
	"strings"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
	"go.uber.org/zap"

	"portfolio-api/config"
)

const noSuchKey = "NoSuchKey"

// MinIO keeps uploads in one bucket of an S3-compatible object store.
// Object keys are the storage paths, so Save always returns the requested path.
type MinIO struct {
	client    *minio.Client
	logger    *zap.Logger
	bucket    string
	publicURL string
}

func NewMinIO(ctx context.Context, logger *zap.Logger, cfg config.S3) (*MinIO, error) {
	if cfg.Endpoint == "" || cfg.BucketUploads == "" {
		return nil, fmt.Errorf("invalid S3 config: endpoint and bucket are required")
	}

	client, err := minio.New(cfg.Endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(cfg.AccessKeyID, cfg.SecretAccessKey, ""),
		Secure: cfg.UseSSL,
		Region: cfg.Region,
	})
	if err != nil {
		return nil, fmt.Errorf("create minio client: %w", err)
	}

	s := &MinIO{
		client:    client,
		logger:    logger,
		bucket:    cfg.BucketUploads,
		publicURL: publicURL(cfg),
	}
	if err = s.ensureBucket(ctx, cfg.Region); err != nil {
		return nil, err
	}

	logger.Info("object storage connected", zap.String("bucket", s.bucket))

	return s, nil
}

func (s *MinIO) ensureBucket(ctx context.Context, region string) error {
	exists, err := s.client.BucketExists(ctx, s.bucket)
	if err != nil {
		return fmt.Errorf("check bucket %q: %w", s.bucket, err)
	}
	if exists {
		return nil
	}
	if err = s.client.MakeBucket(ctx, s.bucket, minio.MakeBucketOptions{Region: region}); err != nil {
		return fmt.Errorf("create bucket %q: %w", s.bucket, err)
	}
	return nil
}

func (s *MinIO) Save(ctx context.Context, p string, content []byte) (string, error) {
	_, err := s.client.PutObject(ctx, s.bucket, p, bytes.NewReader(content), int64(len(content)),
		minio.PutObjectOptions{ContentType: http.DetectContentType(content)})
	if err != nil {
		return "", fmt.Errorf("put object %q: %w", p, err)
	}
	return p, nil
}

func (s *MinIO) Exists(ctx context.Context, p string) (bool, error) {
	if _, err := s.client.StatObject(ctx, s.bucket, p, minio.StatObjectOptions{}); err != nil {
		if isNotFound(err) {
			return false, nil
		}
		return false, fmt.Errorf("stat object %q: %w", p, err)
	}
	return true, nil
}

func (s *MinIO) Delete(ctx context.Context, p string) error {
	if err := s.client.RemoveObject(ctx, s.bucket, p, minio.RemoveObjectOptions{}); err != nil && !isNotFound(err) {
		return fmt.Errorf("remove object %q: %w", p, err)
	}
	return nil
}

func (s *MinIO) URL(p string) string {
	if p == "" {
		return ""
	}
	return s.publicURL + "/" + strings.TrimPrefix(p, "/")
}

func publicURL(cfg config.S3) string {
	if cfg.PublicURL != "" {
		return strings.TrimSuffix(cfg.PublicURL, "/")
	}
	scheme := "http"
	if cfg.UseSSL {
		scheme = "https"
	}
	return fmt.Sprintf("%s://%s/%s", scheme, cfg.Endpoint, cfg.BucketUploads)
}

func isNotFound(err error) bool {
	resp := minio.ToErrorResponse(err)
	return resp.Code == noSuchKey || resp.StatusCode == http.StatusNotFound
}
