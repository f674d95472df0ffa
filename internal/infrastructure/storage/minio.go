package storage

import (
	"context"
	"fmt"
	"io"
	"path"
	"strings"
	"time"

	backoff "github.com/cenkalti/backoff/v4"
	"github.com/google/uuid"
	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"

	"github.com/johnquangdev/voice-transcriber/internal/domain/entities"
	"github.com/johnquangdev/voice-transcriber/pkg/config"
)

const audioPrefix = "audio/"

// MinIOClient stores uploaded audio in a MinIO (or S3-compatible) bucket.
// It implements repositories.AudioStore.
type MinIOClient struct {
	client *minio.Client
	bucket string
}

// NewMinIOClient creates a MinIO client and makes sure the bucket exists,
// retrying while the server comes up.
func NewMinIOClient(ctx context.Context, cfg *config.StorageConfig) (*MinIOClient, error) {
	minioClient, err := minio.New(cfg.Endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(cfg.AccessKeyID, cfg.SecretAccessKey, ""),
		Secure: cfg.UseSSL,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create MinIO client: %w", err)
	}

	client := &MinIOClient{
		client: minioClient,
		bucket: cfg.BucketName,
	}

	bo := backoff.NewExponentialBackOff()
	bo.InitialInterval = 1 * time.Second
	bo.MaxInterval = 5 * time.Second
	bo.MaxElapsedTime = 30 * time.Second

	ensure := func() error { return client.ensureBucket(ctx) }
	if err := backoff.Retry(ensure, backoff.WithContext(bo, ctx)); err != nil {
		return nil, fmt.Errorf("failed to initialize bucket: %w", err)
	}

	return client, nil
}

// ensureBucket creates the bucket if it doesn't exist
func (m *MinIOClient) ensureBucket(ctx context.Context) error {
	exists, err := m.client.BucketExists(ctx, m.bucket)
	if err != nil {
		return fmt.Errorf("failed to check bucket existence: %w", err)
	}
	if exists {
		return nil
	}

	if err := m.client.MakeBucket(ctx, m.bucket, minio.MakeBucketOptions{}); err != nil {
		return fmt.Errorf("failed to create bucket: %w", err)
	}
	return nil
}

// Save uploads audio and returns its file handle
func (m *MinIOClient) Save(ctx context.Context, filename string, r io.Reader, size int64, contentType string) (string, error) {
	handle := NewHandle(filename)

	_, err := m.client.PutObject(ctx, m.bucket, handle, r, size, minio.PutObjectOptions{
		ContentType: contentType,
		UserMetadata: map[string]string{
			"original-filename": path.Base(filename),
		},
	})
	if err != nil {
		return "", fmt.Errorf("failed to upload file: %w", err)
	}

	return handle, nil
}

// Open streams the audio stored under handle
func (m *MinIOClient) Open(ctx context.Context, handle string) (io.ReadCloser, error) {
	if !ValidHandle(handle) {
		return nil, entities.InvalidInput("malformed file handle")
	}

	obj, err := m.client.GetObject(ctx, m.bucket, handle, minio.GetObjectOptions{})
	if err != nil {
		return nil, fmt.Errorf("failed to get object: %w", err)
	}
	// GetObject is lazy; Stat surfaces a missing object before streaming.
	if _, err := obj.Stat(); err != nil {
		obj.Close()
		return nil, fmt.Errorf("failed to stat object %s: %w", handle, err)
	}

	return obj, nil
}

// NewHandle builds a fresh object key for an uploaded file, keeping its extension.
func NewHandle(filename string) string {
	ext := strings.ToLower(path.Ext(path.Base(filename)))
	return audioPrefix + uuid.NewString() + ext
}

// ValidHandle reports whether handle was produced by NewHandle.
func ValidHandle(handle string) bool {
	if !strings.HasPrefix(handle, audioPrefix) {
		return false
	}
	name := strings.TrimPrefix(handle, audioPrefix)
	id := strings.TrimSuffix(name, path.Ext(name))
	_, err := uuid.Parse(id)
	return err == nil && !strings.Contains(name, "/")
}
