package picture

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
	"time"

	"profile-service/internal/domain/profile"
	"profile-service/internal/pkg/logger"

	"cloud.google.com/go/storage"
	"google.golang.org/api/option"
)

// GCSStore keeps pictures as objects in a single bucket.
type GCSStore struct {
	client *storage.Client
	bucket string
	prefix string
	logger *logger.Logger
}

func NewGCSStore(ctx context.Context, bucket, credentialsFile string, log *logger.Logger) (*GCSStore, error) {
	bucket = strings.TrimSpace(bucket)
	if bucket == "" {
		return nil, errors.New("gcs bucket is empty")
	}

	opts := []option.ClientOption{option.WithScopes(storage.ScopeReadWrite)}
	if f := strings.TrimSpace(credentialsFile); f != "" {
		opts = append(opts, option.WithCredentialsFile(f))
	}
	client, err := storage.NewClient(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("create storage client: %w", err)
	}

	log = logger.OrNop(log).With("service", "GCSStore")
	log.Info("picture bucket configured", "bucket", bucket)
	return &GCSStore{client: client, bucket: bucket, prefix: "pictures/", logger: log}, nil
}

func (s *GCSStore) key(name string) (string, error) {
	clean, err := cleanName(name)
	if err != nil {
		return "", err
	}
	return s.prefix + clean, nil
}

func (s *GCSStore) WriteDecoded(ctx context.Context, base64Data string, targetName string) error {
	b, err := DecodeJPEG(base64Data)
	if err != nil {
		return err
	}
	key, err := s.key(targetName)
	if err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(ctx, 2*time.Minute)
	defer cancel()

	w := s.client.Bucket(s.bucket).Object(key).NewWriter(ctx)
	w.ContentType = jpegContentType
	if _, err := w.Write(b); err != nil {
		_ = w.Close()
		return fmt.Errorf("failed to write data to GCS: %w", err)
	}
	if err := w.Close(); err != nil {
		return fmt.Errorf("failed to close GCS writer: %w", err)
	}

	s.logger.Debug("picture stored", "key", key, "bytes", len(b))
	return nil
}

func (s *GCSStore) Open(ctx context.Context, name string) (io.ReadCloser, error) {
	key, err := s.key(name)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", profile.ErrPictureNotFound, err)
	}

	// the reader outlives this call, so cancel on Close rather than on return
	ctx2, cancel := context.WithTimeout(ctx, 2*time.Minute)
	r, err := s.client.Bucket(s.bucket).Object(key).NewReader(ctx2)
	if err != nil {
		cancel()
		if errors.Is(err, storage.ErrObjectNotExist) {
			return nil, fmt.Errorf("open %s: %w", key, profile.ErrPictureNotFound)
		}
		return nil, fmt.Errorf("failed to open GCS reader: %w", err)
	}
	return &readCloserWithCancel{ReadCloser: r, cancel: cancel}, nil
}

func (s *GCSStore) Close() error {
	return s.client.Close()
}

type readCloserWithCancel struct {
	io.ReadCloser
	cancel context.CancelFunc
}

func (r *readCloserWithCancel) Close() error {
	err := r.ReadCloser.Close()
	if r.cancel != nil {
		r.cancel()
	}
	return err
}
