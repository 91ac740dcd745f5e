package picture

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"

	"profile-service/internal/domain/profile"
	"profile-service/internal/pkg/logger"
)

// LocalStore keeps pictures as files under one directory.
type LocalStore struct {
	root   string
	logger *logger.Logger
}

func NewLocalStore(root string, log *logger.Logger) (*LocalStore, error) {
	if root == "" {
		return nil, errors.New("picture dir is empty")
	}
	if err := os.MkdirAll(root, 0o755); err != nil {
		return nil, fmt.Errorf("create picture dir: %w", err)
	}
	return &LocalStore{root: root, logger: logger.OrNop(log)}, nil
}

func (s *LocalStore) WriteDecoded(_ context.Context, base64Data string, targetName string) error {
	b, err := DecodeJPEG(base64Data)
	if err != nil {
		return err
	}
	name, err := cleanName(targetName)
	if err != nil {
		return err
	}

	dst := filepath.Join(s.root, name)
	tmp := dst + ".tmp"
	if err := os.WriteFile(tmp, b, 0o644); err != nil {
		_ = os.Remove(tmp)
		return fmt.Errorf("write picture: %w", err)
	}
	if err := os.Rename(tmp, dst); err != nil {
		_ = os.Remove(tmp)
		return fmt.Errorf("write picture: %w", err)
	}

	s.logger.Debug("picture stored", "name", name, "bytes", len(b))
	return nil
}

func (s *LocalStore) Open(_ context.Context, name string) (io.ReadCloser, error) {
	clean, err := cleanName(name)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", profile.ErrPictureNotFound, err)
	}
	f, err := os.Open(filepath.Join(s.root, clean))
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("open %s: %w", clean, profile.ErrPictureNotFound)
		}
		return nil, err
	}
	return f, nil
}
