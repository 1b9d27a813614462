package storage

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path"
	"path/filepath"
	"strings"

	"go.uber.org/zap"
)

// maxRenames bounds the suffix search when a name is taken.
const maxRenames = 1000

var ErrInvalidPath = errors.New("storage path escapes root")

// FileSystem stores files under a root directory and serves them from baseURL.
type FileSystem struct {
	root    string
	baseURL string
	logger  *zap.Logger
}

func NewFileSystem(root, baseURL string, logger *zap.Logger) (*FileSystem, error) {
	if err := os.MkdirAll(root, 0o755); err != nil {
		return nil, fmt.Errorf("create storage root: %w", err)
	}
	if logger == nil {
		logger = zap.NewNop()
	}

	return &FileSystem{root: root, baseURL: baseURL, logger: logger}, nil
}

// Save never overwrites: a taken name gets a numeric suffix and the path
// actually written is returned.
func (s *FileSystem) Save(_ context.Context, p string, content []byte) (string, error) {
	full, err := s.resolve(p)
	if err != nil {
		return "", err
	}
	if err = os.MkdirAll(filepath.Dir(full), 0o755); err != nil {
		return "", fmt.Errorf("create directory: %w", err)
	}

	ext := path.Ext(p)
	stem := strings.TrimSuffix(p, ext)
	name := p
	for i := 1; ; i++ {
		err = writeExclusive(filepath.Join(s.root, filepath.FromSlash(name)), content)
		if err == nil {
			break
		}
		if !errors.Is(err, fs.ErrExist) {
			return "", err
		}
		if i > maxRenames {
			return "", fmt.Errorf("no free name for %q", p)
		}
		name = fmt.Sprintf("%s_%d%s", stem, i, ext)
	}

	if name != p {
		s.logger.Debug("storage renamed file", zap.String("requested", p), zap.String("actual", name))
	}

	return name, nil
}

func writeExclusive(full string, content []byte) (err error) {
	f, err := os.OpenFile(full, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0o644)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := f.Close(); err == nil {
			err = cerr
		}
		if err != nil {
			_ = os.Remove(full)
		}
	}()

	if _, err = f.Write(content); err != nil {
		return fmt.Errorf("write file: %w", err)
	}
	return f.Sync()
}

func (s *FileSystem) Exists(_ context.Context, p string) (bool, error) {
	full, err := s.resolve(p)
	if err != nil {
		return false, err
	}

	if _, err = os.Stat(full); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return false, nil
		}
		return false, err
	}
	return true, nil
}

func (s *FileSystem) Delete(_ context.Context, p string) error {
	full, err := s.resolve(p)
	if err != nil {
		return err
	}

	if err = os.Remove(full); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("delete file: %w", err)
	}
	return nil
}

func (s *FileSystem) URL(p string) string {
	if p == "" {
		return ""
	}
	return strings.TrimSuffix(s.baseURL, "/") + "/" + strings.TrimPrefix(p, "/")
}

func (s *FileSystem) resolve(p string) (string, error) {
	if p == "" || !filepath.IsLocal(filepath.FromSlash(p)) {
		return "", fmt.Errorf("%w: %q", ErrInvalidPath, p)
	}
	return filepath.Join(s.root, filepath.FromSlash(p)), nil
}
