package storage

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path"
	"path/filepath"
	"strings"

	"github.com/gabriel-vasile/mimetype"
	"go.uber.org/zap"

	"auberge-espagnole/pkg/utils"
)

// PublicPrefix is the URL path uploaded files are served under.
const PublicPrefix = "/uploads/"

var (
	ErrTooLarge = errors.New("file exceeds the maximum upload size")
	ErrNotImage = errors.New("file is not an image")
)

// ImageStore saves product images and removes them again.
type ImageStore interface {
	Save(src io.Reader, originalName string) (string, error)
	Delete(publicPath string) error
}

// LocalStore keeps images in a directory served as static assets.
type LocalStore struct {
	dir     string
	maxSize int64
	log     *zap.Logger
}

func NewLocalStore(cfg utils.UploadConfig, log *zap.Logger) (*LocalStore, error) {
	if err := os.MkdirAll(cfg.Dir, 0755); err != nil {
		return nil, fmt.Errorf("create upload dir %s: %w", cfg.Dir, err)
	}

	return &LocalStore{
		dir:     cfg.Dir,
		maxSize: cfg.MaxSizeMB << 20,
		log:     log.With(zap.String("component", "storage")),
	}, nil
}

func (s *LocalStore) Dir() string {
	return s.dir
}

// Save writes src under a generated name and returns its public path
// (/uploads/<name>). Nothing is left on disk when it fails.
func (s *LocalStore) Save(src io.Reader, originalName string) (string, error) {
	// read one byte past the limit to detect oversized files
	limited := io.LimitReader(src, s.maxSize+1)

	mtype, err := mimetype.DetectReader(limited)
	if err != nil {
		return "", fmt.Errorf("detect file type: %w", err)
	}
	if !strings.HasPrefix(mtype.String(), "image/") {
		return "", ErrNotImage
	}

	// DetectReader consumed the header, rewind before copying
	seeker, ok := src.(io.Seeker)
	if !ok {
		return "", fmt.Errorf("upload source is not seekable")
	}
	if _, err := seeker.Seek(0, io.SeekStart); err != nil {
		return "", fmt.Errorf("rewind upload: %w", err)
	}

	name := utils.GenerateFileName(originalName)
	if filepath.Ext(name) == "" {
		name += mtype.Extension()
	}
	fullPath := filepath.Join(s.dir, name)

	dst, err := os.OpenFile(fullPath, os.O_CREATE|os.O_EXCL|os.O_WRONLY, 0644)
	if err != nil {
		return "", fmt.Errorf("create %s: %w", name, err)
	}

	written, err := io.Copy(dst, io.LimitReader(src, s.maxSize+1))
	closeErr := dst.Close()
	if err == nil {
		err = closeErr
	}
	if err == nil && written > s.maxSize {
		err = ErrTooLarge
	}
	if err != nil {
		os.Remove(fullPath)
		return "", err
	}

	s.log.Info("Image stored", zap.String("file", name), zap.Int64("bytes", written))
	return PublicPrefix + name, nil
}

// Delete removes a file previously returned by Save. Paths outside the
// upload prefix (e.g. external URLs) and missing files are ignored.
func (s *LocalStore) Delete(publicPath string) error {
	if !strings.HasPrefix(publicPath, PublicPrefix) {
		return nil
	}

	name := path.Base(strings.TrimPrefix(publicPath, PublicPrefix))
	if name == "." || name == "/" || name == "" {
		return nil
	}

	err := os.Remove(filepath.Join(s.dir, name))
	if err != nil && !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("remove %s: %w", name, err)
	}

	s.log.Info("Image removed", zap.String("file", name))
	return nil
}
