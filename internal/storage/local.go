package storage

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"syscall"

	"github.com/vietanh2810/evote-api/internal/domain"
)

// PublicPath is where the router serves LocalStore files.
const PublicPath = "/uploads"

type LocalStore struct {
	dir string
}

func NewLocalStore(dir string) (*LocalStore, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("os.MkdirAll -> %w", err)
	}

	return &LocalStore{
		dir: dir,
	}, nil
}

func (s *LocalStore) Dir() string {
	return s.dir
}

// Relocate moves the upload into the store as name and returns name as the reference.
// Moves across devices fall back to copy and remove.
func (s *LocalStore) Relocate(ctx context.Context, upload domain.Upload, name string) (string, error) {
	if upload.TempPath == "" {
		return "", ErrEmptyUpload
	}
	if err := ctx.Err(); err != nil {
		return "", err
	}

	dst := filepath.Join(s.dir, filepath.Base(name))
	if err := os.Rename(upload.TempPath, dst); err != nil {
		if !errors.Is(err, syscall.EXDEV) {
			return "", fmt.Errorf("os.Rename -> %w", err)
		}
		if err = copyFile(upload.TempPath, dst); err != nil {
			return "", fmt.Errorf("copyFile -> %w", err)
		}
		_ = os.Remove(upload.TempPath)
	}

	return filepath.Base(name), nil
}

// URL returns the absolute address of ref as served under PublicPath.
func (s *LocalStore) URL(origin, ref string) string {
	return joinURL(origin+PublicPath, ref)
}

func copyFile(src, dst string) error {
	in, err := os.Open(src)
	if err != nil {
		return err
	}
	defer in.Close()

	out, err := os.Create(dst)
	if err != nil {
		return err
	}

	if _, err = io.Copy(out, in); err != nil {
		out.Close()
		return err
	}

	return out.Close()
}
