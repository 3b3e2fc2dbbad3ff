// Package storage moves uploaded candidate photos from temporary storage to their
// permanent home.
package storage

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/vietanh2810/evote-api/internal/config"
	"github.com/vietanh2810/evote-api/internal/domain"
)

var (
	ErrEmptyUpload   = errors.New("upload has no temporary file")
	ErrUnknownDriver = errors.New("unknown storage driver")
)

// Store keeps candidate photos. Relocate returns a reference that URL later turns into an
// absolute address.
type Store interface {
	Relocate(ctx context.Context, upload domain.Upload, name string) (string, error)
	URL(origin, ref string) string
}

// New builds the store selected by conf.Driver.
func New(ctx context.Context, conf *config.StorageConfig) (Store, error) {
	switch conf.Driver {
	case config.StorageLocal:
		store, err := NewLocalStore(conf.LocalDir)
		if err != nil {
			return nil, fmt.Errorf("NewLocalStore -> %w", err)
		}

		return store, nil
	case config.StorageS3:
		store, err := NewS3Store(ctx, conf.S3)
		if err != nil {
			return nil, fmt.Errorf("NewS3Store -> %w", err)
		}

		return store, nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownDriver, conf.Driver)
	}
}

// joinURL joins base and ref with exactly one slash.
func joinURL(base, ref string) string {
	return strings.TrimRight(base, "/") + "/" + strings.TrimLeft(ref, "/")
}
