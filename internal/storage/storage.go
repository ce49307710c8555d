package storage

import (
	"context"
	"fmt"
	"io"
)

// Storage abstracts where uploaded files live.
type Storage interface {
	Save(ctx context.Context, path string, reader io.Reader) error
	Get(ctx context.Context, path string) (io.ReadCloser, error)
	Delete(ctx context.Context, path string) error
	Exists(ctx context.Context, path string) (bool, error)
	GetURL(path string) string
}

type Config struct {
	Type     string // "local"
	BasePath string
	BaseURL  string
}

// NewStorage builds a storage backend from the config.
func NewStorage(cfg Config) (Storage, error) {
	switch cfg.Type {
	case "local", "":
		return NewLocalStorage(cfg)
	default:
		return nil, fmt.Errorf("unsupported storage type: %s", cfg.Type)
	}
}
