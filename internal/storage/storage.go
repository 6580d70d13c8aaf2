package storage

import (
	"context"
	"fmt"
	"io"
	"time"
)

// Storage is the object store for resume files.
type Storage interface {
	// Save stores a file at the given key.
	Save(ctx context.Context, key string, reader io.Reader, contentType string) error

	// Get retrieves a file by key.
	Get(ctx context.Context, key string) (io.ReadCloser, error)

	// Delete removes the file at the given key.
	Delete(ctx context.Context, key string) error

	// Exists checks whether a file exists at the given key.
	Exists(ctx context.Context, key string) (bool, error)

	// GetURL returns a public URL for the file.
	GetURL(ctx context.Context, key string) (string, error)

	// GetSignedURL returns a temporary signed URL for private files.
	GetSignedURL(ctx context.Context, key string, expiry time.Duration) (string, error)
}

// Config holds storage configuration.
type Config struct {
	Type       string // local, cloudflare_r2
	BasePath   string // for local storage
	BaseURL    string // public URL base
	Bucket     string // for R2
	AccessKey  string // for R2
	SecretKey  string // for R2
	Endpoint   string // for R2 or custom S3
	UseSSL     bool
	PublicRead bool
}

// NewStorage creates a storage instance from configuration.
func NewStorage(cfg Config) (Storage, error) {
	switch cfg.Type {
	case "local":
		return NewLocalStorage(cfg)
	case "cloudflare_r2":
		return NewCloudflareR2Storage(cfg)
	default:
		return nil, fmt.Errorf("unsupported storage type: %s", cfg.Type)
	}
}
