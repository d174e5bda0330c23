package training

import (
	"context"
	"io"
)

// Storage defines the remote object store holding the weekly PDFs.
type Storage interface {
	// Upload writes content under key, overwriting any existing object.
	Upload(ctx context.Context, key string, content io.Reader) error
}
