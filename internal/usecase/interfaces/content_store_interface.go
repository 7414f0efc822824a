package interfaces

import (
	"context"
	"errors"
)

var ErrBlobNotFound = errors.New("blob not found")

// IContentStore is a write-once byte store addressed by opaque name (S3 bucket
// or local directory). Implementations create their location on first use.
type IContentStore interface {
	Put(ctx context.Context, name string, data []byte) error
	Get(ctx context.Context, name string) ([]byte, error)
	Delete(ctx context.Context, name string) error
}
