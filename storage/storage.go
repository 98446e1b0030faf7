// Package storage provides durable key-value storage of blob bytes.
// Two backends exist: the local filesystem (the default) and S3.
package storage

import (
	"context"
	"errors"
)

// ErrNotFound is returned by Read when no blob exists under the key.
var ErrNotFound = errors.New("blob not found")

// BlobStore stores opaque byte payloads addressed by a bare file name.
// Write must be durable before returning; Delete of a missing key is
// not an error.
type BlobStore interface {
	Write(ctx context.Context, key string, data []byte) error
	Read(ctx context.Context, key string) ([]byte, error)
	Exists(ctx context.Context, key string) (bool, error)
	Delete(ctx context.Context, key string) error
}
