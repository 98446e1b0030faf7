package service

import (
	"errors"
	"fmt"
)

// Machine-stable validation kinds surfaced in error payloads.
const (
	KindUnsupportedType = "unsupported_type"
	KindTooLarge        = "too_large"
)

// ErrNotFound signals that the requested photo id or blob key does not
// exist.
var ErrNotFound = errors.New("photo not found")

// ValidationError rejects an upload before any side effect occurs.
type ValidationError struct {
	Kind    string
	Message string
}

func (e *ValidationError) Error() string { return e.Message }

// StorageError wraps a blob-store or metadata-store failure.
type StorageError struct {
	Op  string
	Err error
}

func (e *StorageError) Error() string { return fmt.Sprintf("%s: %v", e.Op, e.Err) }

func (e *StorageError) Unwrap() error { return e.Err }
