package domain

import (
	"errors"
	"fmt"
)

// Sentinel errors - match with errors.Is()
var (
	ErrNotFound     = errors.New("not found")
	ErrConflict     = errors.New("already exists")
	ErrValidation   = errors.New("validation failed")
	ErrUnauthorized = errors.New("unauthorized")

	// Token errors are kept distinct so the transport layer can report
	// why the bearer credential was rejected.
	ErrTokenMissing = errors.New("missing token")
	ErrTokenExpired = errors.New("token expired")
	ErrTokenInvalid = errors.New("invalid token")

	ErrUploadFailed = errors.New("upload failed")

	// ErrCorruptHierarchy is returned when a breadcrumb walk exceeds the
	// owner's folder count, which can only happen if parent links form a cycle.
	ErrCorruptHierarchy = errors.New("corrupt folder hierarchy")
)

// UploadError reports a blob store failure for a single file in an upload batch.
type UploadError struct {
	Filename string
	Err      error
}

// Error implements the error interface
func (e *UploadError) Error() string {
	return fmt.Sprintf("upload %q: %v", e.Filename, e.Err)
}

// Unwrap exposes the underlying blob store error
func (e *UploadError) Unwrap() error {
	return e.Err
}

// Is allows errors.Is() to match against ErrUploadFailed
func (e *UploadError) Is(target error) bool {
	return target == ErrUploadFailed
}
