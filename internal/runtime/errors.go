package runtime

import (
	"errors"
	"fmt"
	"io/fs"
	"strings"
	"syscall"

	pkgerrors "github.com/manav03panchal/pocketlog/internal/errors"
)

// ErrDiskFull marks writes that failed for lack of space.
var ErrDiskFull = errors.New("disk full: unable to write to database")

// DiskFullError represents a disk full condition with additional context.
type DiskFullError struct {
	Op      string // The operation that failed (e.g., "add", "update")
	Key     string // The store key being written, if known
	wrapped error  // The underlying error
}

func (e *DiskFullError) Error() string {
	if e.Key != "" {
		return fmt.Sprintf("disk full during %s on %s: %v", e.Op, e.Key, e.wrapped)
	}
	return fmt.Sprintf("disk full during %s: %v", e.Op, e.wrapped)
}

func (e *DiskFullError) Unwrap() error {
	return ErrDiskFull
}

// NewDiskFullError creates a new DiskFullError.
func NewDiskFullError(op, key string, err error) *DiskFullError {
	return &DiskFullError{
		Op:      op,
		Key:     key,
		wrapped: err,
	}
}

// IsDiskFullError checks if an error indicates a disk full condition.
// It checks for ENOSPC and common disk full error patterns.
func IsDiskFullError(err error) bool {
	if err == nil {
		return false
	}

	var diskFullErr *DiskFullError
	if errors.As(err, &diskFullErr) || errors.Is(err, ErrDiskFull) {
		return true
	}

	var errno syscall.Errno
	if errors.As(err, &errno) && errno == syscall.ENOSPC {
		return true
	}

	errStr := strings.ToLower(err.Error())
	for _, pattern := range []string{
		"no space left on device",
		"disk full",
		"enospc",
		"database or disk is full",
	} {
		if strings.Contains(errStr, pattern) {
			return true
		}
	}

	return false
}

// StorageError classifies a failed store write for display. The in-memory
// change has already happened, so the message says it was not saved.
func StorageError(op, key string, err error) error {
	if err == nil {
		return nil
	}
	if IsDiskFullError(err) {
		err = NewDiskFullError(op, key, err)
	}
	if errors.Is(err, fs.ErrPermission) {
		err = fmt.Errorf("%w: %w", pkgerrors.ErrPermissionDenied, err)
	}
	return pkgerrors.NewSystemErrorWithOp(op,
		fmt.Sprintf("%s change was not saved", key), err)
}
