package inspect

import (
	"fmt"
	"io/fs"

	"github.com/pkg/errors"
)

var (
	ErrNotFound       = errors.New("file not found")
	ErrIsDirectory    = errors.New("is a directory")
	ErrPrefixTooSmall = errors.New("prefix size is too small")
)

// NotFoundError is returned when the file does not exist. It matches ErrNotFound.
type NotFoundError struct {
	Path string
}

func (e *NotFoundError) Error() string { return fmt.Sprintf("the file %q was not found", e.Path) }

// Is allows to check the error using errors.Is(err, ErrNotFound).
func (e *NotFoundError) Is(target error) bool { return target == ErrNotFound } //nolint:errorlint

// pathError maps OS errors to the package errors.
func pathError(path string, err error) error {
	if errors.Is(err, fs.ErrNotExist) {
		return &NotFoundError{Path: path}
	}

	return errors.Wrapf(err, "unable to access %q", path)
}
