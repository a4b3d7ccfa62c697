package application

import (
	"errors"
	"fmt"
)

// ErrDirectoryNotFound matches any missing-directory failure via errors.Is.
var ErrDirectoryNotFound = errors.New("directory not found")

// ValidationError represents a validation failure with details
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// DirectoryNotFoundError reports a source or output directory that does
// not exist or is not a directory. Nothing is written when it occurs.
type DirectoryNotFoundError struct {
	Path string
}

func (e *DirectoryNotFoundError) Error() string {
	return fmt.Sprintf("directory not found: %s", e.Path)
}

func (e *DirectoryNotFoundError) Is(target error) bool {
	return target == ErrDirectoryNotFound
}
