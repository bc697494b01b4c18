// Package project turns a resolved target/dev-board selection into an HDL
// project directory: it validates the project name, provisions the
// directory tree and emits the topfile, synthesis script, resources and
// Makefile in a fixed order.
package project

import (
	"errors"
	"fmt"
)

// Sentinel errors for the project package.
var (
	// ErrDirectoryExists indicates a file or directory already occupies the project path.
	ErrDirectoryExists = errors.New("project directory already exists")

	// ErrInsufficientPermission indicates the filesystem denied creating the project directory.
	ErrInsufficientPermission = errors.New("insufficient permission to create project directory")

	// ErrInvalidProjectName indicates the name cannot be used as a single directory name.
	ErrInvalidProjectName = errors.New("invalid project name")

	// ErrInvalidTarget indicates a Spec without a catalog target.
	ErrInvalidTarget = errors.New("invalid target")
)

// FileError reports a filesystem failure while writing one project file.
// Path is relative to the project directory.
type FileError struct {
	Path string
	Err  error
}

// Error implements the error interface.
func (e *FileError) Error() string {
	return fmt.Sprintf("write %s: %v", e.Path, e.Err)
}

// Unwrap returns the underlying error.
func (e *FileError) Unwrap() error {
	return e.Err
}
