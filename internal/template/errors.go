// Package template renders the text artifacts of a generated HDL project
// (topfile, synthesis script, Makefile) from templates embedded in the
// binary, and writes them together with verbatim resource files into the
// project directory.
package template

import "errors"

// Sentinel errors for the template package.
var (
	// ErrTemplateNotFound indicates the named template is not in the filesystem.
	ErrTemplateNotFound = errors.New("template: not found")

	// ErrMissingTemplateKey indicates the template referenced data that was not provided.
	ErrMissingTemplateKey = errors.New("template: missing key")

	// ErrUnexpandedToken indicates template syntax survived rendering.
	ErrUnexpandedToken = errors.New("template: unexpanded token in output")

	// ErrPathTraversal indicates a destination path escapes the project root.
	ErrPathTraversal = errors.New("template: path escapes project root")

	// ErrFileExists indicates the destination file is already present.
	ErrFileExists = errors.New("template: destination already exists")
)
