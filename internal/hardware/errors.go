// Package hardware holds the catalog of FPGA targets and development boards
// hdlman can generate projects for, the codec between their stable
// identifiers and their in-memory values, and the capabilities (bundled
// resource files and toolchain fragments) each of them contributes to a
// generated project.
package hardware

import (
	"errors"
	"fmt"
)

// Sentinel errors for the hardware package.
var (
	// ErrUnrecognizedIdentifier indicates a string that names no catalog entry.
	ErrUnrecognizedIdentifier = errors.New("hardware: unrecognized identifier")

	// ErrMissingAsset indicates a resource declared by the catalog has no embedded payload.
	ErrMissingAsset = errors.New("hardware: missing embedded asset")
)

// UnrecognizedIdentifierError reports an identifier that matched no entry
// of the given kind. Received holds the input verbatim.
type UnrecognizedIdentifierError struct {
	Kind     Kind
	Received string
}

// Error implements the error interface.
func (e *UnrecognizedIdentifierError) Error() string {
	return fmt.Sprintf("unrecognized %s %q", e.Kind, e.Received)
}

// Unwrap returns ErrUnrecognizedIdentifier so callers can use errors.Is.
func (e *UnrecognizedIdentifierError) Unwrap() error {
	return ErrUnrecognizedIdentifier
}
