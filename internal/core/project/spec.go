package project

import (
	"fmt"
	"path/filepath"
	"strings"
	"unicode"

	"golang.org/x/text/unicode/norm"

	"github.com/hdlman/hdlman/internal/hardware"
)

// Spec is the resolved input to Create.
type Spec struct {
	Name     string            // project directory name, also the build stem
	Root     string            // parent directory; "" means the working directory
	Target   hardware.Target   // required
	DevBoard hardware.DevBoard // hardware.NoDevBoard when no board was chosen
}

// Dir returns the path of the project directory.
func (s Spec) Dir() string {
	return filepath.Join(s.Root, s.Name)
}

// NormalizeName returns name in Unicode NFC form, so that the directory
// name and the build stem written into generated files are byte-identical.
func NormalizeName(name string) string {
	return norm.NFC.String(name)
}

// ValidateName checks that name can be used both as a single directory
// name and as the build stem inside the Makefile and yosys script.
func ValidateName(name string) error {
	switch {
	case name == "":
		return fmt.Errorf("%w: empty", ErrInvalidProjectName)
	case name == "." || name == "..":
		return fmt.Errorf("%w: %q", ErrInvalidProjectName, name)
	case strings.ContainsAny(name, `/\`):
		return fmt.Errorf("%w: %q contains a path separator", ErrInvalidProjectName, name)
	case strings.ContainsFunc(name, func(r rune) bool { return unicode.IsSpace(r) || unicode.IsControl(r) }):
		return fmt.Errorf("%w: %q contains whitespace or control characters", ErrInvalidProjectName, name)
	case strings.ContainsAny(name, `$#:;"'*?<>|`):
		return fmt.Errorf("%w: %q contains characters make or yosys cannot quote", ErrInvalidProjectName, name)
	case strings.ContainsAny(name, "{}"):
		return fmt.Errorf("%w: %q contains template delimiters", ErrInvalidProjectName, name)
	}
	return nil
}
