package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/hdlman/hdlman/internal/defs"
)

// DefaultPath returns the config file location in the user's home directory.
func DefaultPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil || home == "" {
		return "", fmt.Errorf("%w: %v", ErrNoHomeDir, err)
	}
	return filepath.Join(home, defs.ConfigFileName), nil
}
