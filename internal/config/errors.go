// Package config resolves the user's default target and dev-board from the
// config file and the environment. Problems with either source are logged
// and never stop the CLI.
package config

import "errors"

// Sentinel errors for configuration operations.
var (
	// ErrMalformedConfig indicates the config file is not valid YAML or does
	// not have the expected shape.
	ErrMalformedConfig = errors.New("config: malformed config file")

	// ErrNoHomeDir indicates the default config path could not be derived.
	ErrNoHomeDir = errors.New("config: home directory not available")
)
