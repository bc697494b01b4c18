package config

import "github.com/hdlman/hdlman/internal/hardware"

// Config holds the defaults applied to the new command when the matching
// flag is not given. Zero values mean no default.
type Config struct {
	DefaultTarget   hardware.Target
	DefaultDevBoard hardware.DevBoard

	// TargetSource and DevBoardSource name where each default came from:
	// the config file path or the environment variable.
	TargetSource   string
	DevBoardSource string
}

// HasDefaults reports whether any default was resolved.
func (c *Config) HasDefaults() bool {
	return c.DefaultTarget.Valid() || c.DefaultDevBoard.Valid()
}

// fileConfig mirrors the YAML layout of the config file.
type fileConfig struct {
	DefaultTarget   string `yaml:"default-target"`
	DefaultDevBoard string `yaml:"default-dev-board"`
}

// envConfig lists the environment overrides.
type envConfig struct {
	ConfigPath      string `env:"HDLMAN_CONFIG"`
	DefaultTarget   string `env:"HDLMAN_DEFAULT_TARGET"`
	DefaultDevBoard string `env:"HDLMAN_DEFAULT_DEV_BOARD"`
}

const (
	envDefaultTarget   = "HDLMAN_DEFAULT_TARGET"
	envDefaultDevBoard = "HDLMAN_DEFAULT_DEV_BOARD"
)
